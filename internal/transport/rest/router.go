package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/service"
	"github.com/nyuchitech/EducatorEval/internal/transport/rest/handler"
	"github.com/nyuchitech/EducatorEval/internal/transport/rest/middleware"
	"github.com/nyuchitech/EducatorEval/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService        *service.AuthService
	FrameworkService   *service.FrameworkService
	ObservationService *service.ObservationService
	ScheduleService    *service.ScheduleService
	TeacherService     *service.TeacherService
	ExportService      *service.ExportService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	frameworkHandler := handler.NewFrameworkHandler(c.FrameworkService)
	observationHandler := handler.NewObservationHandler(c.ObservationService)
	scheduleHandler := handler.NewScheduleHandler(c.ScheduleService)
	teacherHandler := handler.NewTeacherHandler(c.TeacherService)
	dashboardHandler := handler.NewDashboardHandler(c.ObservationService)
	exportHandler := handler.NewExportHandler(c.ExportService, c.ObservationService, c.TeacherService, c.FrameworkService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/collections/{collection}", wsHandler.Subscribe).Methods("GET")

	// Authenticated routes (any signed-in user)
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireAuth)

	authed.HandleFunc("/frameworks", frameworkHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/frameworks/alignment-options", frameworkHandler.AlignmentOptions).Methods("GET", "OPTIONS")
	authed.HandleFunc("/frameworks/{frameworkId}", frameworkHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/teachers", teacherHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/teachers/{teacherId}", teacherHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods("GET", "OPTIONS")
	authed.HandleFunc("/dashboard/progress", dashboardHandler.Progress).Methods("GET", "OPTIONS")
	authed.HandleFunc("/dashboard/summary", dashboardHandler.Summary).Methods("GET", "OPTIONS")

	// Observer routes (anyone who records observations)
	observer := v1.NewRoute().Subrouter()
	observer.Use(authMW.RequireAuth)
	observer.Use(authMW.RequireRole(model.RoleObserver, model.RoleCoordinator, model.RoleAdmin))

	observer.HandleFunc("/observations", observationHandler.Create).Methods("POST", "OPTIONS")
	observer.HandleFunc("/observations", observationHandler.List).Methods("GET", "OPTIONS")
	observer.HandleFunc("/observations/search", observationHandler.Search).Methods("GET", "OPTIONS")
	observer.HandleFunc("/observations/{observationId}", observationHandler.Get).Methods("GET", "OPTIONS")
	observer.HandleFunc("/observations/{observationId}", observationHandler.Update).Methods("PATCH", "OPTIONS")
	observer.HandleFunc("/schedules", scheduleHandler.Create).Methods("POST", "OPTIONS")
	observer.HandleFunc("/schedules", scheduleHandler.List).Methods("GET", "OPTIONS")
	observer.HandleFunc("/schedules/{scheduleId}", scheduleHandler.Get).Methods("GET", "OPTIONS")
	observer.HandleFunc("/schedules/{scheduleId}/confirm", scheduleHandler.Confirm).Methods("POST", "OPTIONS")
	observer.HandleFunc("/schedules/{scheduleId}/cancel", scheduleHandler.Cancel).Methods("POST", "OPTIONS")
	observer.HandleFunc("/schedules/{scheduleId}/complete", scheduleHandler.Complete).Methods("POST", "OPTIONS")
	observer.HandleFunc("/schedules/{scheduleId}", scheduleHandler.Delete).Methods("DELETE", "OPTIONS")
	observer.HandleFunc("/export/observations.csv", exportHandler.Observations).Methods("GET", "OPTIONS")

	// Admin routes (framework authoring, roster management, bulk data)
	admin := v1.NewRoute().Subrouter()
	admin.Use(authMW.RequireAuth)
	admin.Use(authMW.RequireRole(model.RoleCoordinator, model.RoleAdmin))

	admin.HandleFunc("/frameworks", frameworkHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/frameworks/validate", frameworkHandler.Validate).Methods("POST", "OPTIONS")
	admin.HandleFunc("/frameworks/{frameworkId}", frameworkHandler.Update).Methods("PATCH", "OPTIONS")
	admin.HandleFunc("/frameworks/{frameworkId}", frameworkHandler.Delete).Methods("DELETE", "OPTIONS")
	admin.HandleFunc("/frameworks/{frameworkId}/sections/{sectionId}/questions", frameworkHandler.ReplaceQuestions).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/frameworks/{frameworkId}/sections/{sectionId}/questions/{questionId}/move", frameworkHandler.MoveQuestion).Methods("POST", "OPTIONS")
	admin.HandleFunc("/users", authHandler.ListUsers).Methods("GET", "OPTIONS")
	admin.HandleFunc("/users", authHandler.CreateUser).Methods("POST", "OPTIONS")
	admin.HandleFunc("/teachers", teacherHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/teachers/{teacherId}", teacherHandler.Update).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/teachers/{teacherId}", teacherHandler.Delete).Methods("DELETE", "OPTIONS")
	admin.HandleFunc("/export/teachers.csv", exportHandler.Teachers).Methods("GET", "OPTIONS")
	admin.HandleFunc("/export/frameworks.csv", exportHandler.Frameworks).Methods("GET", "OPTIONS")
	admin.HandleFunc("/templates/teachers.csv", exportHandler.TeacherTemplate).Methods("GET", "OPTIONS")
	admin.HandleFunc("/import/teachers", exportHandler.ImportTeachers).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
