package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nyuchitech/EducatorEval/internal/cache"
	"github.com/nyuchitech/EducatorEval/internal/config"
	"github.com/nyuchitech/EducatorEval/internal/repository"
	"github.com/nyuchitech/EducatorEval/internal/service"
	"github.com/nyuchitech/EducatorEval/internal/transport/rest"
	"github.com/nyuchitech/EducatorEval/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	frameworkRepo := repository.NewFrameworkRepo(db)
	observationRepo := repository.NewObservationRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	teacherRepo := repository.NewTeacherRepo(db)
	userRepo := repository.NewUserRepo(db)

	// Initialize caches
	frameworkCache := cache.NewFrameworkCache(rdb)
	statsCache := cache.NewStatsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	frameworkSvc := service.NewFrameworkService(frameworkRepo, frameworkCache)
	observationSvc := service.NewObservationService(observationRepo, statsCache, cfg.ObservationGoal)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	teacherSvc := service.NewTeacherService(teacherRepo)
	exportSvc := service.NewExportService()

	// Inject broadcaster (wsHub implements service.Broadcaster)
	frameworkSvc.SetBroadcaster(wsHub)
	observationSvc.SetBroadcaster(wsHub)
	teacherSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:        authSvc,
		FrameworkService:   frameworkSvc,
		ObservationService: observationSvc,
		ScheduleService:    scheduleSvc,
		TeacherService:     teacherSvc,
		ExportService:      exportSvc,
		WSHub:              wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
