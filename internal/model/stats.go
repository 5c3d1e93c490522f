package model

// ObservationStats summarizes the observations collection for dashboards
type ObservationStats struct {
	Total              int `json:"total"`
	ThisMonth          int `json:"thisMonth"`
	CRPEvidenceAverage int `json:"crpEvidenceAverage"`
}

// GoalProgress reports progress toward the district observation goal
type GoalProgress struct {
	Current    int     `json:"current"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"` // capped at 100, one decimal place
}

// SearchFilters narrows an observation search. Criteria combine with AND.
type SearchFilters struct {
	Status []ObservationStatus `json:"status,omitempty"`
}

// DashboardSummary is the payload behind the dashboard landing view
type DashboardSummary struct {
	Stats              ObservationStats `json:"stats"`
	GoalProgress       GoalProgress     `json:"goalProgress"`
	RecentObservations []*Observation   `json:"recentObservations"`
}
