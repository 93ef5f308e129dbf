package usecase

import "context"

// HealthStatus reports the state of the configured collaborators.
type HealthStatus struct {
	Status      string `json:"status"`
	TMDBAPI     string `json:"tmdb_api"`
	Database    string `json:"database"`
	GoogleOAuth string `json:"google_oauth"`
}

type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}
