package impl

import (
	"context"
	"testing"

	"marquee/internal/errors"
	mockRepo "marquee/internal/mocks/repository"
	mockService "marquee/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthService_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		tmdb       bool
		google     bool
		wantDB     string
		wantTMDB   string
		wantGoogle string
	}{
		{name: "all configured", tmdb: true, google: true, wantDB: "connected", wantTMDB: "configured", wantGoogle: "configured"},
		{name: "store down", pingErr: errors.New("dial tcp: refused"), wantDB: "disconnected", wantTMDB: "missing", wantGoogle: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockUserRepository(t)
			catalog := mockService.NewMockMovieCatalog(t)
			verifier := mockService.NewMockIdentityVerifier(t)

			repo.EXPECT().Ping(mock.Anything).Return(tt.pingErr)
			catalog.EXPECT().Configured().Return(tt.tmdb)
			verifier.EXPECT().Configured().Return(tt.google)

			srv := NewHealthService(HealthServiceParams{
				UserRepo: repo,
				Catalog:  catalog,
				Verifier: verifier,
				Logger:   newDiscardLogger(),
			})

			status := srv.Check(context.Background())
			assert.Equal(t, "healthy", status.Status)
			assert.Equal(t, tt.wantDB, status.Database)
			assert.Equal(t, tt.wantTMDB, status.TMDBAPI)
			assert.Equal(t, tt.wantGoogle, status.GoogleOAuth)
		})
	}
}
