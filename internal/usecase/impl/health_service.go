package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/repository"
	"marquee/internal/domain/service"
	"marquee/internal/usecase"

	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

type healthService struct {
	userRepo repository.UserRepository
	catalog  service.MovieCatalog
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Catalog  service.MovieCatalog
	Verifier service.IdentityVerifier
	Logger   *slog.Logger
}

func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		userRepo: params.UserRepo,
		catalog:  params.Catalog,
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Check never fails: an unreachable store is reported, not raised.
func (srv *healthService) Check(ctx context.Context) *usecase.HealthStatus {
	status := &usecase.HealthStatus{
		Status:      "healthy",
		TMDBAPI:     configured(srv.catalog.Configured()),
		Database:    "connected",
		GoogleOAuth: configured(srv.verifier.Configured()),
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := srv.userRepo.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Database ping failed", slog.Any("error", err))
		status.Database = "disconnected"
	}

	return status
}

func configured(ok bool) string {
	if ok {
		return "configured"
	}

	return "missing"
}
