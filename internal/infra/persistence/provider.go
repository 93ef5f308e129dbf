// Package persistence selects the credential store backing the service.
package persistence

import (
	"log/slog"

	"marquee/config"
	"marquee/internal/domain/repository"
	"marquee/internal/errors"
	"marquee/internal/infra/metrics"
	"marquee/internal/infra/persistence/memory"
	"marquee/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewUserRepository builds the store named by storage.driver.
func NewUserRepository(params Params) (repository.UserRepository, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory user store, data is lost on restart")

		return memory.NewUserRepository(), nil
	case config.StorageDriverPostgres:
		pgParams := postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		}
		if params.Metrics != nil {
			pgParams.Stats = params.Metrics
		}

		db, err := postgres.New(pgParams)
		if err != nil {
			return nil, err
		}

		return postgres.NewUserRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %q", params.Config.Storage.Driver)
	}
}
