package persistence

import (
	"io"
	"log/slog"
	"testing"

	"marquee/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) Params {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: driver}}

	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewUserRepository_Memory(t *testing.T) {
	repo, err := NewUserRepository(newParams(t, config.StorageDriverMemory))
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestNewUserRepository_PostgresWithoutSection(t *testing.T) {
	repo, err := NewUserRepository(newParams(t, config.StorageDriverPostgres))
	assert.Error(t, err)
	assert.Nil(t, repo)
}

func TestNewUserRepository_UnknownDriver(t *testing.T) {
	repo, err := NewUserRepository(newParams(t, "sqlite"))
	assert.Error(t, err)
	assert.Nil(t, repo)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
