package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marquee/config"
	"marquee/internal/domain/entity"
	"marquee/internal/domain/repository"
	"marquee/internal/domain/service"
	"marquee/internal/infra/auth"
	"marquee/internal/infra/persistence/memory"
	mockService "marquee/internal/mocks/service"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           4,
			AccessTokenTTL:       time.Hour,
			ResetTokenLength:     22,
			UsernameSuffixLength: 4,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"

	return cfg
}

// newNoopMetrics accepts any number of observations.
func newNoopMetrics(t *testing.T) *mockService.MockAuthMetrics {
	metrics := mockService.NewMockAuthMetrics(t)
	metrics.EXPECT().ObserveAuth(mock.Anything, mock.Anything).Maybe()

	return metrics
}

// newScenarioService wires the real bcrypt hasher, JWT issuer and memory store
// around the given verifier.
func newScenarioService(t *testing.T, verifier service.IdentityVerifier) (usecase.AuthUsecase, service.TokenService) {
	t.Helper()

	return newScenarioServiceWithRepo(t, verifier, memory.NewUserRepository())
}

func newScenarioServiceWithRepo(t *testing.T, verifier service.IdentityVerifier, repo repository.UserRepository) (usecase.AuthUsecase, service.TokenService) {
	t.Helper()

	cfg := newTestConfig()
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     repo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Verifier:     verifier,
		Metrics:      newNoopMetrics(t),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return srv, tokens
}

// interleavingRepo runs a hook right before a write reaches the store, after the
// caller has already read the row it is about to change.
type interleavingRepo struct {
	repository.UserRepository

	beforeSetResetToken func()
	beforeLink          func()
}

func (repo *interleavingRepo) SetResetToken(ctx context.Context, id uuid.UUID, tokenDigest string) (*entity.User, error) {
	if hook := repo.beforeSetResetToken; hook != nil {
		repo.beforeSetResetToken = nil
		hook()
	}

	return repo.UserRepository.SetResetToken(ctx, id, tokenDigest)
}

func (repo *interleavingRepo) LinkFederatedID(ctx context.Context, id uuid.UUID, subjectID string) (*entity.User, error) {
	if hook := repo.beforeLink; hook != nil {
		repo.beforeLink = nil
		hook()
	}

	return repo.UserRepository.LinkFederatedID(ctx, id, subjectID)
}
