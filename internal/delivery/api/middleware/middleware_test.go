package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marquee/config"
	"marquee/internal/delivery/api/response"
	deliverycontext "marquee/internal/delivery/context"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/service"
	"marquee/internal/errors"
	"marquee/internal/infra/cache"
	"marquee/internal/infra/metrics"
	mockService "marquee/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "app error",
			err:         errors.Wrap(domainerrors.ErrUserAlreadyExists, "signup"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    domainerrors.KindConflict,
			wantMessage: "User already exists",
		},
		{
			name:        "details hidden without debug",
			err:         domainerrors.ErrInvalidResetToken.WithDetails("digest mismatch"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    domainerrors.KindInvalidToken,
			wantMessage: "Invalid or expired reset token",
		},
		{
			name:        "details shown in debug",
			debug:       true,
			err:         domainerrors.ErrInvalidResetToken.WithDetails("digest mismatch"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    domainerrors.KindInvalidToken,
			wantMessage: "Invalid or expired reset token",
			wantDetails: "digest mismatch",
		},
		{
			name:        "debug details never on 401",
			debug:       true,
			err:         domainerrors.ErrInvalidFederatedToken.WithDetails("audience mismatch"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    domainerrors.KindUnauthorized,
			wantMessage: "Invalid Google token",
		},
		{
			name:        "debug details never on 5xx",
			debug:       true,
			err:         domainerrors.NewDatabaseExecuteError(errors.New("conn refused"), "find user"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    domainerrors.KindInternal,
			wantMessage: "Database error",
		},
		{
			name:        "echo http error",
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    domainerrors.KindValidation,
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "echo not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    domainerrors.KindNotFound,
			wantMessage: "Not found",
		},
		{
			name:        "unknown error is generic",
			err:         errors.New("pq: secret internals"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    domainerrors.KindInternal,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/signup", nil), rec)
			deliverycontext.SetRequestID(c, "req-42")

			NewErrorMiddleware(discardLogger(), cfg).HandleHTTPError(tt.err, c)

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Equal(t, tt.wantDetails, body.Details)
			assert.Equal(t, "req-42", body.RequestID)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(discardLogger(), &config.Config{}).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		header  string
		setup   func(m *mockService.MockTokenService)
		wantErr error
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrTokenMissing,
		},
		{
			name:    "not a bearer token",
			header:  "Basic abc",
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:    "empty bearer",
			header:  "Bearer ",
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:   "rejected token",
			header: "Bearer forged",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))
			},
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
				called = true
				got, ok := deliverycontext.GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, got)

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

type fakeLimiter struct {
	decision cache.Decision
	err      error
	keys     []string
}

func (f *fakeLimiter) Take(_ context.Context, key string) (cache.Decision, error) {
	f.keys = append(f.keys, key)

	return f.decision, f.err
}

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		limiter        *fakeLimiter
		wantErr        error
		wantCalled     bool
		wantRetryAfter string
		wantRemaining  string
	}{
		{
			name:          "allowed",
			limiter:       &fakeLimiter{decision: cache.Decision{Allowed: true, Limit: 5, Remaining: 4}},
			wantCalled:    true,
			wantRemaining: "4",
		},
		{
			name:           "blocked",
			limiter:        &fakeLimiter{decision: cache.Decision{Limit: 5, RetryAfter: 1500 * time.Millisecond}},
			wantErr:        domainerrors.ErrRateLimited,
			wantRetryAfter: "2",
			wantRemaining:  "0",
		},
		{
			name:       "redis down fails open",
			limiter:    &fakeLimiter{err: errors.New("dial tcp: connection refused")},
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &RateLimitMiddleware{limiter: tt.limiter, logger: discardLogger()}

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = "203.0.113.7:5555"
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/api/login")

			called := false
			err := m.Limit(func(echo.Context) error {
				called = true

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get(echo.HeaderRetryAfter))
			assert.Equal(t, tt.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, []string{"ip:203.0.113.7:route:POST /api/login"}, tt.limiter.keys)
		})
	}
}

func TestRateLimitMiddleware_NilBucketIsNoop(t *testing.T) {
	m := NewRateLimitMiddleware(nil, discardLogger())

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/login", nil), httptest.NewRecorder())

	called := false
	require.NoError(t, m.Limit(func(echo.Context) error {
		called = true

		return nil
	})(c))
	assert.True(t, called)
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 3, retryAfterSeconds(3*time.Second))
}

func TestMetricsMiddleware_RecordsRouteTemplate(t *testing.T) {
	reg := metrics.New()
	mw := NewMetricsMiddleware(reg)

	e := echo.New()
	e.GET("/api/movie/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, mw.Record)
	e.POST("/api/login", func(echo.Context) error {
		return domainerrors.ErrInvalidCredentials
	}, mw.Record)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/movie/550", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/login", nil))

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), `marquee_http_requests_total{method="GET",route="/api/movie/:id",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `marquee_http_requests_total{method="POST",route="/api/login",status="401"} 1`)
}
