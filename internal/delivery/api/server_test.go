package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/config"
	apimiddleware "marquee/internal/delivery/api/middleware"
	"marquee/internal/delivery/api/response"
	"marquee/internal/delivery/api/router"
	"marquee/internal/delivery/api/router/handler"
	deliverycontext "marquee/internal/delivery/context"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/infra/metrics"
	mockService "marquee/internal/mocks/service"
	mockUsecase "marquee/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo   *echo.Echo
	auth   *mockUsecase.MockAuthUsecase
	movies *mockUsecase.MockMovieUsecase
	health *mockUsecase.MockHealthUsecase
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	if cfg.Static == nil {
		cfg.Static = &config.StaticConfig{}
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := metrics.New()

	ts := &testServer{
		auth:   mockUsecase.NewMockAuthUsecase(t),
		movies: mockUsecase.NewMockMovieUsecase(t),
		health: mockUsecase.NewMockHealthUsecase(t),
	}

	r := router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(ts.auth),
		MovieHandler:        handler.NewMovieHandler(ts.movies),
		HealthHandler:       handler.NewHealthHandler(ts.health),
		AuthMiddleware:      apimiddleware.NewAuthMiddleware(mockService.NewMockTokenService(t)),
		RateLimitMiddleware: apimiddleware.NewRateLimitMiddleware(nil, logger),
		Metrics:             reg,
	})
	ts.echo = newEcho(cfg, logger, apimiddleware.NewMetricsMiddleware(reg), r)

	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_UnknownAPIRoute(t *testing.T) {
	ts := newTestServer(t, &config.Config{})

	for _, target := range []string{"/api/nope", "/api/movies/genre", "/api"} {
		t.Run(target, func(t *testing.T) {
			rec := ts.do(http.MethodGet, target, "")

			body := decodeError(t, rec)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "API route not found", body.Error)
			assert.Equal(t, domainerrors.KindNotFound, body.Code)
			assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body.RequestID)
		})
	}
}

func TestServer_ErrorEnvelope(t *testing.T) {
	ts := newTestServer(t, &config.Config{})
	ts.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := ts.do(http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`)

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", body.Error)
	assert.Equal(t, domainerrors.KindUnauthorized, body.Code)
	assert.NotEmpty(t, body.RequestID)
}

func TestServer_MeRequiresBearerToken(t *testing.T) {
	ts := newTestServer(t, &config.Config{})

	rec := ts.do(http.MethodGet, "/api/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header is missing", decodeError(t, rec).Error)
}

func TestServer_BodyLimit(t *testing.T) {
	ts := newTestServer(t, &config.Config{})

	rec := ts.do(http.MethodPost, "/api/signup", `{"username":"`+strings.Repeat("a", 2048)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t, &config.Config{})
	ts.health.EXPECT().Check(mock.Anything).Return(nil)

	ts.do(http.MethodGet, "/api/health", "")
	rec := ts.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `marquee_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestServer_StaticSPAFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	ts := newTestServer(t, &config.Config{Static: &config.StaticConfig{Dir: dir}})

	rec := ts.do(http.MethodGet, "/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = ts.do(http.MethodGet, "/movies/550", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>app</html>", rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "API route not found", decodeError(t, rec).Error)
}

func TestServer_NoStaticDirIsNotFound(t *testing.T) {
	ts := newTestServer(t, &config.Config{})

	rec := ts.do(http.MethodGet, "/login", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.KindNotFound, decodeError(t, rec).Code)
}
