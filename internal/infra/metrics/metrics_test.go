package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marquee/internal/domain/service"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveAuth(t *testing.T) {
	m := New()

	m.ObserveAuth("login", service.OutcomeSuccess)
	m.ObserveAuth("login", service.OutcomeSuccess)
	m.ObserveAuth("login", service.OutcomeFailure)

	assert.InDelta(t, 2, testutil.ToFloat64(m.authOperations.WithLabelValues("login", service.OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.authOperations.WithLabelValues("login", service.OutcomeFailure)), 0)
}

func TestMetrics_HandlerExposesRequests(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/health", "200", 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `marquee_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "marquee_http_request_duration_seconds")
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	db, err := sql.Open("pgx", "postgres://marquee@127.0.0.1:1/marquee")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := New()
	require.NoError(t, m.RegisterDBStats(db))
	assert.Error(t, m.RegisterDBStats(db), "a second collector for the same db name is rejected")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), `go_sql_open_connections{db_name="marquee"} 0`)
}
