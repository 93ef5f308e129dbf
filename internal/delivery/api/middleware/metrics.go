package middleware

import (
	"strconv"
	"time"

	deliverymiddleware "marquee/internal/delivery/middleware"
	"marquee/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

func (m *MetricsMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		status := deliverymiddleware.ResponseStatus(c, err)
		m.metrics.ObserveRequest(c.Request().Method, route, strconv.Itoa(status), time.Since(start))

		return err
	}
}
