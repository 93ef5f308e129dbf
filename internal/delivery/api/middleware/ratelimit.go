package middleware

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	deliverycontext "marquee/internal/delivery/context"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/infra/cache"

	"github.com/labstack/echo/v4"
)

type limiter interface {
	Take(ctx context.Context, key string) (cache.Decision, error)
}

// RateLimitMiddleware throttles callers per client IP and route.
// Redis failures let the request through.
type RateLimitMiddleware struct {
	limiter limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware accepts a nil bucket, in which case Limit is a no-op.
func NewRateLimitMiddleware(bucket *cache.TokenBucket, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{logger: logger}
	if bucket != nil {
		m.limiter = bucket
	}

	return m
}

func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if m.limiter == nil {
		return next
	}

	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := rateKey(c)

		decision, err := m.limiter.Take(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			header.Set(echo.HeaderRetryAfter, strconv.Itoa(retryAfterSeconds(decision.RetryAfter)))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

func rateKey(c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}

	return "ip:" + ip + ":route:" + c.Request().Method + " " + c.Path()
}

func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}

	return secs
}
