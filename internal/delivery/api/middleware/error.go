// Package middleware contains the echo middleware specific to the JSON API.
package middleware

import (
	"log/slog"
	"net/http"

	"marquee/config"
	"marquee/internal/delivery/api/response"
	deliverycontext "marquee/internal/delivery/context"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every handler error as a response.ErrorResponse.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		details := ""
		if m.debug {
			details = appErr.Details()
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			_ = response.Error(c, http.StatusNotFound, domainerrors.KindNotFound, "Not found", "")

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, kindForStatus(httpErr.Code), message, "")

		return
	}

	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, domainerrors.KindInternal, domainerrors.ErrInternalError.Message(), "")
}

func kindForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domainerrors.KindUnauthorized
	case status == http.StatusNotFound:
		return domainerrors.KindNotFound
	case status == http.StatusTooManyRequests:
		return domainerrors.KindRateLimited
	case status >= http.StatusInternalServerError:
		return domainerrors.KindInternal
	default:
		return domainerrors.KindValidation
	}
}
