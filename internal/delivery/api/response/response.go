// Package response renders the JSON bodies shared by every API handler.
package response

import (
	"net/http"

	deliverycontext "marquee/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error     string `json:"error"`             // User-facing message
	Code      string `json:"code"`              // Machine-readable kind, e.g. "VALIDATION_ERROR"
	Details   string `json:"details,omitempty"` // Debug-only context
	RequestID string `json:"request_id"`
}

// MessageResponse acknowledges an operation that returns no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error writes an error body. Details never leave the server for 5xx or authentication failures.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Raw relays an already encoded JSON document.
func Raw(c echo.Context, statusCode int, body []byte) error {
	return c.Blob(statusCode, echo.MIMEApplicationJSON, body)
}
