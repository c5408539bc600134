// Package context carries request-scoped values between deliveries and services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

const echoRequestIDKey = "request_id"

type scopeKey struct{}

// scope is what a request leaves in its context.Context
type scope struct {
	requestID string
	logger    *slog.Logger
}

// RequestID returns the request ID stored on the echo context, or a fresh UUID.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// WithScope attaches a request ID and a request-scoped logger to ctx.
func WithScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{requestID: requestID, logger: logger})
}

// RequestIDFrom returns the request ID, or "" outside a request.
func RequestIDFrom(ctx context.Context) string {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s.requestID
	}

	return ""
}

// LoggerFrom returns the request-scoped logger, falling back to fallback.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok && s.logger != nil {
		return s.logger
	}

	return fallback
}
