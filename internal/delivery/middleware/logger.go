package middleware

import (
	"context"
	"log/slog"
	"time"

	"intercity/config"
	deliverycontext "intercity/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestRecorder receives one observation per served request
type RequestRecorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// LoggerMiddleware logs requests when debug is enabled and reports every
// request to the recorder, if one is set.
type LoggerMiddleware struct {
	logger   *slog.Logger
	recorder RequestRecorder
	debug    bool
}

// NewLoggerMiddleware creates a new logger middleware. recorder may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, recorder RequestRecorder) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:   logger,
		recorder: recorder,
		debug:    config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		// Let the error handler write the response so the status is final
		if err != nil {
			c.Error(err)
		}

		if m.recorder != nil {
			m.recorder.ObserveHTTPRequest(c.Request().Method, routeLabel(c), c.Response().Status, time.Since(start))
		}
		if m.debug {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

// routeLabel keeps metric cardinality bounded for unmatched paths
func routeLabel(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.RequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", routeLabel(c)),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// Route queries carry their parameters in the query string
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
