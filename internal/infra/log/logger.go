package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"intercity/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	return newForConfig(os.Stdout, params.Config)
}

// newForConfig tags every record with the configured service name
func newForConfig(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	env := cfg.Env
	logger, err := NewWithWriter(w, env.Log.Level, env.Log.Pretty)
	if err != nil {
		return nil, err
	}
	if env.ServiceName != "" {
		logger = logger.With(slog.String("service", env.ServiceName))
	}

	return logger, nil
}

// NewWithWriter builds a logger writing to w. Pretty selects the text handler,
// otherwise records are written as JSON.
func NewWithWriter(w io.Writer, level string, pretty bool) (*slog.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if pretty {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
