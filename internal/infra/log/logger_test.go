package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"intercity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "warn", false)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("Skipping malformed line", slog.Int("line", 4))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Skipping malformed line", record["msg"])
	assert.Equal(t, float64(4), record["line"])
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "bogus"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)

	cfg.Env.Log.Level = "debug"
	cfg.Env.Log.Pretty = true
	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_TagsServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "intercity"

	var buf bytes.Buffer
	logger, err := newForConfig(&buf, cfg)
	require.NoError(t, err)

	logger.Info("Transport network loaded successfully")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "intercity", record["service"])
}
