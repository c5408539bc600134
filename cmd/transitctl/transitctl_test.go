package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleData = `from to mode distance time cost
A B ROAD 100 2 10
B C RAILWAY 200 1 5
A C AIR 300 1 30
C D BOAT 10 1 1
`

func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transport.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleData), 0644))

	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunRoute(t *testing.T) {
	path := writeSample(t)

	tests := []struct {
		name    string
		opts    routeOptions
		want    []string
		notWant string
		wantErr bool
	}{
		{
			name: "cost over all modes",
			opts: routeOptions{data: path, from: "A", to: "C", dimension: "cost"},
			want: []string{"Selected transportation modes: Road Railway Air", "Total cost: 15 yuan", "A -> B (Road) -> C (Railway)"},
		},
		{
			name: "time over air",
			opts: routeOptions{data: path, from: "A", to: "C", dimension: "time", modes: "air"},
			want: []string{"Total time: 1 hours", "A -> C (Air)"},
		},
		{
			name: "no path",
			opts: routeOptions{data: path, from: "A", to: "C", dimension: "cost", modes: "rail"},
			want: []string{"No path found from A to C"},
		},
		{
			name:    "same endpoint",
			opts:    routeOptions{data: path, from: "B", to: "B", dimension: "cost"},
			want:    []string{"Departure and destination cities are the same."},
			notWant: "Optimal route",
		},
		{name: "same unknown city", opts: routeOptions{data: path, from: "Z", to: "Z", dimension: "cost"}, wantErr: true},
		{name: "bad dimension", opts: routeOptions{data: path, from: "A", to: "C", dimension: "speed"}, wantErr: true},
		{name: "bad mode", opts: routeOptions{data: path, from: "A", to: "C", dimension: "cost", modes: "boat"}, wantErr: true},
		{name: "unknown city", opts: routeOptions{data: path, from: "A", to: "D", dimension: "cost"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runRoute(&out, newEngine(quietLogger()), tt.opts)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
			if tt.notWant != "" {
				assert.NotContains(t, out.String(), tt.notWant)
			}
		})
	}
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runValidate(&out, writeSample(t), quietLogger()))

	text := out.String()
	assert.Contains(t, text, "Records: 3")
	assert.Contains(t, text, "Cities: 3")
	assert.Contains(t, text, "Connections: 3")
	assert.Contains(t, text, "Skipped lines: 1")
	assert.Contains(t, text, "line 5:")
	assert.Contains(t, text, "SHA256: ")
	assert.Contains(t, text, "Validation passed!")
}

func TestRunValidate_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(&out, filepath.Join(t.TempDir(), "nope.txt"), quietLogger())

	require.Error(t, err)
	assert.Contains(t, out.String(), "Validation failed")
}
