package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceHandler_AddsSourceAtOrAboveThreshold(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		wantSource bool
	}{
		{"debug below threshold", slog.LevelDebug, false},
		{"info below threshold", slog.LevelInfo, false},
		{"warn at threshold", slog.LevelWarn, true},
		{"error above threshold", slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			l := slog.New(NewSourceHandler(base, slog.LevelWarn))

			l.Log(context.Background(), tt.level, "message")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte(`"source"`)))
		})
	}
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	l := slog.New(NewSourceHandler(base, slog.LevelError)).With("component", "ticket").WithGroup("req")

	l.Info("hello", "id", 7)

	out := buf.String()
	assert.Contains(t, out, `"component":"ticket"`)
	assert.Contains(t, out, `"req":{"id":7}`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
