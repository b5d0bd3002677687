package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceHandler struct {
	next      slog.Handler
	minSource slog.Level
}

// NewSourceHandler adds the caller location to records at or above minSource.
// The wrapped handler must be built with AddSource disabled.
func NewSourceHandler(next slog.Handler, minSource slog.Level) slog.Handler {
	return &sourceHandler{next: next, minSource: minSource}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minSource && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := frames.Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), minSource: h.minSource}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), minSource: h.minSource}
}
