package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type windowIDKey struct{}

// WithWindowID stores the portlet window id in ctx.
func WithWindowID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, windowIDKey{}, id)
}

// WindowID returns the portlet window id stored in ctx.
func WindowID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(windowIDKey{}).(string)
	return id, ok && id != ""
}

// WindowIDExtractor adds "window_id" to records logged with a context
// that carries one.
func WindowIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := WindowID(ctx); ok {
			return slog.String("window_id", id), true
		}
		return slog.Attr{}, false
	}
}

// LogHandlerDecorator wraps a slog.Handler and adds extracted attributes to
// each record. Extraction runs per call so request-scoped values are fresh.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next. Nil extractors are ignored.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	d := &LogHandlerDecorator{next: next}
	for _, ex := range extractors {
		if ex != nil {
			d.extractors = append(d.extractors, ex)
		}
	}
	return d
}

func (d *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return d.next.Enabled(ctx, level)
}

func (d *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range d.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return d.next.Handle(ctx, rec)
}

func (d *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandlerDecorator{next: d.next.WithAttrs(attrs), extractors: d.extractors}
}

func (d *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{next: d.next.WithGroup(name), extractors: d.extractors}
}
