package redact

import (
	"context"
	"log/slog"
)

// Handler is a slog.Handler decorator that masks sensitive attributes.
type Handler struct {
	next     slog.Handler
	redactor *Redactor
}

// NewHandler wraps next. A nil redactor uses New().
func NewHandler(next slog.Handler, r *Redactor) slog.Handler {
	if r == nil {
		r = New()
	}
	return &Handler{next: next, redactor: r}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle rebuilds the record with redacted message and attributes.
func (h *Handler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, h.redactor.String(rec.Message), rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.redactor.Attr(a))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redactor.Attr(a)
	}
	return &Handler{next: h.next.WithAttrs(redacted), redactor: h.redactor}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name), redactor: h.redactor}
}

// Attr returns a with its value masked when the key is sensitive. Groups are
// redacted recursively and LogValuer values are resolved first.
func (r *Redactor) Attr(a slog.Attr) slog.Attr {
	if r.IsSensitive(a.Key) {
		return slog.String(a.Key, r.mask)
	}

	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindGroup:
		group := v.Group()
		redacted := make([]slog.Attr, len(group))
		for i, ga := range group {
			redacted[i] = r.Attr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	case slog.KindString:
		return slog.String(a.Key, r.String(v.String()))
	case slog.KindAny:
		return slog.Any(a.Key, r.Value(a.Key, v.Any()))
	}
	return slog.Attr{Key: a.Key, Value: v}
}
