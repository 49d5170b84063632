package logger

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// multiHandler fans one record out to several sinks. Each sink keeps its
// own level filter, so a debug-level stdout handler and a warn-level
// Sentry handler can share the logger.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) slog.Handler {
	return &multiHandler{handlers: handlers}
}

// Enabled reports true when any sink would accept the level, so the
// record gets built whenever at least one destination wants it.
func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(h.handlers, func(sink slog.Handler) bool {
		return sink.Enabled(ctx, level)
	})
}

// Handle delivers the record to every accepting sink. A failing sink does
// not stop delivery to the rest; the errors are joined.
func (h *multiHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, sink := range h.handlers {
		if !sink.Enabled(ctx, rec.Level) {
			continue
		}
		if err := sink.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.wrapEach(func(sink slog.Handler) slog.Handler {
		return sink.WithAttrs(attrs)
	})
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	return h.wrapEach(func(sink slog.Handler) slog.Handler {
		return sink.WithGroup(name)
	})
}

func (h *multiHandler) wrapEach(wrap func(slog.Handler) slog.Handler) slog.Handler {
	wrapped := make([]slog.Handler, len(h.handlers))
	for i, sink := range h.handlers {
		wrapped[i] = wrap(sink)
	}
	return &multiHandler{handlers: wrapped}
}
