package logger

import (
	"context"
	"log/slog"
)

// metaHandler decorates an output handler with the correlation metadata
// carried in context.Context. Call sites attach rid and update/user/chat ids
// once via WithRID/WithUpdateMeta; every record logged through that context
// gets the fields without repeating them as attrs. Explicit attrs win over
// context values.
type metaHandler struct {
	inner slog.Handler
}

func newMetaHandler(inner slog.Handler) slog.Handler {
	return &metaHandler{inner: inner}
}

func (h *metaHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *metaHandler) Handle(ctx context.Context, rec slog.Record) error {
	extra := contextAttrs(ctx, &rec)
	if len(extra) > 0 {
		rec = rec.Clone()
		rec.AddAttrs(extra...)
	}
	return h.inner.Handle(ctx, rec)
}

func (h *metaHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &metaHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *metaHandler) WithGroup(name string) slog.Handler {
	return &metaHandler{inner: h.inner.WithGroup(name)}
}

func contextAttrs(ctx context.Context, rec *slog.Record) []slog.Attr {
	if ctx == nil {
		return nil
	}

	present := make(map[string]struct{}, rec.NumAttrs())
	rec.Attrs(func(a slog.Attr) bool {
		present[a.Key] = struct{}{}
		return true
	})

	var extra []slog.Attr
	add := func(a slog.Attr) {
		if _, ok := present[a.Key]; !ok {
			extra = append(extra, a)
		}
	}

	if rid := RIDFrom(ctx); rid != "" {
		add(slog.String("rid", rid))
	}
	if uid := UserIDFrom(ctx); uid != 0 {
		add(slog.Int64("user_id", uid))
	}
	if cid := ChatIDFrom(ctx); cid != 0 {
		add(slog.Int64("chat_id", cid))
	}
	if updID := UpdateIDFrom(ctx); updID != 0 {
		add(slog.Int("update_id", updID))
	}
	if handler := HandlerFrom(ctx); handler != "" {
		add(slog.String("handler", handler))
	}
	return extra
}
