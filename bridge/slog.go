package bridge

import (
	"context"
	"log/slog"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/global"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// global.Slot. Installing it with slog.SetDefault also captures the
// standard log package.
type SlogHandler struct {
	slot  *global.Slot
	attrs []core.Field
	group string
}

// NewSlogHandler creates a slog.Handler writing to slot (global.Default() when nil).
func NewSlogHandler(slot *global.Slot) *SlogHandler {
	return &SlogHandler{slot: slotOrDefault(slot)}
}

// Enabled reports whether the installed logger accepts the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.slot.Enabled(FromSlog(level))
}

// Handle renders the record's attributes into the message and hands it to the slot.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	level := FromSlog(r.Level)
	if !h.slot.Enabled(level) {
		return nil
	}

	fields := make([]core.Field, len(h.attrs), len(h.attrs)+r.NumAttrs())
	copy(fields, h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, h.group, a)
		return true
	})

	origin := core.OriginOf(r.PC)
	if origin == "" {
		origin = callerOrigin("log")
	}

	h.slot.Log(core.Record{
		Level:   level,
		Origin:  origin,
		Message: core.MessageWithFields(r.Message, fields),
	})
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newAttrs := make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &SlogHandler{slot: h.slot, attrs: newAttrs, group: h.group}
}

// WithGroup returns a new SlogHandler qualifying later keys with name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{slot: h.slot, attrs: h.attrs, group: joinKey(h.group, name)}
}

// appendAttr flattens a into fields, prefixing keys with group.
// Empty attributes are dropped and groups with an empty key are inlined.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	}

	key := joinKey(group, a.Key)
	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.String(key, a.Value.String()))
	case slog.KindInt64:
		return append(fields, core.Int64(key, a.Value.Int64()))
	case slog.KindUint64:
		return append(fields, core.Uint64(key, a.Value.Uint64()))
	case slog.KindFloat64:
		return append(fields, core.Float64(key, a.Value.Float64()))
	case slog.KindBool:
		return append(fields, core.Bool(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, core.Time(key, a.Value.Time()))
	case slog.KindDuration:
		return append(fields, core.Duration(key, a.Value.Duration()))
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, core.Err(key, err))
		}
		return append(fields, core.Any(key, a.Value.Any()))
	}
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
