package bridge

import (
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/global"
)

// LogrusHook is a logrus.Hook forwarding every entry to a global.Slot.
type LogrusHook struct {
	slot *global.Slot
}

// NewLogrusHook creates a hook writing to slot (global.Default() when nil).
func NewLogrusHook(slot *global.Slot) *LogrusHook {
	return &LogrusHook{slot: slotOrDefault(slot)}
}

// NewLogrusLogger returns a logrus.Logger whose only output is the hook.
// Its own level is Trace; filtering is left to the installed logger.
func NewLogrusLogger(slot *global.Slot) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.TraceLevel)
	l.SetReportCaller(true)
	l.AddHook(NewLogrusHook(slot))
	return l
}

// Levels implements logrus.Hook
func (h *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook
func (h *LogrusHook) Fire(e *logrus.Entry) error {
	level := FromLogrus(e.Level)
	if !h.slot.Enabled(level) {
		return nil
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]core.Field, 0, len(keys))
	for _, k := range keys {
		switch v := e.Data[k].(type) {
		case string:
			fields = append(fields, core.String(k, v))
		case error:
			fields = append(fields, core.Err(k, v))
		default:
			fields = append(fields, core.Any(k, v))
		}
	}

	var origin string
	if e.Caller != nil {
		origin = core.FuncOrigin(e.Caller.Function)
	}
	if origin == "" {
		origin = callerOrigin("github.com/sirupsen/logrus")
	}

	h.slot.Log(core.Record{
		Level:   level,
		Origin:  origin,
		Message: core.MessageWithFields(e.Message, fields),
	})
	return nil
}
