package bridge

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/global"
)

// ZapCore is a zapcore.Core writing to a global.Slot.
type ZapCore struct {
	slot   *global.Slot
	fields []core.Field
	ns     string // current zap.Namespace prefix
}

// NewZapCore creates a core writing to slot (global.Default() when nil).
func NewZapCore(slot *global.Slot) *ZapCore {
	return &ZapCore{slot: slotOrDefault(slot)}
}

// NewZapLogger returns a *zap.Logger on a ZapCore with caller capture
// enabled, so origins are resolved without walking the stack.
func NewZapLogger(slot *global.Slot, opts ...zap.Option) *zap.Logger {
	return zap.New(NewZapCore(slot), append([]zap.Option{zap.AddCaller()}, opts...)...)
}

// Enabled implements zapcore.LevelEnabler
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.slot.Enabled(FromZap(level))
}

// With returns a core carrying fields on every entry
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	clone := &ZapCore{slot: c.slot}
	clone.fields = make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(clone.fields, c.fields)
	clone.fields, clone.ns = appendZapFields(clone.fields, c.ns, fields)
	return clone
}

// Check adds the core to ce when the entry's level is enabled
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders ent and fields into a record and logs it
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := make([]core.Field, 0, len(c.fields)+len(fields)+1)
	if ent.LoggerName != "" {
		all = append(all, core.String("logger", ent.LoggerName))
	}
	all = append(all, c.fields...)
	all, _ = appendZapFields(all, c.ns, fields)

	var origin string
	if ent.Caller.Defined {
		origin = core.FuncOrigin(ent.Caller.Function)
		if origin == "" {
			origin = core.OriginOf(ent.Caller.PC)
		}
	}
	if origin == "" {
		origin = callerOrigin("go.uber.org/zap")
	}

	c.slot.Log(core.Record{
		Level:   FromZap(ent.Level),
		Origin:  origin,
		Message: core.MessageWithFields(ent.Message, all),
	})
	return nil
}

// Sync flushes the installed logger
func (c *ZapCore) Sync() error {
	c.slot.Flush()
	return nil
}

// appendZapFields converts fields, returning the namespace in effect after them.
func appendZapFields(dst []core.Field, ns string, fields []zapcore.Field) ([]core.Field, string) {
	for _, f := range fields {
		key := joinKey(ns, f.Key)
		switch f.Type {
		case zapcore.SkipType:
		case zapcore.NamespaceType:
			ns = key
		case zapcore.StringType:
			dst = append(dst, core.String(key, f.String))
		case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
			dst = append(dst, core.Int64(key, f.Integer))
		case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type, zapcore.UintptrType:
			dst = append(dst, core.Uint64(key, uint64(f.Integer)))
		case zapcore.Float64Type:
			dst = append(dst, core.Float64(key, math.Float64frombits(uint64(f.Integer))))
		case zapcore.BoolType:
			dst = append(dst, core.Bool(key, f.Integer == 1))
		case zapcore.DurationType:
			dst = append(dst, core.Duration(key, time.Duration(f.Integer)))
		default:
			// Everything else goes through zap's own encoding; an error may
			// yield more than one key ("error", "errorVerbose").
			enc := zapcore.NewMapObjectEncoder()
			f.AddTo(enc)
			keys := make([]string, 0, len(enc.Fields))
			for k := range enc.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				dst = append(dst, core.Any(joinKey(ns, k), enc.Fields[k]))
			}
		}
	}
	return dst, ns
}
