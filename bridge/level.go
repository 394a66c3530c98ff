package bridge

import (
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/sinklog/core"
)

// LevelTrace is the slog level mapped to core.TraceLevel
const LevelTrace = slog.Level(-8)

// FromSlog maps a slog level; anything below slog.LevelDebug is Trace
func FromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// FromZap maps a zap level; DPanic, Panic and Fatal become Error
func FromZap(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	case level >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// FromLogrus maps a logrus level; Panic and Fatal become Error
func FromLogrus(level logrus.Level) core.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// FromZerolog maps a zerolog level. NoLevel is treated as Info; ok is
// false for Disabled.
func FromZerolog(level zerolog.Level) (lvl core.Level, ok bool) {
	switch level {
	case zerolog.PanicLevel, zerolog.FatalLevel, zerolog.ErrorLevel:
		return core.ErrorLevel, true
	case zerolog.WarnLevel:
		return core.WarnLevel, true
	case zerolog.InfoLevel, zerolog.NoLevel:
		return core.InfoLevel, true
	case zerolog.DebugLevel:
		return core.DebugLevel, true
	case zerolog.TraceLevel:
		return core.TraceLevel, true
	default:
		return core.OffLevel, false
	}
}
