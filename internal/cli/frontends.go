package cli

import (
	"context"
	"log/slog"
	"sort"

	"go.uber.org/zap"

	"github.com/philipp01105/sinklog/bridge"
	"github.com/philipp01105/sinklog/global"
)

// emitter logs one record per level through a single front-end
type emitter func()

var frontends = map[string]emitter{
	"global":  emitGlobal,
	"slog":    emitSlog,
	"zap":     emitZap,
	"logrus":  emitLogrus,
	"zerolog": emitZerolog,
}

func frontendNames() []string {
	names := make([]string, 0, len(frontends))
	for name := range frontends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func emitGlobal() {
	global.Trace("trace via global")
	global.Debug("debug via global")
	global.Info("info via global")
	global.Warn("warn via global")
	global.Error("error via global")
}

func emitSlog() {
	l := slog.New(bridge.NewSlogHandler(nil)).With("via", "slog")
	l.Log(context.Background(), bridge.LevelTrace, "trace")
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
}

// zap has no trace level
func emitZap() {
	l := bridge.NewZapLogger(nil).With(zap.String("via", "zap"))
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	_ = l.Sync()
}

func emitLogrus() {
	l := bridge.NewLogrusLogger(nil).WithField("via", "logrus")
	l.Trace("trace")
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
}

func emitZerolog() {
	l := bridge.NewZerologLogger(nil).With().Str("via", "zerolog").Logger()
	l.Trace().Msg("trace")
	l.Debug().Msg("debug")
	l.Info().Msg("info")
	l.Warn().Msg("warn")
	l.Error().Msg("error")
}
