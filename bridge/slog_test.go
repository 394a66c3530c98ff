package bridge_test

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/sinklog/bridge"
	"github.com/philipp01105/sinklog/core"
)

func TestSlogHandler_LevelsAndOrigin(t *testing.T) {
	slot, sink := newSlot(t, core.TraceLevel)
	l := slog.New(bridge.NewSlogHandler(slot))

	l.Log(context.Background(), bridge.LevelTrace, "t")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	assert.Equal(t, []core.Record{
		{Level: core.TraceLevel, Origin: testOrigin, Message: "t"},
		{Level: core.DebugLevel, Origin: testOrigin, Message: "d"},
		{Level: core.InfoLevel, Origin: testOrigin, Message: "i"},
		{Level: core.WarnLevel, Origin: testOrigin, Message: "w"},
		{Level: core.ErrorLevel, Origin: testOrigin, Message: "e"},
	}, sink.all())
}

func TestSlogHandler_Enabled(t *testing.T) {
	slot, sink := newSlot(t, core.WarnLevel)
	h := bridge.NewSlogHandler(slot)
	l := slog.New(h)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))

	l.Info("dropped")
	l.Warn("kept")
	require.Len(t, sink.all(), 1)
	assert.Equal(t, "kept", sink.all()[0].Message)
}

func TestSlogHandler_Attrs(t *testing.T) {
	slot, sink := newSlot(t, core.TraceLevel)
	l := slog.New(bridge.NewSlogHandler(slot)).With("service", "api")

	l.WithGroup("req").Info("done",
		"status", 200,
		"took", 1500*time.Millisecond,
		slog.Group("user", "id", 7, "name", "ann lee"),
		slog.Attr{},
		"err", errors.New("none"),
	)

	require.Len(t, sink.all(), 1)
	assert.Equal(t,
		`done service=api req.status=200 req.took=1.5s req.user.id=7 req.user.name="ann lee" req.err=none`,
		sink.all()[0].Message)
}

func TestSlogHandler_InlineGroup(t *testing.T) {
	slot, sink := newSlot(t, core.TraceLevel)
	l := slog.New(bridge.NewSlogHandler(slot))

	l.Info("m", slog.Group("", "a", 1, "b", true))

	require.Len(t, sink.all(), 1)
	assert.Equal(t, "m a=1 b=true", sink.all()[0].Message)
}

func TestSlogHandler_StandardLog(t *testing.T) {
	slot, sink := newSlot(t, core.TraceLevel)

	prev, prevOut, prevFlags := slog.Default(), log.Writer(), log.Flags()
	slog.SetDefault(slog.New(bridge.NewSlogHandler(slot)))
	defer func() {
		slog.SetDefault(prev)
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()

	log.Print("from the log package")

	require.Len(t, sink.all(), 1)
	rec := sink.all()[0]
	assert.Equal(t, core.InfoLevel, rec.Level)
	assert.Equal(t, "from the log package", rec.Message)
	assert.Equal(t, testOrigin, rec.Origin)
}

func TestFromSlog(t *testing.T) {
	assert.Equal(t, core.TraceLevel, bridge.FromSlog(slog.Level(-12)))
	assert.Equal(t, core.DebugLevel, bridge.FromSlog(slog.LevelDebug+1))
	assert.Equal(t, core.ErrorLevel, bridge.FromSlog(slog.LevelError+4))
}
