package benchmark

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/philipp01105/sinklog/bridge"
	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/formatter"
	"github.com/philipp01105/sinklog/global"
	"github.com/philipp01105/sinklog/handler"
)

var (
	sinkBytes []byte
	sinkStr   string
)

var benchRecord = core.Record{
	Level:   core.InfoLevel,
	Origin:  "github.com/philipp01105/sinklog/benchmark",
	Message: "user logged in",
}

// noopSlot returns a slot backed by noopSink at Trace
func noopSlot() *global.Slot {
	s := global.NewSlot()
	_ = s.Set(&noopSink{})
	s.SetMaxLevel(core.TraceLevel)
	return s
}

// ---------------------------------------------------------------------------
// Formatting
// ---------------------------------------------------------------------------

func BenchmarkFormatConsoleANSI(b *testing.B) {
	f := formatter.NewLineFormatter(formatter.ANSI{})
	var buf bytes.Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatConsole(&buf, benchRecord, "2026-01-15T12:00:00.000000Z ")
	}
	sinkBytes = buf.Bytes()
}

func BenchmarkFormatFile(b *testing.B) {
	f := formatter.NewLineFormatter(nil)
	var buf bytes.Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatFile(&buf, benchRecord, "2026-01-15T12:00:00.000000Z ")
	}
	sinkBytes = buf.Bytes()
}

func BenchmarkTimestamp(b *testing.B) {
	c := formatter.RFC3339Micros{UTC: true}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkStr = c.Timestamp()
	}
}

// ---------------------------------------------------------------------------
// Sink set
// ---------------------------------------------------------------------------

func BenchmarkSinkSetEmitConsole(b *testing.B) {
	s := handler.NewSinkSet(io.Discard)
	_ = s.SetConsole(true)
	_ = s.SetLevel(core.TraceLevel, nil)
	f := formatter.NewLineFormatter(formatter.ANSI{})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Emit(benchRecord, "2026-01-15T12:00:00.000000Z ", f)
	}
}

func BenchmarkSinkSetEmitFile(b *testing.B) {
	s := handler.NewSinkSet(io.Discard)
	if err := s.SetFile(filepath.Join(b.TempDir(), "bench.log"), false); err != nil {
		b.Fatal(err)
	}
	defer s.Close()
	_ = s.SetLevel(core.TraceLevel, nil)
	f := formatter.NewLineFormatter(nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Emit(benchRecord, "2026-01-15T12:00:00.000000Z ", f)
	}
}

func BenchmarkSinkSetEmitParallel(b *testing.B) {
	s := handler.NewSinkSet(io.Discard)
	_ = s.SetConsole(true)
	_ = s.SetLevel(core.TraceLevel, nil)
	f := formatter.NewLineFormatter(nil)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Emit(benchRecord, "", f)
		}
	})
}

// ---------------------------------------------------------------------------
// Front-end overhead into a sink that does nothing
// ---------------------------------------------------------------------------

func BenchmarkFrontend(b *testing.B) {
	b.Run("slot", func(b *testing.B) {
		s := noopSlot()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s.Print(core.InfoLevel, "user logged in")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := slog.New(bridge.NewSlogHandler(noopSlot()))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("user logged in", "user", "ann", "attempt", 2)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := bridge.NewZapLogger(noopSlot())
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("user logged in", zap.String("user", "ann"), zap.Int("attempt", 2))
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := bridge.NewLogrusLogger(noopSlot())
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithField("user", "ann").WithField("attempt", 2).Info("user logged in")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := bridge.NewZerologLogger(noopSlot())
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Str("user", "ann").Int("attempt", 2).Msg("user logged in")
		}
	})

	b.Run("filtered", func(b *testing.B) {
		s := global.NewSlot()
		_ = s.Set(&noopSink{})
		s.SetMaxLevel(core.ErrorLevel)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s.Print(core.DebugLevel, "user logged in")
		}
	})
}
