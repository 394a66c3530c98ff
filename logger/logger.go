package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/sinklog/bridge"
	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/formatter"
	"github.com/philipp01105/sinklog/global"
	"github.com/philipp01105/sinklog/handler"
)

var (
	// ErrAlreadyInstalled is returned when another sink holds the global slot
	ErrAlreadyInstalled = errors.New("another logger is already installed")
	// ErrInvalidLevelOverride is returned when the level environment variable cannot be parsed
	ErrInvalidLevelOverride = errors.New("invalid level override")
	// ErrProfileFrozen is returned by SetProfile once the logger is installed
	ErrProfileFrozen = errors.New("profile cannot change after installation")
)

// pipeline is the formatting half of a Logger, swapped as a unit
type pipeline struct {
	format *formatter.LineFormatter
	clock  formatter.Clock
}

// Logger owns a SinkSet and registers itself with a global.Slot the first
// time any setter is called. Until then, and until a level is set, it
// writes nothing.
type Logger struct {
	sinks    *handler.SinkSet
	slot     *global.Slot
	pipeline atomic.Pointer[pipeline]

	installMu sync.Mutex // guards profile and the transition to installed
	installed atomic.Bool
	profile   Profile

	lookupEnv func(string) (string, bool)
}

// newLogger creates an uninstalled logger bound to slot
func newLogger(p Profile, slot *global.Slot) *Logger {
	applyProfileDefaults(&p)
	l := &Logger{
		sinks:     handler.NewSinkSet(p.consoleWriter()),
		slot:      slot,
		profile:   p,
		lookupEnv: os.LookupEnv,
	}
	l.pipeline.Store(&pipeline{
		format: formatter.NewLineFormatter(p.palette()),
		clock:  p.clock(),
	})
	return l
}

// Enabled reports whether a record at level would be written
func (l *Logger) Enabled(level core.Level) bool {
	return l.sinks.Enabled(level)
}

// Log writes rec to every active sink. The timestamp is taken before the
// sink lock so contention does not skew it.
func (l *Logger) Log(rec core.Record) {
	if !l.sinks.Enabled(rec.Level) {
		return
	}
	p := l.pipeline.Load()
	l.sinks.Emit(rec, p.clock.Timestamp(), p.format)
}

// Flush is a no-op: every record is written through before Log returns.
func (l *Logger) Flush() {}

// Installed reports whether the logger has registered itself
func (l *Logger) Installed() bool {
	return l.installed.Load()
}

// ensureInstalled performs the one-time registration. Only the call that
// performs it sees its error; concurrent setters wait on installMu until
// it has finished.
func (l *Logger) ensureInstalled() error {
	if l.installed.Load() {
		return nil
	}
	l.installMu.Lock()
	defer l.installMu.Unlock()
	if l.installed.Load() {
		return nil
	}
	defer l.installed.Store(true)
	return l.install()
}

// install registers with the slot and sets the initial level: Info, or the
// value of the profile's environment variable.
func (l *Logger) install() error {
	if err := l.slot.Set(l); err != nil {
		return fmt.Errorf("%w: %w", ErrAlreadyInstalled, err)
	}

	level := core.InfoLevel
	if l.profile.EnvOverride {
		if v, ok := l.lookupEnv(l.profile.EnvVar); ok && v != "" {
			parsed, err := core.ParseLevel(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalidLevelOverride, l.profile.EnvVar, v)
			}
			level = parsed
		}
	}
	if err := l.sinks.SetLevel(level, l.slot.SetMaxLevel); err != nil {
		return err
	}

	if l.profile.BridgeSlog {
		slog.SetDefault(slog.New(bridge.NewSlogHandler(l.slot)))
	}
	return nil
}

// EnableConsole switches the console sink on or off
func (l *Logger) EnableConsole(enabled bool) error {
	if err := l.ensureInstalled(); err != nil {
		return err
	}
	return l.sinks.SetConsole(enabled)
}

// SetFile makes path the file sink, appending to or truncating it.
// Missing parent directories are created.
func (l *Logger) SetFile(path string, appendMode bool) error {
	if err := l.ensureInstalled(); err != nil {
		return err
	}
	return l.sinks.SetFile(path, appendMode)
}

// ClearFile closes the file sink
func (l *Logger) ClearFile() error {
	if err := l.ensureInstalled(); err != nil {
		return err
	}
	return l.sinks.ClearFile()
}

// SetLevel sets the minimum level; OffLevel silences everything
func (l *Logger) SetLevel(level core.Level) error {
	if !level.Valid() && level != core.OffLevel {
		return fmt.Errorf("%w: %d", core.ErrUnknownLevel, level)
	}
	if err := l.ensureInstalled(); err != nil {
		return err
	}
	return l.sinks.SetLevel(level, l.slot.SetMaxLevel)
}

// Level returns the current minimum level, OffLevel before installation
func (l *Logger) Level() core.Level {
	return l.sinks.Level()
}

// SetProfile replaces the profile. It fails with ErrProfileFrozen once the
// logger is installed.
func (l *Logger) SetProfile(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	applyProfileDefaults(&p)

	l.installMu.Lock()
	defer l.installMu.Unlock()
	if l.installed.Load() {
		return ErrProfileFrozen
	}
	if err := l.sinks.SetConsoleWriter(p.consoleWriter()); err != nil {
		return err
	}
	l.profile = p
	l.pipeline.Store(&pipeline{
		format: formatter.NewLineFormatter(p.palette()),
		clock:  p.clock(),
	})
	return nil
}

// Profile returns the active profile
func (l *Logger) Profile() Profile {
	l.installMu.Lock()
	defer l.installMu.Unlock()
	return l.profile
}

// Close closes the file sink. The logger stays installed and keeps
// writing to the console if it is enabled.
func (l *Logger) Close() error {
	return l.sinks.Close()
}

// Stats returns the sink set counters
func (l *Logger) Stats() handler.Snapshot {
	return l.sinks.Stats()
}
