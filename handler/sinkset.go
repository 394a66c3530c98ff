package handler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/formatter"
)

// SinkSet holds the console and file sinks and the minimum level behind a
// single mutex. Configuration changes and record dispatch both take that
// mutex, so a record's console and file lines are written as one unit.
type SinkSet struct {
	mu       sync.Mutex
	broken   bool
	console  bool
	consoleW io.Writer
	file     io.WriteCloser
	filePath string
	minLevel core.Level
	buf      bytes.Buffer // reused under mu
	warn     io.Writer
	stats    *Stats
}

// NewSinkSet creates a sink set with no active sink and no level: nothing
// is enabled until SetLevel is called. console is the writer used once the
// console sink is switched on; nil means stderr.
func NewSinkSet(console io.Writer) *SinkSet {
	if console == nil {
		console = os.Stderr
	}
	s := &SinkSet{
		consoleW: console,
		minLevel: core.OffLevel,
		warn:     os.Stderr,
		stats:    NewStats(),
	}
	s.buf.Grow(256)
	return s
}

// lock acquires mu, refusing when a previous holder panicked.
func (s *SinkSet) lock() error {
	s.mu.Lock()
	if s.broken {
		s.mu.Unlock()
		return ErrLockUnavailable
	}
	return nil
}

// SetConsole switches the console sink on or off
func (s *SinkSet) SetConsole(enabled bool) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	s.console = enabled
	return nil
}

// SetConsoleWriter replaces the writer used by the console sink
func (s *SinkSet) SetConsoleWriter(w io.Writer) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	s.consoleW = w
	return nil
}

// SetWarnWriter replaces the writer receiving the set's own warnings
func (s *SinkSet) SetWarnWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	s.warn = w
}

// SetFile opens path (creating missing parent directories) and makes it
// the file sink, closing the previous file. The file is appended to or
// truncated according to appendMode. On failure the previous file stays
// active and a *FileOpenError is returned.
func (s *SinkSet) SetFile(path string, appendMode bool) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	file, err := openFile(path, appendMode)
	if err != nil {
		return err
	}
	if s.file != nil {
		_ = s.file.Close()
	}
	s.file = file
	s.filePath = path
	return nil
}

// ClearFile closes and forgets the file sink
func (s *SinkSet) ClearFile() error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if s.file != nil {
		_ = s.file.Close()
	}
	s.file = nil
	s.filePath = ""
	return nil
}

// SetLevel sets the minimum level. hint, when not nil, is called with the
// new level before the lock is released so a global fast-path copy of the
// level never disagrees with this one.
func (s *SinkSet) SetLevel(level core.Level, hint func(core.Level)) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	s.minLevel = level
	if hint != nil {
		hint(level)
	}
	return nil
}

// Enabled reports whether a record at level would be dispatched.
// It is false before any level was set and once the lock is unavailable.
func (s *SinkSet) Enabled(level core.Level) bool {
	if err := s.lock(); err != nil {
		return false
	}
	defer s.mu.Unlock()
	return s.minLevel.Allows(level)
}

// Level returns the current minimum level (OffLevel when unset)
func (s *SinkSet) Level() core.Level {
	if err := s.lock(); err != nil {
		return core.OffLevel
	}
	defer s.mu.Unlock()
	return s.minLevel
}

// ConsoleEnabled reports whether the console sink is on
func (s *SinkSet) ConsoleEnabled() bool {
	if err := s.lock(); err != nil {
		return false
	}
	defer s.mu.Unlock()
	return s.console
}

// FilePath returns the path of the active file sink, or ""
func (s *SinkSet) FilePath() string {
	if err := s.lock(); err != nil {
		return ""
	}
	defer s.mu.Unlock()
	return s.filePath
}

// Emit formats rec and writes it to every active sink under the lock.
// ts is the already captured timestamp field. Write failures are counted
// and otherwise ignored; Emit never returns an error and never panics.
func (s *SinkSet) Emit(rec core.Record, ts string, f *formatter.LineFormatter) {
	if err := s.lock(); err != nil {
		s.stats.IncrementDropped()
		s.mu.Lock()
		w := s.warn
		s.mu.Unlock()
		warnf(w, "sinklog: %v, dropping record: %s %s: %s\n", err, rec.Level, rec.Origin, rec.Message)
		return
	}
	defer s.release(rec)

	if s.console && s.consoleW != nil {
		s.buf.Reset()
		f.FormatConsole(&s.buf, rec, ts)
		if err := writeConsole(s.consoleW, s.buf.Bytes()); err != nil {
			s.stats.IncrementConsoleErrors()
		}
	}

	if s.file != nil {
		s.buf.Reset()
		f.FormatFile(&s.buf, rec, ts)
		if _, err := s.file.Write(s.buf.Bytes()); err != nil {
			s.stats.IncrementFileErrors()
		}
	}

	s.stats.IncrementEmitted()
}

// release unlocks after Emit. A panic from a sink writer marks the set
// broken instead of reaching the caller.
func (s *SinkSet) release(rec core.Record) {
	if r := recover(); r != nil {
		s.broken = true
		s.stats.IncrementDropped()
		warnf(s.warn, "sinklog: sink panicked (%v), lock unavailable from now on; dropped record: %s %s: %s\n",
			r, rec.Level, rec.Origin, rec.Message)
	}
	s.mu.Unlock()
}

// warnf reports a problem of the set itself; write errors are ignored.
func warnf(w io.Writer, format string, args ...interface{}) {
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, format, args...)
}

// Stats returns a snapshot of the current statistics
func (s *SinkSet) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Close closes the file sink, if any. The console sink and level are kept.
func (s *SinkSet) Close() error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.filePath = ""
	return err
}
