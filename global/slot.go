package global

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/philipp01105/sinklog/core"
)

// Sink is the contract a logger fulfils to receive records from a Slot.
// Implementations must be comparable, normally a pointer type.
type Sink interface {
	// Enabled reports whether a record at level would be written
	Enabled(level core.Level) bool
	// Log writes rec; it must never panic into the caller
	Log(rec core.Record)
	// Flush writes out anything buffered
	Flush()
}

var (
	// ErrSlotOccupied is returned by Set when another sink is installed
	ErrSlotOccupied = errors.New("a different sink is already installed")
	// ErrNilSink is returned by Set for a nil sink
	ErrNilSink = errors.New("nil sink")
)

// Slot holds at most one Sink plus a max-level hint that front-ends check
// before building a record. The zero Slot is not usable; use NewSlot.
type Slot struct {
	sink     atomic.Pointer[sinkBox]
	maxLevel atomic.Int32
}

type sinkBox struct {
	sink Sink
}

// NewSlot creates an empty slot whose hint lets nothing through
func NewSlot() *Slot {
	s := &Slot{}
	s.maxLevel.Store(int32(core.OffLevel))
	return s
}

// Set installs sink. Installing the same sink again is a no-op; installing
// a different one once the slot is taken fails with ErrSlotOccupied.
func (s *Slot) Set(sink Sink) error {
	if sink == nil {
		return ErrNilSink
	}
	if s.sink.CompareAndSwap(nil, &sinkBox{sink: sink}) {
		return nil
	}
	if cur := s.sink.Load(); cur != nil && cur.sink == sink {
		return nil
	}
	return ErrSlotOccupied
}

// Sink returns the installed sink, or nil
func (s *Slot) Sink() Sink {
	if box := s.sink.Load(); box != nil {
		return box.sink
	}
	return nil
}

// SetMaxLevel sets the fast-path hint. Records below it are discarded
// without consulting the sink.
func (s *Slot) SetMaxLevel(level core.Level) {
	s.maxLevel.Store(int32(level))
}

// MaxLevel returns the fast-path hint
func (s *Slot) MaxLevel() core.Level {
	return core.Level(s.maxLevel.Load())
}

// Enabled reports whether a record at level would reach the sink's output
func (s *Slot) Enabled(level core.Level) bool {
	if !s.MaxLevel().Allows(level) {
		return false
	}
	sink := s.Sink()
	return sink != nil && sink.Enabled(level)
}

// Log hands rec to the sink when the hint allows its level
func (s *Slot) Log(rec core.Record) {
	if !s.MaxLevel().Allows(rec.Level) {
		return
	}
	if sink := s.Sink(); sink != nil {
		sink.Log(rec)
	}
}

// Flush flushes the installed sink
func (s *Slot) Flush() {
	if sink := s.Sink(); sink != nil {
		sink.Flush()
	}
}

// print builds a record from args; depth is the number of frames between
// the user's call site and print.
func (s *Slot) print(depth int, level core.Level, args []interface{}) {
	if !s.MaxLevel().Allows(level) {
		return
	}
	s.Log(core.Record{Level: level, Origin: core.Origin(depth + 1), Message: fmt.Sprint(args...)})
}

func (s *Slot) printf(depth int, level core.Level, format string, args []interface{}) {
	if !s.MaxLevel().Allows(level) {
		return
	}
	s.Log(core.Record{Level: level, Origin: core.Origin(depth + 1), Message: fmt.Sprintf(format, args...)})
}

// Print logs args at level, joined as by fmt.Sprint, with the caller's
// package as origin.
func (s *Slot) Print(level core.Level, args ...interface{}) {
	s.print(1, level, args)
}

// Printf logs a formatted message at level with the caller's package as origin.
func (s *Slot) Printf(level core.Level, format string, args ...interface{}) {
	s.printf(1, level, format, args)
}
