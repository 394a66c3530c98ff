package handler

import "sync/atomic"

// Stats tracks sink set statistics
type Stats struct {
	// EmittedTotal counts records dispatched to the active sinks
	EmittedTotal uint64
	// ConsoleErrors counts failed console writes or flushes
	ConsoleErrors uint64
	// FileErrors counts failed file writes
	FileErrors uint64
	// DroppedTotal counts records lost because the lock was unavailable
	DroppedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEmitted atomically increments the emitted counter
func (s *Stats) IncrementEmitted() {
	atomic.AddUint64(&s.EmittedTotal, 1)
}

// IncrementConsoleErrors atomically increments the console error counter
func (s *Stats) IncrementConsoleErrors() {
	atomic.AddUint64(&s.ConsoleErrors, 1)
}

// IncrementFileErrors atomically increments the file error counter
func (s *Stats) IncrementFileErrors() {
	atomic.AddUint64(&s.FileErrors, 1)
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Emitted       uint64
	ConsoleErrors uint64
	FileErrors    uint64
	Dropped       uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Emitted:       atomic.LoadUint64(&s.EmittedTotal),
		ConsoleErrors: atomic.LoadUint64(&s.ConsoleErrors),
		FileErrors:    atomic.LoadUint64(&s.FileErrors),
		Dropped:       atomic.LoadUint64(&s.DroppedTotal),
	}
}
