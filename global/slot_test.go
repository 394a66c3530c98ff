package global

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/sinklog/core"
)

// recordingSink keeps every record it is given
type recordingSink struct {
	mu      sync.Mutex
	min     core.Level
	records []core.Record
	flushes int
}

func (r *recordingSink) Enabled(level core.Level) bool { return r.min.Allows(level) }

func (r *recordingSink) Log(rec core.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

func (r *recordingSink) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushes++
}

func (r *recordingSink) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Message)
	}
	return out
}

func TestSlot_SetOnce(t *testing.T) {
	s := NewSlot()
	first := &recordingSink{}
	second := &recordingSink{}

	assert.Nil(t, s.Sink())
	require.NoError(t, s.Set(first))
	require.NoError(t, s.Set(first), "re-installing the same sink is allowed")
	assert.ErrorIs(t, s.Set(second), ErrSlotOccupied)
	assert.ErrorIs(t, s.Set(nil), ErrNilSink)
	assert.Same(t, first, s.Sink())
}

func TestSlot_ConcurrentSet(t *testing.T) {
	s := NewSlot()
	sinks := make([]*recordingSink, 8)
	errs := make([]error, len(sinks))

	var wg sync.WaitGroup
	for i := range sinks {
		sinks[i] = &recordingSink{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Set(sinks[i])
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotOccupied)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestSlot_MaxLevelHint(t *testing.T) {
	s := NewSlot()
	sink := &recordingSink{min: core.TraceLevel}
	require.NoError(t, s.Set(sink))

	assert.Equal(t, core.OffLevel, s.MaxLevel())
	s.Log(core.Record{Level: core.ErrorLevel, Message: "before hint"})
	assert.Empty(t, sink.messages(), "an Off hint drops everything")
	assert.False(t, s.Enabled(core.ErrorLevel))

	s.SetMaxLevel(core.WarnLevel)
	s.Log(core.Record{Level: core.InfoLevel, Message: "info"})
	s.Log(core.Record{Level: core.WarnLevel, Message: "warn"})
	s.Log(core.Record{Level: core.ErrorLevel, Message: "error"})

	assert.Equal(t, []string{"warn", "error"}, sink.messages())
	assert.True(t, s.Enabled(core.WarnLevel))
	assert.False(t, s.Enabled(core.InfoLevel))
}

func TestSlot_EnabledConsultsSink(t *testing.T) {
	s := NewSlot()
	s.SetMaxLevel(core.TraceLevel)
	assert.False(t, s.Enabled(core.ErrorLevel), "no sink installed")

	require.NoError(t, s.Set(&recordingSink{min: core.ErrorLevel}))
	assert.False(t, s.Enabled(core.WarnLevel))
	assert.True(t, s.Enabled(core.ErrorLevel))
}

func TestSlot_PrintCapturesOrigin(t *testing.T) {
	s := NewSlot()
	sink := &recordingSink{min: core.TraceLevel}
	require.NoError(t, s.Set(sink))
	s.SetMaxLevel(core.TraceLevel)

	s.Print(core.InfoLevel, "a", 1, "b")
	s.Printf(core.DebugLevel, "n=%d", 7)

	require.Len(t, sink.records, 2)
	assert.Equal(t, core.Record{Level: core.InfoLevel, Origin: "github.com/philipp01105/sinklog/global", Message: "a1b"}, sink.records[0])
	assert.Equal(t, core.Record{Level: core.DebugLevel, Origin: "github.com/philipp01105/sinklog/global", Message: "n=7"}, sink.records[1])
}

func TestSlot_Flush(t *testing.T) {
	s := NewSlot()
	s.Flush() // no sink, no panic

	sink := &recordingSink{}
	require.NoError(t, s.Set(sink))
	s.Flush()
	assert.Equal(t, 1, sink.flushes)
}
