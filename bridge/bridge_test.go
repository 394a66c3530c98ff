package bridge_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/global"
)

const testOrigin = "github.com/philipp01105/sinklog/bridge_test"

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

func (r *recordingSink) all() []core.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Record(nil), r.records...)
}

// newSlot returns a slot with a recording sink accepting min and above
func newSlot(t *testing.T, min core.Level) (*global.Slot, *recordingSink) {
	t.Helper()
	slot := global.NewSlot()
	sink := &recordingSink{min: min}
	require.NoError(t, slot.Set(sink))
	slot.SetMaxLevel(min)
	return slot, sink
}
