package formatter

import (
	"bytes"
	"sync"
	"time"

	"github.com/philipp01105/sinklog/core"
)

// Style is a pair of escape sequences wrapped around a span of text.
// The zero Style renders nothing.
type Style struct {
	Open  string
	Close string
}

// Palette decides how the console line is decorated.
type Palette interface {
	// Level returns the style of the level column for l
	Level(l core.Level) Style
	// Dim returns the style of the brackets and origin
	Dim() Style
	// Italic returns the style of the timestamp and origin text
	Italic() Style
}

// Clock produces the timestamp field of a line, including its trailing
// separator. An empty string means timestamps are disabled.
type Clock interface {
	Timestamp() string
}

// RFC3339Micros stamps lines with an RFC3339 instant at microsecond precision.
type RFC3339Micros struct {
	// UTC renders the instant in UTC ("Z" suffix) instead of local time
	UTC bool
	// now is overridable in tests
	now func() time.Time
}

// timestampLayout is RFC3339 with a fixed six digit fraction
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Timestamp returns the current instant followed by a single space
func (c RFC3339Micros) Timestamp() string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	t := now()
	if c.UTC {
		t = t.UTC()
	}
	buf := make([]byte, 0, len(timestampLayout)+1)
	buf = t.AppendFormat(buf, timestampLayout)
	return string(append(buf, ' '))
}

// NoClock disables timestamps.
type NoClock struct{}

// Timestamp always returns ""
func (NoClock) Timestamp() string { return "" }

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
