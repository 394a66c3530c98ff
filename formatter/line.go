package formatter

import (
	"bytes"

	"github.com/philipp01105/sinklog/core"
)

// LineFormatter renders records into console and file lines.
// It is stateless apart from its palette and safe for concurrent use.
type LineFormatter struct {
	palette Palette
}

// NewLineFormatter creates a formatter decorating console lines with p.
// A nil palette is treated as Plain.
func NewLineFormatter(p Palette) *LineFormatter {
	if p == nil {
		p = Plain{}
	}
	return &LineFormatter{palette: p}
}

// Palette returns the console palette in use
func (f *LineFormatter) Palette() Palette {
	return f.palette
}

// FormatConsole writes the console line for rec, newline included, into buf.
// ts is the Clock output and may be empty.
func (f *LineFormatter) FormatConsole(buf *bytes.Buffer, rec core.Record, ts string) {
	dim, italic, level := f.palette.Dim(), f.palette.Italic(), f.palette.Level(rec.Level)

	buf.WriteString(dim.Open)
	buf.WriteByte('[')
	buf.WriteString(italic.Open)
	buf.WriteString(ts)
	buf.WriteString(italic.Close)
	buf.WriteString(level.Open)
	buf.WriteString(rec.Level.Padded())
	buf.WriteString(level.Close)
	buf.WriteByte(' ')
	buf.WriteString(dim.Open)
	buf.WriteString(italic.Open)
	buf.WriteString(rec.Origin)
	buf.WriteString(italic.Close)
	buf.WriteString(dim.Open)
	buf.WriteByte(']')
	buf.WriteString(dim.Close)
	buf.WriteByte(' ')
	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}

// FormatFile writes the undecorated file line for rec, newline included, into buf.
func (f *LineFormatter) FormatFile(buf *bytes.Buffer, rec core.Record, ts string) {
	buf.WriteByte('[')
	buf.WriteString(ts)
	buf.WriteString(rec.Level.Padded())
	buf.WriteByte(' ')
	buf.WriteString(rec.Origin)
	buf.WriteString("] ")
	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}

// Console returns the console line for rec
func (f *LineFormatter) Console(rec core.Record, ts string) string {
	buf := getBuffer()
	f.FormatConsole(buf, rec, ts)
	s := buf.String()
	putBuffer(buf)
	return s
}

// File returns the file line for rec
func (f *LineFormatter) File(rec core.Record, ts string) string {
	buf := getBuffer()
	f.FormatFile(buf, rec, ts)
	s := buf.String()
	putBuffer(buf)
	return s
}
