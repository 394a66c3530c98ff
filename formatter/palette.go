package formatter

import "github.com/philipp01105/sinklog/core"

const reset = "\x1b[0m"

// ANSI decorates console lines with SGR escape sequences: a dim frame,
// italic timestamp and origin, and a bold colored level.
type ANSI struct{}

// level styles: bold + foreground color
var ansiLevels = [...]Style{
	core.TraceLevel: {Open: "\x1b[1;35m", Close: reset}, // magenta
	core.DebugLevel: {Open: "\x1b[1;34m", Close: reset}, // blue
	core.InfoLevel:  {Open: "\x1b[1;32m", Close: reset}, // green
	core.WarnLevel:  {Open: "\x1b[1;33m", Close: reset}, // yellow
	core.ErrorLevel: {Open: "\x1b[1;91m", Close: reset}, // bright red
}

// Level returns the bold colored style for l
func (ANSI) Level(l core.Level) Style {
	if !l.Valid() {
		return Style{Open: "\x1b[1m", Close: reset}
	}
	return ansiLevels[l]
}

// Dim returns the faint style
func (ANSI) Dim() Style { return Style{Open: "\x1b[2m", Close: reset} }

// Italic returns the italic style
func (ANSI) Italic() Style { return Style{Open: "\x1b[3m", Close: reset} }

// Plain renders no decoration; console lines come out as plain ASCII with
// the same fields and spacing as the ANSI variant.
type Plain struct{}

// Level returns the empty style
func (Plain) Level(core.Level) Style { return Style{} }

// Dim returns the empty style
func (Plain) Dim() Style { return Style{} }

// Italic returns the empty style
func (Plain) Italic() Style { return Style{} }
