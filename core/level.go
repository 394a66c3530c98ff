package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level represents the severity level of a log record
type Level int8

const (
	// TraceLevel for very fine-grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// OffLevel is a filter value only: no record is ever enabled by it
	OffLevel
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("unknown level")

// pre-formatted level names, padded to the five column level field
var paddedNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO ",
	WarnLevel:  "WARN ",
	ErrorLevel: "ERROR",
	OffLevel:   "OFF  ",
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Padded returns the level name left-justified to five columns.
func (l Level) Padded() string {
	if l < 0 || int(l) >= len(paddedNames) {
		return "?????"
	}
	return paddedNames[l]
}

// Valid reports whether l is a record level (Trace through Error).
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// Allows reports whether a record at level rec passes a filter set to l.
// An OffLevel filter allows nothing.
func (l Level) Allows(rec Level) bool {
	return l != OffLevel && rec.Valid() && rec >= l
}

// ParseLevel converts a case-insensitive level name to a Level.
// "off" yields OffLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "OFF":
		return OffLevel, nil
	default:
		return OffLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so levels can be read
// from YAML profiles and flags.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
