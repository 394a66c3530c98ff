package logger

import (
	"github.com/philipp01105/sinklog/global"
	"github.com/philipp01105/sinklog/handler"
)

// std is the process-wide logger, installed into global.Default()
var std = newLogger(DefaultProfile(), global.Default())

// Default returns the process-wide logger
func Default() *Logger {
	return std
}

// Package-level configuration of the process-wide logger. The first call
// to EnableConsole, SetFile, ClearFile or SetLevel installs it.

// EnableConsole switches the console sink on or off
func EnableConsole(enabled bool) error {
	return std.EnableConsole(enabled)
}

// SetFile makes path the file sink
func SetFile(path string, appendMode bool) error {
	return std.SetFile(path, appendMode)
}

// ClearFile closes the file sink
func ClearFile() error {
	return std.ClearFile()
}

// SetLevel sets the minimum level
func SetLevel(level Level) error {
	return std.SetLevel(level)
}

// SetProfile replaces the profile; only allowed before installation
func SetProfile(p Profile) error {
	return std.SetProfile(p)
}

// Close closes the file sink
func Close() error {
	return std.Close()
}

// Stats returns the counters of the process-wide logger
func Stats() handler.Snapshot {
	return std.Stats()
}
