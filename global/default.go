package global

import "github.com/philipp01105/sinklog/core"

// std is the process-wide slot
var std = NewSlot()

// Default returns the process-wide slot
func Default() *Slot {
	return std
}

// Package-level front-end functions writing through the process-wide slot

// Trace logs a trace message
func Trace(args ...interface{}) {
	std.print(1, core.TraceLevel, args)
}

// Debug logs a debug message
func Debug(args ...interface{}) {
	std.print(1, core.DebugLevel, args)
}

// Info logs an info message
func Info(args ...interface{}) {
	std.print(1, core.InfoLevel, args)
}

// Warn logs a warning message
func Warn(args ...interface{}) {
	std.print(1, core.WarnLevel, args)
}

// Error logs an error message
func Error(args ...interface{}) {
	std.print(1, core.ErrorLevel, args)
}

// Tracef logs a formatted trace message
func Tracef(format string, args ...interface{}) {
	std.printf(1, core.TraceLevel, format, args)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	std.printf(1, core.DebugLevel, format, args)
}

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) {
	std.printf(1, core.InfoLevel, format, args)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	std.printf(1, core.WarnLevel, format, args)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	std.printf(1, core.ErrorLevel, format, args)
}

// Enabled reports whether the process-wide slot would write a record at level
func Enabled(level core.Level) bool {
	return std.Enabled(level)
}

// Flush flushes the process-wide sink
func Flush() {
	std.Flush()
}
