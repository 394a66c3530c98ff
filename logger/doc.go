// Package logger is the public API of sinklog. Most programs only need to
// import this package once, in main, to configure where records go.
//
// The package holds one process-wide Logger. It is not installed until the
// first call to EnableConsole, SetFile, ClearFile or SetLevel. Installation
// registers it with global.Default(), sets the level to Info (or to the
// value of SINKLOG_LEVEL when that variable is set) and, unless the profile
// says otherwise, points slog.Default at it. Before installation every
// record is discarded.
//
//	if err := logger.EnableConsole(true); err != nil {
//	    return err
//	}
//	if err := logger.SetFile("logs/app.log", true); err != nil {
//	    return err
//	}
//	global.Info("ready")
//	slog.Info("also ready", "port", 8080)
//
// A record is written to every active sink while a single lock is held, so
// console and file receive records in the same order and lines from
// concurrent goroutines never interleave. Files are written unbuffered;
// Close only releases the file handle.
//
// Settings that must be fixed before installation (console stream, color,
// timestamps, the override variable, slog bridging) live in a Profile,
// which can also be loaded from YAML with LoadProfile.
package logger
