// Package handler holds the sinks records are written to.
//
// A SinkSet owns an optional console sink, an optional file sink and the
// minimum level, all behind one mutex. Emit formats a record and writes it
// to every active sink before releasing that mutex, so the console and
// file see records in the same order and concurrent lines never mix.
//
// Writes are synchronous and unbuffered. A failed write is counted in
// Stats and otherwise ignored: logging never returns an error to the code
// that logged. If a writer panics while the mutex is held, the set marks
// itself unusable; from then on configuration calls return
// ErrLockUnavailable, Enabled reports false and Emit drops records with a
// warning on stderr.
//
// SetFile creates missing parent directories and either appends to or
// truncates the file. If opening fails the previous file stays active and
// the error is a *FileOpenError.
package handler
