package handler

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrLockUnavailable is returned once a sink has panicked while the
	// sink lock was held. The set refuses every later operation.
	ErrLockUnavailable = errors.New("sink lock unavailable")
	// ErrFileOpen matches every *FileOpenError.
	ErrFileOpen = errors.New("log file open failed")
)

// FileOpenError reports a failure to prepare or open a file sink.
type FileOpenError struct {
	// Path is the file the caller asked for
	Path string
	// Op is "mkdir" or "open"
	Op  string
	Err error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("log file %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFileOpen) hold for any FileOpenError
func (e *FileOpenError) Is(target error) bool { return target == ErrFileOpen }

// Stream names the process stream the console sink writes to.
type Stream string

const (
	// Stdout is the process standard output
	Stdout Stream = "stdout"
	// Stderr is the process standard error (default)
	Stderr Stream = "stderr"
)

// Writer returns the process stream for s. Anything but Stdout maps to stderr.
func (s Stream) Writer() io.Writer {
	if s == Stdout {
		return os.Stdout
	}
	return os.Stderr
}

// flusher is implemented by buffered console writers such as *bufio.Writer
type flusher interface {
	Flush() error
}
