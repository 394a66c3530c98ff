package handler

import (
	"os"
	"path/filepath"
)

// openFile prepares the parent directory of path and opens it for writing.
// With appendMode the file is appended to, otherwise it is truncated.
// The file is created when absent.
func openFile(path string, appendMode bool) (*os.File, error) {
	if path == "" {
		return nil, &FileOpenError{Path: path, Op: "open", Err: os.ErrInvalid}
	}

	// Create directory if it doesn't exist
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &FileOpenError{Path: path, Op: "mkdir", Err: err}
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, &FileOpenError{Path: path, Op: "open", Err: err}
	}
	return file, nil
}
