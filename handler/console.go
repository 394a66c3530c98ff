package handler

import "io"

// writeConsole writes one console line and flushes the writer when it
// buffers. The process streams are unbuffered, so for them the write is
// the flush.
func writeConsole(w io.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
