// Package utils provides small shared helpers.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers everything written to it until Flush is called.
// The TUI routes log output through one so log lines do not corrupt the
// alternate screen while the program is running.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the internal buffer.
func (w *DeferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

// Flush replays all buffered bytes into dst and resets the buffer.
func (w *DeferredWriter) Flush(dst io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() == 0 {
		return nil
	}

	_, err := io.Copy(dst, &w.buf)
	w.buf.Reset()
	return err
}
