package core

import (
	"os"
	"sync"
)

// PositionalWriter is a shared output file, pre-sized to the full
// content length, into which chunks are written at their absolute
// offsets. Writes are serialized with an internal mutex so that no two
// writes interleave within the file handle.
type PositionalWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewPositionalWriter opens (creating if missing) the file at path and
// sets its length to exactly totalBytes.
func NewPositionalWriter(path string, totalBytes int64) (*PositionalWriter, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return nil, &FileWriteError{Message: "opening output file", Cause: err}
	}
	if err := file.Truncate(totalBytes); err != nil {
		file.Close()
		return nil, &FileWriteError{Message: "sizing output file", Cause: err}
	}
	return &PositionalWriter{file: file}, nil
}

// WriteAt seeks to offset and writes data in full, serialized against
// concurrent callers.
func (w *PositionalWriter) WriteAt(offset int64, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.file.WriteAt(data, offset); err != nil {
		return &FileWriteError{Message: "writing chunk to output file", Cause: err}
	}
	return nil
}

// Close flushes and releases the underlying file handle.
func (w *PositionalWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.file.Close(); err != nil {
		return &FileWriteError{Message: "closing output file", Cause: err}
	}
	return nil
}
