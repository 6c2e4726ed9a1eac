package entry

import (
	"fmt"
	"io"
	"sync"
)

// Device is a fixed-size byte-addressable store.
type Device interface {
	io.ReaderAt
	io.WriterAt
	Size() int64
}

// MemDevice is a RAM-backed Device. The zero value has size 0; use
// NewMemDevice.
type MemDevice struct {
	mu  sync.RWMutex
	buf []byte
}

// NewMemDevice returns a zeroed device of size bytes.
func NewMemDevice(size int) *MemDevice {
	return &MemDevice{buf: make([]byte, size)}
}

// Size returns the device capacity.
func (d *MemDevice) Size() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return int64(len(d.buf))
}

// ReadAt implements io.ReaderAt. Reads past the end return io.EOF.
func (d *MemDevice) ReadAt(p []byte, off int64) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if off < 0 {
		return 0, fmt.Errorf("read at %d: %w", off, ErrOutOfBounds)
	}
	if off >= int64(len(d.buf)) {
		return 0, io.EOF
	}
	n := copy(p, d.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

// WriteAt implements io.WriterAt. Writes never grow the device.
func (d *MemDevice) WriteAt(p []byte, off int64) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if off < 0 || off+int64(len(p)) > int64(len(d.buf)) {
		return 0, fmt.Errorf("write %d bytes at %d of %d: %w", len(p), off, len(d.buf), ErrOutOfBounds)
	}

	return copy(d.buf[off:], p), nil
}
