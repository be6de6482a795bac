package core

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ByteSource is an immutable, randomly indexable byte range. A reader owns
// the sources it opens (the log and, when present, the index) for its
// lifetime; decoded values never retain a
// reference into it (every codec copies out what it returns).
type ByteSource interface {
	// Len returns the fixed length of the source.
	Len() int64
	// Slice returns the byte range [offset, offset+length). It never
	// returns fewer bytes than requested; callers get ErrTruncated instead.
	Slice(offset, length int64) ([]byte, error)
	// Close releases any underlying resource (e.g. unmaps a file).
	Close() error
}

// memSource is a ByteSource backed by an in-memory slice, used by tests and
// by callers who have already read a log into memory.
type memSource struct{ data []byte }

// NewMemSource wraps a byte slice as a ByteSource without mapping a file.
func NewMemSource(data []byte) ByteSource { return &memSource{data: data} }

func (m *memSource) Len() int64 { return int64(len(m.data)) }

func (m *memSource) Slice(offset, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > int64(len(m.data)) {
		return nil, decodeErr(ErrTruncated, offset, "want %d bytes, have %d", length, int64(len(m.data))-offset)
	}
	return m.data[offset : offset+length], nil
}

func (m *memSource) Close() error { return nil }

// mmapSource is a ByteSource backed by a read-only memory-mapped file.
type mmapSource struct {
	file *os.File
	m    mmap.MMap
}

// OpenMMapSource opens path read-only and maps it in its entirety, suited
// to large append-only log files that are read far more than they change.
func OpenMMapSource(path string) (ByteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: mmap %s: %v", ErrIO, path, err)
	}
	return &mmapSource{file: f, m: m}, nil
}

func (s *mmapSource) Len() int64 { return int64(len(s.m)) }

func (s *mmapSource) Slice(offset, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > int64(len(s.m)) {
		return nil, decodeErr(ErrTruncated, offset, "want %d bytes, have %d", length, int64(len(s.m))-offset)
	}
	return s.m[offset : offset+length], nil
}

func (s *mmapSource) Close() error {
	if err := s.m.Unmap(); err != nil {
		return err
	}
	return s.file.Close()
}
