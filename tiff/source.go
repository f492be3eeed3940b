package tiff

import (
	"fmt"
	"io"
)

// Source gives random access to the byte stream being decoded. Reads that
// run past the end of the stream are zero filled and reported with
// ErrTruncated so the caller may carry on with the partial value.
type Source struct {
	r    io.ReadSeeker
	size int64
}

// NewSource wraps r. The size of the stream is determined by seeking to its
// end; r is always positioned explicitly before each read.
func NewSource(r io.ReadSeeker) (*Source, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("tiff: could not determine source size: %w", err)
	}
	return &Source{r: r, size: size}, nil
}

// Size returns the length of the stream in bytes.
func (s *Source) Size() int64 {
	return s.size
}

// Avail returns how many bytes can be read starting at off.
func (s *Source) Avail(off int64) int64 {
	if off < 0 || off >= s.size {
		return 0
	}
	return s.size - off
}

// ReadAt returns n bytes starting at absolute offset off. The returned slice
// always has length n; bytes beyond the end of the stream are zero and the
// error wraps ErrTruncated.
func (s *Source) ReadAt(off int64, n int) ([]byte, error) {
	buf := make([]byte, n)
	avail := s.Avail(off)
	want := int64(n)
	if want > avail {
		want = avail
	}
	if want > 0 {
		if _, err := s.r.Seek(off, io.SeekStart); err != nil {
			return buf, fmt.Errorf("tiff: seek to %d failed: %w", off, err)
		}
		if _, err := io.ReadFull(s.r, buf[:want]); err != nil {
			return buf, fmt.Errorf("tiff: read of %d bytes at %d failed: %w", want, off, err)
		}
	}
	if want < int64(n) {
		return buf, fmt.Errorf("%w: %d bytes at offset %d, %d available", ErrTruncated, n, off, want)
	}
	return buf, nil
}
