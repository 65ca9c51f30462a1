// Package binary provides bounds-checked random access reads with
// contextual error messages.
package binary

import (
	"fmt"
	"io"
)

// SafeReader wraps an io.ReaderAt with bounds checking against a known
// file size. Failed reads name the file, the offset, and the structure
// that was being read.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader wraps r, which holds size bytes of the file at path.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{r: r, size: size, path: path}
}

// Path returns the file path the reader was opened with.
func (sr *SafeReader) Path() string { return sr.path }

// ReadAt fills b starting at the given offset. what names the structure
// being read and shows up in error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return fmt.Errorf("%s: %s at offset %d is outside the file (size %d)",
			sr.path, what, off, sr.size)
	}
	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: %s needs %d bytes at offset %d but the file ends at %d",
			sr.path, what, len(b), off, sr.size)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: read %s at offset %d: %w", sr.path, what, off, err)
	}
	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d of %d bytes",
			sr.path, what, off, n, len(b))
	}
	return nil
}
