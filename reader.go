package rlzjb

import (
	"io"

	"github.com/pkg/errors"
)

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a byte reader and counts the number of bytes read.
// Its next and must helpers tell exhausted input (io.EOF) apart from a truncated
// operation and from other read failures.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// next reads one byte. ok is false when input is exhausted; any other read failure is returned.
func (r *countingByteReader) next() (b byte, ok bool, err error) {
	b, err = r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}

		return 0, false, errors.Wrapf(err, "read at offset %d", r.count)
	}

	return b, true, nil
}

// must reads one byte that the stream has already promised; exhaustion becomes eofErr.
func (r *countingByteReader) must(eofErr error) (byte, error) {
	b, ok, err := r.next()
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, errors.Wrapf(eofErr, "at offset %d", r.count)
	}

	return b, nil
}
