package rlzjb

import "github.com/pkg/errors"

// appendBackRef appends length bytes repeating the distance-byte window that ends at len(out).
// When distance < length the window is tiled: each tile is copied from the same fixed
// source window, which is fully written before the tile that follows it.
func appendBackRef(out []byte, distance, length int) ([]byte, error) {
	if distance == 0 {
		return out, ErrZeroDistance
	}

	pivot := len(out)
	if distance > pivot {
		return out, errors.Wrapf(ErrLookBehindUnderrun, "distance=%d produced=%d", distance, pivot)
	}

	out = grow(out, length)
	window := out[pivot-distance : pivot]
	dst := out[pivot:]

	// Whole tiles, then the partial tail (empty when length is a multiple of distance).
	for len(dst) >= distance {
		copy(dst, window)
		dst = dst[distance:]
	}
	copy(dst, window[:len(dst)])

	return out, nil
}

// grow extends out by n bytes, reallocating when capacity is short.
func grow(out []byte, n int) []byte {
	need := len(out) + n
	if need <= cap(out) {
		return out[:need]
	}

	newCap := max(2*cap(out), need)
	next := make([]byte, need, newCap)
	copy(next, out)

	return next
}
