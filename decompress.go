package rlzjb

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Decompress decompresses src into a new buffer of length outLen.
// Input left over once outLen bytes are produced is ignored.
// Options nil means DefaultOptions (strict: short output is an error).
func Decompress(src []byte, outLen int, opts *Options) ([]byte, error) {
	out, _, err := DecompressBlock(src, outLen, opts)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressBlock decompresses one block from the beginning of src.
// It returns decompressed bytes and the number of consumed bytes.
// Decoding stops as soon as outLen bytes exist, so the rest of src may hold the next block.
func DecompressBlock(src []byte, outLen int, opts *Options) ([]byte, int, error) {
	reader := &countingByteReader{base: &sliceByteReader{data: src}}
	out, err := decompressFromByteReader(reader, outLen, len(src), opts)
	if err != nil {
		return nil, int(reader.count), err
	}

	return out, int(reader.count), nil
}

// DecompressFromReader decompresses one block from r and returns consumed bytes.
// Decoding stops exactly after outLen output bytes; r is not read to EOF.
func DecompressFromReader(r io.Reader, outLen int, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	reader := &countingByteReader{base: asByteReader(r)}
	out, err := decompressFromByteReader(reader, outLen, 0, opts)
	if err != nil {
		return nil, reader.count, err
	}

	return out, reader.count, nil
}

// DecompressNFromReader decompresses len(outLens) consecutive blocks from r.
// It returns the blocks in order and the total number of consumed bytes.
func DecompressNFromReader(r io.Reader, outLens []int, opts *Options) ([][]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	reader := &countingByteReader{base: asByteReader(r)}
	blocks := make([][]byte, 0, len(outLens))
	for i, outLen := range outLens {
		out, err := decompressFromByteReader(reader, outLen, 0, opts)
		if err != nil {
			return nil, reader.count, errors.Wrapf(err, "block %d", i)
		}

		blocks = append(blocks, out)
	}

	return blocks, reader.count, nil
}

// DecompressUntilEOF decompresses blocks from r until the stream ends on a block boundary.
// nextOutLen is called with the block index before each block and returns its output size.
// A block that consumes no input while input remains fails with ErrNoProgress.
func DecompressUntilEOF(r io.Reader, nextOutLen func(index int) (int, error), opts *Options) ([][]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	if nextOutLen == nil {
		return nil, 0, ErrNilOutLenProvider
	}

	var scanner io.ByteScanner
	if existing, ok := r.(io.ByteScanner); ok {
		scanner = existing
	} else {
		scanner = bufio.NewReader(r)
	}

	reader := &countingByteReader{base: scanner}
	var blocks [][]byte
	for index := 0; ; index++ {
		if _, err := scanner.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				return blocks, reader.count, nil
			}

			return nil, reader.count, errors.Wrapf(err, "block %d", index)
		}

		if err := scanner.UnreadByte(); err != nil {
			return nil, reader.count, errors.Wrapf(err, "block %d", index)
		}

		outLen, err := nextOutLen(index)
		if err != nil {
			return nil, reader.count, errors.Wrapf(err, "block %d size", index)
		}

		before := reader.count
		out, err := decompressFromByteReader(reader, outLen, 0, opts)
		if err != nil {
			return nil, reader.count, errors.Wrapf(err, "block %d", index)
		}

		// Input is known to remain here, so an empty read would repeat forever.
		if reader.count == before {
			return nil, reader.count, errors.Wrapf(ErrNoProgress, "block %d outLen=%d", index, outLen)
		}

		blocks = append(blocks, out)
	}
}

// asByteReader returns r itself when it reads bytes, otherwise a buffered wrapper.
func asByteReader(r io.Reader) io.ByteReader {
	if existing, ok := r.(io.ByteReader); ok {
		return existing
	}

	return bufio.NewReader(r)
}

// decompressFromByteReader decodes one block, records metrics and logs failures.
// sizeHint is the input length when known, used only to pre-size the output.
func decompressFromByteReader(r *countingByteReader, outLen, sizeHint int, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	start := r.count
	out, err := decodeBlock(r, outLen, sizeHint, opts)
	consumed := r.count - start
	if err != nil {
		opts.Metrics.observeFailure(err, consumed)
		opts.logger().WithError(err).WithFields(logrus.Fields{
			"consumed": consumed,
			"produced": len(out),
			"out_len":  outLen,
		}).Debug("decompression failed")

		return nil, err
	}

	opts.Metrics.observeSuccess(consumed, len(out))

	return out, nil
}

// decodeBlock runs the control-byte loop until outLen bytes exist or input is exhausted.
// On error the partial output is returned for diagnostics only.
func decodeBlock(r *countingByteReader, outLen, sizeHint int, opts *Options) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	if opts.MaxOutLen > 0 && outLen > opts.MaxOutLen {
		return nil, errors.Wrapf(ErrOutLenTooLarge, "%d > %d", outLen, opts.MaxOutLen)
	}

	out := make([]byte, 0, min(sizeHint, outLen))

	// Iterate over groups.
	for len(out) < outLen {
		control, ok, err := r.next()
		if err != nil {
			return out, err
		}

		if !ok {
			break
		}

		// Iterate over operations of the group; bit 0 is the first.
		for bit := 0; bit < FlagBits && len(out) < outLen; bit++ {
			b0, ok, err := r.next()
			if err != nil {
				return out, err
			}

			// Input ended on an operation boundary; the outer loop sees EOF next.
			if !ok {
				break
			}

			if control&(1<<bit) == 0 {
				out = append(out, b0)
				continue
			}

			b1, err := r.must(ErrUnexpectedEOF)
			if err != nil {
				return out, err
			}

			// Applied in full even past outLen; the excess is cut below.
			length, distance := decodeBackRef(b0, b1)
			out, err = appendBackRef(out, distance, length)
			if err != nil {
				return out, errors.Wrapf(err, "back-reference at offset %d", r.count-2)
			}
		}
	}

	if len(out) < outLen {
		if !opts.AllowShortOutput {
			return out, errors.Wrapf(ErrShortOutput, "produced=%d want=%d", len(out), outLen)
		}

		return out, nil
	}

	return out[:outLen], nil
}
