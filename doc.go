/*
Package rlzjb decodes the rlzjb LZ77-style byte stream.

Format: one control byte per group of up to 8 operations; bit i (LSB first) = 0 means
literal (1 byte), 1 means back-reference (2 bytes b0, b1).
Back-reference: length = (b0>>2)+3 -> 3..66 bytes; distance = (b0&3)<<8 | b1 -> 1..1023.
The copy repeats the last distance bytes of output, so length > distance tiles the window.
The stream carries no size header and no checksum: the caller supplies the output length.

Decoding stops as soon as outLen bytes exist. A back-reference that passes outLen is
applied in full and the excess is cut. Distance 0, distance past the start of output and
a back-reference missing its second byte are rejected; every such error satisfies
errors.Is(err, ErrMalformedInput). A stream that ends before outLen bytes is also
malformed unless Options.AllowShortOutput is set (see LenientOptions).

Use Decompress(src, outLen, opts) with nil for default (strict) options.
Use DecompressBlock(src, outLen, opts) to also get the number of consumed bytes.
Use DecompressFromReader(r, outLen, opts) to decode one block from a stream without reading to EOF.
Use DecompressNFromReader(r, outLens, opts) to decode multiple blocks with known output sizes.
Use DecompressUntilEOF(r, nextOutLen, opts) when output size is provided by a callback.
Use DecompressResult(src, outLen, opts) to hand the output across an ownership boundary.

# Examples

Decompress with default options:

	out, err := rlzjb.Decompress(encoded, expectedLen, nil)
	if err != nil {
		return err
	}

Decompress one block from a byte stream and continue from current stream position:

	out, consumed, err := rlzjb.DecompressFromReader(r, expectedLen, nil)
	if err != nil {
		return err
	}
	_ = consumed

Best effort, keeping whatever a truncated stream produced:

	out, err := rlzjb.Decompress(src, outLen, rlzjb.LenientOptions())

Limit target size and record metrics:

	metrics := rlzjb.NewMetrics("app")
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}
	opts := &rlzjb.Options{MaxOutLen: 64 << 20, Logger: log, Metrics: metrics}
	out, err := rlzjb.Decompress(src, outLen, opts)

Ownership handoff:

	res := rlzjb.DecompressResult(src, outLen, nil)
	if !res.Success {
		return res.Err()
	}
	out, err := res.Take() // or res.Release() to drop it
*/
package rlzjb
