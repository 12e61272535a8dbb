package rlzjb

// encodeOptions configures the reference encoder used by tests.
type encodeOptions struct {
	SearchLimit int // 0 = literals only; otherwise max backward distance for match search (capped at MaxDistance).
}

// encode is a greedy reference encoder for the format. The library only decodes;
// this exists to produce round-trip fixtures.
func encode(src []byte, opts encodeOptions) []byte {
	// Worst case is all literals + one control byte per 8 operations.
	out := make([]byte, 0, len(src)+(len(src)+7)/8)

	var control byte
	bitCount := 0
	controlPos := -1

	limit := min(max(opts.SearchLimit, 0), MaxDistance)

	i := 0
	for i < len(src) {
		if bitCount == 0 {
			controlPos = len(out)
			out = append(out, 0)
			control = 0
		}

		bestLen := 0
		bestOff := 0

		// Find longest match within limit bytes back. The match may run past i
		// because the decoder tiles overlapping copies.
		for off := 1; off <= min(limit, i); off++ {
			length := 0
			for length < MaxMatch && i+length < len(src) && src[i-off+length] == src[i+length] {
				length++
			}

			if length > bestLen {
				bestLen = length
				bestOff = off
				if bestLen == MaxMatch {
					break
				}
			}
		}

		if bestLen >= MinMatch {
			control |= 1 << bitCount
			b0 := byte((bestLen-MinMatch)<<2) | byte(bestOff>>8)
			out = append(out, b0, byte(bestOff))
			i += bestLen
		} else {
			out = append(out, src[i])
			i++
		}

		out[controlPos] = control
		bitCount = (bitCount + 1) % FlagBits
	}

	return out
}

// backRef encodes a single back-reference pair.
func backRef(length, distance int) []byte {
	return []byte{byte((length-MinMatch)<<2) | byte(distance>>8), byte(distance)}
}
