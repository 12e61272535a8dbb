package rlzjb

// Stream format constants.
const (
	FlagBits    = 8    // Operations governed by one control byte.
	MinMatch    = 3    // Shortest back-reference length (length field 0).
	MaxMatch    = 66   // Longest back-reference length (length field 63).
	MaxDistance = 1023 // Largest encodable back-reference distance (10 bits).
)

// decodeBackRef splits a back-reference pair into copy length and distance.
// b0 holds the 6-bit length field and the top 2 distance bits; b1 is the low distance byte.
func decodeBackRef(b0, b1 byte) (length, distance int) {
	length = int(b0>>2) + MinMatch
	distance = int(b0&0b11)<<8 | int(b1)

	return length, distance
}
