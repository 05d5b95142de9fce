// Package decoder maps genome segments to trait values.
//
// Decoders are pure functions over a SegmentReader. They fail soft: any precondition
// violation or segment retrieval error yields Undecoded instead of an error, so a
// single bad trait never aborts decoding of the others.
package decoder

import "math/bits"

// SegmentReader is the read contract decoders need from a genome.
type SegmentReader interface {
	Segment(start, length int) ([]byte, error)
}

// Checksum returns the unsigned sum of all bytes in segment.
func Checksum(segment []byte) uint64 {
	var sum uint64
	for _, b := range segment {
		sum += uint64(b)
	}
	return sum
}

// DecodeDiscrete selects options[sum(segment) mod len(options)].
func DecodeDiscrete(g SegmentReader, start, length int, options []string) Value {
	if len(options) == 0 {
		return Undecoded()
	}
	segment, err := g.Segment(start, length)
	if err != nil {
		return Undecoded()
	}
	idx := Checksum(segment) % uint64(len(options))
	return Label(options[idx])
}

// DecodeInteracting combines two segments as (sum1 * sum2) mod maxValue.
//
// The product is computed at 128-bit width, so it never wraps. A segment summing to
// zero collapses the result to zero regardless of the other segment.
func DecodeInteracting(g SegmentReader, start1, length1, start2, length2, maxValue int) Value {
	if maxValue <= 0 {
		return Undecoded()
	}
	seg1, err := g.Segment(start1, length1)
	if err != nil {
		return Undecoded()
	}
	seg2, err := g.Segment(start2, length2)
	if err != nil {
		return Undecoded()
	}
	hi, lo := bits.Mul64(Checksum(seg1), Checksum(seg2))
	return Number(bits.Rem64(hi, lo, uint64(maxValue)))
}
