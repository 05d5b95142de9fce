/*
Package genome provides the fixed-length byte buffer that organisms are decoded from.

A Genome owns its bytes exclusively. It never grows or shrinks after creation; the only
mutation is replacing a single byte, either with an explicit value or with a fresh random
draw. Reads are bounds-checked segments copied out of the buffer.

# Errors

Every failure wraps one of two sentinels so callers can branch with errors.Is:

  - ErrInvalidArgument: a precondition that does not depend on buffer contents
    (negative size or one above MaxSize, byte value outside [0,255]).
  - ErrOutOfRange: a segment or index that falls outside the buffer. These are
    reported as *RangeError.

# Randomness

Random bytes come from an io.Reader owned by each Genome (crypto/rand by default).
Tests and reproducible runs inject their own source with WithRand:

	g, err := genome.New(64, genome.WithRand(bytes.NewReader(seed)))
*/
package genome
