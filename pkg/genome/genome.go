package genome

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// MaxSize is the largest genome New will allocate (64 MiB).
const MaxSize = 64 << 20

// Genome is a fixed-length byte sequence.
// It is not safe for concurrent mutation; callers sharing one must synchronize externally.
type Genome struct {
	data []byte
	rand io.Reader
}

// Option configures a Genome.
type Option func(*Genome)

// WithRand sets the randomness source used for creation and random mutation.
// A nil reader keeps the default (crypto/rand).
func WithRand(r io.Reader) Option {
	return func(g *Genome) {
		if r != nil {
			g.rand = r
		}
	}
}

func newGenome(opts []Option) *Genome {
	g := &Genome{rand: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New creates a genome of the given size filled with independent uniform random bytes.
// A zero size is allowed and yields an empty genome; sizes above MaxSize are rejected.
func New(size int, opts ...Option) (*Genome, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: genome size cannot be negative (got %d)", ErrInvalidArgument, size)
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: genome size %d exceeds the %d byte limit", ErrInvalidArgument, size, MaxSize)
	}

	g := newGenome(opts)
	g.data = make([]byte, size)
	if _, err := io.ReadFull(g.rand, g.data); err != nil {
		return nil, fmt.Errorf("failed to draw %d random bytes: %w", size, err)
	}
	return g, nil
}

// FromBytes creates a genome holding a copy of data, verbatim. Any length is accepted.
func FromBytes(data []byte, opts ...Option) *Genome {
	g := newGenome(opts)
	g.data = append([]byte(nil), data...)
	return g
}

// ParseHex decodes the representation produced by Hex.
func ParseHex(s string, opts ...Option) (*Genome, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed genome hex: %v", ErrInvalidArgument, err)
	}
	g := newGenome(opts)
	g.data = data
	return g, nil
}

// Segment returns a copy of the bytes in [start, start+length).
// Zero-length requests always fail: there is no empty gene.
func (g *Genome) Segment(start, length int) ([]byte, error) {
	size := len(g.data)
	if start < 0 || start >= size || length <= 0 || length > size-start {
		return nil, &RangeError{Op: opSegment, Start: start, Length: length, Size: size}
	}
	out := make([]byte, length)
	copy(out, g.data[start:start+length])
	return out, nil
}

// SetByte replaces the byte at index with value, which must be in [0,255].
// On error the buffer is left untouched.
func (g *Genome) SetByte(index, value int) error {
	if err := g.checkIndex(index); err != nil {
		return err
	}
	if value < 0 || value > 255 {
		return fmt.Errorf("%w: byte value must be between 0 and 255 (got %d)", ErrInvalidArgument, value)
	}
	g.data[index] = byte(value)
	return nil
}

// Mutate replaces the byte at index with a fresh random value and returns it.
func (g *Genome) Mutate(index int) (byte, error) {
	if err := g.checkIndex(index); err != nil {
		return 0, err
	}
	var b [1]byte
	if _, err := io.ReadFull(g.rand, b[:]); err != nil {
		return 0, fmt.Errorf("failed to draw random byte: %w", err)
	}
	g.data[index] = b[0]
	return b[0], nil
}

func (g *Genome) checkIndex(index int) error {
	if index < 0 || index >= len(g.data) {
		return &RangeError{Op: opSet, Start: index, Length: 1, Size: len(g.data)}
	}
	return nil
}

// Len returns the buffer length.
func (g *Genome) Len() int {
	return len(g.data)
}

// Bytes returns a copy of the whole buffer.
func (g *Genome) Bytes() []byte {
	return append([]byte(nil), g.data...)
}

// Hex returns the lowercase hexadecimal encoding, two characters per byte, no separators.
func (g *Genome) Hex() string {
	return hex.EncodeToString(g.data)
}

func (g *Genome) String() string {
	return g.Hex()
}
