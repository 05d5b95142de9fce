package genome

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a precondition is violated independently of the buffer state.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfRange is returned when a segment or index falls outside the buffer bounds.
var ErrOutOfRange = errors.New("out of range")

// RangeError describes a rejected segment read or byte write.
type RangeError struct {
	Op     string // "segment" or "set"
	Start  int
	Length int // always 1 for single-byte operations
	Size   int // genome length at the time of the request
}

func (e *RangeError) Error() string {
	if e.Op == opSet {
		return fmt.Sprintf("genome: %s index %d: %v (length %d)", e.Op, e.Start, ErrOutOfRange, e.Size)
	}
	return fmt.Sprintf("genome: %s [%d:+%d]: %v (length %d)", e.Op, e.Start, e.Length, ErrOutOfRange, e.Size)
}

// Unwrap allows errors.Is(err, ErrOutOfRange).
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

const (
	opSegment = "segment"
	opSet     = "set"
)
