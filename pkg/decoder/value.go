package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// NotAvailable is how an undecoded value is displayed.
const NotAvailable = "N/A"

// Kind tags which variant a Value holds.
type Kind uint8

const (
	KindUndecoded Kind = iota
	KindLabel
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindNumber:
		return "number"
	default:
		return "undecoded"
	}
}

// Value is a decoded trait: a label, a number, or the undecoded marker.
// The zero Value is undecoded.
type Value struct {
	kind   Kind
	label  string
	number uint64
}

// Undecoded returns the marker for a trait that could not be decoded.
func Undecoded() Value { return Value{} }

// Label wraps a discrete trait label.
func Label(s string) Value { return Value{kind: KindLabel, label: s} }

// Number wraps a numeric trait value.
func Number(n uint64) Value { return Value{kind: KindNumber, number: n} }

func (v Value) Kind() Kind { return v.kind }

// IsDecoded reports whether v holds a label or a number.
func (v Value) IsDecoded() bool { return v.kind != KindUndecoded }

// Label returns the label and whether v is a label.
func (v Value) Label() (string, bool) { return v.label, v.kind == KindLabel }

// Number returns the number and whether v is a number.
func (v Value) Number() (uint64, bool) { return v.number, v.kind == KindNumber }

// String renders the value for display; undecoded values render as NotAvailable.
func (v Value) String() string {
	switch v.kind {
	case KindLabel:
		return v.label
	case KindNumber:
		return strconv.FormatUint(v.number, 10)
	default:
		return NotAvailable
	}
}

// MarshalJSON encodes labels as strings, numbers as numbers and undecoded values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindLabel:
		return json.Marshal(v.label)
	case KindNumber:
		return json.Marshal(v.number)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON reverses MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Undecoded()
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Label(s)
	default:
		n, err := strconv.ParseUint(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("decoder: value must be a string, a non-negative integer or null: %s", data)
		}
		*v = Number(n)
	}
	return nil
}
