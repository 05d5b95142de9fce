/*
Package trait declares which genome coordinates produce which traits.

A trait specification is a tagged variant: Discrete maps one gene to a label, Interacting
combines two genes into a number. A Set is an ordered list of specifications; new traits
are added by extending the Set, never by touching decode logic.

The default set reproduces the reference organism:

	| Trait | Kind        | Coordinates                  | Options / Max        |
	|-------|-------------|------------------------------|----------------------|
	| color | discrete    | start=0, length=4            | 10 color labels      |
	| size  | interacting | (4,2) x (6,2)                | 100                  |

Sets can also be loaded from YAML or JSON files with LoadFile.
*/
package trait

import (
	"math"

	"github.com/aretw0/genotype/pkg/decoder"
)

// Kind identifies a specification variant.
type Kind string

const (
	KindDiscrete    Kind = "discrete"
	KindInteracting Kind = "interacting"
)

// Spec is a single named trait bound to fixed gene coordinates.
type Spec interface {
	Name() string
	Kind() Kind
	// End is the exclusive upper bound of the genome bytes this trait reads.
	End() int
	Decode(g decoder.SegmentReader) decoder.Value
}

// Gene is a contiguous segment coordinate.
type Gene struct {
	Start  int `json:"start" yaml:"start" mapstructure:"start"`
	Length int `json:"length" yaml:"length" mapstructure:"length"`
}

// end saturates at math.MaxInt instead of wrapping.
func (g Gene) end() int {
	if g.Length > 0 && g.Start > math.MaxInt-g.Length {
		return math.MaxInt
	}
	return g.Start + g.Length
}

// Discrete selects one label from Options using the checksum of Gene.
type Discrete struct {
	TraitName string
	Gene      Gene
	Options   []string
}

func (d Discrete) Name() string { return d.TraitName }
func (d Discrete) Kind() Kind   { return KindDiscrete }
func (d Discrete) End() int     { return d.Gene.end() }

func (d Discrete) Decode(g decoder.SegmentReader) decoder.Value {
	return decoder.DecodeDiscrete(g, d.Gene.Start, d.Gene.Length, d.Options)
}

// Interacting derives a number in [0, Max) from the product of two gene checksums.
type Interacting struct {
	TraitName string
	First     Gene
	Second    Gene
	Max       int
}

func (i Interacting) Name() string { return i.TraitName }
func (i Interacting) Kind() Kind   { return KindInteracting }
func (i Interacting) End() int     { return max(i.First.end(), i.Second.end()) }

func (i Interacting) Decode(g decoder.SegmentReader) decoder.Value {
	return decoder.DecodeInteracting(g, i.First.Start, i.First.Length, i.Second.Start, i.Second.Length, i.Max)
}

// Set is an ordered collection of trait specifications.
type Set []Spec

// MinGenomeLength is the highest End across all specifications (0 for an empty set).
func (s Set) MinGenomeLength() int {
	n := 0
	for _, spec := range s {
		n = max(n, spec.End())
	}
	return n
}

// Names returns the trait names in declaration order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, spec := range s {
		names = append(names, spec.Name())
	}
	return names
}

// Lookup finds a specification by name.
func (s Set) Lookup(name string) (Spec, bool) {
	for _, spec := range s {
		if spec.Name() == name {
			return spec, true
		}
	}
	return nil, false
}

// ColorOptions is the ordered label table of the default color trait.
var ColorOptions = []string{"red", "green", "blue", "yellow", "purple", "orange", "pink", "brown", "black", "white"}

// Default returns the reference trait set: color (discrete) and size (interacting).
// Its minimum genome length is 8.
func Default() Set {
	return Set{
		Discrete{
			TraitName: "color",
			Gene:      Gene{Start: 0, Length: 4},
			Options:   append([]string(nil), ColorOptions...),
		},
		Interacting{
			TraitName: "size",
			First:     Gene{Start: 4, Length: 2},
			Second:    Gene{Start: 6, Length: 2},
			Max:       100,
		},
	}
}
