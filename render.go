package genotype

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/genotype/pkg/decoder"
)

const hexPreviewLength = 32

// Render returns a multi-line summary, one line per trait in declaration order.
// Undecoded traits are shown as decoder.NotAvailable.
func (o *Organism) Render() string {
	var b strings.Builder
	b.WriteString("Organism Attributes:\n")
	if len(o.traits) == 0 {
		b.WriteString("  No attributes decoded.\n")
		return b.String()
	}
	for _, spec := range o.traits {
		fmt.Fprintf(&b, "  %s: %s\n", capitalize(spec.Name()), o.values[spec.Name()])
	}
	return b.String()
}

func (o *Organism) String() string {
	preview := o.genome.Hex()
	if len(preview) > hexPreviewLength {
		preview = preview[:hexPreviewLength] + "..."
	}

	pairs := make([]string, 0, len(o.traits))
	for _, spec := range o.traits {
		pairs = append(pairs, fmt.Sprintf("'%s': %s", spec.Name(), literal(o.values[spec.Name()])))
	}
	return fmt.Sprintf("Organism(Genome: %s, Attributes: {%s})", preview, strings.Join(pairs, ", "))
}

// Snapshot is a serializable view of an organism.
type Snapshot struct {
	ID           string                   `json:"id"`
	Genome       string                   `json:"genome"`
	GenomeLength int                      `json:"genome_length"`
	Traits       map[string]decoder.Value `json:"traits"`
}

// Snapshot captures the organism's current genome and trait map.
func (o *Organism) Snapshot() Snapshot {
	return Snapshot{
		ID:           o.id,
		Genome:       o.genome.Hex(),
		GenomeLength: o.genome.Len(),
		Traits:       o.Traits(),
	}
}

// literal quotes labels and shows undecoded values as None.
func literal(v decoder.Value) string {
	if s, ok := v.Label(); ok {
		return "'" + s + "'"
	}
	if !v.IsDecoded() {
		return "None"
	}
	return v.String()
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
