package trait

import (
	"maps"
	"slices"

	"github.com/aretw0/genotype/pkg/decoder"
)

// Change records a trait whose decoded value differs between two trait maps.
type Change struct {
	Trait string        `json:"trait"`
	Old   decoder.Value `json:"old"`
	New   decoder.Value `json:"new"`
}

// Diff compares two trait maps and returns the changed traits sorted by name.
// A trait missing from one side is treated as Undecoded on that side.
// It returns nil when nothing changed.
func Diff(oldTraits, newTraits map[string]decoder.Value) []Change {
	names := make(map[string]struct{}, len(newTraits))
	for k := range oldTraits {
		names[k] = struct{}{}
	}
	for k := range newTraits {
		names[k] = struct{}{}
	}

	var changes []Change
	for _, name := range slices.Sorted(maps.Keys(names)) {
		before, after := oldTraits[name], newTraits[name]
		if before != after {
			changes = append(changes, Change{Trait: name, Old: before, New: after})
		}
	}
	return changes
}
