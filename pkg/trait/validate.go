package trait

import (
	"fmt"

	"github.com/aretw0/genotype/pkg/genome"
)

// Validate checks every specification in the set and returns an *AggregateError
// listing all problems, or nil.
//
// Decoding never requires a valid set: invalid specifications simply decode to
// Undecoded. Validate exists for sets authored by hand, such as loaded files.
func (s Set) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s))

	for i, spec := range s {
		name := spec.Name()
		label := name
		if name == "" {
			label = fmt.Sprintf("#%d", i)
			errs = append(errs, &ValidationError{Trait: label, Field: "name", Reason: "is required"})
		} else if seen[name] {
			errs = append(errs, &ValidationError{Trait: label, Field: "name", Reason: "is declared more than once"})
		}
		seen[name] = true

		switch v := spec.(type) {
		case Discrete:
			errs = append(errs, validateGene(label, "gene", v.Gene)...)
			if len(v.Options) == 0 {
				errs = append(errs, &ValidationError{Trait: label, Field: "options", Reason: "must not be empty"})
			}
		case Interacting:
			errs = append(errs, validateGene(label, "genes[0]", v.First)...)
			errs = append(errs, validateGene(label, "genes[1]", v.Second)...)
			if v.Max <= 0 {
				errs = append(errs, &ValidationError{Trait: label, Field: "max", Reason: fmt.Sprintf("must be positive (got %d)", v.Max)})
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func validateGene(traitName, field string, g Gene) []error {
	var errs []error
	if g.Start < 0 {
		errs = append(errs, &ValidationError{Trait: traitName, Field: field + ".start", Reason: fmt.Sprintf("must not be negative (got %d)", g.Start)})
	}
	if g.Length <= 0 {
		errs = append(errs, &ValidationError{Trait: traitName, Field: field + ".length", Reason: fmt.Sprintf("must be positive (got %d)", g.Length)})
	}
	if len(errs) == 0 && g.end() > genome.MaxSize {
		errs = append(errs, &ValidationError{Trait: traitName, Field: field, Reason: fmt.Sprintf("ends past the %d byte genome limit", genome.MaxSize)})
	}
	return errs
}
