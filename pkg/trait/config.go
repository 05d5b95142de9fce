package trait

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the file syntax understood by Parse.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document is the top-level structure of a trait file.
type document struct {
	Traits []map[string]any `yaml:"traits" json:"traits"`
}

type discreteEntry struct {
	Name    string   `mapstructure:"name"`
	Kind    string   `mapstructure:"kind"`
	Start   int      `mapstructure:"start"`
	Length  int      `mapstructure:"length"`
	Options []string `mapstructure:"options"`
}

type interactingEntry struct {
	Name  string `mapstructure:"name"`
	Kind  string `mapstructure:"kind"`
	Genes []Gene `mapstructure:"genes"`
	Max   int    `mapstructure:"max"`
}

// fieldCheck validates a raw decoded value before it reaches mapstructure.
type fieldCheck func(v any) error

var requiredFields = map[Kind]map[string]fieldCheck{
	KindDiscrete: {
		"start":   checkInt,
		"length":  checkInt,
		"options": checkStringList,
	},
	KindInteracting: {
		"genes": checkGenePair,
		"max":   checkInt,
	},
}

// LoadFile reads a trait set from a YAML or JSON file (chosen by extension, YAML by default)
// and validates it.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trait file: %w", err)
	}

	format := FormatYAML
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = FormatJSON
	}

	set, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return set, nil
}

// Parse decodes and validates a trait set.
func Parse(data []byte, format Format) (Set, error) {
	var doc document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse trait json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse trait yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported trait file format: %q", format)
	}

	set := make(Set, 0, len(doc.Traits))
	var errs []error
	for i, entry := range doc.Traits {
		spec, entryErrs := decodeEntry(i, entry)
		if len(entryErrs) > 0 {
			errs = append(errs, entryErrs...)
			continue
		}
		set = append(set, spec)
	}
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func decodeEntry(index int, entry map[string]any) (Spec, []error) {
	name, _ := entry["name"].(string)
	if name == "" {
		return nil, []error{&ValidationError{Trait: fmt.Sprintf("#%d", index), Field: "name", Reason: "is required and must be a string"}}
	}
	label := name

	rawKind, _ := entry["kind"].(string)
	kind := Kind(rawKind)
	fields, ok := requiredFields[kind]
	if !ok {
		return nil, []error{&ValidationError{Trait: label, Field: "kind", Reason: fmt.Sprintf("unknown kind %q (want %q or %q)", rawKind, KindDiscrete, KindInteracting)}}
	}

	var errs []error
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		check := fields[field]
		v, present := entry[field]
		if !present {
			errs = append(errs, &ValidationError{Trait: label, Field: field, Reason: "is required"})
			continue
		}
		if err := check(v); err != nil {
			errs = append(errs, &ValidationError{Trait: label, Field: field, Reason: err.Error()})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	switch kind {
	case KindDiscrete:
		var e discreteEntry
		if err := decodeStrict(entry, &e); err != nil {
			return nil, []error{&ValidationError{Trait: label, Reason: err.Error()}}
		}
		return Discrete{TraitName: e.Name, Gene: Gene{Start: e.Start, Length: e.Length}, Options: e.Options}, nil
	default:
		var e interactingEntry
		if err := decodeStrict(entry, &e); err != nil {
			return nil, []error{&ValidationError{Trait: label, Reason: err.Error()}}
		}
		return Interacting{TraitName: e.Name, First: e.Genes[0], Second: e.Genes[1], Max: e.Max}, nil
	}
}

// decodeStrict maps a raw entry onto out, rejecting unknown keys.
func decodeStrict(entry map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		TagName:     "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(entry)
}

func checkInt(v any) error {
	switch n := v.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// JSON numbers arrive as float64
		if n == float64(int64(n)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", v)
	}
}

func checkStringList(v any) error {
	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("expected list of strings, got %T", v)
	}
	for i, item := range items {
		if _, ok := item.(string); !ok {
			return fmt.Errorf("element %d: expected string, got %T", i, item)
		}
	}
	return nil
}

func checkGenePair(v any) error {
	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("expected list of genes, got %T", v)
	}
	if len(items) != 2 {
		return fmt.Errorf("expected exactly 2 genes, got %d", len(items))
	}
	for i, item := range items {
		gene, ok := item.(map[string]any)
		if !ok {
			return fmt.Errorf("element %d: expected {start, length}, got %T", i, item)
		}
		for _, key := range []string{"start", "length"} {
			raw, present := gene[key]
			if !present {
				return fmt.Errorf("element %d: %s is required", i, key)
			}
			if err := checkInt(raw); err != nil {
				return fmt.Errorf("element %d: %s: %w", i, key, err)
			}
		}
	}
	return nil
}
