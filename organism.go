package genotype

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/genotype/pkg/decoder"
	"github.com/aretw0/genotype/pkg/genome"
	"github.com/aretw0/genotype/pkg/observability"
	"github.com/aretw0/genotype/pkg/trait"
	"github.com/google/uuid"
)

// DefaultGenomeSize is the length of a random genome when no size is requested.
const DefaultGenomeSize = 1024

// ErrGenomeTooSmall is returned when a caller-supplied genome cannot hold every trait.
// It wraps genome.ErrInvalidArgument.
var ErrGenomeTooSmall = fmt.Errorf("%w: genome too small", genome.ErrInvalidArgument)

// Organism binds a trait set to one exclusively owned genome.
// Traits are decoded at construction; after mutating the genome, call Decode to refresh them.
type Organism struct {
	id       string
	genome   *genome.Genome
	provided *genome.Genome
	size     int
	traits   trait.Set
	values   map[string]decoder.Value
	rand     io.Reader
	logger   *slog.Logger
	hooks    observability.Hooks
}

// Option defines a functional option for configuring an Organism.
type Option func(*Organism)

// WithGenome makes the organism own g verbatim. g must be at least as long as the
// trait set requires; it is never resized. A nil genome is ignored.
func WithGenome(g *genome.Genome) Option {
	return func(o *Organism) {
		o.provided = g
	}
}

// WithGenomeSize sets the length of the random genome (default DefaultGenomeSize).
// Sizes below the trait set minimum are raised to the minimum.
func WithGenomeSize(size int) Option {
	return func(o *Organism) {
		o.size = size
	}
}

// WithTraits replaces the default trait set.
func WithTraits(set trait.Set) Option {
	return func(o *Organism) {
		o.traits = set
	}
}

// WithRand sets the randomness source for the random genome.
// It does not apply to a genome given with WithGenome.
func WithRand(r io.Reader) Option {
	return func(o *Organism) {
		o.rand = r
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Organism) {
		o.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks observability.Hooks) Option {
	return func(o *Organism) {
		o.hooks = hooks
	}
}

// WithID overrides the generated organism ID.
func WithID(id string) Option {
	return func(o *Organism) {
		o.id = id
	}
}

// New creates an organism and decodes its traits.
//
// With WithGenome the supplied genome is used as is and rejected with ErrGenomeTooSmall
// if it is shorter than the trait set minimum. Otherwise a random genome is created,
// its size silently raised to the minimum when needed. Trait sets reading past
// genome.MaxSize are rejected with genome.ErrInvalidArgument.
func New(opts ...Option) (*Organism, error) {
	o := &Organism{
		size:   DefaultGenomeSize,
		traits: trait.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := checkTraitNames(o.traits); err != nil {
		return nil, err
	}
	minimum := o.traits.MinGenomeLength()
	if minimum > genome.MaxSize {
		return nil, fmt.Errorf("%w: traits read up to byte %d, past the %d byte genome limit",
			genome.ErrInvalidArgument, minimum, genome.MaxSize)
	}

	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	o.logger = o.logger.With("organism", o.id)

	spawn := &observability.SpawnEvent{
		EventBase: observability.NewBase(observability.EventSpawn, o.id),
	}

	if o.provided != nil {
		if o.provided.Len() < minimum {
			return nil, fmt.Errorf("%w: provided genome has %d bytes, traits require at least %d",
				ErrGenomeTooSmall, o.provided.Len(), minimum)
		}
		o.genome = o.provided
		spawn.Origin = observability.OriginProvided
	} else {
		size := o.size
		spawn.RequestedSize = size
		if size < minimum {
			o.logger.Warn("Requested genome size is below the minimum, adjusting",
				"requested", size, "minimum", minimum)
			size = minimum
			spawn.Clamped = true
		}
		g, err := genome.New(size, genome.WithRand(o.rand))
		if err != nil {
			return nil, fmt.Errorf("failed to create genome: %w", err)
		}
		o.genome = g
		spawn.Origin = observability.OriginRandom
	}
	o.provided = nil

	spawn.GenomeLength = o.genome.Len()
	o.logger.Debug("Organism created", "origin", spawn.Origin, "genome_length", spawn.GenomeLength)
	o.hooks.Spawn(spawn)

	o.Decode()
	return o, nil
}

func checkTraitNames(set trait.Set) error {
	seen := make(map[string]bool, len(set))
	for _, spec := range set {
		name := spec.Name()
		if name == "" {
			return fmt.Errorf("%w: trait name must not be empty", genome.ErrInvalidArgument)
		}
		if seen[name] {
			return fmt.Errorf("%w: trait %q is declared more than once", genome.ErrInvalidArgument, name)
		}
		seen[name] = true
	}
	return nil
}

// Decode recomputes every trait from the current genome, replacing the previous trait map.
// It never modifies the genome. Traits that cannot be decoded hold decoder.Undecoded().
func (o *Organism) Decode() {
	values := make(map[string]decoder.Value, len(o.traits))
	for _, spec := range o.traits {
		v := spec.Decode(o.genome)
		values[spec.Name()] = v
		if !v.IsDecoded() {
			o.logger.Debug("Trait undecoded", "trait", spec.Name(), "kind", spec.Kind())
		}
		o.hooks.Decode(&observability.DecodeEvent{
			EventBase: observability.NewBase(observability.EventDecode, o.id),
			Trait:     spec.Name(),
			Kind:      string(spec.Kind()),
			Value:     v,
		})
	}
	o.values = values
}

// SetByte writes value at index in the owned genome. Traits are not re-decoded.
func (o *Organism) SetByte(index, value int) error {
	old, _ := o.genome.Segment(index, 1)
	if err := o.genome.SetByte(index, value); err != nil {
		return err
	}
	o.mutated(index, old[0], byte(value), false)
	return nil
}

// Mutate replaces the byte at index with a random value and returns it.
// Traits are not re-decoded.
func (o *Organism) Mutate(index int) (byte, error) {
	old, _ := o.genome.Segment(index, 1)
	b, err := o.genome.Mutate(index)
	if err != nil {
		return 0, err
	}
	o.mutated(index, old[0], b, true)
	return b, nil
}

func (o *Organism) mutated(index int, old, updated byte, random bool) {
	o.logger.Debug("Genome mutated", "index", index, "old", old, "new", updated, "random", random)
	o.hooks.Mutate(&observability.MutateEvent{
		EventBase: observability.NewBase(observability.EventMutate, o.id),
		Index:     index,
		Old:       old,
		New:       updated,
		Random:    random,
	})
}

// ID returns the organism identifier.
func (o *Organism) ID() string {
	return o.id
}

// Genome returns the owned genome. Mutations through it are visible after the next Decode.
func (o *Organism) Genome() *genome.Genome {
	return o.genome
}

// Specs returns the trait set in declaration order.
func (o *Organism) Specs() trait.Set {
	return o.traits
}

// Traits returns a copy of the current trait map.
func (o *Organism) Traits() map[string]decoder.Value {
	out := make(map[string]decoder.Value, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

// Trait returns a single decoded trait.
func (o *Organism) Trait(name string) (decoder.Value, bool) {
	v, ok := o.values[name]
	return v, ok
}
