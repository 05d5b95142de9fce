package genotype_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aretw0/genotype"
	"github.com/aretw0/genotype/pkg/decoder"
	"github.com/aretw0/genotype/pkg/genome"
	"github.com/aretw0/genotype/pkg/observability"
	"github.com/aretw0/genotype/pkg/trait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceBytes decode to color=pink (sum 6) and size=61 (21*41 mod 100).
var referenceBytes = []byte{0, 1, 2, 3, 10, 11, 20, 21}

func TestNew_ProvidedGenome(t *testing.T) {
	g := genome.FromBytes(referenceBytes)
	org, err := genotype.New(genotype.WithGenome(g))
	require.NoError(t, err)

	assert.Same(t, g, org.Genome())
	assert.Equal(t, map[string]decoder.Value{
		"color": decoder.Label("pink"),
		"size":  decoder.Number(61),
	}, org.Traits())
}

func TestNew_GenomeTooSmall(t *testing.T) {
	for _, n := range []int{0, 3, 7} {
		org, err := genotype.New(genotype.WithGenome(genome.FromBytes(make([]byte, n))))
		assert.Nil(t, org)
		assert.ErrorIs(t, err, genotype.ErrGenomeTooSmall)
		assert.ErrorIs(t, err, genome.ErrInvalidArgument)
	}
}

func TestNew_RandomGenome(t *testing.T) {
	t.Run("Default Size", func(t *testing.T) {
		org, err := genotype.New()
		require.NoError(t, err)
		assert.Equal(t, genotype.DefaultGenomeSize, org.Genome().Len())

		traits := org.Traits()
		assert.Contains(t, traits, "color")
		assert.Contains(t, traits, "size")
		assert.True(t, traits["color"].IsDecoded())
		assert.True(t, traits["size"].IsDecoded())
	})

	t.Run("Exact Minimum", func(t *testing.T) {
		org, err := genotype.New(genotype.WithGenomeSize(8))
		require.NoError(t, err)
		assert.Equal(t, 8, org.Genome().Len())
	})

	t.Run("Clamped To Minimum With Warning", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		org, err := genotype.New(genotype.WithGenomeSize(4), genotype.WithLogger(logger))
		require.NoError(t, err)
		assert.Equal(t, 8, org.Genome().Len())
		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), "requested=4")
		assert.Contains(t, logs.String(), "minimum=8")
	})

	t.Run("Negative Size Is Clamped", func(t *testing.T) {
		org, err := genotype.New(genotype.WithGenomeSize(-5))
		require.NoError(t, err)
		assert.Equal(t, 8, org.Genome().Len())
	})

	t.Run("Seeded Source Is Reproducible", func(t *testing.T) {
		seed := [32]byte{42}
		a, err := genotype.New(genotype.WithRand(rand.NewChaCha8(seed)))
		require.NoError(t, err)
		b, err := genotype.New(genotype.WithRand(rand.NewChaCha8(seed)))
		require.NoError(t, err)

		assert.Equal(t, a.Genome().Hex(), b.Genome().Hex())
		assert.Equal(t, a.Traits(), b.Traits())
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("Source Failure", func(t *testing.T) {
		_, err := genotype.New(genotype.WithRand(iotest.ErrReader(assert.AnError)))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNew_GenomeLimit(t *testing.T) {
	far := trait.Set{
		trait.Discrete{TraitName: "far", Gene: trait.Gene{Start: 1 << 62, Length: 4}, Options: []string{"a"}},
	}
	wrapping := trait.Set{
		trait.Interacting{TraitName: "wrap", First: trait.Gene{Start: 0, Length: 1}, Second: trait.Gene{Start: math.MaxInt, Length: 2}, Max: 5},
	}

	tests := []struct {
		name string
		opts []genotype.Option
	}{
		{"Far Trait Random Genome", []genotype.Option{genotype.WithTraits(far)}},
		{"Far Trait Provided Genome", []genotype.Option{genotype.WithTraits(far), genotype.WithGenome(genome.FromBytes(referenceBytes))}},
		{"Overflowing Trait", []genotype.Option{genotype.WithTraits(wrapping)}},
		{"Huge Requested Size", []genotype.Option{genotype.WithGenomeSize(1 << 40)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = genotype.New(tt.opts...)
			})
			assert.ErrorIs(t, err, genome.ErrInvalidArgument)
		})
	}
}

func TestNew_TraitNames(t *testing.T) {
	dup := trait.Set{
		trait.Discrete{TraitName: "color", Gene: trait.Gene{Start: 0, Length: 1}, Options: []string{"a"}},
		trait.Discrete{TraitName: "color", Gene: trait.Gene{Start: 1, Length: 1}, Options: []string{"b"}},
	}
	_, err := genotype.New(genotype.WithTraits(dup))
	assert.ErrorIs(t, err, genome.ErrInvalidArgument)

	unnamed := trait.Set{trait.Discrete{Gene: trait.Gene{Start: 0, Length: 1}, Options: []string{"a"}}}
	_, err = genotype.New(genotype.WithTraits(unnamed))
	assert.ErrorIs(t, err, genome.ErrInvalidArgument)
}

func TestDecode(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		org, err := genotype.New(genotype.WithGenomeSize(64))
		require.NoError(t, err)

		first := org.Traits()
		org.Decode()
		assert.Equal(t, first, org.Traits())
		org.Decode()
		assert.Equal(t, first, org.Traits())
	})

	t.Run("Mutation Requires Explicit Decode", func(t *testing.T) {
		org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)))
		require.NoError(t, err)

		require.NoError(t, org.SetByte(0, 255))
		color, _ := org.Trait("color")
		assert.Equal(t, "pink", color.String(), "traits must not change before Decode")

		org.Decode()
		color, _ = org.Trait("color")
		size, _ := org.Trait("size")
		assert.Equal(t, "green", color.String()) // 255+1+2+3 = 261
		assert.Equal(t, decoder.Number(61), size)
	})

	t.Run("Mutation Through Genome", func(t *testing.T) {
		org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)))
		require.NoError(t, err)

		require.NoError(t, org.Genome().SetByte(4, 0))
		require.NoError(t, org.Genome().SetByte(5, 0))
		org.Decode()
		size, _ := org.Trait("size")
		assert.Equal(t, decoder.Number(0), size, "a zero checksum collapses the product")
	})

	t.Run("Random Mutation", func(t *testing.T) {
		src := bytes.NewReader(append(append([]byte{}, referenceBytes...), 255))
		org, err := genotype.New(genotype.WithGenomeSize(8), genotype.WithRand(src))
		require.NoError(t, err)
		assert.Equal(t, "000102030a0b1415", org.Genome().Hex())

		b, err := org.Mutate(0)
		require.NoError(t, err)
		assert.Equal(t, byte(255), b)

		org.Decode()
		color, _ := org.Trait("color")
		assert.Equal(t, "green", color.String())
	})

	t.Run("Invalid Mutations", func(t *testing.T) {
		org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)))
		require.NoError(t, err)

		assert.ErrorIs(t, org.SetByte(8, 1), genome.ErrOutOfRange)
		assert.ErrorIs(t, org.SetByte(0, 256), genome.ErrInvalidArgument)
		_, err = org.Mutate(-1)
		assert.ErrorIs(t, err, genome.ErrOutOfRange)
		assert.Equal(t, "000102030a0b1415", org.Genome().Hex())
	})

	t.Run("Bad Trait Does Not Abort Others", func(t *testing.T) {
		set := append(trait.Default(),
			trait.Discrete{TraitName: "shape", Gene: trait.Gene{Start: 0, Length: 2}},
			trait.Interacting{TraitName: "mass", First: trait.Gene{Start: 0, Length: 1}, Second: trait.Gene{Start: 1, Length: 1}, Max: 0},
		)
		org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)), genotype.WithTraits(set))
		require.NoError(t, err)

		traits := org.Traits()
		assert.False(t, traits["shape"].IsDecoded())
		assert.False(t, traits["mass"].IsDecoded())
		assert.Equal(t, decoder.Label("pink"), traits["color"])
		assert.Equal(t, decoder.Number(61), traits["size"])
	})

	t.Run("Traits Returns A Copy", func(t *testing.T) {
		org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)))
		require.NoError(t, err)

		traits := org.Traits()
		traits["color"] = decoder.Label("mauve")
		color, _ := org.Trait("color")
		assert.Equal(t, "pink", color.String())
	})
}

func TestHooks(t *testing.T) {
	var spawns []*observability.SpawnEvent
	var decodes []*observability.DecodeEvent
	var mutations []*observability.MutateEvent
	hooks := observability.Hooks{
		OnSpawn:  func(e *observability.SpawnEvent) { spawns = append(spawns, e) },
		OnDecode: func(e *observability.DecodeEvent) { decodes = append(decodes, e) },
		OnMutate: func(e *observability.MutateEvent) { mutations = append(mutations, e) },
	}

	org, err := genotype.New(
		genotype.WithGenome(genome.FromBytes(referenceBytes)),
		genotype.WithHooks(hooks),
		genotype.WithID("org-1"),
	)
	require.NoError(t, err)
	assert.Equal(t, "org-1", org.ID())

	require.Len(t, spawns, 1)
	assert.Equal(t, observability.OriginProvided, spawns[0].Origin)
	assert.Equal(t, 8, spawns[0].GenomeLength)
	assert.Equal(t, "org-1", spawns[0].OrganismID)

	require.Len(t, decodes, 2)
	assert.Equal(t, "color", decodes[0].Trait)
	assert.Equal(t, "discrete", decodes[0].Kind)
	assert.Equal(t, decoder.Number(61), decodes[1].Value)

	require.NoError(t, org.SetByte(3, 9))
	require.Len(t, mutations, 1)
	assert.Equal(t, 3, mutations[0].Index)
	assert.Equal(t, byte(3), mutations[0].Old)
	assert.Equal(t, byte(9), mutations[0].New)
	assert.False(t, mutations[0].Random)

	assert.Error(t, org.SetByte(99, 1))
	assert.Len(t, mutations, 1, "failed mutations are not reported")

	t.Run("Clamp Is Reported", func(t *testing.T) {
		spawns = nil
		_, err := genotype.New(genotype.WithGenomeSize(2), genotype.WithHooks(hooks))
		require.NoError(t, err)
		require.Len(t, spawns, 1)
		assert.True(t, spawns[0].Clamped)
		assert.Equal(t, 2, spawns[0].RequestedSize)
		assert.Equal(t, observability.OriginRandom, spawns[0].Origin)
	})
}

func TestRender(t *testing.T) {
	t.Run("Reference Organism", func(t *testing.T) {
		org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)))
		require.NoError(t, err)
		assert.Equal(t, "Organism Attributes:\n  Color: pink\n  Size: 61\n", org.Render())
	})

	t.Run("Undecoded Shows Sentinel", func(t *testing.T) {
		set := trait.Set{
			trait.Interacting{TraitName: "max_speed", First: trait.Gene{Start: 0, Length: 1}, Second: trait.Gene{Start: 1, Length: 1}, Max: -1},
		}
		org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)), genotype.WithTraits(set))
		require.NoError(t, err)
		assert.Equal(t, "Organism Attributes:\n  Max_speed: N/A\n", org.Render())
	})

	t.Run("No Traits", func(t *testing.T) {
		org, err := genotype.New(genotype.WithTraits(trait.Set{}), genotype.WithGenomeSize(0))
		require.NoError(t, err)
		assert.Equal(t, 0, org.Genome().Len())
		assert.Equal(t, "Organism Attributes:\n  No attributes decoded.\n", org.Render())
	})
}

func TestString(t *testing.T) {
	org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)))
	require.NoError(t, err)
	assert.Equal(t, "Organism(Genome: 000102030a0b1415, Attributes: {'color': 'pink', 'size': 61})", org.String())

	long, err := genotype.New(genotype.WithGenome(genome.FromBytes(append(referenceBytes, make([]byte, 12)...))))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(long.String(), "Organism(Genome: 000102030a0b14150000000000000000..., "))

	set := append(trait.Default(), trait.Discrete{TraitName: "shape", Gene: trait.Gene{Start: 0, Length: 1}})
	partial, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)), genotype.WithTraits(set))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(partial.String(), "{'color': 'pink', 'size': 61, 'shape': None})"))
}

func TestSnapshot(t *testing.T) {
	org, err := genotype.New(genotype.WithGenome(genome.FromBytes(referenceBytes)), genotype.WithID("abc"))
	require.NoError(t, err)

	data, err := json.Marshal(org.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "abc",
		"genome": "000102030a0b1415",
		"genome_length": 8,
		"traits": {"color": "pink", "size": 61}
	}`, string(data))
}
