package observability

import (
	"testing"

	"github.com/aretw0/genotype/pkg/decoder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks_NilCallbacksAreSkipped(t *testing.T) {
	var h Hooks
	assert.NotPanics(t, func() {
		h.Spawn(&SpawnEvent{})
		h.Decode(&DecodeEvent{})
		h.Mutate(&MutateEvent{})
	})
}

func TestCombine(t *testing.T) {
	var calls []string
	first := Hooks{
		OnDecode: func(e *DecodeEvent) { calls = append(calls, "first:"+e.Trait) },
	}
	second := Hooks{
		OnDecode: func(e *DecodeEvent) { calls = append(calls, "second:"+e.Trait) },
		OnMutate: func(e *MutateEvent) { calls = append(calls, "second:mutate") },
	}

	h := Combine(first, second)
	h.Decode(&DecodeEvent{Trait: "color"})
	h.Mutate(&MutateEvent{})
	h.Spawn(&SpawnEvent{})

	assert.Equal(t, []string{"first:color", "second:color", "second:mutate"}, calls)
}

func TestNewBase(t *testing.T) {
	base := NewBase(EventMutate, "org-1")
	assert.Equal(t, EventMutate, base.Type)
	assert.Equal(t, "org-1", base.OrganismID)
	assert.False(t, base.Timestamp.IsZero())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	h := m.Hooks()
	h.Spawn(&SpawnEvent{Origin: OriginRandom, GenomeLength: 1024})
	h.Spawn(&SpawnEvent{Origin: OriginProvided, GenomeLength: 8})
	h.Decode(&DecodeEvent{Trait: "color", Value: decoder.Label("pink")})
	h.Decode(&DecodeEvent{Trait: "color", Value: decoder.Label("green")})
	h.Decode(&DecodeEvent{Trait: "size", Value: decoder.Undecoded()})
	h.Mutate(&MutateEvent{Random: true})
	h.Mutate(&MutateEvent{})
	h.Mutate(&MutateEvent{})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.decodes.WithLabelValues("color", "decoded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodes.WithLabelValues("size", "undecoded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("random")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("explicit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.spawned.WithLabelValues("random")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.spawned.WithLabelValues("provided")))

	// one histogram, two decode series, two spawn series
	count, err := testutil.GatherAndCount(reg, "genotype_genome_size_bytes", "genotype_trait_decodes_total", "genotype_organisms_spawned_total")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	t.Run("Double Registration Fails", func(t *testing.T) {
		_, err := NewMetrics(reg)
		assert.Error(t, err)
	})
}
