package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by organism hooks.
type Metrics struct {
	decodes    *prometheus.CounterVec
	mutations  *prometheus.CounterVec
	spawned    *prometheus.CounterVec
	genomeSize prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		decodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "genotype_trait_decodes_total",
				Help: "Total number of trait decodes by outcome",
			},
			[]string{"trait", "outcome"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "genotype_genome_mutations_total",
				Help: "Total number of single-byte genome mutations",
			},
			[]string{"mode"},
		),
		spawned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "genotype_organisms_spawned_total",
				Help: "Total number of organisms created",
			},
			[]string{"origin"},
		),
		genomeSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "genotype_genome_size_bytes",
				Help:    "Genome length of created organisms",
				Buckets: prometheus.ExponentialBuckets(8, 4, 6),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.decodes, m.mutations, m.spawned, m.genomeSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnSpawn: func(e *SpawnEvent) {
			m.spawned.WithLabelValues(string(e.Origin)).Inc()
			m.genomeSize.Observe(float64(e.GenomeLength))
		},
		OnDecode: func(e *DecodeEvent) {
			outcome := "decoded"
			if !e.Value.IsDecoded() {
				outcome = "undecoded"
			}
			m.decodes.WithLabelValues(e.Trait, outcome).Inc()
		},
		OnMutate: func(e *MutateEvent) {
			mode := "explicit"
			if e.Random {
				mode = "random"
			}
			m.mutations.WithLabelValues(mode).Inc()
		},
	}
}
