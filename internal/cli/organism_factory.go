package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/genotype"
	"github.com/aretw0/genotype/pkg/genome"
	"github.com/aretw0/genotype/pkg/observability"
	"github.com/aretw0/genotype/pkg/trait"
	"github.com/prometheus/client_golang/prometheus"
)

// environment holds what every command derives from Options.
type environment struct {
	opts        Options
	logger      *slog.Logger
	traits      trait.Set
	rand        io.Reader
	registry    *prometheus.Registry
	hooks       observability.Hooks
	interactive bool
}

// newEnvironment applies the CLI conventions to opts.
func newEnvironment(opts Options) (*environment, error) {
	opts = opts.withDefaults()
	env := &environment{
		opts:        opts,
		rand:        seedReader(opts.Seed),
		interactive: !opts.Plain && !opts.JSON && isTerminal(opts.Stdout),
	}

	// 1. Logger & Hooks
	logger, err := createLogger(opts.Stderr, opts.LogLevel)
	if err != nil {
		return nil, err
	}
	env.logger = logger
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		env.hooks = createDebugHooks(logger)
	}

	// 2. Metrics
	if opts.Metrics {
		env.registry = prometheus.NewRegistry()
		m, err := observability.NewMetrics(env.registry)
		if err != nil {
			return nil, fmt.Errorf("error registering metrics: %w", err)
		}
		env.hooks = observability.Combine(env.hooks, m.Hooks())
	}

	// 3. Trait set
	env.traits = trait.Default()
	if opts.TraitsPath != "" {
		set, err := trait.LoadFile(opts.TraitsPath)
		if err != nil {
			return nil, fmt.Errorf("error loading traits: %w", err)
		}
		env.traits = set
		logger.Debug("Traits loaded", "path", opts.TraitsPath, "count", len(set))
	}

	return env, nil
}

// createOrganism spawns an organism with the environment conventions.
func (e *environment) createOrganism(extra ...genotype.Option) (*genotype.Organism, error) {
	opts := []genotype.Option{
		genotype.WithLogger(e.logger),
		genotype.WithTraits(e.traits),
		genotype.WithHooks(e.hooks),
		genotype.WithRand(e.rand),
	}
	org, err := genotype.New(append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("error creating organism: %w", err)
	}
	return org, nil
}

// organismFromHex decodes a hex genome; randomness stays available for mutations.
func (e *environment) organismFromHex(hex string) (*genotype.Organism, error) {
	g, err := genome.ParseHex(hex, genome.WithRand(e.rand))
	if err != nil {
		return nil, err
	}
	return e.createOrganism(genotype.WithGenome(g))
}

// finish dumps metrics to Stderr when requested.
func (e *environment) finish() error {
	if e.registry == nil {
		return nil
	}
	return dumpMetrics(e.registry, e.opts.Stderr)
}
