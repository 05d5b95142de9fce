package cli

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/aretw0/genotype/internal/logging"
	"github.com/aretw0/genotype/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/term"
)

// createLogger configures the application logger from the --log-level flag.
// It writes to w, the Stderr stream (to separate from Stdout organism output).
func createLogger(w io.Writer, level string) (*slog.Logger, error) {
	return logging.FromFlag(w, level)
}

func createDebugHooks(logger *slog.Logger) observability.Hooks {
	return observability.Hooks{
		OnSpawn: func(e *observability.SpawnEvent) {
			logger.Debug("Spawn", "organism", e.OrganismID, "origin", e.Origin, "genome_length", e.GenomeLength)
		},
		OnDecode: func(e *observability.DecodeEvent) {
			logger.Debug("Decode", "organism", e.OrganismID, "trait", e.Trait, "value", e.Value.String())
		},
		OnMutate: func(e *observability.MutateEvent) {
			logger.Debug("Mutate", "organism", e.OrganismID, "index", e.Index, "old", e.Old, "new", e.New)
		},
	}
}

// seedReader returns a deterministic byte stream for a non-zero seed, nil otherwise.
func seedReader(seed uint64) io.Reader {
	if seed == 0 {
		return nil
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.NewChaCha8(key)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// dumpMetrics writes every gathered family in the Prometheus text format.
func dumpMetrics(reg prometheus.Gatherer, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
