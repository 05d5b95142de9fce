package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/genotype"
	"github.com/aretw0/genotype/pkg/genome"
	"github.com/stretchr/testify/require"
)

// ReferenceBytes decode with the default traits to color=pink and size=61.
var ReferenceBytes = []byte{0, 1, 2, 3, 10, 11, 20, 21}

// ReferenceHex is ReferenceBytes in hex.
const ReferenceHex = "000102030a0b1415"

// ReferenceOrganism creates an organism owning a fresh copy of ReferenceBytes.
// Extra options are applied after the genome. It fails the test immediately on error.
func ReferenceOrganism(t *testing.T, opts ...genotype.Option) *genotype.Organism {
	t.Helper()

	opts = append([]genotype.Option{genotype.WithGenome(genome.FromBytes(ReferenceBytes))}, opts...)
	org, err := genotype.New(opts...)
	require.NoError(t, err, "Failed to create reference organism")
	return org
}

// WriteFile creates name with content in a temporary directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}
