package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/genotype"
	"github.com/aretw0/genotype/pkg/trait"
	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into terminal output.
type Renderer func(markdown string) (string, error)

// NewRenderer returns a Renderer backed by glamour.
// The style follows the terminal background.
func NewRenderer() (Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// OrganismRenderer adapts a Renderer to the lab session.
func OrganismRenderer(render Renderer) genotype.ContentRenderer {
	return func(org *genotype.Organism) (string, error) {
		return render(OrganismMarkdown(org))
	}
}

// OrganismMarkdown describes an organism as a markdown trait table.
func OrganismMarkdown(org *genotype.Organism) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Organism `%s`\n\n", org.ID())

	specs := org.Specs()
	if len(specs) == 0 {
		b.WriteString("_No attributes decoded._\n\n")
	} else {
		b.WriteString("| Trait | Kind | Value |\n")
		b.WriteString("|---|---|---|\n")
		for _, spec := range specs {
			v, _ := org.Trait(spec.Name())
			fmt.Fprintf(&b, "| %s | %s | %s |\n", spec.Name(), spec.Kind(), v)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Genome: %d bytes, `%s`\n", org.Genome().Len(), preview(org.Genome().Hex()))
	return b.String()
}

// TraitSetMarkdown describes a trait set and the genome length it requires.
func TraitSetMarkdown(set trait.Set) string {
	var b strings.Builder
	b.WriteString("## Traits\n\n")
	if len(set) == 0 {
		b.WriteString("_No traits declared._\n\n")
	} else {
		b.WriteString("| Trait | Kind | Genes | Decodes To |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, spec := range set {
			genes, output := describe(spec)
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", spec.Name(), spec.Kind(), genes, output)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Minimum genome length: %d bytes\n", set.MinGenomeLength())
	return b.String()
}

func describe(spec trait.Spec) (genes, output string) {
	switch s := spec.(type) {
	case trait.Discrete:
		return gene(s.Gene), strings.Join(s.Options, ", ")
	case trait.Interacting:
		return gene(s.First) + " × " + gene(s.Second), fmt.Sprintf("0..%d", s.Max-1)
	}
	return "?", "?"
}

func gene(g trait.Gene) string {
	return fmt.Sprintf("[%d:+%d]", g.Start, g.Length)
}

func preview(hex string) string {
	const limit = 64
	if len(hex) > limit {
		return hex[:limit] + "..."
	}
	return hex
}
