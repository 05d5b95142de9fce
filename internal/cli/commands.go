package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/genotype"
	"github.com/aretw0/genotype/internal/presentation/tui"
	"github.com/aretw0/genotype/pkg/trait"
)

// Spawn creates a random organism of the requested size and displays it.
// A size of zero uses genotype.DefaultGenomeSize.
func Spawn(opts Options, size int) error {
	env, err := newEnvironment(opts)
	if err != nil {
		return err
	}
	var extra []genotype.Option
	if size != 0 {
		extra = append(extra, genotype.WithGenomeSize(size))
	}
	org, err := env.createOrganism(extra...)
	if err != nil {
		return err
	}
	if err := env.show(org); err != nil {
		return err
	}
	return env.finish()
}

// Decode displays the organism encoded by a hex genome.
func Decode(opts Options, hex string) error {
	env, err := newEnvironment(opts)
	if err != nil {
		return err
	}
	org, err := env.organismFromHex(hex)
	if err != nil {
		return err
	}
	if err := env.show(org); err != nil {
		return err
	}
	return env.finish()
}

// MutationResult is the JSON form of a mutate command.
type MutationResult struct {
	Index    int               `json:"index"`
	Old      byte              `json:"old"`
	New      byte              `json:"new"`
	Organism genotype.Snapshot `json:"organism"`
	Changes  []trait.Change    `json:"changes"`
}

// Mutate changes one byte of a hex genome, re-decodes and reports the trait diff.
// A nil value draws a random byte.
func Mutate(opts Options, hex string, index int, value *int) error {
	env, err := newEnvironment(opts)
	if err != nil {
		return err
	}
	org, err := env.organismFromHex(hex)
	if err != nil {
		return err
	}

	before := org.Traits()
	old, err := org.Genome().Segment(index, 1)
	if err != nil {
		return err
	}

	var updated byte
	if value != nil {
		if err := org.SetByte(index, *value); err != nil {
			return err
		}
		updated = byte(*value)
	} else {
		if updated, err = org.Mutate(index); err != nil {
			return err
		}
	}
	org.Decode()

	result := MutationResult{
		Index:    index,
		Old:      old[0],
		New:      updated,
		Organism: org.Snapshot(),
		Changes:  trait.Diff(before, org.Traits()),
	}

	out := env.opts.Stdout
	switch {
	case env.opts.JSON:
		if err := writeJSON(out, result); err != nil {
			return err
		}
	case env.interactive:
		if err := env.renderMarkdown(tui.OrganismMarkdown(org) + "\n" + changesMarkdown(result)); err != nil {
			return err
		}
	default:
		fmt.Fprintf(out, "genome[%d]: %d -> %d\n", result.Index, result.Old, result.New)
		fmt.Fprintf(out, "Genome: %s\n", result.Organism.Genome)
		if len(result.Changes) == 0 {
			fmt.Fprintln(out, "No trait changed.")
		}
		for _, c := range result.Changes {
			fmt.Fprintf(out, "  %s: %s -> %s\n", c.Trait, c.Old, c.New)
		}
	}
	return env.finish()
}

// ListTraits prints the active trait set.
func ListTraits(opts Options) error {
	env, err := newEnvironment(opts)
	if err != nil {
		return err
	}
	md := tui.TraitSetMarkdown(env.traits)
	if env.interactive {
		return env.renderMarkdown(md)
	}
	_, err = io.WriteString(env.opts.Stdout, md)
	return err
}

// Lab starts an interactive session over one organism.
// An empty hex spawns a random organism of the given size.
func Lab(opts Options, hex string, size int) error {
	env, err := newEnvironment(opts)
	if err != nil {
		return err
	}

	var org *genotype.Organism
	if hex != "" {
		org, err = env.organismFromHex(hex)
	} else if size != 0 {
		org, err = env.createOrganism(genotype.WithGenomeSize(size))
	} else {
		org, err = env.createOrganism()
	}
	if err != nil {
		return err
	}

	r := genotype.NewRunner()
	r.Input = env.opts.Stdin
	r.Output = env.opts.Stdout
	r.Headless = !env.interactive
	if env.interactive {
		tui.PrintBanner(env.opts.Stdout)
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		r.Renderer = tui.OrganismRenderer(render)
	}
	if err := r.Run(org); err != nil {
		return err
	}
	return env.finish()
}

// show writes an organism in the mode selected by the options.
func (e *environment) show(org *genotype.Organism) error {
	out := e.opts.Stdout
	switch {
	case e.opts.JSON:
		return writeJSON(out, org.Snapshot())
	case e.interactive:
		return e.renderMarkdown(tui.OrganismMarkdown(org))
	}
	fmt.Fprint(out, org.Render())
	fmt.Fprintf(out, "Genome: %s\n", org.Genome().Hex())
	return nil
}

func (e *environment) renderMarkdown(md string) error {
	render, err := tui.NewRenderer()
	if err != nil {
		return err
	}
	rendered, err := render(md)
	if err != nil {
		return err
	}
	tui.PrintBanner(e.opts.Stdout)
	_, err = io.WriteString(e.opts.Stdout, rendered)
	return err
}

func changesMarkdown(r MutationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Mutation\n\n`genome[%d]`: %d → %d\n\n", r.Index, r.Old, r.New)
	if len(r.Changes) == 0 {
		b.WriteString("_No trait changed._\n")
		return b.String()
	}
	for _, c := range r.Changes {
		fmt.Fprintf(&b, "- **%s**: %s → %s\n", c.Trait, c.Old, c.New)
	}
	return b.String()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
