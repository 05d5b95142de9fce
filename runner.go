package genotype

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/genotype/pkg/trait"
)

// Runner drives an interactive session over one organism using the provided IO.
// This allows for easy testing and integration with different frontends (CLI, TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer transforms an organism view before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(*Organism) (string, error)

const runnerHelp = `Commands:
  show              print the decoded traits
  genome            print the genome as hex
  set <i> <value>   write a byte (0-255) at index i
  mutate <i>        replace the byte at index i with a random one
  decode            re-decode traits and print what changed
  exit | quit       leave the session`

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run reads commands line by line until EOF or exit, applying them to org.
// Command mistakes are reported on Output and do not stop the session.
func (r *Runner) Run(org *Organism) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lines := bufio.NewReader(r.Input)

	if !r.Headless {
		fmt.Fprintln(r.Output, "--- Genotype Lab ---")
		fmt.Fprintln(r.Output, "Type 'help' for commands.")
	}
	r.show(org)

	for {
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}
		text, err := lines.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("input error: %w", err)
		}
		eof := err != nil

		fields := strings.Fields(text)
		if len(fields) > 0 {
			if fields[0] == "exit" || fields[0] == "quit" {
				fmt.Fprintln(r.Output, "Bye!")
				return nil
			}
			if cmdErr := r.execute(org, fields); cmdErr != nil {
				fmt.Fprintf(r.Output, "error: %v\n", cmdErr)
			}
		}
		if eof {
			return nil
		}
	}
}

func (r *Runner) execute(org *Organism, fields []string) error {
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "help":
		fmt.Fprintln(r.Output, runnerHelp)
	case "show":
		r.show(org)
	case "genome":
		fmt.Fprintln(r.Output, org.Genome().Hex())
	case "set":
		if len(args) != 2 {
			return fmt.Errorf("usage: set <index> <value>")
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q", args[1])
		}
		if err := org.SetByte(index, value); err != nil {
			return err
		}
		fmt.Fprintf(r.Output, "genome[%d] = %d\n", index, value)
	case "mutate":
		if len(args) != 1 {
			return fmt.Errorf("usage: mutate <index>")
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}
		b, err := org.Mutate(index)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.Output, "genome[%d] = %d\n", index, b)
	case "decode":
		before := org.Traits()
		org.Decode()
		changes := trait.Diff(before, org.Traits())
		if len(changes) == 0 {
			fmt.Fprintln(r.Output, "No trait changed.")
			return nil
		}
		for _, c := range changes {
			fmt.Fprintf(r.Output, "  %s: %s -> %s\n", c.Trait, c.Old, c.New)
		}
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return nil
}

func (r *Runner) show(org *Organism) {
	output := org.Render()
	if r.Renderer != nil {
		if rendered, err := r.Renderer(org); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(r.Output, strings.TrimRight(output, "\n"))
}
