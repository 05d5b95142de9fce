package cli

import (
	"io"
	"os"
)

// Options contains the configuration shared by every command.
type Options struct {
	LogLevel   string
	Seed       uint64
	TraitsPath string
	Plain      bool
	JSON       bool
	Metrics    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// withDefaults fills unset streams with the process ones.
func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}
