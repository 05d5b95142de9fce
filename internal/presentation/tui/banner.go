package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`   ____                  _`, "#34d399"},
	{`  / ___| ___ _ __   ___ | |_ _   _ _ __   ___`, "#2dd4bf"},
	{` | |  _ / _ \ '_ \ / _ \| __| | | | '_ \ / _ \`, "#22d3ee"},
	{` | |_| |  __/ | | | (_) | |_| |_| | |_) |  __/`, "#38bdf8"},
	{`  \____|\___|_| |_|\___/ \__|\__, | .__/ \___|`, "#60a5fa"},
	{`                             |___/|_|`, "#818cf8"},
}

// PrintBanner writes the Genotype banner to w, colored when w supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w)
}
