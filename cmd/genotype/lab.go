package main

import (
	"github.com/aretw0/genotype/internal/cli"
	"github.com/spf13/cobra"
)

var labCmd = &cobra.Command{
	Use:   "lab [hex]",
	Short: "Mutate and re-decode an organism interactively",
	Long: `Starts an interactive session over one organism, read from a hex genome or
spawned at random. Type 'help' inside the session for commands.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var hex string
		if len(args) > 0 {
			hex = args[0]
		}
		size, _ := cmd.Flags().GetInt("size")
		exitOnError(cli.Lab(optionsFrom(cmd), hex, size))
	},
}

func init() {
	rootCmd.AddCommand(labCmd)

	labCmd.Flags().Int("size", 0, "Genome length for a random organism (default 1024)")
}
