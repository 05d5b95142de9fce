package main

import (
	"github.com/aretw0/genotype/internal/cli"
	"github.com/spf13/cobra"
)

var traitsCmd = &cobra.Command{
	Use:   "traits",
	Short: "List the active trait set",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cli.ListTraits(optionsFrom(cmd)))
	},
}

func init() {
	rootCmd.AddCommand(traitsCmd)
}
