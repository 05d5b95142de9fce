package main

import (
	"github.com/aretw0/genotype/internal/cli"
	"github.com/spf13/cobra"
)

var spawnCmd = &cobra.Command{
	Use:   "spawn",
	Short: "Create an organism with a random genome",
	Long: `Creates an organism with a random genome and prints its decoded traits.
Sizes below the trait set minimum are raised to the minimum.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt("size")
		exitOnError(cli.Spawn(optionsFrom(cmd), size))
	},
}

func init() {
	rootCmd.AddCommand(spawnCmd)

	spawnCmd.Flags().Int("size", 0, "Genome length in bytes (default 1024)")
	spawnCmd.Flags().Bool("json", false, "Print the organism as JSON")
}
