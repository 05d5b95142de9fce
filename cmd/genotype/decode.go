package main

import (
	"github.com/aretw0/genotype/internal/cli"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode the traits of a hex genome",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cli.Decode(optionsFrom(cmd), args[0]))
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().Bool("json", false, "Print the organism as JSON")
}
