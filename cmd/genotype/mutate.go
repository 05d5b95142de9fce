package main

import (
	"github.com/aretw0/genotype/internal/cli"
	"github.com/spf13/cobra"
)

var mutateCmd = &cobra.Command{
	Use:   "mutate <hex>",
	Short: "Change one byte of a hex genome and show the trait diff",
	Long: `Sets the byte at --index to --value (or a random byte when --value is omitted),
re-decodes the organism and prints the traits that changed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index, _ := cmd.Flags().GetInt("index")

		var value *int
		if cmd.Flags().Changed("value") {
			v, _ := cmd.Flags().GetInt("value")
			value = &v
		}
		exitOnError(cli.Mutate(optionsFrom(cmd), args[0], index, value))
	},
}

func init() {
	rootCmd.AddCommand(mutateCmd)

	mutateCmd.Flags().Int("index", 0, "Byte index to mutate")
	mutateCmd.Flags().Int("value", 0, "New byte value (0-255); random when omitted")
	mutateCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = mutateCmd.MarkFlagRequired("index")
}
