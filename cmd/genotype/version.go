package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/genotype"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of genotype",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("genotype version %s\n", strings.TrimSpace(genotype.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
