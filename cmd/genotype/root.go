package main

import (
	"fmt"
	"os"

	"github.com/aretw0/genotype/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "genotype",
	Short: "Genotype decodes organism traits from byte genomes",
	Long: `Genotype spawns organisms with random genomes, decodes traits from hex genomes
and shows how single-byte mutations change them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "off", "Log level written to stderr (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible random genomes and mutations (0 uses crypto/rand)")
	rootCmd.PersistentFlags().String("traits", "", "YAML or JSON file declaring the trait set")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable styled terminal output")
	rootCmd.PersistentFlags().Bool("metrics", false, "Dump Prometheus metrics to stderr on exit")
}

// optionsFrom collects the persistent flags.
func optionsFrom(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	logLevel, _ := flags.GetString("log-level")
	seed, _ := flags.GetUint64("seed")
	traitsPath, _ := flags.GetString("traits")
	plain, _ := flags.GetBool("plain")
	metrics, _ := flags.GetBool("metrics")
	jsonMode, _ := flags.GetBool("json")

	return cli.Options{
		LogLevel:   logLevel,
		Seed:       seed,
		TraitsPath: traitsPath,
		Plain:      plain,
		Metrics:    metrics,
		JSON:       jsonMode,
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
