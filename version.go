package genotype

// Version is the library release, reported by the CLI.
var Version = "0.1.0"
