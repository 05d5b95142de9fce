/*
Package genotype models simple organisms whose traits are derived deterministically from a
fixed-length byte genome.

The library is layered strictly downward:

  - pkg/genome holds the byte buffer with bounds-checked segment reads and single-byte writes.
  - pkg/decoder turns segments into trait values with checksum arithmetic.
  - pkg/trait declares which coordinates feed which traits.
  - Organism (this package) owns one genome and exposes its decoded traits.

# Decoding

A discrete trait picks a label: sum(segment) mod len(options). An interacting trait
multiplies the checksums of two segments and reduces the product modulo a maximum. When a
trait cannot be decoded (bad coordinates, empty options, non-positive maximum) it holds the
Undecoded marker; the remaining traits are unaffected.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/genotype"
		"github.com/aretw0/genotype/pkg/genome"
	)

	func main() {
		g := genome.FromBytes([]byte{0, 1, 2, 3, 10, 11, 20, 21})

		org, err := genotype.New(genotype.WithGenome(g))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(org.Render())

		// Mutations are only reflected after an explicit re-decode.
		if err := org.SetByte(0, 255); err != nil {
			log.Fatal(err)
		}
		org.Decode()
		fmt.Print(org.Render())
	}

Random genomes draw from crypto/rand unless a source is injected with WithRand, which
makes runs reproducible.
*/
package genotype
