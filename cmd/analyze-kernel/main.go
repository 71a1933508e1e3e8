// Command analyze-kernel prints diagnostics for a range of blur kernels:
// fetch savings, DC gain, how well the bilinear taps reproduce the discrete
// binomial kernel, and the magnitude response at a few frequencies.
//
// Usage:
//
//	analyze-kernel [max_half_radius]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/tphakala/go-blur-kernel/internal/filter"
	"github.com/tphakala/go-blur-kernel/internal/format"
	"github.com/tphakala/go-blur-kernel/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

const (
	defaultMaxHalfRadius = 6
	responsePoints       = 256

	// L2 norm for reconstruction error
	euclideanNorm = 2

	// Percent conversion
	percentScale = 100
)

// Normalized frequencies (cycles/sample) reported for every kernel
var probeFrequencies = []float64{0.05, 0.1, 0.2, 0.3, 0.4}

func main() {
	maxHalfRadius := defaultMaxHalfRadius
	if len(os.Args) > 1 {
		v, err := strconv.Atoi(os.Args[1])
		if err != nil || v < 1 {
			log.Fatalf("invalid max half-radius %q: must be a positive integer", os.Args[1])
		}
		maxHalfRadius = v
	}

	fmt.Println("=== Analyzing Bilinear Blur Kernels ===")

	for h := 1; h <= maxHalfRadius; h++ {
		if err := analyze(h); err != nil {
			log.Fatalf("half-radius %d: %v", h, err)
		}
	}
}

func analyze(halfRadius int) error {
	k, err := filter.Generate(halfRadius)
	if err != nil {
		return err
	}

	expanded := k.Expand()
	reference := mathutil.NormalizeRow(mathutil.BinomialRow(2 * k.Radius()))
	reconstructionErr := floats.Distance(expanded, reference, euclideanNorm)

	fmt.Printf("\n=== half-radius %d (radius %s) ===\n", halfRadius, format.Float64(k.SampleRadius()))
	fmt.Printf("  Taps: %d\n", len(k.Taps))
	fmt.Printf("  Fetches: %d (discrete kernel: %d, saved %.1f%%)\n",
		k.Fetches(), k.RawSamples(),
		percentScale*(1-float64(k.Fetches())/float64(k.RawSamples())))
	fmt.Printf("  Center weight: %.10f\n", k.Center)
	fmt.Printf("  DC gain: %.15f\n", k.Gain())
	fmt.Printf("  Reconstruction error (L2): %.3e\n", reconstructionErr)

	for i, tap := range k.Taps {
		fmt.Printf("    Tap %2d: weight %.10f  offset %.10f\n", i, tap.Weight, tap.Offset)
	}

	resp := filter.ComputeFrequencyResponse(expanded, responsePoints)
	fmt.Println("  Magnitude response:")
	for _, f := range probeFrequencies {
		fmt.Printf("    f=%.2f: %8.2f dB\n", f, filter.MagnitudeDB(resp.MagnitudeAt(f)))
	}

	return nil
}
