// Package format renders blur kernels as text ready to paste into shader
// constant declarations.
package format

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tphakala/go-blur-kernel/internal/filter"
)

const (
	// Positional notation is used for magnitudes in [minPositional, maxPositional)
	minPositional = 1e-4
	maxPositional = 1e16

	listSeparator = ", "
)

// Float32 coerces v to float32 precision and returns the shortest decimal
// that round-trips at that precision.
//
// Magnitudes in [1e-4, 1e16) are written positionally with at least one
// fractional digit ("1.0", "0.3125"). Anything else is written in scientific
// notation with a two-digit exponent ("1.5258789e-05").
func Float32(v float64) string {
	return formatShortest(float64(float32(v)), 32)
}

// Float64 is like Float32 without the precision coercion.
func Float64(v float64) string {
	return formatShortest(v, 64)
}

func formatShortest(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < minPositional || abs >= maxPositional) {
		return strconv.FormatFloat(v, 'e', -1, bitSize)
	}

	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// List renders values as a brace-delimited, comma-separated float32 list:
// "{ 0.3125, 0.0625 }". An empty list renders as "{  }".
func List(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Float32(v)
	}
	return "{ " + strings.Join(parts, listSeparator) + " }"
}

// Write prints the kernel in the four-line layout:
//
//	Radius = 2.5
//	Center Weight = 0.375
//	Weights = { 0.3125 }
//	Offsets = { 1.2 }
//
// Radius is printed at full precision; every other value is coerced to
// float32 first.
func Write(w io.Writer, k *filter.Kernel) error {
	lines := []struct {
		label string
		value string
	}{
		{"Radius", Float64(k.SampleRadius())},
		{"Center Weight", Float32(k.Center)},
		{"Weights", List(k.Weights())},
		{"Offsets", List(k.Offsets())},
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s = %s\n", line.label, line.value); err != nil {
			return fmt.Errorf("failed to write %s: %w", strings.ToLower(line.label), err)
		}
	}

	return nil
}
