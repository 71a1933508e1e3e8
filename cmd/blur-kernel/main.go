// Command blur-kernel prints bilinear-tap Gaussian blur constants.
//
// Usage:
//
//	blur-kernel 4
//
// Output:
//
//	Radius = 8.5
//	Center Weight = 0.19638062
//	Weights = { ... }
//	Offsets = { ... }
//
// Weights and offsets are rounded to float32, matching shader constants.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	blurkernel "github.com/tphakala/go-blur-kernel"
)

const requiredArgs = 1

var errUsage = errors.New("usage error")

func main() {
	flag.Usage = usage
	flag.Parse()

	if err := run(flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <half_radius>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Prints the center weight, bilinear tap weights and offsets of a\n")
	fmt.Fprintf(os.Stderr, "Gaussian blur with radius 2*half_radius.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  %s 1   # 1 tap, radius 2.5\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s 4   # 4 taps, radius 8.5\n", os.Args[0])
}

func run(args []string, stdout io.Writer) error {
	halfRadius, err := parseHalfRadius(args)
	if err != nil {
		return err
	}

	kernel, err := blurkernel.Generate(halfRadius)
	if err != nil {
		return err
	}

	return blurkernel.Write(stdout, kernel)
}

// parseHalfRadius validates the single positional argument. Surrounding
// whitespace is ignored; digit separators are not accepted.
func parseHalfRadius(args []string) (int, error) {
	if len(args) != requiredArgs {
		return 0, fmt.Errorf("%w: expected 1 argument, got %d", errUsage, len(args))
	}

	halfRadius, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: half_radius must be an integer: %w", errUsage, err)
	}

	if halfRadius < 0 {
		return 0, fmt.Errorf("%w: half_radius must not be negative: %d", errUsage, halfRadius)
	}

	return halfRadius, nil
}
