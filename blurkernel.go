package blurkernel

import (
	"io"

	"github.com/tphakala/go-blur-kernel/internal/filter"
	"github.com/tphakala/go-blur-kernel/internal/format"
)

// Kernel is a bilinear-tap Gaussian blur kernel. See [Generate].
type Kernel = filter.Kernel

// Tap is a single bilinear fetch: a combined weight and a fractional offset.
type Tap = filter.Tap

// Errors returned by [Generate].
var (
	ErrNegativeHalfRadius = filter.ErrNegativeHalfRadius
	ErrHalfRadiusTooLarge = filter.ErrHalfRadiusTooLarge
)

// Generate designs the bilinear-tap kernel for halfRadius.
//
// The kernel approximates a Gaussian with binomial weights of radius
// 2*halfRadius and folds them into halfRadius bilinear taps plus a center
// weight. Zero yields the identity kernel; negative values return
// [ErrNegativeHalfRadius].
func Generate(halfRadius int) (*Kernel, error) {
	return filter.Generate(halfRadius)
}

// Coefficients returns the normalized discrete weights before bilinear
// folding, center first.
func Coefficients(halfRadius int) ([]float64, error) {
	return filter.GaussianCoefficients(halfRadius)
}

// Write prints the kernel as four lines of shader-ready constants with
// weights and offsets rounded to float32.
func Write(w io.Writer, k *Kernel) error {
	return format.Write(w, k)
}
