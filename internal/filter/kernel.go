// Package filter designs bilinear-tap Gaussian blur kernels.
//
// A Gaussian is approximated by a normalized binomial distribution. The
// outer weights are then folded pairwise into bilinear taps: one texture
// fetch at a fractional offset whose hardware linear interpolation
// reproduces two adjacent discrete samples. A separable pass of radius 2h
// therefore needs 2h+1 fetches instead of 4h+1.
package filter

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-blur-kernel/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

var (
	// ErrNegativeHalfRadius is returned when the half-radius is below zero.
	ErrNegativeHalfRadius = errors.New("half-radius must not be negative")

	// ErrHalfRadiusTooLarge is returned when the outer weights would underflow.
	ErrHalfRadiusTooLarge = errors.New("half-radius too large")
)

// KernelParams holds parameters for kernel design.
type KernelParams struct {
	// HalfRadius is half of the reduced kernel's reach in samples.
	// The raw binomial kernel has radius 2*HalfRadius on each side of center.
	HalfRadius int
}

// Validate checks if kernel parameters are valid.
func (kp *KernelParams) Validate() error {
	if kp.HalfRadius < minHalfRadius {
		return fmt.Errorf("%w: %d", ErrNegativeHalfRadius, kp.HalfRadius)
	}

	if kp.HalfRadius > maxHalfRadius {
		return fmt.Errorf("%w: %d (maximum %d)", ErrHalfRadiusTooLarge, kp.HalfRadius, maxHalfRadius)
	}

	return nil
}

// Radius returns the half-width of the raw discrete kernel.
func (kp *KernelParams) Radius() int {
	return radiusMultiplier * kp.HalfRadius
}

// Tap is a single bilinear fetch standing in for two adjacent discrete samples.
type Tap struct {
	// Weight is the combined weight of both source samples.
	Weight float64

	// Offset is the fractional sample position, measured from center, at
	// which linear interpolation splits Weight back into the two samples.
	Offset float64
}

// Kernel is a bilinear-tap Gaussian blur kernel for one side of a
// separable pass. The mirrored side uses the same taps at negated offsets.
type Kernel struct {
	HalfRadius int

	// Center is the weight of the fetch at offset zero.
	Center float64

	// Taps are ordered from the center outwards.
	Taps []Tap
}

// GaussianCoefficients returns the right half of the normalized binomial
// kernel, center first.
//
// The binomial row of order 2*radius is built with exact integers, then
// each element is divided by the row sum 2^(2*radius). The result has
// radius+1 entries: coeffs[0] is the center weight and coeffs[radius] the
// outermost one. The full kernel sums to one:
//
//	coeffs[0] + 2*sum(coeffs[1:]) == 1
func GaussianCoefficients(halfRadius int) ([]float64, error) {
	params := KernelParams{HalfRadius: halfRadius}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	radius := params.Radius()
	normalized := mathutil.NormalizeRow(mathutil.BinomialRow(radiusMultiplier * radius))

	coeffs := make([]float64, radius+1)
	for k := range coeffs {
		coeffs[k] = normalized[radius-k]
	}

	return coeffs, nil
}

// BilinearTaps folds adjacent outer coefficient pairs into bilinear taps.
//
// For every odd index i with i+1 < len(coeffs), the pair (coeffs[i],
// coeffs[i+1]) becomes one tap:
//
//	Weight = coeffs[i] + coeffs[i+1]
//	Offset = i + coeffs[i+1]/Weight
//
// Sampling at Offset with linear filtering weights coeffs[i] and coeffs[i+1]
// in the original proportion, so the tap reproduces both samples. The center
// coefficient is not folded.
func BilinearTaps(coeffs []float64) []Tap {
	if len(coeffs) < samplesPerTap+1 {
		return []Tap{}
	}

	taps := make([]Tap, 0, (len(coeffs)-1)/samplesPerTap)
	for i := 1; i+1 < len(coeffs); i += samplesPerTap {
		a := coeffs[i]
		b := coeffs[i+1]
		c := a + b
		taps = append(taps, Tap{
			Weight: c,
			Offset: float64(i) + b/c,
		})
	}

	return taps
}

// Generate designs the bilinear-tap kernel for the given half-radius.
//
// A half-radius of zero is valid and yields the identity kernel: center
// weight 1 and no taps.
func Generate(halfRadius int) (*Kernel, error) {
	coeffs, err := GaussianCoefficients(halfRadius)
	if err != nil {
		return nil, fmt.Errorf("failed to design kernel: %w", err)
	}

	return &Kernel{
		HalfRadius: halfRadius,
		Center:     coeffs[0],
		Taps:       BilinearTaps(coeffs),
	}, nil
}

// Radius returns the half-width of the raw discrete kernel (2*HalfRadius).
func (k *Kernel) Radius() int {
	return radiusMultiplier * k.HalfRadius
}

// SampleRadius returns the kernel reach in texels, including the half texel
// covered by the outermost bilinear fetch.
func (k *Kernel) SampleRadius() float64 {
	return float64(k.Radius()) + texelCenterOffset
}

// Weights returns the tap weights, index-aligned with Offsets.
func (k *Kernel) Weights() []float64 {
	weights := make([]float64, len(k.Taps))
	for i, tap := range k.Taps {
		weights[i] = tap.Weight
	}
	return weights
}

// Offsets returns the tap offsets, index-aligned with Weights.
func (k *Kernel) Offsets() []float64 {
	offsets := make([]float64, len(k.Taps))
	for i, tap := range k.Taps {
		offsets[i] = tap.Offset
	}
	return offsets
}

// Gain returns the DC gain of the full symmetric kernel:
// Center + 2*sum(Weights). It is 1 up to rounding.
func (k *Kernel) Gain() float64 {
	if len(k.Taps) == 0 {
		return k.Center
	}
	return k.Center + mirroredSides*f64.Sum(k.Weights())
}

// Fetches returns the number of texture fetches one pass performs.
func (k *Kernel) Fetches() int {
	return 1 + mirroredSides*len(k.Taps)
}

// RawSamples returns the number of fetches the unreduced discrete kernel
// would need.
func (k *Kernel) RawSamples() int {
	return mirroredSides*k.Radius() + 1
}

// Expand reconstructs the full discrete kernel of length 2*Radius()+1 that
// the bilinear taps sample. Each tap splits its weight between the two
// texels around its offset using linear interpolation factors, and is
// mirrored around the center.
func (k *Kernel) Expand() []float64 {
	radius := k.Radius()
	half := make([]float64, radius+1)
	half[0] = k.Center

	for _, tap := range k.Taps {
		i := int(tap.Offset)
		frac := tap.Offset - float64(i)
		half[i] += tap.Weight * (1 - frac)
		half[i+1] += tap.Weight * frac
	}

	full := make([]float64, mirroredSides*radius+1)
	for j, v := range half {
		full[radius+j] = v
		full[radius-j] = v
	}

	return full
}
