package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FilterResponse holds the frequency response of a kernel.
type FilterResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse calculates the frequency response of a FIR kernel.
//
// The kernel is zero-padded to an FFT size that is the smallest multiple of
// 2*numPoints holding every coefficient, and its real FFT evaluated with
// gonum. Bins are decimated back to numPoints so point k lies exactly at
// k/(2*numPoints) and the sampled DTFT never wraps in time.
//
// Parameters:
//
//	coeffs: Kernel coefficients, e.g. from [Kernel.Expand]
//	numPoints: Number of frequency points to evaluate (default: 512)
//
// Returns:
//
//	Frequency response data from DC up to (not including) Nyquist
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	binsNeeded := nyquistDivisor * numPoints
	stride := max((len(coeffs)+binsNeeded-1)/binsNeeded, 1)
	fftSize := stride * binsNeeded

	padded := make([]float64, fftSize)
	copy(padded, coeffs)

	fft := fourier.NewFFT(fftSize)
	spectrum := fft.Coefficients(nil, padded)

	for k := range numPoints {
		bin := k * stride
		response.Frequencies[k] = fft.Freq(bin)
		response.Magnitude[k] = cmplx.Abs(spectrum[bin])
		response.Phase[k] = cmplx.Phase(spectrum[bin])
	}

	return response
}

// MagnitudeAt returns the linear magnitude at the bin nearest to freq
// (normalized, 0 to 0.5).
func (r FilterResponse) MagnitudeAt(freq float64) float64 {
	if len(r.Frequencies) == 0 {
		return 0
	}

	best := 0
	for i, f := range r.Frequencies {
		if math.Abs(f-freq) < math.Abs(r.Frequencies[best]-freq) {
			best = i
		}
	}
	return r.Magnitude[best]
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
