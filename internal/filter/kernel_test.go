package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-blur-kernel/internal/mathutil"
	"github.com/tphakala/go-blur-kernel/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

const (
	// Test tolerances
	defaultTolerance       = 1e-12
	normalizationTolerance = 1e-6

	// Half-radius sweep used by the property tests
	maxTestHalfRadius = 10
)

// TestKernelParams_Validate tests parameter validation.
func TestKernelParams_Validate(t *testing.T) {
	tests := []struct {
		name       string
		halfRadius int
		wantErr    error
	}{
		{"zero", 0, nil},
		{"one", 1, nil},
		{"maximum", maxHalfRadius, nil},
		{"subnormal_weights", 257, nil},
		{"last_finite", 271, nil},
		{"negative", -1, ErrNegativeHalfRadius},
		{"too_large", 272, ErrHalfRadiusTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := KernelParams{HalfRadius: tt.halfRadius}
			err := params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestGaussianCoefficients_HalfRadius1 checks the exact dyadic weights of row 4.
func TestGaussianCoefficients_HalfRadius1(t *testing.T) {
	coeffs, err := GaussianCoefficients(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.375, 0.25, 0.0625}, coeffs)
}

// TestGaussianCoefficients_MatchesBinomialRow verifies coefficients are the
// reversed right half of the normalized row.
func TestGaussianCoefficients_MatchesBinomialRow(t *testing.T) {
	for h := 0; h <= maxTestHalfRadius; h++ {
		coeffs, err := GaussianCoefficients(h)
		require.NoError(t, err)

		radius := radiusMultiplier * h
		row := mathutil.NormalizeRow(mathutil.BinomialRow(radiusMultiplier * radius))
		require.Len(t, coeffs, radius+1)
		for k, c := range coeffs {
			assert.Equal(t, row[radius-k], c, "h=%d k=%d", h, k)
		}
		testutil.AssertNonIncreasing(t, coeffs)
	}
}

// TestGaussianCoefficients_Normalization verifies c[0] + 2*sum(c[1:]) == 1.
func TestGaussianCoefficients_Normalization(t *testing.T) {
	for h := 0; h <= maxTestHalfRadius; h++ {
		coeffs, err := GaussianCoefficients(h)
		require.NoError(t, err)

		total := coeffs[0] + mirroredSides*floats.Sum(coeffs[1:])
		assert.InDelta(t, 1.0, total, normalizationTolerance, "h=%d", h)
	}
}

// TestBilinearTaps_Short verifies that fewer than three coefficients yield no taps.
func TestBilinearTaps_Short(t *testing.T) {
	assert.Empty(t, BilinearTaps(nil))
	assert.Empty(t, BilinearTaps([]float64{1}))
	assert.Empty(t, BilinearTaps([]float64{0.5, 0.25}))
}

// TestBilinearTaps_Pairing verifies weights and offsets for a hand-made half kernel.
func TestBilinearTaps_Pairing(t *testing.T) {
	taps := BilinearTaps([]float64{0.4, 0.2, 0.1, 0.3, 0.1})
	require.Len(t, taps, 2)

	assert.InDelta(t, 0.3, taps[0].Weight, defaultTolerance)
	assert.InDelta(t, 1.0+0.1/0.3, taps[0].Offset, defaultTolerance)
	assert.InDelta(t, 0.4, taps[1].Weight, defaultTolerance)
	assert.InDelta(t, 3.25, taps[1].Offset, defaultTolerance)
}

// TestGenerate_HalfRadius1 checks the worked example: row [1,4,6,4,1].
func TestGenerate_HalfRadius1(t *testing.T) {
	k, err := Generate(1)
	require.NoError(t, err)

	assert.Equal(t, 1, k.HalfRadius)
	assert.Equal(t, 2, k.Radius())
	assert.InDelta(t, 2.5, k.SampleRadius(), defaultTolerance)
	assert.Equal(t, 0.375, k.Center)
	require.Len(t, k.Taps, 1)
	assert.Equal(t, 0.3125, k.Taps[0].Weight)
	assert.InDelta(t, 1.2, k.Taps[0].Offset, defaultTolerance)
	assert.Equal(t, []float64{0.3125}, k.Weights())
}

// TestGenerate_HalfRadius2 checks row 8: [1,8,28,56,70,...]/256.
func TestGenerate_HalfRadius2(t *testing.T) {
	k, err := Generate(2)
	require.NoError(t, err)

	assert.Equal(t, 70.0/256, k.Center)
	require.Len(t, k.Taps, 2)
	assert.InDelta(t, 84.0/256, k.Taps[0].Weight, defaultTolerance)
	assert.InDelta(t, 1+28.0/84, k.Taps[0].Offset, defaultTolerance)
	assert.InDelta(t, 9.0/256, k.Taps[1].Weight, defaultTolerance)
	assert.InDelta(t, 3+1.0/9, k.Taps[1].Offset, defaultTolerance)
}

// TestGenerate_Identity verifies the degenerate zero half-radius.
func TestGenerate_Identity(t *testing.T) {
	k, err := Generate(0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, k.Center)
	assert.Empty(t, k.Taps)
	assert.Empty(t, k.Weights())
	assert.Empty(t, k.Offsets())
	assert.Equal(t, 1.0, k.Gain())
	assert.Equal(t, 1, k.Fetches())
	assert.Equal(t, []float64{1}, k.Expand())
}

// TestGenerate_InvalidHalfRadius verifies wrapped validation errors.
func TestGenerate_InvalidHalfRadius(t *testing.T) {
	_, err := Generate(-2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeHalfRadius)
	assert.Contains(t, err.Error(), "failed to design kernel")

	_, err = Generate(maxHalfRadius + 1)
	assert.ErrorIs(t, err, ErrHalfRadiusTooLarge)
}

// TestGenerate_Properties sweeps half-radii and checks tap count, offset
// bounds, weight bounds and normalization.
func TestGenerate_Properties(t *testing.T) {
	for h := 1; h <= maxTestHalfRadius; h++ {
		k, err := Generate(h)
		require.NoError(t, err)

		weights := k.Weights()
		offsets := k.Offsets()
		assert.Len(t, k.Taps, h, "h=%d: one tap per odd index in [1, 2h-1]", h)
		require.Len(t, offsets, len(weights))

		for j, off := range offsets {
			i := float64(samplesPerTap*j + 1)
			assert.GreaterOrEqual(t, off, i, "h=%d tap %d", h, j)
			assert.Less(t, off, i+1, "h=%d tap %d", h, j)
		}

		testutil.AssertAllInOpenRange(t, weights, 0, 1)
		testutil.AssertInRange(t, k.Center, math.SmallestNonzeroFloat64, 1)
		testutil.AssertNoNaNOrInf(t, offsets)
		assert.InDelta(t, 1.0, k.Gain(), normalizationTolerance, "h=%d", h)
		assert.Equal(t, 2*h+1, k.Fetches())
		assert.Equal(t, 4*h+1, k.RawSamples())
	}
}

// TestGenerate_Deterministic verifies repeated calls are bit-identical.
func TestGenerate_Deterministic(t *testing.T) {
	for h := 0; h <= maxTestHalfRadius; h++ {
		a, err := Generate(h)
		require.NoError(t, err)
		b, err := Generate(h)
		require.NoError(t, err)
		assert.Equal(t, a, b, "h=%d", h)
	}
}

// TestGenerate_MaxHalfRadius verifies the largest accepted half-radius stays finite.
func TestGenerate_MaxHalfRadius(t *testing.T) {
	k, err := Generate(maxHalfRadius)
	require.NoError(t, err)

	require.Len(t, k.Taps, maxHalfRadius)
	testutil.AssertNoNaNOrInf(t, k.Offsets())
	testutil.AssertNoNaNOrInf(t, k.Weights())

	// Outermost pair: a rounds to the smallest subnormal, b to zero.
	last := k.Taps[len(k.Taps)-1]
	assert.Equal(t, math.SmallestNonzeroFloat64, last.Weight)
	assert.Equal(t, float64(2*maxHalfRadius-1), last.Offset)

	expanded := k.Expand()
	require.Len(t, expanded, k.RawSamples())
	testutil.AssertNoNaNOrInf(t, expanded)
}

// TestGenerate_SubnormalOuterTap verifies half-radii whose outer weights are
// subnormal still produce finite taps.
func TestGenerate_SubnormalOuterTap(t *testing.T) {
	k, err := Generate(257)
	require.NoError(t, err)

	last := k.Taps[len(k.Taps)-1]
	assert.InEpsilon(t, 3.57750156313111e-307, last.Weight, 1e-12)
	assert.InDelta(t, 513.0009718172984, last.Offset, 1e-9)
}

// TestMaxHalfRadius_LastFoldableRow verifies that one step past the limit the
// outermost coefficient pair rounds to zero, so the tap would be 0/0.
func TestMaxHalfRadius_LastFoldableRow(t *testing.T) {
	outerSum := func(h int) float64 {
		order := 2 * radiusMultiplier * h
		row := mathutil.NormalizeRow(mathutil.BinomialRow(order))
		return row[0] + row[1]
	}

	assert.Positive(t, outerSum(maxHalfRadius))
	assert.Zero(t, outerSum(maxHalfRadius+1))
}

// TestExpand_ReproducesBinomialRow verifies that the bilinear taps, spread
// back by linear interpolation, reproduce the discrete kernel.
func TestExpand_ReproducesBinomialRow(t *testing.T) {
	for h := 0; h <= maxTestHalfRadius; h++ {
		k, err := Generate(h)
		require.NoError(t, err)

		want := mathutil.NormalizeRow(mathutil.BinomialRow(2 * k.Radius()))
		got := k.Expand()

		require.Len(t, got, k.RawSamples())
		assert.True(t, floats.EqualApprox(want, got, defaultTolerance),
			"h=%d: expanded kernel differs from binomial row", h)
		testutil.AssertSymmetric(t, got, defaultTolerance)
		testutil.AssertCenterIsMax(t, got)
		testutil.AssertDCGain(t, got, 1.0, normalizationTolerance)
	}
}

// BenchmarkGenerate benchmarks kernel design for a typical bloom radius.
func BenchmarkGenerate(b *testing.B) {
	for b.Loop() {
		_, _ = Generate(8)
	}
}
