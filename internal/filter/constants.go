package filter

const (
	// Half-radius limits. At maxHalfRadius the outermost tap weight is the
	// smallest subnormal float64 (5e-324). One step further both outermost
	// coefficients round to zero and the tap offset becomes 0/0.
	minHalfRadius = 0
	maxHalfRadius = 271

	// radius = radiusMultiplier * halfRadius
	radiusMultiplier = 2

	// Each bilinear tap folds two adjacent discrete samples
	samplesPerTap = 2

	// Sample position between the two kernel texels at a half-texel offset
	texelCenterOffset = 0.5

	// A symmetric kernel fetches every off-center tap on both sides
	mirroredSides = 2

	// Frequency response
	defaultResponsePoints = 512
	nyquistDivisor        = 2

	// Magnitude to dB
	minMagnitude = 1e-10 // Avoid log(0)
	dbMultiplier = 20.0  // 20*log10 for magnitude
)
