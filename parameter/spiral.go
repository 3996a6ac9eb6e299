package parameter

// Square Count
const (
	// MinSquares and MaxSquares bound the interactive square count
	// Geometry itself is valid for any positive count
	MinSquares     = 1
	MaxSquares     = 15
	DefaultSquares = 10

	// MaxMagnitudes is the longest sequence whose terms all fit in int64, F(92)
	MaxMagnitudes = 92
)

// Viewport Fitting
const (
	// MarginFactor is the fraction of each viewport dimension the spiral may occupy
	MarginFactor = 0.90

	// RotateGainThreshold is the relative scale gain a rotated viewport would need to be preferred
	RotateGainThreshold = 0.05

	// DefaultViewportWidth and DefaultViewportHeight are used by non-interactive geometry output
	DefaultViewportWidth  = 800.0
	DefaultViewportHeight = 600.0
)

// Arc Chain
const (
	// QuarterTurn is the sweep of each arc and the heading change between arcs, degrees
	QuarterTurn = 90.0
)
