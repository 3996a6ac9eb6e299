// Package sequence generates Fibonacci magnitudes and analyzes how their
// consecutive ratios approach the golden ratio.
package sequence

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/golden-spiral/parameter"
)

// ErrInvalidArgument is returned for a square count outside 1..parameter.MaxMagnitudes
var ErrInvalidArgument = errors.New("invalid argument")

// Generate returns the first n Fibonacci magnitudes starting 1, 1, 2, ...
func Generate(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("square count %d must be positive: %w", n, ErrInvalidArgument)
	}
	if n > parameter.MaxMagnitudes {
		return nil, fmt.Errorf("square count %d exceeds %d, magnitudes overflow: %w", n, parameter.MaxMagnitudes, ErrInvalidArgument)
	}

	seq := make([]int, n)
	seq[0] = 1
	if n == 1 {
		return seq, nil
	}
	seq[1] = 1
	for i := 2; i < n; i++ {
		seq[i] = seq[i-1] + seq[i-2]
	}
	return seq, nil
}

// Floats converts magnitudes to float64 side lengths for geometry
func Floats(seq []int) []float64 {
	out := make([]float64, len(seq))
	for i, v := range seq {
		out[i] = float64(v)
	}
	return out
}
