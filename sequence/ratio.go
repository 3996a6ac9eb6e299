package sequence

import "math"

// Phi is the golden ratio
const Phi = 1.618033988749895

// RatioInfo describes one consecutive-magnitude ratio
type RatioInfo struct {
	Numerator   int
	Denominator int
	Ratio       float64
	Convergence float64 // |Ratio - Phi|
}

// Ratios returns seq[i+1]/seq[i] for each adjacent pair
func Ratios(seq []int) []float64 {
	if len(seq) < 2 {
		return []float64{}
	}
	out := make([]float64, len(seq)-1)
	for i := range out {
		out[i] = float64(seq[i+1]) / float64(seq[i])
	}
	return out
}

// Convergence returns the absolute distance of each ratio from Phi
func Convergence(ratios []float64) []float64 {
	out := make([]float64, len(ratios))
	for i, r := range ratios {
		out[i] = math.Abs(r - Phi)
	}
	return out
}

// Info returns the ratio between seq[i+1] and seq[i]
// ok is false when i does not address an adjacent pair
func Info(seq []int, i int) (info RatioInfo, ok bool) {
	if i < 0 || i >= len(seq)-1 {
		return RatioInfo{}, false
	}
	r := float64(seq[i+1]) / float64(seq[i])
	return RatioInfo{
		Numerator:   seq[i+1],
		Denominator: seq[i],
		Ratio:       r,
		Convergence: math.Abs(r - Phi),
	}, true
}

// ClosestIndex returns the ratio index nearest to Phi, first occurrence on ties
// Returns -1 when seq has fewer than two elements
func ClosestIndex(seq []int) int {
	conv := Convergence(Ratios(seq))
	if len(conv) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(conv); i++ {
		if conv[i] < conv[best] {
			best = i
		}
	}
	return best
}
