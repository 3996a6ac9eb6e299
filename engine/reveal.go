package engine

import (
	"math"

	"github.com/lixenwraith/golden-spiral/parameter"
)

// Reveal is the visible prefix of squares and arcs at one progress value
type Reveal struct {
	Phase        int     // 1 while squares appear, 2 while arcs draw
	Squares      int     // Squares drawn, prefix of the sequence
	ArcsFull     int     // Arcs drawn with their full sweep
	PartialSweep float64 // Degrees of arc ArcsFull drawn so far, 0 when none
}

// ComputeReveal splits progress into the two reveal phases
// Phase 1 (progress <= 0.5) shows floor(n*2*progress) squares
// Phase 2 shows all squares and n*(progress-0.5)*2 arcs, the fractional arc partially swept
func ComputeReveal(n int, progress float64) Reveal {
	if n <= 0 {
		return Reveal{Phase: 1}
	}
	progress = clamp(progress, 0, 1)

	if progress <= parameter.PhaseSplit {
		shown := int(math.Floor(float64(n) * 2 * progress))
		return Reveal{Phase: 1, Squares: min(shown, n)}
	}

	coverage := float64(n) * (progress - parameter.PhaseSplit) * 2
	full := int(math.Floor(coverage))
	if full >= n {
		return Reveal{Phase: 2, Squares: n, ArcsFull: n}
	}
	return Reveal{
		Phase:        2,
		Squares:      n,
		ArcsFull:     full,
		PartialSweep: parameter.QuarterTurn * (coverage - float64(full)),
	}
}

// ArcsVisible counts arcs with any sweep drawn, including the partial one
func (r Reveal) ArcsVisible() int {
	if r.PartialSweep > 0 {
		return r.ArcsFull + 1
	}
	return r.ArcsFull
}
