// Package arc builds the chain of quarter-circle arcs that trace the spiral.
//
// The chain follows the turtle idiom: at each step the turn center lies 90°
// to the left of the current heading, one radius away; the walker then moves
// to the point at heading+90° on that circle and turns 90° counter-clockwise.
// Arcs are produced in unscaled spiral space anchored at the placement origin.
package arc

import (
	"github.com/lixenwraith/golden-spiral/parameter"
	"github.com/lixenwraith/golden-spiral/vmath"
)

// Arc is one quarter-circle of the spiral
// Angles are degrees, 0 along +X, increasing counter-clockwise
type Arc struct {
	Center     vmath.Vec2
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// PointAt returns the point on the arc's circle at deg past StartAngle
func (a Arc) PointAt(deg float64) vmath.Vec2 {
	return a.Center.Polar(a.Radius, a.StartAngle+deg)
}

// Start returns the point at StartAngle
func (a Arc) Start() vmath.Vec2 {
	return a.PointAt(0)
}

// End returns the point at StartAngle+Sweep, where the next arc's walker starts
func (a Arc) End() vmath.Vec2 {
	return a.PointAt(a.Sweep)
}

// EndHeading returns the heading the next arc starts with
func (a Arc) EndHeading() float64 {
	return vmath.WrapDegrees(a.StartAngle + a.Sweep)
}

// Transform scales center and radius by s, then translates the center by offset
func (a Arc) Transform(s float64, offset vmath.Vec2) Arc {
	return Arc{
		Center:     a.Center.Scale(s).Add(offset),
		Radius:     a.Radius * s,
		StartAngle: a.StartAngle,
		Sweep:      a.Sweep,
	}
}

// Build returns one arc per radius starting at the origin heading along +X
func Build(radii []float64) []Arc {
	return BuildFrom(radii, vmath.Vec2{}, 0)
}

// BuildFrom returns one arc per radius starting at pos with the given heading
func BuildFrom(radii []float64, pos vmath.Vec2, heading float64) []Arc {
	arcs := make([]Arc, 0, len(radii))
	heading = vmath.WrapDegrees(heading)

	for _, r := range radii {
		center := pos.Polar(r, heading+parameter.QuarterTurn)
		a := Arc{
			Center:     center,
			Radius:     r,
			StartAngle: heading,
			Sweep:      parameter.QuarterTurn,
		}
		arcs = append(arcs, a)

		pos = a.End()
		heading = a.EndHeading()
	}
	return arcs
}
