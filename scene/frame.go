// Package scene composes the spiral geometry into the frame a renderer draws:
// fitted squares with their labels and color-cycle indices, arcs mapped through
// the same scale and offset, and the prefix revealed at the current progress.
package scene

import (
	"strconv"

	"github.com/lixenwraith/golden-spiral/arc"
	"github.com/lixenwraith/golden-spiral/engine"
	"github.com/lixenwraith/golden-spiral/placement"
	"github.com/lixenwraith/golden-spiral/sequence"
	"github.com/lixenwraith/golden-spiral/viewport"
	"github.com/lixenwraith/golden-spiral/vmath"
)

// Square is one placed, fitted square
type Square struct {
	Index      int
	Magnitude  int
	Position   vmath.Vec2 // Bottom-left anchor in fitted space, Y up
	Size       float64
	ColorIndex int
	Label      string
}

// Box returns the square's extent in fitted space
func (s Square) Box() vmath.Box {
	return vmath.SquareBox(s.Position, s.Size)
}

// Layout is the static geometry for one (count, viewport) pair
type Layout struct {
	Count      int
	Viewport   viewport.Viewport
	Magnitudes []int
	Squares    []Square
	Arcs       []arc.Arc // Fitted space
	Scale      float64
	Offset     vmath.Vec2
	Closest    int // Ratio index nearest Phi, -1 when n < 2
	Diagnostic string
}

// Build generates, places, fits and chains the geometry for n squares
func Build(n int, vp viewport.Viewport) (Layout, error) {
	mags, err := sequence.Generate(n)
	if err != nil {
		return Layout{}, err
	}
	sizes := sequence.Floats(mags)

	fit, err := viewport.Fit(placement.Place(sizes), sizes, vp)
	if err != nil {
		return Layout{}, err
	}

	squares := make([]Square, n)
	for i := range squares {
		squares[i] = Square{
			Index:      i,
			Magnitude:  mags[i],
			Position:   fit.Positions[i],
			Size:       fit.Sizes[i],
			ColorIndex: i % PaletteSize,
			Label:      strconv.Itoa(mags[i]),
		}
	}

	raw := arc.Build(sizes)
	arcs := make([]arc.Arc, len(raw))
	for i, a := range raw {
		arcs[i] = a.Transform(fit.Scale, fit.Offset)
	}

	return Layout{
		Count:      n,
		Viewport:   vp,
		Magnitudes: mags,
		Squares:    squares,
		Arcs:       arcs,
		Scale:      fit.Scale,
		Offset:     fit.Offset,
		Closest:    sequence.ClosestIndex(mags),
		Diagnostic: fit.Diagnostic,
	}, nil
}

// Frame is a Layout truncated to what is revealed at one animation state
type Frame struct {
	Layout *Layout
	State  engine.AnimationState
	Reveal engine.Reveal
}

// Frame pairs the layout with st's reveal
func (l *Layout) Frame(st engine.AnimationState) Frame {
	return Frame{
		Layout: l,
		State:  st,
		Reveal: engine.ComputeReveal(l.Count, st.Progress),
	}
}

// Compose builds the layout for (n, vp) and frames it at st
func Compose(n int, vp viewport.Viewport, st engine.AnimationState) (Frame, error) {
	l, err := Build(n, vp)
	if err != nil {
		return Frame{}, err
	}
	return l.Frame(st), nil
}

// ToScreen maps a fitted-space point to screen space through the frame's layout
func (f Frame) ToScreen(p vmath.Vec2) vmath.Vec2 {
	return f.Layout.ToScreen(p)
}

// VisibleSquares returns the revealed prefix of squares
func (f Frame) VisibleSquares() []Square {
	return f.Layout.Squares[:min(f.Reveal.Squares, len(f.Layout.Squares))]
}

// VisibleArcs returns fully drawn arcs followed by the partially swept one, if any
func (f Frame) VisibleArcs() []arc.Arc {
	full := min(f.Reveal.ArcsFull, len(f.Layout.Arcs))
	out := make([]arc.Arc, 0, full+1)
	out = append(out, f.Layout.Arcs[:full]...)
	if f.Reveal.PartialSweep > 0 && full < len(f.Layout.Arcs) {
		partial := f.Layout.Arcs[full]
		partial.Sweep = f.Reveal.PartialSweep
		out = append(out, partial)
	}
	return out
}

// ToScreen maps a fitted-space point to screen space, Y down, origin top-left
// screenX = x + W/2, screenY = H/2 - y
func (l *Layout) ToScreen(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: p.X + l.Viewport.Width/2,
		Y: l.Viewport.Height/2 - p.Y,
	}
}
