// Package viewport maps placed squares into a target viewport: one uniform
// scale factor chosen by the more restrictive dimension, then a translation
// that centers the scaled geometry on the origin.
package viewport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/golden-spiral/parameter"
	"github.com/lixenwraith/golden-spiral/vmath"
)

// ErrInvalidArgument is returned for mismatched, empty or degenerate geometry
var ErrInvalidArgument = errors.New("invalid argument")

// Viewport is the target drawing area in the same units as the output
type Viewport struct {
	Width, Height float64
}

// Swapped returns the viewport with width and height exchanged
func (v Viewport) Swapped() Viewport {
	return Viewport{Width: v.Height, Height: v.Width}
}

// Result is the fitted geometry; Positions and Sizes stay index-aligned
type Result struct {
	Positions  []vmath.Vec2
	Sizes      []float64
	Scale      float64
	Offset     vmath.Vec2 // Added after scaling
	Rotated    bool       // Always false, rotation is not applied to stored geometry
	Diagnostic string
}

// Apply maps a point from unscaled spiral space into the fitted space
func (r Result) Apply(p vmath.Vec2) vmath.Vec2 {
	return p.Scale(r.Scale).Add(r.Offset)
}

// Bounds returns the bounding box of positions/sizes
func Bounds(positions []vmath.Vec2, sizes []float64) (vmath.Box, error) {
	if len(positions) == 0 || len(sizes) == 0 {
		return vmath.Box{}, fmt.Errorf("bounding box of empty geometry: %w", ErrInvalidArgument)
	}
	if len(positions) != len(sizes) {
		return vmath.Box{}, fmt.Errorf("bounding box of %d positions and %d sizes: %w",
			len(positions), len(sizes), ErrInvalidArgument)
	}

	box := vmath.SquareBox(positions[0], sizes[0])
	for i := 1; i < len(positions); i++ {
		box = box.Extend(positions[i], sizes[i])
	}
	return box, nil
}

// Scale returns the factor that fits box into vp with the margin applied
// The more restrictive dimension governs so neither dimension overflows
func Scale(box vmath.Box, vp Viewport) float64 {
	scaleX := vp.Width * parameter.MarginFactor / box.Width()
	scaleY := vp.Height * parameter.MarginFactor / box.Height()
	return min(scaleX, scaleY)
}

// RotationGain returns the relative scale improvement a swapped viewport would give
// Reported in the diagnostic; gains above parameter.RotateGainThreshold are flagged
func RotationGain(box vmath.Box, vp Viewport) float64 {
	base := Scale(box, vp)
	return Scale(box, vp.Swapped())/base - 1
}

// ShouldRotate reports whether the geometry should be rotated before scaling
// Rotating individual anchors breaks square adjacency; rotation belongs to the
// whole drawing pass, so this stays false until the renderer supports it
func ShouldRotate(box vmath.Box, vp Viewport) bool {
	return false
}

// Fit scales and centers the geometry so its bounding box is centered on the origin
func Fit(positions []vmath.Vec2, sizes []float64, vp Viewport) (Result, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return Result{}, fmt.Errorf("viewport %gx%g: %w", vp.Width, vp.Height, ErrInvalidArgument)
	}

	raw, err := Bounds(positions, sizes)
	if err != nil {
		return Result{}, err
	}
	if raw.Width() <= 0 || raw.Height() <= 0 {
		return Result{}, fmt.Errorf("degenerate bounding box %gx%g: %w", raw.Width(), raw.Height(), ErrInvalidArgument)
	}

	rotated := ShouldRotate(raw, vp)
	scale := Scale(raw, vp)

	scaledPos := make([]vmath.Vec2, len(positions))
	scaledSizes := make([]float64, len(sizes))
	for i := range positions {
		scaledPos[i] = positions[i].Scale(scale)
		scaledSizes[i] = sizes[i] * scale
	}

	scaledBox, err := Bounds(scaledPos, scaledSizes)
	if err != nil {
		return Result{}, err
	}

	offset := vmath.Vec2{
		X: -scaledBox.Width()/2 - scaledBox.MinX,
		Y: -scaledBox.Height()/2 - scaledBox.MinY,
	}
	for i := range scaledPos {
		scaledPos[i] = scaledPos[i].Add(offset)
	}

	return Result{
		Positions:  scaledPos,
		Sizes:      scaledSizes,
		Scale:      scale,
		Offset:     offset,
		Rotated:    rotated,
		Diagnostic: describe(len(sizes), vp, raw, scaledBox, rotated, scale),
	}, nil
}

func describe(n int, vp Viewport, raw, scaled vmath.Box, rotated bool, scale float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "squares=%d", n)
	fmt.Fprintf(&sb, " viewport=%.1fx%.1f", vp.Width, vp.Height)
	fmt.Fprintf(&sb, " bbox=%.1fx%.1f", raw.Width(), raw.Height())
	fmt.Fprintf(&sb, " scaled=%.1fx%.1f", scaled.Width(), scaled.Height())
	fmt.Fprintf(&sb, " rotated=%t", rotated)
	if gain := RotationGain(raw, vp); gain > parameter.RotateGainThreshold {
		fmt.Fprintf(&sb, " rotate_gain=%.1f%%", gain*100)
	}
	fmt.Fprintf(&sb, " scale=%.4f", scale)
	return sb.String()
}
