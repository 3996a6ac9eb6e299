// Package placement lays out Fibonacci squares with the bounding-box walk:
// each new square is attached to one edge of the union box of all squares
// placed so far, cycling LEFT, DOWN, RIGHT, UP.
package placement

import "github.com/lixenwraith/golden-spiral/vmath"

// Direction is the edge of the current bounding box a square attaches to
type Direction uint8

const (
	Left Direction = iota
	Down
	Right
	Up
)

// DirectionCount is the length of the direction cycle
const DirectionCount = 4

var directionNames = [DirectionCount]string{"LEFT", "DOWN", "RIGHT", "UP"}

func (d Direction) String() string {
	if d >= DirectionCount {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// anchorFuncs maps a direction to the anchor corner of a square of the given size
var anchorFuncs = [DirectionCount]func(b vmath.Box, size float64) vmath.Vec2{
	Left:  func(b vmath.Box, size float64) vmath.Vec2 { return vmath.Vec2{X: b.MinX - size, Y: b.MinY} },
	Down:  func(b vmath.Box, size float64) vmath.Vec2 { return vmath.Vec2{X: b.MinX, Y: b.MinY - size} },
	Right: func(b vmath.Box, _ float64) vmath.Vec2 { return vmath.Vec2{X: b.MaxX, Y: b.MinY} },
	Up:    func(b vmath.Box, _ float64) vmath.Vec2 { return vmath.Vec2{X: b.MinX, Y: b.MaxY} },
}

// Anchor returns where a square of the given size attaches to box b
func (d Direction) Anchor(b vmath.Box, size float64) vmath.Vec2 {
	return anchorFuncs[d%DirectionCount](b, size)
}

// DirectionFor returns the walk direction used for square index i (i >= 2)
func DirectionFor(i int) Direction {
	return Direction((i - 2) % DirectionCount)
}

// Place returns the anchor corner of every square, index-aligned with sizes
// Square 0 sits at the origin and square 1 directly above it; the rest walk the box
func Place(sizes []float64) []vmath.Vec2 {
	if len(sizes) == 0 {
		return []vmath.Vec2{}
	}

	positions := make([]vmath.Vec2, 0, len(sizes))
	positions = append(positions, vmath.Vec2{})
	if len(sizes) == 1 {
		return positions
	}

	positions = append(positions, vmath.Vec2{X: 0, Y: sizes[0]})
	if len(sizes) == 2 {
		return positions
	}

	box := vmath.Box{MinX: 0, MinY: 0, MaxX: sizes[0], MaxY: sizes[0] + sizes[1]}
	for i := 2; i < len(sizes); i++ {
		pos := DirectionFor(i).Anchor(box, sizes[i])
		positions = append(positions, pos)
		box = box.Extend(pos, sizes[i])
	}
	return positions
}
