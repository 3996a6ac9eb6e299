package vmath

// Box is an axis-aligned bounding box in the spiral plane
// Built from squares only; never mutated directly by callers
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// SquareBox returns the box covered by a square anchored at its bottom-left corner
func SquareBox(anchor Vec2, size float64) Box {
	return Box{
		MinX: anchor.X,
		MinY: anchor.Y,
		MaxX: anchor.X + size,
		MaxY: anchor.Y + size,
	}
}

func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box
func (b Box) Center() Vec2 {
	return Vec2{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Extend returns the union of b and the square at anchor with the given side
func (b Box) Extend(anchor Vec2, size float64) Box {
	return b.Union(SquareBox(anchor, size))
}

// Union returns the smallest box containing both b and o
func (b Box) Union(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}
