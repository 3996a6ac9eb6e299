package vmath

import "math"

// Vec2 is a float64 point/vector in the spiral plane, Y increasing upward
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Polar returns the point at distance r from v along angle deg (degrees, CCW from +X)
func (v Vec2) Polar(r, deg float64) Vec2 {
	rad := Radians(deg)
	return Vec2{v.X + r*math.Cos(rad), v.Y + r*math.Sin(rad)}
}

// ApproxEqual compares component-wise within eps
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// WrapDegrees maps deg into [0, 360)
func WrapDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
