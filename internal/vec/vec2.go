package vec

import "math"

// Vec2 is a 2D float32 vector used for positions, velocities and extents.
type Vec2 struct {
	X float32
	Y float32
}

var Zero = Vec2{}

func New(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2            { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2            { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2       { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) IsZero() bool               { return v.X == 0 && v.Y == 0 }
func (v Vec2) Length() float32            { return float32(math.Hypot(float64(v.X), float64(v.Y))) }
func (v Vec2) ManhattanTo(o Vec2) float32 { return abs(v.X-o.X) + abs(v.Y-o.Y) }

// NormalizeOrZero returns the unit vector in v's direction, or the zero
// vector when v has no usable length.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || math.IsInf(float64(l), 0) || math.IsNaN(float64(l)) {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
