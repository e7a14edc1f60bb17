package polyclean

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane, such as the difference of two points
// or the tangent of a segment.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the cross product of v and o. It is
// positive if o lies counter-clockwise of v.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns the direction of v in radians, measured counter-clockwise
// from the positive x axis. This is atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleTo returns the unsigned angle in radians, in [0, π], between v and o.
// It is 0 if either vector has zero length.
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Abs(math.Atan2(v.Cross(o), v.Dot(o)))
}

// Perp returns v rotated by +π/2, the left-hand normal for a y-up frame.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }
