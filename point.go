package polyclean

import (
	"fmt"
	"math"
)

// Epsilon is the numeric tolerance used to decide whether two points
// coincide, whether a point lies on a curve, and whether two parameters are
// the same. It is applied relative to the magnitude of the coordinates
// involved, with a floor of 1, so that it behaves like an absolute tolerance
// near the origin and like a relative one far away from it.
const Epsilon = 1e-9

// Point is a position in a y-up plane, usually a drawing's world
// coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point { return Point{X: pt.X + v.X, Y: pt.Y + v.Y} }

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y} }

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{X: pt.X + (o.X-pt.X)*t, Y: pt.Y + (o.Y-pt.Y)*t}
}

func (pt Point) Midpoint(o Point) Point { return pt.Lerp(o, 0.5) }

// Distance returns the euclidean distance between pt and o.
func (pt Point) Distance(o Point) float64 { return math.Hypot(pt.X-o.X, pt.Y-o.Y) }

// DistanceSquared returns the squared distance between pt and o. Nearest
// point searches compare it to avoid the square root.
func (pt Point) DistanceSquared(o Point) float64 { return pt.Sub(o).Hypot2() }

// Near reports whether pt and o coincide within [Epsilon].
func (pt Point) Near(o Point) bool {
	return pt.Distance(o) <= tolerance(pt, o)
}

// IsInf reports whether either coordinate is infinite.
func (pt Point) IsInf() bool { return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) }

// IsNaN reports whether either coordinate is NaN.
func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }

// tolerance scales Epsilon by the largest coordinate magnitude among pts.
func tolerance(pts ...Point) float64 {
	m := 1.0
	for _, pt := range pts {
		m = max(m, math.Abs(pt.X), math.Abs(pt.Y))
	}
	return Epsilon * m
}
