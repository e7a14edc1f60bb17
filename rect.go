package polyclean

import (
	"math"
)

// Rect is an axis-aligned rectangle. It serves as the extents of curves and
// polylines, and as the broad-phase test of intersection searches.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by two opposite corners,
// in any order.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// emptyRect is the identity for Union: it contains nothing and any union
// with it returns the other operand.
var emptyRect = Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}

// Abs returns r with its corners ordered so that width and height are not
// negative.
func (r Rect) Abs() Rect {
	return Rect{min(r.X0, r.X1), min(r.Y0, r.Y1), max(r.X0, r.X1), max(r.Y0, r.Y1)}
}

// IsEmpty reports whether r is the empty rectangle produced by the extents of
// a curve without vertices.
func (r Rect) IsEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point { return Point{r.X0, r.Y0} }

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point { return Point{r.X1, r.Y1} }

// Union returns the smallest rectangle enclosing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.X0, o.X0), min(r.Y0, o.Y0), max(r.X1, o.X1), max(r.Y1, o.Y1)}
}

// UnionPoint returns the smallest rectangle enclosing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return r.Union(Rect{pt.X, pt.Y, pt.X, pt.Y})
}

// Overlaps reports whether the rectangles share at least one point. Touching
// edges count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// Inflate grows r by dx on the left and right and by dy at the top and
// bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{r.X0 - dx, r.Y0 - dy, r.X1 + dx, r.Y1 + dy}
}
