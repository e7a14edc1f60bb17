package polyclean

import (
	"math"
)

// Line represents a line segment. It is a [Curve].
type Line struct {
	P0 Point
	P1 Point
}

var _ Curve = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// IsDegenerate reports whether the line has zero length.
func (l Line) IsDegenerate() bool {
	return l.P0 == l.P1
}

func (l Line) Eval(t float64) Point {
	switch t {
	case 0:
		return l.P0
	case 1:
		return l.P1
	default:
		return l.P0.Lerp(l.P1, t)
	}
}

// Tangent returns the direction of the line. It doesn't depend on t, and it
// is the zero vector for degenerate lines.
func (l Line) Tangent(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

// Nearest implements Curve. The projection is clamped to the segment unless
// extend is true. A degenerate line behaves like a point.
func (l Line) Nearest(pt Point, extend bool) Nearest {
	d := l.P1.Sub(l.P0)
	dSquared := d.Dot(d)
	if dSquared == 0 {
		return Nearest{Point: l.P0, Param: 0, DistSq: pt.DistanceSquared(l.P0)}
	}
	dotp := d.Dot(pt.Sub(l.P0))
	if !extend {
		if dotp <= 0.0 {
			return Nearest{Point: l.P0, Param: 0, DistSq: pt.DistanceSquared(l.P0)}
		} else if dotp >= dSquared {
			return Nearest{Point: l.P1, Param: 1, DistSq: pt.DistanceSquared(l.P1)}
		}
	}
	t := dotp / dSquared
	p := l.Eval(t)
	return Nearest{Point: p, Param: t, DistSq: pt.DistanceSquared(p)}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

// Polyline returns an open two-vertex polyline tracing the line.
func (l Line) Polyline() Polyline {
	return NewPolyline(l.P0, l.P1)
}

// IntersectLine computes the intersections of two line segments. Parallel
// segments intersect only if they are collinear and overlap, in which case
// the ends of the overlap are reported.
func (l Line) IntersectLine(o Line) ([2]SegmentIntersection, int) {
	const epsilon = 1e-9
	da := l.P1.Sub(l.P0)
	db := o.P1.Sub(o.P0)
	det := da.Cross(db)
	scale := math.Sqrt(da.Hypot2() * db.Hypot2())
	if math.Abs(det) <= epsilon*scale {
		return l.intersectCollinear(o)
	}
	w := o.P0.Sub(l.P0)
	// t = position on l, u = position on o
	t := w.Cross(db) / det
	u := w.Cross(da) / det
	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return [2]SegmentIntersection{}, 0
	}
	t = clamp01(t)
	u = clamp01(u)
	return [2]SegmentIntersection{{Point: l.Eval(t), T0: t, T1: u}}, 1
}

func (l Line) intersectCollinear(o Line) ([2]SegmentIntersection, int) {
	da := l.P1.Sub(l.P0)
	lenSq := da.Hypot2()
	if lenSq == 0 {
		if o.IsDegenerate() {
			if l.P0.Near(o.P0) {
				return [2]SegmentIntersection{{Point: l.P0}}, 1
			}
			return [2]SegmentIntersection{}, 0
		}
		out, n := o.intersectCollinear(l)
		for i := range out[:n] {
			out[i].T0, out[i].T1 = out[i].T1, out[i].T0
		}
		return out, n
	}
	// Reject parallel lines that aren't collinear.
	if off := math.Abs(da.Cross(o.P0.Sub(l.P0))) / math.Sqrt(lenSq); off > tolerance(l.P0, o.P0) {
		return [2]SegmentIntersection{}, 0
	}
	u0 := da.Dot(o.P0.Sub(l.P0)) / lenSq
	u1 := da.Dot(o.P1.Sub(l.P0)) / lenSq
	lo := max(0, min(u0, u1))
	hi := min(1, max(u0, u1))
	if lo > hi+Epsilon {
		return [2]SegmentIntersection{}, 0
	}
	var out [2]SegmentIntersection
	n := 0
	for _, t := range [2]float64{lo, hi} {
		t = clamp01(t)
		p := l.Eval(t)
		if n == 1 && p.Near(out[0].Point) {
			continue
		}
		out[n] = SegmentIntersection{Point: p, T0: t, T1: o.Nearest(p, false).Param}
		n++
	}
	return out, n
}

func clamp01(t float64) float64 {
	return min(1, max(0, t))
}
