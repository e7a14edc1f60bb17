package polyclean

import (
	"math"
)

// Arc is a circular arc. It starts at StartAngle and sweeps by SweepAngle
// radians; a positive sweep runs counter-clockwise in a y-up frame.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Curve = Arc{}

// ArcFromBulge returns the arc that runs from p0 to p1 with the given bulge.
// The bulge is tan(sweep/4), so that a bulge of 1 is a semicircle and the
// sign of the bulge is the sign of the sweep.
//
// The second return value is false if the bulge is 0 or the points
// coincide, in which case no arc exists.
func ArcFromBulge(p0, p1 Point, bulge float64) (Arc, bool) {
	if bulge == 0 || p0 == p1 || math.IsInf(bulge, 0) || math.IsNaN(bulge) {
		return Arc{}, false
	}
	chord := p1.Sub(p0)
	c := chord.Hypot()
	// Signed distance from the chord's midpoint to the center, measured along
	// the chord's left normal.
	h := c * (1 - bulge*bulge) / (4 * bulge)
	center := p0.Midpoint(p1).Translate(chord.Mul(1 / c).Perp().Mul(h))
	return Arc{
		Center:     center,
		Radius:     center.Distance(p0),
		StartAngle: p0.Sub(center).Angle(),
		SweepAngle: 4 * math.Atan(bulge),
	}, true
}

// Bulge returns tan(SweepAngle/4).
func (a Arc) Bulge() float64 {
	return math.Tan(a.SweepAngle / 4)
}

// IsDegenerate reports whether the arc has no extent.
func (a Arc) IsDegenerate() bool {
	return a.Radius == 0 || a.SweepAngle == 0
}

func (a Arc) Eval(t float64) Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+t*a.SweepAngle)
}

// Tangent returns the derivative of the arc at t.
func (a Arc) Tangent(t float64) Vec2 {
	sin, cos := math.Sincos(a.StartAngle + t*a.SweepAngle)
	f := a.Radius * a.SweepAngle
	return Vec2{X: -sin * f, Y: cos * f}
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

// Length returns the arc length.
func (a Arc) Length() float64 {
	return math.Abs(a.Radius * a.SweepAngle)
}

func (a Arc) Subsegment(start, end float64) Arc {
	a.StartAngle += start * a.SweepAngle
	a.SweepAngle *= end - start
	return a
}

func (a Arc) Reverse() Arc {
	a.StartAngle += a.SweepAngle
	a.SweepAngle = -a.SweepAngle
	return a
}

// paramAtAngle maps an absolute angle to the arc's parameter space. The
// result is in [0, 1] if the angle lies on the arc; otherwise it is the
// parameter past the end, in (1, 2π/|sweep|).
func (a Arc) paramAtAngle(th float64) float64 {
	sweep := math.Abs(a.SweepAngle)
	if sweep == 0 {
		return 0
	}
	var d float64
	if a.SweepAngle > 0 {
		d = normAngle(th - a.StartAngle)
	} else {
		d = normAngle(a.StartAngle - th)
	}
	return d / sweep
}

// paramAtPoint returns the parameter of the point on the arc in the direction
// of pt from the center, and whether that direction lies on the arc (within
// a small angular tolerance).
func (a Arc) paramAtPoint(pt Point) (float64, bool) {
	sweep := math.Abs(a.SweepAngle)
	if sweep == 0 {
		return 0, false
	}
	t := a.paramAtAngle(pt.Sub(a.Center).Angle())
	tolT := tolerance(pt, a.Center) / (a.Radius * sweep)
	switch {
	case t <= 1:
		return t, true
	case t <= 1+tolT:
		return 1, true
	case (2*math.Pi/sweep)-t <= tolT:
		// Just before the start.
		return 0, true
	default:
		return t, false
	}
}

// Nearest implements Curve. Without extend, the angular projection is
// clamped to the arc's sweep; with extend, the full circle is considered.
func (a Arc) Nearest(pt Point, extend bool) Nearest {
	if a.Radius == 0 {
		return Nearest{Point: a.Center, DistSq: pt.DistanceSquared(a.Center)}
	}
	if pt == a.Center {
		// Every point is equally close; prefer the lowest parameter.
		p := a.Start()
		return Nearest{Point: p, Param: 0, DistSq: pt.DistanceSquared(p)}
	}
	t := a.paramAtAngle(pt.Sub(a.Center).Angle())
	if t <= 1 {
		p := a.Eval(t)
		return Nearest{Point: p, Param: t, DistSq: pt.DistanceSquared(p)}
	}
	if extend {
		// Pick whichever of the two equivalent parameters lies closer to
		// the arc.
		period := 2 * math.Pi / math.Abs(a.SweepAngle)
		if t-1 > period-t {
			t -= period
		}
		p := a.Eval(t)
		return Nearest{Point: p, Param: t, DistSq: pt.DistanceSquared(p)}
	}
	p0 := a.Start()
	p1 := a.End()
	d0 := pt.DistanceSquared(p0)
	d1 := pt.DistanceSquared(p1)
	if d0 <= d1 {
		return Nearest{Point: p0, Param: 0, DistSq: d0}
	}
	return Nearest{Point: p1, Param: 1, DistSq: d1}
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the arc.
func (a Arc) BoundingBox() Rect {
	r := NewRectFromPoints(a.Start(), a.End())
	// Add every axis extremum (multiples of π/2) that the arc passes
	// through.
	for k := range 4 {
		th := float64(k) * math.Pi / 2
		if a.paramAtAngle(th) <= 1 {
			r = r.UnionPoint(pointOnCircle(a.Center, a.Radius, th))
		}
	}
	return r
}

// Polyline returns an open polyline tracing the arc. Arcs sweeping a full
// circle or more are split in two, as a single bulge cannot describe them.
func (a Arc) Polyline() Polyline {
	if math.Abs(a.SweepAngle) >= 2*math.Pi {
		h := a.Subsegment(0, 0.5)
		return Polyline{Vertices: []Vertex{
			{Point: a.Start(), Bulge: h.Bulge()},
			{Point: a.Eval(0.5), Bulge: h.Bulge()},
			{Point: a.End()},
		}}
	}
	return Polyline{Vertices: []Vertex{
		{Point: a.Start(), Bulge: a.Bulge()},
		{Point: a.End()},
	}}
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
