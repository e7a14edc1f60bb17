package polyclean

import (
	"cmp"
	"math"
	"slices"
)

// SegmentIntersection is an intersection between two primitive curves. T0
// and T1 are the parameters on the first and second curve, respectively.
type SegmentIntersection struct {
	Point Point
	T0    float64
	T1    float64
}

// Intersection is a point at which two curves meet. For segments, the
// parameters are in [0, 1]; for polylines, they are [Param] values.
type Intersection struct {
	Point  Point
	ParamA Param
	ParamB Param
}

// IntersectSegments returns the points at which two segments meet. Points
// that coincide within [Epsilon] are reported once. Collinear overlaps are
// reported as the two ends of the overlap.
func IntersectSegments(a, b Segment) []Intersection {
	var raw [4]SegmentIntersection
	var n int
	switch {
	case a.Kind == LineKind && b.Kind == LineKind:
		var xs [2]SegmentIntersection
		xs, n = a.Line().IntersectLine(b.Line())
		copy(raw[:], xs[:n])
	case a.Kind == LineKind && b.Kind == ArcKind:
		var xs [2]SegmentIntersection
		xs, n = intersectLineArc(a.Line(), b.Arc())
		copy(raw[:], xs[:n])
	case a.Kind == ArcKind && b.Kind == LineKind:
		var xs [2]SegmentIntersection
		xs, n = intersectLineArc(b.Line(), a.Arc())
		for i := range xs[:n] {
			xs[i].T0, xs[i].T1 = xs[i].T1, xs[i].T0
		}
		copy(raw[:], xs[:n])
	case a.Kind == ArcKind && b.Kind == ArcKind:
		var xs [4]SegmentIntersection
		xs, n = intersectArcArc(a.Arc(), b.Arc())
		copy(raw[:], xs[:n])
	default:
		panic("unreachable")
	}

	out := make([]Intersection, 0, n)
	for _, x := range raw[:n] {
		// Prefer exact vertices over computed points, so that shared
		// endpoints compare equal.
		switch {
		case x.T0 == 0 || x.T0 == 1:
			x.Point = a.Eval(x.T0)
		case x.T1 == 0 || x.T1 == 1:
			x.Point = b.Eval(x.T1)
		}
		if containsPoint(out, x.Point) {
			continue
		}
		out = append(out, Intersection{Point: x.Point, ParamA: Param(x.T0), ParamB: Param(x.T1)})
	}
	return out
}

func containsPoint(xs []Intersection, pt Point) bool {
	for _, x := range xs {
		if x.Point.Near(pt) {
			return true
		}
	}
	return false
}

// snapParam returns t clamped to [0, 1], or false if it lies further outside
// than tol.
func snapParam(t, tol float64) (float64, bool) {
	if t < -tol || t > 1+tol {
		return 0, false
	}
	return clamp01(t), true
}

func intersectLineArc(l Line, a Arc) ([2]SegmentIntersection, int) {
	var out [2]SegmentIntersection
	tol := tolerance(l.P0, l.P1, a.Center)
	if l.IsDegenerate() {
		if math.Abs(l.P0.Distance(a.Center)-a.Radius) > tol {
			return out, 0
		}
		u, ok := a.paramAtPoint(l.P0)
		if !ok {
			return out, 0
		}
		out[0] = SegmentIntersection{Point: l.P0, T0: 0, T1: u}
		return out, 1
	}

	// |P0 + tD - C|² = r²
	d := l.P1.Sub(l.P0)
	w := l.P0.Sub(a.Center)
	c2 := d.Dot(d)
	c1 := 2 * d.Dot(w)
	c0 := w.Dot(w) - a.Radius*a.Radius
	roots, nr := SolveQuadratic(c0, c1, c2)
	if nr == 0 {
		// A tangent line can miss the circle by rounding error.
		t := -c1 / (2 * c2)
		if math.Abs(l.Eval(t).Distance(a.Center)-a.Radius) <= tol {
			roots, nr = [2]float64{t}, 1
		}
	}

	tolT := tol / math.Sqrt(c2)
	n := 0
	for _, t := range roots[:nr] {
		t, ok := snapParam(t, tolT)
		if !ok {
			continue
		}
		p := l.Eval(t)
		u, ok := a.paramAtPoint(p)
		if !ok {
			continue
		}
		if n == 1 && out[0].Point.Near(p) {
			continue
		}
		out[n] = SegmentIntersection{Point: p, T0: t, T1: u}
		n++
	}
	return out, n
}

func intersectArcArc(a, b Arc) ([4]SegmentIntersection, int) {
	var out [4]SegmentIntersection
	n := 0
	add := func(p Point) {
		ta, okA := a.paramAtPoint(p)
		tb, okB := b.paramAtPoint(p)
		if !okA || !okB {
			return
		}
		for _, x := range out[:n] {
			if x.Point.Near(p) {
				return
			}
		}
		out[n] = SegmentIntersection{Point: p, T0: ta, T1: tb}
		n++
	}

	tol := tolerance(a.Center, b.Center)
	d := a.Center.Distance(b.Center)
	if d <= tol {
		if math.Abs(a.Radius-b.Radius) > tol {
			return out, 0
		}
		// Same circle: the arcs overlap wherever one's end lies on the
		// other.
		for _, p := range [4]Point{a.Start(), a.End(), b.Start(), b.End()} {
			add(p)
		}
		return out, n
	}
	if d > a.Radius+b.Radius+tol || d < math.Abs(a.Radius-b.Radius)-tol {
		return out, 0
	}

	// Distance from a's center to the chord through the intersections,
	// and half the chord's length.
	m := (a.Radius*a.Radius - b.Radius*b.Radius + d*d) / (2 * d)
	h := math.Sqrt(max(0, a.Radius*a.Radius-m*m))
	axis := b.Center.Sub(a.Center).Mul(1 / d)
	mid := a.Center.Translate(axis.Mul(m))
	if h <= tol {
		add(mid)
		return out, n
	}
	add(mid.Translate(axis.Perp().Mul(h)))
	add(mid.Translate(axis.Perp().Mul(-h)))
	return out, n
}

// Intersect returns the points at which two polylines meet, sorted by their
// parameter on a. Points that coincide within [Epsilon] are reported once,
// at the lowest parameter on a. Shared end points are intersections.
func Intersect(a, b Polyline) []Intersection {
	var out []Intersection
	bboxes := make([]Rect, 0, b.NumSegments())
	for _, sb := range b.Segments() {
		bboxes = append(bboxes, inflated(sb.BoundingBox()))
	}
	for i, sa := range a.Segments() {
		ba := inflated(sa.BoundingBox())
		for j, sb := range b.Segments() {
			if !ba.Overlaps(bboxes[j]) {
				continue
			}
			for _, x := range IntersectSegments(sa, sb) {
				if containsPoint(out, x.Point) {
					continue
				}
				out = append(out, Intersection{
					Point:  x.Point,
					ParamA: Param(i) + x.ParamA,
					ParamB: Param(j) + x.ParamB,
				})
			}
		}
	}
	sortIntersections(out)
	return out
}

func sortIntersections(xs []Intersection) {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Or(cmp.Compare(a.ParamA, b.ParamA), cmp.Compare(a.ParamB, b.ParamB))
	})
}

func inflated(r Rect) Rect {
	tol := tolerance(r.Min(), r.Max())
	return r.Inflate(tol, tol)
}

type indexedSegment struct {
	index int
	seg   Segment
}

// SelfIntersections returns the points at which a polyline crosses or
// touches itself, sorted by ParamA. ParamA is on the earlier segment of each
// pair, ParamB on the later one.
//
// Zero-length segments are ignored. Two segments that follow each other are
// allowed to meet at their shared vertex; any other contact between them,
// such as a segment folding back onto its predecessor, is reported. For
// closed polylines, the last and first segments follow each other.
func SelfIntersections(p Polyline) []Intersection {
	var out []Intersection
	selfIntersections(p, func(x Intersection) bool {
		if !containsPoint(out, x.Point) {
			out = append(out, x)
		}
		return true
	})
	sortIntersections(out)
	return out
}

// IsSelfIntersecting reports whether [SelfIntersections] would report at
// least one point.
func IsSelfIntersecting(p Polyline) bool {
	found := false
	selfIntersections(p, func(Intersection) bool {
		found = true
		return false
	})
	return found
}

func selfIntersections(p Polyline, yield func(Intersection) bool) {
	var segs []indexedSegment
	var bboxes []Rect
	for i, seg := range p.Segments() {
		if seg.IsDegenerate() {
			continue
		}
		segs = append(segs, indexedSegment{i, seg})
		bboxes = append(bboxes, inflated(seg.BoundingBox()))
	}
	m := len(segs)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if !bboxes[i].Overlaps(bboxes[j]) {
				continue
			}
			// Vertices that the two segments share by virtue of being
			// neighbors.
			var shared []Point
			if j == i+1 {
				shared = append(shared, segs[i].seg.P1)
			}
			if p.Closed && i == 0 && j == m-1 {
				shared = append(shared, segs[j].seg.P1)
			}
		xs:
			for _, x := range IntersectSegments(segs[i].seg, segs[j].seg) {
				for _, s := range shared {
					if x.Point.Near(s) {
						continue xs
					}
				}
				x.ParamA += Param(segs[i].index)
				x.ParamB += Param(segs[j].index)
				if !yield(x) {
					return
				}
			}
		}
	}
}
