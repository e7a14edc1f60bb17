package polyclean

import (
	"math"
)

// RemoveDuplicateVertices merges runs of consecutive vertices that lie within
// tol of each other. The first vertex of each run is kept along with its
// bulge and widths; the bulges of the others are discarded. For closed
// polylines, trailing vertices that lie within tol of the first vertex are
// merged into it as well.
//
// A tol of 0 merges exactly coinciding vertices only. The second return
// value is the number of removed vertices. Degenerate polylines are returned
// unchanged.
func RemoveDuplicateVertices(p Polyline, tol float64) (Polyline, int) {
	if p.IsDegenerate() {
		return p.Clone(), 0
	}
	tol = max(tol, 0)
	vs := make([]Vertex, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		if len(vs) > 0 && vs[len(vs)-1].Point.Distance(v.Point) <= tol {
			continue
		}
		vs = append(vs, v)
	}
	if p.Closed {
		for len(vs) > 1 && vs[len(vs)-1].Point.Distance(vs[0].Point) <= tol {
			vs = vs[:len(vs)-1]
		}
	}
	return p.derive(vs), len(p.Vertices) - len(vs)
}

// ReduceOptions control [ReducePoints].
type ReduceOptions struct {
	// Iterate repeats the reduction until a pass removes no more vertices.
	Iterate bool
}

// DefaultReduceOptions makes a single pass.
var DefaultReduceOptions = ReduceOptions{}

// ReducePoints removes vertices from straight runs of the polyline as long as
// the removed vertices stay within epsilon of the straight segment that
// replaces them. Only vertices between two straight segments are
// candidates; arcs and the vertices bounding them are kept verbatim. So are
// the end points of open polylines and the first vertex of closed ones.
//
// The second return value is the number of removed vertices.
func ReducePoints(p Polyline, epsilon float64, opts ReduceOptions) (Polyline, int) {
	out, removed := reducePass(p, epsilon)
	if !opts.Iterate {
		return out, removed
	}
	for {
		next, n := reducePass(out, epsilon)
		if n == 0 {
			return out, removed
		}
		out = next
		removed += n
	}
}

// straightAround reports whether vertex j sits between two straight
// segments.
func (p Polyline) straightAround(j int) bool {
	n := len(p.Vertices)
	if !p.Closed && (j == 0 || j == n-1) {
		return false
	}
	return p.Vertices[(j+n-1)%n].Bulge == 0 && p.Vertices[j].Bulge == 0
}

func reducePass(p Polyline, epsilon float64) (Polyline, int) {
	if p.IsDegenerate() {
		return p.Clone(), 0
	}
	n := len(p.Vertices)
	last := n - 1
	if p.Closed {
		last = n
	}
	minKeep := 2
	if p.Closed {
		minKeep = 3
	}

	vs := []Vertex{p.Vertices[0]}
	// Vertices dropped since the last kept one.
	var pending []Point
	for j := 1; j < last; j++ {
		v := p.Vertices[j]
		if p.straightAround(j) && len(vs)+(n-1-j) >= minKeep {
			chord := Line{vs[len(vs)-1].Point, p.Vertices[(j+1)%n].Point}
			ok := chord.Nearest(v.Point, false).Distance() <= epsilon
			for _, q := range pending {
				if !ok {
					break
				}
				ok = chord.Nearest(q, false).Distance() <= epsilon
			}
			if ok {
				pending = append(pending, v.Point)
				continue
			}
		}
		vs = append(vs, v)
		pending = pending[:0]
	}
	if !p.Closed {
		vs = append(vs, p.Vertices[last])
	}
	return p.derive(vs), n - len(vs)
}

// RemoveColinearPoints removes vertices between two straight segments whose
// directions differ by at most angleEpsilon radians. The direction of the
// incoming segment is measured from the last kept vertex, so that a slowly
// turning run cannot accumulate more than angleEpsilon of turn per removed
// vertex. Vertices adjacent to zero-length segments count as colinear.
//
// The second return value is the number of removed vertices.
func RemoveColinearPoints(p Polyline, angleEpsilon float64) (Polyline, int) {
	if p.IsDegenerate() {
		return p.Clone(), 0
	}
	n := len(p.Vertices)
	last := n - 1
	minKeep := 2
	if p.Closed {
		last = n
		minKeep = 3
	}

	vs := []Vertex{p.Vertices[0]}
	for j := 1; j < last; j++ {
		v := p.Vertices[j]
		if p.straightAround(j) && len(vs)+(n-1-j) >= minKeep {
			d1 := v.Point.Sub(vs[len(vs)-1].Point)
			d2 := p.Vertices[(j+1)%n].Point.Sub(v.Point)
			if d1.Hypot2() == 0 || d2.Hypot2() == 0 || d1.AngleTo(d2) <= angleEpsilon {
				continue
			}
		}
		vs = append(vs, v)
	}
	if !p.Closed {
		vs = append(vs, p.Vertices[last])
	}
	return p.derive(vs), n - len(vs)
}

// IsZeroLength reports whether the polyline has no length, either because it
// has no segments or because all its vertices coincide.
func IsZeroLength(p Polyline) bool {
	return p.Length() == 0
}

// RemoveZeroLength returns the polylines that have a length, and the number
// of polylines it dropped.
func RemoveZeroLength(ps []Polyline) ([]Polyline, int) {
	out := make([]Polyline, 0, len(ps))
	for _, p := range ps {
		if !IsZeroLength(p) {
			out = append(out, p.Clone())
		}
	}
	return out, len(ps) - len(out)
}

// FlattenArcs replaces every arc segment with n straight segments of equal
// length. If n <= 0, the number of segments is chosen per arc so that each
// spans at most 10 degrees. Widths are interpolated along each arc.
func FlattenArcs(p Polyline, n int) Polyline {
	if p.IsDegenerate() {
		return p.Clone()
	}
	var vs []Vertex
	for i, seg := range p.Segments() {
		v := p.Vertices[i]
		if seg.Kind != ArcKind {
			vs = append(vs, Vertex{Point: v.Point, StartWidth: v.StartWidth, EndWidth: v.EndWidth})
			continue
		}
		k := n
		if k <= 0 {
			k = arcSegments(seg.Arc().SweepAngle)
		}
		for s := range k {
			t0 := float64(s) / float64(k)
			t1 := float64(s+1) / float64(k)
			vs = append(vs, Vertex{
				Point:      seg.Eval(t0),
				StartWidth: lerp(v.StartWidth, v.EndWidth, t0),
				EndWidth:   lerp(v.StartWidth, v.EndWidth, t1),
			})
		}
	}
	if !p.Closed {
		last := p.Vertices[len(p.Vertices)-1]
		last.Bulge = 0
		vs = append(vs, last)
	}
	return p.derive(vs)
}

// arcSegments returns the number of line segments that approximate an arc
// with the given sweep to within 10 degrees per segment.
func arcSegments(sweep float64) int {
	const maxStep = 10 * math.Pi / 180
	return max(1, int(math.Ceil(math.Abs(sweep)/maxStep-1e-9)))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CloseWithVertex closes an open polyline by appending a vertex at its start
// point, leaving Closed unset. It reports whether a vertex was added; it
// isn't if the polyline is closed already, or if its ends already coincide.
func CloseWithVertex(p Polyline) (Polyline, bool) {
	if p.Closed || len(p.Vertices) < 2 || p.StartPoint() == p.EndPoint() {
		return p.Clone(), false
	}
	out := p.Clone()
	out.Vertices = append(out.Vertices, Vertex{Point: p.StartPoint()})
	return out, true
}
