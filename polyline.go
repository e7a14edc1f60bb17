package polyclean

import (
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Vertex is a polyline vertex. Bulge, StartWidth and EndWidth describe the
// segment that starts at the vertex.
type Vertex struct {
	Point Point
	// Bulge is tan(θ/4), where θ is the signed sweep angle of the segment
	// that starts at this vertex. A bulge of 0 makes the segment straight.
	Bulge float64
	// Optional width overrides at the start and end of the segment.
	StartWidth float64
	EndWidth   float64
}

// Meta is data that travels with a polyline without affecting its geometry.
// Derived polylines carry a copy of their source's Meta.
type Meta struct {
	Layer string            `json:"layer,omitempty"`
	XData map[string]string `json:"xdata,omitempty"`
}

// Clone returns a deep copy of m.
func (m Meta) Clone() Meta {
	return Meta{Layer: m.Layer, XData: maps.Clone(m.XData)}
}

// Polyline is an ordered sequence of vertices joined by straight or circular
// segments. If Closed is set, an implicit segment joins the last vertex to
// the first.
//
// Polylines are values. Every operation in this package that changes a
// polyline returns a new one and leaves its input untouched.
type Polyline struct {
	Vertices []Vertex
	Closed   bool
	Meta     Meta
}

var _ Curve = Polyline{}

// Param identifies a location on a polyline. The integer part is the index of
// a segment, the fractional part the position within that segment. The valid
// range is [0, NumSegments()].
type Param float64

// split returns the index of the segment containing p and the position
// within it. p must be in range; the end of the polyline maps to the end of
// its last segment.
func (p Param) split(n int) (int, float64) {
	i := int(math.Floor(float64(p)))
	if i >= n {
		i = n - 1
	}
	return i, float64(p) - float64(i)
}

// NewPolyline returns an open polyline with straight segments through pts.
func NewPolyline(pts ...Point) Polyline {
	vs := make([]Vertex, len(pts))
	for i, pt := range pts {
		vs[i] = Vertex{Point: pt}
	}
	return Polyline{Vertices: vs}
}

// NewPolylineBulge returns a polyline from interleaved x, y, bulge triples.
func NewPolylineBulge(closed bool, xs ...float64) (Polyline, error) {
	if len(xs)%3 != 0 {
		return Polyline{}, errors.Wrapf(ErrMalformed, "got %d values, want x, y, bulge triples", len(xs))
	}
	vs := make([]Vertex, 0, len(xs)/3)
	for i := 0; i < len(xs); i += 3 {
		v := Vertex{Point: Pt(xs[i], xs[i+1]), Bulge: xs[i+2]}
		if v.Point.IsNaN() || v.Point.IsInf() || math.IsNaN(v.Bulge) || math.IsInf(v.Bulge, 0) {
			return Polyline{}, errors.Wrapf(ErrMalformed, "vertex %d is not finite", i/3)
		}
		vs = append(vs, v)
	}
	return Polyline{Vertices: vs, Closed: closed}, nil
}

// NumVertices returns the number of vertices.
func (p Polyline) NumVertices() int {
	return len(p.Vertices)
}

// NumSegments returns the number of segments. It is 0 for degenerate
// polylines: open ones with fewer than 2 vertices and closed ones with fewer
// than 3.
func (p Polyline) NumSegments() int {
	n := len(p.Vertices)
	if p.Closed {
		if n < 3 {
			return 0
		}
		return n
	}
	if n < 2 {
		return 0
	}
	return n - 1
}

// IsDegenerate reports whether the polyline has no segments.
func (p Polyline) IsDegenerate() bool {
	return p.NumSegments() == 0
}

// Segment returns the i-th segment.
func (p Polyline) Segment(i int) (Segment, bool) {
	n := p.NumSegments()
	if i < 0 || i >= n {
		return Segment{}, false
	}
	v0 := p.Vertices[i]
	v1 := p.Vertices[(i+1)%len(p.Vertices)]
	return NewSegment(v0.Point, v1.Point, v0.Bulge), true
}

// Segments returns an iterator over the polyline's segments and their
// indices.
func (p Polyline) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i := range p.NumSegments() {
			seg, _ := p.Segment(i)
			if !yield(i, seg) {
				return
			}
		}
	}
}

// StartPoint returns the first vertex. It returns the zero point if the
// polyline has no vertices.
func (p Polyline) StartPoint() Point {
	if len(p.Vertices) == 0 {
		return Point{}
	}
	return p.Vertices[0].Point
}

// EndPoint returns the point at which the polyline ends. For closed
// polylines, this is the first vertex.
func (p Polyline) EndPoint() Point {
	if len(p.Vertices) == 0 {
		return Point{}
	}
	if p.Closed {
		return p.Vertices[0].Point
	}
	return p.Vertices[len(p.Vertices)-1].Point
}

// Clone returns a deep copy of the polyline.
func (p Polyline) Clone() Polyline {
	return Polyline{
		Vertices: slices.Clone(p.Vertices),
		Closed:   p.Closed,
		Meta:     p.Meta.Clone(),
	}
}

// derive returns a polyline with the given vertices that shares p's
// closedness and a copy of its metadata.
func (p Polyline) derive(vs []Vertex) Polyline {
	return Polyline{Vertices: vs, Closed: p.Closed, Meta: p.Meta.Clone()}
}

func (p Polyline) locate(at Param) (Segment, float64, error) {
	n := p.NumSegments()
	if n == 0 {
		return Segment{}, 0, ErrDegenerate
	}
	if math.IsNaN(float64(at)) || at < 0 || at > Param(n) {
		return Segment{}, 0, errParam(at, n)
	}
	i, t := at.split(n)
	seg, _ := p.Segment(i)
	return seg, t, nil
}

// Eval returns the point at the given parameter.
func (p Polyline) Eval(at Param) (Point, error) {
	seg, t, err := p.locate(at)
	if err != nil {
		return Point{}, err
	}
	return seg.Eval(t), nil
}

// Tangent returns the derivative of the segment containing the given
// parameter. At a vertex, the tangent of the following segment is returned,
// except at the end of the polyline.
func (p Polyline) Tangent(at Param) (Vec2, error) {
	seg, t, err := p.locate(at)
	if err != nil {
		return Vec2{}, err
	}
	return seg.Tangent(t), nil
}

// Length returns the total length of the polyline. It is 0 for degenerate
// polylines.
func (p Polyline) Length() float64 {
	var l float64
	for _, seg := range p.Segments() {
		l += seg.Length()
	}
	return l
}

// ArcLength returns the length of the polyline between two parameters,
// regardless of their order.
func (p Polyline) ArcLength(from, to Param) (float64, error) {
	if _, _, err := p.locate(from); err != nil {
		return 0, err
	}
	if _, _, err := p.locate(to); err != nil {
		return 0, err
	}
	if from > to {
		from, to = to, from
	}
	return p.lengthTo(to) - p.lengthTo(from), nil
}

// lengthTo returns the arc length from the start to the in-range parameter
// at. The parametrization of both lines and arcs is proportional to arc
// length, so the result is exact.
func (p Polyline) lengthTo(at Param) float64 {
	i, t := at.split(p.NumSegments())
	var l float64
	for j, seg := range p.Segments() {
		if j == i {
			return l + t*seg.Length()
		}
		l += seg.Length()
	}
	return l
}

// Nearest implements Curve. Ties between segments resolve to the lowest
// parameter. With extend, an open polyline's first segment extends backwards
// and its last segment forwards.
func (p Polyline) Nearest(pt Point, extend bool) Nearest {
	n := p.NumSegments()
	best := noNearest
	for i, seg := range p.Segments() {
		cand := seg.Nearest(pt, false)
		if extend && !p.Closed {
			if i == 0 {
				if e := seg.Nearest(pt, true); e.Param < 0 && e.DistSq < cand.DistSq {
					cand = e
				}
			}
			if i == n-1 {
				if e := seg.Nearest(pt, true); e.Param > 1 && e.DistSq < cand.DistSq {
					cand = e
				}
			}
		}
		if cand.DistSq < best.DistSq {
			best = Nearest{Point: cand.Point, Param: float64(i) + cand.Param, DistSq: cand.DistSq}
		}
	}
	return best
}

// ParamAtPoint returns the parameter of the point on the polyline nearest to
// pt.
func (p Polyline) ParamAtPoint(pt Point) (Param, error) {
	if p.IsDegenerate() {
		return 0, ErrDegenerate
	}
	return Param(p.Nearest(pt, false).Param), nil
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// polyline. For a polyline without segments, it encloses the vertices, if
// any; check [Rect.IsEmpty] for the case of no vertices at all.
func (p Polyline) BoundingBox() Rect {
	r := emptyRect
	for _, v := range p.Vertices {
		r = r.UnionPoint(v.Point)
	}
	for _, seg := range p.Segments() {
		if seg.Kind == ArcKind {
			r = r.Union(seg.BoundingBox())
		}
	}
	return r
}

// Extents returns the smallest rectangle enclosing all of ps. It is empty if
// none of them has a vertex.
func Extents(ps []Polyline) Rect {
	r := emptyRect
	for _, p := range ps {
		r = r.Union(p.BoundingBox())
	}
	return r
}

// Reverse returns the polyline traversed in the opposite direction. Bulges
// are negated and move to the vertex that now starts their segment, and
// start and end widths are swapped.
//
// The vertex list is reversed as a whole, also for closed polylines: the
// former last vertex becomes the first.
func (p Polyline) Reverse() Polyline {
	n := len(p.Vertices)
	vs := make([]Vertex, n)
	for k := range n {
		vs[k].Point = p.Vertices[n-1-k].Point
		if k < n-1 {
			// Segment k of the result is segment n-2-k of p, reversed.
			src := p.Vertices[n-2-k]
			vs[k].Bulge = -src.Bulge
			vs[k].StartWidth, vs[k].EndWidth = src.EndWidth, src.StartWidth
		}
	}
	if p.Closed && n > 0 {
		// The closing segment runs from the old first vertex to the old
		// last one.
		src := p.Vertices[n-1]
		vs[n-1].Bulge = -src.Bulge
		vs[n-1].StartWidth, vs[n-1].EndWidth = src.EndWidth, src.StartWidth
	}
	return p.derive(vs)
}
