package polyclean

import (
	"fmt"
	"math"
)

type SegmentKind int

const (
	// A straight line segment.
	LineKind SegmentKind = iota + 1
	// A circular arc segment.
	ArcKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case ArcKind:
		return "Arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one segment of a polyline. This type acts as a tagged union of
// [Line] and [Arc], described the way polylines store them: by their two end
// points and a bulge.
//
// Use [NewSegment] to construct segments, so that Kind agrees with Bulge.
type Segment struct {
	Kind  SegmentKind
	P0    Point
	P1    Point
	Bulge float64
}

var _ Curve = Segment{}

// NewSegment returns the segment from p0 to p1 with the given bulge. Zero
// bulges and zero-length chords produce line segments.
func NewSegment(p0, p1 Point, bulge float64) Segment {
	if bulge == 0 || p0 == p1 {
		return Segment{Kind: LineKind, P0: p0, P1: p1}
	}
	return Segment{Kind: ArcKind, P0: p0, P1: p1, Bulge: bulge}
}

func (seg Segment) String() string {
	if seg.Kind == ArcKind {
		return fmt.Sprintf("Arc(%s, %s, bulge=%g)", seg.P0, seg.P1, seg.Bulge)
	}
	return fmt.Sprintf("Line(%s, %s)", seg.P0, seg.P1)
}

// Line returns the segment's chord.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Arc returns the segment as an arc. For line segments, the result is a
// degenerate arc.
func (seg Segment) Arc() Arc {
	a, ok := ArcFromBulge(seg.P0, seg.P1, seg.Bulge)
	if !ok {
		return Arc{Center: seg.P0}
	}
	return a
}

// IsDegenerate reports whether the segment has zero length.
func (seg Segment) IsDegenerate() bool {
	return seg.P0 == seg.P1
}

func (seg Segment) Start() Point { return seg.P0 }
func (seg Segment) End() Point   { return seg.P1 }

// Eval evaluates the segment at t ∈ [0, 1]. The end points are returned
// exactly.
func (seg Segment) Eval(t float64) Point {
	switch t {
	case 0:
		return seg.P0
	case 1:
		return seg.P1
	}
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case ArcKind:
		return seg.Arc().Eval(t)
	default:
		panic(fmt.Sprintf("unhandled case %v", seg.Kind))
	}
}

// Tangent returns the derivative of the segment at t.
func (seg Segment) Tangent(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangent(t)
	case ArcKind:
		return seg.Arc().Tangent(t)
	default:
		panic(fmt.Sprintf("unhandled case %v", seg.Kind))
	}
}

// Length returns the segment's arc length.
func (seg Segment) Length() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Length()
	case ArcKind:
		return seg.Arc().Length()
	default:
		panic(fmt.Sprintf("unhandled case %v", seg.Kind))
	}
}

// Nearest implements Curve.
func (seg Segment) Nearest(pt Point, extend bool) Nearest {
	var n Nearest
	switch seg.Kind {
	case LineKind:
		n = seg.Line().Nearest(pt, extend)
	case ArcKind:
		n = seg.Arc().Nearest(pt, extend)
	default:
		panic(fmt.Sprintf("unhandled case %v", seg.Kind))
	}
	if n.Param == 0 || n.Param == 1 {
		n.Point = seg.Eval(n.Param)
		n.DistSq = pt.DistanceSquared(n.Point)
	}
	return n
}

// Subsegment returns the part of the segment between the parameters start
// and end.
func (seg Segment) Subsegment(start, end float64) Segment {
	b := 0.0
	if seg.Kind == ArcKind {
		b = subBulge(seg.Bulge, end-start)
	}
	return NewSegment(seg.Eval(start), seg.Eval(end), b)
}

// Reverse returns the segment traversed in the opposite direction.
func (seg Segment) Reverse() Segment {
	return Segment{Kind: seg.Kind, P0: seg.P1, P1: seg.P0, Bulge: -seg.Bulge}
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// segment.
func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case ArcKind:
		return seg.Arc().BoundingBox()
	default:
		panic(fmt.Sprintf("unhandled case %v", seg.Kind))
	}
}

// subBulge returns the bulge of the fraction f of an arc with bulge b.
func subBulge(b, f float64) float64 {
	return math.Tan(math.Atan(b) * f)
}
