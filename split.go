package polyclean

import (
	"context"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// paramEpsilon is the distance below which two parameters are the same cut.
const paramEpsilon = 1e-9

// Split cuts p at the given parameters and returns the pieces in order. The
// parameters are sorted and deduplicated first; they must lie within
// [0, p.NumSegments()] and are never clamped.
//
// Without parameters, Split returns a copy of p. Cuts at the ends of an open
// polyline are ignored rather than producing empty pieces. A closed polyline
// cut at k distinct points yields k open pieces; the last piece runs through
// the first vertex, and a single cut opens the polyline at that point.
//
// Arc segments are cut by recomputing the bulge of each part, and widths are
// interpolated at the cuts. Every piece carries a copy of p's Meta.
func Split(p Polyline, params []Param) ([]Polyline, error) {
	if len(params) == 0 {
		return []Polyline{p.Clone()}, nil
	}
	n := p.NumSegments()
	if n == 0 {
		return nil, ErrDegenerate
	}
	cuts := make([]Param, 0, len(params))
	for _, at := range params {
		if math.IsNaN(float64(at)) || at < 0 || at > Param(n) {
			return nil, errParam(at, n)
		}
		if p.Closed && at >= Param(n)-paramEpsilon {
			// The end of a closed polyline is its start.
			at = 0
		}
		if !p.Closed && (at <= paramEpsilon || at >= Param(n)-paramEpsilon) {
			continue
		}
		cuts = append(cuts, at)
	}
	slices.Sort(cuts)
	cuts = slices.CompactFunc(cuts, func(a, b Param) bool {
		return b-a <= paramEpsilon
	})

	if !p.Closed {
		if len(cuts) == 0 {
			return []Polyline{p.Clone()}, nil
		}
		bounds := append(append([]Param{0}, cuts...), Param(n))
		out := make([]Polyline, 0, len(bounds)-1)
		for i := range len(bounds) - 1 {
			out = append(out, p.extract(bounds[i], bounds[i+1]))
		}
		return out, nil
	}

	out := make([]Polyline, 0, len(cuts))
	for i := range len(cuts) - 1 {
		out = append(out, p.extract(cuts[i], cuts[i+1]))
	}
	out = append(out, p.extract(cuts[len(cuts)-1], cuts[0]+Param(n)))
	return out, nil
}

// extract returns the open polyline running from one parameter to another.
// For closed polylines, to may exceed NumSegments, wrapping around through
// the first vertex.
func (p Polyline) extract(from, to Param) Polyline {
	n := p.NumSegments()
	var vs []Vertex
	var end Point
	for cur := from; cur < to; {
		i := int(math.Floor(float64(cur)))
		next := min(to, Param(i+1))
		t0 := float64(cur) - float64(i)
		t1 := float64(next) - float64(i)
		seg, _ := p.Segment(i % n)
		v := p.Vertices[i%n]
		sub := seg.Subsegment(t0, t1)
		vs = append(vs, Vertex{
			Point:      sub.P0,
			Bulge:      sub.Bulge,
			StartWidth: lerp(v.StartWidth, v.EndWidth, t0),
			EndWidth:   lerp(v.StartWidth, v.EndWidth, t1),
		})
		end = sub.P1
		cur = next
	}
	vs = append(vs, Vertex{Point: end})
	return Polyline{Vertices: vs, Meta: p.Meta.Clone()}
}

// SplitAtIntersections cuts every polyline at the points where it meets any
// other polyline of the set. The i-th element of the result holds the pieces
// of ps[i]; polylines that meet no other polyline are returned whole.
//
// The polylines are processed through [Batch] with opts, so progress is
// reported once per polyline and cancelling ctx stops between polylines.
func SplitAtIntersections(ctx context.Context, ps []Polyline, opts BatchOptions) ([][]Polyline, error) {
	out := make([][]Polyline, len(ps))
	_, err := Batch(ctx, ps, opts, func(i int, p Polyline) (Result, error) {
		var params []Param
		for j, o := range ps {
			if i == j {
				continue
			}
			for _, x := range Intersect(p, o) {
				params = append(params, x.ParamA)
			}
		}
		pieces, err := Split(p, params)
		if err != nil {
			return Result{}, errors.Wrap(err, "splitting")
		}
		out[i] = pieces
		if len(pieces) == 1 {
			return Keep, nil
		}
		return Replace(0, pieces...), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
