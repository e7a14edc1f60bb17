package polyclean

import (
	"context"
	"slices"
)

// snapTarget ranks the places an endpoint can snap to. Lower ranks win ties.
type snapTarget int

const (
	snapStart snapTarget = iota
	snapEnd
	snapInterior
)

// SnapEndpoints moves each end point of an open polyline onto the nearest
// feature of the candidates, if that feature is closer than epsilon. The
// features of a candidate are its start point, its end point and the point
// on it closest to the end point. Candidates that already pass through the
// end point are ignored, which also makes it harmless for p to be among the
// candidates.
//
// Ties prefer a start point, then an end point, then an interior point, and
// then the earlier candidate. Both ends are resolved against the positions
// given, not against each other's result. The second return value reports
// whether anything moved.
func SnapEndpoints(p Polyline, candidates []Polyline, epsilon float64) (Polyline, bool) {
	out := p.Clone()
	if p.Closed || len(p.Vertices) < 2 {
		return out, false
	}
	changed := false
	for _, idx := range [2]int{0, len(p.Vertices) - 1} {
		pt := p.Vertices[idx].Point
		if target, ok := nearestSnap(pt, candidates, epsilon); ok && target != pt {
			out.Vertices[idx].Point = target
			changed = true
		}
	}
	return out, changed
}

type snapFeature struct {
	pt   Point
	rank snapTarget
}

// nearestSnap returns the feature of the candidates that pt snaps to.
func nearestSnap(pt Point, candidates []Polyline, epsilon float64) (Point, bool) {
	var (
		found    bool
		bestDist float64
		best     snapFeature
	)
	for _, c := range candidates {
		if len(c.Vertices) == 0 || Distance(c, pt) == 0 {
			continue
		}
		features := []snapFeature{
			{c.StartPoint(), snapStart},
			{c.EndPoint(), snapEnd},
		}
		if n := c.Nearest(pt, false); n.Found() {
			features = append(features, snapFeature{n.Point, snapInterior})
		}
		for _, f := range features {
			d := pt.Distance(f.pt)
			if d >= epsilon {
				continue
			}
			if !found || d < bestDist || (d == bestDist && f.rank < best.rank) {
				found, bestDist, best = true, d, f
			}
		}
	}
	return best.pt, found
}

// Landing returns the index of the curve closest to pt and the connector
// from pt to the closest point on it. ok is false if no curve has a point.
func Landing(pt Point, cs []Curve) (idx int, connector Line, ok bool) {
	idx, n, ok := ClosestAmong(cs, pt)
	if !ok {
		return -1, Line{}, false
	}
	return idx, Line{P0: pt, P1: n.Point}, true
}

// TrimExtend snaps the end points of every polyline in ps against all the
// others, as per [SnapEndpoints]. Polylines that overshoot another one, stop
// short of it or miss its end are joined to it. All polylines are resolved
// against the original set. The second return value is the number of
// polylines that changed.
//
// The polylines are processed through [Batch] with opts, so progress is
// reported once per polyline and cancelling ctx stops between polylines.
func TrimExtend(ctx context.Context, ps []Polyline, epsilon float64, opts BatchOptions) ([]Polyline, int, error) {
	results, err := Batch(ctx, ps, opts, func(i int, p Polyline) (Result, error) {
		q, changed := SnapEndpoints(p, others(ps, i), epsilon)
		if !changed {
			return Keep, nil
		}
		return Replace(0, q), nil
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]Polyline, len(ps))
	n := 0
	for i, r := range results {
		if !r.Retire {
			out[i] = ps[i].Clone()
			continue
		}
		out[i] = r.Replace[0]
		n++
	}
	return out, n, nil
}

// others returns ps without its i-th element.
func others(ps []Polyline, i int) []Polyline {
	return slices.Delete(slices.Clone(ps), i, i+1)
}
