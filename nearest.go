package polyclean

import "math"

// ClosestPoint returns the point on c closest to pt. See [Curve] for the
// meaning of extend. For degenerate curves, pt itself is returned.
func ClosestPoint(c Curve, pt Point, extend bool) Point {
	n := c.Nearest(pt, extend)
	if !n.Found() {
		return pt
	}
	return n.Point
}

// ClosestAmong returns the index of the curve closest to pt and the nearest
// point on it. Ties go to the earliest curve. ok is false if cs contains no
// curve with at least one point.
func ClosestAmong(cs []Curve, pt Point) (idx int, nearest Nearest, ok bool) {
	idx = -1
	nearest = noNearest
	for i, c := range cs {
		n := c.Nearest(pt, false)
		if n.DistSq < nearest.DistSq {
			idx, nearest = i, n
		}
	}
	if idx < 0 {
		return -1, Nearest{}, false
	}
	return idx, nearest, true
}

// Distance returns the distance between pt and c. It is exactly 0 if pt lies
// on c within [Epsilon], and +Inf for degenerate curves.
func Distance(c Curve, pt Point) float64 {
	n := c.Nearest(pt, false)
	if !n.Found() {
		return math.Inf(1)
	}
	d := n.Distance()
	if d <= tolerance(pt, n.Point) {
		return 0
	}
	return d
}
