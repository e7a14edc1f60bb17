package polyclean

import (
	"math"
)

// Curve describes anything that can answer nearest-point queries: the
// primitive curves [Line] and [Arc], the tagged union [Segment], and
// [Polyline].
type Curve interface {
	// Nearest returns the point on the curve closest to pt.
	//
	// If extend is true, the curve is treated as extending past its ends:
	// lines become infinite and arcs become full circles. For a polyline,
	// only the first and last segments are extended.
	//
	// A degenerate curve reports a Nearest whose DistSq is +Inf.
	Nearest(pt Point, extend bool) Nearest
}

// Nearest is the result of a nearest-point query.
type Nearest struct {
	// The point on the curve closest to the query point.
	Point Point
	// The parameter of Point on the curve. For primitive curves, this is in
	// [0, 1] unless the query extended the curve. For polylines, it is a
	// [Param].
	Param float64
	// The squared distance between the query point and Point.
	DistSq float64
}

// Found reports whether the query produced a point at all. It is false for
// degenerate curves.
func (n Nearest) Found() bool {
	return !math.IsInf(n.DistSq, 1)
}

// Distance returns the euclidean distance between the query point and the
// nearest point.
func (n Nearest) Distance() float64 {
	return math.Sqrt(n.DistSq)
}

var noNearest = Nearest{DistSq: math.Inf(1)}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// normAngle maps th into [0, 2π).
func normAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	if th >= 2*math.Pi {
		th = 0
	}
	return th
}
