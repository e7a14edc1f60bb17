package polyclean

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a tolerance suitable for geometry that went
// through trigonometry.
var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-9),
	cmp.Comparer(func(a, b Param) bool {
		return math.Abs(float64(a-b)) <= 1e-9
	}),
}

// pl builds an open polyline from x, y pairs.
func pl(xys ...float64) Polyline {
	pts := make([]Point, 0, len(xys)/2)
	for i := 0; i+1 < len(xys); i += 2 {
		pts = append(pts, Pt(xys[i], xys[i+1]))
	}
	return NewPolyline(pts...)
}

// closed returns p with Closed set.
func closed(p Polyline) Polyline {
	p.Closed = true
	return p
}

func mustBulge(t *testing.T, isClosed bool, xs ...float64) Polyline {
	t.Helper()
	p, err := NewPolylineBulge(isClosed, xs...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func points(p Polyline) []Point {
	out := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Point
	}
	return out
}
