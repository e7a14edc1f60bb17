package polyclean

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(0.0, 0.0, 0.0)), []float64{0.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, 0.0)), []float64{})
}

func TestNormAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := normAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("normAngle(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestSVG(t *testing.T) {
	tests := []struct {
		name string
		p    Polyline
		opts SVGOptions
		want string
	}{
		{"empty", Polyline{}, SVGOptions{}, ""},
		{"single vertex", pl(1, 2), SVGOptions{}, "M1,2"},
		{"lines", pl(10, 10, 20, 20, 30, 10), SVGOptions{}, "M10,10 L20,20 L30,10"},
		{"closed", closed(pl(0, 0, 10, 0, 10, 10)), SVGOptions{}, "M0,0 L10,0 L10,10 L0,0 Z"},
		{
			"semicircle",
			mustBulge(t, false, 0, 0, 1, 10, 0, 0),
			SVGOptions{},
			"M0,0 A5,5 0 0 1 10,0",
		},
		{
			"large clockwise arc",
			mustBulge(t, false, 0, 0, -2, 10, 0, 0),
			SVGOptions{MaxPrecision: 3},
			"M0,0 A6.25,6.25 0 1 0 10,0",
		},
		{"precision", pl(1.23456, 0, 2, 0), SVGOptions{MaxPrecision: 2}, "M1.23,0 L2,0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, SVG(tt.p, tt.opts))
		})
	}
}
