package polyclean

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumSegments(t *testing.T) {
	tests := []struct {
		name string
		p    Polyline
		want int
	}{
		{"empty", Polyline{}, 0},
		{"single vertex", pl(0, 0), 0},
		{"two vertices", pl(0, 0, 1, 0), 1},
		{"three vertices", pl(0, 0, 1, 0, 1, 1), 2},
		{"closed, two vertices", closed(pl(0, 0, 1, 0)), 0},
		{"closed, three vertices", closed(pl(0, 0, 1, 0, 1, 1)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.NumSegments(); got != tt.want {
				t.Errorf("got %d segments, want %d", got, tt.want)
			}
			if got := tt.p.IsDegenerate(); got != (tt.want == 0) {
				t.Errorf("IsDegenerate() = %t", got)
			}
			n := 0
			for range tt.p.Segments() {
				n++
			}
			if n != tt.want {
				t.Errorf("Segments yielded %d segments, want %d", n, tt.want)
			}
		})
	}
}

func TestNewPolylineBulge(t *testing.T) {
	p, err := NewPolylineBulge(true, 0, 0, 1, 10, 0, 0, 10, 10, 0)
	require.NoError(t, err)
	assert.True(t, p.Closed)
	diff(t, []Vertex{{Point: Pt(0, 0), Bulge: 1}, {Point: Pt(10, 0)}, {Point: Pt(10, 10)}}, p.Vertices)

	_, err = NewPolylineBulge(false, 0, 0, 1, 10)
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)

	_, err = NewPolylineBulge(false, 0, 0, math.Inf(1))
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
}

func TestPolylineEval(t *testing.T) {
	p := pl(0, 0, 10, 0, 10, 10)
	tests := []struct {
		at   Param
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(5, 0)},
		{1, Pt(10, 0)},
		{1.5, Pt(10, 5)},
		{2, Pt(10, 10)},
	}
	for _, tt := range tests {
		got, err := p.Eval(tt.at)
		if err != nil {
			t.Errorf("Eval(%g): %s", tt.at, err)
			continue
		}
		diff(t, tt.want, got)
	}

	for _, at := range []Param{-0.1, 2.1, Param(math.NaN())} {
		_, err := p.Eval(at)
		if !errors.Is(err, ErrParamOutOfRange) {
			t.Errorf("Eval(%g): got error %v, want ErrParamOutOfRange", at, err)
		}
	}

	_, err := pl(1, 1).Eval(0)
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want ErrDegenerate", err)
	}

	sq := closed(pl(0, 0, 10, 0, 10, 10, 0, 10))
	got, err := sq.Eval(3.5)
	require.NoError(t, err)
	diff(t, Pt(0, 5), got)
	got, err = sq.Eval(4)
	require.NoError(t, err)
	diff(t, Pt(0, 0), got)
}

func TestPolylineTangent(t *testing.T) {
	p := mustBulge(t, false, 0, 0, 0, 10, 0, 1, 20, 0, 0)
	tan, err := p.Tangent(0.5)
	require.NoError(t, err)
	diff(t, Vec(10, 0), tan)

	// At the start of the arc, the tangent turns clockwise from the chord by
	// half the sweep.
	tan, err = p.Tangent(1)
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/2, tan.Angle(), 1e-9)
	assert.InDelta(t, 5*math.Pi, tan.Hypot(), 1e-9)
}

func TestPolylineLength(t *testing.T) {
	p := pl(0, 0, 10, 0, 10, 10)
	assert.Equal(t, 20.0, p.Length())

	l, err := p.ArcLength(0.5, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 10, l, 1e-12)

	l, err = p.ArcLength(1.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 10, l, 1e-12)

	_, err = p.ArcLength(0, 3)
	assert.True(t, errors.Is(err, ErrParamOutOfRange))

	arc := mustBulge(t, false, 0, 0, 1, 10, 0, 0)
	assert.InDelta(t, 5*math.Pi, arc.Length(), 1e-9)
	l, err = arc.ArcLength(0.25, 0.75)
	require.NoError(t, err)
	assert.InDelta(t, 2.5*math.Pi, l, 1e-9)

	assert.Equal(t, 0.0, pl(3, 3).Length())
}

func TestPolylineNearest(t *testing.T) {
	sq := closed(pl(0, 0, 10, 0, 10, 10, 0, 10))

	// The center is equally far from every side; the lowest parameter wins.
	n := sq.Nearest(Pt(5, 5), false)
	diff(t, Nearest{Pt(5, 0), 0.5, 25}, n)

	n = sq.Nearest(Pt(12, 4), false)
	diff(t, Nearest{Pt(10, 4), 1.4, 4}, n, approx)

	at, err := sq.ParamAtPoint(Pt(-1, 5))
	require.NoError(t, err)
	assert.InDelta(t, 3.5, float64(at), 1e-12)

	// Only the ends of an open polyline extend.
	open := pl(0, 0, 10, 0, 10, 10)
	n = open.Nearest(Pt(-5, 1), true)
	diff(t, Nearest{Pt(-5, 0), -0.5, 1}, n, approx)
	n = open.Nearest(Pt(11, 15), true)
	diff(t, Nearest{Pt(10, 15), 2.5, 1}, n, approx)
	n = open.Nearest(Pt(15, -1), true)
	diff(t, Nearest{Pt(10, 0), 1, 26}, n, approx)

	if pl(1, 1).Nearest(Pt(0, 0), false).Found() {
		t.Error("degenerate polyline has a nearest point")
	}
	_, err = pl(1, 1).ParamAtPoint(Pt(0, 0))
	assert.True(t, errors.Is(err, ErrDegenerate))
}

func TestPolylineBoundingBox(t *testing.T) {
	p := mustBulge(t, false, 0, 0, 1, 10, 0, 0, 10, 3, 0)
	diff(t, Rect{0, -5, 10, 3}, p.BoundingBox(), approx)
	assert.True(t, Polyline{}.BoundingBox().IsEmpty())
	diff(t, Rect{2, 3, 2, 3}, pl(2, 3).BoundingBox())

	diff(t, Rect{-1, -5, 10, 3}, Extents([]Polyline{p, {}, pl(-1, 1)}), approx)
	assert.True(t, Extents(nil).IsEmpty())
}

func TestPolylineReverse(t *testing.T) {
	p := Polyline{
		Vertices: []Vertex{
			{Point: Pt(0, 0), Bulge: 0.5, StartWidth: 1, EndWidth: 2},
			{Point: Pt(10, 0), Bulge: 0, StartWidth: 3, EndWidth: 4},
			{Point: Pt(10, 10)},
		},
		Meta: Meta{Layer: "walls"},
	}
	want := Polyline{
		Vertices: []Vertex{
			{Point: Pt(10, 10), Bulge: 0, StartWidth: 4, EndWidth: 3},
			{Point: Pt(10, 0), Bulge: -0.5, StartWidth: 2, EndWidth: 1},
			{Point: Pt(0, 0)},
		},
		Meta: Meta{Layer: "walls"},
	}
	r := p.Reverse()
	diff(t, want, r)
	diff(t, p, r.Reverse())

	// Reversal traces the same points in the opposite order.
	for _, at := range []Param{0, 0.3, 1, 1.7, 2} {
		a, _ := p.Eval(at)
		b, _ := r.Eval(2 - at)
		diff(t, a, b, approx)
	}
}

func TestPolylineReverseClosed(t *testing.T) {
	p := Polyline{
		Vertices: []Vertex{
			{Point: Pt(0, 0), Bulge: 0.1},
			{Point: Pt(10, 0), Bulge: 0.2},
			{Point: Pt(10, 10), Bulge: 0.3},
		},
		Closed: true,
	}
	want := Polyline{
		Vertices: []Vertex{
			{Point: Pt(10, 10), Bulge: -0.2},
			{Point: Pt(10, 0), Bulge: -0.1},
			{Point: Pt(0, 0), Bulge: -0.3},
		},
		Closed: true,
	}
	r := p.Reverse()
	diff(t, want, r)
	diff(t, p, r.Reverse())
	assert.InDelta(t, p.Length(), r.Length(), 1e-9)
}

func TestPolylineClone(t *testing.T) {
	p := pl(0, 0, 1, 1)
	p.Meta = Meta{Layer: "0", XData: map[string]string{"k": "v"}}
	c := p.Clone()
	c.Vertices[0].Point = Pt(5, 5)
	c.Meta.XData["k"] = "changed"
	diff(t, Pt(0, 0), p.Vertices[0].Point)
	diff(t, "v", p.Meta.XData["k"])
}
