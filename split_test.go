package polyclean

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOpen(t *testing.T) {
	p := pl(0, 0, 10, 0, 10, 10)
	p.Meta.Layer = "roads"

	got, err := Split(p, nil)
	require.NoError(t, err)
	diff(t, []Polyline{p}, got)

	// Unsorted, duplicated, and at the ends.
	got, err = Split(p, []Param{1.5, 0.5, 0.5, 0, 2})
	require.NoError(t, err)
	want := [][]Point{
		{Pt(0, 0), Pt(5, 0)},
		{Pt(5, 0), Pt(10, 0), Pt(10, 5)},
		{Pt(10, 5), Pt(10, 10)},
	}
	require.Len(t, got, len(want))
	total := 0.0
	for i, piece := range got {
		diff(t, want[i], points(piece))
		assert.False(t, piece.Closed)
		assert.Equal(t, "roads", piece.Meta.Layer)
		total += piece.Length()
	}
	assert.InDelta(t, p.Length(), total, 1e-9)

	// Cutting only at the ends leaves the polyline whole.
	got, err = Split(p, []Param{0, 2})
	require.NoError(t, err)
	diff(t, []Polyline{p}, got)
}

func TestSplitErrors(t *testing.T) {
	p := pl(0, 0, 10, 0, 10, 10)
	for _, at := range []Param{-0.1, 2.5, Param(math.NaN())} {
		_, err := Split(p, []Param{1, at})
		if !errors.Is(err, ErrParamOutOfRange) {
			t.Errorf("Split at %g: got error %v, want ErrParamOutOfRange", at, err)
		}
	}
	_, err := Split(pl(1, 1), []Param{0})
	assert.True(t, errors.Is(err, ErrDegenerate), "got %v", err)
}

func TestSplitClosed(t *testing.T) {
	sq := closed(pl(0, 0, 10, 0, 10, 10, 0, 10))

	got, err := Split(sq, []Param{3, 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	diff(t, []Point{Pt(10, 0), Pt(10, 10), Pt(0, 10)}, points(got[0]))
	diff(t, []Point{Pt(0, 10), Pt(0, 0), Pt(10, 0)}, points(got[1]))
	assert.InDelta(t, sq.Length(), got[0].Length()+got[1].Length(), 1e-9)

	// A single cut opens the polyline.
	got, err = Split(sq, []Param{2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Closed)
	diff(t, []Point{Pt(10, 10), Pt(0, 10), Pt(0, 0), Pt(10, 0), Pt(10, 10)}, points(got[0]))

	// The end of a closed polyline is its start.
	got, err = Split(sq, []Param{4, 0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}, points(got[0]))
}

func TestSplitArc(t *testing.T) {
	p := Polyline{Vertices: []Vertex{
		{Point: Pt(0, 0), Bulge: 1, StartWidth: 2, EndWidth: 4},
		{Point: Pt(10, 0)},
	}}
	got, err := Split(p, []Param{0.5})
	require.NoError(t, err)
	quarter := math.Tan(math.Pi / 8)
	want := []Polyline{
		{Vertices: []Vertex{
			{Point: Pt(0, 0), Bulge: quarter, StartWidth: 2, EndWidth: 3},
			{Point: Pt(5, -5)},
		}},
		{Vertices: []Vertex{
			{Point: Pt(5, -5), Bulge: quarter, StartWidth: 3, EndWidth: 4},
			{Point: Pt(10, 0)},
		}},
	}
	diff(t, want, got, approx)
	for _, piece := range got {
		assert.InDelta(t, 2.5*math.Pi, piece.Length(), 1e-9)
	}
}

func TestSplitAtIntersections(t *testing.T) {
	ps := []Polyline{
		pl(0, 0, 10, 0),
		pl(5, -5, 5, 5),
		pl(20, 20, 30, 30),
		// Touches the first polyline at its end only.
		pl(10, 0, 10, 10),
	}
	got, err := SplitAtIntersections(context.Background(), ps, BatchOptions{})
	require.NoError(t, err)
	require.Len(t, got, len(ps))

	want := [][][]Point{
		{{Pt(0, 0), Pt(5, 0)}, {Pt(5, 0), Pt(10, 0)}},
		{{Pt(5, -5), Pt(5, 0)}, {Pt(5, 0), Pt(5, 5)}},
		{{Pt(20, 20), Pt(30, 30)}},
		{{Pt(10, 0), Pt(10, 10)}},
	}
	for i, pieces := range got {
		var pts [][]Point
		for _, piece := range pieces {
			pts = append(pts, points(piece))
		}
		diff(t, want[i], pts)
	}
}

func TestSplitAtIntersectionsBatch(t *testing.T) {
	ps := []Polyline{
		pl(0, 0, 10, 0),
		pl(5, -5, 5, 5),
		pl(0, 2, 10, 2),
	}
	var calls []int
	_, err := SplitAtIntersections(context.Background(), ps, BatchOptions{
		Workers:  1,
		Progress: func(i int) { calls = append(calls, i) },
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, calls)

	ctx, cancel := context.WithCancel(context.Background())
	calls = nil
	_, err = SplitAtIntersections(ctx, ps, BatchOptions{
		Workers: 1,
		Progress: func(i int) {
			calls = append(calls, i)
			cancel()
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, calls, 1)
}
