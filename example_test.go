package polyclean_test

import (
	"context"
	"fmt"

	"honnef.co/go/polyclean"
)

func Example() {
	p := polyclean.NewPolyline(
		polyclean.Pt(0, 0),
		polyclean.Pt(0, 0),
		polyclean.Pt(5, 0.2),
		polyclean.Pt(10, 0),
		polyclean.Pt(10, 10),
	)
	p, dups := polyclean.RemoveDuplicateVertices(p, 0)
	p, reduced := polyclean.ReducePoints(p, 1, polyclean.DefaultReduceOptions)
	fmt.Println(dups, reduced)
	for _, v := range p.Vertices {
		fmt.Println(v.Point)
	}
	// Output:
	// 1 1
	// (0, 0)
	// (10, 0)
	// (10, 10)
}

func ExampleSetDirection() {
	p := polyclean.NewPolyline(polyclean.Pt(10, 0), polyclean.Pt(0, 0))
	p, reversed := polyclean.SetDirection(p, polyclean.LeftToRight)
	fmt.Println(reversed, p.StartPoint())
	_, reversed = polyclean.SetDirection(p, polyclean.LeftToRight)
	fmt.Println(reversed)
	// Output:
	// true (0, 0)
	// false
}

func ExampleSelfIntersections() {
	bowtie := polyclean.NewPolyline(
		polyclean.Pt(0, 0),
		polyclean.Pt(10, 10),
		polyclean.Pt(10, 0),
		polyclean.Pt(0, 10),
	)
	bowtie.Closed = true
	for _, x := range polyclean.SelfIntersections(bowtie) {
		fmt.Println(x.Point, x.ParamA, x.ParamB)
	}
	// Output:
	// (5, 5) 0.5 2.5
}

func ExampleSVG() {
	// A semicircle from (0, 0) to (10, 0), followed by a straight segment.
	p, err := polyclean.NewPolylineBulge(false,
		0, 0, 1,
		10, 0, 0,
		10, 5, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(polyclean.SVG(p, polyclean.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M0,0 A5,5 0 0 1 10,0 L10,5
}

func ExampleBatch() {
	ps := []polyclean.Polyline{
		polyclean.NewPolyline(polyclean.Pt(0, 0), polyclean.Pt(5, 0), polyclean.Pt(10, 0)),
		polyclean.NewPolyline(polyclean.Pt(0, 0), polyclean.Pt(5, 5)),
	}
	results, err := polyclean.Batch(context.Background(), ps, polyclean.BatchOptions{},
		func(i int, p polyclean.Polyline) (polyclean.Result, error) {
			out, n := polyclean.RemoveColinearPoints(p, 1e-9)
			if n == 0 {
				return polyclean.Keep, nil
			}
			return polyclean.Replace(n, out), nil
		})
	if err != nil {
		panic(err)
	}
	for i, r := range results {
		fmt.Println(i, r.Retire, r.Removed)
	}
	// Output:
	// 0 true 1
	// 1 false 0
}
