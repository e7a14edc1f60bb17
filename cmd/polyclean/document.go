package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"honnef.co/go/polyclean"
)

type jsonDocument struct {
	Polylines []jsonPolyline `json:"polylines"`
}

type jsonPolyline struct {
	Vertices []jsonVertex `json:"vertices"`
	Closed   bool         `json:"closed,omitempty"`
	polyclean.Meta
}

type jsonVertex struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Bulge      float64 `json:"bulge,omitempty"`
	StartWidth float64 `json:"start_width,omitempty"`
	EndWidth   float64 `json:"end_width,omitempty"`
}

func readDocument(r io.Reader) ([]polyclean.Polyline, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc jsonDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "reading polylines")
	}
	ps := make([]polyclean.Polyline, len(doc.Polylines))
	for i, jp := range doc.Polylines {
		p := polyclean.Polyline{
			Vertices: make([]polyclean.Vertex, len(jp.Vertices)),
			Closed:   jp.Closed,
			Meta:     jp.Meta,
		}
		for j, jv := range jp.Vertices {
			p.Vertices[j] = polyclean.Vertex{
				Point:      polyclean.Pt(jv.X, jv.Y),
				Bulge:      jv.Bulge,
				StartWidth: jv.StartWidth,
				EndWidth:   jv.EndWidth,
			}
		}
		ps[i] = p
	}
	return ps, nil
}

func writeDocument(w io.Writer, ps []polyclean.Polyline) error {
	doc := jsonDocument{Polylines: make([]jsonPolyline, len(ps))}
	for i, p := range ps {
		jp := jsonPolyline{
			Vertices: make([]jsonVertex, len(p.Vertices)),
			Closed:   p.Closed,
			Meta:     p.Meta,
		}
		for j, v := range p.Vertices {
			jp.Vertices[j] = jsonVertex{
				X:          v.Point.X,
				Y:          v.Point.Y,
				Bulge:      v.Bulge,
				StartWidth: v.StartWidth,
				EndWidth:   v.EndWidth,
			}
		}
		doc.Polylines[i] = jp
	}
	return writeJSON(w, doc)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "writing output")
}

// writeSVG draws the polylines as an SVG document. The y axis is flipped so
// that the drawing appears the right way up.
func writeSVG(w io.Writer, ps []polyclean.Polyline) error {
	r := polyclean.Extents(ps)
	if r.IsEmpty() {
		r = polyclean.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
	}
	margin := max(r.Width(), r.Height(), 1) * 0.05
	r = r.Inflate(margin, margin)
	stroke := max(r.Width(), r.Height()) / 500

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg viewBox="%g %g %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n",
		r.X0, -r.Y1, r.Width(), r.Height())
	fmt.Fprintf(bw, `<g transform="scale(1,-1)" fill="none" stroke="black" stroke-width="%g">`+"\n", stroke)
	for _, p := range ps {
		if len(p.Vertices) == 0 {
			continue
		}
		fmt.Fprint(bw, `<path d="`)
		if err := polyclean.WriteSVG(bw, p, polyclean.SVGOptions{MaxPrecision: 6}); err != nil {
			return err
		}
		fmt.Fprint(bw, `" />`+"\n")
	}
	fmt.Fprint(bw, "</g>\n</svg>\n")
	return errors.Wrap(bw.Flush(), "writing output")
}
