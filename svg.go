package polyclean

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a polyline to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(p Polyline, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, p, opts)
	return sb.String()
}

// WriteSVG converts a polyline to a string of SVG path commands and writes
// it to w. Straight segments become L commands and arcs become A commands;
// closed polylines end in Z. A polyline without segments produces at most a
// single M command.
//
// Coordinates are written as they are. SVG's y axis points down, so arcs
// with a positive bulge appear clockwise when rendered.
func WriteSVG(w io.Writer, p Polyline, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	if len(p.Vertices) == 0 {
		return nil
	}

	start := p.StartPoint()
	writef("M%s,%s", format(start.X), format(start.Y))
	for _, seg := range p.Segments() {
		switch seg.Kind {
		case LineKind:
			writef(" L%s,%s", format(seg.P1.X), format(seg.P1.Y))
		case ArcKind:
			a := seg.Arc()
			large, sweep := 0, 0
			if math.Abs(a.SweepAngle) > math.Pi {
				large = 1
			}
			if a.SweepAngle > 0 {
				sweep = 1
			}
			writef(" A%s,%s 0 %d %d %s,%s",
				format(a.Radius), format(a.Radius),
				large, sweep,
				format(seg.P1.X), format(seg.P1.Y))
		default:
			panic("unreachable")
		}
	}
	if p.Closed && !p.IsDegenerate() {
		writef(" Z")
	}
	return err
}
