package main

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"honnef.co/go/polyclean"
)

// outcome is what an op produces: either a new set of polylines or a
// report.
type outcome struct {
	polylines []polyclean.Polyline
	removed   int
	report    any
}

type op struct {
	help string
	run  func(ctx context.Context, cfg polyclean.Config, ps []polyclean.Polyline) (outcome, error)
}

var ops = map[string]op{
	"clean": {
		"merge duplicate vertices, then drop polylines without length",
		cleanOp,
	},
	"reduce": {
		"remove vertices within reduce_epsilon of a straight run",
		each(func(cfg polyclean.Config, p polyclean.Polyline) polyclean.Result {
			q, n := polyclean.ReducePoints(p, cfg.ReduceEpsilon, polyclean.ReduceOptions{Iterate: cfg.ReduceIterate})
			return changed(q, n)
		}),
	},
	"colinear": {
		"remove vertices whose segments turn by at most colinear_angle",
		each(func(cfg polyclean.Config, p polyclean.Polyline) polyclean.Result {
			return changed(polyclean.RemoveColinearPoints(p, cfg.ColinearAngle))
		}),
	},
	"direction": {
		"make every polyline run in the configured direction",
		directionOp,
	},
	"split": {
		"cut polylines where they meet each other",
		splitOp,
	},
	"trimextend": {
		"snap end points onto other polylines within snap_epsilon",
		trimExtendOp,
	},
	"selfcheck": {
		"report the points at which polylines cross themselves",
		selfCheckOp,
	},
	"zerolength": {
		"drop polylines without length",
		each(func(_ polyclean.Config, p polyclean.Polyline) polyclean.Result {
			if polyclean.IsZeroLength(p) {
				return polyclean.Replace(1)
			}
			return polyclean.Keep
		}),
	},
	"flatten": {
		"replace arcs with flatten_segments straight segments",
		each(func(cfg polyclean.Config, p polyclean.Polyline) polyclean.Result {
			if !hasArc(p) {
				return polyclean.Keep
			}
			return polyclean.Replace(0, polyclean.FlattenArcs(p, cfg.FlattenSegments))
		}),
	},
	"close": {
		"close open polylines with a vertex at their start",
		each(func(_ polyclean.Config, p polyclean.Polyline) polyclean.Result {
			q, ok := polyclean.CloseWithVertex(p)
			if !ok {
				return polyclean.Keep
			}
			return polyclean.Replace(0, q)
		}),
	},
	"info": {
		"report vertex counts, lengths and extents",
		infoOp,
	},
}

func opNames() []string {
	return slices.Sorted(maps.Keys(ops))
}

// changed turns the outcome of a per-polyline cleanup into a batch result.
func changed(p polyclean.Polyline, removed int) polyclean.Result {
	if removed == 0 {
		return polyclean.Keep
	}
	return polyclean.Replace(removed, p)
}

// hasArc reports whether any segment of p is an arc.
func hasArc(p polyclean.Polyline) bool {
	for _, seg := range p.Segments() {
		if seg.Kind == polyclean.ArcKind {
			return true
		}
	}
	return false
}

func batchOptions(cfg polyclean.Config) polyclean.BatchOptions {
	log := polyclean.Logger()
	return polyclean.BatchOptions{
		Workers: cfg.Workers,
		Progress: func(i int) {
			log.Debug("processed", slog.Int("polyline", i))
		},
	}
}

// each lifts a per-polyline operation to the whole set.
func each(f func(cfg polyclean.Config, p polyclean.Polyline) polyclean.Result) func(context.Context, polyclean.Config, []polyclean.Polyline) (outcome, error) {
	return func(ctx context.Context, cfg polyclean.Config, ps []polyclean.Polyline) (outcome, error) {
		results, err := polyclean.Batch(ctx, ps, batchOptions(cfg), func(_ int, p polyclean.Polyline) (polyclean.Result, error) {
			return f(cfg, p), nil
		})
		if err != nil {
			return outcome{}, err
		}
		return apply(ps, results), nil
	}
}

// apply retires and replaces polylines according to the results of a batch.
func apply(ps []polyclean.Polyline, results []polyclean.Result) outcome {
	var out outcome
	for i, r := range results {
		out.removed += r.Removed
		if !r.Retire {
			out.polylines = append(out.polylines, ps[i])
			continue
		}
		out.polylines = append(out.polylines, r.Replace...)
	}
	return out
}

func cleanOp(ctx context.Context, cfg polyclean.Config, ps []polyclean.Polyline) (outcome, error) {
	dedupe := each(func(cfg polyclean.Config, p polyclean.Polyline) polyclean.Result {
		return changed(polyclean.RemoveDuplicateVertices(p, cfg.DuplicateTolerance))
	})
	out, err := dedupe(ctx, cfg, ps)
	if err != nil {
		return outcome{}, err
	}
	var dropped int
	out.polylines, dropped = polyclean.RemoveZeroLength(out.polylines)
	if dropped > 0 {
		polyclean.Logger().Debug("dropped polylines without length", slog.Int("count", dropped))
	}
	return out, nil
}

func directionOp(ctx context.Context, cfg polyclean.Config, ps []polyclean.Polyline) (outcome, error) {
	if cfg.Direction == 0 {
		return outcome{}, errors.New("no direction configured")
	}
	return each(func(cfg polyclean.Config, p polyclean.Polyline) polyclean.Result {
		q, reversed := polyclean.SetDirection(p, cfg.Direction)
		if !reversed {
			return polyclean.Keep
		}
		return polyclean.Replace(0, q)
	})(ctx, cfg, ps)
}

func splitOp(ctx context.Context, cfg polyclean.Config, ps []polyclean.Polyline) (outcome, error) {
	pieces, err := polyclean.SplitAtIntersections(ctx, ps, batchOptions(cfg))
	if err != nil {
		return outcome{}, err
	}
	return outcome{polylines: slices.Concat(pieces...)}, nil
}

func trimExtendOp(ctx context.Context, cfg polyclean.Config, ps []polyclean.Polyline) (outcome, error) {
	out, n, err := polyclean.TrimExtend(ctx, ps, cfg.SnapEpsilon, batchOptions(cfg))
	if err != nil {
		return outcome{}, err
	}
	polyclean.Logger().Debug("snapped", slog.Int("polylines", n))
	return outcome{polylines: out}, nil
}

type selfIntersection struct {
	Index  int            `json:"index"`
	Points []jsonCrossing `json:"points"`
}

type jsonCrossing struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ParamA float64 `json:"param_a"`
	ParamB float64 `json:"param_b"`
}

func selfCheckOp(ctx context.Context, cfg polyclean.Config, ps []polyclean.Polyline) (outcome, error) {
	found := make([][]polyclean.Intersection, len(ps))
	_, err := polyclean.Batch(ctx, ps, batchOptions(cfg), func(i int, p polyclean.Polyline) (polyclean.Result, error) {
		found[i] = polyclean.SelfIntersections(p)
		return polyclean.Keep, nil
	})
	if err != nil {
		return outcome{}, err
	}
	report := []selfIntersection{}
	for i, xs := range found {
		if len(xs) == 0 {
			continue
		}
		si := selfIntersection{Index: i}
		for _, x := range xs {
			si.Points = append(si.Points, jsonCrossing{
				X:      x.Point.X,
				Y:      x.Point.Y,
				ParamA: float64(x.ParamA),
				ParamB: float64(x.ParamB),
			})
		}
		report = append(report, si)
	}
	return outcome{report: report}, nil
}

type polylineInfo struct {
	Index            int      `json:"index"`
	Layer            string   `json:"layer,omitempty"`
	Vertices         int      `json:"vertices"`
	Segments         int      `json:"segments"`
	Closed           bool     `json:"closed"`
	Length           float64  `json:"length"`
	Extents          *extents `json:"extents,omitempty"`
	SelfIntersecting bool     `json:"self_intersecting"`
}

type extents struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

func newExtents(r polyclean.Rect) *extents {
	if r.IsEmpty() {
		return nil
	}
	return &extents{Min: [2]float64{r.X0, r.Y0}, Max: [2]float64{r.X1, r.Y1}}
}

type infoReport struct {
	Polylines []polylineInfo `json:"polylines"`
	Extents   *extents       `json:"extents,omitempty"`
}

func infoOp(ctx context.Context, cfg polyclean.Config, ps []polyclean.Polyline) (outcome, error) {
	infos := make([]polylineInfo, len(ps))
	_, err := polyclean.Batch(ctx, ps, batchOptions(cfg), func(i int, p polyclean.Polyline) (polyclean.Result, error) {
		infos[i] = polylineInfo{
			Index:            i,
			Layer:            p.Meta.Layer,
			Vertices:         p.NumVertices(),
			Segments:         p.NumSegments(),
			Closed:           p.Closed,
			Length:           p.Length(),
			Extents:          newExtents(p.BoundingBox()),
			SelfIntersecting: polyclean.IsSelfIntersecting(p),
		}
		return polyclean.Keep, nil
	})
	if err != nil {
		return outcome{}, err
	}
	return outcome{report: infoReport{Polylines: infos, Extents: newExtents(polyclean.Extents(ps))}}, nil
}
