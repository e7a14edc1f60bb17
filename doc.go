// Package polyclean provides cleaning and topology routines for 2D
// polylines made of straight and circular-arc segments, the kind found in
// CAD drawings.
//
// # Features
//
// We provide the following notable features:
//
//   - Removing duplicate, redundant and colinear vertices (see
//     [RemoveDuplicateVertices], [ReducePoints] and [RemoveColinearPoints])
//   - Making polylines run in a consistent direction (see [SetDirection])
//   - Intersecting polylines and detecting self-intersections (see
//     [Intersect] and [SelfIntersections])
//   - Splitting polylines (see [Split] and [SplitAtIntersections])
//   - Snapping loose ends onto nearby polylines (see [SnapEndpoints] and
//     [TrimExtend])
//   - Nearest-point queries across curves of different kinds (see [Curve],
//     [ClosestAmong] and [Landing])
//   - Flattening arcs to lines (see [FlattenArcs])
//
// # Polylines, segments, and curves
//
// A [Polyline] is a sequence of [Vertex] values. Each vertex stores the bulge
// of the segment that starts at it: 0 for a straight segment, tan(θ/4) for a
// circular arc that sweeps θ radians. Positive bulges turn counter-clockwise
// in a y-up coordinate system. A closed polyline has an additional segment
// from its last vertex back to its first.
//
// A [Segment] is a single segment of a polyline, described by its end points
// and bulge. It is a tagged union of the primitive curves [Line] and [Arc],
// which it converts to losslessly.
//
// Locations on a polyline are identified by a [Param]. Its integer part is
// the index of a segment and its fractional part the position within that
// segment, so that parameters order points along the polyline regardless of
// the kinds of segments involved.
//
// [Curve] is implemented by [Line], [Arc], [Segment] and [Polyline], and
// answers nearest-point queries.
//
// # Values and tolerances
//
// Polylines are values. No function in this package modifies its arguments;
// functions that clean or split polylines return new ones, together with a
// count or flag that tells the caller whether anything changed. Replacing the
// originals is the caller's responsibility. [Batch] applies such functions
// to many polylines concurrently.
//
// Tolerances for the cleaning operations are passed explicitly. Internally,
// points are considered equal when they are within [Epsilon] of each other,
// scaled by the magnitude of their coordinates.
//
// # Degenerate polylines
//
// Open polylines with fewer than two vertices and closed polylines with
// fewer than three have no segments. The cleaning operations return them
// unchanged, nearest-point queries report that they found no point, and
// evaluating them fails with [ErrDegenerate].
package polyclean
