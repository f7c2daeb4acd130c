// Package linesegment defines the LineSegment[T] primitive and the line
// intersection kernel (spec.md §4.2) and multi-segment intersection
// algorithms (spec.md §4.3) built on top of it.
package linesegment

import (
	"fmt"
	"math"

	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// LineSegment represents a finite straight segment between two points,
// start and end, in 2D space.
type LineSegment[T types.SignedNumber] struct {
	start point.Point[T]
	end   point.Point[T]
}

// New creates a LineSegment from two endpoints.
func New[T types.SignedNumber](start, end point.Point[T]) LineSegment[T] {
	return LineSegment[T]{start: start, end: end}
}

// NewFromCoordinates creates a LineSegment from raw endpoint coordinates.
func NewFromCoordinates[T types.SignedNumber](x1, y1, x2, y2 T) LineSegment[T] {
	return New(point.New(x1, y1), point.New(x2, y2))
}

// Start returns the segment's start point.
func (l LineSegment[T]) Start() point.Point[T] { return l.start }

// End returns the segment's end point.
func (l LineSegment[T]) End() point.Point[T] { return l.end }

// Points returns the segment's two endpoints, [start, end].
func (l LineSegment[T]) Points() []point.Point[T] {
	return []point.Point[T]{l.start, l.end}
}

// Length returns the Euclidean length of l.
func (l LineSegment[T]) Length() float64 {
	return l.start.DistanceToPoint(l.end)
}

// LengthSquared returns the squared length of l, avoiding a square root.
func (l LineSegment[T]) LengthSquared() T {
	return l.start.DistanceSquaredToPoint(l.end)
}

// Midpoint returns the midpoint of l.
func (l LineSegment[T]) Midpoint() point.Point[float64] {
	return l.start.MoveToward(l.end, 0.5)
}

// Vector returns the displacement vector from start to end (end - start).
func (l LineSegment[T]) Vector() point.Point[T] {
	return l.end.Sub(l.start)
}

// Slope returns the segment's slope (dy/dx) and whether it is defined (the
// segment is not vertical).
func (l LineSegment[T]) Slope() (slope float64, ok bool) {
	sf, ef := l.start.AsFloat64(), l.end.AsFloat64()
	dx := ef.X() - sf.X()
	if dx == 0 {
		return 0, false
	}
	return (ef.Y() - sf.Y()) / dx, true
}

// InverseSlope returns the segment's inverse slope (dx/dy) and whether it
// is defined (the segment is not horizontal).
func (l LineSegment[T]) InverseSlope() (inverseSlope float64, ok bool) {
	sf, ef := l.start.AsFloat64(), l.end.AsFloat64()
	dy := ef.Y() - sf.Y()
	if dy == 0 {
		return 0, false
	}
	return (ef.X() - sf.X()) / dy, true
}

// Angle returns the angle, in radians, of the vector from start to end,
// measured counterclockwise from the positive x-axis.
func (l LineSegment[T]) Angle() float64 {
	sf, ef := l.start.AsFloat64(), l.end.AsFloat64()
	return math.Atan2(ef.Y()-sf.Y(), ef.X()-sf.X())
}

// AsFloat64 converts l's endpoints to LineSegment[float64].
func (l LineSegment[T]) AsFloat64() LineSegment[float64] {
	return LineSegment[float64]{start: l.start.AsFloat64(), end: l.end.AsFloat64()}
}

// AsInt truncates l's endpoints and returns a LineSegment[int].
func (l LineSegment[T]) AsInt() LineSegment[int] {
	return LineSegment[int]{start: l.start.AsInt(), end: l.end.AsInt()}
}

// Translate returns l shifted by delta.
func (l LineSegment[T]) Translate(delta point.Point[T]) LineSegment[T] {
	return LineSegment[T]{start: l.start.Add(delta), end: l.end.Add(delta)}
}

// Reverse returns l with its start and end points swapped.
func (l LineSegment[T]) Reverse() LineSegment[T] {
	return LineSegment[T]{start: l.end, end: l.start}
}

// Scale scales l by factor relative to origin (spec.md-adjacent to the
// teacher's ScaleOrigin idiom, simplified to an explicit reference point).
func (l LineSegment[T]) Scale(origin point.Point[T], factor float64) LineSegment[float64] {
	of := origin.AsFloat64()
	sf, ef := l.start.AsFloat64(), l.end.AsFloat64()
	scalePoint := func(p point.Point[float64]) point.Point[float64] {
		return point.New(of.X()+(p.X()-of.X())*factor, of.Y()+(p.Y()-of.Y())*factor)
	}
	return LineSegment[float64]{start: scalePoint(sf), end: scalePoint(ef)}
}

// Eq reports whether l and other have identical endpoints, in either
// direction (AB == CD or AB == DC).
func (l LineSegment[T]) Eq(other LineSegment[T]) bool {
	return (l.start.Eq(other.start) && l.end.Eq(other.end)) ||
		(l.start.Eq(other.end) && l.end.Eq(other.start))
}

// String returns a human-readable representation of l.
func (l LineSegment[T]) String() string {
	return fmt.Sprintf("%s -> %s", l.start, l.end)
}

// Locate classifies q's position relative to l (spec.md §4.2's per-segment
// Location classification, shared with the intersection kernel), using the
// length-scaled cross-product tolerance from [point.Orientation].
//
// A point collinear with l classifies as one of Before, Start, Between,
// End, After; one exactly collinear with but outside the segment's span is
// Before or After depending on which end it is past. A point not collinear
// with l classifies as LeftOf or RightOf, as seen walking from start to end
// with y pointing up.
func (l LineSegment[T]) Locate(q point.Point[T], opts ...options.GeometryOptionsFunc) types.Location {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	switch point.Orientation(l.start, l.end, q, opts...) {
	case point.Counterclockwise:
		return types.LeftOf
	case point.Clockwise:
		return types.RightOf
	}

	sf, ef, qf := l.start.AsFloat64(), l.end.AsFloat64(), q.AsFloat64()
	dir := ef.Sub(sf)
	lenSq := dir.DotProduct(dir)
	if lenSq == 0 {
		if qf.EqEpsilon(sf, options.WithEpsilon(geoOpts.Epsilon)) {
			return types.Start
		}
		return types.After
	}

	t := qf.Sub(sf).DotProduct(dir) / lenSq
	tol := geoOpts.Epsilon / math.Sqrt(lenSq)

	switch {
	case t < -tol:
		return types.Before
	case t <= tol:
		return types.Start
	case t < 1-tol:
		return types.Between
	case t <= 1+tol:
		return types.End
	default:
		return types.After
	}
}

// DistanceSquaredToPoint returns the squared distance from q to the
// closest point on l (the segment, not the infinite line).
func (l LineSegment[T]) DistanceSquaredToPoint(q point.Point[T]) float64 {
	sf, ef, qf := l.start.AsFloat64(), l.end.AsFloat64(), q.AsFloat64()
	dir := ef.Sub(sf)
	lenSq := dir.DotProduct(dir)
	if lenSq == 0 {
		return qf.DistanceSquaredToPoint(sf)
	}
	t := qf.Sub(sf).DotProduct(dir) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := point.New(sf.X()+t*dir.X(), sf.Y()+t*dir.Y())
	return qf.DistanceSquaredToPoint(closest)
}

// DistanceToPoint returns the distance from q to the closest point on l.
func (l LineSegment[T]) DistanceToPoint(q point.Point[T]) float64 {
	return math.Sqrt(l.DistanceSquaredToPoint(q))
}
