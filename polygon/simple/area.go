// Package simple implements the geo.convex_hull, geo.point_in_polygon,
// geo.polygon_area, and geo.polygon_centroid operations on simple (possibly
// non-convex, non-self-intersecting) polygons.
package simple

import (
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// Area2XSigned calculates twice the signed area of a simple polygon defined
// by a series of points, using the [Shoelace Formula]. The result is
// positive if points are ordered counterclockwise, negative if clockwise,
// and zero if the polygon is degenerate (fewer than 3 vertices, or
// collinear points).
//
// The input points are assumed to form a closed polygon; the last point
// is implicitly connected back to the first.
//
// [Shoelace Formula]: https://en.wikipedia.org/wiki/Shoelace_formula
func Area2XSigned[T types.SignedNumber](points ...point.Point[T]) T {
	n := len(points)
	if n < 3 {
		return 0
	}

	var area T
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += (p1.X() * p2.Y()) - (p2.X() * p1.Y())
	}

	return area
}

// Area returns the unsigned area of the polygon defined by points
// (spec.md §C's geo.polygon_area).
func Area[T types.SignedNumber](points ...point.Point[T]) float64 {
	signed := Area2XSigned(points...)
	area := float64(signed) / 2
	if area < 0 {
		return -area
	}
	return area
}

// Centroid returns the centroid of the polygon defined by points, using the
// standard signed-area-weighted vertex average (spec.md §C's
// geo.polygon_centroid). Returns false if the polygon is degenerate (fewer
// than 3 vertices or zero area).
func Centroid[T types.SignedNumber](points ...point.Point[T]) (point.Point[float64], bool) {
	n := len(points)
	if n < 3 {
		return point.Point[float64]{}, false
	}

	signedArea := float64(Area2XSigned(points...)) / 2
	if signedArea == 0 {
		return point.Point[float64]{}, false
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		p1 := points[i].AsFloat64()
		p2 := points[(i+1)%n].AsFloat64()
		cross := p1.X()*p2.Y() - p2.X()*p1.Y()
		cx += (p1.X() + p2.X()) * cross
		cy += (p1.Y() + p2.Y()) * cross
	}

	factor := 1 / (6 * signedArea)
	return point.New(cx*factor, cy*factor), true
}
