package simple

import (
	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// PointInPolygon reports whether q lies inside or on the boundary of the
// simple polygon defined by points (spec.md §C's geo.point_in_polygon),
// using the ray-casting even-odd rule: a point exactly on an edge is always reported as
// contained, and the edge-crossing parity of a horizontal ray cast from q
// determines containment otherwise.
func PointInPolygon[T types.SignedNumber](q point.Point[T], points []point.Point[T], opts ...options.GeometryOptionsFunc) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	for _, edge := range ToLineSegments(points...) {
		if loc := edge.Locate(q, opts...); loc == types.Start || loc == types.Between || loc == types.End {
			return true
		}
	}

	qf := q.AsFloat64()
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := points[i].AsFloat64()
		pj := points[j].AsFloat64()

		if (pi.Y() > qf.Y()) != (pj.Y() > qf.Y()) {
			xCross := (pj.X()-pi.X())*(qf.Y()-pi.Y())/(pj.Y()-pi.Y()) + pi.X()
			if qf.X() < xCross {
				inside = !inside
			}
		}
	}

	return inside
}
