package simple

import (
	"slices"

	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// ConvexHull computes the [convex hull] of a finite set of points using the
// [Graham Scan] algorithm (spec.md §C's geo.convex_hull), returning the hull
// vertices in counterclockwise order.
//
// If fewer than 3 points are given, the input is returned unchanged.
//
// [Graham Scan]: https://en.wikipedia.org/wiki/Graham_scan
// [convex hull]: https://en.wikipedia.org/wiki/Convex_hull
func ConvexHull[T types.SignedNumber](points ...point.Point[T]) []point.Point[T] {
	if len(points) < 3 {
		return points
	}

	_, lowestPoint := findLowestLeftestPoint(points...)

	sortedPoints := make([]point.Point[T], len(points))
	copy(sortedPoints, points)
	orderPointsByAngleAboutLowestPoint(lowestPoint, sortedPoints)

	hull := make([]point.Point[T], 0, len(sortedPoints))
	hull = append(hull, sortedPoints[0], sortedPoints[1])

	for i := 2; i < len(sortedPoints); i++ {
		for len(hull) > 1 {
			top := hull[len(hull)-1]
			nextToTop := hull[len(hull)-2]

			if point.Orientation(nextToTop, top, sortedPoints[i]) != point.Clockwise {
				break
			}

			hull = hull[:len(hull)-1]
		}
		hull = append(hull, sortedPoints[i])
	}

	return hull
}

// findLowestLeftestPoint identifies the point with the lowest y-coordinate,
// breaking ties by the lowest x-coordinate, returning both its index and
// value.
func findLowestLeftestPoint[T types.SignedNumber](points ...point.Point[T]) (int, point.Point[T]) {
	lowestIndex := 0
	lowestPoint := points[0]

	for i := 1; i < len(points); i++ {
		current := points[i]
		if current.Y() < lowestPoint.Y() || (current.Y() == lowestPoint.Y() && current.X() < lowestPoint.X()) {
			lowestIndex = i
			lowestPoint = current
		}
	}
	return lowestIndex, lowestPoint
}

// orderPointsByAngleAboutLowestPoint sorts points by angle about
// lowestPoint, breaking ties between collinear points by increasing
// distance from lowestPoint — the ordering the Graham scan needs.
func orderPointsByAngleAboutLowestPoint[T types.SignedNumber](lowestPoint point.Point[T], points []point.Point[T]) {
	slices.SortStableFunc(points, func(a, b point.Point[T]) int {
		switch {
		case a.Eq(lowestPoint):
			return -1
		case b.Eq(lowestPoint):
			return 1
		}

		relativeA := a.Translate(lowestPoint.Negate())
		relativeB := b.Translate(lowestPoint.Negate())
		crossProduct := relativeA.CrossProduct(relativeB)

		switch {
		case crossProduct > 0:
			return -1
		case crossProduct < 0:
			return 1
		}

		distAtoLP := lowestPoint.DistanceSquaredToPoint(a)
		distBtoLP := lowestPoint.DistanceSquaredToPoint(b)

		switch {
		case distAtoLP < distBtoLP:
			return -1
		case distAtoLP > distBtoLP:
			return 1
		default:
			return 0
		}
	})
}
