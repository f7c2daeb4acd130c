package simple

import (
	"fmt"

	"github.com/geoplane/geom2d/linesegment"
	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// IsWellFormed checks whether points defines a well-formed simple polygon:
// at least 3 points, non-zero area, and no self-intersecting edges other
// than the shared vertices consecutive edges are expected to meet at.
func IsWellFormed[T types.SignedNumber](points []point.Point[T], opts ...options.GeometryOptionsFunc) (bool, error) {
	if len(points) < 3 {
		return false, fmt.Errorf("polygon must have at least 3 points")
	}

	if Area2XSigned(points...) == 0 {
		return false, fmt.Errorf("polygon has zero area")
	}

	segments := ToLineSegments(points...)
	crossings := linesegment.FindIntersectionsSweep(segments, opts...)

	for _, crossing := range crossings {
		// A crossing shared by exactly two segments at one of their
		// endpoints is the ordinary vertex two consecutive edges share;
		// anything else (three+ segments, or an interior crossing) means
		// the boundary is self-intersecting.
		if len(crossing.Segments) == 2 {
			allEndpoints := true
			for _, s := range crossing.Segments {
				if s.Location != types.Start && s.Location != types.End {
					allEndpoints = false
					break
				}
			}
			if allEndpoints {
				continue
			}
		}
		return false, fmt.Errorf("polygon has self-intersecting edges")
	}

	return true, nil
}

// ToLineSegments converts a closed polygon's vertices into its boundary
// edges, wrapping the last point back to the first. Degenerate (zero
// length) edges from repeated points are skipped.
func ToLineSegments[T types.SignedNumber](points ...point.Point[T]) []linesegment.LineSegment[T] {
	var segments []linesegment.LineSegment[T]
	n := len(points)

	if n < 2 {
		return segments
	}

	for i := 0; i < n; i++ {
		start := points[i]
		end := points[(i+1)%n]

		if start.Eq(end) {
			continue
		}

		segments = append(segments, linesegment.New(start, end))
	}

	return segments
}
