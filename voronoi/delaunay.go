package voronoi

import (
	"github.com/geoplane/geom2d/dcel"
	"github.com/geoplane/geom2d/linesegment"
	"github.com/geoplane/geom2d/point"
)

// FindDelaunay returns the Delaunay triangulation of points as pairs of
// indices into points, the dual graph of the Voronoi diagram computed by
// FindAll.
func FindDelaunay(points []point.Point[float64], opts ...Option) ([]DelaunayEdge, error) {
	res, err := FindAll(points, opts...)
	if err != nil {
		return nil, err
	}
	return res.Delaunay, nil
}

// FindDelaunaySubdivision runs Fortune's sweep and assembles the resulting
// Delaunay edges into a planar subdivision.
func FindDelaunaySubdivision(points []point.Point[float64], opts ...Option) (*dcel.Subdivision, error) {
	res, err := FindAll(points, opts...)
	if err != nil {
		return nil, err
	}
	segs := make([]linesegment.LineSegment[float64], 0, len(res.Delaunay))
	for _, e := range res.Delaunay {
		a := points[e.Site1]
		b := points[e.Site2]
		if a.Eq(b) {
			continue
		}
		segs = append(segs, linesegment.New(a, b))
	}
	return dcel.FromLines(segs)
}
