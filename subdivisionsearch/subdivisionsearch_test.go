package subdivisionsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplane/geom2d/dcel"
	"github.com/geoplane/geom2d/linesegment"
	"github.com/geoplane/geom2d/point"
)

func triforce() *dcel.Subdivision {
	segs := []linesegment.LineSegment[float64]{
		linesegment.NewFromCoordinates(0.0, 0.0, 10.0, 0.0),
		linesegment.NewFromCoordinates(10.0, 0.0, 5.0, 10.0),
		linesegment.NewFromCoordinates(5.0, 10.0, 0.0, 0.0),
		linesegment.NewFromCoordinates(4.0, 2.0, 6.0, 2.0),
		linesegment.NewFromCoordinates(6.0, 2.0, 5.0, 4.0),
		linesegment.NewFromCoordinates(5.0, 4.0, 4.0, 2.0),
	}
	sub, err := dcel.FromLines(segs)
	if err != nil {
		panic(err)
	}
	return sub
}

func TestBruteForceAndTrapezoidal_Agree(t *testing.T) {
	sub := triforce()
	bf := NewBruteForce(sub, 1e-9)
	tz := NewTrapezoidal(sub, 1e-9)

	queries := []point.Point[float64]{
		point.New(4.5, 1.0),   // inside ring, below inner triangle
		point.New(4.5, 2.5),   // inside inner triangle
		point.New(4.5, 5.0),   // inside ring, above inner triangle
		point.New(-1.0, -1.0), // outside everything
		point.New(4.5, 7.0),
	}
	for _, q := range queries {
		bfFace, _ := bf.Find(q)
		tzFace, _ := tz.Find(q)
		assert.Equal(t, bfFace, tzFace, "disagreement at %s", q.String())
	}
}

// Every vertex and every half-edge midpoint must round-trip through
// Find, landing on a half-edge rather than being ray-cast into a face
// (spec.md §4.7's validation requirement for the accelerated searcher).
func TestTrapezoidal_RoundTripsVerticesAndMidpoints(t *testing.T) {
	sub := triforce()
	tz := NewTrapezoidal(sub, 1e-9)

	for _, v := range sub.Vertices {
		_, he := tz.Find(v.Point)
		assert.NotEqual(t, dcel.NoHalfEdge, he, "vertex %s did not land on an edge", v.Point.String())
	}

	for i := 0; i < len(sub.HalfEdges); i += 2 {
		e := dcel.HalfEdgeID(i)
		a := sub.Vertices[sub.HalfEdges[e].Origin].Point
		b := sub.Vertices[sub.Destination(e)].Point
		mid := point.New((a.X()+b.X())/2, (a.Y()+b.Y())/2)
		_, he := tz.Find(mid)
		assert.NotEqual(t, dcel.NoHalfEdge, he, "midpoint of edge %d did not land on an edge", i)
	}
}

func TestBruteForce_InteriorAndExterior(t *testing.T) {
	sub := triforce()
	bf := NewBruteForce(sub, 1e-9)

	face, _ := bf.Find(point.New(5.0, 3.0))
	require.NotEqual(t, dcel.FaceID(0), face)

	face, _ = bf.Find(point.New(-5.0, -5.0))
	assert.Equal(t, dcel.FaceID(0), face)
}
