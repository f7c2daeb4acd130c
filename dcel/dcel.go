// Package dcel implements a doubly-connected edge list planar subdivision:
// construction from an arbitrary line collection with intersection
// splitting, face derivation, validation, and point location.
package dcel

import (
	"fmt"

	"github.com/geoplane/geom2d/point"
)

// VertexID, HalfEdgeID, and FaceID index into a Subdivision's parallel
// arenas. This repo uses dense integer ids rather than pointers, per
// spec.md §9's guidance for arena-indexed implementations.
type VertexID int
type HalfEdgeID int
type FaceID int

// NoHalfEdge and NoFace stand in for the Option<Id> absent-reference cases
// spec.md §9 calls out: a vertex that has not yet gained an outgoing edge,
// or a face with no outer boundary (the unbounded face).
const (
	NoHalfEdge HalfEdgeID = -1
	NoFace     FaceID     = -1
)

// Vertex is a subdivision vertex: a point plus one of its outgoing
// half-edges (any one; the rest are reachable by twin/next rotation).
type Vertex struct {
	Point        point.Point[float64]
	OutgoingEdge HalfEdgeID
}

// HalfEdge is one direction of a subdivision edge. Face is the face lying
// to the left when walking Origin -> the twin's Origin with y pointing up.
type HalfEdge struct {
	Origin     VertexID
	Twin       HalfEdgeID
	Next, Prev HalfEdgeID
	Face       FaceID
}

// Face is a boundary cycle's interior. OuterEdge is absent (NoHalfEdge)
// only for face 0, the unbounded face. InnerEdges holds one representative
// half-edge per hole boundary.
type Face struct {
	OuterEdge  HalfEdgeID
	InnerEdges []HalfEdgeID
}

// Subdivision is a fully linked, (optionally) validated planar subdivision.
type Subdivision struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face
}

// Destination returns the vertex a half-edge points to.
func (s *Subdivision) Destination(e HalfEdgeID) VertexID {
	return s.HalfEdges[s.HalfEdges[e].Twin].Origin
}

// addVertex appends a new vertex with no outgoing edge yet and returns its id.
func (s *Subdivision) addVertex(p point.Point[float64]) VertexID {
	s.Vertices = append(s.Vertices, Vertex{Point: p, OutgoingEdge: NoHalfEdge})
	return VertexID(len(s.Vertices) - 1)
}

// addHalfEdgePair allocates two twin half-edges between origin a and origin
// b (a->b and b->a), leaving Next/Prev/Face unset for the caller's assembly
// pass to fill in.
func (s *Subdivision) addHalfEdgePair(a, b VertexID) (HalfEdgeID, HalfEdgeID) {
	e1 := HalfEdgeID(len(s.HalfEdges))
	e2 := e1 + 1
	s.HalfEdges = append(s.HalfEdges,
		HalfEdge{Origin: a, Twin: e2, Next: NoHalfEdge, Prev: NoHalfEdge, Face: NoFace},
		HalfEdge{Origin: b, Twin: e1, Next: NoHalfEdge, Prev: NoHalfEdge, Face: NoFace},
	)
	return e1, e2
}

// String renders a half-edge as its origin -> destination coordinate pair,
// useful in debug traces and panics.
func (s *Subdivision) String(e HalfEdgeID) string {
	he := s.HalfEdges[e]
	o := s.Vertices[he.Origin].Point
	d := s.Vertices[s.Destination(e)].Point
	return fmt.Sprintf("%s -> %s", o.String(), d.String())
}
