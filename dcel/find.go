package dcel

import (
	"math"

	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/polygon/simple"
)

// Locate implements spec.md §4.7's brute-force point location: scan every
// half-edge for an on-edge hit first (returning the half-edge the
// edge-return discipline favors — the direction whose endpoint is
// lexicographically greater), then fall back to ray-casting each face's
// outer boundary minus its holes.
func (s *Subdivision) Locate(q point.Point[float64], epsilon float64) (FaceID, HalfEdgeID) {
	if he, ok := s.locateOnEdge(q, epsilon); ok {
		return s.HalfEdges[he].Face, he
	}
	for id := 1; id < len(s.Faces); id++ {
		if s.faceContains(FaceID(id), q) {
			return FaceID(id), NoHalfEdge
		}
	}
	return FaceID(0), NoHalfEdge
}

// LocateOnEdge exposes the on-edge half of Locate for accelerated
// searchers (subdivisionsearch.Trapezoidal) that want to check the
// edge-exact case cheaply without invoking the full ray-casting fallback.
func (s *Subdivision) LocateOnEdge(q point.Point[float64], epsilon float64) (HalfEdgeID, bool) {
	return s.locateOnEdge(q, epsilon)
}

// HalfEdgeFace returns the face a half-edge belongs to.
func (s *Subdivision) HalfEdgeFace(e HalfEdgeID) FaceID {
	return s.HalfEdges[e].Face
}

func (s *Subdivision) locateOnEdge(q point.Point[float64], epsilon float64) (HalfEdgeID, bool) {
	for i := 0; i < len(s.HalfEdges); i += 2 {
		e := HalfEdgeID(i)
		a := s.Vertices[s.HalfEdges[e].Origin].Point
		b := s.Vertices[s.Destination(e)].Point
		if !onSegment(a, b, q, epsilon) {
			continue
		}
		if preferOutgoing(a, b) {
			return e, true
		}
		return s.HalfEdges[e].Twin, true
	}
	return NoHalfEdge, false
}

// preferOutgoing reports whether the a->b direction is the one the
// edge-return discipline favors over its twin: lexicographically
// increasing, x primary then y.
func preferOutgoing(a, b point.Point[float64]) bool {
	if a.X() != b.X() {
		return b.X() > a.X()
	}
	return b.Y() > a.Y()
}

func onSegment(a, b, q point.Point[float64], epsilon float64) bool {
	abx, aby := b.X()-a.X(), b.Y()-a.Y()
	aqx, aqy := q.X()-a.X(), q.Y()-a.Y()
	length := math.Hypot(abx, aby)
	if length == 0 {
		return q.DistanceToPoint(a) <= epsilon
	}
	cross := abx*aqy - aby*aqx
	if math.Abs(cross)/length > epsilon {
		return false
	}
	dot := aqx*abx + aqy*aby
	return dot >= -epsilon*length && dot <= length*length+epsilon*length
}

func (s *Subdivision) faceContains(id FaceID, q point.Point[float64]) bool {
	f := s.Faces[id]
	if f.OuterEdge == NoHalfEdge {
		return false
	}
	if !simple.PointInPolygon(q, s.cyclePoints(f.OuterEdge)) {
		return false
	}
	for _, innerStart := range f.InnerEdges {
		if simple.PointInPolygon(q, s.cyclePoints(innerStart)) {
			return false
		}
	}
	return true
}

func (s *Subdivision) cyclePoints(start HalfEdgeID) []point.Point[float64] {
	var pts []point.Point[float64]
	e := start
	for {
		pts = append(pts, s.Vertices[s.HalfEdges[e].Origin].Point)
		e = s.HalfEdges[e].Next
		if e == start {
			break
		}
	}
	return pts
}
