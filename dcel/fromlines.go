package dcel

import (
	"fmt"
	"math"
	"sort"

	"github.com/geoplane/geom2d/linesegment"
	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/polygon/simple"
	"github.com/geoplane/geom2d/types"
)

// defaultSnapEpsilon is the vertex-unification tolerance used when the
// caller's epsilon is zero or negative.
const defaultSnapEpsilon = 1e-9

// faceAreaEpsilon is the signed-area tolerance below which a boundary
// cycle is treated as a zero-area antenna rather than a real outer/hole
// boundary (spec.md §4.6 step 4).
const faceAreaEpsilon = 1e-9

// vertexUnifier merges candidate vertices within epsilon of one another
// into a single id, per spec.md §4.6 step 1. It is backed by the same
// epsilon-tolerant ordered point set (point.OrderedSet, itself a
// red-black-tree-backed structure from github.com/emirpasic/gods) used
// elsewhere in this module for nearest-point queries.
type vertexUnifier struct {
	sub     *Subdivision
	set     *point.OrderedSet[float64]
	ids     map[point.Point[float64]]VertexID
	epsilon float64
}

func newVertexUnifier(sub *Subdivision, epsilon float64) *vertexUnifier {
	return &vertexUnifier{
		sub:     sub,
		set:     point.NewOrderedSet[float64](point.NewLexComparator[float64](point.YFirst)),
		ids:     make(map[point.Point[float64]]VertexID),
		epsilon: epsilon,
	}
}

func (u *vertexUnifier) get(p point.Point[float64]) VertexID {
	if near, ok := u.set.FindNearest(p); ok && near.DistanceToPoint(p) <= u.epsilon {
		return u.ids[near]
	}
	id := u.sub.addVertex(p)
	u.set.Insert(p)
	u.ids[p] = id
	return id
}

// FromLines builds a fully linked, validated planar subdivision from an
// arbitrary collection of line segments, splitting every segment at each
// mutual intersection (spec.md §4.6).
func FromLines[T types.SignedNumber](segments []linesegment.LineSegment[T], opts ...options.GeometryOptionsFunc) (*Subdivision, error) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	epsilon := geoOpts.Epsilon
	if epsilon <= 0 {
		epsilon = defaultSnapEpsilon
	}

	segsF := make([]linesegment.LineSegment[float64], len(segments))
	for i, s := range segments {
		segsF[i] = s.AsFloat64()
	}

	sub := &Subdivision{}
	unifier := newVertexUnifier(sub, epsilon)

	// Step 1: vertex unification over every endpoint and crossing.
	crossings := linesegment.FindIntersectionsSweep(segsF, opts...)
	bySegment := make(map[int][]point.Point[float64])
	for _, c := range crossings {
		for _, sl := range c.Segments {
			bySegment[sl.Index] = append(bySegment[sl.Index], c.Point)
		}
	}
	for i, s := range segsF {
		unifier.get(s.Start())
		unifier.get(s.End())
		for _, p := range bySegment[i] {
			unifier.get(p)
		}
	}

	// Step 2: edge splitting. Each segment's unified vertices are ordered
	// along it by distance from its start, then consecutive pairs become
	// sub-edges (zero-length and duplicate sub-edges are discarded).
	type edgeKey [2]VertexID
	seen := make(map[edgeKey]bool)
	var subEdges []edgeKey
	for i, s := range segsF {
		onSeg := append([]point.Point[float64]{s.Start(), s.End()}, bySegment[i]...)
		ids := make([]VertexID, len(onSeg))
		for j, p := range onSeg {
			ids[j] = unifier.get(p)
		}
		start := s.Start()
		sort.Slice(ids, func(a, b int) bool {
			da := sub.Vertices[ids[a]].Point.DistanceSquaredToPoint(start)
			db := sub.Vertices[ids[b]].Point.DistanceSquaredToPoint(start)
			return da < db
		})
		var dedup []VertexID
		for _, id := range ids {
			if len(dedup) == 0 || dedup[len(dedup)-1] != id {
				dedup = append(dedup, id)
			}
		}
		for k := 0; k+1 < len(dedup); k++ {
			a, b := dedup[k], dedup[k+1]
			key := edgeKey{a, b}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			subEdges = append(subEdges, edgeKey{a, b})
		}
	}

	// Step 3: DCEL assembly — allocate twin half-edge pairs, then sort
	// each vertex's outgoing half-edges by polar angle and link next/prev.
	type outgoing struct {
		edge  HalfEdgeID
		angle float64
	}
	byVertex := make(map[VertexID][]outgoing)
	for _, se := range subEdges {
		a, b := se[0], se[1]
		he1, he2 := sub.addHalfEdgePair(a, b)
		pa, pb := sub.Vertices[a].Point, sub.Vertices[b].Point
		byVertex[a] = append(byVertex[a], outgoing{he1, math.Atan2(pb.Y()-pa.Y(), pb.X()-pa.X())})
		byVertex[b] = append(byVertex[b], outgoing{he2, math.Atan2(pa.Y()-pb.Y(), pa.X()-pb.X())})
		if sub.Vertices[a].OutgoingEdge == NoHalfEdge {
			sub.Vertices[a].OutgoingEdge = he1
		}
		if sub.Vertices[b].OutgoingEdge == NoHalfEdge {
			sub.Vertices[b].OutgoingEdge = he2
		}
	}

	for _, outs := range byVertex {
		sort.Slice(outs, func(i, j int) bool {
			if outs[i].angle != outs[j].angle {
				return outs[i].angle < outs[j].angle
			}
			return outs[i].edge < outs[j].edge // ties broken by identity
		})
		n := len(outs)
		for i, o := range outs {
			next := outs[(i+n-1)%n] // clockwise neighbour of o, so the face stays on the left
			incoming := sub.HalfEdges[o.edge].Twin
			sub.HalfEdges[incoming].Next = next.edge
			sub.HalfEdges[next.edge].Prev = incoming
		}
	}

	if err := deriveFaces(sub); err != nil {
		return nil, err
	}
	logDebugf("built subdivision: %d vertices, %d half-edges, %d faces", len(sub.Vertices), len(sub.HalfEdges), len(sub.Faces))
	if err := Validate(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// deriveFaces implements spec.md §4.6 step 4: walk every next-cycle,
// classify it by signed area, give each positive cycle its own face, and
// resolve negative/zero-area cycles (holes and antennas) onto whichever
// positive cycle's polygon contains them, falling back to the unbounded
// face (id 0) when none does.
func deriveFaces(sub *Subdivision) error {
	visited := make([]bool, len(sub.HalfEdges))

	type cyc struct {
		edges []HalfEdgeID
		pts   []point.Point[float64]
		area  float64
	}
	var outers, others []cyc

	for i := range sub.HalfEdges {
		start := HalfEdgeID(i)
		if visited[start] {
			continue
		}
		var edges []HalfEdgeID
		var pts []point.Point[float64]
		e := start
		for {
			if visited[e] {
				return fmt.Errorf("dcel: next-cycle from half-edge %s revisited %s before closing", sub.String(start), sub.String(e))
			}
			visited[e] = true
			edges = append(edges, e)
			pts = append(pts, sub.Vertices[sub.HalfEdges[e].Origin].Point)
			next := sub.HalfEdges[e].Next
			if next == NoHalfEdge {
				return fmt.Errorf("dcel: half-edge %s has no next", sub.String(e))
			}
			e = next
			if e == start {
				break
			}
		}
		area := simple.Area2XSigned(pts...) / 2
		c := cyc{edges: edges, pts: pts, area: area}
		if area > faceAreaEpsilon {
			outers = append(outers, c)
		} else {
			others = append(others, c)
		}
	}

	sub.Faces = []Face{{OuterEdge: NoHalfEdge}}
	outerFaceID := make([]FaceID, len(outers))
	for i, c := range outers {
		sub.Faces = append(sub.Faces, Face{OuterEdge: c.edges[0]})
		faceID := FaceID(len(sub.Faces) - 1)
		outerFaceID[i] = faceID
		for _, e := range c.edges {
			sub.HalfEdges[e].Face = faceID
		}
	}

	for _, c := range others {
		rep := representativePoint(c.pts)
		container, containerArea := -1, 0.0
		for i, o := range outers {
			if simple.PointInPolygon(rep, o.pts) {
				if container == -1 || o.area < containerArea {
					container, containerArea = i, o.area
				}
			}
		}
		faceID := FaceID(0)
		if container != -1 {
			faceID = outerFaceID[container]
		}
		for _, e := range c.edges {
			sub.HalfEdges[e].Face = faceID
		}
		sub.Faces[faceID].InnerEdges = append(sub.Faces[faceID].InnerEdges, c.edges[0])
	}
	return nil
}

// representativePoint nudges a point just off the cycle's first edge, to
// the left of its direction of travel — i.e. into the face that cycle
// bounds — so point-in-polygon containment tests against other cycles
// aren't confused by the representative point sitting exactly on a shared
// boundary vertex or edge.
func representativePoint(pts []point.Point[float64]) point.Point[float64] {
	a, b := pts[0], pts[1%len(pts)]
	mx, my := (a.X()+b.X())/2, (a.Y()+b.Y())/2
	dx, dy := b.X()-a.X(), b.Y()-a.Y()
	length := math.Hypot(dx, dy)
	if length == 0 {
		return a
	}
	const nudge = 1e-6
	nx, ny := -dy/length, dx/length
	return point.New(mx+nx*nudge, my+ny*nudge)
}
