package subdivisionsearch

import (
	"math"
	"sort"

	"github.com/geoplane/geom2d/dcel"
	"github.com/geoplane/geom2d/point"
)

// segment is one subdivision edge (a half-edge/twin pair), canonicalized
// left-to-right so slab membership and y-at-x queries have one direction.
type segment struct {
	left, right point.Point[float64]
}

func (s segment) yAt(x float64) float64 {
	if s.right.X() == s.left.X() {
		return s.left.Y()
	}
	t := (x - s.left.X()) / (s.right.X() - s.left.X())
	return s.left.Y() + t*(s.right.Y()-s.left.Y())
}

// Trapezoidal is a vertical-decomposition point locator: descending it is
// two binary decisions, matching spec.md §4.7's x-node/y-node search
// DAG -- first which x-slab (bounded by the subdivision's critical
// x-coordinates) the query falls in, then which two consecutive segments
// of that slab bracket its y. The trapezoid between them is the leaf; its
// face is resolved once, on first visit, by sampling dcel's own
// brute-force Locate and is cached from then on.
//
// This reduction to two sorted-slice binary searches (rather than the
// textbook's dynamically merged trapezoid/neighbour structure built by
// randomized segment insertion) is sound specifically because
// dcel.FromLines has already split every mutual segment crossing into a
// vertex (spec.md §4.6 steps 1-2): inside any open x-slab bounded by two
// consecutive critical x-coordinates, the segments spanning it cannot
// cross, so they hold one fixed y-order across the whole slab.
type Trapezoidal struct {
	sub       *dcel.Subdivision
	epsilon   float64
	xs        []float64
	slabSegs  [][]segment
	faceCache map[[2]int]dcel.FaceID
}

// NewTrapezoidal builds the decomposition over sub's half-edges.
func NewTrapezoidal(sub *dcel.Subdivision, epsilon float64) *Trapezoidal {
	t := &Trapezoidal{sub: sub, epsilon: epsilon, faceCache: make(map[[2]int]dcel.FaceID)}

	var segs []segment
	xset := make(map[float64]bool)
	for i := 0; i < len(sub.HalfEdges); i += 2 {
		he := dcel.HalfEdgeID(i)
		a := sub.Vertices[sub.HalfEdges[he].Origin].Point
		b := sub.Vertices[sub.Destination(he)].Point
		left, right := a, b
		if right.X() < left.X() || (right.X() == left.X() && right.Y() < left.Y()) {
			left, right = right, left
		}
		segs = append(segs, segment{left: left, right: right})
		xset[left.X()] = true
		xset[right.X()] = true
	}

	xs := make([]float64, 0, len(xset))
	for x := range xset {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	t.xs = xs

	t.slabSegs = make([][]segment, len(xs)+1)
	for slab := 0; slab <= len(xs); slab++ {
		lo, hi := math.Inf(-1), math.Inf(1)
		if slab > 0 {
			lo = xs[slab-1]
		}
		if slab < len(xs) {
			hi = xs[slab]
		}
		if lo == hi {
			continue
		}
		sampleX := midX(lo, hi)
		var here []segment
		for _, s := range segs {
			if s.left.X() < s.right.X() && s.left.X() <= sampleX && sampleX <= s.right.X() {
				here = append(here, s)
			}
		}
		sort.Slice(here, func(i, j int) bool { return here[i].yAt(sampleX) < here[j].yAt(sampleX) })
		t.slabSegs[slab] = here
	}
	return t
}

func midX(lo, hi float64) float64 {
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return 0
	case math.IsInf(lo, -1):
		return hi - 1
	case math.IsInf(hi, 1):
		return lo + 1
	default:
		return (lo + hi) / 2
	}
}

// Find descends the slab, then y-order, decision structure.
func (t *Trapezoidal) Find(q point.Point[float64]) (dcel.FaceID, dcel.HalfEdgeID) {
	if he, ok := t.sub.LocateOnEdge(q, t.epsilon); ok {
		return t.sub.HalfEdgeFace(he), he
	}

	slab := sort.SearchFloat64s(t.xs, q.X())
	segs := t.slabSegs[slab]
	idx := sort.Search(len(segs), func(i int) bool {
		return segs[i].yAt(q.X()) > q.Y()
	})

	key := [2]int{slab, idx}
	if face, ok := t.faceCache[key]; ok {
		return face, dcel.NoHalfEdge
	}
	face, _ := t.sub.Locate(q, t.epsilon)
	t.faceCache[key] = face
	return face, dcel.NoHalfEdge
}
