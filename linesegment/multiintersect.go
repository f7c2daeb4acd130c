package linesegment

import (
	"sort"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// SegmentLocation pairs a segment's index in the caller's input slice with
// its [types.Location] at a particular crossing point.
type SegmentLocation struct {
	Index    int
	Location types.Location
}

// Crossing is one point visited by two or more input segments (spec.md
// §3.4): the same geometric point visited by several segments is reported
// once, carrying every segment that touches it, rather than once per pair.
type Crossing struct {
	Point    point.Point[float64]
	Segments []SegmentLocation
}

func (c *Crossing) addSegment(index int, loc types.Location) {
	for i := range c.Segments {
		if c.Segments[i].Index == index {
			return
		}
	}
	c.Segments = append(c.Segments, SegmentLocation{Index: index, Location: loc})
}

// crossingAccumulator merges intersection results from individual segment
// pairs into per-point Crossing records, deduplicating points that are
// within epsilon of one another.
type crossingAccumulator struct {
	epsilon float64
	points  []Crossing
}

func newCrossingAccumulator(opts ...options.GeometryOptionsFunc) *crossingAccumulator {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return &crossingAccumulator{epsilon: geoOpts.Epsilon}
}

func (a *crossingAccumulator) add(p point.Point[float64], i int, locI types.Location, j int, locJ types.Location) {
	epsOpt := options.WithEpsilon(a.epsilon)
	for idx := range a.points {
		if a.points[idx].Point.EqEpsilon(p, epsOpt) {
			a.points[idx].addSegment(i, locI)
			a.points[idx].addSegment(j, locJ)
			return
		}
	}
	c := Crossing{Point: p}
	c.addSegment(i, locI)
	c.addSegment(j, locJ)
	a.points = append(a.points, c)
}

func (a *crossingAccumulator) results() []Crossing {
	yFirst := point.NewLexComparator[float64](point.YFirst)
	sort.Slice(a.points, func(i, j int) bool {
		return yFirst.Less(a.points[i].Point, a.points[j].Point)
	})
	return a.points
}

// FindIntersectionsBruteForce finds every crossing among segments by
// directly testing all O(n^2) pairs with [LineSegment.Intersection]
// (spec.md §4.3's naive reference algorithm — used as ground truth when
// validating [FindIntersectionsSweep]).
func FindIntersectionsBruteForce[T types.SignedNumber](segments []LineSegment[T], opts ...options.GeometryOptionsFunc) []Crossing {
	acc := newCrossingAccumulator(opts...)
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			res := segments[i].Intersection(segments[j], opts...)
			if !res.HasPoint {
				continue
			}
			acc.add(res.Point, i, res.LocationOnA, j, res.LocationOnB)
		}
	}
	return acc.results()
}

// eventPointLess orders event points top-to-bottom, left-to-right:
// p before q iff p.y > q.y, or p.y == q.y and p.x < q.x (the standard
// Bentley-Ottmann sweep order, per the teacher's own event-queue
// convention).
func eventPointLess(p, q point.Point[float64]) bool {
	return p.Y() > q.Y() || (p.Y() == q.Y() && p.X() < q.X())
}

func eventQueueComparator(a, b interface{}) int {
	p, q := a.(point.Point[float64]), b.(point.Point[float64])
	switch {
	case eventPointLess(p, q):
		return -1
	case p.Eq(q):
		return 0
	default:
		return 1
	}
}

// sweepStatus tracks the current sweep-line position so the status
// structure's comparator can order segments by their x-coordinate at the
// current sweep y.
type sweepStatus struct {
	y       float64
	perturb float64 // subtracted from y when ordering, to break ties just below an event point
	epsilon float64
	segs    []LineSegment[float64] // indexed by the same index space as the caller's input
}

func (s *sweepStatus) xAt(seg LineSegment[float64]) float64 {
	y := s.y - s.perturb
	start, end := seg.Start(), seg.End()
	if start.Y() == end.Y() {
		return start.X()
	}
	t := (y - start.Y()) / (end.Y() - start.Y())
	return start.X() + t*(end.X()-start.X())
}

func (s *sweepStatus) comparator(a, b interface{}) int {
	ia, ib := a.(int), b.(int)
	if ia == ib {
		return 0
	}
	xa, xb := s.xAt(s.segs[ia]), s.xAt(s.segs[ib])
	switch {
	case xa < xb-s.epsilon:
		return -1
	case xa > xb+s.epsilon:
		return 1
	default:
		// Tied on x at the current sweep position: break ties by slope so
		// that segments retain a stable relative order as the sweep passes
		// through a shared point.
		sa, _ := s.segs[ia].Slope()
		sb, _ := s.segs[ib].Slope()
		if sa != sb {
			if sa < sb {
				return -1
			}
			return 1
		}
		if ia < ib {
			return -1
		}
		return 1
	}
}

// FindIntersectionsSweep finds every crossing among segments using a
// Bentley-Ottmann-style sweep (spec.md §4.3): a point event queue ordered
// top-to-bottom/left-to-right and a status structure ordering the
// segments currently crossing the sweep line by x, both backed by
// github.com/emirpasic/gods red-black trees (the same structure the
// point-subsystem's ordered set uses elsewhere in this module). Produces
// the same crossing set as [FindIntersectionsBruteForce]. Each event scans
// the whole status structure for the segments passing through the event
// point, so an event costs time linear in the number of segments crossing
// the sweep line.
func FindIntersectionsSweep[T types.SignedNumber](segments []LineSegment[T], opts ...options.GeometryOptionsFunc) []Crossing {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	epsilon := geoOpts.Epsilon
	if epsilon <= 0 {
		epsilon = minEpsilon
	}

	segs := make([]LineSegment[float64], len(segments))
	for i, s := range segments {
		segs[i] = s.AsFloat64()
	}

	status := &sweepStatus{epsilon: epsilon, segs: segs}
	statusTree := rbt.NewWith(status.comparator)

	events := rbt.NewWith(eventQueueComparator)
	upperOf := func(seg LineSegment[float64]) (point.Point[float64], point.Point[float64]) {
		if eventPointLess(seg.Start(), seg.End()) {
			return seg.Start(), seg.End()
		}
		return seg.End(), seg.Start()
	}
	insertEvent := func(p point.Point[float64], idx int, isUpper bool) {
		v, exists := events.Get(p)
		var upperIdx []int
		if exists {
			upperIdx = v.([]int)
		}
		if isUpper {
			upperIdx = append(upperIdx, idx)
		}
		events.Put(p, upperIdx)
	}
	for i, s := range segs {
		upper, lower := upperOf(s)
		insertEvent(upper, i, true)
		insertEvent(lower, i, false)
	}

	acc := newCrossingAccumulator(options.WithEpsilon(epsilon))

	findEventNeighborIndices := func(p point.Point[float64]) []int {
		var matches []int
		iter := statusTree.Iterator()
		for iter.Next() {
			idx := iter.Key().(int)
			if withinSegment(segs[idx].Locate(p, options.WithEpsilon(epsilon))) {
				matches = append(matches, idx)
			}
		}
		return matches
	}

	scheduleIfBelow := func(p point.Point[float64], cur point.Point[float64]) {
		if eventPointLess(cur, p) {
			_, exists := events.Get(p)
			if !exists {
				events.Put(p, []int{})
			}
		}
	}

	checkNeighbors := func(a, b int, cur point.Point[float64]) {
		res := segs[a].Intersection(segs[b], options.WithEpsilon(epsilon))
		if res.HasPoint {
			scheduleIfBelow(res.Point, cur)
		}
	}

	for !events.Empty() {
		node := events.Left()
		p := node.Key.(point.Point[float64])
		upperIdx := node.Value.([]int)
		events.Remove(p)

		status.y = p.Y()
		status.perturb = 0

		matches := findEventNeighborIndices(p)
		allAtP := make(map[int]bool, len(matches)+len(upperIdx))
		for _, idx := range matches {
			allAtP[idx] = true
		}
		for _, idx := range upperIdx {
			allAtP[idx] = true
		}

		if len(allAtP) > 1 {
			indices := make([]int, 0, len(allAtP))
			for idx := range allAtP {
				indices = append(indices, idx)
			}
			sort.Ints(indices)
			for i := 0; i < len(indices); i++ {
				for j := i + 1; j < len(indices); j++ {
					locI := segs[indices[i]].Locate(p, options.WithEpsilon(epsilon))
					locJ := segs[indices[j]].Locate(p, options.WithEpsilon(epsilon))
					acc.add(p, indices[i], locI, indices[j], locJ)
				}
			}
		}

		// Remove every segment touching p from the status structure (its
		// ordering key is only valid above p).
		for idx := range allAtP {
			statusTree.Remove(idx)
		}

		// Re-insert segments that continue past p (either they start here,
		// or p lies on their interior), ordered just below p.
		status.perturb = 1e-9
		var reinserted []int
		for idx := range allAtP {
			loc := segs[idx].Locate(p, options.WithEpsilon(epsilon))
			if loc == types.Start || loc == types.Between {
				statusTree.Put(idx, struct{}{})
				reinserted = append(reinserted, idx)
			}
		}

		if len(reinserted) == 0 {
			// p was only a lower endpoint; nothing reopens the status
			// structure here, so there is no new adjacency to test.
			continue
		}

		sort.Slice(reinserted, func(i, j int) bool {
			return status.xAt(segs[reinserted[i]]) < status.xAt(segs[reinserted[j]])
		})
		leftMost, rightMost := reinserted[0], reinserted[len(reinserted)-1]

		if leftNode, ok := statusTree.Floor(leftMost); ok {
			if leftIdx, isInt := leftNode.Key.(int); isInt && leftIdx != leftMost {
				checkNeighbors(leftIdx, leftMost, p)
			}
		}
		if rightNode, ok := statusTree.Ceiling(rightMost); ok {
			if rightIdx, isInt := rightNode.Key.(int); isInt && rightIdx != rightMost {
				checkNeighbors(rightIdx, rightMost, p)
			}
		}
	}

	return acc.results()
}
