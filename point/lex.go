package point

import (
	"math"
	"sort"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/types"
)

// Axis selects which coordinate a [LexComparator] treats as primary.
type Axis uint8

const (
	// XFirst orders points by x, breaking ties by y.
	XFirst Axis = iota

	// YFirst orders points by y, breaking ties by x. This is the ordering
	// spec.md uses throughout for sweep-line event queues (site sort,
	// Voronoi event queue, Bentley-Ottmann event queue): "y-primary,
	// x-secondary".
	YFirst
)

// LexComparator implements a lexicographic ordering over Point[T], primary
// axis selectable at construction (spec.md §4.1: "primary/secondary
// dimension abstraction with two concrete variants").
type LexComparator[T types.SignedNumber] struct {
	Primary Axis
}

// NewLexComparator returns a LexComparator ordering first by primary, then
// by the other axis.
func NewLexComparator[T types.SignedNumber](primary Axis) LexComparator[T] {
	return LexComparator[T]{Primary: primary}
}

func (c LexComparator[T]) primaryValue(p Point[T]) T {
	if c.Primary == XFirst {
		return p.x
	}
	return p.y
}

func (c LexComparator[T]) secondaryValue(p Point[T]) T {
	if c.Primary == XFirst {
		return p.y
	}
	return p.x
}

// Compare returns -1, 0, or 1 as a sorts before, at the same position as, or
// after b under c's ordering.
func (c LexComparator[T]) Compare(a, b Point[T]) int {
	pa, pb := c.primaryValue(a), c.primaryValue(b)
	if pa != pb {
		if pa < pb {
			return -1
		}
		return 1
	}
	sa, sb := c.secondaryValue(a), c.secondaryValue(b)
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b under c's ordering.
func (c LexComparator[T]) Less(a, b Point[T]) bool {
	return c.Compare(a, b) < 0
}

// Sort sorts points in place according to c.
func (c LexComparator[T]) Sort(points []Point[T]) {
	sort.SliceStable(points, func(i, j int) bool {
		return c.Less(points[i], points[j])
	})
}

// Range returns the subslice of a c-sorted slice whose primary-axis value
// falls within [lo, hi] (inclusive), via two binary searches. points must
// already be sorted by c.
func (c LexComparator[T]) Range(points []Point[T], lo, hi T) []Point[T] {
	start := sort.Search(len(points), func(i int) bool {
		return c.primaryValue(points[i]) >= lo
	})
	end := sort.Search(len(points), func(i int) bool {
		return c.primaryValue(points[i]) > hi
	})
	if start >= end {
		return nil
	}
	return points[start:end]
}

// FindNearestSorted finds the point in a c-sorted slice nearest to q.
//
// Per spec.md §4.1, the search first binary-searches to locate q's
// insertion position, then expands outward along the primary axis in both
// directions, stopping once the remaining candidates' primary-axis distance
// to q (minus 2*epsilon) squared exceeds the current best squared distance —
// at that point no further candidate could possibly be closer. This gives
// expected O(log n) behaviour for evenly distributed points and worst-case
// O(log n + n).
func FindNearestSorted[T types.SignedNumber](sorted []Point[T], q Point[T], c LexComparator[T], opts ...options.GeometryOptionsFunc) (Point[T], bool) {
	if len(sorted) == 0 {
		return Point[T]{}, false
	}
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	qPrimary := float64(c.primaryValue(q))
	qf := q.AsFloat64()

	idx := sort.Search(len(sorted), func(i int) bool {
		return float64(c.primaryValue(sorted[i])) >= qPrimary
	})

	haveBest := false
	bestSq := math.Inf(1)
	bestIdx := -1

	consider := func(i int) {
		if i < 0 || i >= len(sorted) {
			return
		}
		sq := qf.DistanceSquaredToPoint(sorted[i].AsFloat64())
		if !haveBest || sq < bestSq {
			haveBest = true
			bestSq = sq
			bestIdx = i
		}
	}

	lo, hi := idx-1, idx
	consider(lo)
	consider(hi)

	for {
		expanded := false

		if lo-1 >= 0 {
			d := math.Abs(float64(c.primaryValue(sorted[lo-1]))-qPrimary) - 2*geoOpts.Epsilon
			if d < 0 {
				d = 0
			}
			if d*d <= bestSq {
				lo--
				consider(lo)
				expanded = true
			}
		}

		if hi+1 < len(sorted) {
			d := math.Abs(float64(c.primaryValue(sorted[hi+1]))-qPrimary) - 2*geoOpts.Epsilon
			if d < 0 {
				d = 0
			}
			if d*d <= bestSq {
				hi++
				consider(hi)
				expanded = true
			}
		}

		if !expanded {
			break
		}
	}

	if bestIdx == -1 {
		return Point[T]{}, false
	}
	return sorted[bestIdx], true
}

// OrderedSet is a lexicographically ordered set of points backed by a
// red-black tree (github.com/emirpasic/gods), used where points are
// inserted incrementally (as in DCEL vertex unification, spec.md §4.6 step
// 1) rather than supplied as one pre-sorted batch.
type OrderedSet[T types.SignedNumber] struct {
	tree *rbt.Tree
	cmp  LexComparator[T]
}

// NewOrderedSet creates an empty OrderedSet ordered by cmp.
func NewOrderedSet[T types.SignedNumber](cmp LexComparator[T]) *OrderedSet[T] {
	return &OrderedSet[T]{
		tree: rbt.NewWith(func(a, b interface{}) int {
			return cmp.Compare(a.(Point[T]), b.(Point[T]))
		}),
		cmp: cmp,
	}
}

// Insert adds p to the set. Re-inserting a point equal under cmp (exactly,
// not epsilon) to an existing member is a no-op.
func (s *OrderedSet[T]) Insert(p Point[T]) {
	s.tree.Put(p, struct{}{})
}

// Contains reports whether a point exactly equal (under cmp's ordering) to
// p is a member of the set.
func (s *OrderedSet[T]) Contains(p Point[T]) bool {
	_, found := s.tree.Get(p)
	return found
}

// Len returns the number of points in the set.
func (s *OrderedSet[T]) Len() int {
	return s.tree.Size()
}

// Points returns the set's members in ascending order under cmp.
func (s *OrderedSet[T]) Points() []Point[T] {
	keys := s.tree.Keys()
	out := make([]Point[T], len(keys))
	for i, k := range keys {
		out[i] = k.(Point[T])
	}
	return out
}

// FindNearest finds the set member nearest to q, using the same
// radius-shrinking discipline as [FindNearestSorted], driven from the
// tree's ascending key order (spec.md §4.1's "sibling findNearest ... using
// ascending/descending iterators").
func (s *OrderedSet[T]) FindNearest(q Point[T], opts ...options.GeometryOptionsFunc) (Point[T], bool) {
	return FindNearestSorted(s.Points(), q, s.cmp, opts...)
}
