package linesegment

import (
	"math"
	"sort"

	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// Result is the outcome of [LineSegment.Intersection]: a classification —
// one of Divergent, Parallel, CollinearClass (spec.md §4.2) — plus, when
// the segments actually intersect, the shared point and each segment's
// location at that point.
type Result struct {
	Class       types.IntersectionClass
	HasPoint    bool
	Point       point.Point[float64]
	LocationOnA types.Location
	LocationOnB types.Location
}

// minEpsilon is the floor spec.md §4.2 imposes on the intersection kernel's
// epsilon even at the "exact" entry point: pure exact classification is too
// brittle for the collinear-near cases.
const minEpsilon = 1e-10

func locationFromParam(t, tol float64) types.Location {
	switch {
	case t < -tol:
		return types.Before
	case t <= tol:
		return types.Start
	case t < 1-tol:
		return types.Between
	case t <= 1+tol:
		return types.End
	default:
		return types.After
	}
}

func withinSegment(loc types.Location) bool {
	return loc == types.Start || loc == types.Between || loc == types.End
}

// Intersection computes the intersection of l (segment A) with other
// (segment B), following spec.md §4.2: both a sign/zero test (Cormen
// "Segments-Intersect") and a parametric line-equation solve (O'Rourke)
// are run; if they disagree, the kernel retries with epsilon doubled,
// until they agree or [options.WithEpsilonCeiling]'s ceiling is reached —
// at which point the disagreement is reported as Parallel, since no
// confident classification could be reached.
func (l LineSegment[T]) Intersection(other LineSegment[T], opts ...options.GeometryOptionsFunc) Result {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	epsilon := geoOpts.Epsilon
	if epsilon < minEpsilon {
		epsilon = minEpsilon
	}
	ceiling := geoOpts.EpsilonCeiling
	if ceiling <= 0 {
		ceiling = options.DefaultEpsilonCeiling
	}
	return l.intersectionWithEpsilon(other, epsilon, ceiling)
}

func (l LineSegment[T]) intersectionWithEpsilon(other LineSegment[T], epsilon, ceiling float64) Result {
	A, B := l.start.AsFloat64(), l.end.AsFloat64()
	C, D := other.start.AsFloat64(), other.end.AsFloat64()

	dir1 := B.Sub(A)
	dir2 := D.Sub(C)
	denom := dir1.CrossProduct(dir2)

	if denom == 0 {
		ac := C.Sub(A)
		if ac.CrossProduct(dir1) != 0 {
			return Result{Class: types.Parallel}
		}
		return l.collinearOverlap(other, epsilon)
	}

	acv := C.Sub(A)
	t := acv.CrossProduct(dir2) / denom
	u := acv.CrossProduct(dir1) / denom

	lenA := math.Sqrt(dir1.DotProduct(dir1))
	lenB := math.Sqrt(dir2.DotProduct(dir2))
	tolA := epsilon / lenA
	tolB := epsilon / lenB

	locA := locationFromParam(t, tolA)
	locB := locationFromParam(u, tolB)
	paramIntersects := withinSegment(locA) && withinSegment(locB)

	epsOpt := options.WithEpsilon(epsilon)
	o1 := point.Orientation(other.start, other.end, l.start, epsOpt)
	o2 := point.Orientation(other.start, other.end, l.end, epsOpt)
	o3 := point.Orientation(l.start, l.end, other.start, epsOpt)
	o4 := point.Orientation(l.start, l.end, other.end, epsOpt)

	signStraddle := o1 != o2 && o1 != point.Collinear && o2 != point.Collinear &&
		o3 != o4 && o3 != point.Collinear && o4 != point.Collinear
	signTouch := o1 == point.Collinear || o2 == point.Collinear || o3 == point.Collinear || o4 == point.Collinear
	signIntersects := signStraddle || (signTouch && paramIntersects)

	if signIntersects != paramIntersects {
		if epsilon*2 > ceiling {
			return Result{Class: types.Parallel}
		}
		return l.intersectionWithEpsilon(other, epsilon*2, ceiling)
	}

	if !paramIntersects {
		return Result{Class: types.Divergent}
	}

	p := point.New(A.X()+t*dir1.X(), A.Y()+t*dir1.Y())

	// Endpoint snap-back (spec.md §4.2): a shared point within epsilon of
	// an endpoint of either segment is promoted to that endpoint, both in
	// location and in coordinates (the coordinate-copying discipline spec.md
	// uses elsewhere for exact-comparison soundness).
	p, locA = snapToEndpoint(p, A, B, locA, epsilon)
	p, locB = snapToEndpoint(p, C, D, locB, epsilon)

	return Result{
		Class:       types.Divergent,
		HasPoint:    true,
		Point:       p,
		LocationOnA: locA,
		LocationOnB: locB,
	}
}

func snapToEndpoint(p, a, b point.Point[float64], loc types.Location, epsilon float64) (point.Point[float64], types.Location) {
	if loc == types.Start {
		return a, types.Start
	}
	if loc == types.End {
		return b, types.End
	}
	if p.DistanceToPoint(a) <= epsilon {
		return a, types.Start
	}
	if p.DistanceToPoint(b) <= epsilon {
		return b, types.End
	}
	return p, loc
}

// collinearOverlap implements spec.md §4.2's overlap rule for collinear
// segments: the shared point is the lexicographically first (y-first)
// endpoint of other that lies on l. If neither endpoint of other lies on
// l, the segments are reported as collinear but non-overlapping with no
// shared point.
func (l LineSegment[T]) collinearOverlap(other LineSegment[T], epsilon float64) Result {
	epsOpt := options.WithEpsilon(epsilon)

	type candidate struct {
		p      point.Point[float64]
		locOnA types.Location
		locOnB types.Location
	}
	var candidates []candidate

	if loc := l.Locate(other.start, epsOpt); withinSegment(loc) {
		candidates = append(candidates, candidate{p: other.start.AsFloat64(), locOnA: loc, locOnB: types.Start})
	}
	if loc := l.Locate(other.end, epsOpt); withinSegment(loc) {
		candidates = append(candidates, candidate{p: other.end.AsFloat64(), locOnA: loc, locOnB: types.End})
	}

	if len(candidates) == 0 {
		return Result{Class: types.CollinearClass}
	}

	yFirst := point.NewLexComparator[float64](point.YFirst)
	sort.Slice(candidates, func(i, j int) bool {
		return yFirst.Less(candidates[i].p, candidates[j].p)
	})

	chosen := candidates[0]
	return Result{
		Class:       types.CollinearClass,
		HasPoint:    true,
		Point:       chosen.p,
		LocationOnA: chosen.locOnA,
		LocationOnB: chosen.locOnB,
	}
}
