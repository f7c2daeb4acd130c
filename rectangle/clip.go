package rectangle

import (
	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// locate1D classifies scalar v against the closed interval [lo, hi],
// returning one of Before/Start/Between/End/After.
func locate1D(v, lo, hi float64, epsilon float64) types.Location {
	switch {
	case v < lo-epsilon:
		return types.Before
	case v <= lo+epsilon:
		return types.Start
	case v < hi-epsilon:
		return types.Between
	case v <= hi+epsilon:
		return types.End
	default:
		return types.After
	}
}

// Locate classifies q against r independently on each axis, returning the
// pair of line locations spec.md §3.1 calls for: (x-location, y-location),
// each one of Before/Start/Between/End/After relative to r's [min,max]
// range on that axis. Never returns an invalid/nil pair — every point
// classifies to exactly one of the five values per axis.
func (r Rectangle[T]) Locate(q point.Point[T], opts ...options.GeometryOptionsFunc) (xLoc, yLoc types.Location) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	qf := q.AsFloat64()
	rf := r.AsFloat64()
	xLoc = locate1D(qf.X(), rf.min.X(), rf.max.X(), geoOpts.Epsilon)
	yLoc = locate1D(qf.Y(), rf.min.Y(), rf.max.Y(), geoOpts.Epsilon)
	return xLoc, yLoc
}

// clipBorder identifies one of the rectangle's four clipping borders for
// the Liang-Barsky parametric test.
type clipBorder int

const (
	borderLeft clipBorder = iota
	borderRight
	borderBottom
	borderTop
)

// ClipLine clips the line segment from p0 to p1 against r using the
// Liang-Barsky algorithm (spec.md §4.1): a parametric form is evaluated
// against each of the four borders in turn, narrowing the surviving
// parameter range [tMin, tMax] of the line p0 + t*(p1-p0); if the range
// becomes empty the segment misses r entirely. When ok is true, cp0 and cp1
// are the endpoints of the clipped sub-segment.
func ClipLine[T types.SignedNumber](r Rectangle[T], p0, p1 point.Point[T]) (cp0, cp1 point.Point[float64], ok bool) {
	rf := r.AsFloat64()
	p0f, p1f := p0.AsFloat64(), p1.AsFloat64()

	dx := p1f.X() - p0f.X()
	dy := p1f.Y() - p0f.Y()

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		p0f.X() - rf.min.X(),
		rf.max.X() - p0f.X(),
		p0f.Y() - rf.min.Y(),
		rf.max.Y() - p0f.Y(),
	}

	tMin, tMax := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			// Parallel to this border: reject if outside it.
			if q[i] < 0 {
				return point.Point[float64]{}, point.Point[float64]{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > tMax {
				return point.Point[float64]{}, point.Point[float64]{}, false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return point.Point[float64]{}, point.Point[float64]{}, false
			}
			if t < tMax {
				tMax = t
			}
		}
	}

	if tMin > tMax {
		return point.Point[float64]{}, point.Point[float64]{}, false
	}

	cp0 = point.New(p0f.X()+tMin*dx, p0f.Y()+tMin*dy)
	cp1 = point.New(p0f.X()+tMax*dx, p0f.Y()+tMax*dy)
	return cp0, cp1, true
}

// IntersectsLine reports whether the segment p0-p1 intersects r, running
// the same Liang-Barsky test as [ClipLine] without materializing the
// clipped sub-segment.
func IntersectsLine[T types.SignedNumber](r Rectangle[T], p0, p1 point.Point[T]) bool {
	_, _, ok := ClipLine(r, p0, p1)
	return ok
}

// ClipPolygon clips the (closed, given as a vertex ring without a
// duplicated first/last point) polygon against r using Sutherland-Hodgman:
// four successive passes, one per border, each keeping the portion of the
// running polygon on the inside of that border.
//
// Per spec.md §4.1's coordinate-copying rule, whenever a pass introduces an
// intersection point that lies exactly on the clipping border, the
// border's own exact coordinate is copied into the output point rather
// than recomputed from the line equation — this keeps later exact
// comparisons against the border coordinate sound.
func ClipPolygon[T types.SignedNumber](r Rectangle[T], polygon []point.Point[T]) []point.Point[float64] {
	rf := r.AsFloat64()
	poly := make([]point.Point[float64], len(polygon))
	for i, p := range polygon {
		poly[i] = p.AsFloat64()
	}

	poly = clipAgainstBorder(poly, borderLeft, rf)
	poly = clipAgainstBorder(poly, borderRight, rf)
	poly = clipAgainstBorder(poly, borderBottom, rf)
	poly = clipAgainstBorder(poly, borderTop, rf)
	return poly
}

func borderInside(p point.Point[float64], b clipBorder, r Rectangle[float64]) bool {
	switch b {
	case borderLeft:
		return p.X() >= r.min.X()
	case borderRight:
		return p.X() <= r.max.X()
	case borderBottom:
		return p.Y() >= r.min.Y()
	case borderTop:
		return p.Y() <= r.max.Y()
	default:
		return false
	}
}

// borderIntersection computes where segment a->b crosses border b's line,
// then applies the coordinate-copying rule: the coordinate that lies on the
// border is replaced with the border's exact value.
func borderIntersection(a, b point.Point[float64], border clipBorder, r Rectangle[float64]) point.Point[float64] {
	ax, ay := a.X(), a.Y()
	bx, by := b.X(), b.Y()

	switch border {
	case borderLeft:
		x := r.min.X()
		t := (x - ax) / (bx - ax)
		return point.New(x, ay+t*(by-ay))
	case borderRight:
		x := r.max.X()
		t := (x - ax) / (bx - ax)
		return point.New(x, ay+t*(by-ay))
	case borderBottom:
		y := r.min.Y()
		t := (y - ay) / (by - ay)
		return point.New(ax+t*(bx-ax), y)
	case borderTop:
		y := r.max.Y()
		t := (y - ay) / (by - ay)
		return point.New(ax+t*(bx-ax), y)
	default:
		return point.Point[float64]{}
	}
}

func clipAgainstBorder(poly []point.Point[float64], border clipBorder, r Rectangle[float64]) []point.Point[float64] {
	if len(poly) == 0 {
		return poly
	}

	var out []point.Point[float64]
	prev := poly[len(poly)-1]
	prevInside := borderInside(prev, border, r)

	for _, curr := range poly {
		currInside := borderInside(curr, border, r)

		switch {
		case currInside && prevInside:
			out = append(out, curr)
		case currInside && !prevInside:
			out = append(out, borderIntersection(prev, curr, border, r), curr)
		case !currInside && prevInside:
			out = append(out, borderIntersection(prev, curr, border, r))
		default:
			// both outside: emit nothing
		}

		prev, prevInside = curr, currInside
	}

	return out
}
