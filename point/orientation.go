package point

import (
	"fmt"
	"math"

	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/types"
)

// OrientationType represents the orientation of three points in the plane:
// collinear, clockwise, or counterclockwise.
type OrientationType uint8

// Orientation constants.
const (
	// Collinear indicates that three points lie on a straight line.
	Collinear OrientationType = iota

	// Counterclockwise indicates that three points form a counterclockwise turn.
	Counterclockwise

	// Clockwise indicates that three points form a clockwise turn.
	Clockwise
)

// String returns a human-readable name for o.
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("unsupported point orientation: %d", o))
	}
}

// Orientation determines whether p, q, r make a clockwise turn, a
// counterclockwise turn, or are collinear, using the sign of the
// cross product of (q-p) and (r-p).
//
// Per spec.md §4.1, the tolerance on the cross-product area is scaled by
// the segment length so that callers comparing long, nearly-collinear
// segments aren't spuriously classified as turning: epsilon (from opts) is
// multiplied by the sum of |Δx|+|Δy| of p->q and p->r before being compared
// to the raw cross product value.
func Orientation[T types.SignedNumber](p, q, r Point[T], opts ...options.GeometryOptionsFunc) OrientationType {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	pf, qf, rf := p.AsFloat64(), q.AsFloat64(), r.AsFloat64()
	pq := qf.Sub(pf)
	pr := rf.Sub(pf)
	val := pq.CrossProduct(pr)

	scale := math.Abs(pq.x) + math.Abs(pq.y) + math.Abs(pr.x) + math.Abs(pr.y)
	tolerance := geoOpts.Epsilon * scale

	if math.Abs(val) <= tolerance {
		return Collinear
	}
	if val > 0 {
		return Counterclockwise
	}
	return Clockwise
}
