// Package point defines the foundational geometric primitive in the geom2d
// library, the generic Point[T] type. All other geometric types — line
// segments, rectangles, Voronoi sites, DCEL vertices — are built on top of
// it.
//
// Point is generic over [types.SignedNumber] so that callers can work with
// either exact integer coordinates (with checked, overflow-aborting
// arithmetic — see [CrossProductChecked] and [DistanceSquaredChecked]) or
// floating-point coordinates with epsilon-tolerant comparisons (see
// [Point.EqEpsilon]). Per spec.md §9, epsilon is always supplied per call
// through [options.GeometryOptionsFunc]; there is no global, mutable epsilon.
package point

import (
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/geoplane/geom2d/numeric"
	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/types"
)

// Point represents a point in two-dimensional space with x and y coordinates
// of generic numeric type T.
type Point[T types.SignedNumber] struct {
	x T
	y T
}

// New creates a new Point with the specified x and y coordinates.
func New[T types.SignedNumber](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// NewFromImagePoint creates a new integer Point from an [image.Point].
func NewFromImagePoint(q image.Point) Point[int] {
	return Point[int]{x: q.X, y: q.Y}
}

// X returns the x-coordinate of p.
func (p Point[T]) X() T { return p.x }

// Y returns the y-coordinate of p.
func (p Point[T]) Y() T { return p.y }

// Coordinates returns the x and y coordinates of p as separate values.
func (p Point[T]) Coordinates() (x, y T) { return p.x, p.y }

// Add returns the component-wise sum of p and q, treating both as vectors.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.x + q.x, p.y + q.y}
}

// Sub returns the vector from q to p (p - q).
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.x - q.x, p.y - q.y}
}

// Negate returns a new Point with both coordinates negated.
func (p Point[T]) Negate() Point[T] {
	return Point[T]{-p.x, -p.y}
}

// Translate returns p moved by the displacement vector delta.
func (p Point[T]) Translate(delta Point[T]) Point[T] {
	return p.Add(delta)
}

// Scale scales p by a factor k relative to a reference point ref.
func (p Point[T]) Scale(ref Point[T], k T) Point[T] {
	return Point[T]{ref.x + (p.x-ref.x)*k, ref.y + (p.y-ref.y)*k}
}

// MoveToward returns the point obtained by moving p a fraction t (in
// [0,1]) of the way toward q. t is not clamped: values outside [0,1]
// extrapolate past q or behind p.
func (p Point[T]) MoveToward(q Point[T], t float64) Point[float64] {
	pf, qf := p.AsFloat64(), q.AsFloat64()
	return Point[float64]{
		x: pf.x + t*(qf.x-pf.x),
		y: pf.y + t*(qf.y-pf.y),
	}
}

// DotProduct returns the dot product of the vectors represented by p and q.
func (p Point[T]) DotProduct(q Point[T]) T {
	return p.x*q.x + p.y*q.y
}

// CrossProduct returns the 2D cross product (determinant) of the vectors
// represented by p and q: p.x*q.y - p.y*q.x.
//
//   - Positive: q is counterclockwise from p (a left turn).
//   - Negative: q is clockwise from p (a right turn).
//   - Zero: p, q, and the origin are collinear.
func (p Point[T]) CrossProduct(q Point[T]) T {
	return p.x*q.y - p.y*q.x
}

// Cross computes the signed area of the parallelogram formed by the vectors
// (b-p) and (c-p), i.e. the cross-product-length formulation spec.md §3.1
// calls out explicitly:
//
//	cross(a,b) = (b.x-p.x)(c.y-p.y) - (c.x-p.x)(b.y-p.y)
//
// Its sign gives the turn direction of p->b relative to p->c. The library's
// own turn tests (line-segment Locate, polygon orientation, convex hull,
// point-in-polygon) go through [Orientation] instead.
func (p Point[T]) Cross(b, c Point[T]) T {
	return (b.x-p.x)*(c.y-p.y) - (c.x-p.x)*(b.y-p.y)
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p
// and q, avoiding a square root when only comparisons are needed.
func (p Point[T]) DistanceSquaredToPoint(q Point[T]) T {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point[T]) DistanceToPoint(q Point[T]) float64 {
	pf, qf := p.AsFloat64(), q.AsFloat64()
	dx, dy := qf.x-pf.x, qf.y-pf.y
	return math.Sqrt(dx*dx + dy*dy)
}

// Polar returns the polar representation (radius, angle in radians) of p
// relative to the origin.
func (p Point[T]) Polar() (radius, angleRadians float64) {
	pf := p.AsFloat64()
	return math.Hypot(pf.x, pf.y), math.Atan2(pf.y, pf.x)
}

// FromPolar constructs a Point from polar coordinates (radius, angle in
// radians) relative to the origin.
func FromPolar(radius, angleRadians float64) Point[float64] {
	return Point[float64]{x: radius * math.Cos(angleRadians), y: radius * math.Sin(angleRadians)}
}

// CosineOfAngleBetween computes the cosine of the angle, measured at origin
// p, subtended by rays to a and b. Returns math.NaN() if either ray has zero
// length.
func (p Point[T]) CosineOfAngleBetween(a, b Point[T]) float64 {
	pf, af, bf := p.AsFloat64(), a.AsFloat64(), b.AsFloat64()
	oa := af.Sub(pf)
	ob := bf.Sub(pf)
	magOA := math.Hypot(oa.x, oa.y)
	magOB := math.Hypot(ob.x, ob.y)
	if magOA == 0 || magOB == 0 {
		return math.NaN()
	}
	cosTheta := oa.DotProduct(ob) / (magOA * magOB)
	return math.Max(-1, math.Min(1, cosTheta))
}

// AngleBetween computes the angle in radians, measured at origin p, between
// rays to a and b.
func (p Point[T]) AngleBetween(a, b Point[T]) float64 {
	return math.Acos(p.CosineOfAngleBetween(a, b))
}

// Rotate rotates p by radians counterclockwise around pivot.
func (p Point[T]) Rotate(pivot Point[T], radians float64) Point[float64] {
	pf, pivf := p.AsFloat64(), pivot.AsFloat64()
	dx, dy := pf.x-pivf.x, pf.y-pivf.y
	cos, sin := math.Cos(radians), math.Sin(radians)
	return Point[float64]{
		x: pivf.x + dx*cos - dy*sin,
		y: pivf.y + dx*sin + dy*cos,
	}
}

// Eq reports whether p and q are exactly equal (strict coordinate equality,
// no epsilon tolerance). This is the "exact" flavour spec.md §4.1 requires
// every comparison operation to offer.
func (p Point[T]) Eq(q Point[T]) bool {
	return p.x == q.x && p.y == q.y
}

// EqEpsilon reports whether p and q are equal within the epsilon supplied via
// opts (the "epsilon-tolerant" flavour of spec.md §4.1). With no option
// supplied, epsilon defaults to 0 and EqEpsilon behaves like Eq.
func (p Point[T]) EqEpsilon(q Point[T], opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	pf, qf := p.AsFloat64(), q.AsFloat64()
	return numeric.FloatEquals(pf.x, qf.x, geoOpts.Epsilon) && numeric.FloatEquals(pf.y, qf.y, geoOpts.Epsilon)
}

// Compare implements an arbitrary but total strict ordering over points
// (y-primary, then x), returning -1, 0, or 1. [LexComparator] does not use
// it; it has its own Compare.
func (p Point[T]) Compare(q Point[T]) int {
	if p.y != q.y {
		if p.y < q.y {
			return -1
		}
		return 1
	}
	if p.x != q.x {
		if p.x < q.x {
			return -1
		}
		return 1
	}
	return 0
}

// RelationshipToPoint reports whether p and q are equal or disjoint.
func (p Point[T]) RelationshipToPoint(q Point[T]) types.Relationship {
	if p.Eq(q) {
		return types.RelationshipEqual
	}
	return types.RelationshipDisjoint
}

// AsFloat64 converts p to a Point[float64].
func (p Point[T]) AsFloat64() Point[float64] {
	return Point[float64]{x: float64(p.x), y: float64(p.y)}
}

// AsFloat32 converts p to a Point[float32].
func (p Point[T]) AsFloat32() Point[float32] {
	return Point[float32]{x: float32(p.x), y: float32(p.y)}
}

// AsInt truncates p's coordinates toward zero and returns a Point[int].
func (p Point[T]) AsInt() Point[int] {
	return Point[int]{x: int(p.x), y: int(p.y)}
}

// AsIntRounded rounds p's coordinates to the nearest integer and returns a
// Point[int].
func (p Point[T]) AsIntRounded() Point[int] {
	pf := p.AsFloat64()
	return Point[int]{x: int(math.Round(pf.x)), y: int(math.Round(pf.y))}
}

// String returns a string representation of p in the form "(x, y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// MarshalJSON serializes p as {"x":...,"y":...}.
func (p Point[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X T `json:"x"`
		Y T `json:"y"`
	}{p.x, p.y})
}

// UnmarshalJSON deserializes p from {"x":...,"y":...}.
func (p *Point[T]) UnmarshalJSON(data []byte) error {
	var temp struct {
		X T `json:"x"`
		Y T `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x, p.y = temp.X, temp.Y
	return nil
}

// CrossProductChecked computes the integer cross product a.x*b.y - a.y*b.x
// with int64-widened, overflow-checked arithmetic, per spec.md §3.1's
// requirement that integer Point operations widen to 64 bits inside
// cross/length computations rather than silently wrap.
func CrossProductChecked(a, b Point[int]) (int64, error) {
	axby, err := numeric.CheckedMulInt64(int64(a.x), int64(b.y))
	if err != nil {
		return 0, err
	}
	aybx, err := numeric.CheckedMulInt64(int64(a.y), int64(b.x))
	if err != nil {
		return 0, err
	}
	return numeric.CheckedSubInt64(axby, aybx)
}

// DistanceSquaredChecked computes the squared distance between two integer
// points with int64-widened, overflow-checked arithmetic.
func DistanceSquaredChecked(p, q Point[int]) (int64, error) {
	dx, err := numeric.CheckedSubInt64(int64(q.x), int64(p.x))
	if err != nil {
		return 0, err
	}
	dy, err := numeric.CheckedSubInt64(int64(q.y), int64(p.y))
	if err != nil {
		return 0, err
	}
	dxdx, err := numeric.CheckedMulInt64(dx, dx)
	if err != nil {
		return 0, err
	}
	dydy, err := numeric.CheckedMulInt64(dy, dy)
	if err != nil {
		return 0, err
	}
	return numeric.CheckedAddInt64(dxdx, dydy)
}
