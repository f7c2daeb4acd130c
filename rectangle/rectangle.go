// Package rectangle defines the axis-aligned Rectangle[T] type: containment
// tests, intersect/union, and the two clipping algorithms spec.md §4.1
// names explicitly (Liang-Barsky line clipping, Sutherland-Hodgman polygon
// clipping). See clip.go for those.
package rectangle

import (
	"fmt"
	"image"

	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

// Rectangle represents an axis-aligned rectangle defined by its min
// (bottom-left-most, i.e. smallest x and y) and max (top-right-most)
// corners. Per spec.md §3.1, a Rectangle always satisfies max >= min
// componentwise: [New] and [NewFromPoints] normalize whatever two opposite
// corners they are given into this form, so a Rectangle can never be
// constructed inverted.
type Rectangle[T types.SignedNumber] struct {
	min point.Point[T]
	max point.Point[T]
}

// New creates a rectangle given two opposite corners, normalizing them into
// min/max form regardless of the order they're supplied in.
func New[T types.SignedNumber](x1, y1, x2, y2 T) Rectangle[T] {
	return Rectangle[T]{
		min: point.New(minT(x1, x2), minT(y1, y2)),
		max: point.New(maxT(x1, x2), maxT(y1, y2)),
	}
}

// NewFromPoints creates a rectangle from two opposite corner points,
// normalizing them into min/max form.
func NewFromPoints[T types.SignedNumber](a, b point.Point[T]) Rectangle[T] {
	return New(a.X(), a.Y(), b.X(), b.Y())
}

// NewFromImageRect creates a new Rectangle[int] from an [image.Rectangle].
func NewFromImageRect(r image.Rectangle) Rectangle[int] {
	return NewFromPoints(
		point.New(r.Min.X, r.Min.Y),
		point.New(r.Max.X, r.Max.Y),
	)
}

func minT[T types.SignedNumber](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T types.SignedNumber](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the rectangle's minimum (bottom-left) corner.
func (r Rectangle[T]) Min() point.Point[T] { return r.min }

// Max returns the rectangle's maximum (top-right) corner.
func (r Rectangle[T]) Max() point.Point[T] { return r.max }

// Width returns the rectangle's width (max.x - min.x).
func (r Rectangle[T]) Width() T { return r.max.X() - r.min.X() }

// Height returns the rectangle's height (max.y - min.y).
func (r Rectangle[T]) Height() T { return r.max.Y() - r.min.Y() }

// Area returns the rectangle's area.
func (r Rectangle[T]) Area() T { return r.Width() * r.Height() }

// Perimeter returns the rectangle's perimeter.
func (r Rectangle[T]) Perimeter() T { return 2 * (r.Width() + r.Height()) }

// Points returns the four corners of the rectangle in order: bottom-left
// (min), bottom-right, top-right (max), top-left.
func (r Rectangle[T]) Points() []point.Point[T] {
	return []point.Point[T]{
		r.min,
		point.New(r.max.X(), r.min.Y()),
		r.max,
		point.New(r.min.X(), r.max.Y()),
	}
}

// ContainsPoint reports whether p lies within the closed rectangle
// (boundary included).
func (r Rectangle[T]) ContainsPoint(p point.Point[T]) bool {
	return p.X() >= r.min.X() && p.X() <= r.max.X() &&
		p.Y() >= r.min.Y() && p.Y() <= r.max.Y()
}

// ContainsPointOpen reports whether p lies strictly inside the rectangle,
// excluding the boundary — the "half-open" containment variant spec.md
// §3.1 requires alongside the closed one.
func (r Rectangle[T]) ContainsPointOpen(p point.Point[T]) bool {
	return p.X() > r.min.X() && p.X() < r.max.X() &&
		p.Y() > r.min.Y() && p.Y() < r.max.Y()
}

// Intersect returns the overlapping region of r and other, and whether the
// two rectangles overlap at all (touching at a single point or edge counts
// as overlapping, per the closed-containment convention).
func (r Rectangle[T]) Intersect(other Rectangle[T]) (Rectangle[T], bool) {
	minX, minY := maxT(r.min.X(), other.min.X()), maxT(r.min.Y(), other.min.Y())
	maxX, maxY := minT(r.max.X(), other.max.X()), minT(r.max.Y(), other.max.Y())
	if minX > maxX || minY > maxY {
		return Rectangle[T]{}, false
	}
	return New(minX, minY, maxX, maxY), true
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rectangle[T]) Union(other Rectangle[T]) Rectangle[T] {
	return New(
		minT(r.min.X(), other.min.X()), minT(r.min.Y(), other.min.Y()),
		maxT(r.max.X(), other.max.X()), maxT(r.max.Y(), other.max.Y()),
	)
}

// Extend grows r (if necessary) so that it also encloses other, equivalent
// to Union but named for the spec.md §4.3 caller-supplied-clip-rectangle
// "extend, never shrink" usage.
func (r Rectangle[T]) Extend(other Rectangle[T]) Rectangle[T] {
	return r.Union(other)
}

// Translate returns r shifted by delta.
func (r Rectangle[T]) Translate(delta point.Point[T]) Rectangle[T] {
	return Rectangle[T]{min: r.min.Add(delta), max: r.max.Add(delta)}
}

// AsFloat64 converts r's corners to Rectangle[float64].
func (r Rectangle[T]) AsFloat64() Rectangle[float64] {
	return Rectangle[float64]{min: r.min.AsFloat64(), max: r.max.AsFloat64()}
}

// ToImageRect converts r to an [image.Rectangle]. Only meaningful for
// Rectangle[int].
func (r Rectangle[T]) ToImageRect() image.Rectangle {
	return image.Rect(int(r.min.X()), int(r.min.Y()), int(r.max.X()), int(r.max.Y()))
}

// String returns a human-readable representation of r.
func (r Rectangle[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}

// EqEpsilon reports whether r and other are equal within the epsilon
// supplied via opts.
func (r Rectangle[T]) EqEpsilon(other Rectangle[T], opts ...options.GeometryOptionsFunc) bool {
	return r.min.EqEpsilon(other.min, opts...) && r.max.EqEpsilon(other.max, opts...)
}
