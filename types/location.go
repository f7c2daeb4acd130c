package types

import "fmt"

// Location classifies where a point lies relative to a directed line segment.
//
// The ordering BEFORE < START < BETWEEN < END < AFTER matches the order in
// which the locations occur as a parameter travels from -infinity to
// +infinity along the segment's supporting line.
type Location uint8

const (
	// Before indicates the point lies on the segment's supporting line,
	// strictly before the segment's start.
	Before Location = iota

	// Start indicates the point coincides with the segment's start.
	Start

	// Between indicates the point lies strictly between the segment's
	// start and end.
	Between

	// End indicates the point coincides with the segment's end.
	End

	// After indicates the point lies on the segment's supporting line,
	// strictly after the segment's end.
	After

	// LeftOf indicates the point lies to the left of the segment (when
	// walking from start to end), off the supporting line.
	LeftOf

	// RightOf indicates the point lies to the right of the segment (when
	// walking from start to end), off the supporting line.
	RightOf
)

// String returns a human-readable name for l.
func (l Location) String() string {
	switch l {
	case Before:
		return "Before"
	case Start:
		return "Start"
	case Between:
		return "Between"
	case End:
		return "End"
	case After:
		return "After"
	case LeftOf:
		return "LeftOf"
	case RightOf:
		return "RightOf"
	default:
		panic(fmt.Errorf("unsupported location value: %d", l))
	}
}

// IsOn reports whether l places the point on the segment itself
// (Start, Between, or End), as opposed to off the segment or off the line.
func (l Location) IsOn() bool {
	return l == Start || l == Between || l == End
}

// IntersectionClass classifies the relationship between two lines (as
// opposed to the bounded segments built on them).
type IntersectionClass uint8

const (
	// Divergent indicates the two supporting lines cross at exactly one
	// point.
	Divergent IntersectionClass = iota

	// Parallel indicates the two supporting lines never meet and are not
	// collinear.
	Parallel

	// CollinearClass indicates the two supporting lines are the same line.
	CollinearClass
)

// String returns a human-readable name for c.
func (c IntersectionClass) String() string {
	switch c {
	case Divergent:
		return "Divergent"
	case Parallel:
		return "Parallel"
	case CollinearClass:
		return "Collinear"
	default:
		panic(fmt.Errorf("unsupported intersection class value: %d", c))
	}
}
