package linesegment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/types"
)

func TestNewFromCoordinates(t *testing.T) {
	l := NewFromCoordinates(0, 0, 3, 4)
	assert.Equal(t, point.New(0, 0), l.Start())
	assert.Equal(t, point.New(3, 4), l.End())
}

func TestLineSegment_Length(t *testing.T) {
	l := NewFromCoordinates(0, 0, 3, 4)
	assert.InDelta(t, 5.0, l.Length(), 1e-9)
	assert.Equal(t, 25, l.LengthSquared())
}

func TestLineSegment_Midpoint(t *testing.T) {
	l := NewFromCoordinates(0, 0, 10, 10)
	mid := l.Midpoint()
	assert.InDelta(t, 5.0, mid.X(), 1e-9)
	assert.InDelta(t, 5.0, mid.Y(), 1e-9)
}

func TestLineSegment_Slope(t *testing.T) {
	tests := map[string]struct {
		l         LineSegment[int]
		wantSlope float64
		wantOK    bool
	}{
		"45 degrees": {NewFromCoordinates(0, 0, 10, 10), 1, true},
		"vertical":   {NewFromCoordinates(5, 0, 5, 10), 0, false},
		"horizontal": {NewFromCoordinates(0, 5, 10, 5), 0, true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			slope, ok := tc.l.Slope()
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.InDelta(t, tc.wantSlope, slope, 1e-9)
			}
		})
	}
}

func TestLineSegment_InverseSlope(t *testing.T) {
	_, ok := NewFromCoordinates(0, 5, 10, 5).InverseSlope()
	assert.False(t, ok)
	inv, ok := NewFromCoordinates(5, 0, 5, 10).InverseSlope()
	assert.True(t, ok)
	assert.InDelta(t, 0, inv, 1e-9)
}

func TestLineSegment_Angle(t *testing.T) {
	l := NewFromCoordinates(0, 0, 10, 0)
	assert.InDelta(t, 0, l.Angle(), 1e-9)
	l = NewFromCoordinates(0, 0, 0, 10)
	assert.InDelta(t, math.Pi/2, l.Angle(), 1e-9)
}

func TestLineSegment_AsFloat64AsInt(t *testing.T) {
	l := NewFromCoordinates(1, 2, 3, 4)
	f := l.AsFloat64()
	assert.Equal(t, point.New(1.0, 2.0), f.Start())
	back := f.AsInt()
	assert.Equal(t, l, back)
}

func TestLineSegment_Translate(t *testing.T) {
	l := NewFromCoordinates(0, 0, 1, 1)
	moved := l.Translate(point.New(5, 5))
	assert.Equal(t, point.New(5, 5), moved.Start())
	assert.Equal(t, point.New(6, 6), moved.End())
}

func TestLineSegment_Reverse(t *testing.T) {
	l := NewFromCoordinates(0, 0, 1, 1)
	r := l.Reverse()
	assert.Equal(t, l.Start(), r.End())
	assert.Equal(t, l.End(), r.Start())
}

func TestLineSegment_Scale(t *testing.T) {
	l := NewFromCoordinates(0, 0, 2, 2)
	scaled := l.Scale(point.New(0, 0), 2.0)
	assert.InDelta(t, 4.0, scaled.End().X(), 1e-9)
	assert.InDelta(t, 4.0, scaled.End().Y(), 1e-9)
}

func TestLineSegment_Eq(t *testing.T) {
	a := NewFromCoordinates(0, 0, 1, 1)
	b := NewFromCoordinates(1, 1, 0, 0)
	assert.True(t, a.Eq(b))
	c := NewFromCoordinates(0, 0, 2, 2)
	assert.False(t, a.Eq(c))
}

func TestLineSegment_String(t *testing.T) {
	l := NewFromCoordinates(0, 0, 1, 1)
	assert.Contains(t, l.String(), "->")
}

func TestLineSegment_Locate(t *testing.T) {
	l := NewFromCoordinates(0, 0, 10, 0)

	tests := map[string]struct {
		q    point.Point[int]
		want types.Location
	}{
		"before":   {point.New(-5, 0), types.Before},
		"start":    {point.New(0, 0), types.Start},
		"between":  {point.New(5, 0), types.Between},
		"end":      {point.New(10, 0), types.End},
		"after":    {point.New(15, 0), types.After},
		"off-line": {point.New(5, 5), types.LeftOf},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.Locate(tc.q))
		})
	}
}

func TestLineSegment_DistanceToPoint(t *testing.T) {
	l := NewFromCoordinates(0, 0, 10, 0)
	assert.InDelta(t, 5.0, l.DistanceToPoint(point.New(5, 5)), 1e-9)
	assert.InDelta(t, 0.0, l.DistanceToPoint(point.New(5, 0)), 1e-9)
	assert.InDelta(t, math.Hypot(5, 5), l.DistanceToPoint(point.New(15, 5)), 1e-9)
}
