package rectangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplane/geom2d/point"
)

func TestClipLine(t *testing.T) {
	r := New(0, 0, 10, 10)

	tests := map[string]struct {
		p0, p1     point.Point[int]
		wantOK     bool
		wantP0     point.Point[float64]
		wantP1     point.Point[float64]
	}{
		"fully inside": {
			p0: point.New(2, 2), p1: point.New(8, 8),
			wantOK: true, wantP0: point.New(2.0, 2.0), wantP1: point.New(8.0, 8.0),
		},
		"crosses through": {
			p0: point.New(-5, 5), p1: point.New(15, 5),
			wantOK: true, wantP0: point.New(0.0, 5.0), wantP1: point.New(10.0, 5.0),
		},
		"misses entirely": {
			p0: point.New(-5, -5), p1: point.New(-1, -1),
			wantOK: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cp0, cp1, ok := ClipLine(r, tc.p0, tc.p1)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.InDelta(t, tc.wantP0.X(), cp0.X(), 1e-9)
				assert.InDelta(t, tc.wantP0.Y(), cp0.Y(), 1e-9)
				assert.InDelta(t, tc.wantP1.X(), cp1.X(), 1e-9)
				assert.InDelta(t, tc.wantP1.Y(), cp1.Y(), 1e-9)
			}
		})
	}
}

func TestIntersectsLine(t *testing.T) {
	r := New(0, 0, 10, 10)
	assert.True(t, IntersectsLine(r, point.New(-5, 5), point.New(15, 5)))
	assert.False(t, IntersectsLine(r, point.New(-5, -5), point.New(-1, -1)))
}

func TestClipPolygon_Square(t *testing.T) {
	r := New(0, 0, 10, 10)
	// Diamond overlapping the square, centered at (5,5) with radius 10 —
	// each pass should clip it down against one border.
	diamond := []point.Point[int]{
		point.New(5, -5),
		point.New(15, 5),
		point.New(5, 15),
		point.New(-5, 5),
	}
	got := ClipPolygon(r, diamond)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.X(), -1e-9)
		assert.LessOrEqual(t, p.X(), 10+1e-9)
		assert.GreaterOrEqual(t, p.Y(), -1e-9)
		assert.LessOrEqual(t, p.Y(), 10+1e-9)
	}
}

func TestClipPolygon_CoordinateCopyingRule(t *testing.T) {
	r := New(0, 0, 10, 10)
	// A triangle whose clipped intersection on the right border (x=10)
	// must carry the exact border coordinate, not a recomputed one.
	tri := []point.Point[int]{
		point.New(0, 0),
		point.New(20, 0),
		point.New(0, 20),
	}
	got := ClipPolygon(r, tri)
	require.NotEmpty(t, got)
	foundBorder := false
	for _, p := range got {
		if p.X() == 10.0 {
			foundBorder = true
		}
	}
	assert.True(t, foundBorder, "expected a vertex exactly on the right border x=10")
}
