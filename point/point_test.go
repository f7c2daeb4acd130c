package point

import (
	"encoding/json"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplane/geom2d/options"
	"github.com/geoplane/geom2d/types"
)

func TestPoint_AngleBetween(t *testing.T) {
	tests := map[string]struct {
		origin, a, b    Point[float64]
		expected        float64
		shouldReturnNaN bool
	}{
		"basic angle between points": {
			origin: New(0.0, 0.0), a: New(1.0, 0.0), b: New(0.0, 1.0),
			expected: math.Pi / 2,
		},
		"collinear points": {
			origin: New(0.0, 0.0), a: New(1.0, 1.0), b: New(-1.0, -1.0),
			expected: math.Pi,
		},
		"identical points": {
			origin: New(0.0, 0.0), a: New(1.0, 1.0), b: New(1.0, 1.0),
			expected: 0,
		},
		"zero vector": {
			origin: New(0.0, 0.0), a: New(0.0, 0.0), b: New(1.0, 1.0),
			shouldReturnNaN: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result := tc.origin.AngleBetween(tc.a, tc.b)
			if tc.shouldReturnNaN {
				assert.True(t, math.IsNaN(result), "expected NaN but got %v", result)
			} else {
				assert.InDelta(t, tc.expected, result, 1e-9, "unexpected angle")
			}
		})
	}
}

func TestPoint_Coordinates(t *testing.T) {
	p := New(3, 4)
	x, y := p.Coordinates()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
}

func TestPoint_CrossProduct(t *testing.T) {
	tests := map[string]struct {
		p, q     Point[float64]
		expected float64
	}{
		"(2,3) x (4,5)":     {p: New(2.0, 3.0), q: New(4.0, 5.0), expected: -2.0},
		"(3.5,2.5) x (4,6)": {p: New(3.5, 2.5), q: New(4.0, 6.0), expected: 11.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.CrossProduct(tt.q))
		})
	}
}

func TestPoint_Cross(t *testing.T) {
	p := New(0, 0)
	assert.Equal(t, 1, p.Cross(New(1, 0), New(0, 1)))
	assert.Equal(t, -1, p.Cross(New(0, 1), New(1, 0)))
}

func TestPoint_DistanceToPoint(t *testing.T) {
	p := New(0.0, 0.0)
	q := New(3.0, 4.0)
	assert.InDelta(t, 5.0, p.DistanceToPoint(q), 1e-9)
}

func TestPoint_DistanceSquaredToPoint(t *testing.T) {
	p := New(0, 0)
	q := New(3, 4)
	assert.Equal(t, 25, p.DistanceSquaredToPoint(q))
}

func TestPoint_DotProduct(t *testing.T) {
	p := New(2.0, 3.0)
	q := New(4.0, 5.0)
	assert.Equal(t, 23.0, p.DotProduct(q))
}

func TestPoint_Eq(t *testing.T) {
	assert.True(t, New(2.0, 3.0).Eq(New(2.0, 3.0)))
	assert.False(t, New(2.0, 3.0).Eq(New(4.0, 5.0)))
}

func TestPoint_EqEpsilon(t *testing.T) {
	a := New(0.3, 0.3)
	b := New(0.2+0.1, 0.2+0.1)
	assert.False(t, a.Eq(b), "exact equality should fail on float rounding")
	assert.True(t, a.EqEpsilon(b, options.WithEpsilon(1e-9)))
}

func TestPoint_Rotate(t *testing.T) {
	tests := map[string]struct {
		point, origin Point[float64]
		angle         float64
		expected      Point[float64]
	}{
		"90 degrees around origin":  {point: New(1.0, 0.0), origin: New(0.0, 0.0), angle: math.Pi / 2, expected: New(0.0, 1.0)},
		"180 degrees around origin": {point: New(1.0, 1.0), origin: New(0.0, 0.0), angle: math.Pi, expected: New(-1.0, -1.0)},
		"90 degrees around (1,1)":   {point: New(2.0, 1.0), origin: New(1.0, 1.0), angle: math.Pi / 2, expected: New(1.0, 2.0)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result := tc.point.Rotate(tc.origin, tc.angle)
			assert.InDelta(t, tc.expected.X(), result.X(), 1e-9)
			assert.InDelta(t, tc.expected.Y(), result.Y(), 1e-9)
		})
	}
}

func TestPoint_MarshalUnmarshalJSON(t *testing.T) {
	p := New(3.5, 7.2)
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var result Point[float64]
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, p, result)
}

func TestPoint_Negate(t *testing.T) {
	assert.Equal(t, New(-1, -2), New(1, 2).Negate())
}

func TestPoint_RelationshipToPoint(t *testing.T) {
	tests := map[string]struct {
		a, b     Point[int]
		expected types.Relationship
	}{
		"equal":    {a: New(5, 5), b: New(5, 5), expected: types.RelationshipEqual},
		"disjoint": {a: New(5, 5), b: New(10, 10), expected: types.RelationshipDisjoint},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.RelationshipToPoint(tc.b))
		})
	}
}

func TestPoint_Scale(t *testing.T) {
	p := New(2.0, 3.0)
	ref := New(1.0, 1.0)
	result := p.Scale(ref, 1.5)
	assert.InDelta(t, 2.5, result.X(), 1e-9)
	assert.InDelta(t, 4.0, result.Y(), 1e-9)
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1.2, 3.4)", New(1.2, 3.4).String())
}

func TestPoint_Translate(t *testing.T) {
	assert.Equal(t, New(4, 6), New(1, 2).Translate(New(3, 4)))
}

func TestPoint_XY(t *testing.T) {
	p := New(3, 4)
	assert.Equal(t, 3, p.X())
	assert.Equal(t, 4, p.Y())
}

func TestNewFromImagePoint(t *testing.T) {
	got := NewFromImagePoint(image.Point{X: 10, Y: 20})
	assert.Equal(t, New(10, 20), got)
}

func TestPoint_AsFloat64AsInt(t *testing.T) {
	p := New(3, 4)
	assert.Equal(t, New(3.0, 4.0), p.AsFloat64())

	pf := New(3.7, -4.2)
	assert.Equal(t, New(3, -4), pf.AsInt())
	assert.Equal(t, New(4, -4), pf.AsIntRounded())
}

func TestCrossProductChecked(t *testing.T) {
	got, err := CrossProductChecked(New(2, 3), New(4, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(-2), got)

	_, err = CrossProductChecked(New(1<<62, 1), New(1, 1<<62))
	require.Error(t, err)
}

func TestDistanceSquaredChecked(t *testing.T) {
	got, err := DistanceSquaredChecked(New(0, 0), New(3, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(25), got)
}
