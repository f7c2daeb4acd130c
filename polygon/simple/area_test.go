package simple

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoplane/geom2d/point"
)

func TestArea2XSigned(t *testing.T) {
	square := []point.Point[int]{
		point.New(0, 0), point.New(10, 0), point.New(10, 10), point.New(0, 10),
	}
	assert.Equal(t, 200, Area2XSigned(square...))

	reversed := []point.Point[int]{
		point.New(0, 0), point.New(0, 10), point.New(10, 10), point.New(10, 0),
	}
	assert.Equal(t, -200, Area2XSigned(reversed...))

	assert.Equal(t, 0, Area2XSigned(point.New(0, 0), point.New(1, 1)))
}

func TestArea(t *testing.T) {
	square := []point.Point[int]{
		point.New(0, 0), point.New(10, 0), point.New(10, 10), point.New(0, 10),
	}
	assert.InDelta(t, 100.0, Area(square...), 1e-9)

	reversed := []point.Point[int]{
		point.New(0, 0), point.New(0, 10), point.New(10, 10), point.New(10, 0),
	}
	assert.InDelta(t, 100.0, Area(reversed...), 1e-9)
}

func TestCentroid(t *testing.T) {
	square := []point.Point[int]{
		point.New(0, 0), point.New(10, 0), point.New(10, 10), point.New(0, 10),
	}
	c, ok := Centroid(square...)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, c.X(), 1e-9)
	assert.InDelta(t, 5.0, c.Y(), 1e-9)

	_, ok = Centroid(point.New(0, 0), point.New(1, 1))
	assert.False(t, ok)
}
