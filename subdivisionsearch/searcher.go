// Package subdivisionsearch provides point-location structures over a
// completed dcel.Subdivision (spec.md §4.7): a brute-force baseline and a
// vertical-decomposition structure offering expected O(log n) query.
package subdivisionsearch

import (
	"github.com/geoplane/geom2d/dcel"
	"github.com/geoplane/geom2d/point"
)

// Searcher answers "which face (or half-edge, if the query lands exactly
// on one) contains q" against a fixed subdivision.
type Searcher interface {
	Find(q point.Point[float64]) (dcel.FaceID, dcel.HalfEdgeID)
}

// BruteForce scans every half-edge for an on-edge hit, then ray-casts
// each face's boundary -- the linear-time baseline spec.md §4.7 names.
// It delegates directly to dcel.Subdivision.Locate, which already
// implements that scan.
type BruteForce struct {
	sub     *dcel.Subdivision
	epsilon float64
}

// NewBruteForce builds a brute-force searcher over sub using epsilon as
// the on-edge tolerance.
func NewBruteForce(sub *dcel.Subdivision, epsilon float64) *BruteForce {
	return &BruteForce{sub: sub, epsilon: epsilon}
}

func (b *BruteForce) Find(q point.Point[float64]) (dcel.FaceID, dcel.HalfEdgeID) {
	return b.sub.Locate(q, b.epsilon)
}
