package point

import "sort"

// Site is an input point to the Voronoi/Delaunay construction: a location
// paired with the index of the input it came from (spec.md §3.2). The
// index lets callers map a computed Voronoi region or Delaunay triangle
// vertex back to the caller's original input slice.
type Site struct {
	Point Point[float64]
	Index int
}

// NewSite constructs a Site from coordinates and an input index.
func NewSite(x, y float64, index int) Site {
	return Site{Point: New(x, y), Index: index}
}

// siteLess reports whether a sorts before b under the y-primary,
// x-secondary ordering spec.md §3.2 requires of the Fortune's-sweep site
// sequence.
func siteLess(a, b Site) bool {
	if a.Point.y != b.Point.y {
		return a.Point.y < b.Point.y
	}
	return a.Point.x < b.Point.x
}

// SortSites sorts sites in place, y-primary then x-secondary, and returns
// the slice for convenient chaining.
func SortSites(sites []Site) []Site {
	sort.SliceStable(sites, func(i, j int) bool {
		return siteLess(sites[i], sites[j])
	})
	return sites
}
