// Package voronoi computes Voronoi diagrams and Delaunay triangulations for
// a set of real-valued sites using Fortune's sweep-line algorithm.
package voronoi

import (
	"fmt"
	"math"

	"github.com/google/btree"

	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/rectangle"
)

// Site is a generator point carried through the sweep together with its
// original input position, so that edges and regions can be reported back
// in terms of the caller's point indices.
type Site struct {
	Point point.Point[float64]
	Index int
}

// FullEdge is a bisector line between two sites, discovered while the sweep
// progresses. Vertex1/Vertex2 index into Results.Vertices and are -1 until
// the corresponding end of the bisector is pinned down by a circle event.
type FullEdge struct {
	A, B, C        float64
	Site1, Site2   int
	Vertex1, Vertex2 int
}

// VoronoiEdge is the clipped, finished form of a FullEdge: both endpoints
// are resolved, real or pseudo (on the clip border).
type VoronoiEdge struct {
	Site1, Site2     int
	Vertex1, Vertex2 int
}

// DelaunayEdge is a pair of sites whose Voronoi cells share a boundary.
type DelaunayEdge struct {
	Site1, Site2 int
}

// Results is the full output of FindAll.
type Results struct {
	Sites    []Site
	Vertices []point.Point[float64]
	Edges    []VoronoiEdge
	Delaunay []DelaunayEdge
	Clip     rectangle.Rectangle[float64]
}

func (r Results) vertexAt(idx int) point.Point[float64] {
	return r.Vertices[idx]
}

// Option configures FindAll.
type Option func(*config)

type config struct {
	clip    *rectangle.Rectangle[float64]
}

// WithClip supplies a caller clip rectangle. FindAll extends its computed
// clip rectangle to include it, but never shrinks below the rectangle that
// would otherwise be needed to bound every site.
//
// This option lives here rather than in the shared options package: a
// generic clip option there would need to import rectangle, which already
// imports options for its own epsilon-tolerant comparisons, and Go does not
// allow that cycle.
func WithClip(r rectangle.Rectangle[float64]) Option {
	return func(c *config) {
		c.clip = &r
	}
}

// arc is a beach-line node: the parabolic trace of one site, bounded on the
// left and right by the bisector edges shared with its neighbours.
type arc struct {
	site              Site
	edgeLeft, edgeRight *FullEdge
	circleEvent       *fortuneEvent
	prev, next        *arc
}

// fortuneEvent is either a site event (a new site appears) or a circle
// event (a beach-line arc is about to be squeezed out, producing a Voronoi
// vertex). Events are kept in a btree ordered by (y desc, x asc, seq), the
// same B-tree-backed priority queue shape the teacher's own sweep-line
// package uses for its event queue.
type fortuneEvent struct {
	y, x    float64
	seq     int
	isSite  bool
	siteIdx int
	arc     *arc
	vertex  point.Point[float64]
	valid   bool
}

func eventLess(a, b *fortuneEvent) bool {
	if a.y != b.y {
		return a.y > b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	return a.seq < b.seq
}

// sweep carries all mutable state for one run of Fortune's algorithm.
type sweep struct {
	sites     []Site
	beachline *arc
	queue     *btree.BTreeG[*fortuneEvent]
	seq       int
	edges     []*FullEdge
	delaunay  []DelaunayEdge
	vertices  []point.Point[float64]
	centroid  point.Point[float64]
}

func (s *sweep) nextSeq() int {
	s.seq++
	return s.seq
}

func (s *sweep) addVertex(p point.Point[float64]) int {
	s.vertices = append(s.vertices, p)
	return len(s.vertices) - 1
}

// newBisector creates the bisector edge of two sites and records the
// Delaunay edge between them, per spec.md's rule that every bisection
// performed by the sweep contributes one Delaunay edge.
func (s *sweep) newBisector(i, j int) *FullEdge {
	p1, p2 := s.sites[i].Point, s.sites[j].Point
	dx := p2.X() - p1.X()
	dy := p2.Y() - p1.Y()
	mx := (p1.X() + p2.X()) / 2
	my := (p1.Y() + p2.Y()) / 2
	A, B, C := dx, dy, dx*mx+dy*my
	if math.Abs(dx) >= math.Abs(dy) {
		B, C = B/A, C/A
		A = 1
	} else {
		A, C = A/B, C/B
		B = 1
	}
	e := &FullEdge{A: A, B: B, C: C, Site1: i, Site2: j, Vertex1: -1, Vertex2: -1}
	s.edges = append(s.edges, e)
	s.delaunay = append(s.delaunay, DelaunayEdge{Site1: i, Site2: j})
	return e
}

func setEdgeVertex(e *FullEdge, vIdx int) {
	if e.Vertex1 == -1 {
		e.Vertex1 = vIdx
	} else {
		e.Vertex2 = vIdx
	}
}

// breakpointX returns the x-coordinate at which the parabolic traces of p1
// and p2 (both equidistant from their site and the sweep directrix at y
// ly) cross, i.e. the beach-line breakpoint between the arcs of p1 (left)
// and p2 (right).
func breakpointX(p1, p2 point.Point[float64], ly float64) float64 {
	if p1.Y() == p2.Y() {
		return (p1.X() + p2.X()) / 2
	}
	if p2.Y() == ly {
		return p2.X()
	}
	if p1.Y() == ly {
		return p1.X()
	}
	d1 := 1 / (2 * (p1.Y() - ly))
	d2 := 1 / (2 * (p2.Y() - ly))
	a := d1 - d2
	b := -2 * (p1.X()*d1 - p2.X()*d2)
	c := (p1.X()*p1.X()+p1.Y()*p1.Y()-ly*ly)*d1 - (p2.X()*p2.X()+p2.Y()*p2.Y()-ly*ly)*d2
	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	root := math.Sqrt(disc)
	if p1.Y() < p2.Y() {
		return (-b - root) / (2 * a)
	}
	return (-b + root) / (2 * a)
}

// isRightOf reports whether p lies to the right of the beach-line
// breakpoint between the arcs of leftSite and rightSite, evaluated at the
// sweep position y = p.Y(). It is the half-plane test spec.md describes as
// driving the beach-line search.
func isRightOf(leftSite, rightSite, p point.Point[float64]) bool {
	return p.X() > breakpointX(leftSite, rightSite, p.Y())
}

// findArcAbove returns the beach-line arc directly above p.
func (s *sweep) findArcAbove(p point.Point[float64]) *arc {
	a := s.beachline
	for a != nil && a.next != nil {
		if !isRightOf(a.site.Point, a.next.site.Point, p) {
			return a
		}
		a = a.next
	}
	return a
}

func circumcenter(p1, p2, p3 point.Point[float64]) (point.Point[float64], float64, bool) {
	ax, ay := p1.X(), p1.Y()
	bx, by := p2.X(), p2.Y()
	cx, cy := p3.X(), p3.Y()
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return point.Point[float64]{}, 0, false
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	center := point.New(ux, uy)
	return center, center.DistanceToPoint(p1), true
}

func (s *sweep) checkCircleEvent(b *arc) {
	if b.prev == nil || b.next == nil {
		return
	}
	a, c := b.prev, b.next
	if a.site.Index == c.site.Index {
		return
	}
	if point.Orientation(a.site.Point, b.site.Point, c.site.Point) != point.Clockwise {
		return
	}
	center, radius, ok := circumcenter(a.site.Point, b.site.Point, c.site.Point)
	if !ok {
		return
	}
	y := center.Y() - radius
	ev := &fortuneEvent{y: y, x: center.X(), seq: s.nextSeq(), isSite: false, arc: b, vertex: center, valid: true}
	b.circleEvent = ev
	s.queue.ReplaceOrInsert(ev)
}

func (s *sweep) invalidateCircleEvent(a *arc) {
	if a == nil || a.circleEvent == nil {
		return
	}
	a.circleEvent.valid = false
	a.circleEvent = nil
}

func (s *sweep) handleSite(i int) {
	site := s.sites[i]
	if s.beachline == nil {
		s.beachline = &arc{site: site}
		return
	}
	a := s.findArcAbove(site.Point)
	s.invalidateCircleEvent(a)

	edge := s.newBisector(a.site.Index, site.Index)
	a1 := &arc{site: a.site, edgeLeft: a.edgeLeft, edgeRight: edge}
	aNew := &arc{site: site, edgeLeft: edge, edgeRight: edge}
	a2 := &arc{site: a.site, edgeLeft: edge, edgeRight: a.edgeRight}

	a1.prev = a.prev
	if a.prev != nil {
		a.prev.next = a1
	}
	a2.next = a.next
	if a.next != nil {
		a.next.prev = a2
	}
	a1.next = aNew
	aNew.prev = a1
	aNew.next = a2
	a2.prev = aNew

	if s.beachline == a {
		s.beachline = a1
	}

	s.checkCircleEvent(a1)
	s.checkCircleEvent(a2)
}

func (s *sweep) handleCircle(ev *fortuneEvent) {
	b := ev.arc
	a, c := b.prev, b.next

	if a != nil {
		a.next = c
	}
	if c != nil {
		c.prev = a
	}
	if s.beachline == b {
		s.beachline = a
	}
	s.invalidateCircleEvent(a)
	s.invalidateCircleEvent(c)

	vIdx := s.addVertex(ev.vertex)
	logDebugf("circle event at y=%f produced vertex %d at %s", ev.y, vIdx, ev.vertex.String())
	setEdgeVertex(b.edgeLeft, vIdx)
	setEdgeVertex(b.edgeRight, vIdx)

	if a != nil && c != nil {
		newEdge := s.newBisector(a.site.Index, c.site.Index)
		newEdge.Vertex1 = vIdx
		a.edgeRight = newEdge
		c.edgeLeft = newEdge
		s.checkCircleEvent(a)
		s.checkCircleEvent(c)
	}
}

// linePointAndDir returns a point on e's line and a (non-unit) direction
// vector along it.
func linePointAndDir(e *FullEdge) (point.Point[float64], point.Point[float64]) {
	denom := e.A*e.A + e.B*e.B
	p0 := point.New(e.A*e.C/denom, e.B*e.C/denom)
	return p0, point.New(-e.B, e.A)
}

// farEndpoints extends e's line, centered on known or foot-point origin,
// far enough in both directions to guarantee it spans the clip rectangle,
// choosing the pair of far points that diverge outward from the site
// cloud's centroid. This stands in for spec.md's precise half-edge
// direction bookkeeping (derivable from which side of the beach-line the
// edge bounded) with a geometric heuristic: a Voronoi ray always travels
// away from the generator sites, so the far endpoint farther from the
// centroid is the outward one.
func (s *sweep) farEndpoints(e *FullEdge, far float64) (point.Point[float64], point.Point[float64]) {
	origin, dir := linePointAndDir(e)
	length := math.Hypot(dir.X(), dir.Y())
	ux, uy := dir.X()/length, dir.Y()/length

	if e.Vertex1 >= 0 {
		origin = s.vertices[e.Vertex1]
	} else if e.Vertex2 >= 0 {
		origin = s.vertices[e.Vertex2]
	}

	cand1 := point.New(origin.X()+ux*far, origin.Y()+uy*far)
	cand2 := point.New(origin.X()-ux*far, origin.Y()-uy*far)

	if e.Vertex1 >= 0 && e.Vertex2 >= 0 {
		return s.vertices[e.Vertex1], s.vertices[e.Vertex2]
	}
	known := origin
	if cand1.DistanceToPoint(s.centroid) >= cand2.DistanceToPoint(s.centroid) {
		return known, cand1
	}
	return known, cand2
}

const degenerateEdgeEpsilon = 1e-7

func computeClip(sites []Site, userClip *rectangle.Rectangle[float64]) rectangle.Rectangle[float64] {
	minX, maxX := sites[0].Point.X(), sites[0].Point.X()
	minY, maxY := sites[0].Point.Y(), sites[0].Point.Y()
	for _, s := range sites[1:] {
		minX = math.Min(minX, s.Point.X())
		maxX = math.Max(maxX, s.Point.X())
		minY = math.Min(minY, s.Point.Y())
		maxY = math.Max(maxY, s.Point.Y())
	}
	dxRange := maxX - minX
	dyRange := maxY - minY
	d := 1.1 * math.Max(dxRange, dyRange)
	if d == 0 {
		d = 1
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	clip := rectangle.New(cx-d/2, cy-d/2, cx+d/2, cy+d/2)
	if userClip != nil {
		clip = clip.Union(*userClip)
	}
	return clip
}

// FindAll runs Fortune's sweep over points and returns the clipped Voronoi
// diagram together with its dual Delaunay edges.
func FindAll(points []point.Point[float64], opts ...Option) (Results, error) {
	if len(points) < 3 {
		return Results{}, fmt.Errorf("voronoi: at least 3 sites are required, got %d", len(points))
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	sites := make([]Site, 0, len(points))
	var cx, cy float64
	for i, p := range points {
		sites = append(sites, Site{Point: p, Index: i})
		cx += p.X()
		cy += p.Y()
	}
	cx /= float64(len(points))
	cy /= float64(len(points))

	sorted := make([]Site, len(sites))
	copy(sorted, sites)
	sortSites(sorted)

	// Drop sites coincident with an already-seen position: Fortune's sweep
	// has no meaningful bisector between two sites at the same point.
	dedup := sorted[:0:0]
	for i, s := range sorted {
		if i > 0 && s.Point.Eq(sorted[i-1].Point) {
			continue
		}
		dedup = append(dedup, s)
	}
	sorted = dedup
	if len(sorted) < 3 {
		return Results{}, fmt.Errorf("voronoi: at least 3 distinct sites are required, got %d", len(sorted))
	}

	s := &sweep{
		sites:    sites,
		queue:    btree.NewG[*fortuneEvent](32, eventLess),
		centroid: point.New(cx, cy),
	}
	for _, site := range sorted {
		s.queue.ReplaceOrInsert(&fortuneEvent{
			y: site.Point.Y(), x: site.Point.X(), seq: s.nextSeq(),
			isSite: true, siteIdx: site.Index,
		})
	}

	for s.queue.Len() > 0 {
		ev, _ := s.queue.DeleteMin()
		if !ev.valid {
			continue
		}
		if ev.isSite {
			s.handleSite(ev.siteIdx)
		} else {
			s.handleCircle(ev)
		}
	}

	logDebugf("sweep finished: %d vertices, %d edges, %d delaunay pairs", len(s.vertices), len(s.edges), len(s.delaunay))
	clip := computeClip(sites, cfg.clip)
	far := math.Hypot(clip.Width(), clip.Height()) * 4

	var outEdges []VoronoiEdge
	for _, e := range s.edges {
		p0, p1 := s.farEndpoints(e, far)
		cp0, cp1, ok := rectangle.ClipLine(clip, p0, p1)
		if !ok {
			continue
		}
		if cp0.DistanceToPoint(cp1) < degenerateEdgeEpsilon {
			// Cocircular or near-cocircular sites can make the sweep emit a
			// bisector whose two ends resolve to the same Voronoi vertex
			// (spec.md's documented "extra degenerate zero-length edge"
			// failure mode). It carries no region-boundary information, so
			// it is dropped rather than reported as a real edge.
			continue
		}
		v1 := s.addVertex(cp0)
		v2 := s.addVertex(cp1)
		outEdges = append(outEdges, VoronoiEdge{Site1: e.Site1, Site2: e.Site2, Vertex1: v1, Vertex2: v2})
	}

	return Results{
		Sites:    sites,
		Vertices: s.vertices,
		Edges:    outEdges,
		Delaunay: s.delaunay,
		Clip:     clip,
	}, nil
}

// siteLess orders sites for the sweep: highest y first (the sweep directrix
// descends), x ascending to break ties. This is the same descending-y
// convention linesegment's Bentley-Ottmann sweep uses for its event queue,
// and is required here for a different reason: the parabola/breakpoint
// formulas in breakpointX assume every already-inserted arc's focus lies
// at or above the current sweep position.
func siteLess(p, q point.Point[float64]) bool {
	return p.Y() > q.Y() || (p.Y() == q.Y() && p.X() < q.X())
}

func sortSites(sites []Site) {
	for i := 1; i < len(sites); i++ {
		j := i
		for j > 0 && siteLess(sites[j].Point, sites[j-1].Point) {
			sites[j], sites[j-1] = sites[j-1], sites[j]
			j--
		}
	}
}
