package dcel

import "fmt"

// Validate checks the structural invariants spec.md §3.3 requires of a
// subdivision: twin involution, next/prev inverse consistency, same-face
// cycles, closed next-cycles, and a single unbounded face.
func Validate(s *Subdivision) error {
	n := len(s.HalfEdges)
	for i := 0; i < n; i++ {
		e := HalfEdgeID(i)
		he := s.HalfEdges[e]

		if he.Twin < 0 || int(he.Twin) >= n {
			return fmt.Errorf("dcel: half-edge %d has out-of-range twin %d", e, he.Twin)
		}
		if he.Twin == e {
			return fmt.Errorf("dcel: half-edge %d is its own twin", e)
		}
		if s.HalfEdges[he.Twin].Twin != e {
			return fmt.Errorf("dcel: twin relation not involutive at half-edge %d", e)
		}

		if he.Next < 0 || int(he.Next) >= n {
			return fmt.Errorf("dcel: half-edge %d has out-of-range next %d", e, he.Next)
		}
		if s.HalfEdges[he.Next].Prev != e {
			return fmt.Errorf("dcel: next/prev mismatch at half-edge %d", e)
		}
		if s.HalfEdges[he.Next].Face != he.Face {
			return fmt.Errorf("dcel: half-edge %d and its next disagree on face", e)
		}
		if s.Destination(e) != s.HalfEdges[he.Next].Origin {
			return fmt.Errorf("dcel: half-edge %d's destination doesn't match next's origin", e)
		}
	}

	visited := make([]bool, n)
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		e := HalfEdgeID(i)
		start := e
		steps := 0
		for {
			if visited[e] {
				if e != start {
					return fmt.Errorf("dcel: next-cycle starting at half-edge %d does not close", start)
				}
				break
			}
			visited[e] = true
			e = s.HalfEdges[e].Next
			steps++
			if steps > n {
				return fmt.Errorf("dcel: next-cycle starting at half-edge %d failed to close within %d steps", start, n)
			}
		}
	}

	for id, v := range s.Vertices {
		if v.OutgoingEdge == NoHalfEdge {
			return fmt.Errorf("dcel: vertex %d has no outgoing half-edge", id)
		}
		if s.HalfEdges[v.OutgoingEdge].Origin != VertexID(id) {
			return fmt.Errorf("dcel: vertex %d's outgoing edge does not originate there", id)
		}
	}

	unbounded := 0
	for id, f := range s.Faces {
		if f.OuterEdge == NoHalfEdge {
			unbounded++
			continue
		}
		if int(f.OuterEdge) < 0 || int(f.OuterEdge) >= n {
			return fmt.Errorf("dcel: face %d has out-of-range outer edge %d", id, f.OuterEdge)
		}
	}
	if unbounded != 1 {
		return fmt.Errorf("dcel: expected exactly one unbounded face, found %d", unbounded)
	}

	return nil
}
