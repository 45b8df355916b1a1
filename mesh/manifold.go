package mesh

import "fmt"

// CheckManifold walks every vertex's triangle fan and sets IsManifold/
// ManifoldReason accordingly, per §4.A. Interior vertices must close their
// fan in exactly Degree(v) steps; boundary vertices require a forward walk
// (to the boundary exit) and a backward walk (from the same start, the
// other way) that together visit exactly Degree(v) faces. As a side effect,
// a boundary vertex's FirstEdge is rewritten to the true fan start so later
// one-ring iteration never re-enters across the boundary gap.
//
// Complexity: O(V + F).
func (m *Mesh) CheckManifold() {
	m.manifoldChecked = true
	m.manifold = true
	m.manifoldReason = ""

	for v := 0; v < len(m.positions); v++ {
		if m.firstEdge[v] == NoEdge {
			continue // isolated vertex, vacuously fine
		}
		if !m.checkVertexFan(v) {
			return
		}
	}
}

// checkVertexFan validates vertex v's fan and returns false (having set
// manifold=false and a reason) on the first defect found.
func (m *Mesh) checkVertexFan(v int) bool {
	start := m.firstEdge[v]

	// Forward walk: repeatedly cross to the next face around v.
	cur := start
	forward := 0
	for {
		forward++
		spoke := m.prevEdge(cur) // incoming edge at v within cur's face
		he := m.edges[spoke]
		if he.To != v {
			return m.fail(fmt.Sprintf("vertex %d: malformed triangle fan near edge %d", v, cur))
		}
		if he.Twin == NoEdge {
			break // boundary reached going forward
		}
		cur = he.Twin
		if cur == start {
			// Closed cycle: interior vertex (or fully-closed boundary loop).
			if forward != m.degree[v] {
				return m.fail(fmt.Sprintf("vertex %d: fan closed after %d faces, expected %d (multiple fans)", v, forward, m.degree[v]))
			}
			return true
		}
		if m.edges[cur].From != v {
			return m.fail(fmt.Sprintf("vertex %d: twin crossing landed on a non-outgoing edge", v))
		}
	}

	// Boundary vertex: forward walk ended without closing. Walk backward
	// from start the other way to find the remaining faces: cross cur's
	// own twin (the edge on the far side of cur itself, not of its
	// incoming spoke) into the adjacent face, then take Next to land back
	// on the outgoing edge at v within that face.
	backward := 0
	cur = start
	for {
		he := m.edges[cur]
		if he.Twin == NoEdge {
			break // boundary reached going backward too: fan fully enumerated
		}
		next := m.edges[he.Twin].Next
		if m.edges[next].From != v {
			return m.fail(fmt.Sprintf("vertex %d: backward walk landed on a non-outgoing edge", v))
		}
		if next == start {
			return m.fail(fmt.Sprintf("vertex %d: backward walk cycled without reaching a boundary (multiple fans)", v))
		}
		cur = next
		backward++
	}

	if forward+backward != m.degree[v] {
		return m.fail(fmt.Sprintf("vertex %d: boundary fan visited %d faces, expected %d (multiple fans)", v, forward+backward, m.degree[v]))
	}

	// Side effect: reroot FirstEdge at the true fan start (the far end of
	// the backward walk) so later traversal starting from FirstEdge walks
	// the whole fan in one forward pass without crossing the gap.
	m.firstEdge[v] = cur
	return true
}

func (m *Mesh) fail(reason string) bool {
	m.manifold = false
	m.manifoldReason = reason
	return false
}

// RingIterator walks the one-ring of a vertex, yielding each neighbour
// exactly once in cyclic order. It is restartable: call Neighbours
// again for a fresh traversal. Safe to use only after Build (and normally
// after a successful CheckManifold).
type RingIterator struct {
	m       *Mesh
	v       int
	cur     int
	start   int
	done    bool
	started bool
}

// Neighbours returns a restartable one-ring iterator over v's neighbours.
func (m *Mesh) Neighbours(v int) *RingIterator {
	return &RingIterator{m: m, v: v, cur: m.firstEdge[v], start: m.firstEdge[v]}
}

// Next returns the next neighbour vertex and true, or (0, false) once the
// ring is exhausted.
func (r *RingIterator) Next() (int, bool) {
	if r.done || r.cur == NoEdge {
		return 0, false
	}
	m := r.m
	he := m.edges[r.cur]
	neighbour := he.To

	if !r.started {
		r.started = true
	}

	// Advance: cross within the face to the incoming spoke, then across
	// its twin to the next outgoing edge at v (§4.A one-ring traversal).
	spoke := m.prevEdge(r.cur)
	he2 := m.edges[spoke]
	if he2.Twin == NoEdge {
		r.done = true
		return neighbour, true
	}
	next := he2.Twin
	if next == r.start {
		r.done = true
		return neighbour, true
	}
	r.cur = next

	return neighbour, true
}
