package mergetree

import (
	"sort"

	"github.com/nellmills/contourtree/dsu"
	"github.com/nellmills/contourtree/mesh"
	"github.com/nellmills/contourtree/treestore"
	"github.com/nellmills/contourtree/vtxorder"
)

// Direction selects which merge tree a sweep builds.
type Direction int

const (
	// Join sweeps rank high to low, producing the join tree.
	Join Direction = iota
	// Split sweeps rank low to high, producing the split tree.
	Split
)

type rawArc struct {
	lo, hi int // lo has the smaller node rank (gets the up-arc), hi the larger (gets the down-arc)
}

// Build runs one monotone sweep over order and returns the resulting
// merge tree (§4.D). scalars and order must describe the same mesh's
// vertex set.
func Build(m *mesh.Mesh, order vtxorder.Order, scalars []float64, dir Direction) (*treestore.Tree, error) {
	n := m.NumVertices()
	if len(scalars) != n || len(order.NodeToVertex) != n {
		return nil, ErrSizeMismatch
	}

	ds := dsu.New(n)
	degreeUp := make([]int, n)
	degreeDown := make([]int, n)
	var raws []rawArc

	start, step, limit := sweepBounds(dir, n)
	for i := start; i != limit; i += step {
		v := order.NodeToVertex[i]
		ring := m.Neighbours(v)
		for {
			u, ok := ring.Next()
			if !ok {
				break
			}
			j := order.VertexToNode[u]
			if !alreadyProcessed(dir, i, j) {
				continue
			}
			ri, rj := ds.Find(i), ds.Find(j)
			if ri == rj {
				continue
			}
			leader := ds.Extremum[rj]
			lo, hi := i, leader
			if leader < i {
				lo, hi = leader, i
			}
			raws = append(raws, rawArc{lo: lo, hi: hi})
			degreeUp[lo]++
			degreeDown[hi]++

			newRoot := ds.Union(ri, rj)
			ds.Extremum[newRoot] = i
		}
	}

	roots := make([]int, 0, len(ds.Roots()))
	for _, r := range ds.Roots() {
		roots = append(roots, ds.Extremum[r])
	}
	sort.Ints(roots)

	return assemble(order, scalars, degreeUp, degreeDown, raws, roots), nil
}

// sweepBounds returns the (start, step, exclusiveLimit) triple for dir.
func sweepBounds(dir Direction, n int) (start, step, limit int) {
	if dir == Join {
		return n - 1, -1, -1
	}
	return 0, 1, n
}

// alreadyProcessed reports whether neighbour rank j was swept before
// current rank i, per dir's direction.
func alreadyProcessed(dir Direction, i, j int) bool {
	if dir == Join {
		return j > i
	}
	return j < i
}

// assemble lays out the two-pass arc array (§3, §4.D "Arc layout"): a
// first pass already counted each node's up/down degree while sweeping;
// this pass turns those counts into contiguous [up-slice][down-slice]
// offsets via a running cursor, then a second walk over the recorded raw
// arcs writes each one into its slot - the separation the spec's design
// notes (§9) call for, instead of a single first_arc field patched after
// the fact.
func assemble(order vtxorder.Order, scalars []float64, degreeUp, degreeDown []int, raws []rawArc, roots []int) *treestore.Tree {
	n := len(order.NodeToVertex)
	tree := treestore.Allocate(n, 2*len(raws))
	copy(tree.NodeToVertex, order.NodeToVertex)
	copy(tree.VertexToNode, order.VertexToNode)
	tree.Roots = roots

	upCursor := make([]int, n)
	downCursor := make([]int, n)
	cursor := 0
	for i := 0; i < n; i++ {
		tree.Nodes[i].Value = scalars[order.NodeToVertex[i]]
		tree.Nodes[i].VertexID = order.NodeToVertex[i]
		tree.Nodes[i].DegreeUp = degreeUp[i]
		tree.Nodes[i].DegreeDown = degreeDown[i]

		tree.Nodes[i].FirstArcUp = cursor
		upCursor[i] = cursor
		cursor += degreeUp[i]

		tree.Nodes[i].FirstArcDown = cursor
		downCursor[i] = cursor
		cursor += degreeDown[i]
	}

	tree.Arcs = make([]int, cursor)
	for _, ra := range raws {
		tree.Arcs[upCursor[ra.lo]] = ra.hi
		upCursor[ra.lo]++
		tree.Arcs[downCursor[ra.hi]] = ra.lo
		downCursor[ra.hi]++
	}

	return tree
}
