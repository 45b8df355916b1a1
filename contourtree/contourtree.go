package contourtree

import "github.com/nellmills/contourtree/treestore"

// Merge combines a join tree and a split tree over the same ordered
// vertex set into the contour tree (§4.E).
//
// The two trees must have been built from the same mesh via the same
// vtxorder.Order - Merge checks node count, arc count and root count
// agree and returns ErrTreeShapeMismatch otherwise.
func Merge(join, split *treestore.Tree) (*treestore.Tree, error) {
	if join.NumNodes() != split.NumNodes() {
		return nil, ErrTreeShapeMismatch
	}
	if join.Roots == nil || split.Roots == nil {
		return nil, ErrTreeIncomplete
	}
	if len(join.Roots) != len(split.Roots) {
		return nil, ErrTreeShapeMismatch
	}
	if join.NumArcs() != split.NumArcs() {
		return nil, ErrTreeShapeMismatch
	}

	n := join.NumNodes()
	b := newBuilder(n, join, split)
	b.run(len(join.Roots))

	tree := treestore.Allocate(n, join.NumArcs())
	treestore.CopyNodes(tree, join)
	b.assemble(tree)
	return tree, nil
}

// builder holds the mutable working state of the leaf-pruning merge: two
// degree-counted adjacency lists (jUp, sDown - the pair whose combined
// size is the leaf criterion, §4.E) plus the two single-valued "successor"
// pointers every node has by construction (its own join-down neighbour
// and split-up neighbour, each 0-or-1 per §4.D), used to splice a leaf's
// neighbours back together once the leaf is retired.
type builder struct {
	n int

	jUp   [][]int // mutable; join up-neighbours
	sDown [][]int // mutable; split down-neighbours

	jDownSucc []int // -1 or the single join down-neighbour
	sUpSucc   []int // -1 or the single split up-neighbour

	done []bool

	contourUp   [][]int
	contourDown [][]int
}

func newBuilder(n int, join, split *treestore.Tree) *builder {
	b := &builder{
		n:           n,
		jUp:         make([][]int, n),
		sDown:       make([][]int, n),
		jDownSucc:   make([]int, n),
		sUpSucc:     make([]int, n),
		done:        make([]bool, n),
		contourUp:   make([][]int, n),
		contourDown: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		b.jUp[i] = append([]int(nil), join.UpArcs(i)...)
		b.sDown[i] = append([]int(nil), split.DownArcs(i)...)

		b.jDownSucc[i] = soleOrNone(join.DownArcs(i))
		b.sUpSucc[i] = soleOrNone(split.UpArcs(i))
	}
	return b
}

func soleOrNone(arcs []int) int {
	if len(arcs) == 1 {
		return arcs[0]
	}
	return -1
}

func (b *builder) degree(v int) int { return len(b.jUp[v]) + len(b.sDown[v]) }

// run peels degree-1 leaves (§4.E "leaf queue") until only numComponents
// nodes remain: one surviving node per connected component, each holding
// whatever contour arcs were spliced onto it by its neighbours' pops.
func (b *builder) run(numComponents int) {
	var queue []int
	for v := 0; v < b.n; v++ {
		if b.degree(v) == 1 {
			queue = append(queue, v)
		}
	}

	active := b.n
	for len(queue) > 0 && active > numComponents {
		v := queue[0]
		queue = queue[1:]

		if b.done[v] || b.degree(v) != 1 {
			continue // stale queue entry: already processed, or requeued then changed again
		}

		var pivot int
		if len(b.jUp[v]) == 0 {
			pivot = b.retireViaSplitDown(v)
		} else {
			pivot = b.retireViaJoinUp(v)
		}
		active--

		if pivot != -1 && !b.done[pivot] && b.degree(pivot) == 1 {
			queue = append(queue, pivot)
		}
	}
}

// retireViaSplitDown handles a leaf whose only surviving link is its
// single split-down neighbour m (join.degree[up][v] == 0): the contour
// arc is (m, v), m below and v above. v's own join-down successor p (if
// any) is re-threaded past v straight to m, so p's future search for its
// up-neighbour finds m instead of the now-retired v.
func (b *builder) retireViaSplitDown(v int) int {
	m := b.sDown[v][0]
	b.contourDown[v] = append(b.contourDown[v], m)
	b.contourUp[m] = append(b.contourUp[m], v)

	p := b.jDownSucc[v]
	if p != -1 {
		b.jUp[p] = replace(b.jUp[p], v, m)
		b.sUpSucc[m] = p
	}

	b.sDown[v] = nil
	b.jDownSucc[v] = -1
	b.done[v] = true
	return p
}

// retireViaJoinUp is the mirror case: the leaf's only surviving link is
// its single join-up neighbour m (split.degree[down][v] == 0). The
// contour arc is (v, m), v below and m above. v's split-up successor q
// (if any) is re-threaded past v to m.
func (b *builder) retireViaJoinUp(v int) int {
	m := b.jUp[v][0]
	b.contourUp[v] = append(b.contourUp[v], m)
	b.contourDown[m] = append(b.contourDown[m], v)

	q := b.sUpSucc[v]
	if q != -1 {
		b.sDown[q] = replace(b.sDown[q], v, m)
		b.jDownSucc[m] = q
	}

	b.jUp[v] = nil
	b.sUpSucc[v] = -1
	b.done[v] = true
	return q
}

// replace swaps the first occurrence of old in s for replacement; order
// within the slice carries no meaning (§3: arcs of one node are an
// unordered slice).
func replace(s []int, old, replacement int) []int {
	for i, x := range s {
		if x == old {
			s[i] = replacement
			return s
		}
	}
	return append(s, replacement)
}

// assemble lays out the final contour tree's arc array from the builder's
// per-node up/down lists, using the same prefix-sum offset technique as
// mergetree.assemble (§9).
func (b *builder) assemble(tree *treestore.Tree) {
	n := b.n
	cursor := 0
	for i := 0; i < n; i++ {
		up := len(b.contourUp[i])
		down := len(b.contourDown[i])

		tree.Nodes[i].DegreeUp = up
		tree.Nodes[i].FirstArcUp = cursor
		cursor += up

		tree.Nodes[i].DegreeDown = down
		tree.Nodes[i].FirstArcDown = cursor
		cursor += down
	}

	tree.Arcs = make([]int, cursor)
	for i := 0; i < n; i++ {
		off := tree.Nodes[i].FirstArcUp
		copy(tree.Arcs[off:off+len(b.contourUp[i])], b.contourUp[i])

		off = tree.Nodes[i].FirstArcDown
		copy(tree.Arcs[off:off+len(b.contourDown[i])], b.contourDown[i])
	}

	roots := make([]int, 0)
	for i := 0; i < n; i++ {
		if !b.done[i] {
			roots = append(roots, i)
		}
	}
	tree.Roots = roots
}
