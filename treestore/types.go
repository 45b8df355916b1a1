package treestore

// NodeType classifies a node by its up/down degree (§4.F).
type NodeType int

const (
	Regular NodeType = iota
	Minimum
	Maximum
	Saddle
	Deleted
)

func (t NodeType) String() string {
	switch t {
	case Regular:
		return "regular"
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case Saddle:
		return "saddle"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Node is one tree node: a vertex at a given sorted rank, with its arcs'
// degree and starting offset into the tree's shared arc array, split by
// direction (§3).
type Node struct {
	Value float64
	// VertexID is the original mesh vertex this node represents.
	VertexID int

	DegreeUp, DegreeDown     int
	FirstArcUp, FirstArcDown int
}

// Tree is a flat node/arc store. Arcs[FirstArcUp[n] : FirstArcUp[n]+DegreeUp[n]]
// holds the up-neighbour node indices of node n; the down slice follows
// the same pattern with FirstArcDown/DegreeDown.
type Tree struct {
	Nodes []Node
	Arcs  []int // far-node index only; owner is implicit by array position

	// Roots holds one node index per connected component (§4.D "Roots").
	Roots []int

	// NodeToVertex/VertexToNode mirror vtxorder.Order for this tree's
	// node ordering (both trees reuse the same order per §4.C).
	NodeToVertex []int
	VertexToNode []int
}

// NumNodes returns the node count.
func (t *Tree) NumNodes() int { return len(t.Nodes) }

// NumArcs returns len(t.Arcs), the number of arc-array entries in use.
// Every arc is stored once in each endpoint's slice, so this is twice the
// number of tree arcs.
func (t *Tree) NumArcs() int { return len(t.Arcs) }

// UpArcs returns the up-neighbour node indices of node n.
func (t *Tree) UpArcs(n int) []int {
	node := t.Nodes[n]
	return t.Arcs[node.FirstArcUp : node.FirstArcUp+node.DegreeUp]
}

// DownArcs returns the down-neighbour node indices of node n.
func (t *Tree) DownArcs(n int) []int {
	node := t.Nodes[n]
	return t.Arcs[node.FirstArcDown : node.FirstArcDown+node.DegreeDown]
}

// NodeType classifies node n from its current degree pair.
func (t *Tree) NodeType(n int) NodeType {
	node := t.Nodes[n]
	up, down := node.DegreeUp, node.DegreeDown
	switch {
	case up == 0 && down == 0:
		return Deleted
	case up == 0:
		return Maximum
	case down == 0:
		return Minimum
	case up == 1 && down == 1:
		return Regular
	default:
		return Saddle
	}
}

// IsCritical reports whether node n is neither Regular nor Deleted.
func (t *Tree) IsCritical(n int) bool {
	switch t.NodeType(n) {
	case Regular, Deleted:
		return false
	default:
		return true
	}
}

// Allocate creates a Tree with n nodes and room for arcCap arcs. Nodes are
// zero-valued; the builder fills Value/VertexID/degrees/offsets.
func Allocate(n, arcCap int) *Tree {
	return &Tree{
		Nodes:        make([]Node, n),
		Arcs:         make([]int, 0, arcCap),
		NodeToVertex: make([]int, n),
		VertexToNode: make([]int, n),
	}
}

// CopyNodes initialises dst's ordering (Value, VertexID, NodeToVertex,
// VertexToNode) from src, leaving degrees/offsets/arcs untouched - used to
// seed the contour tree's node array from the join tree's, since both share
// the same (scalar, id) order (§4.C).
func CopyNodes(dst, src *Tree) {
	copy(dst.NodeToVertex, src.NodeToVertex)
	copy(dst.VertexToNode, src.VertexToNode)
	for i := range dst.Nodes {
		dst.Nodes[i].Value = src.Nodes[i].Value
		dst.Nodes[i].VertexID = src.Nodes[i].VertexID
	}
}
