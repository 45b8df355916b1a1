package vtxorder

import "sort"

// Order is the result of sorting vertices by (scalar, id).
type Order struct {
	// NodeToVertex[i] is the original vertex id at sorted rank i.
	NodeToVertex []int
	// VertexToNode[v] is the sorted rank of vertex v; the inverse of
	// NodeToVertex.
	VertexToNode []int
}

// Sort produces the strict total order over len(scalars) vertices:
// ascending by scalar value, ties broken ascending by vertex id.
func Sort(scalars []float64) Order {
	n := len(scalars)
	nodeToVertex := make([]int, n)
	for v := range nodeToVertex {
		nodeToVertex[v] = v
	}
	sort.Slice(nodeToVertex, func(i, j int) bool {
		vi, vj := nodeToVertex[i], nodeToVertex[j]
		if scalars[vi] != scalars[vj] {
			return scalars[vi] < scalars[vj]
		}
		return vi < vj
	})

	vertexToNode := make([]int, n)
	for rank, v := range nodeToVertex {
		vertexToNode[v] = rank
	}

	return Order{NodeToVertex: nodeToVertex, VertexToNode: vertexToNode}
}

// At returns the scalar value of the vertex at sorted rank i.
func (o Order) At(scalars []float64, i int) float64 {
	return scalars[o.NodeToVertex[i]]
}
