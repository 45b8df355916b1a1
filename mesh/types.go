package mesh

// NoEdge is the sentinel used in place of a null half-edge reference
// (a boundary Twin, or an unset slot).
const NoEdge = -1

// Point3 is a 3D vertex position. The scalar field used by the contour-tree
// engine is supplied separately (a []float64 passed to vtxorder.Sort and
// mergetree.Build); position is carried
// only for callers that need geometry (e.g. rendering downstream).
type Point3 struct {
	X, Y, Z float64
}

// HalfEdge is one directed edge of a triangle, per §3/§4.A.
//
// Invariant: for edge e, Edges[e.Next].From == e.To.
// For a non-boundary edge, Edges[e.Twin].From == e.To, Edges[e.Twin].To ==
// e.From, and Edges[e.Twin].Twin == e's own index.
type HalfEdge struct {
	From, To int
	Next     int
	Twin     int // NoEdge on a boundary
}

// Face is a CCW-oriented triangle, three vertex indices.
type Face [3]int

// Mesh is a read-only half-edge store built once from positions and faces.
// Build constructs it; CheckManifold validates it. Both are idempotent to
// call again, but callers normally call each exactly once.
type Mesh struct {
	positions []Point3
	faces     []Face

	edges     []HalfEdge // length 3*len(faces)
	firstEdge []int      // length len(positions), NoEdge if isolated
	degree    []int      // number of outgoing half-edges per vertex (= number of incident faces)

	manifoldChecked bool
	manifold        bool
	manifoldReason  string
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.positions) }

// NumFaces returns the triangle count.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumEdges returns the directed half-edge count (3*NumFaces).
func (m *Mesh) NumEdges() int { return len(m.edges) }

// Position returns the 3D position of vertex v.
func (m *Mesh) Position(v int) Point3 { return m.positions[v] }

// Face returns the three vertex indices of triangle f.
func (m *Mesh) Face(f int) Face { return m.faces[f] }

// HalfEdgeAt returns a copy of directed edge e.
func (m *Mesh) HalfEdgeAt(e int) HalfEdge { return m.edges[e] }

// FirstEdge returns the chosen first outgoing half-edge of vertex v, or
// NoEdge if v is isolated (incident to no face).
func (m *Mesh) FirstEdge(v int) int { return m.firstEdge[v] }

// Degree returns the number of distinct faces incident to v, equivalently
// the number of outgoing half-edges from v.
func (m *Mesh) Degree(v int) int { return m.degree[v] }

// IsManifold reports the result of CheckManifold. It is false until
// CheckManifold has been called.
func (m *Mesh) IsManifold() bool { return m.manifold }

// ManifoldReason describes why IsManifold is false, or is empty when
// IsManifold is true or CheckManifold has not run.
func (m *Mesh) ManifoldReason() string { return m.manifoldReason }
