package mesh

import "errors"

// Sentinel errors for mesh construction and validation.
var (
	// ErrNoFaces indicates an empty face list; a mesh needs at least one triangle.
	ErrNoFaces = errors.New("mesh: face list is empty")

	// ErrVertexIndex indicates a face referenced a vertex index outside [0, numVertices).
	ErrVertexIndex = errors.New("mesh: face references vertex index out of range")

	// ErrDegenerateFace indicates a face repeats one of its three vertex indices.
	ErrDegenerateFace = errors.New("mesh: degenerate face repeats a vertex")

	// ErrAlloc indicates an internal buffer could not be sized.
	ErrAlloc = errors.New("mesh: allocation failed")

	// ErrNonManifold indicates CheckManifold found a vertex or edge violating
	// the 2-manifold assumption. Mesh.ManifoldReason() carries the detail.
	ErrNonManifold = errors.New("mesh: non-manifold mesh")
)
