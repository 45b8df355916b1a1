// Package mesh implements a half-edge store over a triangle mesh: directed
// edges with next/twin links, a first-outgoing-edge table per vertex, a
// manifold check, and oriented one-ring traversal.
//
// What:
//
//   - Mesh wraps vertex positions and a triangle face list.
//   - Build derives the directed-edge array (3 per face), pairs twins by
//     sorting on the undirected edge key, and fills FirstEdge per vertex.
//   - CheckManifold walks every vertex's triangle fan (two-pass for
//     boundary vertices) to confirm exactly one fan per vertex, and rewrites
//     FirstEdge at boundary vertices to the true fan start.
//   - Neighbours(v) returns a restartable iterator over v's one-ring.
//
// Why:
//
//   - Everything downstream (vertex ordering, merge-tree sweep, contour-tree
//     merge) needs O(1) amortised neighbour enumeration around a vertex;
//     adjacency lists would require sorting at every sweep step instead of
//     once at construction.
//
// Complexity:
//
//   - Build: O(F log F) dominated by the twin-pairing sort.
//   - CheckManifold: O(V + F).
//   - Neighbours(v): O(deg(v)) per full traversal, O(1) amortised per step.
//
// Errors:
//
//	ErrNoFaces        - face list is empty.
//	ErrVertexIndex    - a face references a vertex index out of range.
//	ErrDegenerateFace - a face repeats a vertex index.
//	ErrAlloc          - an internal slice could not be sized (always nil
//	                    on a standard allocator; kept for the alloc-failed
//	                    error-taxonomy slot external callers rely on).
package mesh
