// Package vtxorder computes the strict total order on mesh vertices used
// throughout the contour-tree engine: (scalar, vertex_id) lexicographic,
// ascending (§4.C, simulation of simplicity).
//
// What:
//
//   - Sort(scalars) returns an Order: NodeToVertex[i] is the original
//     vertex id at sorted rank i, and VertexToNode is its inverse.
//
// Why:
//
//   - A contour tree is only defined for a totally ordered field; ties on
//     scalar value are broken deterministically by vertex id so the
//     result does not depend on sort stability or map iteration order.
//
// Complexity: O(n log n).
//
// Errors: none - Sort always succeeds for any non-negative-length input.
package vtxorder
