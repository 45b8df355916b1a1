// Package mergetree builds the join tree and the split tree: a monotone
// sweep over ordered vertices that unions mesh-adjacent components and
// emits merge-tree arcs (§2 component D, §4.D).
//
// What:
//
//   - Build(mesh, order, scalars, dir) runs one sweep, high-to-low for
//     Join or low-to-high for Split, sharing the same algorithm body
//     parameterised by a direction flag rather than function pointers
//     (§9 "function-pointer dispatch -> tagged direction").
//   - The disjoint-set is indexed by sorted node rank (not vertex id), and
//     its Extremum slot tracks the component's current sweep frontier.
//
// Why:
//
//   - A join tree records how sublevel sets merge as the scalar rises; a
//     split tree mirrors it for superlevel sets. Both reduce to the same
//     sweep with the comparison and step direction flipped - the classic
//     Carr-Snoeyink-Axen construction this module's contour-tree package
//     later merges.
//
// Complexity: O(E) where E is the mesh's directed-edge count, amortised
// near-O(alpha(n)) per disjoint-set operation.
//
// Errors:
//
//	ErrSizeMismatch - scalars/order length does not match the mesh's
//	                  vertex count.
package mergetree
