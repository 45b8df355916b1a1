// Package contourtree merges a join tree and a split tree into the
// contour tree via leaf pruning (§2 component E, §4.E; the
// Carr-Snoeyink-Axen algorithm).
//
// What:
//
//   - Merge(join, split) validates the two trees share shape (§4.E
//     "Invariant checked up-front"), then repeatedly peels degree-1
//     leaves from the combined (join-up, split-down) structure, splicing
//     each leaf's remaining two "successor" pointers (its join-down
//     neighbour and split-up neighbour, each of which is always 0 or 1
//     by construction - §4.D never gives a node more than one such
//     neighbour) together so the pruned structure stays a valid tree.
//
// Why / correction from spec.md:
//
//   - §4.E's prose names the leaf-classification target as
//     "target-of(join.up-arc[leaf])" for the join.degree[up]==0 case,
//     but that case by definition has zero join up-arcs to target - the
//     surviving arc is the leaf's single split-down arc. This module
//     implements the corrected version (the target is always the
//     leaf's one remaining neighbour, whichever side it survives on) and
//     records the correction in DESIGN.md, per §9's explicit warning that
//     the original source's splice arithmetic should not be replicated
//     verbatim and should be validated against §8's scenarios instead.
//
// Complexity: O(N) amortised (each splice touches O(1) lists).
//
// Errors:
//
//	ErrTreeShapeMismatch - join/split disagree on node/arc/root counts.
//	ErrTreeIncomplete    - a tree is missing its roots (not fully built).
package contourtree
