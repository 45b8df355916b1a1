// Package dsu implements a union-find disjoint-set with path compression,
// union by rank, and a per-root "extremum" slot (§4.B).
//
// What:
//
//   - New(n) allocates n singleton sets.
//   - Find(x) returns x's root, compressing the path on the way back.
//   - Union(a, b) merges by rank; it does NOT touch Extremum - the caller
//     rewrites Extremum[newRoot] afterwards. The merge-tree sweep sets it
//     to the rank just processed, which is the lowest rank seen so far in
//     the join sweep and the highest in the split sweep; the set itself
//     has no opinion about sweep direction.
//   - Reset reinitialises in place without reallocating, for reuse across
//     the join sweep and the split sweep.
//
// Why:
//
//   - This is the teacher's prim_kruskal DSU (find/union by rank with path
//     compression) generalised with the one extra slot §4.B requires:
//     a per-component sweep-leader tag that survives union.
//
// Complexity:
//
//   - New: O(n). Find/Union: amortised O(alpha(n)), practically O(1).
//
// Errors: none - New always succeeds given n >= 0; Find/Union on an
// out-of-range index panics, matching slice-index semantics rather than
// adding an error return to a hot loop.
package dsu
