// Package topology wires mesh, vtxorder, mergetree and contourtree into
// the single entry point described by §6's external interface: Build
// takes a mesh and a scalar field and returns the join tree, the split
// tree and their contour-tree merge.
//
// What:
//
//   - Build validates the mesh is manifold (§6 "the core requires a
//     closed or bordered 2-manifold"), orders its vertices, runs both
//     merge-tree sweeps, and merges them.
//
// Errors: Build surfaces mesh.ErrNonManifold, a size-mismatch error from
// mergetree, or a shape error from contourtree - see §6/§7's error
// taxonomy. There is no recovery path: any error is fatal to the whole
// build (§7 "no phase attempts local recovery").
package topology
