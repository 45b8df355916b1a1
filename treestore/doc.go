// Package treestore holds the flat node/arc representation shared by the
// join tree, split tree, and contour tree (§3 Tree node/arc, §4.F).
//
// What:
//
//   - Tree.Nodes is a flat []Node; each node's up-arcs then down-arcs
//     occupy a contiguous slice of the single Tree.Arcs array.
//   - Allocate/CopyNodes/NodeType/IsCritical are the operations §4.F names.
//
// Why:
//
//   - No pointers, no per-node allocation: the mesh's cyclic half-edge
//     shape taught the same lesson (§9 "cyclic pointer graphs -> arena +
//     indices"), and the same arena-of-indices approach applies to trees.
//
// Complexity: Allocate is O(n + arcs). NodeType/IsCritical are O(1).
package treestore
