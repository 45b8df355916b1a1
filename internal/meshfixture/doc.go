// Package meshfixture is a test-only helper: a tiny textual grammar for
// building mesh.Mesh fixtures without hand-assembling position/face slices
// in every test. It is not part of the public API (hence internal/).
//
// Grammar (one statement per line):
//
//	V <x> <y> <z> [<scalar>]   vertex at (x,y,z); scalar defaults to z
//	F <a> <b> <c>              triangle referencing three vertex indices
//
// Grounded on the participle grammars in the lnz-BalancedGo and
// lnz-log-k-decomp pack members, which both parse a small textual graph
// format into structs for test fixtures; this package does the same for
// meshes instead of hand-building Face/Point3 slices in every test.
package meshfixture
