package contourtree

import "errors"

// ErrTreeShapeMismatch indicates the join and split trees were not built
// from the same mesh (node/arc/root counts disagree).
var ErrTreeShapeMismatch = errors.New("contourtree: join and split trees disagree on shape")

// ErrTreeIncomplete indicates a tree argument is missing its roots, i.e.
// it was never populated by mergetree.Build.
var ErrTreeIncomplete = errors.New("contourtree: tree has no roots, was it built?")
