package mergetree

import "errors"

// ErrSizeMismatch indicates the scalar field or vertex order does not
// match the mesh's vertex count.
var ErrSizeMismatch = errors.New("mergetree: scalars/order length does not match mesh vertex count")
