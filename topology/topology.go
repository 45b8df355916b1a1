package topology

import (
	"fmt"

	"github.com/nellmills/contourtree/contourtree"
	"github.com/nellmills/contourtree/mergetree"
	"github.com/nellmills/contourtree/mesh"
	"github.com/nellmills/contourtree/treestore"
	"github.com/nellmills/contourtree/vtxorder"
)

// Result bundles the three trees a Build produces.
type Result struct {
	Join    *treestore.Tree
	Split   *treestore.Tree
	Contour *treestore.Tree
}

// Build runs the full pipeline: manifold check, vertex ordering, the
// join and split sweeps, and the contour-tree merge (§6 output
// contract: every tree gets N nodes and N-R arcs, R per-component
// roots).
func Build(m *mesh.Mesh, scalars []float64) (Result, error) {
	if len(scalars) != m.NumVertices() {
		return Result{}, fmt.Errorf("topology: %w", mergetree.ErrSizeMismatch)
	}
	if !m.IsManifold() {
		m.CheckManifold()
		if !m.IsManifold() {
			return Result{}, fmt.Errorf("topology: %w: %s", mesh.ErrNonManifold, m.ManifoldReason())
		}
	}

	order := vtxorder.Sort(scalars)

	join, err := mergetree.Build(m, order, scalars, mergetree.Join)
	if err != nil {
		return Result{}, fmt.Errorf("topology: join sweep: %w", err)
	}
	split, err := mergetree.Build(m, order, scalars, mergetree.Split)
	if err != nil {
		return Result{}, fmt.Errorf("topology: split sweep: %w", err)
	}

	contour, err := contourtree.Merge(join, split)
	if err != nil {
		return Result{}, fmt.Errorf("topology: merge: %w", err)
	}

	return Result{Join: join, Split: split, Contour: contour}, nil
}
