package contourtree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/nellmills/contourtree/contourtree"
	"github.com/nellmills/contourtree/internal/meshfixture"
	"github.com/nellmills/contourtree/mergetree"
	"github.com/nellmills/contourtree/mesh"
	"github.com/nellmills/contourtree/treestore"
	"github.com/nellmills/contourtree/vtxorder"
)

func buildMesh(t *testing.T, src string) (*mesh.Mesh, []float64) {
	t.Helper()
	p, err := meshfixture.Parse(src)
	require.NoError(t, err)
	m, err := mesh.Build(p.Positions, p.Faces)
	require.NoError(t, err)
	m.CheckManifold()
	require.True(t, m.IsManifold(), m.ManifoldReason())
	return m, p.Scalars
}

const singleTriangle = `
V 0 0 0 0
V 1 0 0 1
V 0 1 0 2
F 0 1 2
`

const tetrahedron = `
V 0 0 0 0
V 1 0 0 1
V 0 1 0 2
V 0 0 1 3
F 0 2 1
F 0 1 3
F 1 2 3
F 2 0 3
`

// TestSingleTriangle is scenario S2: a contour tree with no saddles
// should come out identical to the join tree (and the split tree, up to
// the direction the arcs are recorded).
func TestSingleTriangle(t *testing.T) {
	m, scalars := buildMesh(t, singleTriangle)
	order := vtxorder.Sort(scalars)

	join, err := mergetree.Build(m, order, scalars, mergetree.Join)
	require.NoError(t, err)
	split, err := mergetree.Build(m, order, scalars, mergetree.Split)
	require.NoError(t, err)

	ct, err := contourtree.Merge(join, split)
	require.NoError(t, err)

	require.Equal(t, 3, ct.NumNodes())
	require.Equal(t, []int{1}, ct.UpArcs(0))
	require.Empty(t, ct.DownArcs(0))
	require.Equal(t, []int{2}, ct.UpArcs(1))
	require.Equal(t, []int{0}, ct.DownArcs(1))
	require.Empty(t, ct.UpArcs(2))
	require.Equal(t, []int{1}, ct.DownArcs(2))
	require.Equal(t, []int{1}, ct.Roots)
}

// TestTetrahedron is scenario S3: the join/split trees are both a simple
// 4-node path, so the contour tree is that same path.
func TestTetrahedron(t *testing.T) {
	m, scalars := buildMesh(t, tetrahedron)
	order := vtxorder.Sort(scalars)

	join, err := mergetree.Build(m, order, scalars, mergetree.Join)
	require.NoError(t, err)
	split, err := mergetree.Build(m, order, scalars, mergetree.Split)
	require.NoError(t, err)

	ct, err := contourtree.Merge(join, split)
	require.NoError(t, err)

	require.Equal(t, 4, ct.NumNodes())
	require.Equal(t, join.NumArcs(), ct.NumArcs())

	total := 0
	for i := 0; i < ct.NumNodes(); i++ {
		total += len(ct.UpArcs(i)) + len(ct.DownArcs(i))
	}
	require.Equal(t, 2*3, total) // N-R=3 arcs, each counted from both ends
}

// TestTwoDisjointTetrahedra is scenario S4: two separate components stay
// separate through the merge, yielding two roots.
func TestTwoDisjointTetrahedra(t *testing.T) {
	const twoTets = `
V 0 0 0 0
V 1 0 0 1
V 0 1 0 2
V 0 0 1 3
V 10 0 0 4
V 11 0 0 5
V 10 1 0 6
V 10 0 1 7
F 0 2 1
F 0 1 3
F 1 2 3
F 2 0 3
F 4 6 5
F 4 5 7
F 5 6 7
F 6 4 7
`
	m, scalars := buildMesh(t, twoTets)
	order := vtxorder.Sort(scalars)

	join, err := mergetree.Build(m, order, scalars, mergetree.Join)
	require.NoError(t, err)
	split, err := mergetree.Build(m, order, scalars, mergetree.Split)
	require.NoError(t, err)

	ct, err := contourtree.Merge(join, split)
	require.NoError(t, err)

	require.Equal(t, 8, ct.NumNodes())
	require.Len(t, ct.Roots, 2)
	require.Equal(t, join.NumArcs(), ct.NumArcs())
}

// hexFan is a 7-vertex umbrella: a centre vertex c joined to a ring of
// six boundary vertices 1..6, triangulated as a fan (F c i (i+1)). Its
// scalar field is chosen so that ring vertex 6 (value 7) is a local
// valley between two higher ring shoulders (vertices 1 and 5, its ring
// neighbours on either side) that are not otherwise connected except through the
// centre - the centre is the global minimum and is swept last, so at
// the moment the join sweep reaches vertex 6 its two ring neighbours
// have already merged into two *separate* components. Processing vertex
// 6 therefore unions both at once: a genuine join-tree saddle
// (join.degree[up] == 2), the node shape retireViaJoinUp/
// retireViaSplitDown must splice correctly and that no fixture before
// this one exercised (every prior fixture sweeps into a simple path).
const hexFan = `
V 0 0 0 0
V 1 0 0 10
V 1 1 0 8
V 0 1 0 2
V -1 1 0 9
V -1 0 0 11
V 0 -1 0 7
F 0 1 2
F 0 2 3
F 0 3 4
F 0 4 5
F 0 5 6
F 0 6 1
`

// TestContourTreeSaddle exercises the splice logic on a node with
// join.degree[up] > 1, the path Comment 2 of the review flagged as
// untested by every other fixture in this package.
func TestContourTreeSaddle(t *testing.T) {
	m, scalars := buildMesh(t, hexFan)
	order := vtxorder.Sort(scalars)

	join, err := mergetree.Build(m, order, scalars, mergetree.Join)
	require.NoError(t, err)
	split, err := mergetree.Build(m, order, scalars, mergetree.Split)
	require.NoError(t, err)

	// Vertex id 6 (scalar 7) sorts to ascending rank 2: 0(val0), 3(val2),
	// 6(val7), 2(val8), 4(val9), 1(val10), 5(val11).
	saddleRank := order.VertexToNode[6]
	require.Equal(t, 2, saddleRank, "vertex 6 expected at ascending rank 2")
	require.Len(t, join.UpArcs(saddleRank), 2, "vertex 6 should be a genuine join-tree saddle")

	ct, err := contourtree.Merge(join, split)
	require.NoError(t, err)

	require.Equal(t, 7, ct.NumNodes())
	require.Equal(t, join.NumArcs(), ct.NumArcs())
	require.Len(t, ct.Roots, 1)

	total := 0
	for i := 0; i < ct.NumNodes(); i++ {
		up, down := len(ct.UpArcs(i)), len(ct.DownArcs(i))
		require.True(t, up+down >= 1, "node %d has no contour arcs at all", i)
		total += up + down
	}
	require.Equal(t, 2*6, total) // N-R=6 arcs, each counted from both ends
}

// TestIdempotent is §8 property 7 applied to the merge stage.
func TestIdempotent(t *testing.T) {
	m, scalars := buildMesh(t, tetrahedron)
	order := vtxorder.Sort(scalars)

	join, err := mergetree.Build(m, order, scalars, mergetree.Join)
	require.NoError(t, err)
	split, err := mergetree.Build(m, order, scalars, mergetree.Split)
	require.NoError(t, err)

	a, err := contourtree.Merge(join, split)
	require.NoError(t, err)
	b, err := contourtree.Merge(join, split)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(a, b))
}

func TestShapeMismatch(t *testing.T) {
	m1, scalars1 := buildMesh(t, singleTriangle)
	order1 := vtxorder.Sort(scalars1)
	join1, err := mergetree.Build(m1, order1, scalars1, mergetree.Join)
	require.NoError(t, err)

	m2, scalars2 := buildMesh(t, tetrahedron)
	order2 := vtxorder.Sort(scalars2)
	split2, err := mergetree.Build(m2, order2, scalars2, mergetree.Split)
	require.NoError(t, err)

	_, err = contourtree.Merge(join1, split2)
	require.ErrorIs(t, err, contourtree.ErrTreeShapeMismatch)
}

func TestTreeIncomplete(t *testing.T) {
	m, scalars := buildMesh(t, singleTriangle)
	order := vtxorder.Sort(scalars)
	join, err := mergetree.Build(m, order, scalars, mergetree.Join)
	require.NoError(t, err)

	blank := treestore.Allocate(join.NumNodes(), 0) // never built: Roots is nil
	_, err = contourtree.Merge(join, blank)
	require.ErrorIs(t, err, contourtree.ErrTreeIncomplete)
}
