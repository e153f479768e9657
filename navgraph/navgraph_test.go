package navgraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/navgraph"
	"github.com/nav2d/trinav/triangulate"
)

func TestBuildOnBareRectangleHasTwoDeadEnds(t *testing.T) {
	tri := triangulate.New(100, 100)
	g := navgraph.Build(tri)
	// The two seed triangles each have exactly one unconstrained edge (the
	// shared diagonal), so both are dead-end nodes directly joined by one
	// corridor with a single portal.
	require.Len(t, g.Nodes, 2)
	require.Equal(t, navgraph.DeadEnd, g.Nodes[0].Kind)
	require.Equal(t, navgraph.DeadEnd, g.Nodes[1].Kind)
	require.Len(t, g.Corridors, 1)
	require.Len(t, g.Corridors[0].Portals, 1)
}

func TestBuildOnBareRectanglePortalMatchesSharedDiagonal(t *testing.T) {
	tri := triangulate.New(100, 100)
	g := navgraph.Build(tri)

	want := []navgraph.Portal{{
		Left:  geom.Vec2f{100, 100},
		Right: geom.Vec2f{0, 0},
	}}
	if diff := cmp.Diff(want, g.Corridors[0].Portals); diff != "" {
		t.Fatalf("unexpected portal list (-want +got):\n%s", diff)
	}
}

func TestBuildWithInteriorObstacleProducesNodes(t *testing.T) {
	tri := triangulate.New(100, 100)
	tri.InsertVertices([]geom.Vec2i{
		{X: 40, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 60}, {X: 40, Y: 60},
	})
	a := vertexAt(t, tri, geom.Vec2i{X: 40, Y: 40})
	b := vertexAt(t, tri, geom.Vec2i{X: 60, Y: 40})
	c := vertexAt(t, tri, geom.Vec2i{X: 60, Y: 60})
	d := vertexAt(t, tri, geom.Vec2i{X: 40, Y: 60})
	tri.InsertConstraint(a, b)
	tri.InsertConstraint(b, c)
	tri.InsertConstraint(c, d)
	tri.InsertConstraint(d, a)

	g := navgraph.Build(tri)
	require.NotEmpty(t, g.Nodes)
	for _, c := range g.Corridors {
		require.Greater(t, c.Length, float32(0))
		require.Greater(t, c.MinWidth, float32(0))
	}
}

func TestBuildCentresUsesCentroidDistance(t *testing.T) {
	// The bare rectangle's two dead-end triangles have centroids
	// (200/3, 100/3) and (100/3, 200/3), 47.1405 apart.
	tri := triangulate.New(100, 100)
	g := navgraph.BuildCentres(tri)
	require.Len(t, g.Corridors, 1)
	for _, c := range g.Corridors {
		require.GreaterOrEqual(t, c.Length, float32(0))
		require.InDelta(t, 47.1405, c.Length, 1e-3)
	}
}

func vertexAt(t *testing.T, tri *triangulate.Triangulation, p geom.Vec2i) triangulate.VertIndex {
	t.Helper()
	for i := 0; i < tri.NumVertices(); i++ {
		if tri.Vertex(triangulate.VertIndex(i)) == p {
			return triangulate.VertIndex(i)
		}
	}
	t.Fatalf("vertex %v not found", p)
	return triangulate.NoVert
}
