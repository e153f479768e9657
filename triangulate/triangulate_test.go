package triangulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/triangulate"
)

func newBoundary(t *testing.T) *triangulate.Triangulation {
	t.Helper()
	tri := triangulate.New(100, 100)
	require.NotPanics(t, tri.CheckInvariants)
	require.Equal(t, 4, tri.NumVertices())
	require.Equal(t, 2, tri.NumTriangles())
	require.Equal(t, 4, tri.NumFixedEdges())
	return tri
}

func TestNewSeedsBoundaryRectangle(t *testing.T) {
	newBoundary(t)
}

func TestInsertVertexInterior(t *testing.T) {
	tri := newBoundary(t)
	data := tri.InsertVertex(geom.Vec2i{X: 50, Y: 50})
	require.True(t, data.OK)
	require.False(t, data.HasOverlapEdge)
	require.Equal(t, 5, tri.NumVertices())
	require.Equal(t, 4, tri.NumTriangles())
	require.NotPanics(t, tri.CheckInvariants)
}

func TestInsertVertexDuplicateReportsOverlap(t *testing.T) {
	tri := newBoundary(t)
	first := tri.InsertVertex(geom.Vec2i{X: 50, Y: 50})
	require.True(t, first.OK)

	before := tri.NumVertices()
	second := tri.InsertVertex(geom.Vec2i{X: 50, Y: 50})
	require.True(t, second.OK)
	require.Equal(t, findVertex(t, tri, geom.Vec2i{X: 50, Y: 50}), second.OverlappingVertex)
	require.Equal(t, before, tri.NumVertices())
}

func TestInsertVertexOutOfDomain(t *testing.T) {
	tri := newBoundary(t)
	data := tri.InsertVertex(geom.Vec2i{X: -1, Y: 10})
	require.False(t, data.OK)
	require.Equal(t, 4, tri.NumVertices())
}

func TestInsertVertexOnConstrainedEdgeSplitsIt(t *testing.T) {
	tri := newBoundary(t)
	before := tri.NumFixedEdges()
	data := tri.InsertVertex(geom.Vec2i{X: 50, Y: 0})
	require.True(t, data.OK)
	require.True(t, data.HasOverlapEdge)
	require.Equal(t, before+1, tri.NumFixedEdges())
	require.NotPanics(t, tri.CheckInvariants)
}

func TestInsertManyInteriorPointsKeepsInvariants(t *testing.T) {
	tri := triangulate.New(100, 100)
	pts := []geom.Vec2i{
		{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 50, Y: 50}, {X: 20, Y: 80},
		{X: 70, Y: 70}, {X: 30, Y: 40}, {X: 60, Y: 20}, {X: 80, Y: 85},
	}
	tri.InsertVertices(pts)
	require.NotPanics(t, tri.CheckInvariants)
	require.GreaterOrEqual(t, tri.NumTriangles(), 2+2*len(pts))
}

func TestInsertConstraintMarksEdgeFixed(t *testing.T) {
	tri := triangulate.New(100, 100)
	tri.InsertVertices([]geom.Vec2i{{X: 20, Y: 20}, {X: 80, Y: 80}})
	a := findVertex(t, tri, geom.Vec2i{X: 20, Y: 20})
	b := findVertex(t, tri, geom.Vec2i{X: 80, Y: 80})

	tri.InsertConstraint(a, b)
	require.True(t, tri.IsFixedEdge(geom.Vec2i{X: 20, Y: 20}, geom.Vec2i{X: 80, Y: 80}))
	require.NotPanics(t, tri.CheckInvariants)
}

// TestInsertConstraintCrossesSeveralEdges builds an interior lattice around
// a horizontal segment so that InsertConstraint's intersection sweep has to
// remove several crossing edges, not just the trivial 0/1-crossing case, and
// is very likely to encounter at least one non-convex quadrilateral along
// the way (the deferral path in removeCrossingEdges).
func TestInsertConstraintCrossesSeveralEdges(t *testing.T) {
	tri := triangulate.New(100, 100)
	tri.InsertVertices([]geom.Vec2i{
		{X: 10, Y: 50}, {X: 90, Y: 50},
		{X: 30, Y: 30}, {X: 30, Y: 70},
		{X: 50, Y: 35}, {X: 50, Y: 65},
		{X: 70, Y: 30}, {X: 70, Y: 70},
	})
	a := findVertex(t, tri, geom.Vec2i{X: 10, Y: 50})
	b := findVertex(t, tri, geom.Vec2i{X: 90, Y: 50})

	tri.InsertConstraint(a, b)

	require.True(t, tri.IsFixedEdge(geom.Vec2i{X: 10, Y: 50}, geom.Vec2i{X: 90, Y: 50}))
	require.NotPanics(t, tri.CheckInvariants)
}

func TestInsertConstraintSameVertexIsNoop(t *testing.T) {
	tri := newBoundary(t)
	before := tri.NumFixedEdges()
	tri.InsertConstraint(0, 0)
	require.Equal(t, before, tri.NumFixedEdges())
}

func TestFindTriangleWalkReturnsContainingTriangle(t *testing.T) {
	tri := triangulate.New(100, 100)
	tri.InsertVertices([]geom.Vec2i{{X: 30, Y: 30}, {X: 70, Y: 60}, {X: 40, Y: 80}})

	p := geom.Vec2f{45, 45}
	fromWalk := tri.FindTriangle(p, false)
	require.NotEqual(t, triangulate.NoTri, fromWalk)
	v := tri.Triangle(fromWalk).Verts
	require.True(t, geom.InTriangleI(p, v[0], v[1], v[2]))
}

func findVertex(t *testing.T, tri *triangulate.Triangulation, p geom.Vec2i) triangulate.VertIndex {
	t.Helper()
	for i := 0; i < tri.NumVertices(); i++ {
		if tri.Vertex(triangulate.VertIndex(i)) == p {
			return triangulate.VertIndex(i)
		}
	}
	t.Fatalf("vertex %v not found", p)
	return triangulate.NoVert
}
