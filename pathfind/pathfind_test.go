package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/navgraph"
	"github.com/nav2d/trinav/pathfind"
	"github.com/nav2d/trinav/triangulate"
)

// start and goal sit on opposite sides of the seed rectangle's diagonal
// (upper-left vs. lower-right triangle) so the two calls deterministically
// resolve to different reduced-graph nodes, regardless of how the spatial
// grid happens to have seeded the cells exactly on the diagonal itself.
func TestFindPathAcrossBareRectangle(t *testing.T) {
	tri := triangulate.New(100, 100)
	g := navgraph.Build(tri)

	path, err := pathfind.FindPath(tri, g, geom.Vec2f{5, 95}, geom.Vec2f{95, 5}, 1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path.Points), 2)
	require.Equal(t, geom.Vec2f{5, 95}, path.Points[0])
	require.Equal(t, geom.Vec2f{95, 5}, path.Points[len(path.Points)-1])
}

func TestFindPathUnreachableWhenRadiusTooLarge(t *testing.T) {
	tri := triangulate.New(100, 100)
	g := navgraph.Build(tri)

	_, err := pathfind.FindPath(tri, g, geom.Vec2f{5, 95}, geom.Vec2f{95, 5}, 1000)
	require.ErrorIs(t, err, pathfind.ErrUnreachable)
}

func TestFindPathOutsideDomainIsUnreachable(t *testing.T) {
	tri := triangulate.New(100, 100)
	g := navgraph.Build(tri)

	_, err := pathfind.FindPath(tri, g, geom.Vec2f{-5, -5}, geom.Vec2f{50, 50}, 1)
	require.ErrorIs(t, err, pathfind.ErrUnreachable)
}
