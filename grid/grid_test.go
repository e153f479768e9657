package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/grid"
)

func TestNewResetsToNoTriangle(t *testing.T) {
	g := grid.New(geom.Vec2i{X: 100, Y: 100}, geom.Vec2i{X: 20, Y: 20})
	require.Equal(t, 400, g.NumCells())
	for iy := 0; iy < 20; iy++ {
		for ix := 0; ix < 20; ix++ {
			require.Equal(t, grid.NoTriangle, g.TriangleAt(g.CellCenter(ix, iy)))
		}
	}
}

func TestSetCellTriangleRoundTrip(t *testing.T) {
	g := grid.New(geom.Vec2i{X: 100, Y: 100}, geom.Vec2i{X: 20, Y: 20})
	p := geom.Vec2f{15, 15}
	idx := g.CellIndex(p)
	g.SetCellTriangle(idx, 7)
	require.EqualValues(t, 7, g.TriangleAt(p))
}

func TestCellIndexClampsOutOfBounds(t *testing.T) {
	g := grid.New(geom.Vec2i{X: 100, Y: 100}, geom.Vec2i{X: 20, Y: 20})
	require.Equal(t, g.CellIndex(geom.Vec2f{-50, -50}), g.CellIndex(geom.Vec2f{0, 0}))
	require.Equal(t, g.CellIndex(geom.Vec2f{500, 500}), g.CellIndex(geom.Vec2f{99, 99}))
}
