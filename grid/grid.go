// Package grid implements the uniform spatial index (component B) used to
// seed point-location walks: a fixed subdivision of the bounding box, each
// cell caching one triangle index believed to lie near the cell's centre.
package grid

import "github.com/nav2d/trinav/geom"

// NoTriangle is the sentinel stored in a cell that has not been seeded yet.
const NoTriangle int32 = -1

// Grid is a uniform cellCount.X by cellCount.Y subdivision of a rectangular
// bounding box.
type Grid struct {
	boundary  geom.Vec2i
	cellCount geom.Vec2i
	cellSize  geom.Vec2f
	cell2Tri  []int32
}

// New builds a grid with cellCount cells over the given boundary box. Every
// cell starts out seeded with NoTriangle; callers populate it with
// SetCellTriangle after locating a representative triangle for each cell (see UpdateCellGrid in package triangulate).
func New(boundary geom.Vec2i, cellCount geom.Vec2i) *Grid {
	g := &Grid{
		boundary:  boundary,
		cellCount: cellCount,
		cellSize: geom.Vec2f{
			float32(boundary.X) / float32(cellCount.X),
			float32(boundary.Y) / float32(cellCount.Y),
		},
	}
	g.cell2Tri = make([]int32, cellCount.X*cellCount.Y)
	g.Reset()
	return g
}

// Reset clears every cell back to NoTriangle.
func (g *Grid) Reset() {
	for i := range g.cell2Tri {
		g.cell2Tri[i] = NoTriangle
	}
}

// CellCount returns the number of cells along X and Y.
func (g *Grid) CellCount() geom.Vec2i { return g.cellCount }

// CellSize returns the size, in world units, of a single cell.
func (g *Grid) CellSize() geom.Vec2f { return g.cellSize }

// NumCells returns the total number of cells.
func (g *Grid) NumCells() int { return len(g.cell2Tri) }

// CellIndex maps a world-space point to its flattened cell index. Points
// outside the boundary are clamped to the nearest edge cell so a caller can
// still use the result as a seed for a walking search.
func (g *Grid) CellIndex(p geom.Vec2f) int {
	ix := int(p.X() / g.cellSize.X())
	iy := int(p.Y() / g.cellSize.Y())
	if ix < 0 {
		ix = 0
	}
	if ix >= int(g.cellCount.X) {
		ix = int(g.cellCount.X) - 1
	}
	if iy < 0 {
		iy = 0
	}
	if iy >= int(g.cellCount.Y) {
		iy = int(g.cellCount.Y) - 1
	}
	return iy*int(g.cellCount.X) + ix
}

// CellIndexXY flattens explicit cell coordinates, used while reseeding in
// boustrophedon order.
func (g *Grid) CellIndexXY(ix, iy int) int {
	return iy*int(g.cellCount.X) + ix
}

// CellCenter returns the world-space centre of cell (ix, iy).
func (g *Grid) CellCenter(ix, iy int) geom.Vec2f {
	return geom.Vec2f{
		float32(ix)*g.cellSize.X() + g.cellSize.X()/2,
		float32(iy)*g.cellSize.Y() + g.cellSize.Y()/2,
	}
}

// TriangleAt returns the triangle index cached in the cell containing p, or
// NoTriangle if that cell has not been seeded.
func (g *Grid) TriangleAt(p geom.Vec2f) int32 {
	return g.cell2Tri[g.CellIndex(p)]
}

// SetCellTriangle caches triIdx as the representative triangle for the cell
// at flattened index cellIdx.
func (g *Grid) SetCellTriangle(cellIdx int, triIdx int32) {
	g.cell2Tri[cellIdx] = triIdx
}
