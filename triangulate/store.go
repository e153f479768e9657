package triangulate

import (
	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/grid"
)

// New builds a triangulation over the rectangle [0,width] x [0,height],
// seeded as two triangles split along the rising diagonal, matching
// createBoundary: four boundary vertices, four constrained boundary edges,
// and the one internal (unconstrained) diagonal.
func New(width, height int32) *Triangulation {
	t := &Triangulation{
		boundary: geom.Vec2i{X: width, Y: height},
		fixed:    make(map[geom.EdgeKey]struct{}),
	}
	t.Reset()
	return t
}

// Reset discards every vertex and triangle and reseeds the boundary
// rectangle, as if the Triangulation had just been constructed with New.
func (t *Triangulation) Reset() {
	t.vertices = t.vertices[:0]
	t.tris = t.tris[:0]
	t.triVerts = t.triVerts[:0]
	for k := range t.fixed {
		delete(t.fixed, k)
	}
	t.lastFound = 0
	t.createBoundary()
	t.g = grid.New(t.boundary, geom.Vec2i{X: gridCells, Y: gridCells})
	t.UpdateCellGrid()
}

// createBoundary seeds the four corners of the rectangle and the two
// triangles sharing the diagonal from the bottom-left to the top-right
// corner, with the four outer edges fixed.
func (t *Triangulation) createBoundary() {
	bl := t.addVertex(geom.Vec2i{X: 0, Y: 0})
	br := t.addVertex(geom.Vec2i{X: t.boundary.X, Y: 0})
	tr := t.addVertex(geom.Vec2i{X: t.boundary.X, Y: t.boundary.Y})
	tl := t.addVertex(geom.Vec2i{X: 0, Y: t.boundary.Y})

	// lower = (bl,br,tr), upper = (bl,tr,tl), sharing the bl-tr diagonal.
	// Neighbors[k] is opposite corner k, so the shared diagonal sits at
	// lower's corner1 (br) and upper's corner2 (tl); every other edge is a
	// boundary edge and carries no neighbour.
	lower := t.appendTriangle(
		[3]VertIndex{bl, br, tr},
		[3]TriIndex{NoTri, NoTri, NoTri},
		[3]bool{true, false, true},
	)
	upper := t.appendTriangle(
		[3]VertIndex{bl, tr, tl},
		[3]TriIndex{NoTri, NoTri, lower},
		[3]bool{true, true, false},
	)
	t.tris[lower].Neighbors[1] = upper

	t.fixEdge(t.vertices[br], t.vertices[tr])
	t.fixEdge(t.vertices[tr], t.vertices[tl])
	t.fixEdge(t.vertices[tl], t.vertices[bl])
	t.fixEdge(t.vertices[bl], t.vertices[br])
}

func (t *Triangulation) addVertex(p geom.Vec2i) VertIndex {
	t.vertices = append(t.vertices, p)
	return VertIndex(len(t.vertices) - 1)
}

func (t *Triangulation) appendTriangle(verts [3]VertIndex, neigh [3]TriIndex, constrained [3]bool) TriIndex {
	tri := Triangle{Neighbors: neigh, Constrained: constrained}
	for k := 0; k < 3; k++ {
		tri.Verts[k] = t.vertices[verts[k]]
	}
	t.tris = append(t.tris, tri)
	t.triVerts = append(t.triVerts, verts)
	return TriIndex(len(t.tris) - 1)
}

func (t *Triangulation) fixEdge(a, b geom.Vec2i) {
	t.fixed[geom.NewEdgeKey(a, b)] = struct{}{}
}

func (t *Triangulation) unfixEdge(a, b geom.Vec2i) {
	delete(t.fixed, geom.NewEdgeKey(a, b))
}

// UpdateCellGrid reseeds every spatial-grid cell with a triangle index found
// by walking from the grid's previous result for the neighbouring cell, in
// boustrophedon (serpentine) order so each walk starts close to its answer.
func (t *Triangulation) UpdateCellGrid() {
	t.g.Reset()
	cc := t.g.CellCount()
	seed := TriIndex(0)
	for iy := 0; iy < int(cc.Y); iy++ {
		leftToRight := iy%2 == 0
		for i := 0; i < int(cc.X); i++ {
			ix := i
			if !leftToRight {
				ix = int(cc.X) - 1 - i
			}
			center := t.g.CellCenter(ix, iy)
			found := t.findTriangleWalk(center, seed)
			if found == NoTri {
				found = t.findTriangleBruteForce(center)
			}
			if found != NoTri {
				seed = found
				t.g.SetCellTriangle(t.g.CellIndexXY(ix, iy), int32(found))
			}
		}
	}
}
