// Package triangulate implements the triangulation store, point location,
// vertex insertion and constraint insertion components (C–F of the design):
// an indexed arena of vertices and triangles kept Delaunay everywhere a
// user-supplied constraint doesn't force otherwise.
package triangulate

import (
	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/grid"
)

// VertIndex addresses a vertex; it is stable for the vertex's lifetime.
type VertIndex int32

// TriIndex addresses a triangle; it is stable from creation onward, since
// triangles are only ever overwritten in place, never freed.
type TriIndex int32

// NoVert and NoTri are the "none" sentinels for vertex and triangle
// references respectively.
const (
	NoVert VertIndex = -1
	NoTri  TriIndex  = -1
)

// gridCells is the default spatial-index subdivision (20x20, per spec).
const gridCells = 20

// Triangle is one entry of the triangulation arena: three corner
// coordinates (denormalized for cache-local predicate evaluation), three
// neighbour triangle indices (Neighbors[k] is the neighbour across the edge
// opposite corner k), and three constraint flags for the same edges.
type Triangle struct {
	Verts       [3]geom.Vec2i
	Neighbors   [3]TriIndex
	Constrained [3]bool
}

// VertexInsertionData reports how InsertVertex classified the inserted
// point: OK is false when the point was outside the boundary and nothing
// happened; otherwise at most one of OverlappingVertex / OverlappingEdge is
// set, matching the spec's three classification outcomes (duplicate,
// on-edge, interior).
type VertexInsertionData struct {
	OK                bool
	OverlappingVertex VertIndex
	HasOverlapEdge    bool
	OverlappingEdge   [2]VertIndex
}

// Triangulation is the indexed triangle arena plus the ancillary structures
// (vertex-index map, fixed-edge set, spatial grid, last-found cache)
// described in the data model.
type Triangulation struct {
	vertices []geom.Vec2i
	tris     []Triangle
	triVerts [][3]VertIndex
	fixed    map[geom.EdgeKey]struct{}

	lastFound TriIndex
	g         *grid.Grid
	boundary  geom.Vec2i
}

func next(i int) int { return (i + 1) % 3 }
func prev(i int) int { return (i + 2) % 3 }

// NumVertices returns the number of vertices currently stored.
func (t *Triangulation) NumVertices() int { return len(t.vertices) }

// NumTriangles returns the number of triangle slots currently stored (some
// may have been overwritten but none are ever freed).
func (t *Triangulation) NumTriangles() int { return len(t.tris) }

// Vertex returns the coordinate of vertex v.
func (t *Triangulation) Vertex(v VertIndex) geom.Vec2i { return t.vertices[v] }

// Triangle returns a copy of triangle i's record.
func (t *Triangulation) Triangle(i TriIndex) Triangle { return t.tris[i] }

// TriangleVertexIndices returns the three vertex indices of triangle i, in
// the same corner order as Triangle(i).Verts.
func (t *Triangulation) TriangleVertexIndices(i TriIndex) [3]VertIndex { return t.triVerts[i] }

// IsFixedEdge reports whether the undirected edge between the given
// coordinates is in the fixed-edge set.
func (t *Triangulation) IsFixedEdge(a, b geom.Vec2i) bool {
	_, ok := t.fixed[geom.NewEdgeKey(a, b)]
	return ok
}

// NumFixedEdges returns the number of edges in the fixed-edge set.
func (t *Triangulation) NumFixedEdges() int { return len(t.fixed) }

func (t *Triangulation) vertsOf(ti TriIndex) [3]geom.Vec2i { return t.tris[ti].Verts }

// withinBoundary reports whether p lies within the rectangular domain,
// inclusive of the boundary itself.
func (t *Triangulation) withinBoundary(p geom.Vec2i) bool {
	return p.X >= 0 && p.X <= t.boundary.X && p.Y >= 0 && p.Y <= t.boundary.Y
}

func (t *Triangulation) withinBoundaryF(p geom.Vec2f) bool {
	return p.X() >= 0 && p.X() <= float32(t.boundary.X) && p.Y() >= 0 && p.Y() <= float32(t.boundary.Y)
}

// indexOfVertex returns the corner index (0,1,2) of triangle ti whose
// vertex index equals v, or -1 if ti does not have that corner.
func (t *Triangulation) indexOfVertex(ti TriIndex, v VertIndex) int {
	tv := t.triVerts[ti]
	for k := 0; k < 3; k++ {
		if tv[k] == v {
			return k
		}
	}
	return -1
}

// oppositeSlot returns the corner index k of triangle ti such that
// ti.Neighbors[k] == other; other must actually be a neighbour of ti.
func (t *Triangulation) oppositeSlot(ti TriIndex, other TriIndex) int {
	tri := &t.tris[ti]
	for k := 0; k < 3; k++ {
		if tri.Neighbors[k] == other {
			return k
		}
	}
	return -1
}
