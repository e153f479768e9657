package triangulate

import (
	"sort"

	"github.com/nav2d/trinav/geom"
)

// InsertVertex locates p and inserts it, classifying the result as one of
// three outcomes: the point already exists (OverlappingVertex), the point
// lies exactly on a constrained edge (OverlappingEdge, which gets split
// into two constrained sub-edges), or the point is interior to a triangle
// (ordinary three-way split). A point outside the domain boundary is a
// silent no-op reported via OK=false.
func (t *Triangulation) InsertVertex(p geom.Vec2i) VertexInsertionData {
	if !t.withinBoundary(p) {
		return VertexInsertionData{OK: false}
	}
	pf := geom.AsFloat(p)
	ti := t.FindTriangle(pf, true)
	if ti == NoTri {
		return VertexInsertionData{OK: false}
	}

	if k := t.cornerAtCoord(ti, p); k >= 0 {
		return VertexInsertionData{OK: true, OverlappingVertex: t.triVerts[ti][k]}
	}

	if k, ok := t.edgeContaining(ti, p); ok {
		a, b := t.triVerts[ti][next(k)], t.triVerts[ti][prev(k)]
		t.insertVertexOnEdge(ti, k, p)
		t.debugAssert()
		return VertexInsertionData{OK: true, OverlappingVertex: NoVert, HasOverlapEdge: true, OverlappingEdge: [2]VertIndex{a, b}}
	}

	t.insertVertexInterior(ti, p)
	t.debugAssert()
	return VertexInsertionData{OK: true, OverlappingVertex: NoVert}
}

// InsertVertices bulk-inserts pts, grid-binned and walked in boustrophedon
// order so each insertion starts its point-location walk close to the
// previous one, then reseeds the spatial grid once at the end.
func (t *Triangulation) InsertVertices(pts []geom.Vec2i) {
	cc := t.g.CellCount()
	serpentine := func(p geom.Vec2i) int {
		ci := t.g.CellIndex(geom.AsFloat(p))
		ix, iy := ci%int(cc.X), ci/int(cc.X)
		if iy%2 == 1 {
			ix = int(cc.X) - 1 - ix
		}
		return iy*int(cc.X) + ix
	}
	ordered := append([]geom.Vec2i(nil), pts...)
	sort.SliceStable(ordered, func(i, j int) bool { return serpentine(ordered[i]) < serpentine(ordered[j]) })
	for _, p := range ordered {
		t.InsertVertex(p)
	}
	t.UpdateCellGrid()
}

// cornerAtCoord returns the corner index of ti whose coordinate equals p,
// or -1 if none does.
func (t *Triangulation) cornerAtCoord(ti TriIndex, p geom.Vec2i) int {
	v := t.tris[ti].Verts
	for k := 0; k < 3; k++ {
		if v[k] == p {
			return k
		}
	}
	return -1
}

// edgeContaining reports whether p lies exactly on one of ti's constrained
// edges (p is already known to lie within ti), returning the corner index
// opposite that edge.
func (t *Triangulation) edgeContaining(ti TriIndex, p geom.Vec2i) (int, bool) {
	tri := &t.tris[ti]
	pf := geom.AsFloat(p)
	for k := 0; k < 3; k++ {
		if !tri.Constrained[k] {
			continue
		}
		a, b := geom.AsFloat(tri.Verts[next(k)]), geom.AsFloat(tri.Verts[prev(k)])
		if geom.ApproxEqualZero(geom.OrientF(a, b, pf)) {
			return k, true
		}
	}
	return 0, false
}

// insertVertexInterior splits triangle ti into three around newly-appended
// vertex p, each new triangle keeping p in corner slot 2, then restores the
// Delaunay condition around all three.
func (t *Triangulation) insertVertexInterior(ti TriIndex, p geom.Vec2i) {
	pIdx := t.addVertex(p)
	tri := t.tris[ti]
	tv := t.triVerts[ti]
	v0, v1, v2 := tv[0], tv[1], tv[2]
	n0, n1, n2 := tri.Neighbors[0], tri.Neighbors[1], tri.Neighbors[2]
	c0, c1, c2 := tri.Constrained[0], tri.Constrained[1], tri.Constrained[2]

	tOld := ti
	tB := t.reserveTriangle()
	tC := t.reserveTriangle()

	t.setTriangle(tOld, [3]VertIndex{v0, v1, pIdx}, [3]TriIndex{tB, tC, n2}, [3]bool{false, false, c2})
	t.setTriangle(tB, [3]VertIndex{v1, v2, pIdx}, [3]TriIndex{tC, tOld, n0}, [3]bool{false, false, c0})
	t.setTriangle(tC, [3]VertIndex{v2, v0, pIdx}, [3]TriIndex{tOld, tB, n1}, [3]bool{false, false, c1})

	if n0 != NoTri {
		t.retarget(n0, tOld, tB)
	}
	if n1 != NoTri {
		t.retarget(n1, tOld, tC)
	}

	t.legalizeQueue([][2]int32{
		{int32(tOld), 2},
		{int32(tB), 2},
		{int32(tC), 2},
	})
}

// insertVertexOnEdge splits the constrained edge opposite corner k of
// triangle ti (and its partner across that edge, if any) at newly-appended
// vertex p, replacing the one fixed edge with two, then restores the
// Delaunay condition on both sides.
func (t *Triangulation) insertVertexOnEdge(ti TriIndex, k int, p geom.Vec2i) {
	pIdx := t.addVertex(p)

	tri := t.tris[ti]
	tv := t.triVerts[ti]
	apexTIdx := tv[k]
	e1, e1Idx := tri.Verts[next(k)], tv[next(k)]
	e2, e2Idx := tri.Verts[prev(k)], tv[prev(k)]
	nOuterNear, cOuterNear := tri.Neighbors[prev(k)], tri.Constrained[prev(k)] // edge(apexT,e1)
	nOuterFar, cOuterFar := tri.Neighbors[next(k)], tri.Constrained[next(k)]   // edge(e2,apexT)

	tb := tri.Neighbors[k]

	t.unfixEdge(e1, e2)
	t.fixEdge(e1, p)
	t.fixEdge(p, e2)

	t1 := ti   // (apexT, e1, p)
	t2 := t.reserveTriangle() // (apexT, p, e2)

	var tb1, tb2 TriIndex = NoTri, NoTri
	var apexTbIdx VertIndex
	var nOuterNearB, nOuterFarB TriIndex
	var cOuterNearB, cOuterFarB bool
	if tb != NoTri {
		kb := t.oppositeSlot(tb, ti)
		btri := t.tris[tb]
		btv := t.triVerts[tb]
		apexTbIdx = btv[kb]
		nOuterNearB, cOuterNearB = btri.Neighbors[prev(kb)], btri.Constrained[prev(kb)] // edge(apexTb,e2)
		nOuterFarB, cOuterFarB = btri.Neighbors[next(kb)], btri.Constrained[next(kb)]   // edge(e1,apexTb)
		tb1 = tb                          // (apexTb, e2, p)
		tb2 = t.reserveTriangle()         // (apexTb, p, e1)
	}

	t.setTriangle(t1, [3]VertIndex{apexTIdx, e1Idx, pIdx}, [3]TriIndex{tb2, t2, nOuterNear}, [3]bool{true, false, cOuterNear})
	t.setTriangle(t2, [3]VertIndex{apexTIdx, pIdx, e2Idx}, [3]TriIndex{tb1, nOuterFar, t1}, [3]bool{true, cOuterFar, false})
	if nOuterFar != NoTri {
		t.retarget(nOuterFar, t1, t2)
	}

	// p sits at corner2 of t1 and corner1 of t2; the edge opposite p in each
	// is the pre-existing outer edge that may now violate Delaunay-ness.
	legalize := [][2]int32{{int32(t1), 2}, {int32(t2), 1}}

	if tb != NoTri {
		t.setTriangle(tb1, [3]VertIndex{apexTbIdx, e2Idx, pIdx}, [3]TriIndex{t2, tb2, nOuterNearB}, [3]bool{true, false, cOuterNearB})
		t.setTriangle(tb2, [3]VertIndex{apexTbIdx, pIdx, e1Idx}, [3]TriIndex{t1, nOuterFarB, tb1}, [3]bool{true, cOuterFarB, false})
		if nOuterFarB != NoTri {
			t.retarget(nOuterFarB, tb, tb2)
		}
		legalize = append(legalize, [2]int32{int32(tb1), 2}, [2]int32{int32(tb2), 1})
	}

	t.legalizeQueue(legalize)
}

// reserveTriangle appends a placeholder triangle slot and returns its
// index; callers immediately overwrite it with setTriangle.
func (t *Triangulation) reserveTriangle() TriIndex {
	t.tris = append(t.tris, Triangle{})
	t.triVerts = append(t.triVerts, [3]VertIndex{})
	return TriIndex(len(t.tris) - 1)
}

// setTriangle overwrites triangle slot i in place with the given corners.
func (t *Triangulation) setTriangle(i TriIndex, verts [3]VertIndex, neigh [3]TriIndex, constrained [3]bool) {
	var tri Triangle
	tri.Neighbors = neigh
	tri.Constrained = constrained
	for k := 0; k < 3; k++ {
		tri.Verts[k] = t.vertices[verts[k]]
	}
	t.tris[i] = tri
	t.triVerts[i] = verts
}
