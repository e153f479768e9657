package triangulate

import "github.com/nav2d/trinav/geom"

// needSwap is the Cline–Renka in-circle predicate in trigonometric form:
// vp is the new vertex, v1/v2 are the edge shared by the two candidate
// triangles, v3 is the apex of the triangle opposite vp across that edge.
// Returns true when the edge v1-v2 should be flipped to vp-v3 to restore
// the Delaunay condition. The sign of the final branch is derived directly
// against this package's CCW winding convention (see DESIGN.md); earlier
// write-ups of this predicate disagree on the sign here depending on
// whether the quad is wound the same way the derivation assumed.
func needSwap(vp, v1, v2, v3 geom.Vec2f) bool {
	v13 := v1.Sub(v3)
	v23 := v2.Sub(v3)
	v1p := v1.Sub(vp)
	v2p := v2.Sub(vp)

	cosA := v13.Dot(v23)
	cosB := v1p.Dot(v2p)

	if cosA >= 0 && cosB >= 0 {
		return false
	}
	if cosA < 0 && cosB < 0 {
		return true
	}

	sinAB := geom.Cross2f(v13, v23)*cosB + geom.Cross2f(v2p, v1p)*cosA
	return sinAB > 0
}

// isConvexQuad reports whether the quadrilateral with diagonal vp-v3 and
// far corners v1,v2 is convex, i.e. the two diagonals vp-v3 and v1-v2
// actually cross. A flip across a non-convex quad would produce a
// self-intersecting mesh, so this guards every call to flipAcrossVertex.
// It also accepts vp lying strictly inside segment v1-v2 with v3 off that
// line: the zero-area triangle an interior split leaves when the new point
// sits on an unconstrained edge, which the flip turns into two proper ones.
func isConvexQuad(vp, v1, v2, v3 geom.Vec2f) bool {
	if geom.SegmentsIntersect(vp, v3, v1, v2) {
		return true
	}
	return geom.OrientF(v1, v2, vp) == 0 && geom.OrientF(v1, v2, v3) != 0 &&
		vp.Sub(v1).Dot(v2.Sub(v1)) > 0 && vp.Sub(v2).Dot(v1.Sub(v2)) > 0
}

// flipAcrossVertex flips the edge opposite corner pCorner of triangle ti,
// i.e. the edge shared with ti.Neighbors[pCorner]. The vertex at corner
// pCorner of ti keeps that slot, the neighbour's apex keeps slot
// otherCorner, and ti's vertex at pCorner also lands in slot
// prev(otherCorner) of the neighbour, so callers can requeue (ti,pCorner)
// and (other,prev(otherCorner)) to test the two edges now opposite that
// vertex without recomputing anything.
func (t *Triangulation) flipAcrossVertex(ti TriIndex, pCorner int) (other TriIndex, otherCorner int) {
	other = t.tris[ti].Neighbors[pCorner]
	otherCorner = t.oppositeSlot(other, ti)

	kA, kB := pCorner, otherCorner
	triA, triB := &t.tris[ti], &t.tris[other]
	vA, vB := &t.triVerts[ti], &t.triVerts[other]

	nextA, prevA := next(kA), prev(kA)
	nextB, prevB := next(kB), prev(kB)

	nbrX, consX := triB.Neighbors[nextB], triB.Constrained[nextB]
	nbrY, consY := triA.Neighbors[nextA], triA.Constrained[nextA]

	vBapexVert, vBapexIdx := triB.Verts[kB], vB[kB]
	vAapexVert, vAapexIdx := triA.Verts[kA], vA[kA]

	// new triA: corner kA unchanged (p), next(kA) unchanged (s1), prev(kA)
	// becomes the old apex of triB.
	triA.Verts[prevA] = vBapexVert
	vA[prevA] = vBapexIdx
	triA.Neighbors[kA] = nbrX
	triA.Constrained[kA] = consX
	triA.Neighbors[nextA] = other
	triA.Constrained[nextA] = false
	// triA.Neighbors[prevA] and Constrained[prevA] are unchanged.

	// new triB: corner kB unchanged (old apex), next(kB) unchanged (s2),
	// prev(kB) becomes the old apex of triA.
	triB.Verts[prevB] = vAapexVert
	vB[prevB] = vAapexIdx
	triB.Neighbors[kB] = nbrY
	triB.Constrained[kB] = consY
	triB.Neighbors[nextB] = ti
	triB.Constrained[nextB] = false
	// triB.Neighbors[prevB] and Constrained[prevB] are unchanged.

	if nbrX != NoTri {
		t.retarget(nbrX, other, ti)
	}
	if nbrY != NoTri {
		t.retarget(nbrY, ti, other)
	}
	return other, otherCorner
}

// retarget rewrites the single neighbour slot of triangle i that used to
// point at from so that it points at to instead, used after a flip moves a
// shared edge from one owning triangle to another.
func (t *Triangulation) retarget(i, from, to TriIndex) {
	tri := &t.tris[i]
	for k := 0; k < 3; k++ {
		if tri.Neighbors[k] == from {
			tri.Neighbors[k] = to
			return
		}
	}
}

// legalizeQueue restores the Delaunay condition around every pending
// (triangle, corner) pair, flipping where needSwap and isConvexQuad both
// agree. After each flip it pushes the two pairs whose corner holds the
// flipped pair's vertex: (ti,corner), which keeps its slot, and
// (other,prev(otherCorner)), where flipAcrossVertex places it in the
// neighbour. Each pop re-reads whatever neighbour now sits there.
func (t *Triangulation) legalizeQueue(stack [][2]int32) {
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ti, corner := TriIndex(top[0]), int(top[1])

		tri := &t.tris[ti]
		if tri.Constrained[corner] {
			continue
		}
		other := tri.Neighbors[corner]
		if other == NoTri {
			continue
		}
		otherCorner := t.oppositeSlot(other, ti)
		if otherCorner < 0 {
			continue
		}

		vp := geom.AsFloat(tri.Verts[corner])
		v1 := geom.AsFloat(tri.Verts[next(corner)])
		v2 := geom.AsFloat(tri.Verts[prev(corner)])
		v3 := geom.AsFloat(t.tris[other].Verts[otherCorner])

		if !needSwap(vp, v1, v2, v3) {
			continue
		}
		if !isConvexQuad(vp, v1, v2, v3) {
			continue
		}

		t.flipAcrossVertex(ti, corner)
		stack = append(stack, [2]int32{int32(ti), int32(corner)}, [2]int32{int32(other), int32(prev(otherCorner))})
	}
}
