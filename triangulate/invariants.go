package triangulate

import (
	"fmt"

	"github.com/nav2d/trinav/geom"
)

// CheckInvariants verifies the structural invariants of the triangulation
// (CCW winding, mutual neighbour consistency, matching constraint flags on
// both sides of each shared edge, and every fixed edge being a constrained
// mesh edge) and panics with a descriptive message on the first violation
// found. It is exported for tests and the debug CLI; internally it also
// backs the build-tag-gated debugAssert used after every mutating call.
func (t *Triangulation) CheckInvariants() {
	for i := range t.tris {
		ti := TriIndex(i)
		tri := &t.tris[i]
		if geom.Orient(tri.Verts[0], tri.Verts[1], tri.Verts[2]) <= 0 {
			panic(fmt.Sprintf("triangulate: triangle %d is not wound CCW", ti))
		}
		for k := 0; k < 3; k++ {
			other := tri.Neighbors[k]
			if other == NoTri {
				continue
			}
			if int(other) >= len(t.tris) {
				panic(fmt.Sprintf("triangulate: triangle %d corner %d neighbour %d out of range", ti, k, other))
			}
			kOther := t.oppositeSlot(other, ti)
			if kOther < 0 {
				panic(fmt.Sprintf("triangulate: triangle %d corner %d neighbour %d does not point back", ti, k, other))
			}
			e1, e2 := tri.Verts[next(k)], tri.Verts[prev(k)]
			oe1, oe2 := t.tris[other].Verts[next(kOther)], t.tris[other].Verts[prev(kOther)]
			if !((e1 == oe1 && e2 == oe2) || (e1 == oe2 && e2 == oe1)) {
				panic(fmt.Sprintf("triangulate: triangle %d/%d share a slot but not an edge", ti, other))
			}
			if tri.Constrained[k] != t.tris[other].Constrained[kOther] {
				panic(fmt.Sprintf("triangulate: triangle %d/%d disagree on constraint flag", ti, other))
			}
		}
	}
	for key := range t.fixed {
		if !t.edgeExistsInMesh(key.A, key.B) {
			panic(fmt.Sprintf("triangulate: fixed edge %v-%v has no corresponding mesh edge", key.A, key.B))
		}
	}
}

func (t *Triangulation) edgeExistsInMesh(a, b geom.Vec2i) bool {
	for i := range t.tris {
		tri := &t.tris[i]
		for k := 0; k < 3; k++ {
			if !tri.Constrained[k] {
				continue
			}
			e1, e2 := tri.Verts[next(k)], tri.Verts[prev(k)]
			if (e1 == a && e2 == b) || (e1 == b && e2 == a) {
				return true
			}
		}
	}
	return false
}
