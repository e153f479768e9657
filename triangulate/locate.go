package triangulate

import "github.com/nav2d/trinav/geom"

// FindTriangle locates the triangle containing p. When fromLastFound is
// true the walk starts from the triangle returned by the previous call
// (cheap for spatially coherent query sequences); otherwise it starts from
// the triangle cached in the spatial grid cell containing p. Either way, a
// walk that fails to converge (can happen only against a corrupted mesh)
// falls back to a brute-force linear scan. Returns NoTri if p is outside
// every triangle.
func (t *Triangulation) FindTriangle(p geom.Vec2f, fromLastFound bool) TriIndex {
	if !t.withinBoundaryF(p) {
		return NoTri
	}
	var seed TriIndex
	if fromLastFound && t.lastFound != NoTri && int(t.lastFound) < len(t.tris) {
		seed = t.lastFound
	} else {
		seed = TriIndex(t.g.TriangleAt(p))
		if seed == NoTri || int(seed) >= len(t.tris) {
			seed = 0
		}
	}
	found := t.findTriangleWalk(p, seed)
	if found == NoTri {
		found = t.findTriangleBruteForce(p)
	}
	if found != NoTri {
		t.lastFound = found
	}
	return found
}

// maxWalkSteps bounds the walking search so a corrupted mesh (which would
// otherwise cycle) degrades to the brute-force fallback instead of hanging.
const maxWalkSteps = 10000

// findTriangleWalk walks from seed toward p by stepping, at each triangle,
// across whichever edge p lies on the far side of (its opposite-edge
// half-plane test is negative), falling off the mesh boundary (neighbour
// NoTri) or exhausting the step budget counts as "not found".
func (t *Triangulation) findTriangleWalk(p geom.Vec2f, seed TriIndex) TriIndex {
	if seed == NoTri || int(seed) >= len(t.tris) {
		return NoTri
	}
	cur := seed
	for steps := 0; steps < maxWalkSteps; steps++ {
		tri := &t.tris[cur]
		v := tri.Verts
		nextTri, crossed := NoTri, false
		for k := 0; k < 3; k++ {
			a, b := geom.AsFloat(v[next(k)]), geom.AsFloat(v[prev(k)])
			if geom.OrientF(a, b, p) < 0 {
				nextTri, crossed = tri.Neighbors[k], true
				break
			}
		}
		if !crossed {
			return cur
		}
		if nextTri == NoTri {
			return NoTri
		}
		cur = nextTri
	}
	return NoTri
}

// findTriangleBruteForce linearly scans every triangle and returns the
// first whose interior (inclusive of its edges) contains p.
func (t *Triangulation) findTriangleBruteForce(p geom.Vec2f) TriIndex {
	for i := range t.tris {
		v := t.tris[i].Verts
		if geom.InTriangleI(p, v[0], v[1], v[2]) {
			return TriIndex(i)
		}
	}
	return NoTri
}
