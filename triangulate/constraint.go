package triangulate

import "github.com/nav2d/trinav/geom"

// maxConstraintSweeps bounds the crossing-removal loop so a degenerate
// input (e.g. constraints that cross each other) degrades to a best-effort
// marking instead of spinning forever.
const maxConstraintSweeps = 10000

// InsertConstraint forces an edge between two existing vertices into the
// triangulation. a == b and an edge that is already fixed are both silent
// no-ops. When an existing vertex lies exactly on the segment strictly
// between a and b, the constraint is decomposed into the two sub-segments
// on either side of it (the deterministic collinear-overlap policy — see
// DESIGN.md) and each inserted independently, so the fixed-edge-set
// membership check short-circuits already-handled sub-segments. Otherwise
// any unconstrained triangle edge crossing the segment is flipped out of
// the way until the segment itself becomes a mesh edge, which is then
// marked constrained; the diagonals created along the way are then run
// back through Delaunay restoration, since removing a crossing says
// nothing about whether its replacement satisfies the empty-circle
// property.
func (t *Triangulation) InsertConstraint(a, b VertIndex) {
	if a == b {
		return
	}
	pa, pb := t.vertices[a], t.vertices[b]
	if t.IsFixedEdge(pa, pb) {
		return
	}
	if v, ok := t.collinearVertexBetween(a, b); ok {
		t.InsertConstraint(a, v)
		t.InsertConstraint(v, b)
		return
	}
	newEdges := t.removeCrossingEdges(a, b)
	t.markConstrained(a, b)
	t.legalizeQueue(newEdges)
	t.debugAssert()
}

// collinearVertexBetween returns the vertex nearest a that lies exactly on
// segment a-b, strictly between the two endpoints, if any such vertex
// exists.
func (t *Triangulation) collinearVertexBetween(a, b VertIndex) (VertIndex, bool) {
	pa, pb := t.vertices[a], t.vertices[b]
	best := NoVert
	var bestDist int64
	for vi := range t.vertices {
		v := VertIndex(vi)
		if v == a || v == b {
			continue
		}
		p := t.vertices[v]
		if geom.Orient(pa, pb, p) != 0 {
			continue
		}
		if !strictlyBetween(pa, pb, p) {
			continue
		}
		d := p.Sub(pa).Dot(p.Sub(pa))
		if best == NoVert || d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, best != NoVert
}

// strictlyBetween assumes p is collinear with a,b and reports whether it
// lies strictly between them.
func strictlyBetween(a, b, p geom.Vec2i) bool {
	dot := p.Sub(a).Dot(b.Sub(a))
	lenSq := b.Sub(a).Dot(b.Sub(a))
	return dot > 0 && dot < lenSq
}

// removeCrossingEdges repeatedly flips an unconstrained triangle edge found
// to strictly cross segment a-b, until no such edge remains. A candidate
// whose quadrilateral is not convex is deferred rather than aborting the
// sweep: it is skipped for the rest of this pass and the scan keeps looking
// for another crossing edge, matching §4.F ("if the quadrilateral is
// non-convex, defer this edge... progress is guaranteed because at least
// one convex quadrilateral must exist along the strip between a and b") and
// the original's deque-with-push-back behaviour
// (original_source/src/Triangulation.cpp). The deferred set is cleared
// after every flip, since a flip can change the convexity of quads attached
// to edges that were skipped earlier in the same pass. It returns the
// (triangle, corner) pairs identifying every new diagonal it created, the
// "newly created edges" list of §4.F that the Delaunay restoration pass is
// run over once the segment itself has been marked constrained — a flip
// removes a crossing edge but says nothing about whether the replacement
// satisfies the empty-circle property.
func (t *Triangulation) removeCrossingEdges(a, b VertIndex) [][2]int32 {
	pa, pb := geom.AsFloat(t.vertices[a]), geom.AsFloat(t.vertices[b])
	var newEdges [][2]int32
	deferred := make(map[[2]VertIndex]bool)
	for sweep := 0; sweep < maxConstraintSweeps; sweep++ {
		ti, k, found := t.findCrossingEdge(pa, pb, deferred)
		if !found {
			return newEdges
		}
		tri := &t.tris[ti]
		other := tri.Neighbors[k]
		if other == NoTri {
			return newEdges
		}
		kOther := t.oppositeSlot(other, ti)
		if kOther < 0 {
			return newEdges
		}
		vp := geom.AsFloat(tri.Verts[k])
		v1 := geom.AsFloat(tri.Verts[next(k)])
		v2 := geom.AsFloat(tri.Verts[prev(k)])
		v3 := geom.AsFloat(t.tris[other].Verts[kOther])
		if !isConvexQuad(vp, v1, v2, v3) {
			deferred[edgeVertKey(t.triVerts[ti][next(k)], t.triVerts[ti][prev(k)])] = true
			continue
		}
		t.flipAcrossVertex(ti, k)
		newEdges = append(newEdges,
			[2]int32{int32(ti), int32(next(k))},
			[2]int32{int32(other), int32(next(kOther))},
		)
		deferred = make(map[[2]VertIndex]bool)
	}
	return newEdges
}

// edgeVertKey canonicalizes an undirected edge by its two vertex indices,
// used to track crossing edges deferred for non-convexity within a single
// removeCrossingEdges pass.
func edgeVertKey(a, b VertIndex) [2]VertIndex {
	if a > b {
		a, b = b, a
	}
	return [2]VertIndex{a, b}
}

// findCrossingEdge scans every triangle for an unconstrained edge that
// strictly crosses segment a-b (open-segment intersection, since shared
// endpoints are expected and not a crossing), skipping any edge already
// recorded in deferred (a non-convex candidate set aside earlier in the
// same pass).
func (t *Triangulation) findCrossingEdge(a, b geom.Vec2f, deferred map[[2]VertIndex]bool) (TriIndex, int, bool) {
	for i := range t.tris {
		tri := &t.tris[i]
		for k := 0; k < 3; k++ {
			if tri.Constrained[k] {
				continue
			}
			if deferred[edgeVertKey(t.triVerts[i][next(k)], t.triVerts[i][prev(k)])] {
				continue
			}
			e1 := geom.AsFloat(tri.Verts[next(k)])
			e2 := geom.AsFloat(tri.Verts[prev(k)])
			if geom.SegmentsIntersect(a, b, e1, e2) {
				return TriIndex(i), k, true
			}
		}
	}
	return 0, 0, false
}

// markConstrained finds a triangle with both a and b as corners (by now
// guaranteed to exist, since removeCrossingEdges has removed every edge
// crossing the segment) and flags the shared edge, on both sides, as
// constrained, then records the coordinate edge in the fixed-edge set.
func (t *Triangulation) markConstrained(a, b VertIndex) {
	for i := range t.triVerts {
		tv := &t.triVerts[i]
		ka, kb := -1, -1
		for k := 0; k < 3; k++ {
			if tv[k] == a {
				ka = k
			}
			if tv[k] == b {
				kb = k
			}
		}
		if ka < 0 || kb < 0 {
			continue
		}
		k3 := 3 - ka - kb
		ti := TriIndex(i)
		t.tris[ti].Constrained[k3] = true
		other := t.tris[ti].Neighbors[k3]
		if other != NoTri {
			if kOther := t.oppositeSlot(other, ti); kOther >= 0 {
				t.tris[other].Constrained[kOther] = true
			}
		}
		t.fixEdge(t.vertices[a], t.vertices[b])
		return
	}
}
