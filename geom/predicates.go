package geom

// relTolerance mirrors the spec's ~1e-4-of-largest-magnitude tolerance used
// throughout the near-degeneracy comparators below.
const relTolerance = 1e-4

func absf(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// ApproxEqual reports whether a and b are equal within a relative+absolute
// tolerance: relTolerance times the larger operand's magnitude, or
// relTolerance itself when both operands are smaller than one.
func ApproxEqual(a, b float32) bool {
	return absf(a-b) <= relTolerance*maxf(1, maxf(absf(a), absf(b)))
}

// ApproxEqualZero reports whether a is within tolerance of zero.
func ApproxEqualZero(a float32) bool {
	return absf(a) <= relTolerance
}

// StrictlyLess reports whether a is less than b by more than the tolerance
// scaled to the larger operand's magnitude; near-ties are treated as equal.
func StrictlyLess(a, b float32) bool {
	return (b - a) > relTolerance*maxf(absf(a), absf(b))
}

// SegmentsIntersect reports whether open segments ab and cd cross at a
// single interior point. Touching endpoints do not count; use
// SegmentsIntersectOrTouch for that.
func SegmentsIntersect(a, b, c, d Vec2f) bool {
	oa, ob := OrientF(c, d, a), OrientF(c, d, b)
	oc, od := OrientF(a, b, c), OrientF(a, b, d)
	return StrictlyLess(oa*ob, 0) && StrictlyLess(oc*od, 0)
}

// SegmentsIntersectOrTouch is the walking point-location variant of
// SegmentsIntersect that also accepts a bare touch (shared endpoint or a
// point lying exactly on the other segment).
func SegmentsIntersectOrTouch(a, b, c, d Vec2f) bool {
	oa, ob := OrientF(c, d, a), OrientF(c, d, b)
	oc, od := OrientF(a, b, c), OrientF(a, b, d)
	abCond := StrictlyLess(oa*ob, 0) || ApproxEqualZero(oa) || ApproxEqualZero(ob)
	cdCond := StrictlyLess(oc*od, 0) || ApproxEqualZero(oc) || ApproxEqualZero(od)
	return abCond && cdCond
}

// InTriangle reports whether p lies inside (inclusive of edges) the
// triangle a,b,c, regardless of its winding.
func InTriangle(p, a, b, c Vec2f) bool {
	d1 := OrientF(p, a, b)
	d2 := OrientF(p, b, c)
	d3 := OrientF(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// InTriangleI is the integer-vertex form of InTriangle, exact for any
// query point representable as Vec2f derived from integer math.
func InTriangleI(p Vec2f, a, b, c Vec2i) bool {
	return InTriangle(p, AsFloat(a), AsFloat(b), AsFloat(c))
}

// EdgeKey identifies an undirected edge by its two endpoint coordinates in
// canonical (lexicographically smaller first) order, matching the
// coordinate-hashed fixed-edge set of the triangulation this package
// supports.
type EdgeKey struct {
	A, B Vec2i
}

// NewEdgeKey builds a canonical EdgeKey from two endpoint coordinates.
func NewEdgeKey(a, b Vec2i) EdgeKey {
	if less(b, a) {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

func less(a, b Vec2i) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
