// Package geom provides the vector algebra and orientation/intersection
// predicates the triangulation and navigation packages build on. Integer
// vertices keep orientation exact; float32 is used only where intersection
// points or distances are required.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2i is an integer 2-D point. Vertices of the triangulation are stored
// as Vec2i so that orientation determinants stay exact for the supported
// domain.
type Vec2i struct {
	X, Y int32
}

// Vec2f is a floating-point 2-D vector, used for intersection predicates
// and anything downstream of them (point location queries, funnel points).
type Vec2f = mgl32.Vec2

// AsFloat converts an integer vertex to its float32 representation.
func AsFloat(v Vec2i) Vec2f {
	return Vec2f{float32(v.X), float32(v.Y)}
}

// Add returns v+w.
func (v Vec2i) Add(w Vec2i) Vec2i { return Vec2i{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2i) Sub(w Vec2i) Vec2i { return Vec2i{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2i) Scale(s int32) Vec2i { return Vec2i{v.X * s, v.Y * s} }

// Dot returns the integer dot product of v and w, widened to avoid overflow.
func (v Vec2i) Dot(w Vec2i) int64 {
	return int64(v.X)*int64(w.X) + int64(v.Y)*int64(w.Y)
}

// Cross returns the 2-D cross product (scalar) of v and w, widened to int64.
func (v Vec2i) Cross(w Vec2i) int64 {
	return int64(v.X)*int64(w.Y) - int64(v.Y)*int64(w.X)
}

// Orient returns the signed area (times two) of triangle a,b,c. Positive
// means a,b,c is wound counter-clockwise. The integer arithmetic is exact
// for the supported coordinate domain.
func Orient(a, b, c Vec2i) int64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Len returns the Euclidean length of v.
func Len(v Vec2f) float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2f) float32 {
	return Len(a.Sub(b))
}

// Cross2f returns the 2-D scalar cross product of two float vectors.
func Cross2f(a, b Vec2f) float32 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// OrientF is the floating-point analogue of Orient, used when one or more
// operands are not integer vertices (e.g. a portal midpoint).
func OrientF(a, b, c Vec2f) float32 {
	return Cross2f(b.Sub(a), c.Sub(a))
}
