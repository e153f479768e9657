package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nav2d/trinav/geom"
)

func TestOrientCCW(t *testing.T) {
	a := geom.Vec2i{X: 0, Y: 0}
	b := geom.Vec2i{X: 10, Y: 0}
	c := geom.Vec2i{X: 0, Y: 10}
	require.Greater(t, geom.Orient(a, b, c), int64(0))
	require.Less(t, geom.Orient(a, c, b), int64(0))
}

func TestApproxEqual(t *testing.T) {
	require.True(t, geom.ApproxEqual(1.0, 1.0000001))
	require.False(t, geom.ApproxEqual(1.0, 1.1))
	require.True(t, geom.ApproxEqualZero(0))
}

func TestSegmentsIntersect(t *testing.T) {
	a := geom.Vec2f{0, 0}
	b := geom.Vec2f{10, 10}
	c := geom.Vec2f{0, 10}
	d := geom.Vec2f{10, 0}
	require.True(t, geom.SegmentsIntersect(a, b, c, d))

	e := geom.Vec2f{20, 20}
	f := geom.Vec2f{30, 30}
	require.False(t, geom.SegmentsIntersect(a, b, e, f))
}

func TestSegmentsIntersectOrTouch(t *testing.T) {
	a := geom.Vec2f{0, 0}
	b := geom.Vec2f{10, 0}
	c := geom.Vec2f{10, 0}
	d := geom.Vec2f{10, 10}
	require.True(t, geom.SegmentsIntersectOrTouch(a, b, c, d))
}

func TestInTriangle(t *testing.T) {
	a := geom.Vec2f{0, 0}
	b := geom.Vec2f{10, 0}
	c := geom.Vec2f{0, 10}
	require.True(t, geom.InTriangle(geom.Vec2f{1, 1}, a, b, c))
	require.False(t, geom.InTriangle(geom.Vec2f{9, 9}, a, b, c))
	require.True(t, geom.InTriangle(geom.Vec2f{0, 0}, a, b, c))
}

func TestEdgeKeyCanonical(t *testing.T) {
	a := geom.Vec2i{X: 5, Y: 5}
	b := geom.Vec2i{X: 1, Y: 1}
	require.Equal(t, geom.NewEdgeKey(a, b), geom.NewEdgeKey(b, a))
}
