package navgraph

import "github.com/nav2d/trinav/geom"

// StringPull runs the funnel algorithm over the ordered list of portals
// between start and goal, returning the shortest path that stays within
// the portal corridor (the "taut string" pulled through the funnel).
func StringPull(start geom.Vec2f, portals []Portal, goal geom.Vec2f) []geom.Vec2f {
	path := []geom.Vec2f{start}

	apex := start
	left := start
	right := start
	apexIdx, leftIdx, rightIdx := 0, 0, 0

	pts := make([]Portal, 0, len(portals)+1)
	pts = append(pts, portals...)
	pts = append(pts, Portal{Left: goal, Right: goal})

	for i := 0; i < len(pts); i++ {
		l, r := pts[i].Left, pts[i].Right

		if triArea2(apex, right, r) <= 0 {
			if apex == right || triArea2(apex, left, r) > 0 {
				right = r
				rightIdx = i
			} else {
				path = append(path, left)
				apex, apexIdx = left, leftIdx
				right = apex
				rightIdx = apexIdx
				i = apexIdx
				continue
			}
		}

		if triArea2(apex, left, l) >= 0 {
			if apex == left || triArea2(apex, right, l) < 0 {
				left = l
				leftIdx = i
			} else {
				path = append(path, right)
				apex, apexIdx = right, rightIdx
				left = apex
				leftIdx = apexIdx
				i = apexIdx
				continue
			}
		}
	}
	path = append(path, goal)
	return path
}

// triArea2 returns twice the signed area of triangle a,b,c.
func triArea2(a, b, c geom.Vec2f) float32 {
	return geom.Cross2f(b.Sub(a), c.Sub(a))
}

// funnelDistance is the total length of the funnel-pulled shortest path
// from start to goal across the given portal sequence.
func funnelDistance(start geom.Vec2f, portals []Portal, goal geom.Vec2f) float32 {
	pts := StringPull(start, portals, goal)
	var total float32
	for i := 1; i < len(pts); i++ {
		total += geom.Dist(pts[i-1], pts[i])
	}
	return total
}
