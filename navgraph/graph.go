// Package navgraph reduces a triangulation's unconstrained dual graph to a
// small graph of "crossroad" and "dead-end" triangles connected by
// corridors, each annotated with a funnel-computed length and a minimum
// width usable for radius-aware path admissibility checks.
package navgraph

import (
	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/triangulate"
)

// NodeKind classifies a reduced-graph node by how many unconstrained edges
// its triangle has.
type NodeKind int

const (
	// Crossroad is a triangle with three unconstrained edges (a branch point).
	Crossroad NodeKind = iota
	// DeadEnd is a triangle with exactly one unconstrained edge.
	DeadEnd
	// Isolated is a triangle with no unconstrained edges at all (a closed
	// cell with no passable neighbour); it forms a one-node component.
	Isolated
)

// Portal is one crossable (unconstrained) triangle edge, given by its two
// endpoints in the order encountered while walking a corridor.
type Portal struct {
	Left, Right geom.Vec2f
}

// Node is one crossroad/dead-end/isolated triangle.
type Node struct {
	Tri       triangulate.TriIndex
	Pos       geom.Vec2f
	Kind      NodeKind
	Component int
	Corridors []int // indices into Graph.Corridors incident to this node
}

// Corridor is a chain of two-unconstrained-edge triangles connecting two
// nodes, represented by the portals crossed along the way.
type Corridor struct {
	From, To int // node indices
	TriChain []triangulate.TriIndex
	Portals  []Portal
	Length   float32
	MinWidth float32
}

// Graph is the reduced navigation graph for one triangulation.
type Graph struct {
	Nodes     []Node
	Corridors []Corridor
}

// Build constructs the reduced graph using a funnel-computed corridor
// length, for accurate shortest-path distances.
func Build(tri *triangulate.Triangulation) *Graph {
	return build(tri, true)
}

// BuildCentres constructs the reduced graph using straight centroid-to-centroid
// corridor distances, cheaper when only an approximate or coarse-grained
// distance is needed (e.g. high-level planning heuristics).
func BuildCentres(tri *triangulate.Triangulation) *Graph {
	return build(tri, false)
}

func build(tri *triangulate.Triangulation, funnelLength bool) *Graph {
	n := tri.NumTriangles()
	components := componentsOf(tri)
	nodeIndexOf := make(map[triangulate.TriIndex]int)
	g := &Graph{}

	for ti := 0; ti < n; ti++ {
		kind, ok := classify(tri, triangulate.TriIndex(ti))
		if !ok {
			continue
		}
		idx := len(g.Nodes)
		nodeIndexOf[triangulate.TriIndex(ti)] = idx
		g.Nodes = append(g.Nodes, Node{
			Tri:       triangulate.TriIndex(ti),
			Pos:       centroid(tri, triangulate.TriIndex(ti)),
			Kind:      kind,
			Component: components[ti],
		})
	}

	visited := make(map[[2]int]bool) // (triIndex, corner) entry edges already walked
	for ti := 0; ti < n; ti++ {
		startIdx, ok := nodeIndexOf[triangulate.TriIndex(ti)]
		if !ok {
			continue
		}
		tr := tri.Triangle(triangulate.TriIndex(ti))
		for k := 0; k < 3; k++ {
			if tr.Constrained[k] || tr.Neighbors[k] == triangulate.NoTri {
				continue
			}
			if visited[[2]int{ti, k}] {
				continue
			}
			chain, portals, endTri, enterCorner := walkCorridor(tri, triangulate.TriIndex(ti), k, visited)
			endIdx, ok := nodeIndexOf[endTri]
			if !ok {
				continue
			}
			visited[[2]int{int(endTri), enterCorner}] = true

			cor := Corridor{
				From:     startIdx,
				To:       endIdx,
				TriChain: chain,
				Portals:  portals,
				MinWidth: minPortalWidth(portals),
			}
			if funnelLength {
				cor.Length = funnelDistance(g.Nodes[startIdx].Pos, portals, g.Nodes[endIdx].Pos)
			} else {
				cor.Length = geom.Dist(g.Nodes[startIdx].Pos, g.Nodes[endIdx].Pos)
			}

			ci := len(g.Corridors)
			g.Corridors = append(g.Corridors, cor)
			g.Nodes[startIdx].Corridors = append(g.Nodes[startIdx].Corridors, ci)
			if endIdx != startIdx {
				g.Nodes[endIdx].Corridors = append(g.Nodes[endIdx].Corridors, ci)
			}
		}
	}
	return g
}

// classify reports the NodeKind of triangle ti and whether it is a node at
// all (a two-unconstrained-edge triangle is a corridor interior, not a node).
func classify(tri *triangulate.Triangulation, ti triangulate.TriIndex) (NodeKind, bool) {
	t := tri.Triangle(ti)
	open := 0
	for k := 0; k < 3; k++ {
		if !t.Constrained[k] && t.Neighbors[k] != triangulate.NoTri {
			open++
		}
	}
	switch open {
	case 3:
		return Crossroad, true
	case 1:
		return DeadEnd, true
	case 0:
		return Isolated, true
	default:
		return 0, false
	}
}

func centroid(tri *triangulate.Triangulation, ti triangulate.TriIndex) geom.Vec2f {
	v := tri.Triangle(ti).Verts
	a, b, c := geom.AsFloat(v[0]), geom.AsFloat(v[1]), geom.AsFloat(v[2])
	return a.Add(b).Add(c).Mul(1.0 / 3.0)
}

// walkCorridor follows the chain of two-unconstrained-edge triangles
// starting by crossing corner k of triangle ti, until it reaches another
// node triangle, returning the triangle chain walked (inclusive of both
// endpoints), the portals crossed, the arrival triangle and the corner by
// which it was entered (so the caller can mark that entry visited too).
func walkCorridor(tri *triangulate.Triangulation, ti triangulate.TriIndex, k int, visited map[[2]int]bool) ([]triangulate.TriIndex, []Portal, triangulate.TriIndex, int) {
	chain := []triangulate.TriIndex{ti}
	var portals []Portal

	cur := ti
	corner := k
	for {
		visited[[2]int{int(cur), corner}] = true
		curTri := tri.Triangle(cur)
		v := curTri.Verts
		portals = append(portals, Portal{Left: geom.AsFloat(v[(corner+1)%3]), Right: geom.AsFloat(v[(corner+2)%3])})

		next := curTri.Neighbors[corner]
		chain = append(chain, next)
		nextTri := tri.Triangle(next)
		openCount, enterCorner := 0, -1
		for j := 0; j < 3; j++ {
			if !nextTri.Constrained[j] && nextTri.Neighbors[j] != triangulate.NoTri {
				openCount++
				if nextTri.Neighbors[j] == cur {
					enterCorner = j
				}
			}
		}
		if openCount != 2 {
			return chain, portals, next, enterCorner
		}
		// continue through the other open edge of next
		for j := 0; j < 3; j++ {
			if j == enterCorner {
				continue
			}
			if !nextTri.Constrained[j] && nextTri.Neighbors[j] != triangulate.NoTri {
				cur, corner = next, j
				break
			}
		}
	}
}

func minPortalWidth(portals []Portal) float32 {
	min := float32(1e30)
	for _, p := range portals {
		w := geom.Dist(p.Left, p.Right)
		if w < min {
			min = w
		}
	}
	return min
}

// componentsOf labels every triangle with its connected component over the
// unconstrained dual graph, via iterative flood fill.
func componentsOf(tri *triangulate.Triangulation) []int {
	n := tri.NumTriangles()
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	id := 0
	stack := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if comp[i] != -1 {
			continue
		}
		comp[i] = id
		stack = append(stack, i)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			t := tri.Triangle(triangulate.TriIndex(cur))
			for k := 0; k < 3; k++ {
				if t.Constrained[k] || t.Neighbors[k] == triangulate.NoTri {
					continue
				}
				nb := int(t.Neighbors[k])
				if comp[nb] == -1 {
					comp[nb] = id
					stack = append(stack, nb)
				}
			}
		}
		id++
	}
	return comp
}
