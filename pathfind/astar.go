// Package pathfind finds a shortest path through a reduced navigation graph
// (package navgraph) admissible for a given traversal radius, using A*
// search over corridors followed by a funnel/string-pull over the winning
// route's portals.
package pathfind

import (
	"container/heap"
	"errors"

	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/navgraph"
	"github.com/nav2d/trinav/triangulate"
)

// ErrUnreachable is returned when start and goal lie in different reduced-
// graph components, or no corridor along any route admits the given radius.
var ErrUnreachable = errors.New("pathfind: goal unreachable from start at this radius")

// Path is a sequence of waypoints from start to goal, already pulled taut
// through the portal corridor by the funnel algorithm.
type Path struct {
	Points []geom.Vec2f
}

// FindPath locates start and goal within tri, resolves them to reduced-graph
// nodes, runs a radius-admissible A* search over graph, and string-pulls the
// winning corridor sequence into a concrete path.
func FindPath(tri *triangulate.Triangulation, graph *navgraph.Graph, start, goal geom.Vec2f, radius float32) (Path, error) {
	startTri := tri.FindTriangle(start, false)
	goalTri := tri.FindTriangle(goal, false)
	if startTri == triangulate.NoTri || goalTri == triangulate.NoTri {
		return Path{}, ErrUnreachable
	}

	startNode, ok := nearestNode(graph, startTri)
	if !ok {
		return Path{}, ErrUnreachable
	}
	goalNode, ok := nearestNode(graph, goalTri)
	if !ok {
		return Path{}, ErrUnreachable
	}

	if graph.Nodes[startNode].Component != graph.Nodes[goalNode].Component {
		return Path{}, ErrUnreachable
	}

	route, ok := aStar(graph, startNode, goalNode, radius)
	if !ok {
		return Path{}, ErrUnreachable
	}

	portals := collectPortals(graph, route, startNode)
	pts := navgraph.StringPull(start, portals, goal)
	return Path{Points: pts}, nil
}

// nearestNode resolves a located triangle to a reduced-graph node: the
// triangle itself if it is a node, otherwise the From endpoint of whichever
// corridor's chain contains it (both endpoints reach the same component, so
// this only costs accuracy in the final path's first/last corridor, not
// reachability).
func nearestNode(graph *navgraph.Graph, ti triangulate.TriIndex) (int, bool) {
	for i, n := range graph.Nodes {
		if n.Tri == ti {
			return i, true
		}
	}
	for _, c := range graph.Corridors {
		for _, t := range c.TriChain {
			if t == ti {
				return c.From, true
			}
		}
	}
	return 0, false
}

type corridorEdge struct {
	corridor int
	to       int
}

// aStar searches graph from start to goal, rejecting any corridor whose
// MinWidth cannot admit a traveller of the given radius (MinWidth must be
// at least 2*radius), and returns the sequence of corridor indices taken.
func aStar(graph *navgraph.Graph, start, goal int, radius float32) ([]int, bool) {
	minWidth := 2 * radius

	dist := make(map[int]float32)
	cameFrom := make(map[int]corridorEdge)
	dist[start] = 0

	pq := &nodeQueue{}
	heap.Init(pq)
	heap.Push(pq, queueItem{node: start, priority: heuristic(graph, start, goal)})

	visited := make(map[int]bool)
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(queueItem).node
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == goal {
			return reconstruct(cameFrom, start, goal), true
		}
		for _, ci := range graph.Nodes[cur].Corridors {
			c := graph.Corridors[ci]
			if c.MinWidth < minWidth {
				continue
			}
			other := c.To
			if other == cur {
				other = c.From
			}
			nd := dist[cur] + c.Length
			if old, ok := dist[other]; !ok || nd < old {
				dist[other] = nd
				cameFrom[other] = corridorEdge{corridor: ci, to: cur}
				heap.Push(pq, queueItem{node: other, priority: nd + heuristic(graph, other, goal)})
			}
		}
	}
	return nil, false
}

func heuristic(graph *navgraph.Graph, a, b int) float32 {
	return geom.Dist(graph.Nodes[a].Pos, graph.Nodes[b].Pos)
}

func reconstruct(cameFrom map[int]corridorEdge, start, goal int) []int {
	var corridors []int
	cur := goal
	for cur != start {
		e, ok := cameFrom[cur]
		if !ok {
			break
		}
		corridors = append([]int{e.corridor}, corridors...)
		cur = e.to
	}
	return corridors
}

// collectPortals concatenates the portal sequence of each corridor on the
// route, in start-to-goal order, flipping a corridor's stored portal
// direction when it was walked backward (To -> From) relative to the route.
func collectPortals(graph *navgraph.Graph, route []int, startNode int) []navgraph.Portal {
	var portals []navgraph.Portal
	cur := startNode
	for _, ci := range route {
		c := graph.Corridors[ci]
		if c.From == cur {
			portals = append(portals, c.Portals...)
			cur = c.To
		} else {
			for i := len(c.Portals) - 1; i >= 0; i-- {
				p := c.Portals[i]
				portals = append(portals, navgraph.Portal{Left: p.Right, Right: p.Left})
			}
			cur = c.From
		}
	}
	return portals
}

type queueItem struct {
	node     int
	priority float32
}

type nodeQueue []queueItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
