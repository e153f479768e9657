// Command trinavdump exercises the triangulation, reduced-graph and
// path-finding pipeline end to end against a small synthetic scene, and
// writes a plain-text and an SVG dump for manual inspection. It contains no
// algorithmic logic of its own — every computation lives in the library
// packages.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/nav2d/trinav/geom"
	"github.com/nav2d/trinav/navgraph"
	"github.com/nav2d/trinav/pathfind"
	"github.com/nav2d/trinav/triangulate"
)

func main() {
	log.SetPrefix("trinavdump: ")
	log.SetFlags(0)

	width := flag.Int("width", 100, "domain width")
	height := flag.Int("height", 100, "domain height")
	out := flag.String("out", "trinav", "output file prefix (.txt and .svg are appended)")
	flag.Parse()

	tri := triangulate.New(int32(*width), int32(*height))

	mid := geom.Vec2i{X: int32(*width) / 2, Y: int32(*height) / 2}
	data := tri.InsertVertex(mid)
	if !data.OK {
		log.Fatalf("insert centre vertex: out of domain")
	}

	if err := tri.DumpToFile(*out + ".txt"); err != nil {
		log.Fatalf("dump to file: %v", err)
	}

	svgFile, err := os.Create(*out + ".svg")
	if err != nil {
		log.Fatalf("create svg file: %v", err)
	}
	defer svgFile.Close()
	tri.DumpSVG(svgFile)

	graph := navgraph.Build(tri)
	log.Printf("reduced graph: %d nodes, %d corridors", len(graph.Nodes), len(graph.Corridors))

	start := geom.Vec2f{1, 1}
	goal := geom.AsFloat(geom.Vec2i{X: int32(*width) - 1, Y: int32(*height) - 1})
	path, err := pathfind.FindPath(tri, graph, start, goal, 0.5)
	if err != nil {
		log.Printf("pathfind: %v", err)
		return
	}
	log.Printf("path: %d waypoints", len(path.Points))
}
