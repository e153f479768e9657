package triangulate

import (
	"bufio"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/nav2d/trinav/geom"
)

// DumpToFile writes a plain-text snapshot in the "Vertices:" / "Triangles:"
// format of the original implementation's debug dump: one "x y" line per
// vertex, then one "n0 n1 n2" neighbour-index triple per triangle
// (original_source/src/Triangulation.cpp, dumpToFile).
func (t *Triangulation) DumpToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("triangulate: dump to file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "Vertices:")
	for _, v := range t.vertices {
		fmt.Fprintf(w, "%d %d\n", v.X, v.Y)
	}
	fmt.Fprintln(w, "Triangles:")
	for _, tri := range t.tris {
		fmt.Fprintf(w, "%d %d %d\n", tri.Neighbors[0], tri.Neighbors[1], tri.Neighbors[2])
	}
	return w.Flush()
}

// DumpSVG renders every triangle edge to w: red for constrained/fixed
// edges, black otherwise. It is a read-only diagnostic, not a supported
// interchange format.
func (t *Triangulation) DumpSVG(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(int(t.boundary.X)+20, int(t.boundary.Y)+20)
	canvas.Rect(0, 0, int(t.boundary.X)+20, int(t.boundary.Y)+20, "fill:white")

	drawn := make(map[[2]int64]bool)
	for i := range t.tris {
		tri := &t.tris[i]
		for k := 0; k < 3; k++ {
			a, b := tri.Verts[next(k)], tri.Verts[prev(k)]
			key := edgeDrawKey(a, b)
			if drawn[key] {
				continue
			}
			drawn[key] = true
			color := "black"
			if tri.Constrained[k] {
				color = "red"
			}
			canvas.Line(int(a.X)+10, int(t.boundary.Y)-int(a.Y)+10, int(b.X)+10, int(t.boundary.Y)-int(b.Y)+10,
				fmt.Sprintf("stroke:%s;stroke-width:1", color))
		}
	}
	for i, v := range t.vertices {
		canvas.Circle(int(v.X)+10, int(t.boundary.Y)-int(v.Y)+10, 2, "fill:blue")
		canvas.Text(int(v.X)+13, int(t.boundary.Y)-int(v.Y)+7, fmt.Sprintf("%d", i), "font-size:9px")
	}
	canvas.End()
}

func edgeDrawKey(a, b geom.Vec2i) [2]int64 {
	ax, ay, bx, by := int64(a.X), int64(a.Y), int64(b.X), int64(b.Y)
	if ax > bx || (ax == bx && ay > by) {
		ax, ay, bx, by = bx, by, ax, ay
	}
	return [2]int64{ax<<32 | (ay & 0xffffffff), bx<<32 | (by & 0xffffffff)}
}
