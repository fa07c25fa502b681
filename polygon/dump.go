package polygon

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/ninefives/sweeptri/dbg"
)

// Diagnostics: the verbose sweep trace, the failure dump, and a terminal
// renderer for eyeballing inputs that went wrong.

func (m *monotones) print(msg string) {
	if m.params.Verbose {
		fmt.Fprintln(m.params.DebugOut, msg)
	}
}

func (m *monotones) printf(format string, args ...interface{}) {
	if m.params.Verbose {
		fmt.Fprintf(m.params.DebugOut, format+"\n", args...)
	}
}

// listEdge prints one active edge. Edges have no mesh index of their own,
// so they get readable names instead of pointer values.
func (m *monotones) listEdge(e *edge) {
	dir := aurora.Green("Fwd")
	if !e.forward {
		dir = aurora.Red("Bwd")
	}
	next := " none"
	if e.next != nil {
		next = " next"
	}
	certain := " uncertain"
	if e.eastCertain {
		certain = " certain"
	}
	fmt.Fprintf(m.params.DebugOut, "%s %s: S = %d, N = %d%s%s\n",
		dir, dbg.Name(e), e.south.meshIdx, e.north().meshIdx, next, certain)
	same := e.south.edgeR
	if !e.forward {
		same = e.south.edgeL
	}
	if same != e {
		fmt.Fprintln(m.params.DebugOut, "edge does not point back!")
	}
}

func (m *monotones) listActive() {
	fmt.Fprintln(m.params.DebugOut, "active edges:")
	for e := m.activeEdges.front(); e != nil; e = e.nextEast() {
		m.listEdge(e)
	}
}

// Dump prints the polygons as Go literals, ready to paste into a failing
// test.
func Dump(w io.Writer, polys Polygons) {
	for _, poly := range polys {
		fmt.Fprintln(w, "polys = append(polys, polygon.SimplePolygon{")
		for _, v := range poly {
			fmt.Fprintf(w, "\t{Pos: mgl.Vec2{%.9g, %.9g}, Idx: %d},\n",
				v.Pos.X(), v.Pos.Y(), v.Idx)
		}
		fmt.Fprintln(w, "})")
	}
}

// failurePNG is where a verbose failure dump renders the offending input.
const failurePNG = "/tmp/sweeptri_failure.png"

func printFailure(r interface{}, polys Polygons, triangles []Triangle, precision float32, p ExecutionParams) {
	w := p.DebugOut
	fmt.Fprintln(w, "-----------------------------------")
	fmt.Fprintln(w, "Triangulation failed! Precision =", precision)
	fmt.Fprintln(w, r)
	Dump(w, polys)
	fmt.Fprintln(w, "produced this triangulation:")
	for _, tri := range triangles {
		fmt.Fprintf(w, "%d, %d, %d\n", tri[0], tri[1], tri[2])
	}
	if p.Verbose {
		if err := DrawTriangulation(failurePNG, polys, triangles, 32); err == nil {
			imgcat.CatFile(failurePNG, w)
		}
	}
}

const drawPadding = 20

// DrawTriangulation renders the polygons, filled even-odd so holes read
// as holes, with the triangulation's edges over them, and writes a PNG to
// path. Partial (or empty) triangulations are fine, so the failure dump
// can show however far a failed call got. The demo CLI uses it too.
func DrawTriangulation(path string, polys Polygons, triangles []Triangle, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, v := range poly {
			minX = math.Min(minX, float64(v.Pos.X()))
			minY = math.Min(minY, float64(v.Pos.Y()))
			maxX = math.Max(maxX, float64(v.Pos.X()))
			maxY = math.Max(maxY, float64(v.Pos.Y()))
		}
	}
	if minX > maxX {
		return errors.New("nothing to draw")
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		c.MoveTo(float64(poly[0].Pos.X()), float64(poly[0].Pos.Y()))
		for _, v := range poly[1:] {
			c.LineTo(float64(v.Pos.X()), float64(v.Pos.Y()))
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	pos := vertPositions(polys)
	c.SetLineWidth(1)
	for _, tri := range triangles {
		a, b, d := pos[tri[0]], pos[tri[1]], pos[tri[2]]
		c.MoveTo(float64(a.X()), float64(a.Y()))
		c.LineTo(float64(b.X()), float64(b.Y()))
		c.LineTo(float64(d.X()), float64(d.Y()))
		c.ClosePath()
	}
	c.SetRGB(1, 1, 0)
	c.Stroke()

	return c.SavePNG(path)
}
