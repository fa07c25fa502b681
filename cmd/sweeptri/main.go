package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	mgl "github.com/go-gl/mathgl/mgl32"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/ninefives/sweeptri"
	"github.com/ninefives/sweeptri/polygon"
)

// Demo of triangulation. Input on stdin should be newline separated
// points in the form "x y", with each polygon separated by an extra
// newline. Solid polygons wind counterclockwise, holes clockwise. The
// triangles print as index triples; --draw renders them to a PNG.

var (
	precision = kingpin.Flag("precision", "Tolerance below which geometry is degenerate; negative derives it from the input bounds.").Default("-1").Float()
	verbose   = kingpin.Flag("verbose", "Trace every sweep event.").Bool()
	checks    = kingpin.Flag("checks", "Verify topology and geometry of the result.").Bool()
	overlaps  = kingpin.Flag("overlaps", "Tolerate overlapping input, returning a best-effort result.").Bool()
	draw      = kingpin.Flag("draw", "Render the triangulation to this PNG file.").String()
	cat       = kingpin.Flag("cat", "Also display the rendering in the terminal.").Bool()
	scale     = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("32").Float()
)

func main() {
	kingpin.Parse()

	params := polygon.PolygonParams()
	params.Verbose = *verbose
	params.IntermediateChecks = *checks
	params.ProcessOverlaps = *overlaps

	polys := readPolygons(os.Stdin)
	fmt.Printf("Read %d polygons\n", len(polys))

	triangles, err := sweeptri.TriangulateIdx(polys, float32(*precision))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Produced %d triangles\n", len(triangles))
	for _, tri := range triangles {
		fmt.Printf("%d %d %d\n", tri[0], tri[1], tri[2])
	}

	if *draw != "" {
		if err := polygon.DrawTriangulation(*draw, polys, triangles, *scale); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if *cat {
			imgcat.CatFile(*draw, os.Stdout)
		}
	}
}

// readPolygons numbers the points sequentially from 0 across all
// polygons, so the printed triangles refer to the points in input order
// (blank separator lines are not counted).
func readPolygons(in *os.File) polygon.Polygons {
	var polys polygon.Polygons
	scanner := bufio.NewScanner(in)
	var points polygon.SimplePolygon
	idx := 0
	for scanner.Scan() {
		line := scanner.Text()

		// A blank line after any points ends the current polygon
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				polys = append(polys, points)
				points = nil
			}
			continue
		}

		points = append(points, polygon.PolyVert{Pos: parsePoint(line), Idx: idx})
		idx++
	}

	if len(points) > 0 {
		polys = append(polys, points)
	}
	return polys
}

func parsePoint(line string) mgl.Vec2 {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		kingpin.Fatalf("bad point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 32)
	if err != nil {
		kingpin.Fatalf("bad x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 32)
	if err != nil {
		kingpin.Fatalf("bad y value %q: %v", parts[1], err)
	}
	return mgl.Vec2{float32(x), float32(y)}
}
