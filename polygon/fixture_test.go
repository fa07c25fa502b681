package polygon

// Loads the svg fixtures and turns them into polygons. This is not a
// full (or even correct) svg parser: it finds every polygon element,
// reads its points, and fixes the winding so the first polygon is a
// solid. If anything goes wrong, it fails the test.

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) Polygons {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "failed to parse fixture %q", name)

	polygonEls := rootEl.FindAll("polygon")
	require.NotEmpty(t, polygonEls, "no polygons found in fixture %q", name)

	var polys Polygons
	idx := 0
	for i, el := range polygonEls {
		var points []mgl.Vec2
		for _, pointString := range strings.Fields(el.Attributes["points"]) {
			parts := strings.Split(pointString, ",")
			require.Len(t, parts, 2, "invalid point string %q", pointString)
			x, err := strconv.ParseFloat(parts[0], 32)
			require.NoError(t, err)
			y, err := strconv.ParseFloat(parts[1], 32)
			require.NoError(t, err)
			points = append(points, mgl.Vec2{float32(x), float32(y)})
		}

		// The first polygon is the solid outline; any others are holes.
		// Fix up whatever winding the svg came with.
		if (i == 0) != ccwWinding(points) {
			for j, k := 0, len(points)-1; j < k; j, k = j+1, k-1 {
				points[j], points[k] = points[k], points[j]
			}
		}

		poly := make(SimplePolygon, 0, len(points))
		for _, p := range points {
			poly = append(poly, PolyVert{Pos: p, Idx: idx})
			idx++
		}
		polys = append(polys, poly)
	}
	return polys
}

func ccwWinding(points []mgl.Vec2) bool {
	var area float32
	for i, p := range points {
		next := points[(i+1)%len(points)]
		area += p.X()*next.Y() - next.X()*p.Y()
	}
	return area > 0
}

func TestFixtures(t *testing.T) {
	// A simple polygon of n verts always triangulates to n-2 triangles,
	// however many splits the subdivision needed on the way.
	for _, name := range []string{"comb", "star"} {
		t.Run(name, func(t *testing.T) {
			polys := loadFixture(t, name)
			n := 0
			for _, poly := range polys {
				n += len(poly)
			}

			triangles, err := triangulateForTest(polys, -1)
			require.NoError(t, err)
			assert.Len(t, triangles, n-2)
			assertValidTriangulation(t, polys, triangles, 24*kTolerance)
		})
	}
}
