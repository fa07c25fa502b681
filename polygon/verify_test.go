package polygon

// This contains no actual tests. It is just a helper for checking that a
// triangulation is valid. The rules are:
//  1. Combining the triangle halfedges with the reversed input polygon
//     edges gives a set where every directed edge has exactly one reverse
//     partner and none appears twice (a closed 2-manifold).
//  2. Every triangle is counterclockwise within 2x the precision.
//  3. Every index in the output appears in the input; none are invented.
//  4. The triangle areas sum to the polygon area.

import (
	"math"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverErr(f func()) (err error) {
	defer func() {
		err = HandleTriangulatePanicRecover(recover())
	}()
	f()
	return nil
}

// triangulateForTest runs TriangulateIdx with panics converted back to
// errors, the way the root package does.
func triangulateForTest(polys Polygons, precision float32) (triangles []Triangle, err error) {
	err = recoverErr(func() {
		triangles = TriangulateIdx(polys, precision)
	})
	if err != nil {
		triangles = nil
	}
	return triangles, err
}

// setParams installs an ExecutionParams block for one test and restores
// the previous one afterward. Tests touching params must not run in
// parallel.
func setParams(t *testing.T, p ExecutionParams) {
	t.Helper()
	old := *PolygonParams()
	*PolygonParams() = p
	t.Cleanup(func() { *PolygonParams() = old })
}

// polygonsArea is the signed area of the whole polygon set by the shoelace formula; holes
// subtract from solids.
func polygonsArea(polys Polygons) float64 {
	var area float64
	for _, poly := range polys {
		for i, v := range poly {
			next := poly[(i+1)%len(poly)]
			area += float64(v.Pos.X())*float64(next.Pos.Y()) - float64(next.Pos.X())*float64(v.Pos.Y())
		}
	}
	return area / 2
}

func trianglesArea(triangles []Triangle, pos map[int]mgl.Vec2) float64 {
	var area float64
	for _, tri := range triangles {
		a, b, c := pos[tri[0]], pos[tri[1]], pos[tri[2]]
		area += (float64(b.X())-float64(a.X()))*(float64(c.Y())-float64(a.Y())) -
			(float64(c.X())-float64(a.X()))*(float64(b.Y())-float64(a.Y()))
	}
	return area / 2
}

func assertValidTriangulation(t *testing.T, polys Polygons, triangles []Triangle, precision float32) {
	t.Helper()

	require.NoError(t, recoverErr(func() { CheckTopology(triangles, polys) }),
		"triangulation is not manifold against the input")

	pos := vertPositions(polys)
	for _, tri := range triangles {
		for _, idx := range tri {
			_, ok := pos[idx]
			require.True(t, ok, "triangle references index %d not present in the input", idx)
		}
		assert.GreaterOrEqual(t, CCW(pos[tri[0]], pos[tri[1]], pos[tri[2]], 2*precision), 0,
			"clockwise triangle: %v", tri)
	}

	assert.InDelta(t, polygonsArea(polys), trianglesArea(triangles, pos), areaTolerance(polys),
		"triangle areas must sum to the polygon area")
}

// areaTolerance scales with the squared extent of the input, since area
// error from float32 positions does too.
func areaTolerance(polys Polygons) float64 {
	var bound float64
	for _, poly := range polys {
		for _, v := range poly {
			bound = math.Max(bound, math.Max(math.Abs(float64(v.Pos.X())), math.Abs(float64(v.Pos.Y()))))
		}
	}
	return 1e-4 * math.Max(1, bound*bound)
}
