package polygon

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// poly builds a SimplePolygon with mesh indices counting up from idxStart.
func poly(idxStart int, coords ...[2]float32) SimplePolygon {
	p := make(SimplePolygon, 0, len(coords))
	for i, c := range coords {
		p = append(p, PolyVert{Pos: mgl.Vec2{c[0], c[1]}, Idx: idxStart + i})
	}
	return p
}

func TestSquare(t *testing.T) {
	polys := Polygons{poly(0, [2]float32{0, 0}, [2]float32{1, 0}, [2]float32{1, 1}, [2]float32{0, 1})}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	assertValidTriangulation(t, polys, triangles, 1e-4)

	seen := map[int]bool{}
	for _, tri := range triangles {
		for _, idx := range tri {
			seen[idx] = true
		}
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: true}, seen)
}

func TestSquareWithHole(t *testing.T) {
	outer := poly(0, [2]float32{0, 0}, [2]float32{4, 0}, [2]float32{4, 4}, [2]float32{0, 4})
	hole := poly(4, [2]float32{1, 1}, [2]float32{1, 3}, [2]float32{3, 3}, [2]float32{3, 1})
	polys := Polygons{outer, hole}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	assert.Len(t, triangles, 8)
	assertValidTriangulation(t, polys, triangles, 1e-4)

	// No triangle may straddle the hole.
	pos := vertPositions(polys)
	for _, tri := range triangles {
		bx := (pos[tri[0]].X() + pos[tri[1]].X() + pos[tri[2]].X()) / 3
		by := (pos[tri[0]].Y() + pos[tri[1]].Y() + pos[tri[2]].Y()) / 3
		inHole := bx > 1 && bx < 3 && by > 1 && by < 3
		assert.False(t, inHole, "triangle %v has its barycenter inside the hole", tri)
	}
}

func TestNestedHole(t *testing.T) {
	// A solid island inside a hole inside a solid.
	outer := poly(0, [2]float32{0, 0}, [2]float32{4, 0}, [2]float32{4, 4}, [2]float32{0, 4})
	hole := poly(4, [2]float32{0.5, 0.5}, [2]float32{0.5, 3.5}, [2]float32{3.5, 3.5}, [2]float32{3.5, 0.5})
	island := poly(8, [2]float32{1.5, 1.5}, [2]float32{2.5, 1.5}, [2]float32{2.5, 2.5}, [2]float32{1.5, 2.5})
	polys := Polygons{outer, hole, island}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	assert.Len(t, triangles, 10)
	assertValidTriangulation(t, polys, triangles, 1e-4)
}

func TestConvexFan(t *testing.T) {
	polys := Polygons{poly(0,
		[2]float32{2, 0}, [2]float32{4, 1}, [2]float32{4, 3},
		[2]float32{2, 4}, [2]float32{0, 3}, [2]float32{0, 1})}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	assert.Len(t, triangles, 4)
	assertValidTriangulation(t, polys, triangles, 1e-4)
}

func TestChevronQuad(t *testing.T) {
	// Non-convex quadrilateral:
	/*
	 C
	 \ \
	  \  \
	  D   B
	 /  /
	/ /
	A
	*/
	polys := Polygons{poly(0,
		[2]float32{0, 0}, [2]float32{10, 10}, [2]float32{0, 20}, [2]float32{5, 10})}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	assertValidTriangulation(t, polys, triangles, 1e-4)
}

func TestMonotoneMountain(t *testing.T) {
	// One straight west flank, all other verts on a single monotone east
	// chain. This shape subdivides without a single deferral, which the
	// trace confirms.
	var trace bytes.Buffer
	setParams(t, ExecutionParams{Verbose: true, IntermediateChecks: true, DebugOut: &trace})

	polys := Polygons{poly(0,
		[2]float32{0, 0}, [2]float32{2, 0.5}, [2]float32{1, 1.2},
		[2]float32{2.5, 2}, [2]float32{1.5, 2.5}, [2]float32{0, 3})}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	assert.Len(t, triangles, 4)
	assertValidTriangulation(t, polys, triangles, 1e-4)
	assert.NotContains(t, trace.String(), "Skip")
}

func TestColinearExtraVertex(t *testing.T) {
	// A triangle with an extra vertex just off its bottom edge. The extra
	// vertex must survive into the output (the result stays manifold), but
	// it only contributes an altitude-zero sliver.
	polys := Polygons{poly(0,
		[2]float32{0, 0}, [2]float32{0.5, 1e-6}, [2]float32{1, 0}, [2]float32{0.5, 1})}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	assertValidTriangulation(t, polys, triangles, 1e-4)
}

func TestColinearPolygon(t *testing.T) {
	// Every vertex on one line: nothing here is thicker than precision,
	// so the entire output is degenerate, but it is still closed and does
	// not raise.
	polys := Polygons{poly(0, [2]float32{0, 0}, [2]float32{1, 0}, [2]float32{2, 0})}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	assertValidTriangulation(t, polys, triangles, 1e-4)
	pos := vertPositions(polys)
	for _, tri := range triangles {
		assert.Equal(t, 0, CCW(pos[tri[0]], pos[tri[1]], pos[tri[2]], 1e-4),
			"triangle %v should be degenerate", tri)
	}
}

func TestCoincidentSquares(t *testing.T) {
	// Two exact copies of the same square overlap by far more than
	// precision. With ProcessOverlaps the call must still return a
	// manifold triangulation; its geometry is advisory only.
	setParams(t, ExecutionParams{ProcessOverlaps: true, SuppressErrors: true})

	square := [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	polys := Polygons{poly(0, square...), poly(4, square...)}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	require.NoError(t, recoverErr(func() { CheckTopology(triangles, polys) }))
}

func TestAutoPrecision(t *testing.T) {
	polys := Polygons{poly(0, [2]float32{0, 0}, [2]float32{4, 0}, [2]float32{0, 3})}
	m := newMonotones(polys, -1)
	assert.Equal(t, float32(4*kTolerance), m.precision)
}

func TestIndexPreservation(t *testing.T) {
	// Mesh indices are opaque: sparse, unordered values must come back
	// exactly as given.
	polys := Polygons{{
		{Pos: mgl.Vec2{0, 0}, Idx: 107},
		{Pos: mgl.Vec2{1, 0}, Idx: 3},
		{Pos: mgl.Vec2{1, 1}, Idx: 55},
		{Pos: mgl.Vec2{0, 1}, Idx: 12},
	}}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)
	valid := map[int]bool{107: true, 3: true, 55: true, 12: true}
	for _, tri := range triangles {
		for _, idx := range tri {
			assert.True(t, valid[idx], "fabricated index %d", idx)
		}
	}
}

func TestBoundaryReconstruction(t *testing.T) {
	// Cancelling interior triangle edges against their reverse partners
	// must leave exactly the input's directed edge multiset.
	outer := poly(0, [2]float32{0, 0}, [2]float32{4, 0}, [2]float32{4, 4}, [2]float32{0, 4})
	hole := poly(4, [2]float32{1, 1}, [2]float32{1, 3}, [2]float32{3, 3}, [2]float32{3, 1})
	polys := Polygons{outer, hole}

	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)

	remaining := map[polyEdge]int{}
	for _, e := range triangles2Edges(triangles) {
		reversed := polyEdge{e.endVert, e.startVert}
		if remaining[reversed] > 0 {
			remaining[reversed]--
		} else {
			remaining[e]++
		}
	}
	for _, e := range polygons2Edges(polys) {
		require.Greater(t, remaining[e], 0, "input edge %v missing from the triangulation boundary", e)
		remaining[e]--
	}
	for e, n := range remaining {
		assert.Zero(t, n, "extra boundary edge %v", e)
	}
}

func TestSortStartsDescending(t *testing.T) {
	// The parallel path must agree exactly with a serial descending sort,
	// ties included.
	lcg := uint32(12345)
	next := func() float32 {
		lcg = lcg*1664525 + 1013904223
		return float32(lcg%1000) / 10
	}
	verts := make([]*vert, parallelStartThreshold+100)
	for i := range verts {
		verts[i] = &vert{pos: mgl.Vec2{next(), next()}}
	}
	serial := append([]*vert(nil), verts...)
	sort.Slice(serial, func(i, j int) bool { return sweepLess(serial[j], serial[i]) })

	sortStartsDescending(verts)
	for i := range verts {
		assert.Equal(t, serial[i].pos, verts[i].pos, "order diverges at %d", i)
	}
}

func TestFailureDump(t *testing.T) {
	// A topology failure prints the offending polygons unless suppressed,
	// and with Verbose set also renders them to a PNG.
	var out bytes.Buffer
	setParams(t, ExecutionParams{IntermediateChecks: true, Verbose: true, DebugOut: &out})
	require.NoError(t, removeIfPresent(failurePNG))

	// A two-vert "polygon" cannot form a monotone.
	polys := Polygons{poly(0, [2]float32{0, 0}, [2]float32{1, 0})}
	_, err := triangulateForTest(polys, 1e-4)
	require.Error(t, err)
	var topoErr *TopologyError
	require.ErrorAs(t, err, &topoErr)
	assert.True(t, strings.Contains(out.String(), "Triangulation failed!"))

	_, err = os.Stat(failurePNG)
	assert.NoError(t, err, "verbose failure dump should render %s", failurePNG)
}

func removeIfPresent(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func TestDrawTriangulation(t *testing.T) {
	outer := poly(0, [2]float32{0, 0}, [2]float32{4, 0}, [2]float32{4, 4}, [2]float32{0, 4})
	hole := poly(4, [2]float32{1, 1}, [2]float32{1, 3}, [2]float32{3, 3}, [2]float32{3, 1})
	polys := Polygons{outer, hole}
	triangles, err := triangulateForTest(polys, 1e-4)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hole.png")
	require.NoError(t, DrawTriangulation(path, polys, triangles, 16))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Nothing to draw is an error, not a panic.
	assert.Error(t, DrawTriangulation(path, Polygons{}, nil, 16))
}
