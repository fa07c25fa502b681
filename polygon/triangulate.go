package polygon

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// TriangulateIdx triangulates a set of polygons that are valid within the
// precision tolerance. If the input is not, the triangulation may
// overlap, but it still comes back manifold, matching the input edge
// directions. Failures panic with a GeometryError or TopologyError; use
// HandleTriangulatePanicRecover (or the root package) to get them back as
// error values.
//
// A negative precision asks for one to be derived from the coordinate
// bounds.
func TriangulateIdx(polys Polygons, precision float32) (triangles []Triangle) {
	p := snapshotParams()
	defer func() {
		if r := recover(); r != nil {
			if !p.SuppressErrors {
				printFailure(r, polys, triangles, precision, p)
			}
			panic(r)
		}
	}()

	m := newMonotones(polys, precision)
	m.triangulate(&triangles)
	if m.params.IntermediateChecks {
		CheckTopology(triangles, polys)
		if !m.params.ProcessOverlaps {
			CheckGeometry(triangles, polys, 2*m.precision)
		}
	}
	return triangles
}

// Triangulate is the convenience form of TriangulateIdx for callers
// without mesh indices: points are numbered sequentially across all
// polygons in traversal order, and the triangles refer to those numbers.
func Triangulate(polygons [][]mgl.Vec2, precision float32) []Triangle {
	idx := 0
	polys := make(Polygons, 0, len(polygons))
	for _, poly := range polygons {
		simple := make(SimplePolygon, 0, len(poly))
		for _, pos := range poly {
			simple = append(simple, PolyVert{Pos: pos, Idx: idx})
			idx++
		}
		polys = append(polys, simple)
	}
	return TriangulateIdx(polys, precision)
}
