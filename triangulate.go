// Package sweeptri triangulates planar polygons with holes into triangles
// suitable for feeding a manifold mesh Boolean engine.
//
// Input is a set of simple polygons: solid contours wound
// counterclockwise, holes clockwise, nested to any depth. Each point
// carries an opaque mesh index, and the output triangles are triples of
// those indices. Geometry only needs to be valid within a precision
// tolerance; input that is degenerate within that tolerance is handled by
// the sweep itself rather than by exact arithmetic.
package sweeptri

import (
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/ninefives/sweeptri/polygon"
)

type PolyVert = polygon.PolyVert
type SimplePolygon = polygon.SimplePolygon
type Polygons = polygon.Polygons
type Triangle = polygon.Triangle

// TriangulateIdx triangulates polygons whose points carry mesh indices.
// precision bounds the uncertainty of the input; pass a negative value to
// have one derived from the coordinate bounds. The returned error is a
// *polygon.GeometryError or *polygon.TopologyError.
func TriangulateIdx(polys Polygons, precision float32) (result []Triangle, err error) {
	defer func() {
		if recoveredErr := polygon.HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return polygon.TriangulateIdx(polys, precision), nil
}

// Triangulate is TriangulateIdx for plain point loops: mesh indices are
// assigned sequentially across all polygons in traversal order.
func Triangulate(polygons [][]mgl.Vec2, precision float32) (result []Triangle, err error) {
	defer func() {
		if recoveredErr := polygon.HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return polygon.Triangulate(polygons, precision), nil
}
