package polygon

import (
	"sort"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// Post-hoc verification, run under ExecutionParams.IntermediateChecks.
// The topology check is the strong one: combining the output triangle
// halfedges with the reversed input polygon edges must give a closed
// 2-manifold, every directed edge matched by exactly one reverse partner.

type polyEdge struct {
	startVert, endVert int
}

func polygons2Edges(polys Polygons) []polyEdge {
	var halfedges []polyEdge
	for _, poly := range polys {
		for i := 1; i < len(poly); i++ {
			halfedges = append(halfedges, polyEdge{poly[i-1].Idx, poly[i].Idx})
		}
		halfedges = append(halfedges, polyEdge{poly[len(poly)-1].Idx, poly[0].Idx})
	}
	return halfedges
}

func triangles2Edges(triangles []Triangle) []polyEdge {
	halfedges := make([]polyEdge, 0, len(triangles)*3)
	for _, tri := range triangles {
		halfedges = append(halfedges,
			polyEdge{tri[0], tri[1]},
			polyEdge{tri[1], tri[2]},
			polyEdge{tri[2], tri[0]})
	}
	return halfedges
}

func checkHalfedges(halfedges []polyEdge) {
	assertTopology(len(halfedges)%2 == 0, "Odd number of halfedges.")
	nEdges := len(halfedges) / 2
	forward := make([]polyEdge, 0, nEdges)
	backward := make([]polyEdge, 0, nEdges)
	for _, e := range halfedges {
		if e.endVert > e.startVert {
			forward = append(forward, e)
		} else if e.endVert < e.startVert {
			backward = append(backward, e)
		}
	}
	assertTopology(len(forward) == nEdges, "Half of halfedges should be forward.")
	assertTopology(len(backward) == nEdges, "Half of halfedges should be backward.")

	for i := range backward {
		backward[i].startVert, backward[i].endVert = backward[i].endVert, backward[i].startVert
	}
	cmp := func(edges []polyEdge) func(i, j int) bool {
		return func(i, j int) bool {
			if edges[i].startVert != edges[j].startVert {
				return edges[i].startVert < edges[j].startVert
			}
			return edges[i].endVert < edges[j].endVert
		}
	}
	sort.Slice(forward, cmp(forward))
	sort.Slice(backward, cmp(backward))
	for i := 0; i < nEdges; i++ {
		assertTopology(forward[i] == backward[i], "Forward and backward edge do not match.")
		if i > 0 {
			assertTopology(forward[i-1] != forward[i], "Not a 2-manifold.")
			assertTopology(backward[i-1] != backward[i], "Not a 2-manifold.")
		}
	}
}

// CheckTopology verifies that the triangulation and the input polygons
// together form a closed 2-manifold. Panics with a TopologyError when
// they don't.
func CheckTopology(triangles []Triangle, polys Polygons) {
	halfedges := triangles2Edges(triangles)
	for _, e := range polygons2Edges(polys) {
		halfedges = append(halfedges, polyEdge{e.endVert, e.startVert})
	}
	checkHalfedges(halfedges)
}

// vertPositions indexes every input position by its mesh index.
func vertPositions(polys Polygons) map[int]mgl.Vec2 {
	pos := make(map[int]mgl.Vec2)
	for _, poly := range polys {
		for _, v := range poly {
			pos[v.Idx] = v.Pos
		}
	}
	return pos
}

// CheckGeometry verifies every triangle is counterclockwise within the
// given tolerance. Panics with a GeometryError when one isn't.
func CheckGeometry(triangles []Triangle, polys Polygons, precision float32) {
	pos := vertPositions(polys)
	for _, tri := range triangles {
		assertGeometry(CCW(pos[tri[0]], pos[tri[1]], pos[tri[2]], precision) >= 0,
			"triangulation is not entirely CCW!")
	}
}
