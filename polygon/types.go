package polygon

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// PolyVert is a single point of an input polygon. The Idx field is an
// opaque reference back into whatever mesh the polygon was cut from; it is
// carried through untouched and comes back out in the triangles. Geometric
// decisions use the precision tolerance; coordinates are compared exactly
// only to order the sweep and to break ties between equal y values.
type PolyVert struct {
	Pos mgl.Vec2
	Idx int
}

// SimplePolygon is a closed loop of vertices. The loop is implicit: the
// last vertex connects back to the first. Solid contours wind
// counterclockwise, holes wind clockwise.
type SimplePolygon []PolyVert

// Polygons is a set of simple polygons and/or holes, nested to any depth.
// The order of the polygons is irrelevant.
type Polygons []SimplePolygon

// Triangle is a triple of mesh indices, wound counterclockwise whenever
// the input was geometrically valid.
type Triangle [3]int

// kTolerance scales the largest input coordinate into the default
// precision when the caller passes a negative one.
const kTolerance = 1.0 / 8192

// vertState values share the index field of a vert. Nonnegative indices
// mean unprocessed (and later hold the sweep-line ordinal); the negative
// values mark verts the sweeps are done with.
const (
	vertProcessed = -1
	vertSkipped   = -2
)

// vert is a node of two structures at once: the global sweep-ordered ring
// (prev/next) and its own polygon loop (left/right). The sweeps reorder
// the ring; the loop links only change when a split breaks a polygon in
// two. All pointers stay valid across reordering, which the rest of the
// package depends on.
type vert struct {
	pos     mgl.Vec2
	meshIdx int

	// Sweep-line ordinal once assigned; vertProcessed/vertSkipped before
	// then. The triangulator also burns verts down to vertProcessed as it
	// consumes them.
	index int

	left, right  *vert // polygon loop, counterclockwise
	edgeL, edgeR *edge
	prev, next   *vert // ring order
}

func (v *vert) processed() bool { return v.index < 0 }

func (v *vert) setSkip() { v.index = vertSkipped }

func (v *vert) setProcessed(processed bool) {
	if v.index == vertSkipped {
		return
	}
	if processed {
		v.index = vertProcessed
	} else {
		v.index = 0
	}
}

// isStart reports whether this vert is a local minimum of its loop, the
// only kind of vert that can open a new monotone. Horizontal runs break
// ties by x so that exactly one vert of the run qualifies.
func (v *vert) isStart() bool {
	return (v.left.pos.Y() >= v.pos.Y() && v.right.pos.Y() > v.pos.Y()) ||
		(v.left.pos.Y() == v.pos.Y() && v.right.pos.Y() == v.pos.Y() &&
			v.left.pos.X() <= v.pos.X() && v.right.pos.X() < v.pos.X())
}

// isPast reports whether this vert is strictly north of other, beyond the
// precision band in which their order is ambiguous.
func (v *vert) isPast(other *vert, precision float32) bool {
	return v.pos.Y() > other.pos.Y()+precision
}

// sweepLess is the sweep-line order: ascending y, ties broken by
// ascending x. The tie-break keeps the start sort and the attached-vert
// queue deterministic.
func sweepLess(a, b *vert) bool {
	if a.pos.Y() != b.pos.Y() {
		return a.pos.Y() < b.pos.Y()
	}
	return a.pos.X() < b.pos.X()
}

// edge is one flank of an open monotone, running up from its current
// south vert toward the next loop vert in the forward (right) or reverse
// (left) direction. Edges live in the active list while their monotone is
// open, then move to the inactive list, keeping their position relative
// to their partner so the backward sweep can restore them without
// geometry.
type edge struct {
	south *vert

	// linked is the partner edge bounding the same open monotone.
	linked *edge

	// next is the breadcrumb left when a pair is removed at a Merge/End:
	// the edge that used to sit just east of the pair, or nil if the pair
	// was easternmost. The backward sweep spends these breadcrumbs to
	// place splits and restore pairs. Between uses it doubles as the
	// pending-merge marker.
	next *edge

	// forward mirrors the winding: the edge runs south→north along the
	// loop's right links when true, left links when false.
	forward bool

	// flipped is reserved; nothing sets it today, which makes the restore
	// path in the backward sweep unconditionally swap east and west.
	flipped bool

	// eastCertain is false iff this edge's position relative to its
	// immediate eastern neighbor is within precision and could be wrong.
	eastCertain bool

	prev, nxt *edge // list links, shared by the active and inactive lists
	sentinel  bool
}

// north is the far end of the edge, one loop step from south.
func (e *edge) north() *vert {
	if e.forward {
		return e.south.right
	}
	return e.south.left
}

// eastOf classifies vert against this edge: +1 if the edge is strictly
// east of the vert, -1 if strictly west, 0 if within precision. The
// bounding-box shortcuts keep long edges from drowning the CCW test in
// cancellation error.
func (e *edge) eastOf(v *vert, precision float32) int {
	north := e.north()
	if e.south.pos.X()-precision > v.pos.X() && north.pos.X()-precision > v.pos.X() {
		return 1
	}
	if e.south.pos.X()+precision < v.pos.X() && north.pos.X()+precision < v.pos.X() {
		return -1
	}
	return CCW(e.south.pos, north.pos, v.pos, precision)
}
