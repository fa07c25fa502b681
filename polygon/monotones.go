package polygon

// monotones turns the input polygons into y-monotone pieces, then hands
// each piece to the reflex-chain triangulator. The subdivision is a
// sweep-line run forward and then backward: the forward pass resolves the
// sweep order and the west-to-east monotone order, tolerating input that
// is ambiguous within precision, and leaves breadcrumbs; the backward
// pass splits the polygons at merge points using only those breadcrumbs,
// with no geometry at all.
type monotones struct {
	ring          *vertRing // verts, permuted into sweep-line order
	activeEdges   *edgeList // west to east through the open monotones
	inactiveEdges *edgeList // retired pairs, adjacency preserved
	precision     float32
	params        ExecutionParams
}

// vertType is the classification of a vert relative to the sweep line.
type vertType int

const (
	start vertType = iota
	backward
	forward
	merge
	end
	skip
)

// newMonotones builds the vert ring from the input, resolves the
// precision, and runs both sweeps. A soft failure in either sweep leaves
// the ring triangulable but skips the rest of the subdivision.
func newMonotones(polys Polygons, precision float32) *monotones {
	m := &monotones{
		ring:          newVertRing(),
		activeEdges:   newEdgeList(),
		inactiveEdges: newEdgeList(),
		precision:     precision,
		params:        snapshotParams(),
	}

	var bound float32
	for _, poly := range polys {
		var first, last *vert
		for _, pv := range poly {
			v := m.ring.pushBack(&vert{pos: pv.Pos, meshIdx: pv.Idx})
			bound = max32(bound, max32(abs32(pv.Pos.X()), abs32(pv.Pos.Y())))

			if first == nil {
				first = v
			} else {
				link(last, v)
			}
			last = v
		}
		if first != nil {
			link(last, first)
		}
	}

	if m.precision < 0 {
		m.precision = bound * kTolerance
	}

	if m.sweepForward() {
		return m
	}
	m.check()

	if m.sweepBack() {
		return m
	}
	m.check()
	return m
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// link makes right follow left on the polygon loop.
func link(left, right *vert) {
	left.right = right
	right.left = left
}

// updateEdge advances an open edge to a new south vert.
func updateEdge(e *edge, v *vert) {
	e.south = v
	v.edgeL = e
	v.edgeR = e
}

// linkEdges pairs two edges as the flanks of one open monotone.
func linkEdges(e1, e2 *edge) {
	e1.linked = e2
	e2.linked = e1
}

// processVert determines the topology of a vert relative to the sweep
// line, shared by both sweeps. It mutates the incident edges for every
// type except Start (which still needs placing) and Skip (which defers
// the vert entirely).
func (m *monotones) processVert(v *vert) vertType {
	if v.right.processed() {
		if v.left.processed() {
			edgeR := v.right.edgeL
			edgeL := v.left.edgeR

			if edgeR.nextEast() != edgeL && edgeL.nextEast() != edgeR {
				m.print("Skip")
				return skip
			}

			edgeR.south = v
			edgeL.south = v
			v.edgeR = edgeR
			v.edgeL = edgeL
			linkEdges(edgeL.linked, edgeR.linked)

			if edgeR.nextEast() == edgeL { // facing in
				m.print("End")
				return end
			}
			m.print("Merge") // facing out
			return merge
		}

		bwdEdge := v.right.edgeL
		fwdEdge := bwdEdge.nextEast()
		if !v.isPast(v.right, m.precision) &&
			!fwdEdge.south.right.isPast(v, m.precision) &&
			v.isPast(fwdEdge.south, m.precision) &&
			v.pos.X() > fwdEdge.south.right.pos.X()+m.precision {
			m.print("Skip backward edge")
			return skip
		}
		updateEdge(bwdEdge, v)
		m.print("Backward")
		return backward
	}

	if v.left.processed() {
		fwdEdge := v.left.edgeR
		bwdEdge := fwdEdge.nextWest()
		if !v.isPast(v.left, m.precision) &&
			!bwdEdge.south.left.isPast(v, m.precision) &&
			v.isPast(bwdEdge.south, m.precision) &&
			v.pos.X() < bwdEdge.south.left.pos.X()-m.precision {
			m.print("Skip forward edge")
			return skip
		}
		updateEdge(fwdEdge, v)
		m.print("Forward")
		return forward
	}

	m.print("Start")
	return start
}

// placeStart finds where a new pair belongs in the active list. At zero
// tolerance the slot is wherever the vert stops being east of the list;
// the fun part is reconciling that slot with the vert's own winding when
// the two disagree within precision. A disagreement with certain winding
// shifts the slot one edge in whichever direction is still consistent; if
// neither direction works the vert is skipped until the picture clears.
func (m *monotones) placeStart(v *vert) vertType {
	eastEdge := m.activeEdges.front()
	for eastEdge != nil && eastEdge.eastOf(v, 0) <= 0 {
		eastEdge = eastEdge.nextEast()
	}

	isHole := CCW(v.left.pos, v.pos, v.right.pos, 0) < 0
	holeCertain := CCW(v.left.pos, v.pos, v.right.pos, m.precision) != 0
	shouldBeStart := eastEdge == nil || !eastEdge.forward

	if isHole == shouldBeStart { // invalid
		if !holeCertain {
			isHole = !isHole
		} else { // shift to a valid position
			var west *edge
			if eastEdge == nil {
				west = m.activeEdges.back()
			} else {
				west = eastEdge.nextWest()
			}
			if eastEdge != nil && eastEdge.eastOf(v, m.precision) <= 0 {
				eastEdge = eastEdge.nextEast()
			} else if west != nil && west.eastOf(v, m.precision) >= 0 {
				eastEdge = west
			} else {
				return skip
			}
		}
	}

	newEastEdge := m.activeEdges.insertBefore(eastEdge, &edge{
		south:       v,
		forward:     !isHole,
		eastCertain: eastEdge == nil || eastEdge.eastOf(v, m.precision) > 0,
	})
	newWestEdge := m.activeEdges.insertBefore(newEastEdge, &edge{
		south:       v,
		forward:     isHole,
		eastCertain: holeCertain,
	})
	if isHole {
		v.edgeR = newWestEdge
		v.edgeL = newEastEdge
	} else {
		v.edgeR = newEastEdge
		v.edgeL = newWestEdge
	}
	linkEdges(newEastEdge, newWestEdge)
	return start
}

// removePair retires westEdge and the edge east of it at a Merge/End,
// marking both with the edge they used to sit west of. The backward sweep
// puts them back next to that neighbor instead of using geometry.
func (m *monotones) removePair(westEdge *edge) {
	eastEdge := westEdge.nxt
	nextEast := eastEdge.nextEast()
	westEdge.next = nextEast
	eastEdge.next = nextEast
	m.inactiveEdges.moveToBack(westEdge)
	m.inactiveEdges.moveToBack(eastEdge)
}

// check runs ring sanity checks between sweeps when enabled.
func (m *monotones) check() {
	if !m.params.IntermediateChecks {
		return
	}
	for v := m.ring.begin(); v != m.ring.end(); v = v.next {
		v.setProcessed(false)
		assertTopology(v.right.right != v, "two-edge monotone!")
		assertTopology(v.left.right == v, "monotone vert neighbors don't agree!")
	}
	if m.params.Verbose {
		for s := m.ring.begin(); s != m.ring.end(); s = s.next {
			if s.processed() {
				continue
			}
			s.setProcessed(true)
			m.printf("monotone start: %d, %g", s.meshIdx, s.pos.Y())
			for v := s.right; v != s; v = v.right {
				m.printf("%d, %g", v.meshIdx, v.pos.Y())
				v.setProcessed(true)
			}
			m.print("")
		}
	}
}
