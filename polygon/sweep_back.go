package polygon

// splitVerts is the only function that actually changes the polygons; the
// sweeps are otherwise pure bookkeeping. It divides a polygon by
// connecting north to south: both verts are duplicated so the loop splits
// into one ring through the originals and one through the duplicates,
// with the new diagonal between them. The duplicates share a mesh index
// with their originals but are distinct ring entries.
func (m *monotones) splitVerts(north, south *vert) *vert {
	m.printf("split from %d to %d", north.meshIdx, south.meshIdx)

	northEast := m.ring.insertBefore(north, dupVert(north))
	link(north.left, northEast)
	northEast.setProcessed(true)

	southEast := m.ring.insertBefore(south.next, dupVert(south))
	link(southEast, south.right)
	southEast.setProcessed(true)

	link(south, north)
	link(northEast, southEast)

	return northEast
}

// dupVert copies everything about a vert except its ring position.
func dupVert(v *vert) *vert {
	return &vert{
		pos:     v.pos,
		meshIdx: v.meshIdx,
		index:   v.index,
		left:    v.left,
		right:   v.right,
		edgeL:   v.edgeL,
		edgeR:   v.edgeR,
	}
}

// checkSplit realizes a pending merge recorded on westEdge, if any,
// splitting vert down to the merge vert and clearing the mark.
func (m *monotones) checkSplit(v *vert, westEdge *edge) *vert {
	if westEdge.next != nil {
		v = m.splitVerts(v, westEdge.next.south)
		westEdge.next = nil // unmark merge
	}
	return v
}

// sweepBack re-traverses the ring north to south, splitting the polygons
// into monotones using only the breadcrumbs the forward sweep left — not
// a single geometric test. The polygon is considered rotated: the sweep
// still reads as South to North and the pairs as West to East, though
// both are now the opposite of the forward directions.
func (m *monotones) sweepBack() bool {
	for v := m.ring.begin(); v != m.ring.end(); v = v.next {
		v.setProcessed(false)
	}

	v := m.ring.end()
	for v != m.ring.begin() {
		v = v.prev

		if v.processed() {
			continue
		}

		m.printf("mesh_idx = %d", v.meshIdx)

		vType := m.processVert(v)
		if !m.overlapOK(vType != skip, "Skip should not happen on reverse sweep!") {
			return true
		}

		switch vType {
		case merge:
			v = m.checkSplit(v, v.edgeR)
			westOf := v.edgeL.nextWest()
			m.checkSplit(v, westOf)
			westOf.next = v.edgeL
			m.inactiveEdges.moveToBack(v.edgeR)
			m.inactiveEdges.moveToBack(v.edgeL)
		case end:
			m.checkSplit(v, v.edgeR)
			m.inactiveEdges.moveToBack(v.edgeR)
			m.inactiveEdges.moveToBack(v.edgeL)
		case forward:
			m.checkSplit(v, v.edgeL.nextWest())
		case backward:
			m.checkSplit(v, v.edgeR)
		case start:
			// Sweeping in the opposite direction swaps east and west, makes
			// the old next pair the previous one, and swaps begin and end.
			westEdge := v.edgeL
			eastEdge := v.edgeR
			eastOf := westEdge.next

			if eastEdge.nextEast() == westEdge {
				eastEdge, westEdge = westEdge, eastEdge
			}

			if !westEdge.flipped {
				westEdge, eastEdge = eastEdge, westEdge
				if eastOf == nil {
					eastOf = m.activeEdges.front()
				} else {
					eastOf = eastOf.nextEast()
				}
			}

			m.activeEdges.moveBefore(eastOf, eastEdge)
			m.activeEdges.moveBefore(eastEdge, westEdge)
			westEdge.forward = !westEdge.forward
			eastEdge.forward = !eastEdge.forward
			isHole := westEdge.forward

			if isHole {
				westOf := westEdge.nextWest()
				var split *vert
				switch {
				case westOf.next != nil:
					split = westOf.next.south
				case westOf.south.pos.Y() < eastOf.south.pos.Y():
					split = eastOf.south
				default:
					split = westOf.south
				}
				eastVert := m.splitVerts(v, split)
				westOf.next = nil
				updateEdge(eastEdge, eastVert)
				updateEdge(westEdge, v)
			} else {
				v.edgeL = westEdge
				v.edgeR = eastEdge
			}
			westEdge.next = nil
			eastEdge.next = nil
		}

		v.setProcessed(true)

		if m.params.Verbose {
			m.listActive()
		}
	}
	return false
}
