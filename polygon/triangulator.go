package polygon

// triangulator takes the verts of one monotone polygon in sweep-line
// order and outputs a geometrically valid triangulation, step by step. It
// keeps a stack of verts — the reflex chain — that are waiting for a vert
// on the opposite flank to become visible.
type triangulator struct {
	reflexChain     []*vert
	otherSide       *vert // the end vert across from the reflex chain
	onRight         bool  // the side the reflex chain is on
	trianglesOutput int
	precision       float32
}

func newTriangulator(v *vert, precision float32) *triangulator {
	return &triangulator{
		reflexChain: []*vert{v},
		otherSide:   v,
		precision:   precision,
	}
}

func (t *triangulator) numTriangles() int { return t.trianglesOutput }

// processVert takes vi, which must attach to the free end (specified by
// onRight) of the polygon input so far. Verts must arrive in sweep-line
// order for a geometrically valid result; if they don't, the polygon was
// not monotone and the output will still be topologically valid, just not
// geometrically. last must be set only for the final vert so the last
// triangle is emitted.
func (t *triangulator) processVert(vi *vert, onRight, last bool, triangles *[]Triangle) {
	vTop := t.reflexChain[len(t.reflexChain)-1]
	if len(t.reflexChain) < 2 {
		t.reflexChain = append(t.reflexChain, vi)
		t.onRight = onRight
		return
	}
	t.reflexChain = t.reflexChain[:len(t.reflexChain)-1]
	vj := t.reflexChain[len(t.reflexChain)-1]
	if t.onRight == onRight && !last {
		// This only creates enough triangles to ensure the reflex chain
		// is still reflex.
		ccw := CCW(vi.pos, vj.pos, vTop.pos, t.precision)
		want := -1
		if t.onRight {
			want = 1
		}
		for ccw == want || ccw == 0 {
			t.addTriangle(triangles, vi, vj, vTop)
			vTop = vj
			t.reflexChain = t.reflexChain[:len(t.reflexChain)-1]
			if len(t.reflexChain) == 0 {
				break
			}
			vj = t.reflexChain[len(t.reflexChain)-1]
			ccw = CCW(vi.pos, vj.pos, vTop.pos, t.precision)
		}
		t.reflexChain = append(t.reflexChain, vTop, vi)
	} else {
		// This branch empties the reflex chain and switches sides. It
		// must be used for the last vert, as it outputs all remaining
		// triangles regardless of geometry.
		t.onRight = !t.onRight
		vLast := vTop
		for len(t.reflexChain) > 0 {
			vj = t.reflexChain[len(t.reflexChain)-1]
			t.addTriangle(triangles, vi, vLast, vj)
			vLast = vj
			t.reflexChain = t.reflexChain[:len(t.reflexChain)-1]
		}
		t.reflexChain = append(t.reflexChain, vTop, vi)
		t.otherSide = vTop
	}
}

// addTriangle emits (v0, v1, v2), swapping the last two when onRight is
// false so output winding is always counterclockwise.
func (t *triangulator) addTriangle(triangles *[]Triangle, v0, v1, v2 *vert) {
	if !t.onRight {
		v1, v2 = v2, v1
	}
	*triangles = append(*triangles, Triangle{v0.meshIdx, v1.meshIdx, v2.meshIdx})
	t.trianglesOutput++
}

// triangulate walks each monotone piece of the subdivided ring in
// sweep-line order, always advancing whichever flank's next vert has the
// smaller ordinal, and feeds the verts to a triangulator. The final count
// is checked: a monotone of n verts must yield exactly n-2 triangles.
func (m *monotones) triangulate(triangles *[]Triangle) {
	// Save the sweep-line order in the vert to check further down.
	i := 1
	for v := m.ring.begin(); v != m.ring.end(); v = v.next {
		v.index = i
		i++
	}
	trianglesLeft := m.ring.len()
	for startV := m.ring.begin(); startV != m.ring.end(); {
		m.printf("%d", startV.meshIdx)
		tr := newTriangulator(startV, m.precision)
		startV.setProcessed(true)
		vR := startV.right
		vL := startV.left
		for vR != vL {
			// Process the neighbor vert that is next in the sweep-line.
			if vR.index < vL.index {
				m.printf("%d", vR.meshIdx)
				tr.processVert(vR, true, false, triangles)
				vR.setProcessed(true)
				vR = vR.right
			} else {
				m.printf("%d", vL.meshIdx)
				tr.processVert(vL, false, false, triangles)
				vL.setProcessed(true)
				vL = vL.left
			}
		}
		m.printf("%d", vR.meshIdx)
		tr.processVert(vR, true, true, triangles)
		vR.setProcessed(true)
		// validation
		assertTopology(tr.numTriangles() > 0, "Monotone produced no triangles.")
		trianglesLeft -= 2 + tr.numTriangles()
		// Find the next monotone
		startV = m.ring.begin()
		for startV != m.ring.end() && startV.processed() {
			startV = startV.next
		}
	}
	assertTopology(trianglesLeft == 0, "Triangulation produced wrong number of triangles.")
}
