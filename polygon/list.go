package polygon

// The sweeps constantly reorder verts and retire edges while holding
// pointers into both sequences, so the containers have to keep every
// outstanding reference valid across those moves. These are circular
// doubly-linked lists with a sentinel node: a splice is O(1) pointer
// rewiring and never touches any node but its neighbors.

// vertRing is the global sequence of verts. It starts in input order and
// the forward sweep permutes it into sweep-line order. end() is the
// sentinel, so the usual iteration is
//
//	for v := ring.begin(); v != ring.end(); v = v.next
type vertRing struct {
	root vert
	size int
}

func newVertRing() *vertRing {
	r := &vertRing{}
	r.root.prev = &r.root
	r.root.next = &r.root
	return r
}

func (r *vertRing) begin() *vert { return r.root.next }
func (r *vertRing) end() *vert   { return &r.root }
func (r *vertRing) len() int     { return r.size }

// insertBefore links a new vert into the ring just west of at. at may be
// end().
func (r *vertRing) insertBefore(at, v *vert) *vert {
	v.prev = at.prev
	v.next = at
	at.prev.next = v
	at.prev = v
	r.size++
	return v
}

func (r *vertRing) pushBack(v *vert) *vert {
	return r.insertBefore(r.end(), v)
}

// moveBefore splices v out of its current position and back in just
// before at. Every pointer to v stays valid.
func (r *vertRing) moveBefore(at, v *vert) {
	if at == v {
		return
	}
	v.prev.next = v.next
	v.next.prev = v.prev
	v.prev = at.prev
	v.next = at
	at.prev.next = v
	at.prev = v
}

// edgeList holds the active (or inactive) edges in west-to-east order.
// Unlike the ring, positions relative to "end" are passed around as plain
// nil, because removed pairs remember the edge that used to be east of
// them — or nil if nothing was.
type edgeList struct {
	root edge
}

func newEdgeList() *edgeList {
	l := &edgeList{}
	l.root.sentinel = true
	l.root.prev = &l.root
	l.root.nxt = &l.root
	return l
}

func (l *edgeList) empty() bool { return l.root.nxt == &l.root }

// front returns the westernmost edge, or nil if the list is empty.
func (l *edgeList) front() *edge {
	if l.empty() {
		return nil
	}
	return l.root.nxt
}

// back returns the easternmost edge, or nil if the list is empty.
func (l *edgeList) back() *edge {
	if l.empty() {
		return nil
	}
	return l.root.prev
}

// nextEast is the edge one position east, or nil at the east end of
// whichever list e is in.
func (e *edge) nextEast() *edge {
	if e.nxt.sentinel {
		return nil
	}
	return e.nxt
}

// nextWest is the edge one position west, or nil at the west end.
func (e *edge) nextWest() *edge {
	if e.prev.sentinel {
		return nil
	}
	return e.prev
}

// insertBefore places a fresh edge just west of at; at == nil means the
// east end of the list.
func (l *edgeList) insertBefore(at *edge, e *edge) *edge {
	if at == nil {
		at = &l.root
	}
	e.prev = at.prev
	e.nxt = at
	at.prev.nxt = e
	at.prev = e
	return e
}

// moveBefore splices e out of whichever list it is in and into this one
// just west of at (nil means the east end). Adjacent nodes moved one at a
// time in order keep their adjacency, which is how removed pairs survive
// the trip through the inactive list.
func (l *edgeList) moveBefore(at *edge, e *edge) {
	e.prev.nxt = e.nxt
	e.nxt.prev = e.prev
	if at == nil {
		at = &l.root
	}
	e.prev = at.prev
	e.nxt = at
	at.prev.nxt = e
	at.prev = e
}

func (l *edgeList) moveToBack(e *edge) {
	l.moveBefore(nil, e)
}
