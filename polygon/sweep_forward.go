package polygon

import (
	"container/heap"
	"sort"
	"sync"
)

// vertHeap is a min-heap over sweep order, holding verts that are
// attached to an open monotone but not yet processed. Preferring these
// over fresh starts lets degenerate verts pick up the context they need.
type vertHeap []*vert

func (h vertHeap) Len() int            { return len(h) }
func (h vertHeap) Less(i, j int) bool  { return sweepLess(h[i], h[j]) }
func (h vertHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *vertHeap) Push(x interface{}) { *h = append(*h, x.(*vert)) }
func (h *vertHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// parallelStartThreshold is the input size below which sorting the start
// candidates in two goroutines costs more than it saves.
const parallelStartThreshold = 1 << 12

// sortStartsDescending orders the start candidates north to south so the
// next candidate is always at the back. This is the one data-parallel
// operation in the pipeline: the two halves sort concurrently and merge.
// The (y, x) key makes the result identical to a serial sort.
func sortStartsDescending(starts []*vert) {
	desc := func(s []*vert) func(i, j int) bool {
		return func(i, j int) bool { return sweepLess(s[j], s[i]) }
	}
	if len(starts) < parallelStartThreshold {
		sort.Slice(starts, desc(starts))
		return
	}

	mid := len(starts) / 2
	lo := make([]*vert, mid)
	hi := make([]*vert, len(starts)-mid)
	copy(lo, starts[:mid])
	copy(hi, starts[mid:])
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sort.Slice(lo, desc(lo))
	}()
	go func() {
		defer wg.Done()
		sort.Slice(hi, desc(hi))
	}()
	wg.Wait()

	i, j := 0, 0
	for k := range starts {
		switch {
		case i == len(lo):
			starts[k] = hi[j]
			j++
		case j == len(hi) || !sweepLess(lo[i], hi[j]):
			starts[k] = lo[i]
			i++
		default:
			starts[k] = hi[j]
			j++
		}
	}
}

// overlapOK reports whether the sweep may continue past a failed
// geometric expectation. Without ProcessOverlaps it raises instead; with
// it, the caller abandons the sweep and the polygons are triangulated in
// whatever state they are in, which is manifold but possibly inverted.
func (m *monotones) overlapOK(cond bool, msg string) bool {
	if !m.params.ProcessOverlaps {
		assertGeometry(cond, msg)
	}
	return cond
}

// sweepForward runs the sweep line south to north, building the active
// pair list and permuting the ring into sweep-line order. Verts whose
// classification is ambiguous within precision are skipped and retried
// once their neighbors pin them down. Returns true on soft failure.
func (m *monotones) sweepForward() bool {
	var nextAttached vertHeap

	var starts []*vert
	for v := m.ring.begin(); v != m.ring.end(); v = v.next {
		if v.isStart() {
			starts = append(starts, v)
		}
	}
	sortStartsDescending(starts)

	var skipped []*vert
	insertAt := m.ring.begin()

	for insertAt != m.ring.end() {
		// fallback for completely degenerate polygons that have no starts.
		v := insertAt
		if len(nextAttached) > 0 &&
			(len(starts) == 0 || !nextAttached[0].isPast(starts[len(starts)-1], m.precision)) {
			// Prefer neighbors, which may process starts without needing a
			// new pair.
			v = heap.Pop(&nextAttached).(*vert)
		} else if len(starts) > 0 {
			// Create a new pair with the next vert from the sorted starts.
			v = starts[len(starts)-1]
			starts = starts[:len(starts)-1]
		} else {
			insertAt = insertAt.next
		}

		if v.processed() {
			continue
		}

		m.printf("mesh_idx = %d", v.meshIdx)

		if !m.overlapOK(len(skipped) == 0 || !v.isPast(skipped[len(skipped)-1], m.precision),
			"Not Geometrically Valid! None of the skipped verts is valid.") {
			return true
		}

		vType := m.processVert(v)

		if vType == start {
			vType = m.placeStart(v)
		}

		if vType == skip {
			if !m.overlapOK(insertAt.next != m.ring.end(),
				"Not Geometrically Valid! Tried to skip final vert.") {
				return true
			}
			if !m.overlapOK(len(nextAttached) > 0 || len(starts) > 0,
				"Not Geometrically Valid! Tried to skip last queued vert.") {
				return true
			}
			skipped = append(skipped, v)
			m.print("Skipping vert")
			continue
		}

		if v == insertAt {
			insertAt = insertAt.next
		} else {
			m.ring.moveBefore(insertAt, v)
		}

		switch vType {
		case backward:
			heap.Push(&nextAttached, v.left)
		case forward:
			heap.Push(&nextAttached, v.right)
		case start:
			heap.Push(&nextAttached, v.left)
			heap.Push(&nextAttached, v.right)
		case merge:
			m.removePair(v.edgeL)
		case end:
			m.removePair(v.edgeR)
		}

		v.setProcessed(true)
		// Skipped verts get another shot now that the picture has changed.
		for len(skipped) > 0 {
			starts = append(starts, skipped[len(skipped)-1])
			skipped = skipped[:len(skipped)-1]
		}

		if m.params.Verbose {
			m.listActive()
		}
	}
	return false
}
