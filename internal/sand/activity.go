package sand

// Activity tracks which cells must be evaluated. Marks always land in the
// next-frame buffer; the current buffer only changes on Rotate.
type Activity struct {
	w, h   int
	cur    []bool
	next   []bool
	chunks *ChunkIndex
}

// NewActivity allocates activity buffers for a w×h grid. chunks may be nil.
func NewActivity(w, h int, chunks *ChunkIndex) *Activity {
	return &Activity{
		w:      w,
		h:      h,
		cur:    make([]bool, w*h),
		next:   make([]bool, w*h),
		chunks: chunks,
	}
}

// Active reports whether (x, y) is flagged for evaluation this frame.
func (a *Activity) Active(x, y int) bool {
	if x < 0 || y < 0 || x >= a.w || y >= a.h {
		return false
	}
	return a.cur[y*a.w+x]
}

// Pending reports whether (x, y) has been flagged for the next frame.
func (a *Activity) Pending(x, y int) bool {
	if x < 0 || y < 0 || x >= a.w || y >= a.h {
		return false
	}
	return a.next[y*a.w+x]
}

// MarkCell flags (x, y) and its chunk for the next frame.
func (a *Activity) MarkCell(x, y int) {
	if x < 0 || y < 0 || x >= a.w || y >= a.h {
		return
	}
	a.next[y*a.w+x] = true
	if a.chunks != nil {
		a.chunks.markNext(x, y)
	}
}

// MarkAround flags the Moore neighbourhood of (x, y) for the next frame. The
// centre is flagged unconditionally, neighbours only when occupied.
func (a *Activity) MarkAround(g *Grid, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= a.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= a.w {
				continue
			}
			if (dx != 0 || dy != 0) && !g.Occupied(nx, ny) {
				continue
			}
			a.MarkCell(nx, ny)
		}
	}
}

// Rotate makes next-frame activity current and clears the next buffer.
func (a *Activity) Rotate() {
	a.cur, a.next = a.next, a.cur
	clear(a.next)
	if a.chunks != nil {
		a.chunks.Rotate()
	}
}

// Clear drops every flag in both buffers.
func (a *Activity) Clear() {
	clear(a.cur)
	clear(a.next)
	if a.chunks != nil {
		a.chunks.Clear()
	}
}

// CountActive returns the number of occupied cells flagged this frame.
func (a *Activity) CountActive(g *Grid) int {
	cells := g.Cells()
	n := 0
	for i, act := range a.cur {
		if act && cells[i] != uint8(Void) {
			n++
		}
	}
	return n
}
