package sand

// ChunkIndex partitions the grid into size×size chunks with double-buffered
// activity flags and a dirty set consumed by renderers. Edge chunks may be
// smaller when the grid is not a multiple of the chunk size.
type ChunkIndex struct {
	size       int
	cols, rows int

	cur   []bool
	next  []bool
	dirty []bool

	rowAny []bool
}

// NewChunkIndex returns nil when size is not positive, disabling chunk skips.
func NewChunkIndex(w, h, size int) *ChunkIndex {
	if size <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	cols := (w + size - 1) / size
	rows := (h + size - 1) / size
	n := cols * rows
	return &ChunkIndex{
		size:   size,
		cols:   cols,
		rows:   rows,
		cur:    make([]bool, n),
		next:   make([]bool, n),
		dirty:  make([]bool, n),
		rowAny: make([]bool, rows),
	}
}

// Size returns the chunk edge length in cells.
func (c *ChunkIndex) Size() int { return c.size }

// Dims returns the number of chunk columns and rows.
func (c *ChunkIndex) Dims() (int, int) { return c.cols, c.rows }

func (c *ChunkIndex) index(x, y int) int { return (y/c.size)*c.cols + x/c.size }

// Active reports whether the chunk containing cell (x, y) is active this frame.
func (c *ChunkIndex) Active(x, y int) bool { return c.cur[c.index(x, y)] }

// ChunkActive reports whether chunk (cx, cy) is active this frame.
func (c *ChunkIndex) ChunkActive(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return false
	}
	return c.cur[cy*c.cols+cx]
}

// RowActive reports whether any chunk overlapping cell row y is active.
func (c *ChunkIndex) RowActive(y int) bool { return c.rowAny[y/c.size] }

// CountActive returns the number of active chunks this frame.
func (c *ChunkIndex) CountActive() int {
	n := 0
	for _, a := range c.cur {
		if a {
			n++
		}
	}
	return n
}

func (c *ChunkIndex) markNext(x, y int) { c.next[c.index(x, y)] = true }

func (c *ChunkIndex) markDirty(x, y int) { c.dirty[c.index(x, y)] = true }

func (c *ChunkIndex) markActiveDirty() {
	for i, a := range c.cur {
		if a {
			c.dirty[i] = true
		}
	}
}

// DirtyAll flags every chunk for redraw.
func (c *ChunkIndex) DirtyAll() {
	for i := range c.dirty {
		c.dirty[i] = true
	}
}

// ConsumeDirty calls fn for every dirty chunk and clears the dirty set.
func (c *ChunkIndex) ConsumeDirty(fn func(cx, cy int)) {
	for i, d := range c.dirty {
		if !d {
			continue
		}
		c.dirty[i] = false
		if fn != nil {
			fn(i%c.cols, i/c.cols)
		}
	}
}

// Rotate promotes next-frame activity to current and clears the next buffer.
func (c *ChunkIndex) Rotate() {
	c.cur, c.next = c.next, c.cur
	clear(c.next)
	clear(c.rowAny)
	for i, a := range c.cur {
		if a {
			c.rowAny[i/c.cols] = true
		}
	}
}

// Clear drops all activity. The dirty set is left to the caller.
func (c *ChunkIndex) Clear() {
	clear(c.cur)
	clear(c.next)
	clear(c.rowAny)
}
