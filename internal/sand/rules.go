package sand

// TryMove attempts to move the material at (x, y) by a unit offset. An
// empty target is swapped with the source. An occupied target is only
// displaced by a strictly denser source, which either swaps with it or,
// with the destroy ability, takes its place. Every failure leaves the grid
// untouched.
func (s *Simulation) TryMove(x, y, dx, dy int) bool {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return false
	}
	tx, ty := x+dx, y+dy
	if !s.grid.InBounds(x, y) || !s.grid.InBounds(tx, ty) {
		return false
	}
	cells := s.grid.Cells()
	src := s.grid.Index(x, y)
	dst := s.grid.Index(tx, ty)
	srcID := MaterialID(cells[src])
	dstID := MaterialID(cells[dst])
	if srcID == Void {
		return false
	}

	if dstID != Void {
		if s.density[srcID] <= s.density[dstID] {
			return false
		}
		if s.destroys[srcID] {
			s.destroy(x, y, tx, ty)
			return true
		}
	}
	s.swap(x, y, tx, ty)
	return true
}

func (s *Simulation) swap(x, y, tx, ty int) {
	src := s.grid.Index(x, y)
	dst := s.grid.Index(tx, ty)
	s.grid.swap(src, dst)
	s.settle(x, y, tx, ty)
	s.last.Swaps++
}

func (s *Simulation) destroy(x, y, tx, ty int) {
	src := s.grid.Index(x, y)
	dst := s.grid.Index(tx, ty)
	switch s.cfg.DestroyMode {
	case DestroyAnnihilate:
		s.grid.set(dst, Void, s.grid.colors[dst])
	default:
		s.grid.set(dst, MaterialID(s.grid.Cells()[src]), s.grid.colors[src])
	}
	s.grid.set(src, Void, s.grid.colors[src])
	s.settle(x, y, tx, ty)
	s.last.Destroys++
}

// settle records a completed move between two cells: both are excluded from
// further evaluation this frame and their neighbourhoods wake up next frame.
func (s *Simulation) settle(x, y, tx, ty int) {
	s.stamp[s.grid.Index(x, y)] = s.gen
	s.stamp[s.grid.Index(tx, ty)] = s.gen
	s.activity.MarkAround(s.grid, x, y)
	s.activity.MarkAround(s.grid, tx, ty)
	s.markDirty(x, y)
	s.markDirty(tx, ty)
	s.last.Moves++
}

// simulate runs the movement policy of the material at (x, y). Groups are
// tried in order and the first successful move ends the attempt. A cell
// that cannot move is left as is and only wakes up through a neighbour.
func (s *Simulation) simulate(x, y int) {
	id := s.grid.Cells()[s.grid.Index(x, y)]
	for _, group := range s.moves[id] {
		for i := 0; i < group.Len(); i++ {
			o := group.offsetAt(i, s.direction)
			if s.TryMove(x, y, o.dx, o.dy) {
				return
			}
		}
	}
}
