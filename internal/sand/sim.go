package sand

import (
	"errors"
	"fmt"
	"image/color"

	"sand-ca/internal/core"
)

var (
	// ErrUnknownMaterial is returned for material ids outside the table.
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

// FrameStats counts what happened during one frame, or across many when
// accumulated.
type FrameStats struct {
	Frame    uint64
	Visited  int
	Moves    int
	Swaps    int
	Destroys int
	Placed   int
	Erased   int
}

func (f *FrameStats) add(o FrameStats) {
	f.Frame = o.Frame
	f.Visited += o.Visited
	f.Moves += o.Moves
	f.Swaps += o.Swaps
	f.Destroys += o.Destroys
	f.Placed += o.Placed
	f.Erased += o.Erased
}

type placement struct {
	x, y  int
	id    MaterialID
	brush BrushID
}

// Simulation owns the grid, the activity tracker and every piece of mutable
// state of one falling-sand world. It is not safe for concurrent use;
// renderers may read Colors between Step calls.
type Simulation struct {
	cfg  Config
	name string

	table    *Table
	moves    [][]MoveGroup
	density  []int
	destroys []bool
	palette  *Palette
	brushes  *BrushSet

	grid     *Grid
	activity *Activity
	chunks   *ChunkIndex

	rng   *core.RNG
	order []int

	// stamp[i] == gen marks cells written this frame by a move or a placement.
	stamp []uint32
	gen   uint32

	direction bool
	paused    bool

	material MaterialID
	brush    BrushID
	pending  []placement

	frame  uint64
	last   FrameStats
	totals FrameStats
}

// New returns a simulation of the given dimensions using defaults.
func New(w, h int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation with the stock material table.
func NewWithConfig(cfg Config) *Simulation {
	return NewWithTable(cfg, DefaultTable())
}

// NewWithTable returns a simulation over a caller-provided material table.
func NewWithTable(cfg Config, table *Table) *Simulation {
	grid := NewGrid(cfg.Width, cfg.Height)
	chunks := NewChunkIndex(grid.W, grid.H, cfg.ChunkSize)
	rng := core.NewRNG(cfg.Seed)

	s := &Simulation{
		cfg:      cfg,
		name:     "sand",
		table:    table,
		moves:    make([][]MoveGroup, table.Len()),
		density:  make([]int, table.Len()),
		destroys: make([]bool, table.Len()),
		palette:  NewPalette(table, cfg.Shades, cfg.ShadeJitter, rng),
		brushes:  DefaultBrushes(),
		grid:     grid,
		activity: NewActivity(grid.W, grid.H, chunks),
		chunks:   chunks,
		rng:      rng,
		order:    make([]int, grid.W),
		stamp:    make([]uint32, grid.W*grid.H),
		material: Sand,
		brush:    BrushSmall,
	}
	for _, m := range table.All() {
		s.moves[m.ID] = MovesFor(m, cfg.LiquidRise)
		s.density[m.ID] = m.Density
		s.destroys[m.ID] = m.Destroys()
	}
	if !table.Valid(s.material) {
		s.material = Void
	}
	for i := range s.order {
		s.order[i] = i
	}
	if chunks != nil {
		chunks.DirtyAll()
	}
	if cfg.Terrain > 0 {
		s.seedTerrain(cfg.Seed)
	}
	return s
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return s.name }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the material id of every cell in row-major order.
func (s *Simulation) Cells() []uint8 { return s.grid.Cells() }

// Colors exposes the display colour of every cell in row-major order.
func (s *Simulation) Colors() []color.RGBA { return s.grid.Colors() }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Table returns the material table.
func (s *Simulation) Table() *Table { return s.table }

// Brushes returns the brush set.
func (s *Simulation) Brushes() *BrushSet { return s.brushes }

// Palette returns the shade palette.
func (s *Simulation) Palette() *Palette { return s.palette }

// Reset empties the grid in place and drops all activity and pending
// placements. A zero seed reuses the configured seed. When terrain is
// configured, stone hills are laid down afterwards.
func (s *Simulation) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng.Seed(effective)
	s.grid.Clear()
	s.activity.Clear()
	clear(s.stamp)
	s.gen = 0
	s.pending = s.pending[:0]
	s.direction = false
	s.frame = 0
	s.last = FrameStats{}
	s.totals = FrameStats{}
	if s.chunks != nil {
		s.chunks.DirtyAll()
	}
	if s.cfg.Terrain > 0 {
		s.seedTerrain(effective)
	}
}

// SetPaused switches between the running and paused modes.
func (s *Simulation) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	if s.chunks != nil {
		s.chunks.DirtyAll()
	}
}

// Paused reports whether movement is suspended.
func (s *Simulation) Paused() bool { return s.paused }

// SelectMaterial changes the material used by Paint. Unknown ids are ignored.
func (s *Simulation) SelectMaterial(id MaterialID) {
	if s.table.Valid(id) {
		s.material = id
	}
}

// SelectedMaterial returns the material used by Paint.
func (s *Simulation) SelectedMaterial() MaterialID { return s.material }

// SelectBrush changes the brush used by Paint and Erase. Unknown ids are ignored.
func (s *Simulation) SelectBrush(id BrushID) {
	if int(id) < s.brushes.Len() {
		s.brush = id
	}
}

// SelectedBrush returns the brush used by Paint and Erase.
func (s *Simulation) SelectedBrush() BrushID { return s.brush }

// Place queues a placement of id stamped with brush around (x, y). It is
// applied at the start of the next Step. Erasing is placing Void.
func (s *Simulation) Place(x, y int, id MaterialID, brush BrushID) error {
	if !s.table.Valid(id) {
		return fmt.Errorf("%w: %d", ErrUnknownMaterial, id)
	}
	if _, err := s.brushes.Get(brush); err != nil {
		return err
	}
	if !s.grid.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	s.pending = append(s.pending, placement{x: x, y: y, id: id, brush: brush})
	return nil
}

// Paint queues a placement of the selected material with the selected brush.
func (s *Simulation) Paint(x, y int) error {
	return s.Place(x, y, s.material, s.brush)
}

// Erase queues an erase with the selected brush.
func (s *Simulation) Erase(x, y int) error {
	return s.Place(x, y, Void, s.brush)
}

// PendingPlacements returns the number of queued placements.
func (s *Simulation) PendingPlacements() int { return len(s.pending) }

// MaterialAt returns the material at (x, y); Void outside the grid.
func (s *Simulation) MaterialAt(x, y int) MaterialID { return s.grid.Material(x, y) }

// ColorAt returns the display colour at (x, y).
func (s *Simulation) ColorAt(x, y int) color.RGBA { return s.grid.Color(x, y) }

// IsActive reports whether (x, y) is evaluated in the coming frame.
func (s *Simulation) IsActive(x, y int) bool { return s.activity.Active(x, y) }

// CountOccupied returns the number of non-void cells.
func (s *Simulation) CountOccupied() int { return s.grid.CountOccupied() }

// CountActive returns the number of occupied cells evaluated in the coming frame.
func (s *Simulation) CountActive() int { return s.activity.CountActive(s.grid) }

// CountActiveChunks returns the number of chunks evaluated in the coming
// frame, or -1 when chunking is disabled.
func (s *Simulation) CountActiveChunks() int {
	if s.chunks == nil {
		return -1
	}
	return s.chunks.CountActive()
}

// ActiveChunks calls fn for every chunk evaluated in the coming frame.
func (s *Simulation) ActiveChunks(fn func(cx, cy int)) {
	if s.chunks == nil {
		return
	}
	cols, rows := s.chunks.Dims()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			if s.chunks.ChunkActive(cx, cy) {
				fn(cx, cy)
			}
		}
	}
}

// Chunks exposes the chunk index; nil when chunking is disabled.
func (s *Simulation) Chunks() *ChunkIndex { return s.chunks }

// ChunkSize returns the chunk edge length, zero when chunking is disabled.
func (s *Simulation) ChunkSize() int {
	if s.chunks == nil {
		return 0
	}
	return s.chunks.Size()
}

// ConsumeDirtyChunks reports and clears the chunks that need a redraw.
func (s *Simulation) ConsumeDirtyChunks(fn func(cx, cy int)) {
	if s.chunks == nil {
		return
	}
	s.chunks.ConsumeDirty(fn)
}

// Frame returns the number of frames stepped since the last reset.
func (s *Simulation) Frame() uint64 { return s.frame }

// LastFrame returns the counters of the most recent Step.
func (s *Simulation) LastFrame() FrameStats { return s.last }

// Totals returns counters accumulated since the last reset.
func (s *Simulation) Totals() FrameStats { return s.totals }

// Step advances the world by one frame: flip the alternation bit, apply
// queued placements, walk the grid bottom-to-top with a shuffled column
// order per row, then rotate the activity buffers.
func (s *Simulation) Step() {
	s.direction = !s.direction
	s.frame++
	s.nextGeneration()
	s.last = FrameStats{Frame: s.frame}

	s.applyPlacements()
	if s.paused {
		s.holdActivity()
	} else {
		s.traverse()
	}
	s.activity.Rotate()
	s.totals.add(s.last)
}

func (s *Simulation) nextGeneration() {
	s.gen++
	if s.gen == 0 {
		clear(s.stamp)
		s.gen = 1
	}
}

func (s *Simulation) traverse() {
	w, h := s.grid.W, s.grid.H
	cells := s.grid.Cells()
	if s.chunks != nil {
		s.chunks.markActiveDirty()
	}
	for y := h - 1; y >= 0; y-- {
		if s.chunks != nil && !s.chunks.RowActive(y) {
			continue
		}
		s.rng.ShuffleInts(s.order)
		row := y * w
		for _, x := range s.order {
			i := row + x
			if cells[i] == uint8(Void) {
				continue
			}
			if s.chunks != nil && !s.chunks.Active(x, y) {
				continue
			}
			if !s.activity.cur[i] || s.stamp[i] == s.gen {
				continue
			}
			s.last.Visited++
			s.simulate(x, y)
		}
	}
}

// holdActivity keeps every occupied cell flagged while paused so that
// resuming picks up exactly where the world stopped.
func (s *Simulation) holdActivity() {
	w := s.grid.W
	for i, id := range s.grid.Cells() {
		if id == uint8(Void) {
			continue
		}
		s.activity.MarkCell(i%w, i/w)
	}
}

func (s *Simulation) applyPlacements() {
	for _, p := range s.pending {
		s.applyPlacement(p)
	}
	s.pending = s.pending[:0]
}

func (s *Simulation) applyPlacement(p placement) {
	brush, err := s.brushes.Get(p.brush)
	if err != nil {
		return
	}
	if s.grid.Material(p.x, p.y) != p.id {
		s.write(p.x, p.y, p.id)
	}
	for _, off := range brush.offsets {
		if off[0] == 0 && off[1] == 0 {
			continue
		}
		if s.rng.Chance(s.cfg.BrushSkipChance) {
			continue
		}
		x, y := p.x+off[0], p.y+off[1]
		if !s.grid.InBounds(x, y) {
			continue
		}
		current := s.grid.Material(x, y)
		if current == p.id {
			continue
		}
		if current != Void && p.id != Void {
			continue
		}
		s.write(x, y, p.id)
	}
}

// write replaces the content of (x, y) with a fresh shade of id. The cell is
// stamped with the current generation so it first moves on the next frame.
func (s *Simulation) write(x, y int, id MaterialID) {
	i := s.grid.Index(x, y)
	s.grid.set(i, id, s.palette.Pick(id, s.rng))
	s.stamp[i] = s.gen
	s.activity.MarkAround(s.grid, x, y)
	s.markDirty(x, y)
	if id == Void {
		s.last.Erased++
	} else {
		s.last.Placed++
	}
}

func (s *Simulation) markDirty(x, y int) {
	if s.chunks != nil {
		s.chunks.markDirty(x, y)
	}
}
