package sand

import (
	"image/color"

	"sand-ca/internal/core"
)

// Grid owns the material ids and display colours of every cell. Colours of
// empty cells are always the zero value.
type Grid struct {
	W, H   int
	cells  *core.ByteGrid
	colors []color.RGBA
}

// NewGrid allocates a w×h grid of empty cells.
func NewGrid(w, h int) *Grid {
	cells := core.NewByteGrid(w, h)
	return &Grid{
		W:      cells.W,
		H:      cells.H,
		cells:  cells,
		colors: make([]color.RGBA, cells.W*cells.H),
	}
}

// InBounds reports whether (x, y) is a grid coordinate.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// Index returns the row-major index of (x, y).
func (g *Grid) Index(x, y int) int { return g.cells.Index(x, y) }

// Material returns the material id at (x, y); Void outside the grid.
func (g *Grid) Material(x, y int) MaterialID { return MaterialID(g.cells.At(x, y)) }

// Color returns the display colour at (x, y); zero outside the grid.
func (g *Grid) Color(x, y int) color.RGBA {
	if !g.InBounds(x, y) {
		return color.RGBA{}
	}
	return g.colors[g.Index(x, y)]
}

// Occupied reports whether (x, y) holds a non-void material.
func (g *Grid) Occupied(x, y int) bool { return g.cells.At(x, y) != uint8(Void) }

// Cells exposes the material id buffer.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// Colors exposes the colour buffer.
func (g *Grid) Colors() []color.RGBA { return g.colors }

// CountOccupied returns the number of non-void cells.
func (g *Grid) CountOccupied() int { return g.cells.Count() }

// Clear empties every cell in place.
func (g *Grid) Clear() {
	g.cells.Clear()
	clear(g.colors)
}

func (g *Grid) set(i int, id MaterialID, c color.RGBA) {
	if id == Void {
		c = color.RGBA{}
	}
	g.cells.Cells()[i] = uint8(id)
	g.colors[i] = c
}

func (g *Grid) swap(i, j int) {
	cells := g.cells.Cells()
	cells[i], cells[j] = cells[j], cells[i]
	g.colors[i], g.colors[j] = g.colors[j], g.colors[i]
}
