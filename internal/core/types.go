package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells reports the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// ColorProvider is implemented by sims that keep a per-cell colour buffer
// instead of mapping cell values through a palette.
type ColorProvider interface {
	Colors() []color.RGBA
}

// ChunkProvider is implemented by sims that partition the grid into chunks
// and track which of them changed since the last redraw.
type ChunkProvider interface {
	ChunkSize() int
	ConsumeDirtyChunks(fn func(cx, cy int))
}

// Swatch is a selectable entry of a sim's legend, such as a material.
type Swatch struct {
	ID    int
	Label string
	Key   rune
	Color color.RGBA
}

// SwatchProvider is implemented by sims with a selectable legend.
type SwatchProvider interface {
	Swatches() []Swatch
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered sims in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
