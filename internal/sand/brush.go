package sand

import (
	"errors"
	"fmt"
)

// BrushID selects one of the brushes in a BrushSet.
type BrushID uint8

const (
	BrushPoint BrushID = iota
	BrushSmall
	BrushMedium
	BrushLarge
)

// ErrUnknownBrush is returned for brush ids outside the brush set.
var ErrUnknownBrush = errors.New("unknown brush")

// Brush is an immutable circular stamp: every offset with dx²+dy² <= r².
type Brush struct {
	Name    string
	Key     rune
	Radius  int
	offsets [][2]int
}

// NewBrush precomputes the offsets of a circular brush.
func NewBrush(name string, key rune, radius int) Brush {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	offsets := make([][2]int, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			offsets = append(offsets, [2]int{dx, dy})
		}
	}
	return Brush{Name: name, Key: key, Radius: radius, offsets: offsets}
}

// Offsets returns a copy of the brush offsets, centre included.
func (b Brush) Offsets() [][2]int {
	out := make([][2]int, len(b.offsets))
	copy(out, b.offsets)
	return out
}

// Size returns the number of offsets.
func (b Brush) Size() int { return len(b.offsets) }

// BrushSet is the fixed list of brushes available to the painter.
type BrushSet struct {
	brushes []Brush
}

// DefaultBrushes returns point, small, medium and large brushes.
func DefaultBrushes() *BrushSet {
	return &BrushSet{brushes: []Brush{
		BrushPoint:  NewBrush("point", 'x', 0),
		BrushSmall:  NewBrush("small", 's', 2),
		BrushMedium: NewBrush("medium", 'm', 4),
		BrushLarge:  NewBrush("large", 'l', 6),
	}}
}

// Len returns the number of brushes.
func (s *BrushSet) Len() int { return len(s.brushes) }

// Get returns the brush for id.
func (s *BrushSet) Get(id BrushID) (Brush, error) {
	if int(id) >= len(s.brushes) {
		return Brush{}, fmt.Errorf("%w: %d", ErrUnknownBrush, id)
	}
	return s.brushes[id], nil
}

// ByKey finds the brush bound to a keyboard rune.
func (s *BrushSet) ByKey(key rune) (BrushID, bool) {
	for i, b := range s.brushes {
		if b.Key == key {
			return BrushID(i), true
		}
	}
	return 0, false
}
