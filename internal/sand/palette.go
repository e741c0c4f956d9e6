package sand

import (
	"image/color"
	"math"

	"github.com/hsluv/hsluv-go"

	"sand-ca/internal/core"
)

// Palette holds a fixed set of jittered shades per material. Void maps to
// the zero colour.
type Palette struct {
	shades [][]color.RGBA
}

// NewPalette derives count shades for every material in t, jittering the
// HSLuv lightness by up to ±jitter and the hue by a quarter of that.
func NewPalette(t *Table, count int, jitter float64, rng *core.RNG) *Palette {
	if count <= 0 {
		count = 1
	}
	if jitter < 0 {
		jitter = 0
	}
	p := &Palette{shades: make([][]color.RGBA, t.Len())}
	for _, m := range t.All() {
		if m.ID == Void {
			p.shades[m.ID] = []color.RGBA{{}}
			continue
		}
		set := make([]color.RGBA, count)
		for i := range set {
			h := m.Hue + (rng.Float64()*2-1)*jitter/4
			l := m.Lightness + (rng.Float64()*2-1)*jitter
			set[i] = hsluvColor(h, m.Saturation, l)
		}
		p.shades[m.ID] = set
	}
	return p
}

// BaseColor returns the unjittered colour of a material.
func BaseColor(m Material) color.RGBA {
	if m.ID == Void {
		return color.RGBA{}
	}
	return hsluvColor(m.Hue, m.Saturation, m.Lightness)
}

// Shades exposes the shade set of id.
func (p *Palette) Shades(id MaterialID) []color.RGBA {
	if int(id) >= len(p.shades) {
		return nil
	}
	return p.shades[id]
}

// Pick returns a random shade of id.
func (p *Palette) Pick(id MaterialID, rng *core.RNG) color.RGBA {
	set := p.Shades(id)
	if len(set) == 0 {
		return color.RGBA{}
	}
	return set[rng.IntN(len(set))]
}

func hsluvColor(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := hsluv.HsluvToRGB(h, clampFloat(s, 0, 100), clampFloat(l, 0, 100))
	return color.RGBA{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: 255}
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(clampFloat(v, 0, 1) * 255))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
