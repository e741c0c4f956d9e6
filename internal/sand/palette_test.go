package sand

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sand-ca/internal/core"
)

func TestPalette(t *testing.T) {
	table := DefaultTable()
	p := NewPalette(table, 8, 4, core.NewRNG(1))

	assert.Equal(t, []color.RGBA{{}}, p.Shades(Void))
	assert.Nil(t, p.Shades(MaterialID(99)))

	for _, m := range table.All()[1:] {
		shades := p.Shades(m.ID)
		require.Len(t, shades, 8, m.Name)
		for _, c := range shades {
			assert.Equal(t, uint8(255), c.A, m.Name)
		}
	}

	water := p.Shades(Water)
	base := BaseColor(table.All()[Water])
	assert.Greater(t, int(base.B), int(base.R), "water is blue")
	assert.Greater(t, int(water[0].B), int(water[0].R), "shades stay close to the base")

	rng := core.NewRNG(5)
	for i := 0; i < 20; i++ {
		assert.Contains(t, water, p.Pick(Water, rng))
	}
	assert.Zero(t, p.Pick(Void, rng))
}

func TestPaletteWithoutJitter(t *testing.T) {
	table := DefaultTable()
	p := NewPalette(table, 3, 0, core.NewRNG(1))
	sand, _ := table.Lookup(Sand)
	for _, c := range p.Shades(Sand) {
		assert.Equal(t, BaseColor(sand), c)
	}
}
