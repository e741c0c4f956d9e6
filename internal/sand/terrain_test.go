package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerrainHeights(t *testing.T) {
	a := TerrainHeights(7, 64, 20, 32)
	b := TerrainHeights(7, 64, 20, 32)
	assert.Equal(t, a, b, "same seed gives the same profile")
	assert.Len(t, a, 64)
	for _, h := range a {
		assert.GreaterOrEqual(t, h, 0)
		assert.LessOrEqual(t, h, 20)
	}

	assert.Equal(t, []int{0, 0, 0}, TerrainHeights(7, 3, 0, 32))
	assert.Empty(t, TerrainHeights(7, 0, 10, 32))
}

func TestTerrainSeedsStone(t *testing.T) {
	s := newTestSim(t, 48, 32, func(c *Config) {
		c.Terrain = 0.5
		c.TerrainScale = 24
	})
	heights := TerrainHeights(s.Config().Seed, 48, 16, 24)

	want := 0
	for _, h := range heights {
		want += h
	}
	assert.Equal(t, want, s.CountOccupied())
	for x, h := range heights {
		for dy := 0; dy < h; dy++ {
			assert.Equal(t, Stone, s.MaterialAt(x, 31-dy))
		}
		if h < 32 {
			assert.Equal(t, Void, s.MaterialAt(x, 31-h))
		}
	}

	s.Reset(0)
	assert.Equal(t, want, s.CountOccupied(), "reset regrows the same hills")
}
