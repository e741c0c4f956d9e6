package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		KeyWidth:        "64",
		KeyHeight:       "48",
		KeySeed:         "-7",
		KeyChunk:        "0",
		KeyBrushSkip:    "0.35",
		KeyShades:       "4",
		KeyShadeJitter:  "2.5",
		KeyDestroyMode:  "annihilate",
		KeyLiquidRise:   "false",
		KeyTerrain:      "0.25",
		KeyTerrainScale: "20",
	})

	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.Zero(t, cfg.ChunkSize)
	assert.Equal(t, 0.35, cfg.BrushSkipChance)
	assert.Equal(t, 4, cfg.Shades)
	assert.Equal(t, 2.5, cfg.ShadeJitter)
	assert.Equal(t, DestroyAnnihilate, cfg.DestroyMode)
	assert.False(t, cfg.LiquidRise)
	assert.Equal(t, 0.25, cfg.Terrain)
	assert.Equal(t, 20.0, cfg.TerrainScale)
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		KeyWidth:       "-3",
		KeyHeight:      "tall",
		KeyChunk:       "-1",
		KeyBrushSkip:   "1.5",
		KeyDestroyMode: "explode",
		KeyTerrain:     "2",
	})
	assert.Equal(t, def, cfg)
	assert.Equal(t, def, FromMap(nil))
}

func TestParseDestroyMode(t *testing.T) {
	m, err := ParseDestroyMode("Relocate")
	assert.NoError(t, err)
	assert.Equal(t, DestroyRelocate, m)

	_, err = ParseDestroyMode("")
	assert.Error(t, err)
	assert.Equal(t, "annihilate", DestroyAnnihilate.String())
}
