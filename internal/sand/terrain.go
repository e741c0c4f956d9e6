package sand

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// terrainOctaves are summed into a single height profile. Each octave has
// its own noise seed offset, a frequency multiplier on the base scale and an
// amplitude weight.
var terrainOctaves = []struct {
	seed      int64
	frequency float64
	amplitude float64
}{
	{1, 1, 1},
	{2, 2, 0.5},
	{3, 4, 0.25},
	{4, 8, 0.125},
}

// TerrainHeights returns, for each column, how many cells of stone the hill
// profile covers, counted from the bottom row. maxHeight bounds the profile;
// scale is the horizontal wavelength of the lowest octave in cells.
func TerrainHeights(seed int64, width, maxHeight int, scale float64) []int {
	heights := make([]int, width)
	if width <= 0 || maxHeight <= 0 {
		return heights
	}
	if scale <= 0 {
		scale = 1
	}
	noises := make([]opensimplex.Noise, len(terrainOctaves))
	weight := 0.0
	for i, o := range terrainOctaves {
		noises[i] = opensimplex.New(seed + o.seed)
		weight += o.amplitude
	}
	for x := range heights {
		sum := 0.0
		for i, o := range terrainOctaves {
			sum += noises[i].Eval2(float64(x)*o.frequency/scale, float64(o.seed)) * o.amplitude
		}
		// Eval2 is roughly in [-1, 1]; map the weighted sum to [0, 1].
		v := (sum/weight + 1) / 2
		v = math.Max(0, math.Min(1, v))
		heights[x] = int(math.Round(v * float64(maxHeight)))
	}
	return heights
}

// seedTerrain lays stone hills along the bottom of the grid.
func (s *Simulation) seedTerrain(seed int64) {
	stone, ok := s.table.ByName("stone")
	if !ok {
		return
	}
	maxHeight := int(math.Round(s.cfg.Terrain * float64(s.grid.H)))
	heights := TerrainHeights(seed, s.grid.W, maxHeight, s.cfg.TerrainScale)
	for x, hgt := range heights {
		for dy := 0; dy < hgt; dy++ {
			y := s.grid.H - 1 - dy
			i := s.grid.Index(x, y)
			s.grid.set(i, stone.ID, s.palette.Pick(stone.ID, s.rng))
			s.activity.MarkCell(x, y)
			s.markDirty(x, y)
		}
	}
}
