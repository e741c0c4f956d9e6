package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return cfg
}

func TestRunScenarioSettles(t *testing.T) {
	cfg := testConfig(20, 20)
	strokes := []Stroke{
		{Frame: 1, X: 5, Y: 2, Material: Sand, Brush: BrushPoint},
		{Frame: 1, X: 12, Y: 4, Material: Sand, Brush: BrushPoint},
		{Frame: 3, X: 8, Y: 0, Material: Stone, Brush: BrushPoint},
		{Frame: 3, X: 99, Y: 0, Material: Stone, Brush: BrushPoint},
	}

	res := RunScenario(cfg, strokes, 200, 5)
	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, 3, res.FinalOccupied)
	assert.Equal(t, 3, res.Totals.Placed)
	assert.Greater(t, res.SettledAt, 0)
	assert.Less(t, res.Frames, 200, "run should stop once settled")
	assert.Greater(t, res.PeakActive, 0)
}

func TestRunScenarioNoFrames(t *testing.T) {
	res := RunScenario(testConfig(10, 10), nil, 0, 0)
	assert.Zero(t, res.Frames)
	assert.Equal(t, -1, res.SettledAt)
}

func TestRunSeedsMatchesSequentialRuns(t *testing.T) {
	cfg := testConfig(40, 30)
	strokes := DefaultStrokes(40, 30)
	seeds := []int64{1, 2, 3, 4}

	results := RunSeeds(cfg, seeds, strokes, 60, 0, 3)
	require.Len(t, results, len(seeds))
	for i, seed := range seeds {
		c := cfg
		c.Seed = seed
		assert.Equal(t, RunScenario(c, strokes, 60, 0), results[i], "seed %d", seed)
		assert.Equal(t, seed, results[i].Seed)
	}
}

func TestChunkSweepVisitsLessWithChunks(t *testing.T) {
	cfg := testConfig(60, 60)
	strokes := []Stroke{{Frame: 1, X: 5, Y: 5, Material: Sand, Brush: BrushSmall}}

	records := ChunkSweep(cfg, []int{0, 10}, strokes, 30, 2)
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].ChunkSize)
	assert.Equal(t, 10, records[1].ChunkSize)
	for _, r := range records {
		assert.Equal(t, r.Result.Totals.Placed, r.Result.FinalOccupied)
	}
}

func TestDefaultStrokesInBounds(t *testing.T) {
	for _, st := range DefaultStrokes(50, 40) {
		assert.True(t, st.X >= 0 && st.X < 50 && st.Y >= 0 && st.Y < 40, "stroke %+v", st)
	}
}
