package sand

import (
	"sync"
)

// Stroke is a scripted placement applied before a given frame.
type Stroke struct {
	Frame    int
	X, Y     int
	Material MaterialID
	Brush    BrushID
}

// RunResult captures telemetry from a deterministic scripted run.
type RunResult struct {
	Seed int64
	// Frames is the number of frames stepped, which may be fewer than
	// requested when the world settled early.
	Frames int
	// SettledAt is the first frame after which no cell was active, or -1.
	SettledAt      int
	PeakActive     int
	FinalOccupied  int
	InitialVisited int
	Totals         FrameStats
	Rejected       int
}

// RunScenario builds a fresh simulation, replays the strokes in frame order
// and steps until frames have elapsed or the world stays settled for
// settleFrames consecutive frames after the last stroke. settleFrames <= 0
// disables the early stop.
func RunScenario(cfg Config, strokes []Stroke, frames, settleFrames int) RunResult {
	result := RunResult{Seed: cfg.Seed, SettledAt: -1}
	if frames <= 0 {
		return result
	}

	sim := NewWithConfig(cfg)
	sim.Reset(cfg.Seed)

	lastStroke := 0
	for _, st := range strokes {
		if st.Frame > lastStroke {
			lastStroke = st.Frame
		}
	}

	quiet := 0
	for frame := 1; frame <= frames; frame++ {
		for _, st := range strokes {
			if st.Frame != frame {
				continue
			}
			if err := sim.Place(st.X, st.Y, st.Material, st.Brush); err != nil {
				result.Rejected++
			}
		}
		sim.Step()
		result.Frames = frame
		if frame == 1 {
			result.InitialVisited = sim.LastFrame().Visited
		}

		active := sim.CountActive()
		if active > result.PeakActive {
			result.PeakActive = active
		}
		if active == 0 && frame >= lastStroke {
			if result.SettledAt < 0 {
				result.SettledAt = frame
			}
			quiet++
			if settleFrames > 0 && quiet >= settleFrames {
				break
			}
			continue
		}
		quiet = 0
		result.SettledAt = -1
	}

	result.FinalOccupied = sim.CountOccupied()
	result.Totals = sim.Totals()
	return result
}

// RunSeeds runs the same scenario across several seeds using up to workers
// goroutines. Results are returned in seed order.
func RunSeeds(base Config, seeds []int64, strokes []Stroke, frames, settleFrames, workers int) []RunResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]RunResult, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s int64) {
			defer wg.Done()
			cfg := base
			cfg.Seed = s
			results[i] = RunScenario(cfg, strokes, frames, settleFrames)
			<-sem
		}(idx, seed)
	}

	wg.Wait()
	return results
}

// ChunkSweepRecord compares the work done under one chunk size.
type ChunkSweepRecord struct {
	ChunkSize int
	Result    RunResult
}

// ChunkSweep replays a scenario under each chunk size to compare how many
// cells each frame visits.
func ChunkSweep(base Config, sizes []int, strokes []Stroke, frames, workers int) []ChunkSweepRecord {
	if workers <= 0 {
		workers = 1
	}
	records := make([]ChunkSweepRecord, len(sizes))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, size := range sizes {
		wg.Add(1)
		sem <- struct{}{}
		go func(i, sz int) {
			defer wg.Done()
			cfg := base
			cfg.ChunkSize = sz
			records[i] = ChunkSweepRecord{ChunkSize: sz, Result: RunScenario(cfg, strokes, frames, 0)}
			<-sem
		}(idx, size)
	}

	wg.Wait()
	return records
}

// DefaultStrokes returns a small demo script: a stone shelf, a sand pile
// above it, a pool of water to its side and a drop of acid.
func DefaultStrokes(w, h int) []Stroke {
	strokes := make([]Stroke, 0, w)
	shelf := h * 2 / 3
	for x := w / 4; x < w*3/4; x++ {
		strokes = append(strokes, Stroke{Frame: 1, X: x, Y: shelf, Material: Stone, Brush: BrushPoint})
	}
	strokes = append(strokes,
		Stroke{Frame: 1, X: w / 2, Y: h / 6, Material: Sand, Brush: BrushMedium},
		Stroke{Frame: 5, X: w / 5, Y: h / 4, Material: Water, Brush: BrushMedium},
		Stroke{Frame: 10, X: w / 2, Y: h / 10, Material: Acid, Brush: BrushSmall},
	)
	return strokes
}
