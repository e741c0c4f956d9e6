package audio

import (
	"math"
	"math/rand"
	"sync/atomic"
)

// Hiss is an endless noise streamer whose loudness follows the amount of
// movement in the simulation. The level is set from the simulation goroutine
// and read from the speaker goroutine.
type Hiss struct {
	target  atomic.Uint64
	level   float64
	smooth  float64
	lowpass [2]float64
	rng     *rand.Rand
}

// NewHiss returns a silent hiss. smoothing is the per-sample weight given to
// the target level, in (0, 1].
func NewHiss(seed int64, smoothing float64) *Hiss {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 0.001
	}
	return &Hiss{smooth: smoothing, rng: rand.New(rand.NewSource(seed))}
}

// SetLevel sets the target loudness, clamped to [0, 1].
func (h *Hiss) SetLevel(level float64) {
	level = math.Max(0, math.Min(1, level))
	h.target.Store(math.Float64bits(level))
}

// Level returns the target loudness.
func (h *Hiss) Level() float64 {
	return math.Float64frombits(h.target.Load())
}

// SetActivity derives the level from the number of moves in the last frame
// relative to the grid size. A tenth of the grid moving is full volume.
func (h *Hiss) SetActivity(moves, cells int) {
	if cells <= 0 {
		h.SetLevel(0)
		return
	}
	h.SetLevel(float64(moves) * 10 / float64(cells))
}

func (h *Hiss) Stream(samples [][2]float64) (n int, ok bool) {
	target := h.Level()
	for i := range samples {
		h.level += (target - h.level) * h.smooth
		for ch := 0; ch < 2; ch++ {
			raw := h.rng.Float64()*2 - 1
			// One-pole lowpass takes the edge off white noise.
			h.lowpass[ch] += (raw - h.lowpass[ch]) * 0.35
			samples[i][ch] = h.lowpass[ch] * h.level
		}
	}
	return len(samples), true
}

func (h *Hiss) Err() error { return nil }
