package sand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSim(t *testing.T, w, h int, opts ...func(*Config)) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.BrushSkipChance = 0
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// place queues a single-cell placement.
func place(t *testing.T, s *Simulation, x, y int, id MaterialID) {
	t.Helper()
	require.NoError(t, s.Place(x, y, id, BrushPoint))
}

// put writes a cell immediately, bypassing the placement queue.
func put(s *Simulation, x, y int, id MaterialID) {
	s.write(x, y, id)
}

func steps(s *Simulation, n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func find(s *Simulation, id MaterialID) (int, int, bool) {
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			if s.MaterialAt(x, y) == id {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
