package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryMove(t *testing.T) {
	tests := []struct {
		name      string
		src, dst  MaterialID
		mode      DestroyMode
		wantMoved bool
		wantSrc   MaterialID
		wantDst   MaterialID
	}{
		{"into void", Sand, Void, DestroyRelocate, true, Void, Sand},
		{"denser swaps", Sand, Water, DestroyRelocate, true, Water, Sand},
		{"lighter blocked", Water, Sand, DestroyRelocate, false, Water, Sand},
		{"equal blocked", Sand, Sand, DestroyRelocate, false, Sand, Sand},
		{"solid blocks grain", Sand, Stone, DestroyRelocate, false, Sand, Stone},
		{"destroy relocates", Acid, Stone, DestroyRelocate, true, Void, Acid},
		{"destroy annihilates", Acid, Sand, DestroyAnnihilate, true, Void, Void},
		{"destroyer into void swaps", Acid, Void, DestroyAnnihilate, true, Void, Acid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, 3, 3, func(c *Config) { c.DestroyMode = tt.mode })
			put(s, 1, 1, tt.src)
			if tt.dst != Void {
				put(s, 1, 2, tt.dst)
			}
			moved := s.TryMove(1, 1, 0, 1)
			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantSrc, s.MaterialAt(1, 1), "unexpected source")
			assert.Equal(t, tt.wantDst, s.MaterialAt(1, 2), "unexpected target")
		})
	}
}

func TestTryMoveCarriesColour(t *testing.T) {
	s := newTestSim(t, 3, 3)
	put(s, 1, 0, Sand)
	before := s.ColorAt(1, 0)

	assert.True(t, s.TryMove(1, 0, 0, 1))
	assert.Equal(t, before, s.ColorAt(1, 1))
	assert.Equal(t, Void, s.MaterialAt(1, 0))
	assert.Zero(t, s.ColorAt(1, 0))
}

func TestTryMoveBounds(t *testing.T) {
	s := newTestSim(t, 10, 10)
	put(s, 0, 0, Sand)
	put(s, 9, 9, Sand)
	snapshot := append([]uint8(nil), s.Cells()...)

	for _, d := range [][2]int{{-1, 0}, {0, -1}, {-1, -1}, {-1, 1}, {1, -1}} {
		assert.False(t, s.TryMove(0, 0, d[0], d[1]), "move %v from top-left", d)
	}
	for _, d := range [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}, {1, -1}} {
		assert.False(t, s.TryMove(9, 9, d[0], d[1]), "move %v from bottom-right", d)
	}
	assert.False(t, s.TryMove(-1, 0, 1, 0))
	assert.False(t, s.TryMove(10, 10, -1, -1))
	assert.Equal(t, snapshot, s.Cells())
}

func TestTryMoveRejectsInvalidOffsets(t *testing.T) {
	s := newTestSim(t, 5, 5)
	put(s, 2, 2, Sand)

	assert.False(t, s.TryMove(2, 2, 0, 0))
	assert.False(t, s.TryMove(2, 2, 0, 2))
	assert.False(t, s.TryMove(2, 2, -2, 1))
	assert.False(t, s.TryMove(0, 0, 0, 1), "void source")
	assert.Equal(t, Sand, s.MaterialAt(2, 2))
}

func TestTryMoveCountsStats(t *testing.T) {
	s := newTestSim(t, 3, 3)
	put(s, 1, 0, Acid)
	put(s, 1, 1, Sand)
	put(s, 0, 0, Sand)

	assert.True(t, s.TryMove(1, 0, 0, 1))
	assert.True(t, s.TryMove(0, 0, 0, 1))
	stats := s.LastFrame()
	assert.Equal(t, 2, stats.Moves)
	assert.Equal(t, 1, stats.Destroys)
	assert.Equal(t, 1, stats.Swaps)
}
