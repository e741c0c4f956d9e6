package app

import (
	"flag"
	"testing"

	"sand-ca/internal/config"
	"sand-ca/internal/sand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSound struct {
	clicks []int
	moves  int
	cells  int
}

func (r *recordingSound) Click(density int) { r.clicks = append(r.clicks, density) }

func (r *recordingSound) SetActivity(moves, cells int) {
	r.moves = moves
	r.cells = cells
}

func newSession(t *testing.T) (*Session, *recordingSound) {
	t.Helper()
	sim, err := Build("sand", map[string]string{"w": "20", "h": "20", "brush_skip": "0"})
	require.NoError(t, err)
	sound := &recordingSound{}
	return NewSession(sim, 7, sound), sound
}

func TestBuildUnknownSim(t *testing.T) {
	_, err := Build("nope", nil)
	assert.Error(t, err)
}

func TestSessionKeys(t *testing.T) {
	s, _ := newSession(t)
	sim := s.Sim()

	water, ok := sim.Table().ByName("water")
	require.True(t, ok)
	assert.True(t, s.Key(water.Key))
	assert.Equal(t, water.ID, sim.SelectedMaterial())

	assert.True(t, s.Key(' '))
	assert.True(t, sim.Paused())
	assert.False(t, s.Key('~'))
}

func TestSessionPointerClicksOncePerPress(t *testing.T) {
	s, sound := newSession(t)
	sim := s.Sim()
	sim.SelectBrush(sand.BrushPoint)

	s.Pointer(5, 5, ButtonPaint)
	s.Pointer(6, 5, ButtonPaint)
	s.Pointer(-1, 5, ButtonPaint)
	assert.Equal(t, 2, sim.PendingPlacements())
	require.Len(t, sound.clicks, 1)
	selected, _ := sim.Table().Lookup(sim.SelectedMaterial())
	assert.Equal(t, selected.Density, sound.clicks[0])

	s.Pointer(0, 0, ButtonNone)
	s.Pointer(5, 5, ButtonErase)
	require.Len(t, sound.clicks, 2)
	assert.Equal(t, 0, sound.clicks[1])
}

func TestSessionStepReportsActivity(t *testing.T) {
	s, sound := newSession(t)
	sim := s.Sim()
	sim.SelectBrush(sand.BrushPoint)

	s.Pointer(10, 2, ButtonPaint)
	s.Step(2)
	assert.Equal(t, uint64(2), sim.Frame())
	assert.Equal(t, 1, sound.moves)
	assert.Equal(t, 400, sound.cells)
}

func TestSessionReset(t *testing.T) {
	s, _ := newSession(t)
	sim := s.Sim()
	sim.SelectBrush(sand.BrushPoint)
	s.Pointer(3, 3, ButtonPaint)
	s.Step(1)
	require.Equal(t, 1, sim.CountOccupied())

	s.Reset(0)
	assert.Equal(t, int64(7), s.Seed())
	assert.Zero(t, sim.CountOccupied())

	s.Reset(11)
	assert.Equal(t, int64(11), s.Seed())
}

func TestConfigResolve(t *testing.T) {
	c := NewConfig()
	c.EnvFile = ""
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "2", "-seed", "5", "-set", "chunk=4", "-sim", "sand-terrain"}))

	got, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "sand-terrain", got.Sim)
	assert.Equal(t, 2, got.Scale)
	assert.Equal(t, config.Defaults().TPS, got.TPS)
	assert.Equal(t, int64(5), got.Seed())
	assert.Equal(t, 4, got.SimConfig().ChunkSize)

	c.Set = append(c.Set, "broken")
	_, err = c.Resolve()
	assert.Error(t, err)
}
