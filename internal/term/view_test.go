package term

import (
	"context"
	"testing"
	"time"

	"sand-ca/internal/app"
	"sand-ca/internal/render"
	"sand-ca/internal/sand"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)

	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.BrushSkipChance = 0
	sim := sand.NewWithConfig(cfg)
	sim.SelectBrush(sand.BrushPoint)
	return NewView(screen, app.NewSession(sim, 1, nil)), screen
}

func TestViewDrawsHalfBlocks(t *testing.T) {
	v, screen := newView(t)
	sim := v.session.Sim()
	require.NoError(t, sim.Place(3, 4, sand.Stone, sand.BrushPoint))
	sim.Step()
	v.Draw()

	r, _, style, _ := screen.GetContent(3, 2)
	assert.Equal(t, upperHalf, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, toColor(sim.ColorAt(3, 4)), fg)
	assert.Equal(t, toColor(render.Background), bg)

	r, _, _, _ = screen.GetContent(0, v.Rows())
	assert.Equal(t, ' ', r)
	r, _, _, _ = screen.GetContent(1, v.Rows())
	assert.Equal(t, 's', r)
}

func TestViewMousePaintsAndErases(t *testing.T) {
	v, _ := newView(t)
	sim := v.session.Sim()

	assert.True(t, v.Handle(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone)))
	sim.Step()
	assert.Equal(t, sand.Sand, sim.MaterialAt(5, 6))

	v.Handle(tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))
	v.Handle(tcell.NewEventMouse(5, 3, tcell.Button2, tcell.ModNone))
	sim.Step()
	assert.Equal(t, sand.Void, sim.MaterialAt(5, 6))
}

func TestViewKeys(t *testing.T) {
	v, _ := newView(t)
	sim := v.session.Sim()

	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone)))
	assert.Equal(t, sand.Water, sim.SelectedMaterial())

	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, sim.Paused())

	require.NoError(t, sim.Place(1, 1, sand.Stone, sand.BrushPoint))
	sim.Step()
	require.Equal(t, 1, sim.CountOccupied())
	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)))
	assert.Zero(t, sim.CountOccupied())

	assert.False(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunStopsOnCancel(t *testing.T) {
	v, _ := newView(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := Run(ctx, v, 200)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, v.session.Sim().Frame())
}
