//go:build ebiten

package app

import (
	"sand-ca/internal/render"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a sand session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
	runes []rune
}

// New constructs a Game for the provided session.
func New(session *Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	sim := session.Sim()
	size := sim.Size()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(sim, scale),
		scale:   scale,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.session.Reset(seed)
	g.painter.Invalidate()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset(0)
	}

	g.overlay.Update()
	size := g.session.Sim().Size()
	consumed := g.hud.Update(size.W * g.scale)

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		if r == 'q' || r == 'Q' {
			return ebiten.Termination
		}
		g.session.Key(r)
	}

	if !consumed {
		g.pointer(size.W, size.H)
	}

	g.session.Step(1)
	return nil
}

func (g *Game) pointer(w, h int) {
	cx, cy := ebiten.CursorPosition()
	x, y := cx/g.scale, cy/g.scale
	button := ButtonNone
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		button = ButtonPaint
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		button = ButtonErase
	}
	if button != ButtonNone && (cx < 0 || cy < 0 || x >= w || y >= h) {
		return
	}
	g.session.Pointer(x, y, button)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim(), g.scale)
	g.hud.Draw(screen, g.session.Sim().Size().W*g.scale, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
