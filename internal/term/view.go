// Package term renders a sand session in a terminal. Two grid rows share one
// text row: the upper cell is the foreground of a '▀' glyph and the lower
// cell its background.
package term

import (
	"fmt"
	"image"
	"image/color"

	"sand-ca/internal/app"
	"sand-ca/internal/render"

	"github.com/gdamore/tcell/v2"
)

const upperHalf = '▀'

// View draws the grid and a status line and translates terminal events into
// session commands.
type View struct {
	screen  tcell.Screen
	session *app.Session
	frame   *render.Frame
	status  tcell.Style
}

// NewView binds a session to an initialised screen.
func NewView(screen tcell.Screen, session *app.Session) *View {
	size := session.Sim().Size()
	return &View{
		screen:  screen,
		session: session,
		frame:   render.NewFrame(size.W, size.H),
		status:  tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	}
}

// Rows returns how many text rows the grid occupies.
func (v *View) Rows() int { return (v.frame.H + 1) / 2 }

// ToGrid converts a screen position to grid coordinates.
func (v *View) ToGrid(sx, sy int) (int, int) { return sx, sy * 2 }

// Draw refreshes changed regions of the grid and the status line.
func (v *View) Draw() {
	for _, rect := range v.frame.Update(v.session.Sim()) {
		v.drawRect(rect)
	}
	v.drawStatus()
	v.screen.Show()
}

// Invalidate forces a full redraw, e.g. after a resize.
func (v *View) Invalidate() {
	v.frame.Invalidate()
	v.screen.Clear()
}

func (v *View) drawRect(rect image.Rectangle) {
	sw, sh := v.screen.Size()
	top := rect.Min.Y / 2
	bottom := (rect.Max.Y + 1) / 2
	for row := top; row < bottom && row < sh; row++ {
		for x := rect.Min.X; x < rect.Max.X && x < sw; x++ {
			upper := v.pixel(x, row*2)
			lower := render.Background
			if row*2+1 < v.frame.H {
				lower = v.pixel(x, row*2+1)
			}
			style := tcell.StyleDefault.Foreground(toColor(upper)).Background(toColor(lower))
			v.screen.SetContent(x, row, upperHalf, nil, style)
		}
	}
}

func (v *View) pixel(x, y int) color.RGBA {
	base := (y*v.frame.W + x) * 4
	p := v.frame.Pix
	return color.RGBA{R: p[base], G: p[base+1], B: p[base+2], A: p[base+3]}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *View) drawStatus() {
	sw, sh := v.screen.Size()
	row := v.Rows()
	if row >= sh {
		return
	}
	sim := v.session.Sim()
	material, _ := sim.Table().Lookup(sim.SelectedMaterial())
	brush, _ := sim.Brushes().Get(sim.SelectedBrush())
	state := "running"
	if sim.Paused() {
		state = "paused"
	}
	line := fmt.Sprintf(" %s  frame %d  %s  %s/%s  occupied %d  active %d",
		sim.Name(), sim.Frame(), state, material.Name, brush.Name, sim.CountOccupied(), sim.CountActive())
	runes := []rune(line)
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, row, r, nil, v.status)
	}
}

// Handle applies one terminal event. It returns false when the user asked to
// quit.
func (v *View) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			v.session.Reset(0)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			v.session.Key(ev.Rune())
		}
	case *tcell.EventMouse:
		sx, sy := ev.Position()
		x, y := v.ToGrid(sx, sy)
		button := app.ButtonNone
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			button = app.ButtonPaint
		case ev.Buttons()&tcell.Button2 != 0:
			button = app.ButtonErase
		}
		v.session.Pointer(x, y, button)
	case *tcell.EventResize:
		v.screen.Sync()
		v.Invalidate()
	}
	return true
}
