//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"sand-ca/internal/core"
	"sand-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type activeChunkProvider interface {
	ChunkSize() int
	ActiveChunks(fn func(cx, cy int))
}

type activeCellProvider interface {
	IsActive(x, y int) bool
}

type statsProvider interface {
	Frame() uint64
	CountOccupied() int
	CountActive() int
	CountActiveChunks() int
	Paused() bool
}

// Overlay draws optional debugging visuals on top of the base simulation:
// outlines of the chunks and cells evaluated next frame and a line of
// counters.
type Overlay struct {
	sim     core.Sim
	scale   int
	visible bool
	pixel   *ebiten.Image
	rects   []image.Rectangle
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Update toggles the overlay with D.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if provider, ok := o.sim.(activeChunkProvider); ok && provider.ChunkSize() > 0 {
		chunk := provider.ChunkSize()
		o.rects = o.rects[:0]
		provider.ActiveChunks(func(cx, cy int) {
			r := render.ChunkRect(cx, cy, chunk, size.W, size.H)
			o.rects = append(o.rects, image.Rect(r.Min.X*scale, r.Min.Y*scale, r.Max.X*scale, r.Max.Y*scale))
		})
		for _, r := range o.rects {
			o.drawOutline(screen, r, color.RGBA{R: 255, G: 80, B: 80, A: 200})
		}
	}

	if provider, ok := o.sim.(activeCellProvider); ok {
		col := color.RGBA{R: 80, G: 200, B: 255, A: 160}
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				if provider.IsActive(x, y) {
					o.drawOutline(screen, image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale), col)
				}
			}
		}
	}

	if stats, ok := o.sim.(statsProvider); ok {
		state := "running"
		if stats.Paused() {
			state = "paused"
		}
		msg := fmt.Sprintf("frame %d  %s  tps %.0f\noccupied %d  AB %d  AC %d",
			stats.Frame(), state, ebiten.ActualTPS(), stats.CountOccupied(), stats.CountActive(), stats.CountActiveChunks())
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
}

func (o *Overlay) drawOutline(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	w, h := float64(r.Dx()), float64(r.Dy())
	x, y := float64(r.Min.X), float64(r.Min.Y)
	o.drawRect(screen, x, y, w, 1, col)
	o.drawRect(screen, x, y+h-1, w, 1, col)
	o.drawRect(screen, x, y, 1, h, col)
	o.drawRect(screen, x+w-1, y, 1, h, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
