package render

import (
	"image"
	"image/color"

	"sand-ca/internal/core"
)

// Background is drawn wherever a cell colour is fully transparent.
var Background = color.RGBA{R: 14, G: 14, B: 18, A: 255}

// fillColorsRGBA copies per-cell colours into buf, substituting bg for empty
// cells.
func fillColorsRGBA(buf []byte, colors []color.RGBA, bg color.RGBA) {
	for i, col := range colors {
		if col.A == 0 {
			col = bg
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillRectRGBA refreshes only the cells inside rect.
func fillRectRGBA(buf []byte, colors []color.RGBA, w int, rect image.Rectangle, bg color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := y * w
		for x := rect.Min.X; x < rect.Max.X; x++ {
			i := row + x
			col := colors[i]
			if col.A == 0 {
				col = bg
			}
			base := i * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ChunkRect returns the cell rectangle covered by chunk (cx, cy), clipped to
// a w×h grid.
func ChunkRect(cx, cy, size, w, h int) image.Rectangle {
	return image.Rect(cx*size, cy*size, min((cx+1)*size, w), min((cy+1)*size, h))
}

// Frame is an RGBA pixel buffer mirroring a simulation. Sims that expose
// per-cell colours and dirty chunks are refreshed incrementally; anything
// else is redrawn in full through the fallback palette.
type Frame struct {
	W, H    int
	Pix     []byte
	Palette []color.RGBA
	BG      color.RGBA

	primed bool
	dirty  []image.Rectangle
}

// NewFrame allocates a frame for a w×h grid.
func NewFrame(w, h int) *Frame {
	return &Frame{
		W:       w,
		H:       h,
		Pix:     make([]byte, 4*w*h),
		Palette: []color.RGBA{Background, {R: 230, G: 230, B: 230, A: 255}},
		BG:      Background,
	}
}

// Update pulls the current state of sim into Pix and returns the regions
// that changed. A nil result means nothing changed.
func (f *Frame) Update(sim core.Sim) []image.Rectangle {
	f.dirty = f.dirty[:0]
	full := image.Rect(0, 0, f.W, f.H)
	if size := sim.Size(); size.W != f.W || size.H != f.H {
		return nil
	}

	cp, hasColors := sim.(core.ColorProvider)
	if !hasColors {
		fillPaletteRGBA(f.Pix, sim.Cells(), f.Palette)
		f.primed = true
		return append(f.dirty, full)
	}
	colors := cp.Colors()
	if len(colors) != f.W*f.H {
		return nil
	}

	chunks, hasChunks := sim.(core.ChunkProvider)
	if !hasChunks || chunks.ChunkSize() <= 0 {
		fillColorsRGBA(f.Pix, colors, f.BG)
		f.primed = true
		return append(f.dirty, full)
	}

	size := chunks.ChunkSize()
	chunks.ConsumeDirtyChunks(func(cx, cy int) {
		rect := ChunkRect(cx, cy, size, f.W, f.H)
		if f.primed {
			fillRectRGBA(f.Pix, colors, f.W, rect, f.BG)
		}
		f.dirty = append(f.dirty, rect)
	})
	if !f.primed {
		fillColorsRGBA(f.Pix, colors, f.BG)
		f.primed = true
		return append(f.dirty[:0], full)
	}
	if len(f.dirty) == 0 {
		return nil
	}
	return f.dirty
}

// Invalidate forces the next Update to redraw everything.
func (f *Frame) Invalidate() { f.primed = false }
