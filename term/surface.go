// Package term hosts a pinboard scene in a terminal using tcell.
//
// Each terminal cell shows two vertically stacked surface pixels using the
// upper half block character, so a terminal of W columns and H rows is a
// viewport of W×2H pixels.
package term

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/phanxgames/pinboard"
)

const halfBlock = '▀'

// Surface is a pinboard.Surface backed by an RGBA pixel buffer that is
// flushed to a tcell.Screen with Show.
type Surface struct {
	size  pinboard.Size
	buf   *image.RGBA
	dirty bool
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Size implements pinboard.Surface.
func (s *Surface) Size() pinboard.Size {
	return s.size
}

// Resize implements pinboard.Surface.
func (s *Surface) Resize(size pinboard.Size) {
	s.size = size
	s.dirty = true
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		s.buf = nil
		return
	}
	s.buf = image.NewRGBA(image.Rect(0, 0, w, h))
}

// ClearRect implements pinboard.Surface.
func (s *Surface) ClearRect(r pinboard.Rect) {
	if s.buf == nil {
		return
	}
	draw.Draw(s.buf, pixelRect(r), image.Transparent, image.Point{}, draw.Src)
	s.dirty = true
}

// FillRect implements pinboard.Surface.
func (s *Surface) FillRect(r pinboard.Rect, c pinboard.Color) {
	if s.buf == nil {
		return
	}
	draw.Draw(s.buf, pixelRect(r), image.NewUniform(c.RGBA()), image.Point{}, draw.Over)
	s.dirty = true
}

// DrawImage implements pinboard.Surface.
func (s *Surface) DrawImage(tex *pinboard.Texture, dst pinboard.Rect) {
	if s.buf == nil || tex == nil {
		return
	}
	src := tex.Image()
	if src == nil {
		return
	}
	draw.ApproxBiLinear.Scale(s.buf, pixelRect(dst), src, src.Bounds(), draw.Over, nil)
	s.dirty = true
}

// StrokeRect implements pinboard.Surface.
func (s *Surface) StrokeRect(r pinboard.Rect, width float64, c pinboard.Color) {
	if s.buf == nil {
		return
	}
	half := width / 2
	outer := pinboard.Rect{X: r.X - half, Y: r.Y - half, Width: r.Width + width, Height: r.Height + width}
	s.FillRect(pinboard.Rect{X: outer.X, Y: outer.Y, Width: outer.Width, Height: width}, c)
	s.FillRect(pinboard.Rect{X: outer.X, Y: r.Y + r.Height - half, Width: outer.Width, Height: width}, c)
	s.FillRect(pinboard.Rect{X: outer.X, Y: outer.Y, Width: width, Height: outer.Height}, c)
	s.FillRect(pinboard.Rect{X: r.X + r.Width - half, Y: outer.Y, Width: width, Height: outer.Height}, c)
}

// At returns the pixel at (x, y), or transparent outside the surface.
func (s *Surface) At(x, y int) color.RGBA {
	if s.buf == nil {
		return color.RGBA{}
	}
	return s.buf.RGBAAt(x, y)
}

// Dirty reports whether the buffer changed since the last Show.
func (s *Surface) Dirty() bool {
	return s.dirty
}

// Show copies the buffer to screen. Cells outside the surface are blanked.
// It does not call screen.Show.
func (s *Surface) Show(screen tcell.Screen) {
	cols, rows := screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := s.At(col, row*2), s.At(col, row*2+1)
			if top.A == 0 && bottom.A == 0 {
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	s.dirty = false
}

// cellColor converts a premultiplied pixel to a terminal color.
func cellColor(c color.RGBA) tcell.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorReset
	}
	r, g, b := cf.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func pixelRect(r pinboard.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}
