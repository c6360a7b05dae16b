package pinboard

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is a Surface backed by an offscreen ebiten.Image. The scene
// paints into it only when something changes; Scene.Draw copies it to the
// screen every frame.
type EbitenSurface struct {
	size  Size
	img   *ebiten.Image
	pages map[*Texture]*ebiten.Image
}

// NewEbitenSurface creates an empty surface. It has no backing image until
// the first Resize with a non-zero size.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{pages: make(map[*Texture]*ebiten.Image)}
}

// Size implements Surface.
func (s *EbitenSurface) Size() Size {
	return s.size
}

// Resize implements Surface.
func (s *EbitenSurface) Resize(size Size) {
	s.size = size
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Deallocate()
		s.img = nil
	}
	if w <= 0 || h <= 0 {
		return
	}
	s.img = ebiten.NewImage(w, h)
}

// Image returns the backing image, or nil when the surface is empty.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.img
}

// ClearRect implements Surface.
func (s *EbitenSurface) ClearRect(r Rect) {
	if s.img == nil {
		return
	}
	sub := s.img.SubImage(pixelRect(r)).(*ebiten.Image)
	sub.Clear()
}

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(r Rect, c Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), c.RGBA(), false)
}

// DrawImage implements Surface.
func (s *EbitenSurface) DrawImage(tex *Texture, dst Rect) {
	if s.img == nil || tex == nil {
		return
	}
	page := s.page(tex)
	if page == nil {
		return
	}
	b := page.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(page, op)
}

// StrokeRect implements Surface.
func (s *EbitenSurface) StrokeRect(r Rect, width float64, c Color) {
	if s.img == nil {
		return
	}
	vector.StrokeRect(s.img, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), float32(width), c.RGBA(), false)
}

// page returns the GPU image for tex, uploading it on first use.
func (s *EbitenSurface) page(tex *Texture) *ebiten.Image {
	if p, ok := s.pages[tex]; ok {
		return p
	}
	src := tex.Image()
	if src == nil {
		return nil
	}
	p := ebiten.NewImageFromImage(src)
	s.pages[tex] = p
	return p
}

func pixelRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}
