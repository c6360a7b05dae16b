package term

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pinboard"
)

var (
	red  = pinboard.Color{R: 1, A: 1}
	blue = pinboard.Color{B: 1, A: 1}
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func whiteTexture(t *testing.T) *pinboard.Texture {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	tex := pinboard.LoadTexture(context.Background(), pinboard.ImageSource(img))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tex.Wait(ctx); err != nil {
		t.Fatalf("texture: %v", err)
	}
	return tex
}

func TestSurface_Resize(t *testing.T) {
	s := NewSurface()
	if s.Dirty() {
		t.Error("new surface should be clean")
	}

	s.Resize(pinboard.Size{Width: 7.5, Height: 4})
	if !s.Dirty() {
		t.Error("resize should mark the surface dirty")
	}
	if got := s.Size(); got.Width != 7.5 || got.Height != 4 {
		t.Errorf("size = %v", got)
	}
	if got := s.buf.Bounds(); got != image.Rect(0, 0, 8, 4) {
		t.Errorf("buffer bounds = %v, want 8x4", got)
	}

	s.Resize(pinboard.Size{})
	s.FillRect(pinboard.Rect{Width: 10, Height: 10}, red)
	if got := s.At(0, 0); got != (color.RGBA{}) {
		t.Errorf("empty surface pixel = %v", got)
	}
}

func TestSurface_FillAndClear(t *testing.T) {
	s := NewSurface()
	s.Resize(pinboard.Size{Width: 10, Height: 10})

	s.FillRect(pinboard.Rect{Width: 10, Height: 10}, red)
	if got := s.At(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("filled pixel = %v", got)
	}

	s.ClearRect(pinboard.Rect{X: 2, Y: 2, Width: 3, Height: 3})
	if got := s.At(3, 3); got.A != 0 {
		t.Errorf("cleared pixel = %v", got)
	}
	if got := s.At(6, 6); got.A != 255 {
		t.Errorf("pixel outside clear rect = %v", got)
	}
}

func TestSurface_DrawImage(t *testing.T) {
	s := NewSurface()
	s.Resize(pinboard.Size{Width: 4, Height: 4})

	s.DrawImage(whiteTexture(t), pinboard.Rect{Width: 2, Height: 2})
	if got := s.At(1, 1); got.A != 255 {
		t.Errorf("drawn pixel = %v", got)
	}
	if got := s.At(3, 3); got.A != 0 {
		t.Errorf("pixel outside image = %v", got)
	}

	s.DrawImage(nil, pinboard.Rect{Width: 4, Height: 4})
	if got := s.At(3, 3); got.A != 0 {
		t.Errorf("nil texture drew %v", got)
	}
}

func TestSurface_StrokeRect(t *testing.T) {
	s := NewSurface()
	s.Resize(pinboard.Size{Width: 20, Height: 20})

	s.StrokeRect(pinboard.Rect{X: 5, Y: 5, Width: 10, Height: 10}, 2, blue)

	for _, p := range []image.Point{{10, 4}, {10, 15}, {4, 10}, {15, 10}} {
		if got := s.At(p.X, p.Y); got != (color.RGBA{B: 255, A: 255}) {
			t.Errorf("border pixel %v = %v", p, got)
		}
	}
	if got := s.At(10, 10); got.A != 0 {
		t.Errorf("interior pixel = %v", got)
	}
}

func TestSurface_Show(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	s := NewSurface()
	s.Resize(pinboard.Size{Width: 4, Height: 4})
	s.FillRect(pinboard.Rect{Width: 2, Height: 1}, red)
	s.FillRect(pinboard.Rect{Y: 1, Width: 1, Height: 1}, blue)

	s.Show(screen)
	if s.Dirty() {
		t.Error("Show should clear the dirty flag")
	}

	mainc, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if mainc != halfBlock {
		t.Errorf("cell (0,0) rune = %q", mainc)
	}
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("cell (0,0) colors = %v on %v", fg, bg)
	}

	mainc, _, style, _ = screen.GetContent(1, 0)
	fg, bg, _ = style.Decompose()
	if mainc != halfBlock || fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.ColorReset {
		t.Errorf("cell (1,0) = %q %v on %v", mainc, fg, bg)
	}

	for _, cell := range []image.Point{{2, 0}, {0, 1}, {3, 1}} {
		if mainc, _, _, _ := screen.GetContent(cell.X, cell.Y); mainc != ' ' {
			t.Errorf("cell %v rune = %q, want blank", cell, mainc)
		}
	}
}
