package pinboard

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"
)

// recordSurface is a Surface that records every paint call as a string.
type recordSurface struct {
	size Size
	ops  []string
}

func newRecordSurface(w, h float64) *recordSurface {
	return &recordSurface{size: Size{Width: w, Height: h}}
}

func (r *recordSurface) Size() Size { return r.size }

func (r *recordSurface) Resize(s Size) {
	r.size = s
	r.ops = append(r.ops, fmt.Sprintf("resize %gx%g", s.Width, s.Height))
}

func (r *recordSurface) ClearRect(rect Rect) {
	r.ops = append(r.ops, fmt.Sprintf("clear %g,%g %gx%g", rect.X, rect.Y, rect.Width, rect.Height))
}

func (r *recordSurface) FillRect(rect Rect, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("fill %g,%g %gx%g %v", rect.X, rect.Y, rect.Width, rect.Height, c.RGBA()))
}

func (r *recordSurface) DrawImage(tex *Texture, dst Rect) {
	r.ops = append(r.ops, fmt.Sprintf("image %g,%g %gx%g", dst.X, dst.Y, dst.Width, dst.Height))
}

func (r *recordSurface) StrokeRect(rect Rect, width float64, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("stroke %g,%g %gx%g w%g", rect.X, rect.Y, rect.Width, rect.Height, width))
}

func (r *recordSurface) reset() { r.ops = r.ops[:0] }

// countRedraws is a Redrawer that counts calls.
type countRedraws struct{ n int }

func (c *countRedraws) Redraw() { c.n++ }

// solidSource returns a source producing a small opaque image.
func solidSource() Source {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return ImageSource(img)
}

// catPlacement is the first demo image: 200x186 at (100,100).
func catPlacement() ImagePlacement {
	return ImagePlacement{
		Name:     "cat",
		Source:   solidSource(),
		Size:     Size{Width: 200, Height: 186},
		Position: Point{X: 100, Y: 100},
	}
}

// dogPlacement is the second demo image: 200x189 at (400,100).
func dogPlacement() ImagePlacement {
	return ImagePlacement{
		Name:     "dog",
		Source:   solidSource(),
		Size:     Size{Width: 200, Height: 189},
		Position: Point{X: 400, Y: 100},
	}
}

// loadedTexture returns a texture that has finished loading.
func loadedTexture(t *testing.T) *Texture {
	t.Helper()
	tex := LoadTexture(context.Background(), solidSource())
	waitTexture(t, tex)
	return tex
}

func waitTexture(t *testing.T, tex *Texture) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tex.Wait(ctx); err != nil {
		t.Fatalf("texture load: %v", err)
	}
}

// waitScene blocks until every texture in s has loaded and been polled.
func waitScene(t *testing.T, s *Scene) {
	t.Helper()
	for _, img := range s.images {
		waitTexture(t, img.tex)
	}
	s.PollTextures()
}

// frame runs one tick of Scene.Update without reading real mouse state.
func frame(s *Scene) {
	s.PollTextures()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
}

// recordSink collects interaction events.
type recordSink struct{ events []InteractionEvent }

func (r *recordSink) EmitEvent(e InteractionEvent) { r.events = append(r.events, e) }

func (r *recordSink) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
