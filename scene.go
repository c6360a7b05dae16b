package pinboard

import (
	"context"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultAspectRatio is the width/height ratio the surface keeps unless
// WithAspectRatio says otherwise.
const DefaultAspectRatio = 16.0 / 9.0

// EventSink receives interaction events derived from image state changes.
// Sinks run synchronously on the event loop.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent describes one drag transition of one image. Every
// EventArmed is closed by exactly one EventDragEnd or EventDisarm.
type InteractionEvent struct {
	Type  EventType
	Name  string // image name
	Index int    // image index in declaration order
	// Pointer position that caused the event.
	X, Y float64
	// Image position after the event.
	PosX, PosY float64
	// Movement applied by this event (EventDrag and EventDragStart).
	DeltaX, DeltaY float64
}

// Option configures a Scene at construction.
type Option func(*sceneOptions)

type sceneOptions struct {
	ctx        context.Context
	ratio      float64
	background Color
	border     Color
	exclusive  bool
	viewport   *Size
}

// WithAspectRatio sets the width/height ratio the surface is letterboxed to.
// Non-positive ratios are ignored.
func WithAspectRatio(ratio float64) Option {
	return func(o *sceneOptions) {
		if ratio > 0 {
			o.ratio = ratio
		}
	}
}

// WithBackground sets the fill painted behind all images.
func WithBackground(c Color) Option {
	return func(o *sceneOptions) { o.background = c }
}

// WithBorderColor sets the highlight color of images being dragged.
func WithBorderColor(c Color) Option {
	return func(o *sceneOptions) { o.border = c }
}

// WithExclusiveDrag makes at most one image arm per press: the top-most image
// under the pointer. Without it every image under the pointer arms and they
// drag together.
func WithExclusiveDrag(exclusive bool) Option {
	return func(o *sceneOptions) { o.exclusive = exclusive }
}

// WithContext sets the context texture loads run under.
func WithContext(ctx context.Context) Option {
	return func(o *sceneOptions) { o.ctx = ctx }
}

// WithViewport resizes the scene to the given viewport during construction.
func WithViewport(viewport Size) Option {
	return func(o *sceneOptions) { o.viewport = &viewport }
}

// Scene is the top-level object that owns the surface, the images in paint
// order, and input state. It is not safe for concurrent use: the host calls
// it from a single event loop.
type Scene struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	surface    Surface
	images     []*DraggableImage
	ratio      float64
	background Color
	exclusive  bool
	sinks      []EventSink
	debug      bool

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent

	// Tooling
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates a scene painting onto surface, with one DraggableImage per
// placement in the given order. Texture loads start immediately.
//
// The surface is sized only when WithViewport is given. Otherwise the host
// must call Resize before delivering the first pointer event; Run does so
// from Layout and term.Run does so on start.
func NewScene(surface Surface, placements []ImagePlacement, opts ...Option) *Scene {
	o := sceneOptions{
		ctx:        context.Background(),
		ratio:      DefaultAspectRatio,
		background: ColorBackground,
		border:     ColorDragBorder,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		ScreenshotDir: "screenshots",
		surface:       surface,
		images:        make([]*DraggableImage, 0, len(placements)),
		ratio:         o.ratio,
		background:    o.background,
		exclusive:     o.exclusive,
	}
	for _, p := range placements {
		src := p.Source
		if src == nil {
			name := p.Name
			src = SourceFunc(func(context.Context) (image.Image, error) {
				return nil, fmt.Errorf("load %q: no source", name)
			})
		}
		img := NewDraggableImage(p, LoadTexture(o.ctx, src), surface, s)
		img.BorderColor = o.border
		s.images = append(s.images, img)
	}
	if o.viewport != nil {
		s.Resize(*o.viewport)
	}
	return s
}

// Images returns the images in paint order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Images() []*DraggableImage {
	return s.images
}

// Image returns the first image with the given name, or nil.
func (s *Scene) Image(name string) *DraggableImage {
	for _, img := range s.images {
		if img.name == name {
			return img
		}
	}
	return nil
}

// SurfaceSize returns the current surface dimensions.
func (s *Scene) SurfaceSize() Size {
	if s.surface == nil {
		return Size{}
	}
	return s.surface.Size()
}

// AspectRatio returns the width/height ratio the surface is kept at.
func (s *Scene) AspectRatio() float64 {
	return s.ratio
}

// AddEventSink registers a sink for interaction events.
func (s *Scene) AddEventSink(sink EventSink) {
	if sink != nil {
		s.sinks = append(s.sinks, sink)
	}
}

// SetDebugMode enables or disables debug logging to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Resize letterboxes the surface into viewport at the scene's aspect ratio
// and repaints. Hosts call it once at startup and again whenever the
// viewport changes.
func (s *Scene) Resize(viewport Size) {
	size := fitAspect(viewport, s.ratio)
	if s.surface != nil {
		s.surface.Resize(size)
	}
	s.debugf("resize: viewport %gx%g -> surface %gx%g",
		viewport.Width, viewport.Height, size.Width, size.Height)
	s.Redraw()
}

// Redraw clears the surface, fills the background, and paints every image in
// declaration order. Later images cover earlier ones.
func (s *Scene) Redraw() {
	if s.surface == nil {
		return
	}
	size := s.surface.Size()
	full := Rect{Width: size.Width, Height: size.Height}
	s.surface.ClearRect(full)
	s.surface.FillRect(full, s.background)
	for _, img := range s.images {
		img.Draw()
	}
}

// PointerDown forwards a press to the images. By default every image decides
// for itself; in exclusive mode only the top-most hit arms.
func (s *Scene) PointerDown(p Point) {
	if s.exclusive {
		for i := len(s.images) - 1; i >= 0; i-- {
			if s.images[i].PointerDown(p) {
				s.emit(EventArmed, i, p, Point{})
				return
			}
		}
		return
	}
	for i, img := range s.images {
		if img.PointerDown(p) {
			s.emit(EventArmed, i, p, Point{})
		}
	}
}

// PointerMove forwards a pointer move to every image.
func (s *Scene) PointerMove(p Point) {
	for i, img := range s.images {
		before, from := img.state, img.pos
		img.PointerMove(p)
		switch {
		case before == DragArmed && img.state == DragDragging:
			s.emit(EventDragStart, i, p, img.pos.Sub(from))
		case before == DragDragging && img.state == DragDragging:
			s.emit(EventDrag, i, p, img.pos.Sub(from))
		case before == DragDragging && img.state == DragIdle:
			s.emit(EventDragEnd, i, p, Point{})
		case before == DragArmed && img.state == DragIdle:
			s.emit(EventDisarm, i, p, Point{})
		}
	}
}

// PointerUp forwards a release to every image.
func (s *Scene) PointerUp(p Point) {
	for i, img := range s.images {
		before := img.state
		img.PointerUp()
		switch before {
		case DragDragging:
			s.emit(EventDragEnd, i, p, Point{})
		case DragArmed:
			s.emit(EventDisarm, i, p, Point{})
		}
	}
}

// Update polls texture loads, steps an attached TestRunner, and processes
// one frame of pointer input. Call it once per tick from the host loop.
func (s *Scene) Update() {
	s.PollTextures()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
}

// PollTextures gives every image the chance to react to a finished load.
func (s *Scene) PollTextures() {
	for _, img := range s.images {
		loaded, err := img.Poll()
		if !loaded {
			continue
		}
		if err != nil {
			s.debugf("texture %q: %v", img.name, err)
			continue
		}
		s.debugf("texture %q ready", img.name)
	}
}

// Draw copies the surface onto screen at the origin and captures any queued
// screenshots. Only surfaces backed by an ebiten.Image are drawn.
func (s *Scene) Draw(screen *ebiten.Image) {
	src, ok := s.surface.(interface{ Image() *ebiten.Image })
	if !ok {
		return
	}
	img := src.Image()
	if img == nil {
		return
	}
	screen.DrawImage(img, nil)
	s.flushScreenshots(img)
}

func (s *Scene) emit(t EventType, index int, p, delta Point) {
	img := s.images[index]
	if s.debug {
		s.debugf("%s %q at (%g,%g)", t, img.name, img.pos.X, img.pos.Y)
	}
	if len(s.sinks) == 0 {
		return
	}
	ev := InteractionEvent{
		Type:   t,
		Name:   img.name,
		Index:  index,
		X:      p.X,
		Y:      p.Y,
		PosX:   img.pos.X,
		PosY:   img.pos.Y,
		DeltaX: delta.X,
		DeltaY: delta.Y,
	}
	for _, sink := range s.sinks {
		sink.EmitEvent(ev)
	}
}
