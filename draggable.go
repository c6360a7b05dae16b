package pinboard

// dragBorderWidth is the stroke width of the highlight drawn around an image
// while it is being dragged.
const dragBorderWidth = 2

// Redrawer requests a full repaint of the scene. Every DraggableImage holds
// the same Redrawer, the scene itself.
type Redrawer interface {
	Redraw()
}

// RedrawFunc adapts an ordinary function to the Redrawer interface.
type RedrawFunc func()

// Redraw calls f().
func (f RedrawFunc) Redraw() {
	f()
}

// ImagePlacement is the seed data for one image: where it starts and how
// large it is drawn. It is never modified.
type ImagePlacement struct {
	Name     string
	Source   Source
	Size     Size
	Position Point
}

// DraggableImage is one image on the surface. It owns its position and drag
// state and decides on its own whether a pointer event applies to it.
//
// The bounding box used for hit testing is recomputed only when a drag ends,
// so a press during another image's drag tests against where this image last
// came to rest.
type DraggableImage struct {
	// BorderColor is the color of the highlight drawn while dragging.
	BorderColor Color

	name    string
	tex     *Texture
	size    Size
	pos     Point
	box     BoundingBox
	state   DragState
	anchor  Point
	surface Surface
	redraw  Redrawer
	polled  bool
}

// NewDraggableImage creates an idle image from its placement. tex may still be
// loading; the image asks redraw for one repaint once it is ready (see Poll).
func NewDraggableImage(p ImagePlacement, tex *Texture, surface Surface, redraw Redrawer) *DraggableImage {
	d := &DraggableImage{
		BorderColor: ColorDragBorder,
		name:        p.Name,
		tex:         tex,
		size:        p.Size,
		pos:         p.Position,
		surface:     surface,
		redraw:      redraw,
	}
	d.box = ComputeBoundingBox(d.pos, d.size)
	return d
}

// Name returns the placement name.
func (d *DraggableImage) Name() string { return d.name }

// Position returns the current top-left corner.
func (d *DraggableImage) Position() Point { return d.pos }

// Size returns the drawn size.
func (d *DraggableImage) Size() Size { return d.size }

// Box returns the bounding box committed at the last drag end.
func (d *DraggableImage) Box() BoundingBox { return d.box }

// State returns the current drag state.
func (d *DraggableImage) State() DragState { return d.state }

// Texture returns the pixel data of the image.
func (d *DraggableImage) Texture() *Texture { return d.tex }

// Draw paints the image at its current position, plus a highlight border
// while dragging. It does nothing until the texture has loaded.
func (d *DraggableImage) Draw() {
	if d.surface == nil || d.tex == nil || d.tex.Image() == nil {
		return
	}
	dst := Rect{X: d.pos.X, Y: d.pos.Y, Width: d.size.Width, Height: d.size.Height}
	d.surface.DrawImage(d.tex, dst)
	if d.state == DragDragging {
		d.surface.StrokeRect(dst, dragBorderWidth, d.BorderColor)
	}
}

// PointerDown arms the image when p falls inside its bounding box and
// reports whether it did.
func (d *DraggableImage) PointerDown(p Point) bool {
	if !PointInBox(p, d.box) {
		return false
	}
	d.state = DragArmed
	d.anchor = p
	return true
}

// PointerUp ends any interaction, commits the bounding box at the current
// position and requests a repaint. It applies to every image regardless of
// state.
func (d *DraggableImage) PointerUp() {
	d.state = DragIdle
	d.box = ComputeBoundingBox(d.pos, d.size)
	d.requestRedraw()
}

// PointerMove drags an armed or dragging image by the pointer's movement
// since the last event. A move that would push any part of the image off the
// surface releases it instead.
func (d *DraggableImage) PointerMove(p Point) {
	if d.state == DragIdle {
		return
	}
	next := d.pos.Add(p.Sub(d.anchor))
	if d.surface == nil || !withinSurface(next, d.size, d.surface.Size()) {
		d.PointerUp()
		return
	}
	d.pos = next
	d.anchor = p
	d.state = DragDragging
	d.requestRedraw()
}

// Poll checks whether the texture has finished loading. The first call that
// observes completion returns loaded=true along with any load error and, on
// success, requests one repaint. Every other call returns false.
func (d *DraggableImage) Poll() (loaded bool, err error) {
	if d.polled || d.tex == nil || !d.tex.Ready() {
		return false, nil
	}
	d.polled = true
	if err := d.tex.Err(); err != nil {
		return true, err
	}
	d.requestRedraw()
	return true, nil
}

func (d *DraggableImage) requestRedraw() {
	if d.redraw != nil {
		d.redraw.Redraw()
	}
}
