package pinboard

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a surface.
type Color struct {
	R, G, B, A float64
}

// Default colors used by a Scene unless overridden with options.
var (
	ColorBackground = ColorFromRGBA(colornames.Black)
	ColorDragBorder = ColorFromRGBA(colornames.Green)
	ColorClear      = Color{}
)

// ColorFromRGBA converts any color.Color to a straight-alpha Color.
func ColorFromRGBA(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGBA returns the color as a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R*c.A) * 255)),
		G: uint8(math.Round(clamp01(c.G*c.A) * 255)),
		B: uint8(math.Round(clamp01(c.B*c.A) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is a position in surface pixel space. The origin is the top-left
// corner with Y increasing downward.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Size is a width and height in surface pixels.
type Size struct {
	Width, Height float64
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle used for paint operations.
type Rect struct {
	X, Y, Width, Height float64
}

// BoundingBox holds the edges of an image. It is derived from a position and
// size and is never a source of truth on its own.
type BoundingBox struct {
	Top, Right, Bottom, Left float64
}

// Rect returns the box as a paintable rectangle.
func (b BoundingBox) Rect() Rect {
	return Rect{X: b.Left, Y: b.Top, Width: b.Right - b.Left, Height: b.Bottom - b.Top}
}

// Contains reports whether p lies inside the box. Points on the edge are
// considered inside.
func (b BoundingBox) Contains(p Point) bool {
	return PointInBox(p, b)
}

// DragState is the interaction state of a DraggableImage.
type DragState uint8

const (
	DragIdle     DragState = iota // no pointer interaction in progress
	DragArmed                     // pressed inside the image, not moved yet
	DragDragging                  // following the pointer
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragArmed:
		return "armed"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event delivered to event sinks.
type EventType uint8

const (
	EventArmed     EventType = iota // pointer pressed inside an image
	EventDragStart                  // first in-bounds move of an armed image
	EventDrag                       // every subsequent move while dragging
	EventDragEnd                    // drag released or auto-released at the surface edge
	EventDisarm                     // armed image released before it moved
)

func (t EventType) String() string {
	switch t {
	case EventArmed:
		return "armed"
	case EventDragStart:
		return "dragstart"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "dragend"
	case EventDisarm:
		return "disarm"
	default:
		return "unknown"
	}
}
