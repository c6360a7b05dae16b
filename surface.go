package pinboard

// Surface is the 2D paintable target a host environment provides. All
// coordinates are surface pixels. Implementations must tolerate calls while
// they have no backing storage (zero size) by doing nothing.
type Surface interface {
	// Size returns the current surface dimensions.
	Size() Size
	// Resize replaces the backing storage. Contents are undefined afterward.
	Resize(s Size)
	ClearRect(r Rect)
	FillRect(r Rect, c Color)
	// DrawImage paints tex scaled into dst. Textures that are not ready are
	// skipped.
	DrawImage(tex *Texture, dst Rect)
	// StrokeRect outlines r with a line of the given width centered on its
	// edges.
	StrokeRect(r Rect, width float64, c Color)
}
