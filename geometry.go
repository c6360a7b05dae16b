package pinboard

// ComputeBoundingBox returns the edges of a rectangle of size s placed at p.
func ComputeBoundingBox(p Point, s Size) BoundingBox {
	return BoundingBox{
		Top:    p.Y,
		Right:  p.X + s.Width,
		Bottom: p.Y + s.Height,
		Left:   p.X,
	}
}

// PointInBox reports whether p lies inside b, edges included.
func PointInBox(p Point, b BoundingBox) bool {
	return p.X >= b.Left && p.X <= b.Right &&
		p.Y >= b.Top && p.Y <= b.Bottom
}

// fitAspect letterboxes a viewport to the given width/height ratio, binding
// on whichever viewport dimension is the constraint.
func fitAspect(viewport Size, ratio float64) Size {
	if viewport.Width <= 0 || viewport.Height <= 0 || ratio <= 0 {
		return Size{}
	}
	if viewport.Width/viewport.Height > ratio {
		return Size{Width: viewport.Height * ratio, Height: viewport.Height}
	}
	return Size{Width: viewport.Width, Height: viewport.Width / ratio}
}

// withinSurface reports whether a rectangle of size s at p lies entirely
// inside a surface of the given size.
func withinSurface(p Point, s Size, surface Size) bool {
	return p.X >= 0 && p.X+s.Width <= surface.Width &&
		p.Y >= 0 && p.Y+s.Height <= surface.Height
}
