package pinboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerState tracks the single mouse pointer between frames.
type pointerState struct {
	down bool
	last Point
	seen bool // last is valid
}

// processInput is called from Scene.Update to turn one frame of mouse input
// into pointer notifications. A queued synthetic event replaces real input
// for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		pressed = false
	}
	s.SamplePointer(Point{X: float64(x), Y: float64(y)}, pressed)
}

// SamplePointer runs the pointer state machine for one sample of pointer
// position and primary button state: a change in button state becomes a
// press or release, a change in position becomes a move. Coordinates are
// surface coordinates. Hosts that only see raw mouse state use this instead
// of calling PointerDown, PointerMove and PointerUp themselves.
func (s *Scene) SamplePointer(p Point, pressed bool) {
	ps := &s.pointer
	moved := !ps.seen || p != ps.last

	switch {
	case pressed && !ps.down:
		ps.down = true
		s.PointerDown(p)
	case !pressed && ps.down:
		// Deliver the final position before releasing.
		if moved {
			s.PointerMove(p)
		}
		ps.down = false
		s.PointerUp(p)
	case moved:
		s.PointerMove(p)
	}
	ps.last = p
	ps.seen = true
}
