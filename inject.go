package pinboard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// syntheticPointerEvent represents a single injected pointer event in surface
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given surface coordinates. The
// event is consumed on the next frame's Update.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given surface coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	s.InjectEasedDrag(fromX, fromY, toX, toY, frames, ease.Linear)
}

// InjectEasedDrag is InjectDrag with the intermediate positions spaced by the
// given easing function instead of linearly.
func (s *Scene) InjectEasedDrag(fromX, fromY, toX, toY float64, frames int, fn ease.TweenFunc) {
	if frames < 2 {
		frames = 2
	}
	if fn == nil {
		fn = ease.Linear
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	// Progress from 0 to 1 over steps+1 unit ticks; the last tick is the release.
	progress := gween.New(0, 1, float32(steps+1), fn)
	for i := 1; i <= steps; i++ {
		t, _ := progress.Update(1)
		x := fromX + (toX-fromX)*float64(t)
		y := fromY + (toY-fromY)*float64(t)
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through SamplePointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.SamplePointer(Point{X: evt.x, Y: evt.y}, evt.pressed)
	return true
}
