package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pinboard"
)

// tick is how often texture loads are polled and the screen is refreshed.
const tick = 16 * time.Millisecond

// Viewport returns the surface viewport of a terminal of the given size.
func Viewport(cols, rows int) pinboard.Size {
	return pinboard.Size{Width: float64(cols), Height: float64(rows * 2)}
}

// CellPoint converts a terminal cell to surface coordinates: the top pixel
// of the cell.
func CellPoint(col, row int) pinboard.Point {
	return pinboard.Point{X: float64(col), Y: float64(row * 2)}
}

// Run drives scene on screen until ctx is done or the user presses Esc, q or
// Ctrl-C. screen must already be initialized; Run does not finalize it.
// surface must be the surface scene paints onto.
func Run(ctx context.Context, screen tcell.Screen, scene *pinboard.Scene, surface *Surface) error {
	screen.EnableMouse(tcell.MouseDragEvents)
	defer screen.DisableMouse()
	screen.Clear()

	l := &loop{screen: screen, scene: scene, surface: surface}
	cols, rows := screen.Size()
	scene.Resize(Viewport(cols, rows))
	l.flush()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !l.handle(ev) {
				return nil
			}
		case <-ticker.C:
			scene.PollTextures()
		}
		l.flush()
	}
}

// loop holds the state of one Run. Only the Run goroutine touches it.
type loop struct {
	screen  tcell.Screen
	scene   *pinboard.Scene
	surface *Surface
}

// handle applies one terminal event to the scene. It returns false when the
// user asked to quit.
func (l *loop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		l.screen.Sync()
		l.scene.Resize(Viewport(cols, rows))
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		l.scene.SamplePointer(CellPoint(col, row), pressed)
	}
	return true
}

// flush shows the surface if anything was painted since the last flush.
func (l *loop) flush() {
	if !l.surface.Dirty() {
		return
	}
	l.surface.Show(l.screen)
	l.screen.Show()
}
