package pinboard

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and tooling used by Run.
type RunConfig struct {
	Title         string
	Width, Height int // initial window size
	ShowFPS       bool
	Debug         bool
	// ScreenshotDir overrides Scene.ScreenshotDir when non-empty.
	ScreenshotDir string
	// TestScript is the path of a JSON test script to play back. When set,
	// Run returns after the last step has been drawn.
	TestScript string
}

// Run opens a resizable window and drives scene until the window is closed.
// Every change of the window's inner size is delivered to Scene.Resize.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	scene.SetDebugMode(cfg.Debug)
	if cfg.ScreenshotDir != "" {
		scene.ScreenshotDir = cfg.ScreenshotDir
	}

	g := &game{scene: scene}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return fmt.Errorf("run: read test script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		scene.SetTestRunner(runner)
		g.runner = runner
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene    *Scene
	viewport Size
	fps      *fpsOverlay
	runner   *TestRunner
	// finished is set once a frame has been drawn after the script ended,
	// so a trailing screenshot step is still captured.
	finished bool
}

func (g *game) Update() error {
	if g.finished {
		return ebiten.Termination
	}
	if g.fps != nil {
		g.fps.update(1 / float64(ebiten.TPS()))
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	if g.runner != nil && g.runner.Done() {
		g.finished = true
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if vp != g.viewport {
		g.viewport = vp
		g.scene.Resize(vp)
	}
	return outsideWidth, outsideHeight
}
