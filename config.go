package pinboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven configuration of a pinboard program.
// With prefix "PINBOARD" the variables are PINBOARD_TITLE, PINBOARD_WIDTH and
// so on.
type Config struct {
	Title         string      `envconfig:"TITLE" default:"Pinboard"`
	Width         int         `envconfig:"WIDTH" default:"1280"`
	Height        int         `envconfig:"HEIGHT" default:"720"`
	AspectRatio   AspectRatio `envconfig:"ASPECT_RATIO" default:"16:9"`
	ExclusiveDrag bool        `envconfig:"EXCLUSIVE_DRAG" default:"false"`
	ShowFPS       bool        `envconfig:"SHOW_FPS" default:"false"`
	Debug         bool        `envconfig:"DEBUG" default:"false"`
	ScreenshotDir string      `envconfig:"SCREENSHOT_DIR" default:"screenshots"`
	TestScript    string      `envconfig:"TEST_SCRIPT"`
	// AssetDir, when set, replaces embedded demo images with files from disk.
	AssetDir string `envconfig:"ASSET_DIR"`
}

// LoadConfig reads Config from the environment.
func LoadConfig(prefix string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("load config: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return &cfg, nil
}

// RunConfig returns the window settings for Run.
func (c *Config) RunConfig() RunConfig {
	return RunConfig{
		Title:         c.Title,
		Width:         c.Width,
		Height:        c.Height,
		ShowFPS:       c.ShowFPS,
		Debug:         c.Debug,
		ScreenshotDir: c.ScreenshotDir,
		TestScript:    c.TestScript,
	}
}

// SceneOptions returns the scene options implied by the configuration.
func (c *Config) SceneOptions() []Option {
	return []Option{
		WithAspectRatio(float64(c.AspectRatio)),
		WithExclusiveDrag(c.ExclusiveDrag),
	}
}

// AspectRatio is a width/height ratio. It decodes from "W:H" or a plain
// decimal number.
type AspectRatio float64

// Decode implements envconfig.Decoder.
func (a *AspectRatio) Decode(value string) error {
	value = strings.TrimSpace(value)
	var ratio float64
	if w, h, ok := strings.Cut(value, ":"); ok {
		fw, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return fmt.Errorf("aspect ratio %q: %w", value, err)
		}
		fh, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return fmt.Errorf("aspect ratio %q: %w", value, err)
		}
		if fh == 0 {
			return fmt.Errorf("aspect ratio %q: zero height", value)
		}
		ratio = fw / fh
	} else {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("aspect ratio %q: %w", value, err)
		}
		ratio = f
	}
	if ratio <= 0 {
		return fmt.Errorf("aspect ratio %q: must be positive", value)
	}
	*a = AspectRatio(ratio)
	return nil
}
