// Package chime plays a short tone whenever a dragged image is dropped.
package chime

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/pinboard"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 880
	toneLength = 50 * time.Millisecond
)

// Chime is a pinboard.EventSink that plays a tone on EventDragEnd.
type Chime struct {
	play func(beep.Streamer)
}

// New initializes the speaker. Callers usually treat an error as non-fatal
// and run without sound.
func New() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("chime: init speaker: %w", err)
	}
	return &Chime{play: func(s beep.Streamer) { speaker.Play(s) }}, nil
}

// Close releases the speaker.
func (c *Chime) Close() {
	speaker.Close()
}

// EmitEvent implements pinboard.EventSink.
func (c *Chime) EmitEvent(event pinboard.InteractionEvent) {
	if event.Type != pinboard.EventDragEnd {
		return
	}
	tone, err := generators.SineTone(sampleRate, toneHz)
	if err != nil {
		return
	}
	c.play(beep.Take(sampleRate.N(toneLength), tone))
}
