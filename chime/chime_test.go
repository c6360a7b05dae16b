package chime

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/phanxgames/pinboard"
)

func TestChimePlaysOnDragEndOnly(t *testing.T) {
	var played []beep.Streamer
	c := &Chime{play: func(s beep.Streamer) { played = append(played, s) }}

	for _, typ := range []pinboard.EventType{
		pinboard.EventArmed,
		pinboard.EventDragStart,
		pinboard.EventDrag,
		pinboard.EventDisarm,
	} {
		c.EmitEvent(pinboard.InteractionEvent{Type: typ})
	}
	if len(played) != 0 {
		t.Fatalf("played %d tones before drag end, want 0", len(played))
	}

	c.EmitEvent(pinboard.InteractionEvent{Type: pinboard.EventDragEnd})
	if len(played) != 1 {
		t.Fatalf("played %d tones, want 1", len(played))
	}
}

func TestChimeToneLength(t *testing.T) {
	var tone beep.Streamer
	c := &Chime{play: func(s beep.Streamer) { tone = s }}
	c.EmitEvent(pinboard.InteractionEvent{Type: pinboard.EventDragEnd})
	if tone == nil {
		t.Fatal("no tone played")
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(toneLength); total != want {
		t.Errorf("tone length = %d samples, want %d", total, want)
	}
}
