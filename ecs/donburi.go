package ecs

import (
	"github.com/phanxgames/pinboard"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for pinboard interaction
// events. Subscribe to it in ECS systems to react to arm and drag
// transitions.
var InteractionEventType = events.NewEventType[pinboard.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) pinboard.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pinboard.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
