package ecs

import (
	"github.com/phanxgames/warp"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for warp transition events.
var TransitionEventType = events.NewEventType[warp.TransitionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Transition events are published to TransitionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) warp.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event warp.TransitionEvent) {
	TransitionEventType.Publish(s.world, event)
}
