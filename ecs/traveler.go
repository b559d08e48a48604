package ecs

import (
	"github.com/phanxgames/warp"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TravelerData is a camera (or any transform) driven by its own animator.
// Set Animate to start or cancel a run; TickTravelers writes the pose back.
type TravelerData struct {
	Animator *warp.Animator
	Animate  bool

	Position warp.Vec3
	LookAt   warp.Vec3
	Rotation warp.Vec3
	Gain     float64
	Progress float64
}

// Traveler is the component type for TravelerData.
var Traveler = donburi.NewComponentType[TravelerData]()

// TravelerEvent is a transition event tagged with the entity it belongs to.
type TravelerEvent struct {
	Entity donburi.Entity
	warp.TransitionEvent
}

// TravelerEventType carries run started, completed and cancelled events
// from TickTravelers. Clearing Animate after completion is not a cancel.
var TravelerEventType = events.NewEventType[TravelerEvent]()

var travelers = donburi.NewQuery(filter.Contains(Traveler))

// NewTraveler creates an entity with an idle Traveler at cfg's start pose.
func NewTraveler(world donburi.World, cfg warp.Config) donburi.Entity {
	e := world.Create(Traveler)
	Traveler.SetValue(world.Entry(e), TravelerData{
		Animator: warp.NewAnimator(cfg),
		Position: cfg.StartPosition,
		LookAt:   cfg.RestTarget,
		Gain:     1,
	})
	return e
}

// TickTravelers steps every Traveler in world. now and delta are the host
// clock and frame time in seconds. Events are queued on TravelerEventType;
// process them with events.ProcessAllEvents or TravelerEventType.ProcessEvents.
func TickTravelers(world donburi.World, now, delta float64) {
	travelers.Each(world, func(entry *donburi.Entry) {
		t := Traveler.Get(entry)
		if t.Animator == nil {
			return
		}

		wasRunning, wasDone := t.Animator.Running(), t.Animator.Completed()
		res := t.Animator.Step(warp.Frame{
			Now:      now,
			Delta:    delta,
			Animate:  t.Animate,
			Position: t.Position,
			Rotation: t.Rotation,
		})
		if res.State == warp.StateRunning {
			t.Position = res.Position
			t.LookAt = res.LookAt
			t.Rotation = res.Rotation
		}
		t.Gain = res.Gain
		t.Progress = res.Progress

		publish := func(typ warp.EventType) {
			TravelerEventType.Publish(world, TravelerEvent{
				Entity: entry.Entity(),
				TransitionEvent: warp.TransitionEvent{
					Type:     typ,
					Time:     now,
					Progress: res.Progress,
					Position: t.Position,
				},
			})
		}
		switch {
		case !wasRunning && res.State == warp.StateRunning:
			publish(warp.EventRunStarted)
		case wasRunning && res.State == warp.StateIdle && !wasDone:
			publish(warp.EventRunCancelled)
		}
		if res.Completed {
			publish(warp.EventRunCompleted)
		}
	})
}
