package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/warp"

	"github.com/yohamta/donburi"
)

func collectTravelerEvents(world donburi.World) *[]TravelerEvent {
	var received []TravelerEvent
	TravelerEventType.Subscribe(world, func(w donburi.World, e TravelerEvent) {
		received = append(received, e)
	})
	return &received
}

func vecNear(a, b warp.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestNewTraveler(t *testing.T) {
	world := donburi.NewWorld()
	cfg := warp.DefaultConfig()
	e := NewTraveler(world, cfg)

	data := Traveler.Get(world.Entry(e))
	if data.Animator == nil {
		t.Fatal("Animator is nil")
	}
	if data.Position != cfg.StartPosition || data.LookAt != cfg.RestTarget || data.Gain != 1 {
		t.Errorf("data = %+v, want start pose and gain 1", *data)
	}
	if data.Animate {
		t.Error("new traveler is animating")
	}
}

func TestTickTravelersRun(t *testing.T) {
	world := donburi.NewWorld()
	received := collectTravelerEvents(world)
	e := NewTraveler(world, warp.DefaultConfig())
	data := Traveler.Get(world.Entry(e))
	data.Animate = true

	TickTravelers(world, 10, 1.0/60)
	TickTravelers(world, 11.25, 1.0/60)
	if !(data.Progress > 0.49 && data.Progress < 0.51) {
		t.Errorf("Progress = %v, want 0.5", data.Progress)
	}
	TickTravelers(world, 12.5, 1.0/60)
	if !vecNear(data.Position, warp.Vec3{X: 0, Y: 4.3, Z: -5}) {
		t.Errorf("Position = %v, want final waypoint", data.Position)
	}
	if data.Gain != 0 {
		t.Errorf("Gain = %v, want 0", data.Gain)
	}

	data.Animate = false
	TickTravelers(world, 12.6, 1.0/60)
	TravelerEventType.ProcessEvents(world)

	if len(*received) != 2 {
		t.Fatalf("events = %+v, want started and completed", *received)
	}
	if ev := (*received)[0]; ev.Entity != e || ev.Type != warp.EventRunStarted || ev.Time != 10 {
		t.Errorf("event 0: %+v", ev)
	}
	if ev := (*received)[1]; ev.Entity != e || ev.Type != warp.EventRunCompleted || ev.Progress != 1 {
		t.Errorf("event 1: %+v", ev)
	}
	if !vecNear(data.Position, warp.Vec3{X: 0, Y: 4.3, Z: -5}) {
		t.Errorf("Position after hand-off = %v, want it held", data.Position)
	}
}

func TestTickTravelersCancel(t *testing.T) {
	world := donburi.NewWorld()
	received := collectTravelerEvents(world)
	e := NewTraveler(world, warp.DefaultConfig())
	data := Traveler.Get(world.Entry(e))

	data.Animate = true
	TickTravelers(world, 0, 1.0/60)
	TickTravelers(world, 1, 1.0/60)
	data.Animate = false
	TickTravelers(world, 1.1, 1.0/60)
	TravelerEventType.ProcessEvents(world)

	if len(*received) != 2 || (*received)[1].Type != warp.EventRunCancelled {
		t.Fatalf("events = %+v, want started then cancelled", *received)
	}
	if data.Gain != 1 || data.Animator.Running() {
		t.Errorf("after cancel: gain %v, running %v", data.Gain, data.Animator.Running())
	}
}

func TestTickTravelersIndependent(t *testing.T) {
	world := donburi.NewWorld()
	cfg := warp.DefaultConfig()
	a := NewTraveler(world, cfg)
	b := NewTraveler(world, cfg)

	other := warp.Vec3{X: 4, Y: 4.3, Z: 10}
	Traveler.Get(world.Entry(b)).Position = other
	Traveler.Get(world.Entry(a)).Animate = true

	TickTravelers(world, 0, 1.0/60)
	TickTravelers(world, 1.25, 1.0/60)

	da, db := Traveler.Get(world.Entry(a)), Traveler.Get(world.Entry(b))
	if !da.Animator.Running() || db.Animator.Running() {
		t.Fatalf("running: a %v, b %v", da.Animator.Running(), db.Animator.Running())
	}
	if db.Position != other {
		t.Errorf("idle traveler moved to %v", db.Position)
	}
	if start, _ := da.Animator.StartPosition(); start != cfg.StartPosition {
		t.Errorf("a started from %v, want %v", start, cfg.StartPosition)
	}
}

func TestTickTravelersSkipsNilAnimator(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(Traveler)
	Traveler.Get(world.Entry(e)).Animate = true
	TickTravelers(world, 0, 1.0/60)
	if Traveler.Get(world.Entry(e)).Progress != 0 {
		t.Error("traveler without an animator was stepped")
	}
}
