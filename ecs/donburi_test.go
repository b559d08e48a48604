package ecs

import (
	"testing"

	"github.com/phanxgames/warp"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []warp.TransitionEvent
	TransitionEventType.Subscribe(world, func(w donburi.World, e warp.TransitionEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(warp.TransitionEvent{Type: warp.EventRunStarted, Time: 1.5})
	sink.EmitEvent(warp.TransitionEvent{
		Type:     warp.EventRunCompleted,
		Time:     4,
		Progress: 1,
		Position: warp.Vec3{X: 0, Y: 4.3, Z: -5},
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	TransitionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != warp.EventRunStarted || received[0].Time != 1.5 {
		t.Errorf("event 0: %+v", received[0])
	}
	if e := received[1]; e.Type != warp.EventRunCompleted || e.Progress != 1 || e.Position.Z != -5 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_PortalFlow(t *testing.T) {
	world := donburi.NewWorld()
	p := warp.NewPortal(warp.DefaultConfig())
	p.SetEventSink(NewDonburiSink(world))

	var types []warp.EventType
	TransitionEventType.Subscribe(world, func(w donburi.World, e warp.TransitionEvent) {
		types = append(types, e.Type)
	})

	p.Enter()
	for i := 0; i < 300 && p.Scene() != warp.SceneEntered; i++ {
		p.Update(1.0 / 60)
	}
	p.Back()
	TransitionEventType.ProcessEvents(world)

	want := []warp.EventType{warp.EventRunStarted, warp.EventRunCompleted, warp.EventEntered, warp.EventExited}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
