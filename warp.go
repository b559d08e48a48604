package warp

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is a 3D point or vector used for positions, look-at targets and Euler
// rotations throughout the API.
type Vec3 = r3.Vector

// Vec2 is a 2D vector, used for projected screen coordinates.
type Vec2 struct {
	X, Y float64
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// State is the animator's run state.
type State uint8

const (
	StateIdle    State = iota // no run captured
	StateRunning              // a run is active (including after completion, until reset)
)

// String returns "idle" or "running".
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Scene identifies where a Portal is in the enter/back flow.
type Scene uint8

const (
	SceneNether  Scene = iota // idle in front of the portal
	SceneZooming              // camera flying through
	SceneEntered              // transition finished
)

// String returns the scene name.
func (s Scene) String() string {
	switch s {
	case SceneZooming:
		return "zooming"
	case SceneEntered:
		return "entered"
	default:
		return "nether"
	}
}

// EventType identifies a kind of transition event.
type EventType uint8

const (
	EventRunStarted   EventType = iota // a run captured its start snapshot
	EventRunCompleted                  // progress reached 1 (fires once per run)
	EventRunCancelled                  // animate was cleared while a run was active
	EventEntered                       // the portal switched to SceneEntered
	EventExited                        // the portal went back to SceneNether
)

// String returns a short name for the event type.
func (e EventType) String() string {
	switch e {
	case EventRunStarted:
		return "run-started"
	case EventRunCompleted:
		return "run-completed"
	case EventRunCancelled:
		return "run-cancelled"
	case EventEntered:
		return "entered"
	case EventExited:
		return "exited"
	default:
		return "unknown"
	}
}

// TransitionEvent carries transition data to an EventSink.
type TransitionEvent struct {
	Type EventType
	// Time is the portal clock (seconds) when the event fired.
	Time     float64
	Progress float64
	Position Vec3
}

// EventSink is the interface for optional event forwarding, e.g. into an ECS.
type EventSink interface {
	EmitEvent(event TransitionEvent)
}
