// Package ecs provides ECS adapters for warp.
//
// [NewDonburiSink] bridges a Portal's transition events (run started,
// completed, cancelled, entered, exited) into a [Donburi] world as typed
// events. Subscribe to [TransitionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	portal.SetEventSink(sink)
//
// For many independent fly-throughs, attach a [Traveler] component to each
// entity and call [TickTravelers] once per frame. Per-entity events arrive
// on [TravelerEventType].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
