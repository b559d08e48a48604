// Package warp drives timed camera fly-through transitions for [Ebitengine]
// games and any other host with a per-frame tick.
//
// The core is [Animator]: a two-state (idle/running) driver that, once asked
// to animate, captures the current camera position, eases progress with a
// smoothstep over a fixed duration, and moves the camera and its look-at
// target along quadratic Bézier curves. Alongside the path it ramps an
// auxiliary gain (typically an ambience volume) down to zero and damps an
// external rotation toward rest. Completion is reported exactly once per run.
//
// # Quick start
//
//	anim := warp.NewAnimator(warp.DefaultConfig())
//	anim.OnComplete = func() { switchScene() }
//
//	// every frame:
//	res := anim.Tick(now, dt, zooming, cam.Position)
//	cam.Position, cam.LookAt = res.Position, res.LookAt
//	ambience.SetVolume(res.Gain)
//
// The animator owns no clock and no rendering. Ticks must arrive with
// non-decreasing now values from a single goroutine.
//
// # Portal
//
// [Portal] composes an animator with the rest of a portal-entry sequence:
// idle spin, emissive pulse, a fullscreen transition overlay, the
// enter/entered/back scene flow, and an optional [EventSink]. [Run] opens an
// ebiten window around a Portal.
//
// # Configuration
//
// [DefaultConfig] holds the stock timings and waypoints. [LoadConfigFile]
// overlays a YAML file on top of them and [ConfigWatcher] reloads it when it
// changes on disk.
//
// # ECS
//
// The nested module warp/ecs bridges transition events and animator
// components into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package warp
