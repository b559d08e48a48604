package warp

import "math"

// Orbit limits, matching the portal's orbit controls.
const (
	orbitMinDistance = 5.0
	orbitMaxDistance = 25.0
	orbitMaxPitch    = math.Pi/2 - 0.01
)

// Camera is a look-at camera pose.
type Camera struct {
	Position Vec3
	LookAt   Vec3
}

// Portal is the top-level object that owns a portal-entry sequence: the
// camera, the model rotation, the path animator, the transition overlay and
// the nether → zooming → entered flow.
//
// Call Update once per frame with the frame's delta time.
type Portal struct {
	cfg     Config
	anim    *Animator
	overlay *TransitionOverlay

	scene    Scene
	clock    float64
	camera   Camera
	rotation Vec3
	gain     float64
	progress float64

	volume    VolumeSetter
	lastGain  float64
	sink      EventSink
	debug     bool
	script    *Script
	onCapture func(label string)
}

// NewPortal creates a portal in SceneNether with the camera at
// cfg.StartPosition looking at cfg.RestTarget.
func NewPortal(cfg Config) *Portal {
	p := &Portal{
		cfg:      cfg,
		anim:     NewAnimator(cfg),
		overlay:  NewTransitionOverlay(cfg.Overlay),
		gain:     1,
		lastGain: -1,
	}
	p.camera = Camera{Position: cfg.StartPosition, LookAt: cfg.RestTarget}
	return p
}

// SetConfig replaces the configuration, e.g. after a hot reload.
func (p *Portal) SetConfig(cfg Config) {
	p.cfg = cfg
	p.anim.SetConfig(cfg)
	p.overlay.SetConfig(cfg.Overlay)
	if p.debug {
		debugf("config updated: duration %.2fs", cfg.Duration)
	}
}

// Config returns the current configuration.
func (p *Portal) Config() Config {
	return p.cfg
}

// Animator returns the portal's path animator.
func (p *Portal) Animator() *Animator {
	return p.anim
}

// Scene returns the current scene.
func (p *Portal) Scene() Scene {
	return p.scene
}

// Camera returns the current camera pose.
func (p *Portal) Camera() Camera {
	return p.camera
}

// Rotation returns the model's Euler rotation.
func (p *Portal) Rotation() Vec3 {
	return p.rotation
}

// Gain returns the ambience gain applied on the last Update. It is 1 in
// SceneNether, follows the run's gain ramp while zooming and is 0 in
// SceneEntered.
func (p *Portal) Gain() float64 {
	return p.gain
}

// Progress returns the run progress from the last Update.
func (p *Portal) Progress() float64 {
	return p.progress
}

// Clock returns the portal's running time in seconds.
func (p *Portal) Clock() float64 {
	return p.clock
}

// Pulse returns the current emissive intensity of the portal surface.
func (p *Portal) Pulse() float64 {
	return p.cfg.Pulse.At(p.clock)
}

// OverlayOpacity returns the transition overlay's opacity.
func (p *Portal) OverlayOpacity() float64 {
	return p.overlay.Opacity()
}

// SetVolume attaches an ambience player whose volume follows the gain.
func (p *Portal) SetVolume(v VolumeSetter) {
	p.volume = v
	p.lastGain = -1
}

// SetEventSink sets the optional event bridge.
func (p *Portal) SetEventSink(sink EventSink) {
	p.sink = sink
}

// SetScript attaches a scripted run. One step executes per Update, before
// the animator ticks.
func (p *Portal) SetScript(s *Script) {
	p.script = s
}

// SetCaptureFunc sets the handler for scripted screenshot steps.
func (p *Portal) SetCaptureFunc(fn func(label string)) {
	p.onCapture = fn
}

// SetDebugMode enables or disables debug mode. When enabled, run and scene
// transitions are logged to stderr.
func (p *Portal) SetDebugMode(enabled bool) {
	p.debug = enabled
	p.anim.Debug = enabled
}

// Enter starts the transition. It reports false unless the portal was in
// SceneNether.
func (p *Portal) Enter() bool {
	if p.scene != SceneNether {
		return false
	}
	p.setScene(SceneZooming)
	p.overlay.Show()
	return true
}

// Back returns to SceneNether, resetting the camera to its start pose.
// Backing out of SceneZooming cancels the run. It reports false if the
// portal was already in SceneNether.
func (p *Portal) Back() bool {
	if p.scene == SceneNether {
		return false
	}
	if p.anim.Running() {
		// Reset now so an Enter in the same frame captures a fresh start.
		if !p.anim.Completed() {
			p.emit(EventRunCancelled)
		}
		p.anim.Reset()
	}
	p.setScene(SceneNether)
	p.overlay.Hide()
	p.camera = Camera{Position: p.cfg.StartPosition, LookAt: p.cfg.RestTarget}
	p.emit(EventExited)
	return true
}

// Orbit rotates the camera around the look-at target by dYaw and dPitch
// radians and scales its distance by zoom (1 = unchanged), clamped to the
// orbit limits. Only allowed in SceneNether; reports whether it applied.
// Non-finite angles are ignored.
func (p *Portal) Orbit(dYaw, dPitch, zoom float64) bool {
	if p.scene != SceneNether || !finite(dYaw) || !finite(dPitch) {
		return false
	}
	p.camera.Position = orbit(p.camera.Position, p.camera.LookAt, dYaw, dPitch, zoom)
	return true
}

// Update advances the portal by dt seconds.
func (p *Portal) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	p.clock += dt

	if p.script != nil {
		p.script.step(p)
	}

	wasRunning, wasDone := p.anim.Running(), p.anim.Completed()
	animate := p.scene == SceneZooming
	res := p.anim.Step(Frame{
		Now:      p.clock,
		Delta:    dt,
		Animate:  animate,
		Position: p.camera.Position,
		Rotation: p.rotation,
	})
	p.progress = res.Progress
	p.gain = res.Gain
	if p.scene == SceneEntered {
		// The ambience stays faded out until Back.
		p.gain = 0
	}

	switch {
	case !wasRunning && res.State == StateRunning:
		p.emit(EventRunStarted)
	case wasRunning && res.State == StateIdle && !wasDone:
		// A reset after completion is the normal hand-off, not a cancel.
		p.emit(EventRunCancelled)
	}

	if res.State == StateRunning {
		p.camera = Camera{Position: res.Position, LookAt: res.LookAt}
		p.rotation = res.Rotation
	} else if p.scene == SceneNether {
		p.rotation = Spin(p.rotation, p.cfg.SpinSpeed, dt)
	}

	if res.Completed {
		p.emit(EventRunCompleted)
		p.setScene(SceneEntered)
		p.overlay.Hide()
		p.emit(EventEntered)
	}

	p.overlay.Update(dt)

	if p.volume != nil && p.gain != p.lastGain {
		p.volume.SetVolume(p.gain)
		p.lastGain = p.gain
	}
}

func (p *Portal) setScene(s Scene) {
	if p.debug {
		debugf("scene %s -> %s at %.3fs", p.scene, s, p.clock)
	}
	p.scene = s
}

func (p *Portal) emit(t EventType) {
	if p.sink == nil {
		return
	}
	p.sink.EmitEvent(TransitionEvent{
		Type:     t,
		Time:     p.clock,
		Progress: p.progress,
		Position: p.camera.Position,
	})
}

// orbit moves pos on a sphere around target.
func orbit(pos, target Vec3, dYaw, dPitch, zoom float64) Vec3 {
	off := pos.Sub(target)
	r := off.Norm()
	if r == 0 {
		off = Vec3{Z: 1}
		r = 1
	}
	yaw := math.Atan2(off.X, off.Z) + dYaw
	pitch := math.Asin(math.Max(-1, math.Min(1, off.Y/r))) + dPitch
	pitch = math.Max(-orbitMaxPitch, math.Min(orbitMaxPitch, pitch))
	if zoom > 0 && finite(zoom) {
		r *= zoom
	}
	r = math.Max(orbitMinDistance, math.Min(orbitMaxDistance, r))

	cp := math.Cos(pitch)
	return target.Add(Vec3{
		X: r * cp * math.Sin(yaw),
		Y: r * math.Sin(pitch),
		Z: r * cp * math.Cos(yaw),
	})
}
