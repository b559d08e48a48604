package warp

// Frame is one tick of host input.
type Frame struct {
	// Now is the host clock in seconds. It must not decrease between ticks.
	Now float64
	// Delta is the time since the previous tick, used to step the rotation
	// damper.
	Delta float64
	// Animate requests a run. Clearing it cancels the active run.
	Animate bool
	// Position is the camera's current position. It is captured as the
	// path's start when a run begins and ignored afterwards.
	Position Vec3
	// Rotation is the external Euler rotation to damp while running.
	Rotation Vec3
}

// TickResult is the animator output for one tick.
type TickResult struct {
	Position Vec3
	LookAt   Vec3
	// Progress is the linear (un-eased) run progress in [0, 1].
	Progress float64
	// Completed is true on exactly one tick per run: the first one where
	// Progress reaches 1.
	Completed bool
	// Gain is the auxiliary gain in [0, 1]. It is 1 while idle.
	Gain float64
	// Rotation is the damped rotation while running, Frame.Rotation otherwise.
	Rotation Vec3
	State    State
}

// run is the state captured for one traversal of the path.
type run struct {
	timed         bool // startTime is set
	startTime     float64
	startPosition Vec3
	startTarget   Vec3
	elapsed       float64 // highest elapsed time seen
	completed     bool
}

// Animator moves a camera along the configured Bézier path over a fixed
// duration. It has two states: idle and running. The first tick with Animate
// set starts a run and captures the start snapshot; later ticks never
// recapture it. The first tick with Animate cleared cancels the run.
//
// Animator is not safe for concurrent use. Each instance owns its state, so
// several animators (one per scene) do not interfere.
type Animator struct {
	// OnComplete, when set, is called once per run from inside Tick/Step on
	// the tick that reports Completed.
	OnComplete func()
	// Debug prints run transitions to stderr.
	Debug bool

	cfg    Config
	gain   *GainRamp
	damper RotationDamper

	active bool
	run    run
}

// NewAnimator creates an idle Animator using cfg.
func NewAnimator(cfg Config) *Animator {
	a := &Animator{}
	a.SetConfig(cfg)
	return a
}

// Config returns the animator's current configuration.
func (a *Animator) Config() Config {
	return a.cfg
}

// SetConfig replaces the configuration. An active run keeps its start
// snapshot and continues with the new timings and waypoints.
func (a *Animator) SetConfig(cfg Config) {
	a.cfg = cfg
	a.gain = NewGainRamp(cfg.FadeDelay, cfg.FadeDuration)
	a.damper.SmoothTime = cfg.RotationSmoothTime
}

// State reports whether a run is active.
func (a *Animator) State() State {
	if a.active {
		return StateRunning
	}
	return StateIdle
}

// Running reports whether a run is active.
func (a *Animator) Running() bool {
	return a.active
}

// Elapsed returns the run time in seconds, or 0 when idle.
func (a *Animator) Elapsed() float64 {
	if !a.active {
		return 0
	}
	return a.run.elapsed
}

// Completed reports whether the active run has reached the end of the path.
func (a *Animator) Completed() bool {
	return a.active && a.run.completed
}

// StartPosition returns the position captured when the active run started.
// ok is false when idle.
func (a *Animator) StartPosition() (pos Vec3, ok bool) {
	if !a.active {
		return Vec3{}, false
	}
	return a.run.startPosition, true
}

// Reset cancels the active run, if any, and clears the captured snapshot.
func (a *Animator) Reset() {
	a.active = false
	a.run = run{}
	a.damper.Reset()
}

// Tick advances the animator. It is Step without a rotation to damp.
func (a *Animator) Tick(now, delta float64, animate bool, current Vec3) TickResult {
	return a.Step(Frame{Now: now, Delta: delta, Animate: animate, Position: current})
}

// Step advances the animator by one frame and returns the pose to apply.
//
// Progress is clamped to [0, 1] and never decreases within a run, so late
// first ticks, delta spikes and stalled clocks cannot overshoot the path.
// Once progress reaches 1 the result keeps reporting the end of the path
// with Completed false until the caller clears Animate.
func (a *Animator) Step(f Frame) TickResult {
	if !f.Animate {
		if a.active {
			if a.Debug {
				debugf("run cancelled at %.3fs (elapsed %.3fs)", f.Now, a.run.elapsed)
			}
			a.Reset()
		}
		return TickResult{
			Position: f.Position,
			LookAt:   a.cfg.RestTarget,
			Gain:     1,
			Rotation: f.Rotation,
			State:    StateIdle,
		}
	}

	if !a.active {
		a.active = true
		a.run = run{
			startPosition: sanitize(f.Position),
			startTarget:   a.cfg.RestTarget,
		}
		a.damper.Reset()
		if a.Debug {
			debugf("run started at %.3fs from %v", f.Now, a.run.startPosition)
		}
	}
	if !a.run.timed && finite(f.Now) {
		a.run.timed = true
		a.run.startTime = f.Now
	}
	if a.run.timed {
		// NaN comparisons are false, so a NaN clock holds the current value.
		if e := f.Now - a.run.startTime; e > a.run.elapsed {
			a.run.elapsed = e
		}
	}

	raw := a.progress(a.run.elapsed)
	eased := Smoothstep(raw)

	res := TickResult{
		Position: a.cfg.Position.At(a.run.startPosition, eased),
		LookAt:   a.cfg.Target.At(a.run.startTarget, eased),
		Progress: raw,
		Gain:     a.gain.At(a.run.elapsed),
		Rotation: a.damper.Step(f.Rotation, f.Delta),
		State:    StateRunning,
	}

	if raw >= 1 && !a.run.completed {
		a.run.completed = true
		res.Completed = true
		if a.Debug {
			debugf("run completed at %.3fs", f.Now)
		}
		if a.OnComplete != nil {
			a.OnComplete()
		}
	}
	return res
}

// progress maps elapsed run time to [0, 1]. A non-positive duration
// completes immediately.
func (a *Animator) progress(elapsed float64) float64 {
	if !(a.cfg.Duration > 0) {
		return 1
	}
	return Clamp01(elapsed / a.cfg.Duration)
}
