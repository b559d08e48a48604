package warp

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionOverlay animates the opacity of a fullscreen cover drawn over
// the portal during a transition. Show waits InDelay and then fades in with
// an ease-out; Hide fades out with an ease-in from wherever the opacity is.
//
// There is no global animation manager: callers call Update themselves.
type TransitionOverlay struct {
	cfg     OverlayConfig
	opacity float64
	showing bool

	// delay counts down before a pending tween starts.
	delay   float64
	target  float64
	pending pendingFade
	tween   *gween.Tween
}

// NewTransitionOverlay creates a hidden overlay.
func NewTransitionOverlay(cfg OverlayConfig) *TransitionOverlay {
	return &TransitionOverlay{cfg: cfg}
}

// SetConfig replaces the timings. In-flight fades keep their old timing.
func (o *TransitionOverlay) SetConfig(cfg OverlayConfig) {
	o.cfg = cfg
}

// Show starts the delayed fade-in. No-op if already showing.
func (o *TransitionOverlay) Show() {
	if o.showing {
		return
	}
	o.showing = true
	o.start(1, o.cfg.InDelay, o.cfg.InDuration, ease.OutQuad)
}

// Hide starts the fade-out. No-op if already hidden.
func (o *TransitionOverlay) Hide() {
	if !o.showing {
		return
	}
	o.showing = false
	o.start(0, 0, o.cfg.OutDuration, ease.InQuad)
}

// Showing reports whether the overlay was last asked to show.
func (o *TransitionOverlay) Showing() bool {
	return o.showing
}

// Opacity returns the current opacity in [0, 1].
func (o *TransitionOverlay) Opacity() float64 {
	return o.opacity
}

// Update advances the fade by dt seconds and returns the opacity.
func (o *TransitionOverlay) Update(dt float64) float64 {
	if !(dt > 0) {
		return o.opacity
	}
	if o.delay > 0 {
		o.delay -= dt
		if o.delay > 0 {
			return o.opacity
		}
		dt = -o.delay
		o.delay = 0
		o.begin()
	}
	if o.tween != nil {
		val, done := o.tween.Update(float32(dt))
		o.opacity = Clamp01(float64(val))
		if done {
			o.opacity = o.target
			o.tween = nil
		}
	}
	return o.opacity
}

// start schedules a fade to target after delay seconds.
func (o *TransitionOverlay) start(target, delay, duration float64, fn ease.TweenFunc) {
	o.target = target
	o.tween = nil
	o.pending = pendingFade{duration: duration, fn: fn}
	if delay > 0 {
		o.delay = delay
		return
	}
	o.delay = 0
	o.begin()
}

// pendingFade is a fade waiting for its delay to run out.
type pendingFade struct {
	duration float64
	fn       ease.TweenFunc
}

// begin turns the pending fade into a running tween from the current opacity.
func (o *TransitionOverlay) begin() {
	if !(o.pending.duration > 0) {
		o.opacity = o.target
		return
	}
	o.tween = gween.New(float32(o.opacity), float32(o.target), float32(o.pending.duration), o.pending.fn)
}
