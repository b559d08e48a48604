package warp

import "github.com/tanema/gween/ease"

// Smoothstep is the cubic ease t²(3-2t). It has zero slope at both ends and
// maps 0→0, 0.5→0.5, 1→1. Callers clamp t to [0, 1] first.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// SmoothstepTween is Smoothstep in gween's (t, begin, change, duration) form,
// so it can be handed to gween.New, Camera-style scroll tweens, or a
// TransitionOverlay.
var SmoothstepTween ease.TweenFunc = func(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	p := float64(t / d)
	return b + c*float32(Smoothstep(Clamp01(p)))
}
