package warp

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GainRamp holds an auxiliary gain at 1 for Delay seconds of elapsed run
// time, then ramps it linearly to 0 over Fade seconds.
type GainRamp struct {
	Delay float64
	Fade  float64

	tween *gween.Tween
}

// NewGainRamp creates a GainRamp with the given delay and fade window.
func NewGainRamp(delay, fade float64) *GainRamp {
	g := &GainRamp{Delay: delay, Fade: fade}
	if fade > 0 {
		g.tween = gween.New(1, 0, float32(fade), ease.Linear)
	}
	return g
}

// At returns the gain for the given elapsed run time, in [0, 1].
func (g *GainRamp) At(elapsed float64) float64 {
	if !(elapsed > g.Delay) {
		return 1
	}
	if g.tween == nil {
		return 0
	}
	val, _ := g.tween.Set(float32(elapsed - g.Delay))
	return Clamp01(float64(val))
}
