package warp

import "math"

// At returns the pulse intensity at clock time t.
func (p PulseConfig) At(t float64) float64 {
	return p.Base + math.Sin(t*p.Frequency)*p.Amplitude
}

// Spin advances an idle rotation about Y by speed·dt radians.
func Spin(rot Vec3, speed, dt float64) Vec3 {
	if !(dt > 0) {
		return rot
	}
	rot.Y += speed * dt
	return rot
}
