package warp

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// RotationDamper eases an Euler rotation back to rest with a critically
// damped spring per axis. SmoothTime is roughly the time to cover most of
// the distance; the spring's angular frequency is 2/SmoothTime.
//
// Each axis settles on the rest angle nearest to its current value (the
// closest multiple of 2π), so an object that spun many turns unwinds by
// less than half a turn. For angles within ±π the rest angle is 0.
type RotationDamper struct {
	SmoothTime float64

	vel Vec3
}

// Step advances the damper by delta seconds and returns the new rotation.
// Non-positive or NaN deltas leave rot unchanged. Non-finite
// components of rot are treated as 0. An infinite delta, or a
// non-positive SmoothTime, snaps to rest.
func (d *RotationDamper) Step(rot Vec3, delta float64) Vec3 {
	if !(delta > 0) {
		return rot
	}
	rot = sanitize(rot)
	if math.IsInf(delta, 1) || !(d.SmoothTime > 0) {
		d.vel = Vec3{}
		return Vec3{X: restAngle(rot.X), Y: restAngle(rot.Y), Z: restAngle(rot.Z)}
	}

	spring := harmonica.NewSpring(delta, 2/d.SmoothTime, 1.0)
	var out Vec3
	out.X, d.vel.X = spring.Update(rot.X, d.vel.X, restAngle(rot.X))
	out.Y, d.vel.Y = spring.Update(rot.Y, d.vel.Y, restAngle(rot.Y))
	out.Z, d.vel.Z = spring.Update(rot.Z, d.vel.Z, restAngle(rot.Z))
	return out
}

// Reset clears the carried velocity.
func (d *RotationDamper) Reset() {
	d.vel = Vec3{}
}

// restAngle returns the multiple of 2π nearest to a.
func restAngle(a float64) float64 {
	if math.Abs(a) <= math.Pi {
		return 0
	}
	return 2 * math.Pi * math.Round(a/(2*math.Pi))
}

// sanitize replaces non-finite components with 0.
func sanitize(v Vec3) Vec3 {
	if !finite(v.X) {
		v.X = 0
	}
	if !finite(v.Y) {
		v.Y = 0
	}
	if !finite(v.Z) {
		v.Z = 0
	}
	return v
}
