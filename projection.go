package warp

import "math"

// nearPlane is the closest view depth that still projects.
const nearPlane = 0.1

var worldUp = Vec3{X: 0, Y: 1, Z: 0}

// Viewport describes a perspective projection onto a screen rectangle of
// Width×Height pixels with a vertical field of view of FOV degrees.
type Viewport struct {
	Width, Height float64
	FOV           float64
}

// viewBasis returns the camera's right, up and forward unit vectors.
func viewBasis(cam Camera) (right, up, fwd Vec3) {
	fwd = cam.LookAt.Sub(cam.Position).Normalize()
	if fwd.Norm() == 0 {
		fwd = Vec3{Z: -1}
	}
	right = fwd.Cross(worldUp).Normalize()
	if right.Norm() == 0 {
		// Looking straight up or down.
		right = Vec3{X: 1}
	}
	up = right.Cross(fwd)
	return right, up, fwd
}

// Project converts a world point to screen coordinates as seen from cam.
// ok is false when the point is behind the near plane.
func (v Viewport) Project(cam Camera, p Vec3) (s Vec2, ok bool) {
	right, up, fwd := viewBasis(cam)
	d := p.Sub(cam.Position)
	z := d.Dot(fwd)
	if !(z > nearPlane) {
		return Vec2{}, false
	}
	focal := (v.Height / 2) / math.Tan(v.FOV*math.Pi/360)
	return Vec2{
		X: v.Width/2 + d.Dot(right)*focal/z,
		Y: v.Height/2 - d.Dot(up)*focal/z,
	}, true
}
