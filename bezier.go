package warp

// QuadraticBezier evaluates (1-t)²·p0 + 2(1-t)t·p1 + t²·p2 component-wise.
// t must already be in [0, 1].
func QuadraticBezier(p0, p1, p2 Vec3, t float64) Vec3 {
	u := 1 - t
	return p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
}

// Curve holds the two fixed control points of a quadratic Bézier path. The
// first control point is supplied at evaluation time, since animators
// capture it from live state when a run starts.
type Curve struct {
	P1 Vec3 `yaml:"p1"`
	P2 Vec3 `yaml:"p2"`
}

// At evaluates the curve from start p0 at t.
func (c Curve) At(p0 Vec3, t float64) Vec3 {
	return QuadraticBezier(p0, c.P1, c.P2, t)
}
