package geom

// CubicBez is a cubic Bézier segment defined by four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the segment at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := c.P0.Mul(mt * mt * mt)
	b := c.P1.Mul(3.0 * mt * mt * t)
	d := c.P2.Mul(3.0 * mt * t * t)
	e := c.P3.Mul(t * t * t)
	return a.Add(b).Add(d).Add(e)
}

// EvalY evaluates only the Y component at parameter t. The profile
// sampler calls this in a tight solver loop, so it avoids building the
// full point.
func (c CubicBez) EvalY(t float64) float64 {
	mt := 1.0 - t
	return c.P0.Y*mt*mt*mt +
		3.0*c.P1.Y*mt*mt*t +
		3.0*c.P2.Y*mt*t*t +
		c.P3.Y*t*t*t
}

// FromHermite converts a Hermite span (endpoints plus endpoint
// tangents) into the equivalent cubic Bézier segment.
func FromHermite(p0, p1, m0, m1 Point) CubicBez {
	return CubicBez{
		P0: p0,
		P1: p0.Add(m0.Mul(1.0 / 3.0)),
		P2: p1.Sub(m1.Mul(1.0 / 3.0)),
		P3: p1,
	}
}
