// Package profile builds a smooth, closed revolution silhouette from
// user-placed anchor points and answers radius queries against it.
//
// Coordinates are physical centimeters: X is radius (distance from the
// revolution axis), Y is height along the axis. Any on-screen scaling
// happens before anchors reach this package.
package profile

import "amigurumi/internal/geom"

// Anchor is a single user-placed point of the silhouette.
type Anchor struct {
	RadiusCM float64
	HeightCM float64
}

// Curve is the silhouette as an ordered run of cubic Bézier segments.
// Segments are height-monotonic and consecutive segments share an
// endpoint, so "radius at height h" is single-valued. A Curve is
// immutable after Build returns it.
type Curve struct {
	segs []geom.CubicBez
}

// MinHeight returns the height of the lower pole.
func (c *Curve) MinHeight() float64 {
	return c.segs[0].P0.Y
}

// MaxHeight returns the height of the upper pole.
func (c *Curve) MaxHeight() float64 {
	return c.segs[len(c.segs)-1].P3.Y
}

// Segments returns the number of Bézier segments in the curve.
func (c *Curve) Segments() int {
	return len(c.segs)
}
