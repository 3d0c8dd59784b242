package profile

import (
	"math"
	"sort"

	"amigurumi/internal/geom"
)

// heightTolCM is the absolute tolerance, in centimeters, to which a
// height query is solved along a segment.
const heightTolCM = 1e-4

// RadiusAt returns the silhouette radius at height h, or false when h
// lies outside [MinHeight, MaxHeight] or the curve data turns out to
// be malformed. Callers treat the latter as a fatal compilation
// defect, not a retryable condition.
func (c *Curve) RadiusAt(h float64) (float64, bool) {
	if len(c.segs) == 0 || h < c.MinHeight() || h > c.MaxHeight() {
		return 0, false
	}

	// Segment boundaries are strictly increasing, so the first segment
	// whose end height reaches h contains it.
	i := sort.Search(len(c.segs), func(i int) bool {
		return c.segs[i].P3.Y >= h
	})
	if i == len(c.segs) {
		return 0, false
	}
	seg := c.segs[i]

	t, ok := solveHeight(seg, h)
	if !ok {
		return 0, false
	}
	r := seg.Eval(t).X
	if math.IsNaN(r) {
		return 0, false
	}
	// Interpolation may dip a hair below the axis right at a pole.
	return math.Max(r, 0), true
}

// solveHeight finds t in [0, 1] with seg height equal to h. The
// segment is height-monotonic, so the root is unique; ITP converges to
// tolerance regardless of how flat the segment is.
func solveHeight(seg geom.CubicBez, h float64) (float64, bool) {
	f := func(t float64) float64 { return seg.EvalY(t) - h }
	ya, yb := f(0), f(1)
	switch {
	case ya >= 0 && yb >= 0:
		if ya > heightTolCM {
			return 0, false
		}
		return 0, true
	case ya <= 0 && yb <= 0:
		if yb < -heightTolCM {
			return 0, false
		}
		return 1, true
	}
	t := geom.SolveITP(f, 0, 1, 1e-7, 1, 0.2, ya, yb)
	if math.IsNaN(t) || math.Abs(f(t)) > heightTolCM {
		return 0, false
	}
	return t, true
}
