package profile

import (
	"math"

	"amigurumi/internal/geom"
)

// Check validates an anchor list against the closed-solid invariants
// without building a curve. The editor is expected to keep anchors
// ordered, but the compiler re-validates defensively.
func Check(anchors []Anchor) error {
	if len(anchors) < 3 {
		return ErrTooFewPoints
	}
	for i := 1; i < len(anchors); i++ {
		if anchors[i].HeightCM <= anchors[i-1].HeightCM {
			return ErrNotMonotonic
		}
	}
	if anchors[0].RadiusCM != 0 || anchors[len(anchors)-1].RadiusCM != 0 {
		return ErrOpenPole
	}
	return nil
}

// Build fits an interpolating spline through the anchors and returns
// it as a run of cubic Bézier segments.
//
// Tangents are Catmull-Rom at interior anchors, limited per component
// so that height stays monotonic within every span and radius never
// overshoots past a flat or extremal anchor (the Fritsch-Carlson
// condition). At the two poles the tangent is purely radial, so the
// silhouette meets the revolution axis perpendicular to it and the
// closed solid has no kink at either end.
func Build(anchors []Anchor) (*Curve, error) {
	if err := Check(anchors); err != nil {
		return nil, err
	}

	n := len(anchors)
	pts := make([]geom.Point, n)
	for i, a := range anchors {
		pts[i] = geom.Pt(a.RadiusCM, a.HeightCM)
	}

	tans := make([]geom.Point, n)
	for i := range pts {
		switch i {
		case 0:
			tans[i] = geom.Pt(pts[1].X-pts[0].X, 0)
		case n - 1:
			tans[i] = geom.Pt(pts[n-1].X-pts[n-2].X, 0)
		default:
			prev, next := pts[i-1], pts[i+1]
			m := next.Sub(prev).Mul(0.5)
			m.X = limitTangent(m.X, pts[i].X-prev.X, next.X-pts[i].X)
			m.Y = limitTangent(m.Y, pts[i].Y-prev.Y, next.Y-pts[i].Y)
			tans[i] = m
		}
	}

	segs := make([]geom.CubicBez, 0, n-1)
	for i := 0; i < n-1; i++ {
		segs = append(segs, geom.FromHermite(pts[i], pts[i+1], tans[i], tans[i+1]))
	}
	return &Curve{segs: segs}, nil
}

// limitTangent caps a Catmull-Rom tangent component so the cubic span
// on either side stays monotonic in that component. A flat or extremal
// anchor (adjacent deltas of opposite sign or zero) gets a zero
// tangent there.
func limitTangent(m, dLeft, dRight float64) float64 {
	if dLeft*dRight <= 0 {
		return 0
	}
	lim := 3.0 * math.Min(math.Abs(dLeft), math.Abs(dRight))
	if math.Abs(m) > lim {
		return math.Copysign(lim, m)
	}
	return m
}
