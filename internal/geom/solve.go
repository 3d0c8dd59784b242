package geom

import "math"

// SolveITP finds a zero-crossing of f on [a, b] using the ITP method
// (interpolate, truncate, project), which combines the secant step's
// average-case speed with bisection's worst-case bound.
//
// ya and yb are f(a) and f(b), passed in because callers usually know
// them already. It is assumed that ya < 0 and yb > 0. The result is
// within epsilon of the true root when f is monotonic on the bracket.
//
// k2 is hardwired to 2; k1 = 0.2/(b-a) and n0 = 1 are good defaults
// for smooth curve problems.
func SolveITP(f func(float64) float64, a, b, epsilon float64, n0 int, k1, ya, yb float64) float64 {
	nHalf := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	scaledEpsilon := epsilon * float64(uint64(1)<<(n0+nHalf))
	for b-a > 2.0*epsilon {
		mid := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		secant := (yb*a - ya*b) / (yb - ya)
		sigma := mid - secant
		delta := k1 * (b - a) * (b - a)
		xt := mid
		if delta <= math.Abs(sigma) {
			xt = secant + math.Copysign(delta, sigma)
		}
		xITP := xt
		if math.Abs(xt-mid) > r {
			xITP = mid - math.Copysign(r, sigma)
		}
		yITP := f(xITP)
		switch {
		case yITP > 0.0:
			b, yb = xITP, yITP
		case yITP < 0.0:
			a, ya = xITP, yITP
		default:
			return xITP
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}
