package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 3), Pt(3, 3)}
	assert.Equal(t, c.P0, c.Eval(0))
	assert.Equal(t, c.P3, c.Eval(1))
}

func TestCubicBezEvalLine(t *testing.T) {
	// Control points on a straight line keep the curve on that line.
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		p := c.Eval(tt)
		assert.InDelta(t, p.X, p.Y, 1e-12)
	}
}

func TestEvalYMatchesEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0.5, 2), Pt(2.5, 2.2), Pt(3, 6)}
	for _, tt := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
		assert.InDelta(t, c.Eval(tt).Y, c.EvalY(tt), 1e-12)
	}
}

func TestFromHermite(t *testing.T) {
	p0, p1 := Pt(0, 0), Pt(3, 3)
	m0, m1 := Pt(3, 0), Pt(0, 3)
	c := FromHermite(p0, p1, m0, m1)
	assert.Equal(t, p0, c.P0)
	assert.Equal(t, p1, c.P3)
	// Endpoint derivatives are 3*(P1-P0) and 3*(P3-P2).
	assert.Equal(t, m0, c.P1.Sub(c.P0).Mul(3))
	assert.Equal(t, m1, c.P3.Sub(c.P2).Mul(3))
}

func TestSolveITPCubeRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 8.0 }
	x := SolveITP(f, 1.0, 3.0, 1e-10, 1, 0.1, f(1.0), f(3.0))
	require.InDelta(t, 2.0, x, 1e-9)
}

func TestSolveITPBezierHeight(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(2, 0), Pt(3, 2), Pt(3, 4)}
	const h = 1.7
	f := func(tt float64) float64 { return c.EvalY(tt) - h }
	tt := SolveITP(f, 0, 1, 1e-7, 1, 0.2, f(0), f(1))
	require.InDelta(t, h, c.EvalY(tt), 1e-4)
	require.False(t, math.IsNaN(tt))
}
