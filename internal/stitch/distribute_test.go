package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sums(actions []Action) (consumed, net, marked int) {
	for _, a := range actions {
		consumed += a.Consumes()
		net += a.Delta()
		if a != Sc {
			marked++
		}
	}
	return consumed, net, marked
}

func TestDistributePlainRow(t *testing.T) {
	actions := Distribute(12, 12, DecreaseInvisible)
	require.Len(t, actions, 12)
	for _, a := range actions {
		assert.Equal(t, Sc, a)
	}
}

func TestDistributeIncreaseConservation(t *testing.T) {
	for prev := 3; prev <= 40; prev++ {
		for delta := 0; delta <= prev; delta++ {
			actions := Distribute(prev, prev+delta, DecreaseInvisible)
			consumed, net, marked := sums(actions)
			require.Equal(t, prev, consumed, "prev=%d delta=%d", prev, delta)
			require.Equal(t, delta, net, "prev=%d delta=%d", prev, delta)
			require.Equal(t, delta, marked, "prev=%d delta=%d", prev, delta)
		}
	}
}

func TestDistributeDecreaseConservation(t *testing.T) {
	for prev := 4; prev <= 40; prev++ {
		for d := 0; d <= prev/2; d++ {
			actions := Distribute(prev, prev-d, DecreaseInvisible)
			consumed, net, marked := sums(actions)
			require.Equal(t, prev, consumed, "prev=%d d=%d", prev, d)
			require.Equal(t, -d, net, "prev=%d d=%d", prev, d)
			require.Equal(t, d, marked, "prev=%d d=%d", prev, d)
		}
	}
}

func TestDistributeEvenSpacing(t *testing.T) {
	// Marks must never be adjacent unless the delta forces it.
	for prev := 6; prev <= 36; prev += 3 {
		for delta := 1; delta <= prev/2; delta++ {
			actions := Distribute(prev, prev+delta, DecreaseInvisible)
			last := -2
			for i, a := range actions {
				if a != Inc {
					continue
				}
				require.Greater(t, i-last, 1, "prev=%d delta=%d adjacent marks", prev, delta)
				last = i
			}
		}
	}
}

func TestDistributeDecreaseStyle(t *testing.T) {
	invisible := Distribute(12, 6, DecreaseInvisible)
	classic := Distribute(12, 6, DecreaseClassic)
	assert.Contains(t, invisible, InvDec)
	assert.NotContains(t, invisible, Dec)
	assert.Contains(t, classic, Dec)
	assert.NotContains(t, classic, InvDec)
}

func TestDistributeInfeasibleDeltaPanics(t *testing.T) {
	assert.Panics(t, func() { Distribute(6, 13, DecreaseInvisible) })
	assert.Panics(t, func() { Distribute(6, 2, DecreaseInvisible) })
	assert.Panics(t, func() { Distribute(0, 3, DecreaseInvisible) })
}
