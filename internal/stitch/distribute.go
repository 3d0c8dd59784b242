package stitch

import "fmt"

// MaxIncrease and MaxDecrease bound the delta a single row transition
// can absorb: a row can at most double (increase into every base
// stitch) and at most shrink by half (decrease over every pair).
func MaxIncrease(prev int) int { return prev }
func MaxDecrease(prev int) int { return prev / 2 }

// Distribute spreads the stitch-count change from prev to target
// evenly around a round and returns the resulting action sequence.
//
// Marked positions are chosen with a Bresenham-style accumulator, so
// increases or decreases land with at most one slot of placement error
// and are never adjacent unless the delta itself forces it.
//
// The caller must keep target within [prev-MaxDecrease(prev),
// prev+MaxIncrease(prev)]; the row planner clamps targets into that
// band. Violations, like the conservation checks at the end, indicate
// a planner bug and panic rather than returning an error.
func Distribute(prev, target int, style DecreaseStyle) []Action {
	if prev < 1 {
		panic(fmt.Sprintf("stitch: previous row count %d out of range", prev))
	}
	delta := target - prev

	var actions []Action
	switch {
	case delta == 0:
		actions = make([]Action, prev)
		for i := range actions {
			actions[i] = Sc
		}
	case delta > 0:
		if delta > MaxIncrease(prev) {
			panic(fmt.Sprintf("stitch: cannot grow %d stitches to %d in one row", prev, target))
		}
		actions = mark(prev, delta, Inc)
	default:
		if -delta > MaxDecrease(prev) {
			panic(fmt.Sprintf("stitch: cannot shrink %d stitches to %d in one row", prev, target))
		}
		// A decrease eats two base stitches, so the row has
		// prev+delta action slots rather than prev.
		actions = mark(prev+delta, -delta, style.action())
	}

	consumed, net := 0, 0
	for _, a := range actions {
		consumed += a.Consumes()
		net += a.Delta()
	}
	if consumed != prev || net != delta {
		panic(fmt.Sprintf("stitch: distribution consumed %d of %d base stitches with net %d (want %d)",
			consumed, prev, net, delta))
	}
	return actions
}

// mark emits slots actions of which count are marked with the given
// action and the rest are Sc, spacing the marks as evenly as the
// integer grid allows.
func mark(slots, count int, marked Action) []Action {
	actions := make([]Action, 0, slots)
	acc := 0
	for i := 0; i < slots; i++ {
		acc += count
		if acc >= slots {
			acc -= slots
			actions = append(actions, marked)
		} else {
			actions = append(actions, Sc)
		}
	}
	return actions
}
