// Package stitch defines the single-crochet stitch vocabulary and the
// two row-level transforms on it: distributing an increase/decrease
// delta evenly around a row, and compressing a row's action sequence
// into compact human-readable notation.
package stitch

import "fmt"

// Action is one worked stitch in a round.
type Action uint8

const (
	// Sc is a plain single crochet: one stitch in, one out.
	Sc Action = iota
	// Inc works two stitches into one base stitch (net +1).
	Inc
	// Dec is a classic single-crochet decrease over two base stitches
	// (net -1).
	Dec
	// InvDec is the invisible decrease: same stitch arithmetic as Dec,
	// different worked technique.
	InvDec
)

// Delta returns the action's net effect on the row's stitch count.
func (a Action) Delta() int {
	switch a {
	case Sc:
		return 0
	case Inc:
		return 1
	case Dec, InvDec:
		return -1
	}
	panic(fmt.Sprintf("stitch: unknown action %d", a))
}

// Consumes returns how many base stitches of the previous row the
// action works into.
func (a Action) Consumes() int {
	switch a {
	case Sc, Inc:
		return 1
	case Dec, InvDec:
		return 2
	}
	panic(fmt.Sprintf("stitch: unknown action %d", a))
}

func (a Action) String() string {
	switch a {
	case Sc:
		return "sc"
	case Inc:
		return "inc"
	case Dec:
		return "dec"
	case InvDec:
		return "inv dec"
	}
	panic(fmt.Sprintf("stitch: unknown action %d", a))
}

// DecreaseStyle selects which decrease technique a pattern uses. Both
// styles have identical stitch arithmetic.
type DecreaseStyle uint8

const (
	// DecreaseInvisible is the amigurumi default; it leaves no visible
	// gap on the fabric's right side.
	DecreaseInvisible DecreaseStyle = iota
	// DecreaseClassic is the ordinary sc2tog decrease.
	DecreaseClassic
)

func (s DecreaseStyle) action() Action {
	if s == DecreaseClassic {
		return Dec
	}
	return InvDec
}

func (s DecreaseStyle) String() string {
	if s == DecreaseClassic {
		return "classic"
	}
	return "invisible"
}
