package stitch

import (
	"fmt"
	"strings"
)

// DescribeRow renders a row's action sequence as compact crochet
// notation. Row 1 is the gathered start and reads as a whole; every
// other row is described by its shortest repeating block when one
// exists, falling back to a plain run-length encoding.
//
// The description is display-only; stitch counts are always carried by
// the raw actions, never re-derived from this string.
func DescribeRow(rowNumber int, actions []Action) string {
	if rowNumber == 1 {
		return fmt.Sprintf("%d single crochet into starting loop", len(actions))
	}
	return describe(actions)
}

func describe(actions []Action) string {
	n := len(actions)
	if n == 0 {
		return ""
	}
	for l := 1; l <= n/2; l++ {
		if n%l != 0 {
			continue
		}
		if repeatsEvery(actions, l) {
			return fmt.Sprintf("[%s] repeated %d times", runLength(actions[:l]), n/l)
		}
	}
	return runLength(actions)
}

// repeatsEvery reports whether the sequence is the first l actions
// repeated end to end.
func repeatsEvery(actions []Action, l int) bool {
	for i := l; i < len(actions); i++ {
		if actions[i] != actions[i-l] {
			return false
		}
	}
	return true
}

// runLength collapses consecutive equal actions into "<count> <name>"
// tokens joined by commas, in a single left-to-right pass.
func runLength(actions []Action) string {
	var b strings.Builder
	cur, run := actions[0], 1
	flush := func() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d %s", run, cur)
	}
	for _, a := range actions[1:] {
		if a == cur {
			run++
			continue
		}
		flush()
		cur, run = a, 1
	}
	flush()
	return b.String()
}
