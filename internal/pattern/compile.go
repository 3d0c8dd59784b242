package pattern

import (
	"fmt"

	"amigurumi/internal/profile"
	"amigurumi/internal/stitch"
)

// Compile runs the whole profile-to-pattern pipeline: build the
// silhouette curve, plan per-row stitch targets, distribute each row's
// delta into stitch actions, and derive the aggregate metadata.
//
// Planned targets are clamped into the band a single row transition
// can physically absorb (a round can at most double or halve), and the
// achieved count is carried forward; steep profile sections therefore
// converge on the planned circumference over a few rows instead of
// producing unworkable jumps.
func Compile(anchors []profile.Anchor, cfg Config) (*Pattern, error) {
	if vs := ValidateConfig(cfg); len(vs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, vs[0].Message)
	}

	curve, err := profile.Build(anchors)
	if err != nil {
		return nil, err
	}

	counts, err := Plan(curve, cfg)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(counts))
	start := counts[0]
	rows = append(rows, Row{
		Number:      1,
		TargetCount: start,
		Actions:     startActions(start),
	})

	prev := start
	for i := 1; i < len(counts); i++ {
		target := clampTarget(prev, counts[i])
		rows = append(rows, Row{
			Number:      i + 1,
			TargetCount: target,
			Actions:     stitch.Distribute(prev, target, cfg.DecreaseStyle),
		})
		prev = target
	}

	return &Pattern{
		Rows:     rows,
		Metadata: Aggregate(rows, cfg),
	}, nil
}

func startActions(n int) []stitch.Action {
	actions := make([]stitch.Action, n)
	for i := range actions {
		actions[i] = stitch.Sc
	}
	return actions
}

func clampTarget(prev, target int) int {
	if lo := prev - stitch.MaxDecrease(prev); target < lo {
		return lo
	}
	if hi := prev + stitch.MaxIncrease(prev); target > hi {
		return hi
	}
	return target
}
