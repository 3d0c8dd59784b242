// Package pattern turns a revolution profile and a gauge into a
// row-by-row amigurumi pattern: per-row stitch actions plus aggregate
// metadata. Compilation is pure and deterministic; the same profile
// and config always produce the same pattern.
package pattern

import "amigurumi/internal/stitch"

// Gauge is the stitch density of a yarn/hook/tension combination.
type Gauge struct {
	StitchesPerCM float64
	RowsPerCM     float64
	HookSizeMM    float64
}

// Config is the caller-owned compilation input besides the profile.
type Config struct {
	TotalHeightCM float64
	Gauge         Gauge
	DecreaseStyle stitch.DecreaseStyle
}

// Row is one worked round. Row 1 is always the gathered start and its
// actions are all Sc. Rows are immutable once emitted.
type Row struct {
	Number      int
	TargetCount int
	Actions     []stitch.Action
}

// Metadata is derived from the compiled rows, never constructed
// independently.
type Metadata struct {
	TotalRows            int
	TotalStitches        uint64
	EstimatedTimeMinutes float64
	YarnLengthMeters     float64
}

// Pattern is the compiler's single output artifact. It is owned
// exclusively by the caller after Compile returns.
type Pattern struct {
	Rows     []Row
	Metadata Metadata
}
