package pattern

// Per-stitch estimation constants, calibrated against worsted-weight
// swatches rather than recovered from any exact formula. A single
// crochet consumes roughly four times its own width in yarn plus a
// little extra for thicker hooks, and finer hooks work slower.
const (
	yarnWidthsPerStitch = 4.0
	yarnHookFactorCM    = 0.06 // extra cm of yarn per mm of hook
	secondsPerStitchMin = 1.2
	secondsHookFactor   = 11.0 // divided by hook mm: finer hooks are fiddlier
)

// Aggregate derives the pattern's summary metadata from its rows and
// the gauge.
func Aggregate(rows []Row, cfg Config) Metadata {
	var total uint64
	for _, row := range rows {
		total += uint64(row.TargetCount)
	}

	yarnPerStitchCM := yarnWidthsPerStitch/cfg.Gauge.StitchesPerCM +
		yarnHookFactorCM*cfg.Gauge.HookSizeMM
	secondsPerStitch := secondsPerStitchMin + secondsHookFactor/cfg.Gauge.HookSizeMM

	return Metadata{
		TotalRows:            len(rows),
		TotalStitches:        total,
		EstimatedTimeMinutes: float64(total) * secondsPerStitch / 60.0,
		YarnLengthMeters:     float64(total) * yarnPerStitchCM / 100.0,
	}
}
