package pattern

import (
	"fmt"
	"math"

	"amigurumi/internal/profile"
)

const (
	// minRowStitches is the smallest workable round.
	minRowStitches = 3
	// startMinStitches is the practical minimum for single crochets
	// worked into a gathered starting loop.
	startMinStitches = 4
)

// Plan samples the curve at one height per row and returns the raw
// target stitch count sequence, one entry per row. Targets come
// straight from each row's circumference; feasibility against the
// previous row is the distributor's concern, applied during Compile.
func Plan(curve *profile.Curve, cfg Config) ([]int, error) {
	rowCount := int(math.Round(cfg.TotalHeightCM * cfg.Gauge.RowsPerCM))
	if rowCount < 2 {
		rowCount = 2
	}

	counts := make([]int, 0, rowCount+1)
	for i := 0; i <= rowCount; i++ {
		h := math.Min(float64(i)/cfg.Gauge.RowsPerCM, curve.MaxHeight())
		r, ok := curve.RadiusAt(h)
		if !ok {
			return nil, fmt.Errorf("plan row %d at height %.4f: %w", i+1, h, ErrHeightOutOfRange)
		}
		n := int(math.Round(2 * math.Pi * r * cfg.Gauge.StitchesPerCM))
		if n < minRowStitches {
			n = minRowStitches
		}
		if i == 0 && n < startMinStitches {
			n = startMinStitches
		}
		counts = append(counts, n)
	}
	return counts, nil
}
