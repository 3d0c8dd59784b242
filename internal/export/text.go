// Package export renders a compiled pattern as plain text for
// clipboard and file export. It reads the pattern and config
// read-only.
package export

import (
	"fmt"
	"strings"

	"amigurumi/internal/pattern"
	"amigurumi/internal/stitch"
)

// Text renders the whole pattern: a header with gauge and estimates,
// then one line per round with its instruction and resulting stitch
// count.
func Text(p *pattern.Pattern, cfg pattern.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Amigurumi pattern (%.1f cm tall, worked in continuous rounds)\n", cfg.TotalHeightCM)
	fmt.Fprintf(&b, "Gauge: %.1f sts x %.1f rows per cm, %.1f mm hook\n",
		cfg.Gauge.StitchesPerCM, cfg.Gauge.RowsPerCM, cfg.Gauge.HookSizeMM)
	fmt.Fprintf(&b, "Decreases: %s\n", cfg.DecreaseStyle)
	fmt.Fprintf(&b, "%d rounds, %d stitches, ~%.0f min, ~%.1f m of yarn\n",
		p.Metadata.TotalRows, p.Metadata.TotalStitches,
		p.Metadata.EstimatedTimeMinutes, p.Metadata.YarnLengthMeters)
	b.WriteString("\n")

	for _, row := range p.Rows {
		fmt.Fprintf(&b, "Rnd %d: %s (%d)\n",
			row.Number, stitch.DescribeRow(row.Number, row.Actions), row.TargetCount)
	}
	b.WriteString("\nFasten off, leaving a long tail for closing.\n")
	return b.String()
}
