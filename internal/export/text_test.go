package export

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amigurumi/internal/pattern"
	"amigurumi/internal/profile"
)

func TestTextRendering(t *testing.T) {
	anchors := []profile.Anchor{
		{RadiusCM: 0, HeightCM: 0},
		{RadiusCM: 3, HeightCM: 3},
		{RadiusCM: 0, HeightCM: 6},
	}
	cfg := pattern.Config{
		TotalHeightCM: 6,
		Gauge:         pattern.Gauge{StitchesPerCM: 1.5, RowsPerCM: 1, HookSizeMM: 3.5},
	}
	p, err := pattern.Compile(anchors, cfg)
	require.NoError(t, err)

	text := Text(p, cfg)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	assert.Contains(t, lines[0], "6.0 cm tall")
	assert.Contains(t, lines[1], "1.5 sts x 1.0 rows per cm")
	assert.Contains(t, lines[2], "invisible")

	assert.Contains(t, text, "Rnd 1: ")
	assert.Contains(t, text, "single crochet into starting loop")
	for _, row := range p.Rows {
		assert.Contains(t, text, fmt.Sprintf("Rnd %d: ", row.Number))
		assert.Contains(t, text, fmt.Sprintf("(%d)", row.TargetCount))
	}
	assert.Contains(t, text, "Fasten off")
}
