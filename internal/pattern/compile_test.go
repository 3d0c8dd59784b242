package pattern

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amigurumi/internal/profile"
	"amigurumi/internal/stitch"
)

func testConfig() Config {
	return Config{
		TotalHeightCM: 6,
		Gauge:         Gauge{StitchesPerCM: 2, RowsPerCM: 1, HookSizeMM: 3},
	}
}

func teardropAnchors() []profile.Anchor {
	return []profile.Anchor{
		{RadiusCM: 0, HeightCM: 0},
		{RadiusCM: 3, HeightCM: 2},
		{RadiusCM: 4, HeightCM: 4},
		{RadiusCM: 0, HeightCM: 6},
	}
}

func cylinderAnchors() []profile.Anchor {
	return []profile.Anchor{
		{RadiusCM: 0, HeightCM: 0},
		{RadiusCM: 2, HeightCM: 0.01},
		{RadiusCM: 2, HeightCM: 5.99},
		{RadiusCM: 0, HeightCM: 6},
	}
}

func checkRowConservation(t *testing.T, prev int, row Row) {
	t.Helper()
	consumed, net := 0, 0
	for _, a := range row.Actions {
		consumed += a.Consumes()
		net += a.Delta()
	}
	require.Equal(t, prev, consumed, "row %d", row.Number)
	require.Equal(t, row.TargetCount-prev, net, "row %d", row.Number)
}

func TestPlanTeardrop(t *testing.T) {
	curve, err := profile.Build(teardropAnchors())
	require.NoError(t, err)

	counts, err := Plan(curve, testConfig())
	require.NoError(t, err)

	// rowsPerCm 1 over 6 cm: rows at heights 0..6 inclusive.
	require.Len(t, counts, 7)
	// Pole row gets the gathered-start minimum.
	assert.Equal(t, 4, counts[0])
	// Closing row samples radius 0 and clamps to the round minimum.
	assert.Equal(t, 3, counts[6])
	// Circumference rises to the widest row then falls.
	assert.Less(t, counts[1], counts[2])
	assert.Less(t, counts[2], counts[3])
	assert.Greater(t, counts[4], counts[5])
}

func TestCompileTeardrop(t *testing.T) {
	p, err := Compile(teardropAnchors(), testConfig())
	require.NoError(t, err)
	require.Len(t, p.Rows, 7)

	// Row 1 is the gathered start: all Sc, numbered from 1.
	first := p.Rows[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 4, first.TargetCount)
	for _, a := range first.Actions {
		assert.Equal(t, stitch.Sc, a)
	}

	// Increase rows come before decrease rows, and every transition
	// conserves base stitches.
	sawInc, sawDec := false, false
	lastInc, firstDec := -1, len(p.Rows)
	prev := first.TargetCount
	for i, row := range p.Rows[1:] {
		require.Equal(t, i+2, row.Number)
		checkRowConservation(t, prev, row)
		for _, a := range row.Actions {
			switch a {
			case stitch.Inc:
				sawInc = true
				lastInc = i
			case stitch.Dec, stitch.InvDec:
				sawDec = true
				if i < firstDec {
					firstDec = i
				}
			}
		}
		prev = row.TargetCount
	}
	assert.True(t, sawInc)
	assert.True(t, sawDec)
	assert.Less(t, lastInc, firstDec, "increase rows must precede decrease rows")
}

func TestCompileCylinder(t *testing.T) {
	p, err := Compile(cylinderAnchors(), testConfig())
	require.NoError(t, err)
	require.Len(t, p.Rows, 7)

	// The body settles at round(2*pi*2*2) = 25 stitches and holds it
	// with plain Sc rows until the closing decreases.
	plain := 0
	for _, row := range p.Rows[1:] {
		allSc := true
		for _, a := range row.Actions {
			if a != stitch.Sc {
				allSc = false
				break
			}
		}
		if allSc {
			plain++
			assert.Equal(t, 25, row.TargetCount)
		}
	}
	assert.GreaterOrEqual(t, plain, 2, "delta == 0 branch must run over consecutive rows")

	prev := p.Rows[0].TargetCount
	for _, row := range p.Rows[1:] {
		checkRowConservation(t, prev, row)
		prev = row.TargetCount
	}
}

func TestCompileSteepJumpIsClamped(t *testing.T) {
	p, err := Compile(cylinderAnchors(), testConfig())
	require.NoError(t, err)

	prev := p.Rows[0].TargetCount
	for _, row := range p.Rows[1:] {
		assert.LessOrEqual(t, row.TargetCount, 2*prev, "row %d", row.Number)
		assert.GreaterOrEqual(t, row.TargetCount, prev-prev/2, "row %d", row.Number)
		prev = row.TargetCount
	}
}

func TestCompileIdempotent(t *testing.T) {
	a, err := Compile(teardropAnchors(), testConfig())
	require.NoError(t, err)
	b, err := Compile(teardropAnchors(), testConfig())
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb)
}

func TestCompileRejectsBadInput(t *testing.T) {
	_, err := Compile([]profile.Anchor{{RadiusCM: 0, HeightCM: 0}, {RadiusCM: 0, HeightCM: 6}}, testConfig())
	require.ErrorIs(t, err, profile.ErrTooFewPoints)

	cfg := testConfig()
	cfg.Gauge.StitchesPerCM = 0
	_, err = Compile(teardropAnchors(), cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAggregate(t *testing.T) {
	rows := []Row{
		{Number: 1, TargetCount: 4},
		{Number: 2, TargetCount: 8},
		{Number: 3, TargetCount: 8},
	}
	md := Aggregate(rows, testConfig())
	assert.Equal(t, 3, md.TotalRows)
	assert.Equal(t, uint64(20), md.TotalStitches)
	assert.Greater(t, md.EstimatedTimeMinutes, 0.0)
	assert.Greater(t, md.YarnLengthMeters, 0.0)
}

func TestValidateAnchors(t *testing.T) {
	assert.Empty(t, ValidateAnchors(teardropAnchors()))

	vs := ValidateAnchors([]profile.Anchor{{RadiusCM: 1, HeightCM: 0}, {RadiusCM: 2, HeightCM: 1}})
	codes := make([]string, 0, len(vs))
	for _, v := range vs {
		codes = append(codes, v.Code)
	}
	assert.Contains(t, codes, "too_few_points")
	assert.Contains(t, codes, "open_pole")
}

func TestValidateConfig(t *testing.T) {
	assert.Empty(t, ValidateConfig(testConfig()))

	vs := ValidateConfig(Config{})
	require.Len(t, vs, 4)
}
