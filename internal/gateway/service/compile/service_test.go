package compile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amigurumi/internal/gateway/repository/patternstore"
	"amigurumi/internal/gateway/wire"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := patternstore.New(filepath.Join(t.TempDir(), "patterns.json"))
	svc, err := New(16, store, nil)
	require.NoError(t, err)
	return svc
}

func teardropRequest() wire.CompileRequest {
	return wire.CompileRequest{
		Profile: []wire.Anchor{
			{RadiusCM: 0, HeightCM: 0},
			{RadiusCM: 3, HeightCM: 2},
			{RadiusCM: 4, HeightCM: 4},
			{RadiusCM: 0, HeightCM: 6},
		},
		Config: wire.Config{
			TotalHeightCM: 6,
			Gauge:         wire.Gauge{StitchesPerCM: 2, RowsPerCM: 1, HookSizeMM: 3},
		},
	}
}

func TestServiceCompile(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.Compile(teardropRequest())
	require.NoError(t, err)
	require.Len(t, p.Rows, 7)
	assert.Equal(t, 7, p.Metadata.TotalRows)

	// Second call hits the cache and returns the identical result.
	p2, err := svc.Compile(teardropRequest())
	require.NoError(t, err)
	assert.Equal(t, p, p2)
}

func TestServiceCompileError(t *testing.T) {
	svc := newTestService(t)
	req := teardropRequest()
	req.Profile = req.Profile[:2]

	_, err := svc.Compile(req)
	require.Error(t, err)
	assert.Equal(t, "too_few_points", wire.AsError(err).Code)
}

func TestServiceValidate(t *testing.T) {
	svc := newTestService(t)

	res := svc.Validate(teardropRequest())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Violations)

	bad := teardropRequest()
	bad.Profile[0].RadiusCM = 1
	bad.Config.Gauge.RowsPerCM = 0
	bad.Config.DecreaseStyle = "bobble"
	res = svc.Validate(bad)
	assert.False(t, res.Valid)

	codes := make(map[string]bool)
	for _, v := range res.Violations {
		codes[v.Code] = true
	}
	assert.True(t, codes["open_pole"])
	assert.True(t, codes["nonpositive_gauge"])
	assert.True(t, codes["unknown_decrease_style"])
}

func TestServiceExportWithoutArtifactStore(t *testing.T) {
	svc := newTestService(t)

	text, key, err := svc.Export(t.Context(), teardropRequest(), "teardrop.txt")
	require.NoError(t, err)
	assert.Empty(t, key)
	assert.Contains(t, text, "Rnd 1: ")
	assert.Contains(t, text, "Fasten off")
}

func TestServiceSaveAndList(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Save("my teardrop", teardropRequest())
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	assert.Equal(t, "my teardrop", rec.Name)

	got, ok := svc.Saved(rec.ID)
	require.True(t, ok)
	assert.JSONEq(t, string(rec.Pattern), string(got.Pattern))

	require.Len(t, svc.ListSaved(), 1)
	assert.True(t, svc.DeleteSaved(rec.ID))
	assert.Empty(t, svc.ListSaved())
}
