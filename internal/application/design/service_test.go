package design

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"
	designtypes "github.com/canopyforge/canopyforge/pkg/types/design"

	"github.com/canopyforge/canopyforge/internal/config"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/prometheus"
	"github.com/canopyforge/canopyforge/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{}
	config.ApplyDefaults(&cfg)
	cfg.Output.Dir = t.TempDir()
	cfg.Geometry.CurveResolution = 16
	cfg.Geometry.PhiSteps = 10
	cfg.Geometry.ThetaSteps = 6
	return cfg
}

func TestServiceRun(t *testing.T) {
	cfg := testConfig(t)
	logger := testutil.NewMockLogger()
	svc := NewService(cfg, logger, nil)

	result, err := svc.Run(context.Background(), designtypes.Request{
		DiameterM:       1.0,
		Gores:           4,
		SeamAllowanceCM: 1.0,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, filepath.Join(cfg.Output.Dir, "gore_D1.00m_G4_SA1.0cm.svg"), result.PatternPath)
	assert.Equal(t, filepath.Join(cfg.Output.Dir, "parachute_D1.00m_G4.stl"), result.MeshPath)
	assert.Empty(t, result.PreviewPath)
	assert.FileExists(t, result.PatternPath)
	assert.FileExists(t, result.MeshPath)

	// 4 gores of a 10x6 grid, no spill hole.
	assert.Equal(t, 4*10*6, result.VertexCount)
	assert.Equal(t, 4*2*9*5, result.FaceCount)
	assert.Positive(t, result.Elapsed)

	assert.True(t, logger.HasMessage("info", "design run complete"))
}

func TestServiceRun_Preview(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, testutil.NewMockLogger(), nil)

	result, err := svc.Run(context.Background(), designtypes.Request{
		DiameterM: 1.0,
		Gores:     4,
		Preview:   true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.PreviewPath)
	assert.FileExists(t, result.PreviewPath)
}

func TestServiceRun_SpillHoleShrinksMesh(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, testutil.NewMockLogger(), nil)

	full, err := svc.Run(context.Background(), designtypes.Request{DiameterM: 1.0, Gores: 4})
	require.NoError(t, err)

	vented, err := svc.Run(context.Background(), designtypes.Request{
		DiameterM:       1.0,
		Gores:           4,
		SpillDiameterCM: 10,
	})
	require.NoError(t, err)

	assert.Less(t, vented.VertexCount, full.VertexCount)
	assert.Less(t, vented.FaceCount, full.FaceCount)
}

func TestServiceRun_InvalidParams(t *testing.T) {
	cfg := testConfig(t)
	logger := testutil.NewMockLogger()
	svc := NewService(cfg, logger, nil)

	tests := []struct {
		name string
		req  designtypes.Request
	}{
		{"zero diameter", designtypes.Request{DiameterM: 0, Gores: 8}},
		{"negative diameter", designtypes.Request{DiameterM: -2, Gores: 8}},
		{"zero gores", designtypes.Request{DiameterM: 2, Gores: 0}},
		{"negative seam", designtypes.Request{DiameterM: 2, Gores: 8, SeamAllowanceCM: -1}},
		{"negative spill", designtypes.Request{DiameterM: 2, Gores: 8, SpillDiameterCM: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidParameter))
		})
	}
}

func TestServiceRun_DegenerateSampling(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, testutil.NewMockLogger(), nil)

	// A single grid step per axis escapes the zero-value defaulting but
	// collapses the patch grid; the run must fail before writing anything.
	tests := []struct {
		name string
		req  designtypes.Request
	}{
		{"one phi step", designtypes.Request{DiameterM: 1, Gores: 4, PhiSteps: 1}},
		{"one theta step", designtypes.Request{DiameterM: 1, Gores: 4, ThetaSteps: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidParameter))

			entries, readErr := os.ReadDir(cfg.Output.Dir)
			require.NoError(t, readErr)
			assert.Empty(t, entries, "no artifact may be written for a degenerate grid")
		})
	}
}

func TestServiceRun_DegenerateSpillHole(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, testutil.NewMockLogger(), nil)

	// A spill hole wider than the canopy removes every vertex.
	_, err := svc.Run(context.Background(), designtypes.Request{
		DiameterM:       1.0,
		Gores:           4,
		SpillDiameterCM: 150,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDegenerateGeometry))
}

func TestServiceRun_OutputDirBlocked(t *testing.T) {
	cfg := testConfig(t)
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("file in the way"), 0o644))
	cfg.Output.Dir = blocked
	svc := NewService(cfg, testutil.NewMockLogger(), nil)

	_, err := svc.Run(context.Background(), designtypes.Request{DiameterM: 1, Gores: 4})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeOutputDirFailed))
}

func TestServiceRun_CancelledContext(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, testutil.NewMockLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Run(ctx, designtypes.Request{DiameterM: 1, Gores: 4})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServiceRun_Metrics(t *testing.T) {
	cfg := testConfig(t)
	logger := testutil.NewMockLogger()
	collector := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "test"}, logger)
	svc := NewService(cfg, logger, prometheus.NewAppMetrics(collector))

	_, err := svc.Run(context.Background(), designtypes.Request{DiameterM: 1, Gores: 4})
	require.NoError(t, err)
	_, err = svc.Run(context.Background(), designtypes.Request{DiameterM: 0, Gores: 4})
	require.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, testutil.NewMockLogger(), nil)

	req := svc.applyDefaults(designtypes.Request{DiameterM: 2, Gores: 12})
	assert.Equal(t, cfg.Geometry.CurveResolution, req.CurveResolution)
	assert.Equal(t, cfg.Geometry.PhiSteps, req.PhiSteps)
	assert.Equal(t, cfg.Geometry.ThetaSteps, req.ThetaSteps)
	assert.Equal(t, cfg.Geometry.Inflation, req.Inflation)

	req = svc.applyDefaults(designtypes.Request{PhiSteps: 33, Inflation: 1.2})
	assert.Equal(t, 33, req.PhiSteps)
	assert.Equal(t, 1.2, req.Inflation)
}
