package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyforge/canopyforge/internal/testutil"
)

func writeSampleLog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "thrust_log_1.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))
	return path
}

func TestServiceStats(t *testing.T) {
	logger := testutil.NewMockLogger()
	svc := NewService(logger, nil)
	path := writeSampleLog(t, t.TempDir())

	stats, err := svc.Stats(path, "")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Samples)
	assert.InDelta(t, 130.5, stats.PeakGrams, 1e-12)
	assert.True(t, logger.HasMessage("info", "thrust log analyzed"))
}

func TestServiceStats_WithCalibration(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(testutil.NewMockLogger(), nil)
	logPath := writeSampleLog(t, dir)
	calPath := filepath.Join(dir, "calibration.txt")
	require.NoError(t, os.WriteFile(calPath, []byte("Tare: 84210\nScaleFactor: 100\n"), 0o644))

	stats, err := svc.Stats(logPath, calPath)
	require.NoError(t, err)
	// Weights recomputed from raw: (112040-84210)/100 g peak.
	assert.InDelta(t, 278.3, stats.PeakGrams, 1e-9)
}

func TestServiceStats_BadCalibration(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(testutil.NewMockLogger(), nil)
	logPath := writeSampleLog(t, dir)
	calPath := filepath.Join(dir, "calibration.txt")
	require.NoError(t, os.WriteFile(calPath, []byte("nonsense"), 0o644))

	_, err := svc.Stats(logPath, calPath)
	assert.Error(t, err)
}

func TestServiceChart(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(testutil.NewMockLogger(), nil)
	logPath := writeSampleLog(t, dir)

	outPath, err := svc.Chart(logPath, "", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "thrust_log_1.svg"), outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestServiceChart_ExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(testutil.NewMockLogger(), nil)
	logPath := writeSampleLog(t, dir)
	outPath := filepath.Join(dir, "custom.svg")

	got, err := svc.Chart(logPath, "", outPath)
	require.NoError(t, err)
	assert.Equal(t, outPath, got)
	assert.FileExists(t, outPath)
}

func TestChartFilename(t *testing.T) {
	assert.Equal(t, "thrust_log_3.svg", ChartFilename("/data/thrust_log_3.txt"))
	assert.Equal(t, "log.svg", ChartFilename("log"))
}
