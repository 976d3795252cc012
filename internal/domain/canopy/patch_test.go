package canopy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePatch_GridShape(t *testing.T) {
	patch := GeneratePatch(1.0, 12, 10, 6, 1.0)
	require.Len(t, patch.Points, 60)
	assert.Equal(t, 10, patch.PhiSteps)
	assert.Equal(t, 6, patch.ThetaSteps)
}

func TestGeneratePatch_ApexAndEquator(t *testing.T) {
	const radius = 1.0
	patch := GeneratePatch(radius, 12, 50, 20, 1.0)

	// φ = 0 row collapses to the apex regardless of θ.
	for j := 0; j < patch.ThetaSteps; j++ {
		p := patch.At(0, j)
		assert.InDelta(t, 0, p.X, 1e-12)
		assert.InDelta(t, 0, p.Y, 1e-12)
		assert.InDelta(t, radius, p.Z, 1e-12)
	}

	// φ = π/2 row lies on the equator: z = 0, planar distance = R.
	for j := 0; j < patch.ThetaSteps; j++ {
		p := patch.At(patch.PhiSteps-1, j)
		assert.InDelta(t, 0, p.Z, 1e-12)
		assert.InDelta(t, radius, math.Hypot(p.X, p.Y), 1e-12)
	}
}

func TestGeneratePatch_OnSphere(t *testing.T) {
	const radius = 1.5
	patch := GeneratePatch(radius, 8, 20, 10, 1.0)
	for _, p := range patch.Points {
		assert.InDelta(t, radius, math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z), 1e-12)
	}
}

func TestGeneratePatch_InflationScalesHeightOnly(t *testing.T) {
	const inflation = 1.2
	plain := GeneratePatch(1.0, 12, 20, 10, 1.0)
	bulged := GeneratePatch(1.0, 12, 20, 10, inflation)

	for i := range plain.Points {
		assert.InDelta(t, plain.Points[i].X, bulged.Points[i].X, 1e-12)
		assert.InDelta(t, plain.Points[i].Y, bulged.Points[i].Y, 1e-12)
		assert.InDelta(t, plain.Points[i].Z*inflation, bulged.Points[i].Z, 1e-12)
	}
}

func TestGeneratePatch_ThetaSpanSymmetric(t *testing.T) {
	const gores = 12
	patch := GeneratePatch(1.0, gores, 10, 7, 1.0)

	// Along the equator row, the first and last columns are mirror images
	// across the y-z plane through θ = 0.
	row := patch.PhiSteps - 1
	first := patch.At(row, 0)
	last := patch.At(row, patch.ThetaSteps-1)
	assert.InDelta(t, -first.X, last.X, 1e-12)
	assert.InDelta(t, first.Y, last.Y, 1e-12)

	// The span covers ±π/gores.
	wantX := math.Sin(math.Pi / gores)
	assert.InDelta(t, -wantX, first.X, 1e-12)
}

func TestGeneratePatch_Deterministic(t *testing.T) {
	a := GeneratePatch(2.2, 10, 30, 15, 1.1)
	b := GeneratePatch(2.2, 10, 30, 15, 1.1)
	assert.Equal(t, a, b)
}
