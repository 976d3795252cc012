package canopy

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// GoreCurve is the flattened half-profile of one gore: an ordered sequence of
// (half-width, height) samples running from the apex (height 0) to the hem
// (height π·R/2).  X is the half-width at that height, Y the height along the
// meridian.  Heights are monotonically non-decreasing.
type GoreCurve []r2.Vec

// ComputeGoreCurve samples the gore half-profile at resolution+1 points.
//
// For sample i in [0, resolution]:
//
//	φᵢ       = (i/resolution)·π/2          polar angle from apex to equator
//	heightᵢ  = (i/resolution)·π·R/2        arc length along the meridian
//	widthᵢ   = π·R·sin(φᵢ)/gores           one gore's share of the latitude circle
//
// The height is the meridian arc length, not the developed geodesic distance.
// That flattening approximation treats the gore as locally conical and is the
// established convention for hand-sewn canopies; altering it would change the
// manufactured pattern dimensions.
//
// resolution must be ≥ 1; the caller guarantees it.
func ComputeGoreCurve(radius float64, gores, resolution int) GoreCurve {
	curve := make(GoreCurve, 0, resolution+1)
	for i := 0; i <= resolution; i++ {
		t := float64(i) / float64(resolution)
		phi := t * math.Pi / 2
		curve = append(curve, r2.Vec{
			X: math.Pi * radius * math.Sin(phi) / float64(gores),
			Y: t * math.Pi * radius / 2,
		})
	}
	return curve
}

// HemWidth returns the half-width at the hem (the last sample).
func (c GoreCurve) HemWidth() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].X
}

// Height returns the total flattened gore height (the last sample's Y).
func (c GoreCurve) Height() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].Y
}
