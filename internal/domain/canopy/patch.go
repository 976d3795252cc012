package canopy

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SurfacePatch is one gore's 3-D parametric surface sample before assembly
// rotation: a PhiSteps×ThetaSteps grid of points stored row-major, rows
// indexed by φ (apex → equator), columns by θ across the gore's angular span.
type SurfacePatch struct {
	PhiSteps   int
	ThetaSteps int
	Points     []r3.Vec
}

// At returns the grid point at φ-row i, θ-column j.
func (p *SurfacePatch) At(i, j int) r3.Vec {
	return p.Points[i*p.ThetaSteps+j]
}

// GeneratePatch samples one gore's surface.  φ is sampled uniformly over
// [0, π/2] (phiSteps samples) and θ uniformly over [-π/gores, π/gores]
// (thetaSteps samples); each pair maps to
//
//	R · (sinφ·sinθ, sinφ·cosθ, inflation·cosφ)
//
// where inflation > 1 bulges the canopy upward relative to a true hemisphere,
// approximating its aerodynamically inflated shape.  Pure and deterministic.
//
// phiSteps and thetaSteps must be ≥ 2; the caller guarantees it.
func GeneratePatch(radius float64, gores, phiSteps, thetaSteps int, inflation float64) *SurfacePatch {
	points := make([]r3.Vec, 0, phiSteps*thetaSteps)
	thetaSpan := math.Pi / float64(gores)
	for i := 0; i < phiSteps; i++ {
		phi := float64(i) / float64(phiSteps-1) * math.Pi / 2
		sinPhi, cosPhi := math.Sincos(phi)
		for j := 0; j < thetaSteps; j++ {
			theta := -thetaSpan + 2*thetaSpan*float64(j)/float64(thetaSteps-1)
			sinTheta, cosTheta := math.Sincos(theta)
			points = append(points, r3.Vec{
				X: radius * sinPhi * sinTheta,
				Y: radius * sinPhi * cosTheta,
				Z: radius * inflation * cosPhi,
			})
		}
	}
	return &SurfacePatch{
		PhiSteps:   phiSteps,
		ThetaSteps: thetaSteps,
		Points:     points,
	}
}
