// Package canopy implements the geometric model of a hemispherical parachute
// canopy: the flattened 2-D gore profile used for sewing patterns and the
// 3-D triangulated surface of the assembled inflated canopy.  Everything in
// this package is a pure, deterministic computation over in-memory buffers;
// file output lives in internal/infrastructure/export.
package canopy

import (
	"github.com/canopyforge/canopyforge/pkg/errors"
)

// Params are the validated physical parameters of one canopy design.  All
// lengths are metres.  Params is immutable once constructed and is passed
// read-only to every pipeline stage.
type Params struct {
	// Diameter is the inflated canopy diameter.  Always > 0.
	Diameter float64

	// Gores is the number of radial fabric panels.  Always ≥ 1.
	Gores int

	// SeamAllowance is the sewing margin added around the gore outline.
	// Always ≥ 0.
	SeamAllowance float64

	// SpillDiameter is the apex vent diameter; 0 disables the spill hole.
	// Always ≥ 0.
	SpillDiameter float64
}

// NewParams validates the raw physical inputs and returns an immutable Params
// value.  Validation failures carry ErrCodeInvalidParameter and name the
// offending value; they occur before any file is written.
func NewParams(diameter float64, gores int, seamAllowance, spillDiameter float64) (Params, error) {
	if diameter <= 0 {
		return Params{}, errors.InvalidParameter("diameter must be positive").
			WithDetailf("diameter=%g m", diameter)
	}
	if gores < 1 {
		return Params{}, errors.InvalidParameter("gore count must be at least 1").
			WithDetailf("gores=%d", gores)
	}
	if seamAllowance < 0 {
		return Params{}, errors.InvalidParameter("seam allowance must not be negative").
			WithDetailf("seam_allowance=%g m", seamAllowance)
	}
	if spillDiameter < 0 {
		return Params{}, errors.InvalidParameter("spill diameter must not be negative").
			WithDetailf("spill_diameter=%g m", spillDiameter)
	}
	return Params{
		Diameter:      diameter,
		Gores:         gores,
		SeamAllowance: seamAllowance,
		SpillDiameter: spillDiameter,
	}, nil
}

// Radius returns the canopy radius, Diameter/2.
func (p Params) Radius() float64 {
	return p.Diameter / 2
}
