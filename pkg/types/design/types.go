// Package design defines the shared request/result types exchanged between
// the CLI, the HTTP API, and the design pipeline service.
package design

import "time"

// Request carries the user-facing design inputs.  Lengths follow the input
// conventions of the tool: the canopy diameter in metres, seam allowance and
// spill-hole diameter in centimetres.  The zero values of the resolution
// fields mean "use the configured defaults".
type Request struct {
	// DiameterM is the inflated canopy diameter in metres.  Must be > 0.
	DiameterM float64 `json:"diameter_m" mapstructure:"diameter_m"`

	// Gores is the number of radial fabric panels.  Must be ≥ 1.
	Gores int `json:"gores" mapstructure:"gores"`

	// SeamAllowanceCM is the sewing margin added around the gore outline,
	// in centimetres.  Must be ≥ 0.
	SeamAllowanceCM float64 `json:"seam_allowance_cm" mapstructure:"seam_allowance_cm"`

	// SpillDiameterCM is the apex vent diameter in centimetres.  Must be ≥ 0;
	// zero disables the spill hole.
	SpillDiameterCM float64 `json:"spill_diameter_cm" mapstructure:"spill_diameter_cm"`

	// PhiSteps and ThetaSteps control the 3-D surface sampling density.
	PhiSteps   int `json:"phi_steps,omitempty" mapstructure:"phi_steps"`
	ThetaSteps int `json:"theta_steps,omitempty" mapstructure:"theta_steps"`

	// CurveResolution controls the 2-D gore outline sampling density.
	CurveResolution int `json:"curve_resolution,omitempty" mapstructure:"curve_resolution"`

	// Inflation scales the canopy height relative to a true hemisphere;
	// values > 1 model the aerodynamically bulged shape.  Zero means default.
	Inflation float64 `json:"inflation,omitempty" mapstructure:"inflation"`

	// Preview requests an additional wireframe PNG of the assembled mesh.
	Preview bool `json:"preview,omitempty" mapstructure:"preview"`
}

// Result reports the artifacts produced by one pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string `json:"run_id"`

	// PatternPath is the written gore sewing-pattern SVG.
	PatternPath string `json:"pattern_path"`

	// MeshPath is the written canopy surface STL.
	MeshPath string `json:"mesh_path"`

	// PreviewPath is the wireframe preview PNG; empty unless requested.
	PreviewPath string `json:"preview_path,omitempty"`

	// VertexCount and FaceCount describe the exported mesh after spill-hole
	// filtering.
	VertexCount int `json:"vertex_count"`
	FaceCount   int `json:"face_count"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`
}
