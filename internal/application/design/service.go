// Package design orchestrates the canopy pipeline: it validates a request,
// derives the gore pattern and the triangulated surface, and writes the
// manufacturing artifacts to the output directory.
package design

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"
	designtypes "github.com/canopyforge/canopyforge/pkg/types/design"

	"github.com/canopyforge/canopyforge/internal/config"
	"github.com/canopyforge/canopyforge/internal/domain/canopy"
	"github.com/canopyforge/canopyforge/internal/infrastructure/export"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/logging"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/prometheus"
)

// Service runs the design pipeline.
type Service struct {
	cfg     config.Config
	logger  logging.Logger
	metrics *prometheus.AppMetrics
}

// NewService creates a design Service. metrics may be nil when the caller
// does not collect any.
func NewService(cfg config.Config, logger logging.Logger, metrics *prometheus.AppMetrics) *Service {
	return &Service{
		cfg:     cfg,
		logger:  logger.Named("design"),
		metrics: metrics,
	}
}

// Run executes one full pipeline pass for req and returns the written
// artifact paths. The 2-D pattern and the 3-D mesh derive independently from
// the same parameters, so the two branches run concurrently.
func (s *Service) Run(ctx context.Context, req designtypes.Request) (designtypes.Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := s.logger.With(logging.String("run_id", runID))

	result, err := s.run(ctx, req, runID, logger)
	elapsed := time.Since(start)
	result.Elapsed = elapsed

	status := "success"
	if err != nil {
		status = "error"
		logger.Error("design run failed",
			logging.Err(err),
			logging.Duration("elapsed", elapsed))
	} else {
		logger.Info("design run complete",
			logging.String("pattern", result.PatternPath),
			logging.String("mesh", result.MeshPath),
			logging.Int("vertices", result.VertexCount),
			logging.Int("faces", result.FaceCount),
			logging.Duration("elapsed", elapsed))
	}
	if s.metrics != nil {
		s.metrics.DesignRunsTotal.WithLabelValues(status).Inc()
		s.metrics.DesignRunDuration.WithLabelValues(status).Observe(elapsed.Seconds())
		if err == nil {
			s.metrics.DesignMeshVertices.WithLabelValues().Observe(float64(result.VertexCount))
			s.metrics.DesignMeshFaces.WithLabelValues().Observe(float64(result.FaceCount))
		}
	}
	return result, err
}

func (s *Service) run(ctx context.Context, req designtypes.Request, runID string, logger logging.Logger) (designtypes.Result, error) {
	req = s.applyDefaults(req)
	if err := validateSampling(req); err != nil {
		return designtypes.Result{RunID: runID}, err
	}

	params, err := canopy.NewParams(req.DiameterM, req.Gores, req.SeamAllowanceCM/100, req.SpillDiameterCM/100)
	if err != nil {
		return designtypes.Result{RunID: runID}, err
	}
	if err := ctx.Err(); err != nil {
		return designtypes.Result{RunID: runID}, err
	}
	if err := export.EnsureDir(s.cfg.Output.Dir); err != nil {
		return designtypes.Result{RunID: runID}, err
	}

	result := designtypes.Result{
		RunID:       runID,
		PatternPath: filepath.Join(s.cfg.Output.Dir, export.PatternFilename(params)),
		MeshPath:    filepath.Join(s.cfg.Output.Dir, export.MeshFilename(params)),
	}
	if req.Preview {
		result.PreviewPath = filepath.Join(s.cfg.Output.Dir, export.PreviewFilename(params))
	}

	logger.Info("starting design run",
		logging.Float64("diameter_m", params.Diameter),
		logging.Int("gores", params.Gores),
		logging.Float64("seam_allowance_m", params.SeamAllowance),
		logging.Float64("spill_diameter_m", params.SpillDiameter))

	var (
		wg         sync.WaitGroup
		patternErr error
		meshErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		curve := canopy.ComputeGoreCurve(params.Radius(), params.Gores, req.CurveResolution)
		patternErr = export.WritePattern(curve, params, result.PatternPath)
	}()
	go func() {
		defer wg.Done()
		mesh := canopy.Assemble(params.Radius(), params.Gores, req.PhiSteps, req.ThetaSteps, req.Inflation)
		mesh, meshErr = canopy.ApplySpillHole(mesh, params.SpillDiameter)
		if meshErr != nil {
			return
		}
		result.VertexCount = mesh.VertexCount()
		result.FaceCount = mesh.FaceCount()
		if meshErr = export.WriteSTL(mesh, result.MeshPath); meshErr != nil {
			return
		}
		if req.Preview {
			meshErr = export.WritePreview(mesh, result.PreviewPath)
		}
	}()
	wg.Wait()

	if patternErr != nil {
		return result, apperrors.Wrap(patternErr, apperrors.CodeUnknown, "writing gore pattern")
	}
	if meshErr != nil {
		return result, apperrors.Wrap(meshErr, apperrors.CodeUnknown, "building canopy mesh")
	}
	return result, nil
}

// validateSampling rejects sampling densities that cannot form a surface.
// The patch grid interpolates between its endpoints, so each axis needs at
// least two samples; a single step would collapse the grid and produce a
// zero-face mesh. Runs after applyDefaults, so only explicit positive values
// can still be out of range.
func validateSampling(req designtypes.Request) error {
	if req.CurveResolution < 1 {
		return apperrors.InvalidParameter("curve resolution must be at least 1").
			WithDetailf("curve_resolution=%d", req.CurveResolution)
	}
	if req.PhiSteps < 2 {
		return apperrors.InvalidParameter("phi steps must be at least 2").
			WithDetailf("phi_steps=%d", req.PhiSteps)
	}
	if req.ThetaSteps < 2 {
		return apperrors.InvalidParameter("theta steps must be at least 2").
			WithDetailf("theta_steps=%d", req.ThetaSteps)
	}
	return nil
}

// applyDefaults fills zero-valued sampling fields from the configured
// geometry defaults.
func (s *Service) applyDefaults(req designtypes.Request) designtypes.Request {
	if req.CurveResolution <= 0 {
		req.CurveResolution = s.cfg.Geometry.CurveResolution
	}
	if req.PhiSteps <= 0 {
		req.PhiSteps = s.cfg.Geometry.PhiSteps
	}
	if req.ThetaSteps <= 0 {
		req.ThetaSteps = s.cfg.Geometry.ThetaSteps
	}
	if req.Inflation <= 0 {
		req.Inflation = s.cfg.Geometry.Inflation
	}
	return req
}
