package telemetry

import (
	"path/filepath"

	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/logging"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/prometheus"
)

// Service loads thrust logs and produces stats and charts from them.
type Service struct {
	logger  logging.Logger
	metrics *prometheus.AppMetrics
}

// NewService creates a telemetry Service. metrics may be nil.
func NewService(logger logging.Logger, metrics *prometheus.AppMetrics) *Service {
	return &Service{logger: logger.Named("telemetry"), metrics: metrics}
}

// load reads the log at logPath and, when calPath is non-empty, recomputes
// every weight from the raw readings using that calibration.
func (s *Service) load(logPath, calPath string) (*Log, error) {
	log, err := ReadThrustLog(logPath)
	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		s.metrics.ThrustLogsParsedTotal.WithLabelValues(status).Inc()
	}
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ThrustLogSamples.WithLabelValues().Observe(float64(len(log.Samples)))
	}

	if calPath != "" {
		cal, err := ReadCalibration(calPath)
		if err != nil {
			return nil, err
		}
		log = log.Recalibrate(cal)
		s.logger.Debug("applied calibration",
			logging.Float64("tare", cal.Tare),
			logging.Float64("scale_factor", cal.ScaleFactor))
	}
	return log, nil
}

// Stats parses the thrust log at logPath and returns its summary statistics.
func (s *Service) Stats(logPath, calPath string) (Stats, error) {
	log, err := s.load(logPath, calPath)
	if err != nil {
		return Stats{}, err
	}

	stats := log.ComputeStats()
	s.logger.Info("thrust log analyzed",
		logging.String("path", logPath),
		logging.Int("samples", stats.Samples),
		logging.Duration("duration", stats.Duration),
		logging.Float64("peak_g", stats.PeakGrams),
		logging.Float64("impulse_ns", stats.ImpulseNs))
	return stats, nil
}

// Chart parses the thrust log at logPath and writes its weight-vs-time chart.
// An empty outPath places the chart next to the log. The written path is
// returned.
func (s *Service) Chart(logPath, calPath, outPath string) (string, error) {
	log, err := s.load(logPath, calPath)
	if err != nil {
		return "", err
	}

	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(logPath), ChartFilename(logPath))
	}
	title := filepath.Base(logPath)
	if err := WriteChart(log, title, outPath); err != nil {
		return "", err
	}
	s.logger.Info("thrust chart written", logging.String("path", outPath))
	return outPath, nil
}
