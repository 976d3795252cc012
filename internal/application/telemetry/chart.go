package telemetry

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"
)

var traceColor = color.RGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff}

// WriteChart renders the weight-vs-time trace of log as an SVG at path.
// Time is rebased so the first sample sits at t=0.
func WriteChart(log *Log, title, path string) error {
	if len(log.Samples) == 0 {
		return apperrors.New(apperrors.ErrCodeThrustLogMalformed, "cannot chart an empty log")
	}

	plt := plot.New()
	plt.Title.Text = title
	plt.X.Label.Text = "time (s)"
	plt.Y.Label.Text = "weight (g)"

	t0 := log.Samples[0].Millis
	pts := make(plotter.XYs, len(log.Samples))
	for i, s := range log.Samples {
		pts[i] = plotter.XY{X: float64(s.Millis-t0) / 1000, Y: s.Weight}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to build thrust trace")
	}
	line.LineStyle.Color = traceColor
	line.LineStyle.Width = vg.Points(1)
	plt.Add(line)
	plt.Add(plotter.NewGrid())

	wt, err := plt.WriterTo(24*vg.Centimeter, 12*vg.Centimeter, "svg")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to render thrust chart")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".chart-*")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeFileWriteFailed, "creating chart file").
			WithDetailf("path=%s", path)
	}
	tmpName := tmp.Name()
	if _, err := wt.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.Wrap(err, apperrors.ErrCodeFileWriteFailed, "writing chart").
			WithDetailf("path=%s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, apperrors.ErrCodeFileWriteFailed, "closing chart file").
			WithDetailf("path=%s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, apperrors.ErrCodeFileWriteFailed, "finalizing chart file").
			WithDetailf("path=%s", path)
	}
	return nil
}

// ChartFilename derives the chart name from the source log, e.g.
// thrust_log_3.txt becomes thrust_log_3.svg.
func ChartFilename(logPath string) string {
	base := filepath.Base(logPath)
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s.svg", base[:len(base)-len(ext)])
}
