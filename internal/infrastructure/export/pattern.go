package export

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/canopyforge/canopyforge/internal/domain/canopy"
	"github.com/canopyforge/canopyforge/pkg/errors"
)

// spillMarkerSegments is the number of line segments approximating the
// spill-hole marker circle.
const spillMarkerSegments = 64

var (
	outlineColor = color.RGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff}
	seamColor    = color.RGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}
	spillColor   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// WritePattern renders the flat sewing pattern for one gore and writes it as
// an SVG to path.
//
// Three elements are drawn:
//   - the cut outline: the half-profile mirrored about the vertical axis and
//     joined through the apex;
//   - the seam outline: the same shape with every width sample offset
//     outward by the seam allowance; for small allowances the difference to
//     a true normal offset is negligible;
//   - when the design has a spill hole, a circular marker at the apex with
//     radius π·(spill/2)/gores, the hole's flattened footprint on one gore.
//
// Axes are labelled in metres so the pattern can be verified against a ruler
// after printing.
func WritePattern(curve canopy.GoreCurve, params canopy.Params, path string) error {
	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("Gore pattern: D=%.2f m, %d gores, seam %.1f cm",
		params.Diameter, params.Gores, params.SeamAllowance*100)
	plt.X.Label.Text = "width (m)"
	plt.Y.Label.Text = "height (m)"

	outline, err := plotter.NewPolygon(mirroredOutline(curve, 0))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to build gore outline")
	}
	outline.Color = nil
	outline.LineStyle.Color = outlineColor
	outline.LineStyle.Width = vg.Points(1.5)
	plt.Add(outline)

	if params.SeamAllowance > 0 {
		seam, err := plotter.NewPolygon(mirroredOutline(curve, params.SeamAllowance))
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "failed to build seam outline")
		}
		seam.Color = nil
		seam.LineStyle.Color = seamColor
		seam.LineStyle.Width = vg.Points(0.75)
		seam.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		plt.Add(seam)
	}

	if params.SpillDiameter > 0 {
		marker, err := plotter.NewLine(spillMarker(params))
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "failed to build spill marker")
		}
		marker.LineStyle.Color = spillColor
		marker.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		plt.Add(marker)
	}

	wt, err := plt.WriterTo(20*vg.Centimeter, 28*vg.Centimeter, "svg")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to render pattern drawing")
	}
	return atomicWrite(path, func(f *os.File) error {
		_, werr := wt.WriteTo(f)
		return werr
	})
}

// mirroredOutline builds the closed gore polygon: the left half is the
// negated width samples walked hem → apex, the right half the width samples
// walked apex → hem, joined through the apex point.  offset widens every
// width sample by the given amount.
func mirroredOutline(curve canopy.GoreCurve, offset float64) plotter.XYs {
	pts := make(plotter.XYs, 0, 2*len(curve))
	for i := len(curve) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: -(curve[i].X + offset), Y: curve[i].Y})
	}
	for i := 0; i < len(curve); i++ {
		pts = append(pts, plotter.XY{X: curve[i].X + offset, Y: curve[i].Y})
	}
	return pts
}

// spillMarker approximates the apex spill-hole footprint: a circle of radius
// π·(spill/2)/gores centered on the apex.  This is the flattening formula
// applied to the spill circle's own radius, not the 3-D spill radius.
func spillMarker(params canopy.Params) plotter.XYs {
	r := math.Pi * (params.SpillDiameter / 2) / float64(params.Gores)
	pts := make(plotter.XYs, 0, spillMarkerSegments+1)
	for i := 0; i <= spillMarkerSegments; i++ {
		a := 2 * math.Pi * float64(i) / spillMarkerSegments
		pts = append(pts, plotter.XY{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	return pts
}
