// Package visualize renders the course plots: scatter charts of raw data,
// fitted regression lines, and residual diagnostics. All styling is passed
// through an explicit PlotConfig; there is no package-level state.
package visualize

import (
	"image/color"
	"image/png"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Shibu778/iisc-ml-school/convolution"
	"github.com/Shibu778/iisc-ml-school/pkg/errors"
)

// PlotConfig carries the title, axis labels and canvas size for one plot.
type PlotConfig struct {
	Title  string
	XLabel string
	YLabel string

	// Width and Height are the canvas size. Zero values default to
	// 6x4 inches.
	Width  vg.Length
	Height vg.Length
}

func (c PlotConfig) size() (vg.Length, vg.Length) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = 6 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}
	return w, h
}

func (c PlotConfig) apply(p *plot.Plot) {
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
}

func toXYs(x, y mat.Vector) (plotter.XYs, error) {
	if x.Len() != y.Len() {
		return nil, errors.NewDimensionError("visualize", x.Len(), y.Len(), 0)
	}
	if x.Len() == 0 {
		return nil, errors.NewModelError("visualize", "empty data", errors.ErrEmptyData)
	}
	pts := make(plotter.XYs, x.Len())
	for i := range pts {
		pts[i].X = x.AtVec(i)
		pts[i].Y = y.AtVec(i)
	}
	return pts, nil
}

// ScatterPlot writes a scatter chart of (x, y) pairs to path. The output
// format follows the file extension (.png, .svg, .pdf).
func ScatterPlot(x, y mat.Vector, cfg PlotConfig, path string) error {
	pts, err := toXYs(x, y)
	if err != nil {
		return err
	}

	p := plot.New()
	cfg.apply(p)

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter")
	}
	s.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(s)

	w, h := cfg.size()
	if err := p.Save(w, h, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", path)
	}
	return nil
}

// FitLine writes a scatter of the observations with the fitted line
// y = slope*x + intercept drawn across the x range.
func FitLine(x, y mat.Vector, slope, intercept float64, cfg PlotConfig, path string) error {
	pts, err := toXYs(x, y)
	if err != nil {
		return err
	}

	p := plot.New()
	cfg.apply(p)

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter")
	}
	s.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(s)

	xMin, xMax := pts[0].X, pts[0].X
	for _, pt := range pts[1:] {
		if pt.X < xMin {
			xMin = pt.X
		}
		if pt.X > xMax {
			xMax = pt.X
		}
	}
	line, err := plotter.NewLine(plotter.XYs{
		{X: xMin, Y: slope*xMin + intercept},
		{X: xMax, Y: slope*xMax + intercept},
	})
	if err != nil {
		return errors.Wrap(err, "failed to build line")
	}
	line.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	line.Width = vg.Points(1.5)
	p.Add(line)

	w, h := cfg.size()
	if err := p.Save(w, h, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", path)
	}
	return nil
}

// ResidualPlot writes predicted values against residuals (yTrue - yPred)
// with a zero reference line. A flat band around zero indicates a good fit.
func ResidualPlot(yTrue, yPred mat.Vector, cfg PlotConfig, path string) error {
	if yTrue.Len() != yPred.Len() {
		return errors.NewDimensionError("visualize.ResidualPlot", yTrue.Len(), yPred.Len(), 0)
	}
	residuals := mat.NewVecDense(yTrue.Len(), nil)
	for i := 0; i < yTrue.Len(); i++ {
		residuals.SetVec(i, yTrue.AtVec(i)-yPred.AtVec(i))
	}

	pts, err := toXYs(yPred, residuals)
	if err != nil {
		return err
	}

	p := plot.New()
	cfg.apply(p)
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = "residual"
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter")
	}
	s.GlyphStyle.Color = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	p.Add(s)

	xMin, xMax := pts[0].X, pts[0].X
	for _, pt := range pts[1:] {
		if pt.X < xMin {
			xMin = pt.X
		}
		if pt.X > xMax {
			xMax = pt.X
		}
	}
	zero, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: 0}, {X: xMax, Y: 0}})
	if err != nil {
		return errors.Wrap(err, "failed to build line")
	}
	zero.Color = color.Gray{Y: 128}
	p.Add(zero)

	w, h := cfg.size()
	if err := p.Save(w, h, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", path)
	}
	return nil
}

// SavePNG writes a convolution image to a PNG file.
func SavePNG(img *convolution.Image, path string) error {
	if img == nil {
		return errors.NewValueError("visualize.SavePNG", "nil image")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := png.Encode(f, img.ToImage()); err != nil {
		return errors.Wrapf(err, "failed to encode PNG to %s", path)
	}
	return nil
}
