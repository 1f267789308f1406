package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// FittedScatter writes an observed-vs-fitted scatter with the identity line.
func FittedScatter(title string, observed, fitted []float64, path string) error {
	if len(observed) != len(fitted) {
		return fmt.Errorf("observed and fitted lengths differ: %d vs %d", len(observed), len(fitted))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "fitted"
	p.Y.Label.Text = "observed"

	xys := make(plotter.XYs, len(observed))
	lo, hi := observed[0], observed[0]
	for i := range observed {
		xys[i].X = fitted[i]
		xys[i].Y = observed[i]
		for _, v := range []float64{observed[i], fitted[i]} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Radius = vg.Points(2)

	ident, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return fmt.Errorf("identity line: %w", err)
	}
	p.Add(s, ident)

	return savePlot(p, path)
}

// CoefficientPath writes the L1 regularization path: one line per predictor,
// coefficient magnitude against the alpha grid.
func CoefficientPath(title string, alphas []float64, coefs [][]float64, names []string, path string) error {
	if len(alphas) != len(coefs) {
		return fmt.Errorf("alpha grid and coefficient rows differ: %d vs %d", len(alphas), len(coefs))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "alpha"
	p.Y.Label.Text = "coefficient"
	p.Legend.Top = true

	for j, name := range names {
		xys := make(plotter.XYs, len(alphas))
		for i, a := range alphas {
			xys[i].X = a
			xys[i].Y = coefs[i][j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("path line for %s: %w", name, err)
		}
		line.Color = plotutil.Color(j)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	return savePlot(p, path)
}

func savePlot(p *plot.Plot, path string) error {
	img := vgimg.New(vg.Points(480), vg.Points(360))
	dc := draw.New(img)
	p.Draw(dc)
	return writePNG(img, path)
}
