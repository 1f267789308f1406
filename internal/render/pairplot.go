// Package render produces the artifact files: raster figures via gonum/plot
// and a self-contained HTML choropleth. Every writer creates the destination
// directory first and wraps I/O failures in ErrWrite.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const histogramBins = 16

// PairPlot writes a k×k grid visualizing pairwise relationships among the
// named columns: scatter plots off the diagonal, histograms on it.
func PairPlot(names []string, cols [][]float64, path string) error {
	if len(names) != len(cols) || len(names) == 0 {
		return fmt.Errorf("pairplot needs matching non-empty names and columns, got %d names and %d columns",
			len(names), len(cols))
	}

	k := len(names)
	plots := make([][]*plot.Plot, k)
	for i := 0; i < k; i++ {
		plots[i] = make([]*plot.Plot, k)
		for j := 0; j < k; j++ {
			p := plot.New()
			if i == k-1 {
				p.X.Label.Text = names[j]
			}
			if j == 0 {
				p.Y.Label.Text = names[i]
			}

			if i == j {
				h, err := plotter.NewHist(plotter.Values(cols[i]), histogramBins)
				if err != nil {
					return fmt.Errorf("histogram for %s: %w", names[i], err)
				}
				p.Add(h)
			} else {
				xys := make(plotter.XYs, len(cols[j]))
				for n := range xys {
					xys[n].X = cols[j][n]
					xys[n].Y = cols[i][n]
				}
				s, err := plotter.NewScatter(xys)
				if err != nil {
					return fmt.Errorf("scatter %s vs %s: %w", names[i], names[j], err)
				}
				s.GlyphStyle.Radius = vg.Points(1.5)
				p.Add(s)
			}
			plots[i][j] = p
		}
	}

	side := vg.Points(float64(k) * 160)
	img := vgimg.New(side, side)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: k, Cols: k,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	return writePNG(img, path)
}

func writePNG(img *vgimg.Canvas, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
