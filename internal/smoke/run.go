// Package smoke runs the environment verification pipeline: version report,
// synthetic sample, OLS and LASSO quick checks, then the two artifact files.
// The pipeline is strictly linear and aborts on the first error.
package smoke

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"uptake/internal/geo"
	"uptake/internal/logging"
	"uptake/internal/regress"
	"uptake/internal/render"
	"uptake/internal/report"
	"uptake/internal/sample"
)

// Artifact names under the output directory.
const (
	PairPlotFile = "smoke_pairplot.png"
	MapFile      = "smoke_map.html"

	DefaultOutputDir = "output"
)

// lassoAlpha is the fixed regularization strength for the LASSO quick check.
const lassoAlpha = 1.0

// SuccessLine is printed once, only after every stage has completed.
const SuccessLine = "all package checks & regression smoke tests passed"

// Options configures a verification run.
type Options struct {
	OutputDir string    // artifact directory; DefaultOutputDir when empty
	Out       io.Writer // console output; os.Stdout when nil
}

// Run executes the verification pipeline and returns the first stage error.
func Run(opts Options) error {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	log := logging.New("smoke")

	if err := Versions(opts.Out); err != nil {
		return fmt.Errorf("version check: %w", err)
	}

	ds := sample.Default()
	log.Debug("sample generated", "rows", ds.NumRows(), "predictors", len(ds.Predictors))

	ols, err := regress.OLS(ds.X, ds.Y)
	if err != nil {
		return fmt.Errorf("OLS fit: %w", err)
	}
	fitted, err := ols.Predict(ds.X)
	if err != nil {
		return fmt.Errorf("OLS fit: %w", err)
	}
	printOLS(opts.Out, ds, ols, regress.RSquared(ds.Y, fitted))

	lasso, err := regress.Lasso(ds.X, ds.Y, lassoAlpha)
	if err != nil {
		return fmt.Errorf("LASSO fit: %w", err)
	}
	printLasso(opts.Out, ds, lasso)

	pairPath := filepath.Join(opts.OutputDir, PairPlotFile)
	names := ds.Columns()
	cols := make([][]float64, len(names))
	for i, n := range names {
		cols[i] = ds.Column(n)
	}
	if err := render.PairPlot(names, cols, pairPath); err != nil {
		return fmt.Errorf("render pairplot: %w", err)
	}
	fmt.Fprintf(opts.Out, "saved pairplot to %s\n", pairPath)

	regions, err := geo.Regions()
	if err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	mapPath := filepath.Join(opts.OutputDir, MapFile)
	if err := render.ChoroplethMap("Vaccination coverage by state", "one-dose rate (%)", regions, mapPath); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	fmt.Fprintf(opts.Out, "saved map to %s\n\n", mapPath)

	fmt.Fprintln(opts.Out, SuccessLine)
	return nil
}

func printOLS(w io.Writer, ds *sample.Dataset, m *regress.Model, r2 float64) {
	fmt.Fprintf(w, "=== OLS quick check ===\n")
	tbl := report.NewTable(report.ASCII)
	tbl.Header("term", "coefficient")
	tbl.Row("intercept", report.FmtCoef(m.Intercept))
	for j, name := range ds.Predictors {
		tbl.Row(name, report.FmtCoef(m.Coef[j]))
	}
	tbl.Footer("R²", report.FmtR2(r2))
	tbl.Columns(report.Column{Number: 2, Align: report.AlignRight})
	fmt.Fprintln(w, tbl.String())
}

func printLasso(w io.Writer, ds *sample.Dataset, m *regress.Model) {
	fmt.Fprintf(w, "=== LASSO quick check (alpha=%g) ===\n", lassoAlpha)
	tbl := report.NewTable(report.ASCII)
	tbl.Header("term", "coefficient")
	for j, name := range ds.Predictors {
		tbl.Row(name, report.FmtCoef(m.Coef[j]))
	}
	tbl.Footer("non-zero", len(m.NonZero()))
	tbl.Columns(report.Column{Number: 2, Align: report.AlignRight})
	fmt.Fprintln(w, tbl.String())
}
