package study

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"uptake/internal/geo"
	"uptake/internal/logging"
	"uptake/internal/regress"
	"uptake/internal/render"
	"uptake/internal/report"
)

// MapFile is the choropleth artifact name under the output directory.
const MapFile = "study_map.html"

// Options configures a study run.
type Options struct {
	OutputDir string      // artifact directory; "output" when empty
	Out       io.Writer   // console output; os.Stdout when nil
	Mode      report.Mode // table rendering mode
}

// ModelResult bundles the fits for one declared model.
type ModelResult struct {
	Spec      ModelSpec
	OLS       *regress.Model
	R2        float64
	Fitted    []float64
	Observed  []float64
	Path      []*regress.Model
	PostLasso *regress.Model
	Support   []int
}

// Run executes the model ladder over the bundled panel, prints the summary
// tables, and renders the figures. Figure rendering is fanned out with an
// errgroup; the first failure cancels the rest.
func Run(ctx context.Context, opts Options) error {
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	log := logging.New("study")

	panel, err := LoadPanel()
	if err != nil {
		return err
	}
	specs, err := LoadSpecs()
	if err != nil {
		return err
	}
	log.Debug("panel loaded", "states", panel.NumRows(), "models", len(specs))

	results := make([]*ModelResult, 0, len(specs))
	for _, spec := range specs {
		res, err := fitModel(panel, spec)
		if err != nil {
			return fmt.Errorf("model %s: %w", spec.Name, err)
		}
		results = append(results, res)
		printModel(opts.Out, opts.Mode, res)
	}

	if err := renderFigures(ctx, panel, results, opts.OutputDir); err != nil {
		return err
	}
	fmt.Fprintf(opts.Out, "figures written to %s\n", opts.OutputDir)
	return nil
}

func fitModel(panel *Panel, spec ModelSpec) (*ModelResult, error) {
	x, err := panel.Matrix(spec.Predictors)
	if err != nil {
		return nil, err
	}
	y, err := panel.Column(spec.Response)
	if err != nil {
		return nil, err
	}

	ols, err := regress.OLS(x, y)
	if err != nil {
		return nil, fmt.Errorf("OLS: %w", err)
	}
	fitted, err := ols.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("OLS predict: %w", err)
	}

	path, err := regress.LassoPath(x, y, spec.Alphas)
	if err != nil {
		return nil, fmt.Errorf("LASSO path: %w", err)
	}

	post, support, err := regress.PostLasso(x, y, spec.RefitAlpha)
	if err != nil {
		return nil, fmt.Errorf("post-LASSO: %w", err)
	}

	return &ModelResult{
		Spec:      spec,
		OLS:       ols,
		R2:        regress.RSquared(y, fitted),
		Fitted:    fitted,
		Observed:  y,
		Path:      path,
		PostLasso: post,
		Support:   support,
	}, nil
}

func printModel(w io.Writer, mode report.Mode, res *ModelResult) {
	fmt.Fprintf(w, "=== %s ===\n", res.Spec.Title)

	tbl := report.NewTable(mode)
	tbl.Header("term", "OLS", "post-LASSO")
	tbl.Row("intercept", report.FmtCoef(res.OLS.Intercept), report.FmtCoef(res.PostLasso.Intercept))
	for j, name := range res.Spec.Predictors {
		tbl.Row(name, report.FmtCoef(res.OLS.Coef[j]), report.FmtCoef(res.PostLasso.Coef[j]))
	}
	tbl.Footer("R²", report.FmtR2(res.R2), fmt.Sprintf("support %d/%d", len(res.Support), len(res.Spec.Predictors)))
	tbl.Columns(
		report.Column{Number: 2, Align: report.AlignRight},
		report.Column{Number: 3, Align: report.AlignRight},
	)
	fmt.Fprintln(w, tbl.String())

	shrink := report.NewTable(mode)
	shrink.Header("alpha", "non-zero")
	for i, m := range res.Path {
		shrink.Row(res.Spec.Alphas[i], len(m.NonZero()))
	}
	fmt.Fprintln(w, shrink.String())
}

func renderFigures(ctx context.Context, panel *Panel, results []*ModelResult, outDir string) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, res := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(outDir, res.Spec.Name+"_fitted.png")
			return render.FittedScatter(res.Spec.Title, res.Observed, res.Fitted, path)
		})
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			coefs := make([][]float64, len(res.Path))
			for i, m := range res.Path {
				coefs[i] = m.Coef
			}
			path := filepath.Join(outDir, res.Spec.Name+"_path.png")
			return render.CoefficientPath(res.Spec.Title+" (L1 path)", res.Spec.Alphas, coefs, res.Spec.Predictors, path)
		})
	}

	// Choropleth of the first model's response across states.
	first := results[0]
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		values, err := panel.ValuesByState(first.Spec.Response)
		if err != nil {
			return err
		}
		regions, err := geo.Regions()
		if err != nil {
			return err
		}
		return render.ChoroplethMap(first.Spec.Title, first.Spec.Response, geo.WithValues(regions, values), filepath.Join(outDir, MapFile))
	})

	return g.Wait()
}
