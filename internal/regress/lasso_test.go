package regress

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"uptake/internal/sample"
)

func TestLasso_NegativeAlpha(t *testing.T) {
	ds := sample.Default()
	_, err := Lasso(ds.X, ds.Y, -0.1)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestLasso_DimensionMismatch(t *testing.T) {
	x := mat.NewDense(10, 3, nil)
	_, err := Lasso(x, make([]float64, 9), 1.0)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestLasso_ZeroAlphaMatchesOLS(t *testing.T) {
	ds := sample.Default()

	ols, err := OLS(ds.X, ds.Y)
	if err != nil {
		t.Fatalf("OLS: %v", err)
	}
	lasso, err := Lasso(ds.X, ds.Y, 0)
	if err != nil {
		t.Fatalf("Lasso: %v", err)
	}

	for j := range ols.Coef {
		if d := math.Abs(ols.Coef[j] - lasso.Coef[j]); d > 1e-6 {
			t.Errorf("Coef[%d]: OLS %g vs Lasso %g (|Δ|=%g)", j, ols.Coef[j], lasso.Coef[j], d)
		}
	}
	if d := math.Abs(ols.Intercept - lasso.Intercept); d > 1e-3 {
		t.Errorf("Intercept: OLS %g vs Lasso %g (|Δ|=%g)", ols.Intercept, lasso.Intercept, d)
	}
}

func TestLasso_SupportShrinksWithAlpha(t *testing.T) {
	ds := sample.Default()

	// Widely spaced strengths so each step crosses at least one
	// standardized-coefficient magnitude.
	alphas := []float64{0, 0.5, 5, 50, 5000}

	prev := len(ds.Predictors) + 1
	for _, a := range alphas {
		m, err := Lasso(ds.X, ds.Y, a)
		if err != nil {
			t.Fatalf("Lasso(alpha=%g): %v", a, err)
		}
		nz := len(m.NonZero())
		if nz > prev {
			t.Errorf("alpha=%g: support grew from %d to %d non-zero coefficients", a, prev, nz)
		}
		prev = nz
	}

	// At the largest strength everything must be shrunk away.
	m, err := Lasso(ds.X, ds.Y, 1e9)
	if err != nil {
		t.Fatalf("Lasso(alpha=1e9): %v", err)
	}
	if nz := len(m.NonZero()); nz != 0 {
		t.Errorf("alpha=1e9: %d non-zero coefficients, want 0", nz)
	}
}

func TestLasso_Deterministic(t *testing.T) {
	ds := sample.Default()

	a, err := Lasso(ds.X, ds.Y, 1.5)
	if err != nil {
		t.Fatalf("Lasso: %v", err)
	}
	b, err := Lasso(ds.X, ds.Y, 1.5)
	if err != nil {
		t.Fatalf("Lasso (second run): %v", err)
	}

	for j := range a.Coef {
		if a.Coef[j] != b.Coef[j] {
			t.Errorf("Coef[%d] differs between runs: %g vs %g", j, a.Coef[j], b.Coef[j])
		}
	}
}

func TestLassoPath(t *testing.T) {
	ds := sample.Default()

	models, err := LassoPath(ds.X, ds.Y, []float64{0.1, 1, 10})
	if err != nil {
		t.Fatalf("LassoPath: %v", err)
	}
	if len(models) != 3 {
		t.Fatalf("got %d models, want 3", len(models))
	}

	if _, err := LassoPath(ds.X, ds.Y, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty grid: err = %v, want ErrInvalidParameter", err)
	}
}

func TestPostLasso_RefitsSupportWithoutShrinkage(t *testing.T) {
	ds := sample.Default()

	const alpha = 5.0
	sel, err := Lasso(ds.X, ds.Y, alpha)
	if err != nil {
		t.Fatalf("Lasso: %v", err)
	}
	m, support, err := PostLasso(ds.X, ds.Y, alpha)
	if err != nil {
		t.Fatalf("PostLasso: %v", err)
	}

	if got, want := len(support), len(sel.NonZero()); got != want {
		t.Fatalf("support size = %d, want %d", got, want)
	}

	// Outside the support every coefficient is exactly zero.
	inSupport := make(map[int]bool, len(support))
	for _, j := range support {
		inSupport[j] = true
	}
	for j, w := range m.Coef {
		if !inSupport[j] && w != 0 {
			t.Errorf("Coef[%d] = %g outside support, want 0", j, w)
		}
	}

	// The refit matches a direct OLS on the selected columns.
	r, _ := ds.X.Dims()
	sub := mat.NewDense(r, len(support), nil)
	for i := 0; i < r; i++ {
		for k, j := range support {
			sub.Set(i, k, ds.X.At(i, j))
		}
	}
	direct, err := OLS(sub, ds.Y)
	if err != nil {
		t.Fatalf("OLS on support: %v", err)
	}
	for k, j := range support {
		if d := math.Abs(m.Coef[j] - direct.Coef[k]); d > 1e-9 {
			t.Errorf("Coef[%d] = %g, direct OLS gives %g", j, m.Coef[j], direct.Coef[k])
		}
	}
}

func TestPostLasso_EmptySupport(t *testing.T) {
	ds := sample.Default()

	m, support, err := PostLasso(ds.X, ds.Y, 1e9)
	if err != nil {
		t.Fatalf("PostLasso: %v", err)
	}
	if len(support) != 0 {
		t.Fatalf("support = %v, want empty", support)
	}
	for j, w := range m.Coef {
		if w != 0 {
			t.Errorf("Coef[%d] = %g, want 0", j, w)
		}
	}
}
