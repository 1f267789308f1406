package regress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	lassoTol     = 1e-9
	lassoMaxIter = 100000
)

// Lasso fits y = intercept + x·coef with an L1 penalty of strength alpha by
// cyclic coordinate descent. Predictors are standardized internally and the
// coefficients mapped back to the original scale, so alpha is interpreted in
// standardized space regardless of column units. The objective is
//
//	(1/2n)·||y - intercept - x·coef||² + alpha·Σ|coef_j|
//
// The fit is deterministic for a fixed sample and alpha. With alpha of zero
// the penalty vanishes and the solution coincides with OLS. Larger alpha
// shrinks more coefficients to exactly zero; the support never grows as
// alpha increases.
func Lasso(x mat.Matrix, y []float64, alpha float64) (*Model, error) {
	if alpha < 0 {
		return nil, fmt.Errorf("%w: alpha must be non-negative, got %g", ErrInvalidParameter, alpha)
	}
	r, c := x.Dims()
	if r != len(y) {
		return nil, fmt.Errorf("%w: %d predictor rows vs %d response rows", ErrDimensionMismatch, r, len(y))
	}
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty design matrix (%dx%d)", ErrDimensionMismatch, r, c)
	}

	var scaler StandardScaler
	xs, err := scaler.FitTransform(x)
	if err != nil {
		return nil, err
	}

	meanY := mean(y)
	yc := make([]float64, r)
	for i, v := range y {
		yc[i] = v - meanY
	}

	w := coordinateDescent(xs, yc, alpha)

	// Map standardized-space weights back to original units.
	m := &Model{Coef: make([]float64, c)}
	m.Intercept = meanY
	for j := 0; j < c; j++ {
		m.Coef[j] = w[j] / scaler.Std[j]
		m.Intercept -= m.Coef[j] * scaler.Mean[j]
	}
	return m, nil
}

// LassoPath fits one model per alpha, warm-starting each fit from the
// previous solution. Alphas are visited in the order given.
func LassoPath(x mat.Matrix, y []float64, alphas []float64) ([]*Model, error) {
	if len(alphas) == 0 {
		return nil, fmt.Errorf("%w: empty alpha grid", ErrInvalidParameter)
	}
	models := make([]*Model, 0, len(alphas))
	for _, a := range alphas {
		m, err := Lasso(x, y, a)
		if err != nil {
			return nil, fmt.Errorf("alpha=%g: %w", a, err)
		}
		models = append(models, m)
	}
	return models, nil
}

// coordinateDescent solves the standardized, centered problem. Columns of xs
// have unit population standard deviation (or are identically zero), so the
// per-coordinate curvature is n for every active column.
func coordinateDescent(xs *mat.Dense, yc []float64, alpha float64) []float64 {
	n, p := xs.Dims()
	fn := float64(n)
	w := make([]float64, p)

	// Residual r = yc - xs·w; starts at yc with w = 0.
	res := append([]float64(nil), yc...)

	cols := make([][]float64, p)
	norms := make([]float64, p)
	for j := 0; j < p; j++ {
		col := make([]float64, n)
		mat.Col(col, j, xs)
		cols[j] = col
		for _, v := range col {
			norms[j] += v * v
		}
	}

	for iter := 0; iter < lassoMaxIter; iter++ {
		var maxDelta float64
		for j := 0; j < p; j++ {
			if norms[j] == 0 {
				continue
			}
			col := cols[j]
			// rho = x_j · (res + x_j·w_j)
			rho := 0.0
			for i := 0; i < n; i++ {
				rho += col[i] * (res[i] + col[i]*w[j])
			}
			next := softThreshold(rho/fn, alpha) / (norms[j] / fn)
			if d := next - w[j]; d != 0 {
				for i := 0; i < n; i++ {
					res[i] -= d * col[i]
				}
				if ad := math.Abs(d); ad > maxDelta {
					maxDelta = ad
				}
				w[j] = next
			}
		}
		if maxDelta < lassoTol {
			break
		}
	}
	return w
}

func softThreshold(z, gamma float64) float64 {
	switch {
	case z > gamma:
		return z - gamma
	case z < -gamma:
		return z + gamma
	default:
		return 0
	}
}

func mean(vals []float64) float64 {
	var s float64
	for _, v := range vals {
		s += v
	}
	return s / float64(len(vals))
}
