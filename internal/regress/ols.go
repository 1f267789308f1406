// Package regress implements the small regression toolkit used by the smoke
// test and the study pipeline: ordinary least squares, L1-regularized least
// squares (coordinate descent), and a post-selection OLS refit.
package regress

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// rcondMin is the reciprocal-condition threshold below which the design
// matrix is treated as rank-deficient.
const rcondMin = 1e-12

// Model holds a fitted linear model.
type Model struct {
	Intercept float64
	Coef      []float64
}

// OLS fits y = intercept + x·coef by least squares. The fit is deterministic
// for a fixed input; there is no randomness in the solver.
func OLS(x mat.Matrix, y []float64) (*Model, error) {
	r, c := x.Dims()
	if r != len(y) {
		return nil, fmt.Errorf("%w: %d predictor rows vs %d response rows", ErrDimensionMismatch, r, len(y))
	}
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty design matrix (%dx%d)", ErrDimensionMismatch, r, c)
	}

	// Augment with an intercept column of ones.
	a := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		a.Set(i, 0, 1)
		for j := 0; j < c; j++ {
			a.Set(i, j+1, x.At(i, j))
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: SVD failed to converge", ErrSingularMatrix)
	}
	vals := svd.Values(nil)
	if vals[0] == 0 || vals[len(vals)-1]/vals[0] < rcondMin {
		return nil, fmt.Errorf("%w: reciprocal condition %.2e below %.0e",
			ErrSingularMatrix, safeRatio(vals), rcondMin)
	}

	b := mat.NewDense(r, 1, append([]float64(nil), y...))
	var beta mat.Dense
	if err := beta.Solve(a, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	m := &Model{Intercept: beta.At(0, 0), Coef: make([]float64, c)}
	for j := 0; j < c; j++ {
		m.Coef[j] = beta.At(j+1, 0)
	}
	return m, nil
}

// Predict returns fitted values for the given predictor matrix.
func (m *Model) Predict(x mat.Matrix) ([]float64, error) {
	r, c := x.Dims()
	if c != len(m.Coef) {
		return nil, fmt.Errorf("%w: model has %d coefficients, matrix has %d columns",
			ErrDimensionMismatch, len(m.Coef), c)
	}
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		v := m.Intercept
		for j := 0; j < c; j++ {
			v += m.Coef[j] * x.At(i, j)
		}
		out[i] = v
	}
	return out, nil
}

// NonZero returns the indices of coefficients with non-zero magnitude.
func (m *Model) NonZero() []int {
	var idx []int
	for j, w := range m.Coef {
		if w != 0 {
			idx = append(idx, j)
		}
	}
	return idx
}

// RSquared computes the coefficient of determination for observed vs fitted.
func RSquared(observed, fitted []float64) float64 {
	mean := stat.Mean(observed, nil)
	var ssRes, ssTot float64
	for i, o := range observed {
		ssRes += (o - fitted[i]) * (o - fitted[i])
		ssTot += (o - mean) * (o - mean)
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

func safeRatio(vals []float64) float64 {
	if vals[0] == 0 {
		return 0
	}
	return vals[len(vals)-1] / vals[0]
}
