package regress

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PostLasso runs the two-stage estimator: a LASSO fit at the given alpha
// selects the support, then an unpenalized OLS refit on the selected columns
// removes the shrinkage bias. The returned model has the full predictor
// width, with zeros outside the support.
func PostLasso(x mat.Matrix, y []float64, alpha float64) (*Model, []int, error) {
	sel, err := Lasso(x, y, alpha)
	if err != nil {
		return nil, nil, fmt.Errorf("selection stage: %w", err)
	}
	support := sel.NonZero()

	_, c := x.Dims()
	if len(support) == 0 {
		// Nothing selected; the refit is the intercept-only model.
		return &Model{Intercept: mean(y), Coef: make([]float64, c)}, nil, nil
	}

	r, _ := x.Dims()
	sub := mat.NewDense(r, len(support), nil)
	for i := 0; i < r; i++ {
		for k, j := range support {
			sub.Set(i, k, x.At(i, j))
		}
	}

	refit, err := OLS(sub, y)
	if err != nil {
		return nil, nil, fmt.Errorf("refit stage: %w", err)
	}

	m := &Model{Intercept: refit.Intercept, Coef: make([]float64, c)}
	for k, j := range support {
		m.Coef[j] = refit.Coef[k]
	}
	return m, support, nil
}
