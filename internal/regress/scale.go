package regress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers columns to zero mean and scales them to unit
// standard deviation. Constant columns are left unscaled (std recorded as 1)
// so Transform never divides by zero.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes per-column means and population standard deviations.
func (s *StandardScaler) Fit(x mat.Matrix) error {
	r, c := x.Dims()
	if r == 0 {
		return fmt.Errorf("%w: cannot fit scaler on 0 rows", ErrDimensionMismatch)
	}
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		s.Mean[j] = stat.Mean(col, nil)
		s.Std[j] = popStdDev(col, s.Mean[j])
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	return nil
}

// Transform returns a new matrix with fitted centering and scaling applied.
func (s *StandardScaler) Transform(x mat.Matrix) (*mat.Dense, error) {
	r, c := x.Dims()
	if len(s.Mean) == 0 {
		return nil, fmt.Errorf("%w: scaler not fitted", ErrInvalidParameter)
	}
	if c != len(s.Mean) {
		return nil, fmt.Errorf("%w: fitted on %d columns, got %d", ErrDimensionMismatch, len(s.Mean), c)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, (x.At(i, j)-s.Mean[j])/s.Std[j])
		}
	}
	return out, nil
}

// FitTransform fits the scaler and transforms x in one call.
func (s *StandardScaler) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}

func popStdDev(vals []float64, mean float64) float64 {
	var ss float64
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)))
}
