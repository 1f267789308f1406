package regress

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler_Moments(t *testing.T) {
	x := mat.NewDense(5, 2, []float64{
		10, 100,
		20, 120,
		30, 90,
		40, 150,
		50, 140,
	})

	var s StandardScaler
	xs, err := s.FitTransform(x)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	col := make([]float64, 5)
	for j := 0; j < 2; j++ {
		mat.Col(col, j, xs)
		var sum, ss float64
		for _, v := range col {
			sum += v
		}
		m := sum / 5
		for _, v := range col {
			ss += (v - m) * (v - m)
		}
		std := math.Sqrt(ss / 5)
		if math.Abs(m) > 1e-12 {
			t.Errorf("column %d mean = %g, want 0", j, m)
		}
		if math.Abs(std-1) > 1e-12 {
			t.Errorf("column %d std = %g, want 1", j, std)
		}
	}
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{7, 7, 7, 7})

	var s StandardScaler
	xs, err := s.FitTransform(x)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	for i := 0; i < 4; i++ {
		if got := xs.At(i, 0); got != 0 {
			t.Errorf("row %d = %g, want 0 (centered constant)", i, got)
		}
	}
	if s.Std[0] != 1 {
		t.Errorf("Std[0] = %g, want 1 for constant column", s.Std[0])
	}
}

func TestStandardScaler_Errors(t *testing.T) {
	var s StandardScaler
	if _, err := s.Transform(mat.NewDense(2, 2, nil)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unfitted Transform: err = %v, want ErrInvalidParameter", err)
	}

	if err := s.Fit(mat.NewDense(3, 2, nil)); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if _, err := s.Transform(mat.NewDense(3, 5, nil)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("width mismatch: err = %v, want ErrDimensionMismatch", err)
	}
}
