// Package sample builds the synthetic state-level dataset used by the
// environment smoke test. The generator is seeded with a fixed value so every
// run produces byte-identical data; nothing here touches disk.
package sample

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Predictor column names, mirroring the study's panel variables.
const (
	ColTotalPop       = "TotalPop"
	ColUnemployment   = "MeanUnemployment"
	ColPovertyAdults  = "PovertyAdultTotal"
	ColPoorMH14d      = "AdultPoorMentalHealth14d"
	ColVaccinatedDose = "VaccinatedOneDose"
)

// seed fixes the PCG stream so the sample is identical on every run.
const seed = 42

// trueBeta is the data-generating coefficient vector for the response.
var trueBeta = []float64{8e-5, -0.3, -1.5, 0.9}

// Dataset is an in-memory tabular sample: an n×k predictor matrix, a response
// vector, and the column names for both. Read-only after creation.
type Dataset struct {
	Predictors []string
	Response   string
	X          *mat.Dense
	Y          []float64
}

// Default returns the standard 120-observation smoke-test sample.
func Default() *Dataset {
	return Generate(120)
}

// Generate builds an n-observation synthetic sample. Predictors are drawn
// from fixed normal distributions; the response is a linear combination plus
// unit noise and a constant offset of 50.
func Generate(n int) *Dataset {
	rng := rand.New(rand.NewPCG(seed, 0))

	norm := func(mu, sigma float64) float64 {
		return mu + sigma*rng.NormFloat64()
	}

	x := mat.NewDense(n, 4, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, norm(1_000_000, 200_000))
		x.Set(i, 1, norm(5.5, 1.2))
		x.Set(i, 2, norm(10_000, 3_000))
		x.Set(i, 3, norm(12, 3))
	}

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v := 50.0
		for j, b := range trueBeta {
			v += b * x.At(i, j)
		}
		y[i] = v + norm(0, 1)
	}

	return &Dataset{
		Predictors: []string{ColTotalPop, ColUnemployment, ColPovertyAdults, ColPoorMH14d},
		Response:   ColVaccinatedDose,
		X:          x,
		Y:          y,
	}
}

// NumRows returns the observation count.
func (d *Dataset) NumRows() int {
	r, _ := d.X.Dims()
	return r
}

// Columns returns all column names, predictors first, response last.
func (d *Dataset) Columns() []string {
	return append(append([]string(nil), d.Predictors...), d.Response)
}

// Column returns the values of the named column, or nil if unknown.
func (d *Dataset) Column(name string) []float64 {
	for j, p := range d.Predictors {
		if p == name {
			out := make([]float64, d.NumRows())
			mat.Col(out, j, d.X)
			return out
		}
	}
	if name == d.Response {
		return append([]float64(nil), d.Y...)
	}
	return nil
}
