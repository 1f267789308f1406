// Package study runs the paper's model ladder over a bundled illustrative
// state-level panel: OLS, a LASSO path, and a post-LASSO refit per declared
// model, with coefficient tables and figures as output.
package study

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

//go:embed panel.csv
var panelCSV []byte

// Panel is the state-level dataset: one row per state, numeric columns
// keyed by header name.
type Panel struct {
	States  []string
	columns map[string][]float64
	order   []string
}

// LoadPanel parses and validates the embedded panel.
func LoadPanel() (*Panel, error) {
	r := csv.NewReader(bytes.NewReader(panelCSV))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse panel: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("panel has no data rows")
	}

	header := records[0]
	if len(header) < 2 || header[0] != "state" {
		return nil, fmt.Errorf("panel header must start with 'state', got %v", header)
	}

	p := &Panel{
		columns: make(map[string][]float64, len(header)-1),
		order:   header[1:],
	}
	for _, name := range p.order {
		p.columns[name] = make([]float64, 0, len(records)-1)
	}

	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("panel row %d has %d fields, want %d", i+2, len(rec), len(header))
		}
		p.States = append(p.States, rec[0])
		for j, name := range p.order {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("panel row %d column %s: %w", i+2, name, err)
			}
			p.columns[name] = append(p.columns[name], v)
		}
	}
	return p, nil
}

// NumRows returns the number of states.
func (p *Panel) NumRows() int { return len(p.States) }

// Variables returns the numeric column names in file order.
func (p *Panel) Variables() []string {
	return append([]string(nil), p.order...)
}

// Column returns the named column, or an error if it does not exist.
func (p *Panel) Column(name string) ([]float64, error) {
	col, ok := p.columns[name]
	if !ok {
		return nil, fmt.Errorf("panel has no column %q", name)
	}
	return append([]float64(nil), col...), nil
}

// Matrix assembles the named columns into an n×k design matrix.
func (p *Panel) Matrix(names []string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no predictor columns requested")
	}
	x := mat.NewDense(p.NumRows(), len(names), nil)
	for j, name := range names {
		col, err := p.Column(name)
		if err != nil {
			return nil, err
		}
		for i, v := range col {
			x.Set(i, j, v)
		}
	}
	return x, nil
}

// ValuesByState maps the named column onto state IDs, for the choropleth.
func (p *Panel) ValuesByState(name string) (map[string]float64, error) {
	col, err := p.Column(name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(col))
	for i, s := range p.States {
		out[s] = col[i]
	}
	return out, nil
}
