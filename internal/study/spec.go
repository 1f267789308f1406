package study

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed models.yaml
var modelsYAML []byte

// ModelSpec declares one model of the ladder.
type ModelSpec struct {
	Name       string    `yaml:"name"`
	Title      string    `yaml:"title"`
	Response   string    `yaml:"response"`
	Predictors []string  `yaml:"predictors"`
	Alphas     []float64 `yaml:"alphas"`
	RefitAlpha float64   `yaml:"refit_alpha"`
}

type specFile struct {
	Models []ModelSpec `yaml:"models"`
}

// LoadSpecs parses and validates the embedded model declarations.
func LoadSpecs() ([]ModelSpec, error) {
	var f specFile
	if err := yaml.Unmarshal(modelsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse model specs: %w", err)
	}
	if len(f.Models) == 0 {
		return nil, fmt.Errorf("no models declared")
	}

	seen := make(map[string]bool, len(f.Models))
	for _, m := range f.Models {
		if m.Name == "" || m.Response == "" || len(m.Predictors) == 0 {
			return nil, fmt.Errorf("model %q is missing name, response, or predictors", m.Name)
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("duplicate model name %q", m.Name)
		}
		seen[m.Name] = true
		if len(m.Alphas) == 0 {
			return nil, fmt.Errorf("model %q has an empty alpha grid", m.Name)
		}
		for _, a := range m.Alphas {
			if a < 0 {
				return nil, fmt.Errorf("model %q has negative alpha %g", m.Name, a)
			}
		}
		if m.RefitAlpha < 0 {
			return nil, fmt.Errorf("model %q has negative refit_alpha %g", m.Name, m.RefitAlpha)
		}
		for _, p := range m.Predictors {
			if p == m.Response {
				return nil, fmt.Errorf("model %q uses its response %q as a predictor", m.Name, p)
			}
		}
	}
	return f.Models, nil
}
