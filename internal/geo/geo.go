// Package geo carries the fixed region fixture rendered by the choropleth
// map: U.S. states laid out on a tile-grid cartogram, each with an
// illustrative value. The fixture is compiled into the binary.
package geo

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var regionsYAML []byte

// Region is one tile on the cartogram.
type Region struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Row   int     `yaml:"row"`
	Col   int     `yaml:"col"`
	Value float64 `yaml:"value"`
}

type fixture struct {
	Regions []Region `yaml:"regions"`
}

// Regions parses and validates the embedded fixture.
func Regions() ([]Region, error) {
	var f fixture
	if err := yaml.Unmarshal(regionsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse regions fixture: %w", err)
	}
	if len(f.Regions) == 0 {
		return nil, fmt.Errorf("regions fixture is empty")
	}

	seen := make(map[string]bool, len(f.Regions))
	cells := make(map[[2]int]string, len(f.Regions))
	for _, r := range f.Regions {
		if r.ID == "" || r.Name == "" {
			return nil, fmt.Errorf("region with missing id or name: %+v", r)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate region id %q", r.ID)
		}
		seen[r.ID] = true
		cell := [2]int{r.Row, r.Col}
		if other, ok := cells[cell]; ok {
			return nil, fmt.Errorf("regions %s and %s share tile (%d,%d)", other, r.ID, r.Row, r.Col)
		}
		cells[cell] = r.ID
	}
	return f.Regions, nil
}

// WithValues returns a copy of the regions with values taken from the given
// map (keyed by region ID). Regions absent from the map keep their fixture
// value.
func WithValues(regions []Region, values map[string]float64) []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	for i := range out {
		if v, ok := values[out[i].ID]; ok {
			out[i].Value = v
		}
	}
	return out
}
