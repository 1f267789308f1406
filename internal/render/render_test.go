package render

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"uptake/internal/geo"
	"uptake/internal/sample"
)

func datasetColumns(t *testing.T) ([]string, [][]float64) {
	t.Helper()
	ds := sample.Generate(40)
	names := ds.Columns()
	cols := make([][]float64, len(names))
	for i, n := range names {
		cols[i] = ds.Column(n)
	}
	return names, cols
}

func TestPairPlot_WritesNonEmptyPNG(t *testing.T) {
	names, cols := datasetColumns(t)
	path := filepath.Join(t.TempDir(), "pairplot.png")

	if err := PairPlot(names, cols, path); err != nil {
		t.Fatalf("PairPlot: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat artifact: %v", err)
	}
	if info.Size() == 0 {
		t.Error("pairplot file is empty")
	}

	// PNG magic number.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("artifact does not start with a PNG signature")
	}
}

func TestPairPlot_CreatesOutputDir(t *testing.T) {
	names, cols := datasetColumns(t)
	path := filepath.Join(t.TempDir(), "nested", "out", "pairplot.png")

	if err := PairPlot(names, cols, path); err != nil {
		t.Fatalf("PairPlot: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
}

func TestPairPlot_ShapeMismatch(t *testing.T) {
	err := PairPlot([]string{"a", "b"}, [][]float64{{1, 2}}, "unused.png")
	if err == nil {
		t.Fatal("expected error for mismatched names/columns")
	}
}

func TestPairPlot_UnwritableDestination(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits unreliable on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}
	names, cols := datasetColumns(t)

	dir := filepath.Join(t.TempDir(), "readonly")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := PairPlot(names, cols, filepath.Join(dir, "sub", "pairplot.png"))
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("err = %v, want ErrWrite", err)
	}
}

func TestChoroplethMap_SelfContainedHTML(t *testing.T) {
	regions, err := geo.Regions()
	if err != nil {
		t.Fatalf("load regions: %v", err)
	}
	path := filepath.Join(t.TempDir(), "map.html")

	if err := ChoroplethMap("Vaccination coverage", "one-dose rate (%)", regions, path); err != nil {
		t.Fatalf("ChoroplethMap: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	html := string(data)

	if len(html) == 0 {
		t.Fatal("map file is empty")
	}
	for _, want := range []string{"<!DOCTYPE html>", "<svg", "Alaska", "linearGradient"} {
		if !strings.Contains(html, want) {
			t.Errorf("map HTML missing %q", want)
		}
	}
	// Self-contained: no external fetches for basic display.
	for _, banned := range []string{"http://", "https://", "<script src"} {
		if strings.Contains(html, banned) {
			t.Errorf("map HTML references external resource via %q", banned)
		}
	}
}

func TestChoroplethMap_UnwritableDestination(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits unreliable on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}
	regions, err := geo.Regions()
	if err != nil {
		t.Fatalf("load regions: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "readonly")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err = ChoroplethMap("t", "c", regions, filepath.Join(dir, "sub", "map.html"))
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("err = %v, want ErrWrite", err)
	}
}

func TestFittedScatter(t *testing.T) {
	obs := []float64{1, 2, 3, 4, 5}
	fit := []float64{1.1, 1.9, 3.2, 3.8, 5.1}
	path := filepath.Join(t.TempDir(), "fit.png")

	if err := FittedScatter("observed vs fitted", obs, fit, path); err != nil {
		t.Fatalf("FittedScatter: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("artifact missing or empty (err=%v)", err)
	}

	if err := FittedScatter("bad", obs, fit[:3], path); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestCoefficientPath(t *testing.T) {
	alphas := []float64{0.1, 1, 10}
	coefs := [][]float64{
		{1.5, -0.8},
		{0.9, -0.2},
		{0.0, 0.0},
	}
	path := filepath.Join(t.TempDir(), "path.png")

	if err := CoefficientPath("L1 path", alphas, coefs, []string{"a", "b"}, path); err != nil {
		t.Fatalf("CoefficientPath: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("artifact missing or empty (err=%v)", err)
	}
}
