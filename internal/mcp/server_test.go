package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestHandleFitOLS(t *testing.T) {
	s := NewServer("test")

	_, out, err := s.handleFitOLS(context.Background(), nil, fitOLSInput{})
	if err != nil {
		t.Fatalf("fit_ols: %v", err)
	}
	if len(out.Coef) != len(out.Predictors) {
		t.Errorf("got %d coefficients for %d predictors", len(out.Coef), len(out.Predictors))
	}
	if out.RSquared <= 0 || out.RSquared > 1 {
		t.Errorf("R² = %g outside (0,1]", out.RSquared)
	}
}

func TestHandleFitLasso(t *testing.T) {
	s := NewServer("test")

	_, out, err := s.handleFitLasso(context.Background(), nil, fitLassoInput{Alpha: 1e9})
	if err != nil {
		t.Fatalf("fit_lasso: %v", err)
	}
	if out.NonZero != 0 {
		t.Errorf("alpha=1e9: %d non-zero coefficients, want 0", out.NonZero)
	}

	if _, _, err := s.handleFitLasso(context.Background(), nil, fitLassoInput{Alpha: -1}); err == nil {
		t.Error("negative alpha should fail")
	}
}

func TestHandleRunSmoke(t *testing.T) {
	s := NewServer("test")
	dir := t.TempDir()

	_, out, err := s.handleRunSmoke(context.Background(), nil, runSmokeInput{OutputDir: dir})
	if err != nil {
		// The test binary does not link the CLI-only modules the version
		// check requires; everything past it is covered elsewhere.
		if strings.Contains(err.Error(), "missing required library") {
			t.Skipf("version check unavailable in test binary: %v", err)
		}
		t.Fatalf("run_smoke: %v", err)
	}

	for _, p := range []string{out.PairPlot, out.Map} {
		if _, statErr := os.Stat(filepath.Clean(p)); statErr != nil {
			t.Errorf("artifact %s missing: %v", p, statErr)
		}
	}
}

func TestWatchParent_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	WatchParent(ctx, cancel)
	cancel()
	// Nothing to assert beyond not leaking; give the goroutine a tick to exit.
	time.Sleep(10 * time.Millisecond)
}
