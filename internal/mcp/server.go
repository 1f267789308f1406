// Package mcp exposes the verification pipeline and the model fitters as
// Model Context Protocol tools over stdio, so agent IDEs can run the checks
// without shelling out.
package mcp

import (
	"bytes"
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"uptake/internal/regress"
	"uptake/internal/sample"
	"uptake/internal/smoke"
)

// Server wraps the MCP SDK server.
type Server struct {
	MCPServer *sdkmcp.Server
}

// NewServer creates an MCP server with the verification and fitting tools
// registered.
func NewServer(version string) *Server {
	s := &Server{}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "uptake", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "run_smoke",
		Description: "Run the full environment verification pipeline and write the two artifact files.",
	}, s.handleRunSmoke)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "fit_ols",
		Description: "Fit ordinary least squares on the synthetic sample and return coefficients and R².",
	}, s.handleFitOLS)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "fit_lasso",
		Description: "Fit an L1-regularized model on the synthetic sample at the given alpha.",
	}, s.handleFitLasso)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_versions",
		Description: "Report the versions of the required statistical and plotting libraries.",
	}, s.handleListVersions)
}

// --- Tool input/output types ---

type runSmokeInput struct {
	OutputDir string `json:"output_dir,omitempty" jsonschema:"artifact directory (default: output)"`
}

type runSmokeOutput struct {
	PairPlot string `json:"pairplot"`
	Map      string `json:"map"`
	Console  string `json:"console"`
}

type fitOLSInput struct{}

type fitOutput struct {
	Predictors []string  `json:"predictors"`
	Intercept  float64   `json:"intercept"`
	Coef       []float64 `json:"coef"`
	RSquared   float64   `json:"r_squared,omitempty"`
	NonZero    int       `json:"non_zero,omitempty"`
}

type fitLassoInput struct {
	Alpha float64 `json:"alpha" jsonschema:"non-negative regularization strength"`
}

type listVersionsInput struct{}

type listVersionsOutput struct {
	Console string `json:"console"`
}

// --- Handlers ---

func (s *Server) handleRunSmoke(ctx context.Context, _ *sdkmcp.CallToolRequest, input runSmokeInput) (*sdkmcp.CallToolResult, runSmokeOutput, error) {
	var console bytes.Buffer
	opts := smoke.Options{OutputDir: input.OutputDir, Out: &console}
	if opts.OutputDir == "" {
		opts.OutputDir = smoke.DefaultOutputDir
	}
	if err := smoke.Run(opts); err != nil {
		return nil, runSmokeOutput{Console: console.String()}, fmt.Errorf("run_smoke: %w", err)
	}
	return nil, runSmokeOutput{
		PairPlot: opts.OutputDir + "/" + smoke.PairPlotFile,
		Map:      opts.OutputDir + "/" + smoke.MapFile,
		Console:  console.String(),
	}, nil
}

func (s *Server) handleFitOLS(ctx context.Context, _ *sdkmcp.CallToolRequest, _ fitOLSInput) (*sdkmcp.CallToolResult, fitOutput, error) {
	ds := sample.Default()
	m, err := regress.OLS(ds.X, ds.Y)
	if err != nil {
		return nil, fitOutput{}, fmt.Errorf("fit_ols: %w", err)
	}
	fitted, err := m.Predict(ds.X)
	if err != nil {
		return nil, fitOutput{}, fmt.Errorf("fit_ols: %w", err)
	}
	return nil, fitOutput{
		Predictors: ds.Predictors,
		Intercept:  m.Intercept,
		Coef:       m.Coef,
		RSquared:   regress.RSquared(ds.Y, fitted),
	}, nil
}

func (s *Server) handleFitLasso(ctx context.Context, _ *sdkmcp.CallToolRequest, input fitLassoInput) (*sdkmcp.CallToolResult, fitOutput, error) {
	ds := sample.Default()
	m, err := regress.Lasso(ds.X, ds.Y, input.Alpha)
	if err != nil {
		return nil, fitOutput{}, fmt.Errorf("fit_lasso: %w", err)
	}
	return nil, fitOutput{
		Predictors: ds.Predictors,
		Intercept:  m.Intercept,
		Coef:       m.Coef,
		NonZero:    len(m.NonZero()),
	}, nil
}

func (s *Server) handleListVersions(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listVersionsInput) (*sdkmcp.CallToolResult, listVersionsOutput, error) {
	var console bytes.Buffer
	if err := smoke.Versions(&console); err != nil {
		return nil, listVersionsOutput{Console: console.String()}, fmt.Errorf("list_versions: %w", err)
	}
	return nil, listVersionsOutput{Console: console.String()}, nil
}
