package smoke

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"uptake/internal/report"
)

// ErrMissingDependency means a required library is absent from the binary's
// build info, so the toolchain cannot be trusted.
var ErrMissingDependency = errors.New("missing required library")

// Library names a module the toolchain depends on.
type Library struct {
	Name string // short display name
	Path string // module path recorded in build info
}

// Required lists the libraries the verification run depends on. Test-only
// tooling is deliberately not listed; absence of anything here is fatal.
var Required = []Library{
	{Name: "gonum", Path: "gonum.org/v1/gonum"},
	{Name: "gonum/plot", Path: "gonum.org/v1/plot"},
	{Name: "cobra", Path: "github.com/spf13/cobra"},
	{Name: "go-pretty", Path: "github.com/jedib0t/go-pretty/v6"},
	{Name: "yaml", Path: "gopkg.in/yaml.v3"},
	{Name: "mcp-sdk", Path: "github.com/modelcontextprotocol/go-sdk"},
	{Name: "x/sync", Path: "golang.org/x/sync"},
}

// readBuildInfo is swapped out in tests, where the test binary does not link
// the full CLI dependency set.
var readBuildInfo = debug.ReadBuildInfo

// Versions prints the Go runtime version and one line per required library,
// resolved from the binary's embedded module information.
func Versions(w io.Writer) error {
	bi, ok := readBuildInfo()
	if !ok {
		return fmt.Errorf("%w: binary carries no build info", ErrMissingDependency)
	}
	return writeVersions(w, bi)
}

func writeVersions(w io.Writer, bi *debug.BuildInfo) error {
	fmt.Fprintf(w, "=== Toolchain versions ===\n")
	fmt.Fprintf(w, "go: %s\n", runtime.Version())

	installed := make(map[string]string, len(bi.Deps))
	for _, d := range bi.Deps {
		v := d.Version
		if d.Replace != nil {
			v = d.Replace.Version
		}
		installed[d.Path] = v
	}

	tbl := report.NewTable(report.ASCII)
	tbl.Header("library", "version", "status")

	var missing []string
	for _, lib := range Required {
		v, ok := installed[lib.Path]
		if !ok {
			v = "-"
			missing = append(missing, lib.Name)
		}
		tbl.Row(lib.Name, v, report.Mark(ok))
	}
	fmt.Fprintln(w, tbl.String())

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingDependency, missing)
	}
	return nil
}
