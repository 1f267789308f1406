package main

import (
	"github.com/spf13/cobra"

	"uptake/internal/report"
	"uptake/internal/study"
)

var (
	analyzeOutputDir string
	analyzeMarkdown  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the study's regression ladder over the bundled state panel",
	Long: "Fits each declared model (OLS, LASSO path, post-LASSO refit) on the\n" +
		"illustrative state-level panel, prints coefficient tables, and renders\n" +
		"the figures and the choropleth map.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		mode := report.ASCII
		if analyzeMarkdown {
			mode = report.Markdown
		}
		return study.Run(cmd.Context(), study.Options{
			OutputDir: analyzeOutputDir,
			Out:       cmd.OutOrStdout(),
			Mode:      mode,
		})
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutputDir, "output", "o", "output", "Figure output directory")
	analyzeCmd.Flags().BoolVar(&analyzeMarkdown, "markdown", false, "Render tables as Markdown")
}
