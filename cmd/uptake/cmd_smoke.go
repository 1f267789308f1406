package main

import (
	"github.com/spf13/cobra"

	"uptake/internal/smoke"
)

var smokeOutputDir string

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Verify the analysis environment end to end",
	Long: "Runs the verification pipeline in fixed order: library version report,\n" +
		"synthetic sample, OLS and LASSO quick checks, pairplot PNG, choropleth HTML.\n" +
		"Aborts on the first failing stage.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return smoke.Run(smoke.Options{
			OutputDir: smokeOutputDir,
			Out:       cmd.OutOrStdout(),
		})
	},
}

func init() {
	smokeCmd.Flags().StringVarP(&smokeOutputDir, "output", "o", smoke.DefaultOutputDir, "Artifact output directory")
}
