package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uptake/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "uptake",
	Short: "Toolchain verification and regression companion for the vaccine-uptake study",
	Long: "Uptake verifies the statistical toolchain end to end and runs the study's\n" +
		"regression ladder (OLS, LASSO, post-LASSO) over the bundled state panel.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(logLevel, logFormat)
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(smokeCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
