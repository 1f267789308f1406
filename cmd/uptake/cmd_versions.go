package main

import (
	"github.com/spf13/cobra"

	"uptake/internal/smoke"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Report required library versions without running the pipeline",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return smoke.Versions(cmd.OutOrStdout())
	},
}
