package main

import (
	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "aralplan",
	Short: "DepEd lesson plan generator with LLM-backed drafting",
	Long: `Aralplan drafts multi-day DepEd Daily Lesson Log plans from a learning
competency, optionally grounded in the text of an uploaded reference PDF.

Each plan covers the ten lettered procedure steps (A-J) per day, with either
a plain objectives list or paired SOLO/HOTS objectives. Finished plans export
as plain text, print-ready HTML, Word documents, and spreadsheets.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.aralplan/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
