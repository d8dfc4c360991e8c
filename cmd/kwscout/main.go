package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kwscout/kwscout/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kwscout",
	Short: "YouTube keyword research powered by the vidIQ API",
	Long: `kwscout queries the vidIQ keyword research API and turns the raw
responses into normalized metrics, score levels, and CSV exports.

Features:
  • Single keyword analysis with volume, competition, and overall score
  • Batch analysis with per-keyword failure isolation
  • Matching keywords, related keywords, and question queries
  • Combined or per-query CSV export`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("token", "", "vidIQ API token (overrides VIDIQ_TOKEN and config file)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file path")

	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewBatchCmd())
	rootCmd.AddCommand(NewMatchingCmd())
	rootCmd.AddCommand(NewRelatedCmd())
	rootCmd.AddCommand(NewQuestionsCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
