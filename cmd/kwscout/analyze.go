package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kwscout/kwscout/app"
	"github.com/kwscout/kwscout/service"
)

// AnalyzeCommand represents the single keyword analysis command
type AnalyzeCommand struct {
	json  bool
	yaml  bool
	csv   bool
	delay float64
}

// NewAnalyzeCommand creates a new analyze command
func NewAnalyzeCommand() *AnalyzeCommand {
	return &AnalyzeCommand{}
}

// CreateCobraCommand creates the cobra command for keyword analysis
func (a *AnalyzeCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <keyword>...",
		Short: "Analyze a keyword's search volume, competition, and score",
		Long: `Analyze a keyword against the vidIQ search statistics endpoint.

Reports search volume, competition, estimated monthly searches, and the
overall score, each classified into a level from Very Low to Very High.

Examples:
  kwscout analyze "go tutorial"
  kwscout analyze --json "go tutorial"
  kwscout analyze --delay 2 "go tutorial"`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runAnalyze,
	}

	cmd.Flags().BoolVar(&a.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&a.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().BoolVar(&a.csv, "csv", false, "Output as CSV")
	cmd.Flags().Float64Var(&a.delay, "delay", 0, "Pause in seconds before the API request (defaults to configured delay)")

	return cmd
}

// runAnalyze executes the analyze command
func (a *AnalyzeCommand) runAnalyze(cmd *cobra.Command, args []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	useCase := app.NewAnalyzeUseCase(cc.service, service.NewOutputFormatter())

	return useCase.Execute(cmd.Context(), app.AnalyzeUseCaseRequest{
		Keyword:      strings.Join(args, " "),
		Delay:        resolveDelay(cc.cfg, cmd.Flags(), a.delay),
		OutputFormat: resolveOutputFormat(cc.cfg, a.json, a.yaml, a.csv),
		OutputWriter: cmd.OutOrStdout(),
	})
}

// NewAnalyzeCmd creates and returns the analyze cobra command
func NewAnalyzeCmd() *cobra.Command {
	analyzeCommand := NewAnalyzeCommand()
	return analyzeCommand.CreateCobraCommand()
}
