package main

import (
	"github.com/spf13/cobra"

	"github.com/kwscout/kwscout/app"
	"github.com/kwscout/kwscout/service"
)

// BatchCommand represents the multi-keyword analysis command
type BatchCommand struct {
	inputFiles []string
	json       bool
	yaml       bool
	csv        bool
	delay      float64
	noProgress bool
}

// NewBatchCommand creates a new batch command
func NewBatchCommand() *BatchCommand {
	return &BatchCommand{}
}

// CreateCobraCommand creates the cobra command for batch analysis
func (b *BatchCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [keyword]...",
		Short: "Analyze multiple keywords in one run",
		Long: `Analyze several keywords sequentially. A failing keyword does not
stop the run; its error is reported alongside the successful results.

Keywords come from the argument list, from files given with
--input-file, or both. Keyword files hold one keyword per line; blank
lines and lines starting with # are skipped. Glob patterns (including
**) are supported.

Examples:
  kwscout batch "go tutorial" "rust tutorial"
  kwscout batch --input-file keywords.txt
  kwscout batch --input-file "lists/**/*.txt" --json`,
		RunE: b.runBatch,
	}

	cmd.Flags().StringSliceVarP(&b.inputFiles, "input-file", "i", nil, "Keyword list file or glob pattern (repeatable)")
	cmd.Flags().BoolVar(&b.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&b.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().BoolVar(&b.csv, "csv", false, "Output as CSV")
	cmd.Flags().Float64Var(&b.delay, "delay", 0, "Pause in seconds before each API request (defaults to configured delay)")
	cmd.Flags().BoolVar(&b.noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

// runBatch executes the batch command
func (b *BatchCommand) runBatch(cmd *cobra.Command, args []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	progress := service.NewProgressManager()
	if b.noProgress {
		progress = nil
	}

	useCase := app.NewBatchUseCase(
		cc.service,
		service.NewOutputFormatter(),
		service.NewKeywordListReader(),
		progress,
	)

	return useCase.Execute(cmd.Context(), app.BatchUseCaseRequest{
		Keywords:     args,
		FilePatterns: b.inputFiles,
		Delay:        resolveDelay(cc.cfg, cmd.Flags(), b.delay),
		OutputFormat: resolveOutputFormat(cc.cfg, b.json, b.yaml, b.csv),
		OutputWriter: cmd.OutOrStdout(),
	})
}

// NewBatchCmd creates and returns the batch cobra command
func NewBatchCmd() *cobra.Command {
	batchCommand := NewBatchCommand()
	return batchCommand.CreateCobraCommand()
}
