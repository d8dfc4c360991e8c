package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kwscout/kwscout/app"
	"github.com/kwscout/kwscout/service"
)

// ExportCommand represents the CSV export command
type ExportCommand struct {
	separate   bool
	outputPath string
	outputDir  string
	limit      int
	delay      float64
}

// NewExportCommand creates a new export command
func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

// CreateCobraCommand creates the cobra command for CSV export
func (e *ExportCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <keyword>...",
		Short: "Export related, matching, and question keywords to CSV",
		Long: `Run the related, matching, and question queries for a seed keyword
and write the combined rows to a CSV file. With --separate, each query
type gets its own file.

Examples:
  kwscout export "go tutorial"
  kwscout export --output results.csv "go tutorial"
  kwscout export --separate --output-dir exports "go tutorial"`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runExport,
	}

	cmd.Flags().BoolVar(&e.separate, "separate", false, "Write one CSV file per query type")
	cmd.Flags().StringVarP(&e.outputPath, "output", "o", "", "Output file path (combined export only)")
	cmd.Flags().StringVar(&e.outputDir, "output-dir", "", "Output directory (separate export only)")
	cmd.Flags().IntVarP(&e.limit, "limit", "l", 0, "Maximum number of results per query")
	cmd.Flags().Float64Var(&e.delay, "delay", 0, "Pause in seconds before each API request (defaults to configured delay)")

	return cmd
}

// runExport executes the export command
func (e *ExportCommand) runExport(cmd *cobra.Command, args []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	limit := e.limit
	if limit == 0 {
		limit = cc.cfg.Limit
	}
	outputDir := e.outputDir
	if outputDir == "" {
		outputDir = cc.cfg.Output.Directory
	}

	exporter := service.NewExportService(cc.service)
	useCase := app.NewExportUseCase(exporter)

	return useCase.Execute(cmd.Context(), app.ExportUseCaseRequest{
		Keyword:      strings.Join(args, " "),
		Separate:     e.separate,
		OutputPath:   e.outputPath,
		OutputDir:    outputDir,
		Limit:        limit,
		Delay:        resolveDelay(cc.cfg, cmd.Flags(), e.delay),
		OutputWriter: cmd.OutOrStdout(),
	})
}

// NewExportCmd creates and returns the export cobra command
func NewExportCmd() *cobra.Command {
	exportCommand := NewExportCommand()
	return exportCommand.CreateCobraCommand()
}
