package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kwscout/kwscout/domain"
)

// ExportUseCaseRequest carries the inputs for the CSV export workflow
type ExportUseCaseRequest struct {
	Keyword      string
	Separate     bool
	OutputPath   string
	OutputDir    string
	Limit        int
	Delay        time.Duration
	OutputWriter io.Writer
}

// ExportUseCase orchestrates the CSV export workflow
type ExportUseCase struct {
	exporter domain.ExportService
}

// NewExportUseCase creates a new export use case
func NewExportUseCase(exporter domain.ExportService) *ExportUseCase {
	return &ExportUseCase{exporter: exporter}
}

// Execute runs the export and reports the written file paths
func (uc *ExportUseCase) Execute(ctx context.Context, req ExportUseCaseRequest) error {
	export := domain.ExportRequest{
		Keyword:    req.Keyword,
		OutputPath: req.OutputPath,
		OutputDir:  req.OutputDir,
		Limit:      req.Limit,
		Delay:      req.Delay,
	}

	if req.Separate {
		paths, err := uc.exporter.ExportSeparate(ctx, export)
		if err != nil {
			return err
		}
		for _, queryType := range []domain.QueryType{domain.QueryTypeRelated, domain.QueryTypeMatching, domain.QueryTypeQuestions} {
			path, ok := paths[queryType]
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(req.OutputWriter, "Exported %s keywords to %s\n", queryType, path); err != nil {
				return domain.NewExportError("failed to write output", err)
			}
		}
		return nil
	}

	path, err := uc.exporter.ExportCombined(ctx, export)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(req.OutputWriter, "Exported keywords to %s\n", path); err != nil {
		return domain.NewExportError("failed to write output", err)
	}
	return nil
}
