// Package app orchestrates the keyword research workflows behind the
// CLI and MCP surfaces.
package app

import (
	"context"
	"io"
	"time"

	"github.com/kwscout/kwscout/domain"
)

// AnalyzeUseCaseRequest carries the inputs for the analyze workflow
type AnalyzeUseCaseRequest struct {
	Keyword      string
	Delay        time.Duration
	OutputFormat domain.OutputFormat
	OutputWriter io.Writer
}

// AnalyzeUseCase orchestrates a single keyword analysis: service call,
// formatting, output
type AnalyzeUseCase struct {
	service   domain.KeywordService
	formatter domain.OutputFormatter
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(service domain.KeywordService, formatter domain.OutputFormatter) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		service:   service,
		formatter: formatter,
	}
}

// Execute performs the analysis workflow and writes the formatted result
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req AnalyzeUseCaseRequest) error {
	result, err := uc.service.Analyze(ctx, domain.AnalyzeRequest{
		Keyword: req.Keyword,
		Delay:   req.Delay,
	})
	if err != nil {
		return err
	}

	output, err := uc.formatter.FormatAnalysis(result, req.OutputFormat)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(req.OutputWriter, output); err != nil {
		return domain.NewExportError("failed to write output", err)
	}
	return nil
}
