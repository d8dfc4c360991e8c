package app

import (
	"context"
	"io"
	"time"

	"github.com/kwscout/kwscout/domain"
)

// BatchUseCaseRequest carries the inputs for the batch workflow.
// Keywords come from the argument list, from files matching the glob
// patterns, or both.
type BatchUseCaseRequest struct {
	Keywords     []string
	FilePatterns []string
	Delay        time.Duration
	OutputFormat domain.OutputFormat
	OutputWriter io.Writer
}

// BatchUseCase orchestrates a sequential multi-keyword analysis with
// progress reporting
type BatchUseCase struct {
	service    domain.KeywordService
	formatter  domain.OutputFormatter
	listReader domain.KeywordListReader
	progress   domain.ProgressManager
}

// NewBatchUseCase creates a new batch use case. The progress manager
// may be nil to disable progress reporting.
func NewBatchUseCase(
	service domain.KeywordService,
	formatter domain.OutputFormatter,
	listReader domain.KeywordListReader,
	progress domain.ProgressManager,
) *BatchUseCase {
	return &BatchUseCase{
		service:    service,
		formatter:  formatter,
		listReader: listReader,
		progress:   progress,
	}
}

// Execute collects keywords, analyzes them sequentially and writes the
// formatted batch result
func (uc *BatchUseCase) Execute(ctx context.Context, req BatchUseCaseRequest) error {
	keywords := append([]string(nil), req.Keywords...)

	if len(req.FilePatterns) > 0 {
		fromFiles, err := uc.listReader.CollectKeywords(req.FilePatterns)
		if err != nil {
			return err
		}
		keywords = append(keywords, fromFiles...)
	}

	if len(keywords) == 0 {
		return domain.NewInvalidInputError("no keywords to analyze", nil)
	}

	results, err := uc.service.AnalyzeBatch(ctx, domain.BatchRequest{
		Keywords: keywords,
		Delay:    req.Delay,
		Progress: uc.progress,
	})
	if err != nil {
		return err
	}

	output, err := uc.formatter.FormatBatch(results, req.OutputFormat)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(req.OutputWriter, output); err != nil {
		return domain.NewExportError("failed to write output", err)
	}
	return nil
}
