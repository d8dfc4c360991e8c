package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kwscout/kwscout/domain"
)

// ResearchUseCaseRequest carries the inputs for the auxiliary query
// workflows
type ResearchUseCaseRequest struct {
	QueryType       domain.QueryType
	Keyword         string
	Limit           int
	MinRelatedScore int
	Group           string
	Delay           time.Duration
	OutputFormat    domain.OutputFormat
	OutputWriter    io.Writer
}

// ResearchUseCase orchestrates the matching, related and question
// query workflows
type ResearchUseCase struct {
	service   domain.KeywordService
	formatter domain.OutputFormatter
}

// NewResearchUseCase creates a new research use case
func NewResearchUseCase(service domain.KeywordService, formatter domain.OutputFormatter) *ResearchUseCase {
	return &ResearchUseCase{
		service:   service,
		formatter: formatter,
	}
}

// Execute dispatches the requested query type and writes the formatted
// envelope
func (uc *ResearchUseCase) Execute(ctx context.Context, req ResearchUseCaseRequest) error {
	research := domain.ResearchRequest{
		Keyword:         req.Keyword,
		Limit:           req.Limit,
		MinRelatedScore: req.MinRelatedScore,
		Group:           req.Group,
		Delay:           req.Delay,
	}

	var result *domain.AuxiliaryResult
	var err error
	switch req.QueryType {
	case domain.QueryTypeMatching:
		result, err = uc.service.MatchingKeywords(ctx, research)
	case domain.QueryTypeRelated:
		result, err = uc.service.RelatedKeywords(ctx, research)
	case domain.QueryTypeQuestions:
		result, err = uc.service.Questions(ctx, research)
	default:
		return domain.NewInvalidInputError(fmt.Sprintf("unknown query type: %s", req.QueryType), nil)
	}
	if err != nil {
		return err
	}

	output, err := uc.formatter.FormatResearch(result, req.OutputFormat)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(req.OutputWriter, output); err != nil {
		return domain.NewExportError("failed to write output", err)
	}
	return nil
}
