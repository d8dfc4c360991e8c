package service

import (
	"context"
	"strings"
	"time"

	"github.com/kwscout/kwscout/domain"
	"github.com/kwscout/kwscout/internal/vidiq"
)

// Defaults applied to research requests when the caller leaves the
// fields zero-valued. Values match the upstream API defaults.
const (
	DefaultResearchLimit = 300
	DefaultRelatedGroup  = "v5"
)

// timestampLayout is the wall-clock format stamped onto every result
const timestampLayout = "2006-01-02 15:04:05"

// KeywordServiceImpl implements the KeywordService interface on top of
// the vidIQ transport
type KeywordServiceImpl struct {
	client *vidiq.Client
	sleep  func(time.Duration)
	now    func() time.Time
}

// KeywordServiceOption customizes a KeywordServiceImpl
type KeywordServiceOption func(*KeywordServiceImpl)

// WithSleep overrides the pre-call wait. Tests inject a no-op so suites
// run without real elapsed time.
func WithSleep(sleep func(time.Duration)) KeywordServiceOption {
	return func(s *KeywordServiceImpl) {
		s.sleep = sleep
	}
}

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) KeywordServiceOption {
	return func(s *KeywordServiceImpl) {
		s.now = now
	}
}

// NewKeywordService creates a new keyword service
func NewKeywordService(client *vidiq.Client, opts ...KeywordServiceOption) *KeywordServiceImpl {
	s := &KeywordServiceImpl{
		client: client,
		sleep:  time.Sleep,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze performs a single keyword analysis: validate, wait, call,
// normalize, classify
func (s *KeywordServiceImpl) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	keyword, err := s.validateKeyword(req.Keyword)
	if err != nil {
		return nil, err
	}

	s.pause(req.Delay)

	raw, err := s.client.SearchStats(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if vidiq.IsEmpty(raw) {
		return nil, domain.NewNoDataError(keyword)
	}

	metrics, err := vidiq.ExtractMetrics(raw, keyword)
	if err != nil {
		return nil, err
	}

	return &domain.AnalysisResult{
		Keyword:   keyword,
		Timestamp: s.now().Format(timestampLayout),
		Metrics:   metrics,
		Levels: domain.KeywordLevels{
			Volume:      domain.ClassifyLevel(metrics.Volume),
			Competition: domain.ClassifyLevel(metrics.Competition),
			Overall:     domain.ClassifyLevel(metrics.Overall),
		},
	}, nil
}

// AnalyzeBatch analyzes keywords strictly sequentially. Each failure is
// recorded as an error entry and never aborts the rest of the batch.
// Duplicate input keywords collapse to one entry, last write wins.
func (s *KeywordServiceImpl) AnalyzeBatch(ctx context.Context, req domain.BatchRequest) (domain.BatchResult, error) {
	results := make(domain.BatchResult, len(req.Keywords))

	if req.Progress != nil {
		req.Progress.Initialize(len(req.Keywords))
		req.Progress.Start()
		defer req.Progress.Close()
	}

	for i, keyword := range req.Keywords {
		result, err := s.Analyze(ctx, domain.AnalyzeRequest{Keyword: keyword, Delay: req.Delay})
		if err != nil {
			results[keyword] = domain.BatchEntry{Error: err.Error()}
		} else {
			results[keyword] = domain.BatchEntry{Result: result}
		}

		if req.Progress != nil {
			req.Progress.Update(i+1, len(req.Keywords))
		}
	}

	if req.Progress != nil {
		req.Progress.Complete(true)
	}

	return results, nil
}

// MatchingKeywords fetches keyword permutations and wraps them in the
// auxiliary envelope
func (s *KeywordServiceImpl) MatchingKeywords(ctx context.Context, req domain.ResearchRequest) (*domain.AuxiliaryResult, error) {
	return s.keywordSearch(ctx, req, domain.QueryTypeMatching, vidiq.PermutationsField)
}

// Questions fetches question-style queries and wraps them in the
// auxiliary envelope
func (s *KeywordServiceImpl) Questions(ctx context.Context, req domain.ResearchRequest) (*domain.AuxiliaryResult, error) {
	return s.keywordSearch(ctx, req, domain.QueryTypeQuestions, vidiq.QuestionsField)
}

// RelatedKeywords fetches related terms. The envelope's Data holds the
// extracted list itself; an unrecognized payload yields an empty list,
// not an error.
func (s *KeywordServiceImpl) RelatedKeywords(ctx context.Context, req domain.ResearchRequest) (*domain.AuxiliaryResult, error) {
	keyword, err := s.validateKeyword(req.Keyword)
	if err != nil {
		return nil, err
	}

	group := req.Group
	if group == "" {
		group = DefaultRelatedGroup
	}

	s.pause(req.Delay)

	raw, err := s.client.RelatedSearch(ctx, keyword, req.MinRelatedScore, group)
	if err != nil {
		return nil, err
	}
	if vidiq.IsEmpty(raw) {
		return nil, domain.NewNoDataError(keyword)
	}

	related := vidiq.ExtractRelated(raw)

	return &domain.AuxiliaryResult{
		Keyword:   keyword,
		Timestamp: s.now().Format(timestampLayout),
		Type:      domain.QueryTypeRelated,
		Data:      related,
		Count:     len(related),
	}, nil
}

func (s *KeywordServiceImpl) keywordSearch(ctx context.Context, req domain.ResearchRequest, queryType domain.QueryType, field string) (*domain.AuxiliaryResult, error) {
	keyword, err := s.validateKeyword(req.Keyword)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultResearchLimit
	}

	s.pause(req.Delay)

	raw, err := s.client.KeywordSearch(ctx, keyword, field, limit)
	if err != nil {
		return nil, err
	}
	if vidiq.IsEmpty(raw) {
		return nil, domain.NewNoDataError(keyword)
	}

	// A valid response without the list field is an empty result, not
	// an error. The envelope keeps the raw object as-is.
	list, _ := vidiq.ExtractList(raw, field)

	return &domain.AuxiliaryResult{
		Keyword:   keyword,
		Timestamp: s.now().Format(timestampLayout),
		Type:      queryType,
		Data:      map[string]interface{}(raw),
		Count:     len(list),
	}, nil
}

func (s *KeywordServiceImpl) validateKeyword(keyword string) (string, error) {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return "", domain.NewInvalidInputError("keyword cannot be empty", nil)
	}
	return trimmed, nil
}

func (s *KeywordServiceImpl) pause(delay time.Duration) {
	if delay > 0 {
		s.sleep(delay)
	}
}
