package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwscout/kwscout/domain"
	"github.com/kwscout/kwscout/mcp"
)

type fakeKeywordService struct {
	analyzeRes  *domain.AnalysisResult
	analyzeErr  error
	researchRes *domain.AuxiliaryResult
	researchErr error

	lastAnalyze  domain.AnalyzeRequest
	lastResearch domain.ResearchRequest
	calls        []string
}

func (f *fakeKeywordService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	f.calls = append(f.calls, "analyze")
	f.lastAnalyze = req
	return f.analyzeRes, f.analyzeErr
}

func (f *fakeKeywordService) AnalyzeBatch(ctx context.Context, req domain.BatchRequest) (domain.BatchResult, error) {
	f.calls = append(f.calls, "batch")
	return domain.BatchResult{}, nil
}

func (f *fakeKeywordService) MatchingKeywords(ctx context.Context, req domain.ResearchRequest) (*domain.AuxiliaryResult, error) {
	f.calls = append(f.calls, "matching")
	f.lastResearch = req
	return f.researchRes, f.researchErr
}

func (f *fakeKeywordService) RelatedKeywords(ctx context.Context, req domain.ResearchRequest) (*domain.AuxiliaryResult, error) {
	f.calls = append(f.calls, "related")
	f.lastResearch = req
	return f.researchRes, f.researchErr
}

func (f *fakeKeywordService) Questions(ctx context.Context, req domain.ResearchRequest) (*domain.AuxiliaryResult, error) {
	f.calls = append(f.calls, "questions")
	f.lastResearch = req
	return f.researchRes, f.researchErr
}

func newHandlers(svc *fakeKeywordService) *mcp.HandlerSet {
	return mcp.NewHandlerSet(mcp.NewTestDependencies(svc, nil, ""))
}

func callRequest(arguments interface{}) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{Arguments: arguments},
	}
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := mcplib.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestHandleAnalyzeKeyword(t *testing.T) {
	t.Run("returns analysis as JSON", func(t *testing.T) {
		svc := &fakeKeywordService{analyzeRes: &domain.AnalysisResult{
			Keyword: "go tutorial",
			Metrics: domain.KeywordMetrics{Overall: 40},
			Levels:  domain.KeywordLevels{Overall: domain.LevelMedium},
		}}
		h := newHandlers(svc)

		res, err := h.HandleAnalyzeKeyword(context.Background(), callRequest(map[string]interface{}{
			"keyword": "go tutorial",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var decoded domain.AnalysisResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
		assert.Equal(t, "go tutorial", decoded.Keyword)
		assert.Equal(t, domain.LevelMedium, decoded.Levels.Overall)
	})

	t.Run("missing keyword is a tool error", func(t *testing.T) {
		h := newHandlers(&fakeKeywordService{})

		res, err := h.HandleAnalyzeKeyword(context.Background(), callRequest(map[string]interface{}{}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("invalid arguments format is a tool error", func(t *testing.T) {
		h := newHandlers(&fakeKeywordService{})

		res, err := h.HandleAnalyzeKeyword(context.Background(), callRequest("not a map"))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("service error is a tool error", func(t *testing.T) {
		svc := &fakeKeywordService{analyzeErr: domain.NewNoDataError("go tutorial")}
		h := newHandlers(svc)

		res, err := h.HandleAnalyzeKeyword(context.Background(), callRequest(map[string]interface{}{
			"keyword": "go tutorial",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "no data returned")
	})
}

func TestHandleResearchTools(t *testing.T) {
	result := &domain.AuxiliaryResult{Keyword: "go tutorial", Type: domain.QueryTypeMatching, Count: 3}

	tests := []struct {
		name     string
		call     func(h *mcp.HandlerSet, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error)
		wantCall string
	}{
		{
			"matching_keywords",
			func(h *mcp.HandlerSet, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
				return h.HandleMatchingKeywords(context.Background(), req)
			},
			"matching",
		},
		{
			"related_keywords",
			func(h *mcp.HandlerSet, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
				return h.HandleRelatedKeywords(context.Background(), req)
			},
			"related",
		},
		{
			"keyword_questions",
			func(h *mcp.HandlerSet, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
				return h.HandleKeywordQuestions(context.Background(), req)
			},
			"questions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeKeywordService{researchRes: result}
			h := newHandlers(svc)

			res, err := tt.call(h, callRequest(map[string]interface{}{
				"keyword": "go tutorial",
				"limit":   float64(25),
			}))
			require.NoError(t, err)
			require.False(t, res.IsError)
			assert.Equal(t, []string{tt.wantCall}, svc.calls)
			assert.Equal(t, 25, svc.lastResearch.Limit)
			assert.Contains(t, resultText(t, res), "go tutorial")
		})
	}

	t.Run("defaults come from config", func(t *testing.T) {
		svc := &fakeKeywordService{researchRes: result}
		h := newHandlers(svc)

		_, err := h.HandleRelatedKeywords(context.Background(), callRequest(map[string]interface{}{
			"keyword": "go tutorial",
		}))
		require.NoError(t, err)
		assert.Equal(t, 300, svc.lastResearch.Limit)
		assert.Equal(t, "v5", svc.lastResearch.Group)
		assert.Equal(t, 0, svc.lastResearch.MinRelatedScore)
	})

	t.Run("min_score and group override defaults", func(t *testing.T) {
		svc := &fakeKeywordService{researchRes: result}
		h := newHandlers(svc)

		_, err := h.HandleRelatedKeywords(context.Background(), callRequest(map[string]interface{}{
			"keyword":   "go tutorial",
			"min_score": float64(40),
			"group":     "v6",
		}))
		require.NoError(t, err)
		assert.Equal(t, 40, svc.lastResearch.MinRelatedScore)
		assert.Equal(t, "v6", svc.lastResearch.Group)
	})
}

func TestHandleExportKeywordsCSV(t *testing.T) {
	// Service canned with one related keyword and empty matching and
	// question results.
	newExportService := func() *fakeKeywordService {
		return &fakeKeywordService{researchRes: &domain.AuxiliaryResult{
			Keyword: "go tutorial",
			Type:    domain.QueryTypeRelated,
			Data:    []interface{}{"go tutorial for beginners"},
			Count:   1,
		}}
	}

	t.Run("combined export reports file path", func(t *testing.T) {
		dir := t.TempDir()
		h := newHandlers(newExportService())

		res, err := h.HandleExportKeywordsCSV(context.Background(), callRequest(map[string]interface{}{
			"keyword":     "go tutorial",
			"output_path": filepath.Join(dir, "out.csv"),
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var decoded struct {
			File string `json:"file"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
		assert.Equal(t, filepath.Join(dir, "out.csv"), decoded.File)

		data, err := os.ReadFile(decoded.File)
		require.NoError(t, err)
		assert.Contains(t, string(data), "go tutorial for beginners")
	})

	t.Run("separate export reports all file paths", func(t *testing.T) {
		dir := t.TempDir()
		h := newHandlers(newExportService())

		res, err := h.HandleExportKeywordsCSV(context.Background(), callRequest(map[string]interface{}{
			"keyword":    "go tutorial",
			"separate":   true,
			"output_dir": dir,
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var decoded struct {
			Files map[string]string `json:"files"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
		assert.Len(t, decoded.Files, 3)
		for _, path := range decoded.Files {
			assert.True(t, strings.HasPrefix(path, dir), "path %s should be under %s", path, dir)
		}
	})

	t.Run("missing keyword is a tool error", func(t *testing.T) {
		h := newHandlers(newExportService())

		res, err := h.HandleExportKeywordsCSV(context.Background(), callRequest(map[string]interface{}{}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}
