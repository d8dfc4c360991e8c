package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kwscout/kwscout/domain"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, "")
	}
	return &HandlerSet{deps: deps}
}

// toolArgs extracts the argument map from a tool call request
func toolArgs(request mcp.CallToolRequest) (map[string]interface{}, bool) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	return args, ok
}

// stringArg reads a required string argument
func stringArg(args map[string]interface{}, name string) (string, bool) {
	value, ok := args[name].(string)
	return value, ok && value != ""
}

// numberArg reads an optional numeric argument, returning fallback
// when absent
func numberArg(args map[string]interface{}, name string, fallback float64) float64 {
	if value, ok := args[name].(float64); ok {
		return value
	}
	return fallback
}

// delayArg resolves the delay argument against the configured default
func (h *HandlerSet) delayArg(args map[string]interface{}) time.Duration {
	seconds := numberArg(args, "delay", h.deps.Config().DelaySeconds)
	if seconds < 0 {
		seconds = 0
	}
	return time.Duration(seconds * float64(time.Second))
}

// jsonResult marshals a value into a text tool result
func jsonResult(value interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// HandleAnalyzeKeyword handles the analyze_keyword tool
func (h *HandlerSet) HandleAnalyzeKeyword(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := toolArgs(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	keyword, ok := stringArg(args, "keyword")
	if !ok {
		return mcp.NewToolResultError("keyword parameter is required and must be a string"), nil
	}

	keywords, err := h.deps.KeywordService()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := keywords.Analyze(ctx, domain.AnalyzeRequest{
		Keyword: keyword,
		Delay:   h.delayArg(args),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	return jsonResult(result)
}

// HandleMatchingKeywords handles the matching_keywords tool
func (h *HandlerSet) HandleMatchingKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleResearch(ctx, request, domain.QueryTypeMatching)
}

// HandleRelatedKeywords handles the related_keywords tool
func (h *HandlerSet) HandleRelatedKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleResearch(ctx, request, domain.QueryTypeRelated)
}

// HandleKeywordQuestions handles the keyword_questions tool
func (h *HandlerSet) HandleKeywordQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleResearch(ctx, request, domain.QueryTypeQuestions)
}

func (h *HandlerSet) handleResearch(ctx context.Context, request mcp.CallToolRequest, queryType domain.QueryType) (*mcp.CallToolResult, error) {
	args, ok := toolArgs(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	keyword, ok := stringArg(args, "keyword")
	if !ok {
		return mcp.NewToolResultError("keyword parameter is required and must be a string"), nil
	}

	keywords, err := h.deps.KeywordService()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := h.deps.Config()
	research := domain.ResearchRequest{
		Keyword:         keyword,
		Limit:           int(numberArg(args, "limit", float64(cfg.Limit))),
		MinRelatedScore: int(numberArg(args, "min_score", float64(cfg.MinRelatedScore))),
		Group:           cfg.Group,
		Delay:           h.delayArg(args),
	}
	if group, ok := args["group"].(string); ok && group != "" {
		research.Group = group
	}

	var result *domain.AuxiliaryResult
	switch queryType {
	case domain.QueryTypeMatching:
		result, err = keywords.MatchingKeywords(ctx, research)
	case domain.QueryTypeRelated:
		result, err = keywords.RelatedKeywords(ctx, research)
	default:
		result, err = keywords.Questions(ctx, research)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	return jsonResult(result)
}

// HandleExportKeywordsCSV handles the export_keywords_csv tool
func (h *HandlerSet) HandleExportKeywordsCSV(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := toolArgs(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	keyword, ok := stringArg(args, "keyword")
	if !ok {
		return mcp.NewToolResultError("keyword parameter is required and must be a string"), nil
	}

	exporter, err := h.deps.ExportService()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := h.deps.Config()
	export := domain.ExportRequest{
		Keyword: keyword,
		Limit:   int(numberArg(args, "limit", float64(cfg.Limit))),
		Delay:   h.delayArg(args),
	}
	if path, ok := args["output_path"].(string); ok {
		export.OutputPath = path
	}
	if dir, ok := args["output_dir"].(string); ok && dir != "" {
		export.OutputDir = dir
	} else {
		export.OutputDir = cfg.Output.Directory
	}

	separate, _ := args["separate"].(bool)
	if separate {
		paths, err := exporter.ExportSeparate(ctx, export)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
		}
		return jsonResult(map[string]interface{}{"files": paths})
	}

	path, err := exporter.ExportCombined(ctx, export)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}
	return jsonResult(map[string]interface{}{"file": path})
}
