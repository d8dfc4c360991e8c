package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all kwscout MCP tools with the server
func RegisterTools(s *server.MCPServer, h *HandlerSet) {
	// Tool 1: analyze_keyword - Single keyword analysis
	s.AddTool(mcp.NewTool("analyze_keyword",
		mcp.WithDescription("Analyze a YouTube keyword: search volume, competition, estimated monthly searches, and overall score with levels from Very Low to Very High"),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Keyword to analyze")),
		mcp.WithNumber("delay",
			mcp.Description("Pause in seconds before the API request (default: configured delay)")),
	), h.HandleAnalyzeKeyword)

	// Tool 2: matching_keywords - Keyword permutations
	s.AddTool(mcp.NewTool("matching_keywords",
		mcp.WithDescription("Find keywords matching a seed keyword (permutations)"),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Seed keyword")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 300)")),
	), h.HandleMatchingKeywords)

	// Tool 3: related_keywords - Related keyword search
	s.AddTool(mcp.NewTool("related_keywords",
		mcp.WithDescription("Find keywords related to a seed keyword, optionally filtered by a minimum score"),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Seed keyword")),
		mcp.WithNumber("min_score",
			mcp.Description("Minimum related keyword score (default: 0)")),
		mcp.WithString("group",
			mcp.Description("Scoring group sent with the request (default: v5)")),
	), h.HandleRelatedKeywords)

	// Tool 4: keyword_questions - Question phrasings
	s.AddTool(mcp.NewTool("keyword_questions",
		mcp.WithDescription("Find questions people ask about a seed keyword"),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Seed keyword")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 300)")),
	), h.HandleKeywordQuestions)

	// Tool 5: export_keywords_csv - CSV export
	s.AddTool(mcp.NewTool("export_keywords_csv",
		mcp.WithDescription("Run the related, matching, and question queries for a seed keyword and write the rows to CSV files"),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Seed keyword")),
		mcp.WithBoolean("separate",
			mcp.Description("Write one CSV file per query type (default: false)")),
		mcp.WithString("output_path",
			mcp.Description("Output file path for the combined export")),
		mcp.WithString("output_dir",
			mcp.Description("Output directory for separate exports")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results per query (default: 300)")),
	), h.HandleExportKeywordsCSV)
}
