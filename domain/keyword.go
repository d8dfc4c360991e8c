package domain

import (
	"context"
	"io"
	"time"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// QueryType identifies which keyword research endpoint produced a result
type QueryType string

const (
	QueryTypeMatching  QueryType = "matching"
	QueryTypeRelated   QueryType = "related"
	QueryTypeQuestions QueryType = "questions"
)

// LevelBand is the discretized difficulty label derived from a 0-100 score
type LevelBand string

const (
	LevelVeryLow  LevelBand = "Very Low"
	LevelLow      LevelBand = "Low"
	LevelMedium   LevelBand = "Medium"
	LevelHigh     LevelBand = "High"
	LevelVeryHigh LevelBand = "Very High"
)

// Level thresholds, inclusive upper bounds. Scores below the ladder map to
// Very Low and scores above it to Very High.
const (
	LevelVeryLowMax = 20
	LevelLowMax     = 40
	LevelMediumMax  = 60
	LevelHighMax    = 80
)

// ClassifyLevel maps a numeric score to its level band. Total for any
// float input and free of side effects.
func ClassifyLevel(score float64) LevelBand {
	switch {
	case score <= LevelVeryLowMax:
		return LevelVeryLow
	case score <= LevelLowMax:
		return LevelLow
	case score <= LevelMediumMax:
		return LevelMedium
	case score <= LevelHighMax:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// KeywordMetrics holds the numeric metrics extracted for one keyword.
// Fields missing upstream default to 0.
type KeywordMetrics struct {
	Volume                 float64 `json:"volume" yaml:"volume"`
	Competition            float64 `json:"competition" yaml:"competition"`
	EstimatedMonthlySearch float64 `json:"estimated_monthly_search" yaml:"estimated_monthly_search"`
	Overall                float64 `json:"overall" yaml:"overall"`
}

// KeywordLevels holds the classified bands for the three scored metrics
type KeywordLevels struct {
	Volume      LevelBand `json:"volume_level" yaml:"volume_level"`
	Competition LevelBand `json:"competition_level" yaml:"competition_level"`
	Overall     LevelBand `json:"overall_level" yaml:"overall_level"`
}

// AnalysisResult is the normalized outcome of a single keyword analysis.
// Keyword preserves the caller's original casing.
type AnalysisResult struct {
	Keyword   string         `json:"keyword" yaml:"keyword"`
	Timestamp string         `json:"timestamp" yaml:"timestamp"`
	Metrics   KeywordMetrics `json:"data" yaml:"data"`
	Levels    KeywordLevels  `json:"levels" yaml:"levels"`
}

// BatchEntry is one outcome slot within a batch. Exactly one of Result
// and Error is set.
type BatchEntry struct {
	Result *AnalysisResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the entry holds an error descriptor
func (e BatchEntry) Failed() bool {
	return e.Error != ""
}

// BatchResult maps each input keyword to its analysis or error descriptor.
// Duplicate input keywords collapse to one entry, last write wins.
type BatchResult map[string]BatchEntry

// AuxiliaryResult is the uniform envelope for matching, related and
// question queries. Data holds the extracted related list for related
// queries, and the raw response object for matching and questions.
type AuxiliaryResult struct {
	Keyword   string      `json:"keyword" yaml:"keyword"`
	Timestamp string      `json:"timestamp" yaml:"timestamp"`
	Type      QueryType   `json:"type" yaml:"type"`
	Data      interface{} `json:"data" yaml:"data"`
	Count     int         `json:"count" yaml:"count"`
}

// CSVRow is one exported line. Numeric cells hold the rendered number
// or the "N/A" literal when the source item lacked the field. Rows are
// transient; they exist only during export.
type CSVRow struct {
	Keyword       string
	Type          string
	Score         string
	Volume        string
	Competition   string
	SourceKeyword string
	Timestamp     string
}

// AnalyzeRequest carries the inputs for a single keyword analysis
type AnalyzeRequest struct {
	Keyword string
	Delay   time.Duration
}

// BatchRequest carries the inputs for a sequential multi-keyword analysis
type BatchRequest struct {
	Keywords []string
	Delay    time.Duration

	// Progress receives per-keyword completion updates when non-nil
	Progress ProgressManager
}

// ResearchRequest carries the inputs for the auxiliary query methods.
// Limit applies to matching and question queries; MinRelatedScore and
// Group apply to related queries.
type ResearchRequest struct {
	Keyword         string
	Limit           int
	MinRelatedScore int
	Group           string
	Delay           time.Duration
}

// ExportRequest carries the inputs for CSV export
type ExportRequest struct {
	Keyword string

	// OutputPath overrides the default combined file name
	OutputPath string

	// OutputDir is the target directory for separate per-type files
	OutputDir string

	Limit int
	Delay time.Duration
}

// KeywordService defines the core keyword research operations
type KeywordService interface {
	// Analyze performs a single keyword analysis
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResult, error)

	// AnalyzeBatch analyzes keywords strictly sequentially, isolating
	// per-keyword failures as error entries
	AnalyzeBatch(ctx context.Context, req BatchRequest) (BatchResult, error)

	// MatchingKeywords fetches keyword permutations
	MatchingKeywords(ctx context.Context, req ResearchRequest) (*AuxiliaryResult, error)

	// RelatedKeywords fetches related terms
	RelatedKeywords(ctx context.Context, req ResearchRequest) (*AuxiliaryResult, error)

	// Questions fetches question-style queries
	Questions(ctx context.Context, req ResearchRequest) (*AuxiliaryResult, error)
}

// ExportService defines the CSV export operations
type ExportService interface {
	// ExportCombined writes one CSV holding all three result sets and
	// returns the written path
	ExportCombined(ctx context.Context, req ExportRequest) (string, error)

	// ExportSeparate writes one CSV per query type and returns the
	// written paths keyed by type
	ExportSeparate(ctx context.Context, req ExportRequest) (map[QueryType]string, error)
}

// OutputFormatter defines the interface for rendering results
type OutputFormatter interface {
	// FormatAnalysis renders a single analysis result
	FormatAnalysis(result *AnalysisResult, format OutputFormat) (string, error)

	// FormatBatch renders a batch result
	FormatBatch(result BatchResult, format OutputFormat) (string, error)

	// FormatResearch renders an auxiliary query envelope
	FormatResearch(result *AuxiliaryResult, format OutputFormat) (string, error)
}

// ProgressManager defines the interface for batch progress reporting
type ProgressManager interface {
	// Initialize sets up progress tracking with the maximum value
	Initialize(maxValue int)

	// Start starts the progress display
	Start()

	// Update updates the progress
	Update(processed, total int)

	// Complete marks the progress as completed
	Complete(success bool)

	// SetWriter sets the output writer for progress display
	SetWriter(writer io.Writer)

	// IsInteractive returns true if progress should be shown
	IsInteractive() bool

	// Close cleans up any resources
	Close()
}

// KeywordListReader defines the interface for collecting keywords from files
type KeywordListReader interface {
	// CollectKeywords reads keyword lists from files matching the given
	// glob patterns, one keyword per line
	CollectKeywords(patterns []string) ([]string, error)
}
