package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kwscout/kwscout/domain"
	"gopkg.in/yaml.v3"
)

const summaryRule = "=================================================="

// batchCSVHeader is the per-keyword schema used by batch CSV output.
// The first eight columns double as the single-analysis CSV schema.
var batchCSVHeader = []string{"keyword", "volume", "competition", "estimated_monthly_search", "overall", "volume_level", "competition_level", "overall_level", "error"}

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter service
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// FormatAnalysis renders a single analysis result
func (f *OutputFormatterImpl) FormatAnalysis(result *domain.AnalysisResult, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.analysisText(result), nil
	case domain.OutputFormatJSON:
		return marshalJSON(result)
	case domain.OutputFormatYAML:
		return marshalYAML(result)
	case domain.OutputFormatCSV:
		var builder strings.Builder
		writer := csv.NewWriter(&builder)
		if err := writer.Write(batchCSVHeader[:8]); err != nil {
			return "", domain.NewExportError("failed to write CSV header", err)
		}
		if err := writer.Write(analysisRecord(result)); err != nil {
			return "", domain.NewExportError("failed to write CSV row", err)
		}
		writer.Flush()
		return builder.String(), writer.Error()
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// FormatBatch renders a batch result. Keywords are sorted for
// deterministic output.
func (f *OutputFormatterImpl) FormatBatch(result domain.BatchResult, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.batchText(result), nil
	case domain.OutputFormatJSON:
		return marshalJSON(result)
	case domain.OutputFormatYAML:
		return marshalYAML(result)
	case domain.OutputFormatCSV:
		return f.batchCSV(result)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// FormatResearch renders an auxiliary query envelope. CSV output for
// research results goes through the export service, which owns the row
// schema, so the formatter rejects it here.
func (f *OutputFormatterImpl) FormatResearch(result *domain.AuxiliaryResult, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.researchText(result), nil
	case domain.OutputFormatJSON:
		return marshalJSON(result)
	case domain.OutputFormatYAML:
		return marshalYAML(result)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *OutputFormatterImpl) analysisText(result *domain.AnalysisResult) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Keyword Analysis: %s\n", result.Keyword)
	builder.WriteString(summaryRule + "\n")
	fmt.Fprintf(&builder, "Volume: %s\n", formatScore(result.Metrics.Volume))
	fmt.Fprintf(&builder, "Competition: %s\n", formatScore(result.Metrics.Competition))
	fmt.Fprintf(&builder, "Monthly Searches: %s\n", formatScore(result.Metrics.EstimatedMonthlySearch))
	fmt.Fprintf(&builder, "Overall Score: %s\n", formatScore(result.Metrics.Overall))
	fmt.Fprintf(&builder, "Volume Level: %s\n", result.Levels.Volume)
	fmt.Fprintf(&builder, "Competition Level: %s\n", result.Levels.Competition)
	fmt.Fprintf(&builder, "Overall Level: %s\n", result.Levels.Overall)
	builder.WriteString(summaryRule + "\n")

	return builder.String()
}

func (f *OutputFormatterImpl) batchText(result domain.BatchResult) string {
	var builder strings.Builder

	succeeded := 0
	for _, keyword := range sortedKeywords(result) {
		entry := result[keyword]
		if entry.Failed() {
			fmt.Fprintf(&builder, "❌ %s: %s\n", keyword, entry.Error)
			continue
		}
		succeeded++
		fmt.Fprintf(&builder, "✅ %s: Volume=%s, Competition=%s, Overall=%s (%s)\n",
			keyword,
			formatScore(entry.Result.Metrics.Volume),
			formatScore(entry.Result.Metrics.Competition),
			formatScore(entry.Result.Metrics.Overall),
			entry.Result.Levels.Overall)
	}

	fmt.Fprintf(&builder, "\nAnalyzed %d keywords: %d succeeded, %d failed\n",
		len(result), succeeded, len(result)-succeeded)

	return builder.String()
}

func (f *OutputFormatterImpl) batchCSV(result domain.BatchResult) (string, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	if err := writer.Write(batchCSVHeader); err != nil {
		return "", domain.NewExportError("failed to write CSV header", err)
	}

	for _, keyword := range sortedKeywords(result) {
		entry := result[keyword]
		var record []string
		if entry.Failed() {
			record = []string{keyword, "", "", "", "", "", "", "", entry.Error}
		} else {
			record = append(analysisRecord(entry.Result), "")
		}
		if err := writer.Write(record); err != nil {
			return "", domain.NewExportError("failed to write CSV row", err)
		}
	}

	writer.Flush()
	return builder.String(), writer.Error()
}

func (f *OutputFormatterImpl) researchText(result *domain.AuxiliaryResult) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "%s results for '%s': %d\n", researchLabel(result.Type), result.Keyword, result.Count)

	items := resultItems(result)
	shown := len(items)
	if shown > 10 {
		shown = 10
	}
	for i := 0; i < shown; i++ {
		fmt.Fprintf(&builder, "  %d. %s\n", i+1, itemLabel(items[i]))
	}
	if len(items) > shown {
		fmt.Fprintf(&builder, "  ... and %d more\n", len(items)-shown)
	}

	return builder.String()
}

func researchLabel(queryType domain.QueryType) string {
	switch queryType {
	case domain.QueryTypeMatching:
		return "Matching keyword"
	case domain.QueryTypeRelated:
		return "Related keyword"
	case domain.QueryTypeQuestions:
		return "Question"
	default:
		return string(queryType)
	}
}

// itemLabel renders the display text of one result list element
func itemLabel(item interface{}) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]interface{}:
		if kw, ok := v["keyword"].(string); ok && kw != "" {
			return kw
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(item)
	}
}

func analysisRecord(result *domain.AnalysisResult) []string {
	return []string{
		result.Keyword,
		formatScore(result.Metrics.Volume),
		formatScore(result.Metrics.Competition),
		formatScore(result.Metrics.EstimatedMonthlySearch),
		formatScore(result.Metrics.Overall),
		string(result.Levels.Volume),
		string(result.Levels.Competition),
		string(result.Levels.Overall),
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sortedKeywords(result domain.BatchResult) []string {
	keywords := make([]string, 0, len(result))
	for keyword := range result {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}

func marshalJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.NewExportError("failed to marshal JSON output", err)
	}
	return string(data) + "\n", nil
}

func marshalYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", domain.NewExportError("failed to marshal YAML output", err)
	}
	return string(data), nil
}
