package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/kwscout/kwscout/domain"
	"github.com/kwscout/kwscout/internal/vidiq"
)

// naValue is the literal written for absent numeric fields
const naValue = "N/A"

// csvHeader is the fixed 7-column export schema
var csvHeader = []string{"keyword", "type", "score", "volume", "competition", "source_keyword", "timestamp"}

// exportOrder fixes the query sequence and the combined-file row grouping
var exportOrder = []domain.QueryType{domain.QueryTypeRelated, domain.QueryTypeMatching, domain.QueryTypeQuestions}

// ExportServiceImpl implements the ExportService interface. It fans the
// three auxiliary queries out sequentially and flattens their result
// lists into CSV rows.
type ExportServiceImpl struct {
	keywords domain.KeywordService
}

// NewExportService creates a new export service
func NewExportService(keywords domain.KeywordService) *ExportServiceImpl {
	return &ExportServiceImpl{keywords: keywords}
}

// ExportCombined writes one CSV holding all rows, grouped
// related-then-matching-then-questions, and returns the written path
func (s *ExportServiceImpl) ExportCombined(ctx context.Context, req domain.ExportRequest) (string, error) {
	grouped, err := s.gather(ctx, req)
	if err != nil {
		return "", err
	}

	var rows []domain.CSVRow
	for _, queryType := range exportOrder {
		rows = append(rows, grouped[queryType]...)
	}
	if len(rows) == 0 {
		return "", domain.NewExportError(fmt.Sprintf("no keyword data to export for: %s", req.Keyword), nil)
	}

	path := req.OutputPath
	if path == "" {
		path = SanitizeFilename(req.Keyword) + "_keywords.csv"
	}

	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	return path, nil
}

// ExportSeparate writes one CSV per query type into req.OutputDir and
// returns the written paths keyed by type. Types whose result set came
// back empty still get a header-only file, so callers always receive
// three paths on success.
func (s *ExportServiceImpl) ExportSeparate(ctx context.Context, req domain.ExportRequest) (map[domain.QueryType]string, error) {
	grouped, err := s.gather(ctx, req)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, rows := range grouped {
		total += len(rows)
	}
	if total == 0 {
		return nil, domain.NewExportError(fmt.Sprintf("no keyword data to export for: %s", req.Keyword), nil)
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	// Best effort: a failed create surfaces through the file write below.
	_ = os.MkdirAll(outputDir, 0o755)

	base := SanitizeFilename(req.Keyword)
	paths := make(map[domain.QueryType]string, len(exportOrder))
	for _, queryType := range exportOrder {
		path := filepath.Join(outputDir, fmt.Sprintf("%s_%s.csv", base, queryType))
		if err := writeCSV(path, grouped[queryType]); err != nil {
			return nil, err
		}
		paths[queryType] = path
	}

	return paths, nil
}

// gather runs the three auxiliary queries in the fixed export order and
// flattens each result list
func (s *ExportServiceImpl) gather(ctx context.Context, req domain.ExportRequest) (map[domain.QueryType][]domain.CSVRow, error) {
	research := domain.ResearchRequest{
		Keyword: req.Keyword,
		Limit:   req.Limit,
		Delay:   req.Delay,
	}

	related, err := s.keywords.RelatedKeywords(ctx, research)
	if err != nil {
		return nil, err
	}
	matching, err := s.keywords.MatchingKeywords(ctx, research)
	if err != nil {
		return nil, err
	}
	questions, err := s.keywords.Questions(ctx, research)
	if err != nil {
		return nil, err
	}

	return map[domain.QueryType][]domain.CSVRow{
		domain.QueryTypeRelated:   flattenResult(related),
		domain.QueryTypeMatching:  flattenResult(matching),
		domain.QueryTypeQuestions: flattenResult(questions),
	}, nil
}

// flattenResult converts an auxiliary envelope into CSV rows
func flattenResult(result *domain.AuxiliaryResult) []domain.CSVRow {
	items := resultItems(result)
	rows := make([]domain.CSVRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, itemToRow(item, result))
	}
	return rows
}

// resultItems extracts the list the envelope's Count was computed from
func resultItems(result *domain.AuxiliaryResult) []interface{} {
	switch data := result.Data.(type) {
	case []interface{}:
		return data
	case map[string]interface{}:
		field := vidiq.PermutationsField
		if result.Type == domain.QueryTypeQuestions {
			field = vidiq.QuestionsField
		}
		list, _ := vidiq.ExtractList(vidiq.RawResponse(data), field)
		return list
	default:
		return nil
	}
}

// itemToRow maps one list element to a row. Structured records
// contribute keyword/score/volume/competition with "N/A" defaults;
// bare strings populate only the keyword column.
func itemToRow(item interface{}, result *domain.AuxiliaryResult) domain.CSVRow {
	row := domain.CSVRow{
		Keyword:       naValue,
		Type:          rowType(result.Type),
		Score:         naValue,
		Volume:        naValue,
		Competition:   naValue,
		SourceKeyword: result.Keyword,
		Timestamp:     result.Timestamp,
	}

	switch v := item.(type) {
	case string:
		row.Keyword = v
	case map[string]interface{}:
		row.Keyword = stringCell(v, "keyword")
		row.Score = numberCell(v, "score")
		row.Volume = numberCell(v, "volume")
		row.Competition = numberCell(v, "competition")
	default:
		row.Keyword = fmt.Sprint(item)
	}

	return row
}

// rowType renders the per-row type tag. Question rows use the singular
// form in the export schema.
func rowType(queryType domain.QueryType) string {
	if queryType == domain.QueryTypeQuestions {
		return "question"
	}
	return string(queryType)
}

func stringCell(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return naValue
}

func numberCell(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		if v != "" {
			return v
		}
	}
	return naValue
}

func writeCSV(path string, rows []domain.CSVRow) error {
	file, err := os.Create(path)
	if err != nil {
		return domain.NewExportError(fmt.Sprintf("failed to create file: %s", path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return domain.NewExportError("failed to write CSV header", err)
	}
	for _, row := range rows {
		record := []string{row.Keyword, row.Type, row.Score, row.Volume, row.Competition, row.SourceKeyword, row.Timestamp}
		if err := writer.Write(record); err != nil {
			return domain.NewExportError("failed to write CSV row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return domain.NewExportError("failed to flush CSV output", err)
	}
	return nil
}

// SanitizeFilename reduces a keyword to a safe file name stem: letters,
// digits, spaces, hyphens and underscores survive, then spaces become
// underscores
func SanitizeFilename(keyword string) string {
	var b strings.Builder
	for _, r := range keyword {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	stem := strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
	if stem == "" {
		return "keywords"
	}
	return stem
}
