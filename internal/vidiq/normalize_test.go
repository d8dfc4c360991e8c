package vidiq

import (
	"encoding/json"
	"testing"

	"github.com/kwscout/kwscout/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisPayload(t *testing.T, keys map[string]interface{}) RawResponse {
	t.Helper()
	return RawResponse{
		"search_stats": map[string]interface{}{
			"compvol": keys,
		},
	}
}

func metricsEntry(volume, competition, ems, overall float64) map[string]interface{} {
	return map[string]interface{}{
		"volume":                   volume,
		"competition":              competition,
		"estimated_monthly_search": ems,
		"overall":                  overall,
	}
}

func TestExtractMetricsExactMatch(t *testing.T) {
	raw := analysisPayload(t, map[string]interface{}{
		"test keyword": metricsEntry(50, 30, 1000, 40),
	})

	metrics, err := ExtractMetrics(raw, "test keyword")
	require.NoError(t, err)

	assert.Equal(t, 50.0, metrics.Volume)
	assert.Equal(t, 30.0, metrics.Competition)
	assert.Equal(t, 1000.0, metrics.EstimatedMonthlySearch)
	assert.Equal(t, 40.0, metrics.Overall)
}

func TestExtractMetricsCaseVariants(t *testing.T) {
	tests := []struct {
		name        string
		responseKey string
		lookup      string
	}{
		{"Lowercase response", "test keyword", "Test Keyword"},
		{"Uppercase response", "TEST KEYWORD", "test keyword"},
		{"Title case response", "Test Keyword", "test keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := analysisPayload(t, map[string]interface{}{
				tt.responseKey: metricsEntry(50, 30, 1000, 40),
			})

			metrics, err := ExtractMetrics(raw, tt.lookup)
			require.NoError(t, err)
			assert.Equal(t, 50.0, metrics.Volume)
		})
	}
}

func TestExtractMetricsExactBeforeVariants(t *testing.T) {
	// When both the exact form and a case variant are present, the
	// exact form wins.
	raw := analysisPayload(t, map[string]interface{}{
		"Go Tutorial": metricsEntry(70, 10, 500, 55),
		"go tutorial": metricsEntry(10, 90, 100, 15),
	})

	metrics, err := ExtractMetrics(raw, "Go Tutorial")
	require.NoError(t, err)
	assert.Equal(t, 70.0, metrics.Volume)
}

func TestExtractMetricsNotFound(t *testing.T) {
	raw := analysisPayload(t, map[string]interface{}{
		"cats":   metricsEntry(1, 2, 3, 4),
		"apples": metricsEntry(5, 6, 7, 8),
	})

	_, err := ExtractMetrics(raw, "nonexistent keyword")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
	// Diagnostics list available keys in sorted order.
	assert.Contains(t, err.Error(), "[apples, cats]")
}

func TestExtractMetricsEmptyCompvol(t *testing.T) {
	raw := analysisPayload(t, map[string]interface{}{})

	_, err := ExtractMetrics(raw, "anything")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "Available keywords: []")
}

func TestExtractMetricsMalformedContainer(t *testing.T) {
	tests := []struct {
		name string
		raw  RawResponse
	}{
		{"Missing search_stats", RawResponse{"other": 1.0}},
		{"search_stats wrong type", RawResponse{"search_stats": "oops"}},
		{"Missing compvol", RawResponse{"search_stats": map[string]interface{}{}}},
		{"compvol wrong type", RawResponse{"search_stats": map[string]interface{}{"compvol": []interface{}{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractMetrics(tt.raw, "cats")
			require.Error(t, err)
			assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
		})
	}
}

func TestExtractMetricsMissingFieldsDefaultToZero(t *testing.T) {
	raw := analysisPayload(t, map[string]interface{}{
		"cats": map[string]interface{}{"volume": 42.0},
	})

	metrics, err := ExtractMetrics(raw, "cats")
	require.NoError(t, err)
	assert.Equal(t, 42.0, metrics.Volume)
	assert.Zero(t, metrics.Competition)
	assert.Zero(t, metrics.EstimatedMonthlySearch)
	assert.Zero(t, metrics.Overall)
}

func TestExtractList(t *testing.T) {
	var raw RawResponse
	require.NoError(t, json.Unmarshal([]byte(`{"permutations":["a","b","c"]}`), &raw))

	list, ok := ExtractList(raw, PermutationsField)
	assert.True(t, ok)
	assert.Len(t, list, 3)

	_, ok = ExtractList(raw, QuestionsField)
	assert.False(t, ok)

	_, ok = ExtractList(RawResponse{"permutations": "not a list"}, PermutationsField)
	assert.False(t, ok)
}

func TestExtractRelatedFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"Direct keywords field", `{"keywords":["a","b"]}`, 2},
		{"related_keywords fallback", `{"related_keywords":["a"]}`, 1},
		{"Nested search_stats.related", `{"search_stats":{"related":["a","b","c"]}}`, 3},
		{"keywords wins over related_keywords", `{"keywords":["a"],"related_keywords":["b","c"]}`, 1},
		{"related_keywords wins over nested", `{"related_keywords":["b","c"],"search_stats":{"related":["a"]}}`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw RawResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &raw))
			assert.Len(t, ExtractRelated(raw), tt.want)
		})
	}
}

func TestExtractRelatedNoRecognizedField(t *testing.T) {
	var raw RawResponse
	require.NoError(t, json.Unmarshal([]byte(`{"something_else":true}`), &raw))

	related := ExtractRelated(raw)
	assert.NotNil(t, related)
	assert.Empty(t, related)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"test keyword", "Test Keyword"},
		{"YOUTUBE SEO", "Youtube Seo"},
		{"single", "Single"},
		{"", ""},
		{"double  space", "Double  Space"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in), "titleCase(%q)", tt.in)
	}
}
