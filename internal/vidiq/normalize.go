package vidiq

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kwscout/kwscout/domain"
)

// Analysis payload shape: search_stats -> compvol -> per-keyword metrics
const (
	searchStatsField = "search_stats"
	compvolField     = "compvol"
	relatedField     = "related"

	// keyword_search list fields
	PermutationsField = "permutations"
	QuestionsField    = "questions"
)

// Related list field names, checked in priority order
var relatedFallbacks = []string{"keywords", "related_keywords"}

// IsEmpty reports whether the upstream body was null or an empty object.
// Callers treat that as a no-data condition, distinct from a valid
// response missing an optional list field.
func IsEmpty(raw RawResponse) bool {
	return len(raw) == 0
}

// ExtractMetrics locates the metrics object for keyword inside the
// analysis payload and converts it to KeywordMetrics. The upstream keys
// its per-keyword map inconsistently across versions, so the lookup
// tries exact, lower, upper and title-case forms in that order.
// Missing numeric fields default to 0.
func ExtractMetrics(raw RawResponse, keyword string) (domain.KeywordMetrics, error) {
	compvol := compvolMap(raw)

	var entry map[string]interface{}
	found := false
	for _, variant := range caseVariants(keyword) {
		if v, ok := compvol[variant]; ok {
			if m, ok := v.(map[string]interface{}); ok {
				entry = m
				found = true
				break
			}
		}
	}

	if !found {
		keys := make([]string, 0, len(compvol))
		for k := range compvol {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return domain.KeywordMetrics{}, domain.NewKeywordNotFoundError(keyword, keys)
	}

	return domain.KeywordMetrics{
		Volume:                 numberField(entry, "volume"),
		Competition:            numberField(entry, "competition"),
		EstimatedMonthlySearch: numberField(entry, "estimated_monthly_search"),
		Overall:                numberField(entry, "overall"),
	}, nil
}

// ExtractList pulls the named list out of a keyword_search payload.
// An absent or malformed field yields a nil list and ok=false; that is
// a valid empty result, not an error.
func ExtractList(raw RawResponse, field string) ([]interface{}, bool) {
	v, present := raw[field]
	if !present {
		return nil, false
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	return list, true
}

// ExtractRelated pulls the related-keyword list out of a hottersearch
// payload. Upstream versions expose it under keywords, related_keywords
// or search_stats.related; the first present field wins. When none is
// present the related set is empty.
func ExtractRelated(raw RawResponse) []interface{} {
	for _, field := range relatedFallbacks {
		if list, ok := ExtractList(raw, field); ok {
			return list
		}
	}

	if stats, ok := raw[searchStatsField].(map[string]interface{}); ok {
		if list, ok := stats[relatedField].([]interface{}); ok {
			return list
		}
	}

	return []interface{}{}
}

func compvolMap(raw RawResponse) map[string]interface{} {
	stats, ok := raw[searchStatsField].(map[string]interface{})
	if !ok {
		return nil
	}
	compvol, ok := stats[compvolField].(map[string]interface{})
	if !ok {
		return nil
	}
	return compvol
}

// caseVariants returns the lookup candidates for a keyword: exact form
// first, then lowercase, uppercase and title case. Order matters; the
// first match wins.
func caseVariants(keyword string) []string {
	return []string{
		keyword,
		strings.ToLower(keyword),
		strings.ToUpper(keyword),
		titleCase(keyword),
	}
}

// titleCase upper-cases the first letter of every space-separated word
// and lower-cases the rest
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func numberField(entry map[string]interface{}, key string) float64 {
	if v, ok := entry[key].(float64); ok {
		return v
	}
	return 0
}
