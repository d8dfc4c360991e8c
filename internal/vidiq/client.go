// Package vidiq implements the HTTP transport and response normalization
// for the vidIQ keyword research API.
package vidiq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kwscout/kwscout/domain"
)

// Upstream endpoints. The analysis and related searches live on the
// hottersearch surface, matching and question lookups on keyword_search.
const (
	analysisURL      = "https://api.vidiq.com/v0/hottersearch"
	keywordSearchURL = "https://api.vidiq.com/xwords/keyword_search/"
	relatedSearchURL = "https://api.vidiq.com/xwords/hottersearch"

	requestTimeout = 30 * time.Second

	userAgent = "kwscout/1.0"
)

// Fixed analysis query parameters the upstream expects alongside the keyword
const (
	analysisIM    = "4.5"
	analysisGroup = "V5"
)

// RawResponse is a decoded upstream JSON object before normalization
type RawResponse map[string]interface{}

// Client issues authenticated GET requests against the vidIQ API.
// It holds no mutable state after construction.
type Client struct {
	token      string
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a vidIQ API client. The token must be non-empty.
func NewClient(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.NewInvalidInputError(
			"no auth token provided: pass it directly or set the VIDIQ_TOKEN environment variable", nil)
	}

	c := &Client{
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchStats fetches the analysis payload for one keyword
func (c *Client) SearchStats(ctx context.Context, keyword string) (RawResponse, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("im", analysisIM)
	params.Set("group", analysisGroup)
	params.Set("src", "")
	return c.get(ctx, analysisURL, params)
}

// KeywordSearch fetches a keyword_search part ("permutations" or
// "questions") for one keyword
func (c *Client) KeywordSearch(ctx context.Context, keyword, part string, limit int) (RawResponse, error) {
	params := url.Values{}
	params.Set("term", keyword)
	params.Set("part", part)
	params.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, keywordSearchURL, params)
}

// RelatedSearch fetches related keywords for one keyword
func (c *Client) RelatedSearch(ctx context.Context, keyword string, minRelatedScore int, group string) (RawResponse, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("min_related_score", strconv.Itoa(minRelatedScore))
	params.Set("group", group)
	return c.get(ctx, relatedSearchURL, params)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, domain.NewAPIError("failed to build request", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewAPIError("network error", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewAPIError("failed to read response body", err)
	}

	if resp.StatusCode >= 400 {
		return nil, domain.NewAPIError(
			fmt.Sprintf("vidIQ API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	// An empty body and a JSON null both decode to a nil map; callers
	// distinguish that from a structurally valid empty object.
	var raw RawResponse
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, domain.NewAPIError("invalid JSON response", err)
		}
	}

	return raw, nil
}
