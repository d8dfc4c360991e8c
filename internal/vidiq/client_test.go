package vidiq

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/kwscout/kwscout/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripFunc adapts a function to http.RoundTripper
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	c, err := NewClient("test_token", WithHTTPClient(&http.Client{Transport: rt}))
	require.NoError(t, err)
	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidInput))

	_, err = NewClient("   ")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidInput))

	c, err := NewClient("token")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestSearchStatsRequestShape(t *testing.T) {
	var captured *http.Request
	c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"search_stats":{"compvol":{}}}`), nil
	})

	_, err := c.SearchStats(context.Background(), "youtube SEO")
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "api.vidiq.com", captured.URL.Host)
	assert.Equal(t, "/v0/hottersearch", captured.URL.Path)
	assert.Equal(t, "Bearer test_token", captured.Header.Get("Authorization"))

	q := captured.URL.Query()
	assert.Equal(t, "youtube SEO", q.Get("q"))
	assert.Equal(t, "4.5", q.Get("im"))
	assert.Equal(t, "V5", q.Get("group"))
	assert.True(t, q.Has("src"))
}

func TestKeywordSearchRequestShape(t *testing.T) {
	var captured *http.Request
	c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"permutations":[]}`), nil
	})

	_, err := c.KeywordSearch(context.Background(), "cats", PermutationsField, 300)
	require.NoError(t, err)

	assert.Equal(t, "/xwords/keyword_search/", captured.URL.Path)
	q := captured.URL.Query()
	assert.Equal(t, "cats", q.Get("term"))
	assert.Equal(t, "permutations", q.Get("part"))
	assert.Equal(t, "300", q.Get("limit"))
}

func TestRelatedSearchRequestShape(t *testing.T) {
	var captured *http.Request
	c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"keywords":[]}`), nil
	})

	_, err := c.RelatedSearch(context.Background(), "cats", 10, "v5")
	require.NoError(t, err)

	assert.Equal(t, "/xwords/hottersearch", captured.URL.Path)
	q := captured.URL.Query()
	assert.Equal(t, "cats", q.Get("q"))
	assert.Equal(t, "10", q.Get("min_related_score"))
	assert.Equal(t, "v5", q.Get("group"))
}

func TestGetWrapsNetworkErrors(t *testing.T) {
	cause := errors.New("connection refused")
	c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return nil, cause
	})

	_, err := c.SearchStats(context.Background(), "cats")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAPIError))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetWrapsHTTPStatusErrors(t *testing.T) {
	c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"detail":"invalid token"}`), nil
	})

	_, err := c.SearchStats(context.Background(), "cats")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAPIError))
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestGetWrapsDecodeErrors(t *testing.T) {
	c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"broken":`), nil
	})

	_, err := c.SearchStats(context.Background(), "cats")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAPIError))
	assert.Contains(t, err.Error(), "invalid JSON response")
}

func TestGetNullAndEmptyBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"JSON null", `null`},
		{"Empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, tt.body), nil
			})

			raw, err := c.SearchStats(context.Background(), "cats")
			require.NoError(t, err)
			assert.True(t, IsEmpty(raw))
		})
	}
}

func TestIsEmptyDistinguishesEmptyObject(t *testing.T) {
	// {} decodes to a non-nil empty map and still counts as no data;
	// an object with any field does not.
	assert.True(t, IsEmpty(RawResponse{}))
	assert.True(t, IsEmpty(nil))
	assert.False(t, IsEmpty(RawResponse{"permutations": []interface{}{}}))
}
