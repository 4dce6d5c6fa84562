// Package search provides the documentation search API client.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/config"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/docs"
	urlutil "github.com/kubedocs/k8s-docs-mcp-server/pkg/util/url"
)

const (
	// DefaultResults is the number of results returned when no limit is given
	DefaultResults = 10
	// MaxResults caps the number of results a single search can return
	MaxResults = 50
)

// ErrNotConfigured is returned when the search client is not properly configured
var ErrNotConfigured = fmt.Errorf("search client not configured")

// Client queries the documentation search API.
type Client struct {
	endpoint string
	fetcher  *docs.Fetcher
}

// NewClient creates a new search API client
func NewClient(cfg *config.StaticConfig) *Client {
	return &Client{
		endpoint: cfg.SearchURL,
		fetcher:  docs.NewFetcher(time.Duration(cfg.Timeout) * time.Second),
	}
}

// searchResponse is the wire format of the search API.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Excerpt string `json:"excerpt"`
}

// Search runs phrase against the search API and returns at most limit
// results in the order the API ranked them. A blank phrase fails with
// ErrEmptyQuery before any network traffic happens.
func (c *Client) Search(ctx context.Context, phrase string, limit int) ([]docs.SearchResult, error) {
	if c.endpoint == "" || c.fetcher == nil {
		return nil, ErrNotConfigured
	}

	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return nil, fmt.Errorf("%w: search phrase is blank", docs.ErrEmptyQuery)
	}

	if limit <= 0 {
		limit = DefaultResults
	}
	if limit > MaxResults {
		limit = MaxResults
	}

	searchURL := urlutil.BuildSearchURL(c.endpoint, phrase, limit)
	body, err := c.fetcher.FetchJSON(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to search documentation: %w", err)
	}

	var response searchResponse
	if err := json.Unmarshal([]byte(body), &response); err != nil {
		return nil, fmt.Errorf("%w: failed to decode search response: %v", docs.ErrUpstream, err)
	}

	results := make([]docs.SearchResult, 0, len(response.Results))
	for _, result := range response.Results {
		results = append(results, docs.SearchResult{
			Title:   result.Title,
			URL:     result.URL,
			Excerpt: result.Excerpt,
		})
		if len(results) == limit {
			break
		}
	}

	return results, nil
}
