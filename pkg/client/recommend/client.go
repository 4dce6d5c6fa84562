// Package recommend provides the related-pages recommendation API client.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/config"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/docs"
	urlutil "github.com/kubedocs/k8s-docs-mcp-server/pkg/util/url"
)

// ErrNotConfigured is returned when the recommendation client is not properly configured
var ErrNotConfigured = fmt.Errorf("recommendation client not configured")

// Client queries the recommendation API for pages related to a
// documentation URL.
type Client struct {
	endpoint  string
	fetcher   *docs.Fetcher
	validator *docs.Validator
}

// NewClient creates a new recommendation API client
func NewClient(cfg *config.StaticConfig) (*Client, error) {
	validator, err := docs.NewValidator(cfg.DocsBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create URL validator: %w", err)
	}

	return &Client{
		endpoint:  cfg.RecommendURL,
		fetcher:   docs.NewFetcher(time.Duration(cfg.Timeout) * time.Second),
		validator: validator,
	}, nil
}

// recommendResponse is the wire format of the recommendation API. The
// relation label is passed through untouched; this client does not
// interpret it.
type recommendResponse struct {
	Recommendations []recommendation `json:"recommendations"`
}

type recommendation struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Relation string `json:"relation"`
	Context  string `json:"context"`
}

// Recommend returns pages related to pageURL. The URL must point inside the
// documentation site; validation happens before any network traffic. An
// empty recommendation list is a valid answer, not an error.
func (c *Client) Recommend(ctx context.Context, pageURL string) ([]docs.Recommendation, error) {
	if c.endpoint == "" || c.fetcher == nil || c.validator == nil {
		return nil, ErrNotConfigured
	}

	canonical, err := c.validator.Validate(pageURL)
	if err != nil {
		return nil, err
	}

	recommendURL := urlutil.BuildRecommendationURL(c.endpoint, canonical)
	body, err := c.fetcher.FetchJSON(ctx, recommendURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}

	var response recommendResponse
	if err := json.Unmarshal([]byte(body), &response); err != nil {
		return nil, fmt.Errorf("%w: failed to decode recommendation response: %v", docs.ErrUpstream, err)
	}

	recommendations := make([]docs.Recommendation, 0, len(response.Recommendations))
	for _, rec := range response.Recommendations {
		recommendations = append(recommendations, docs.Recommendation{
			Title:    rec.Title,
			URL:      rec.URL,
			Relation: rec.Relation,
			Context:  rec.Context,
		})
	}

	return recommendations, nil
}
