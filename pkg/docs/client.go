// Package docs provides the documentation site client for page retrieval
// operations. Pages are fetched over HTTP, converted from HTML to markdown,
// and windowed for paginated reading.
package docs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/config"
)

// ErrNotConfigured is returned when the documentation client is not properly configured
var ErrNotConfigured = fmt.Errorf("documentation client not configured")

// Client combines URL validation, page fetching, and markdown conversion.
type Client struct {
	validator *Validator
	fetcher   *Fetcher
}

// NewClient creates a new documentation site client
func NewClient(cfg *config.StaticConfig) (*Client, error) {
	validator, err := NewValidator(cfg.DocsBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create URL validator: %w", err)
	}

	return &Client{
		validator: validator,
		fetcher:   NewFetcher(time.Duration(cfg.Timeout) * time.Second),
	}, nil
}

// Validate checks that rawURL points inside the documentation site and
// returns its canonical form.
func (c *Client) Validate(rawURL string) (string, error) {
	if c.validator == nil {
		return "", ErrNotConfigured
	}
	return c.validator.Validate(rawURL)
}

// ReadPage fetches the documentation page at rawURL and converts it to
// markdown. The URL is validated before any network traffic happens.
func (c *Client) ReadPage(ctx context.Context, rawURL string) (*DocumentationPage, error) {
	if c.validator == nil || c.fetcher == nil {
		return nil, ErrNotConfigured
	}

	canonical, err := c.validator.Validate(rawURL)
	if err != nil {
		return nil, err
	}

	rawHTML, err := c.fetcher.Fetch(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", canonical, err)
	}

	markdown, err := ConvertToMarkdown(rawHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", canonical, err)
	}

	title := ExtractTitle(rawHTML)
	if title == "" {
		title = titleFromURL(canonical)
	}

	return &DocumentationPage{
		Title:       title,
		URL:         canonical,
		Markdown:    markdown,
		TotalLength: len([]rune(markdown)),
	}, nil
}

// titleFromURL derives a fallback title from the last URL path segment.
func titleFromURL(url string) string {
	trimmed := strings.TrimSuffix(url, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed
}
