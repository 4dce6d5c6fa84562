// Package url provides URL construction utilities for documentation site endpoints.
package url

import (
	"net/url"
	"strconv"
	"strings"
)

// NormalizeBaseURL handles both base URL formats:
// - "https://kubernetes.io/docs/" -> strips the trailing slash
// - "https://kubernetes.io/docs" -> uses as-is
func NormalizeBaseURL(base string) string {
	return strings.TrimSuffix(base, "/")
}

// BuildSearchURL returns the search endpoint URL with the query phrase
// and result limit encoded as parameters.
func BuildSearchURL(endpoint string, phrase string, limit int) string {
	values := url.Values{}
	values.Set("q", phrase)
	values.Set("limit", strconv.Itoa(limit))
	return appendQuery(endpoint, values)
}

// BuildRecommendationURL returns the recommendation endpoint URL for a page.
func BuildRecommendationURL(endpoint string, pageURL string) string {
	values := url.Values{}
	values.Set("url", pageURL)
	return appendQuery(endpoint, values)
}

func appendQuery(endpoint string, values url.Values) string {
	separator := "?"
	if strings.Contains(endpoint, "?") {
		separator = "&"
	}
	return endpoint + separator + values.Encode()
}
