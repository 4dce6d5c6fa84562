package toolset

import (
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/client/recommend"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/client/search"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/docs"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset/paramutil"
)

// Clients holds the documentation, search, and recommendation clients.
type Clients struct {
	Docs      *docs.Client
	Search    *search.Client
	Recommend *recommend.Client
}

// ValidateDocsClient validates and returns a configured documentation client.
// Returns ErrDocsNotConfigured if the client is nil.
func ValidateDocsClient(client interface{}) (*docs.Client, error) {
	// Check if it's a Clients bundle first
	if clients, ok := client.(*Clients); ok {
		if clients.Docs == nil {
			return nil, paramutil.ErrDocsNotConfigured
		}
		return clients.Docs, nil
	}

	// Direct documentation client
	docsClient, ok := client.(*docs.Client)
	if !ok || docsClient == nil {
		return nil, paramutil.ErrDocsNotConfigured
	}
	return docsClient, nil
}

// ValidateSearchClient validates and returns a configured search client.
// Returns ErrSearchNotConfigured if the client is nil.
func ValidateSearchClient(client interface{}) (*search.Client, error) {
	if clients, ok := client.(*Clients); ok {
		if clients.Search == nil {
			return nil, paramutil.ErrSearchNotConfigured
		}
		return clients.Search, nil
	}

	searchClient, ok := client.(*search.Client)
	if !ok || searchClient == nil {
		return nil, paramutil.ErrSearchNotConfigured
	}
	return searchClient, nil
}

// ValidateRecommendClient validates and returns a configured recommendation client.
// Returns ErrRecommendNotConfigured if the client is nil.
func ValidateRecommendClient(client interface{}) (*recommend.Client, error) {
	if clients, ok := client.(*Clients); ok {
		if clients.Recommend == nil {
			return nil, paramutil.ErrRecommendNotConfigured
		}
		return clients.Recommend, nil
	}

	recommendClient, ok := client.(*recommend.Client)
	if !ok || recommendClient == nil {
		return nil, paramutil.ErrRecommendNotConfigured
	}
	return recommendClient, nil
}
