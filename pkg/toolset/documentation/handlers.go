package docstoolset

import (
	"context"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/docs"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset/paramutil"
)

// readDocumentationHandler handles the read_documentation tool
func readDocumentationHandler(client interface{}, params map[string]interface{}) (string, error) {
	docsClient, err := toolset.ValidateDocsClient(client)
	if err != nil {
		return "", err
	}

	url, err := paramutil.ExtractRequiredString(params, paramutil.ParamURL)
	if err != nil {
		return "", err
	}
	maxLength, err := paramutil.ResolveMaxLength(params)
	if err != nil {
		return "", err
	}
	startIndex, err := paramutil.ResolveStartIndex(params)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	page, err := docsClient.ReadPage(ctx, url)
	if err != nil {
		return "", err
	}

	window, err := docs.Paginate(page.Markdown, startIndex, maxLength)
	if err != nil {
		return "", err
	}

	return formatPage(page, window, startIndex), nil
}

// searchDocumentationHandler handles the search_documentation tool
func searchDocumentationHandler(client interface{}, params map[string]interface{}) (string, error) {
	searchClient, err := toolset.ValidateSearchClient(client)
	if err != nil {
		return "", err
	}

	// Presence only: a blank phrase must reach the search client so it
	// fails with its empty-query error instead of a missing-parameter one.
	phrase, err := paramutil.ExtractString(params, paramutil.ParamSearchPhrase)
	if err != nil {
		return "", err
	}
	limit, err := paramutil.ResolveResultLimit(params)
	if err != nil {
		return "", err
	}
	format, err := paramutil.ExtractAndValidateFormat(params)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	results, err := searchClient.Search(ctx, phrase, limit)
	if err != nil {
		return "", err
	}

	return formatSearchResults(phrase, results, format)
}

// recommendHandler handles the recommend tool
func recommendHandler(client interface{}, params map[string]interface{}) (string, error) {
	recommendClient, err := toolset.ValidateRecommendClient(client)
	if err != nil {
		return "", err
	}

	url, err := paramutil.ExtractRequiredString(params, paramutil.ParamURL)
	if err != nil {
		return "", err
	}
	format, err := paramutil.ExtractAndValidateFormat(params)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	recommendations, err := recommendClient.Recommend(ctx, url)
	if err != nil {
		return "", err
	}

	return formatRecommendations(recommendations, format)
}
