package docstoolset

import (
	"fmt"
	"strings"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/docs"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/output"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset/paramutil"
)

// formatPage renders one window of a documentation page. The title/URL
// header and the truncation notice sit outside the window, so the windowed
// content alone obeys max_length.
func formatPage(page *docs.DocumentationPage, window docs.PaginatedResult, startIndex int) string {
	var b strings.Builder

	if page.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", page.Title)
	}
	fmt.Fprintf(&b, "URL: %s\n\n", page.URL)
	b.WriteString(window.Content)

	if window.HasMore {
		nextIndex := startIndex + len([]rune(window.Content))
		fmt.Fprintf(&b, "\n\n[Showing characters %d-%d of %d. Call read_documentation again with start_index=%d to continue reading.]",
			startIndex, nextIndex, page.TotalLength, nextIndex)
	}

	return b.String()
}

// formatSearchResults renders search results in upstream relevance order.
func formatSearchResults(phrase string, results []docs.SearchResult, format string) (string, error) {
	if format != paramutil.FormatText {
		return output.NewFormatter().Format(results, format)
	}

	if len(results) == 0 {
		return fmt.Sprintf("No documentation found for %q", phrase), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results for %q:\n", len(results), phrase)
	for i, result := range results {
		fmt.Fprintf(&b, "\n%d. %s\n   %s\n", i+1, result.Title, result.URL)
		if result.Excerpt != "" {
			fmt.Fprintf(&b, "   %s\n", result.Excerpt)
		}
	}

	return b.String(), nil
}

// formatRecommendations renders recommendations in upstream order. The
// relation label is shown verbatim next to each title; no grouping or
// re-ranking happens here.
func formatRecommendations(recommendations []docs.Recommendation, format string) (string, error) {
	if format != paramutil.FormatText {
		return output.NewFormatter().Format(recommendations, format)
	}

	if len(recommendations) == 0 {
		return "No recommendations found", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d recommended pages:\n", len(recommendations))
	for i, rec := range recommendations {
		title := rec.Title
		if rec.Relation != "" {
			title = fmt.Sprintf("%s (%s)", rec.Title, rec.Relation)
		}
		fmt.Fprintf(&b, "\n%d. %s\n   %s\n", i+1, title, rec.URL)
		if rec.Context != "" {
			fmt.Fprintf(&b, "   %s\n", rec.Context)
		}
	}

	return b.String(), nil
}
