package docs

// DocumentationPage is a documentation page fetched from the site and
// converted to markdown.
type DocumentationPage struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Markdown    string `json:"markdown"`
	TotalLength int    `json:"total_length"` // markdown length in characters
}

// PaginatedResult is a single window of a paginated document.
type PaginatedResult struct {
	Content string `json:"content"`
	HasMore bool   `json:"has_more"`
}

// SearchResult is a single entry returned by the documentation search API.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Excerpt string `json:"excerpt,omitempty"`
}

// Recommendation is a related page suggested for a documentation URL.
type Recommendation struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Relation string `json:"relation,omitempty"`
	Context  string `json:"context,omitempty"`
}
