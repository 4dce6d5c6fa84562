// Package docstoolset provides the docs toolset: reading Kubernetes
// documentation pages as markdown, searching them by keyword, and
// recommending related pages.
//
// The package is not named "documentation" because the Go toolchain
// ignores source files declaring that package name (a legacy go/build
// convention), which would exclude the package from the build.
package docstoolset

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset/paramutil"
)

// Toolset implements the documentation toolset.
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// outputProperty is the shared schema for the output parameter used by the
// list-returning tools.
var outputProperty = map[string]any{
	"type":        "string",
	"description": "Output format for the result list: text, json, or yaml",
	"enum":        []string{"text", "json", "yaml"},
	"default":     "text",
}

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "docs"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Kubernetes documentation access - read pages as markdown, search by keyword, and discover related pages"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "read_documentation",
				Description: "Fetch a Kubernetes documentation page and return its content as markdown. Long pages are returned in windows; pass the start_index from the truncation notice of a previous call to continue reading.",
				InputSchema: mcp.ToolInputSchema{
					Type:     "object",
					Required: []string{"url"},
					Properties: map[string]any{
						"url": map[string]any{
							"type":        "string",
							"description": "URL of the documentation page to read (must be under kubernetes.io/docs)",
						},
						"max_length": map[string]any{
							"type":        "integer",
							"description": "Maximum number of characters to return",
							"default":     paramutil.DefaultMaxLength,
						},
						"start_index": map[string]any{
							"type":        "integer",
							"description": "Character index to start reading from, for paginating long pages",
							"default":     paramutil.DefaultStartIndex,
						},
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:    paramutil.BoolPtr(true),
				RequiresNetwork: paramutil.BoolPtr(true),
			},
			Handler: readDocumentationHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "search_documentation",
				Description: "Search the Kubernetes documentation for a phrase. Returns matching pages with title, URL, and excerpt, in the relevance order of the documentation search API.",
				InputSchema: mcp.ToolInputSchema{
					Type:     "object",
					Required: []string{"search_phrase"},
					Properties: map[string]any{
						"search_phrase": map[string]any{
							"type":        "string",
							"description": "Phrase to search for, e.g. 'pod scheduling'",
						},
						"limit": map[string]any{
							"type":        "integer",
							"description": "Maximum number of results to return",
							"default":     paramutil.DefaultLimit,
						},
						"output": outputProperty,
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:    paramutil.BoolPtr(true),
				RequiresNetwork: paramutil.BoolPtr(true),
			},
			Handler: searchDocumentationHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "recommend",
				Description: "Get pages related to a Kubernetes documentation page. Returns recommended pages with title, URL, and the relation reported by the recommendation API (for example similar, new, or journey).",
				InputSchema: mcp.ToolInputSchema{
					Type:     "object",
					Required: []string{"url"},
					Properties: map[string]any{
						"url": map[string]any{
							"type":        "string",
							"description": "URL of the documentation page to get recommendations for (must be under kubernetes.io/docs)",
						},
						"output": outputProperty,
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:    paramutil.BoolPtr(true),
				RequiresNetwork: paramutil.BoolPtr(true),
			},
			Handler: recommendHandler,
		},
	}
}
