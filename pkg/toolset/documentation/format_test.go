package docstoolset

import (
	"strings"
	"testing"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/docs"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset/paramutil"
)

func TestFormatPage(t *testing.T) {
	markdown := strings.Repeat("abcde", 100) // 500 characters
	page := &docs.DocumentationPage{
		Title:       "Scheduling",
		URL:         "https://kubernetes.io/docs/concepts/scheduling-eviction/",
		Markdown:    markdown,
		TotalLength: 500,
	}

	t.Run("truncated window", func(t *testing.T) {
		window, err := docs.Paginate(page.Markdown, 0, 100)
		if err != nil {
			t.Fatalf("Paginate() error = %v", err)
		}

		got := formatPage(page, window, 0)

		wantPrefix := "Title: Scheduling\nURL: https://kubernetes.io/docs/concepts/scheduling-eviction/\n\n"
		if !strings.HasPrefix(got, wantPrefix) {
			t.Errorf("formatPage() header = %q", got[:len(wantPrefix)])
		}
		wantSuffix := "\n\n[Showing characters 0-100 of 500. Call read_documentation again with start_index=100 to continue reading.]"
		if !strings.HasSuffix(got, wantSuffix) {
			t.Errorf("formatPage() is missing the truncation notice:\n%s", got)
		}

		content := strings.TrimPrefix(got, wantPrefix)
		content = strings.TrimSuffix(content, wantSuffix)
		if content != markdown[:100] {
			t.Errorf("formatPage() window = %q, want first 100 characters", content)
		}
	})

	t.Run("middle window", func(t *testing.T) {
		window, err := docs.Paginate(page.Markdown, 250, 100)
		if err != nil {
			t.Fatalf("Paginate() error = %v", err)
		}

		got := formatPage(page, window, 250)

		if !strings.Contains(got, "[Showing characters 250-350 of 500.") {
			t.Errorf("formatPage() notice has the wrong range:\n%s", got)
		}
		if !strings.Contains(got, "start_index=350 to continue reading.]") {
			t.Errorf("formatPage() notice has the wrong continuation index:\n%s", got)
		}
	})

	t.Run("final window", func(t *testing.T) {
		window, err := docs.Paginate(page.Markdown, 400, 100)
		if err != nil {
			t.Fatalf("Paginate() error = %v", err)
		}

		got := formatPage(page, window, 400)

		if strings.Contains(got, "[Showing characters") {
			t.Errorf("formatPage() should not append a notice to the final window:\n%s", got)
		}
		if !strings.HasSuffix(got, markdown[400:]) {
			t.Errorf("formatPage() final window is incomplete:\n%s", got)
		}
	})

	t.Run("short window at the tail", func(t *testing.T) {
		window, err := docs.Paginate(page.Markdown, 450, 100)
		if err != nil {
			t.Fatalf("Paginate() error = %v", err)
		}

		got := formatPage(page, window, 450)

		// Only 50 characters remain; no notice even though maxLength was 100.
		if strings.Contains(got, "[Showing characters") {
			t.Errorf("formatPage() should not append a notice past the end:\n%s", got)
		}
	})
}

func TestFormatPageMultibyte(t *testing.T) {
	markdown := strings.Repeat("☸", 10) // 10 characters, 30 bytes
	page := &docs.DocumentationPage{
		Title:       "Symbols",
		URL:         "https://kubernetes.io/docs/symbols/",
		Markdown:    markdown,
		TotalLength: 10,
	}

	window, err := docs.Paginate(page.Markdown, 0, 4)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	got := formatPage(page, window, 0)

	// Positions count characters, not bytes.
	if !strings.Contains(got, "[Showing characters 0-4 of 10.") {
		t.Errorf("formatPage() notice should count characters:\n%s", got)
	}
	if !strings.Contains(got, "start_index=4 to continue reading.]") {
		t.Errorf("formatPage() continuation index should count characters:\n%s", got)
	}
}

func TestFormatPageWithoutTitle(t *testing.T) {
	page := &docs.DocumentationPage{
		URL:         "https://kubernetes.io/docs/home/",
		Markdown:    "Welcome.",
		TotalLength: 8,
	}

	window, err := docs.Paginate(page.Markdown, 0, 100)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	got := formatPage(page, window, 0)
	if strings.Contains(got, "Title:") {
		t.Errorf("formatPage() should skip the title line when there is no title:\n%s", got)
	}
	if !strings.HasPrefix(got, "URL: https://kubernetes.io/docs/home/\n\n") {
		t.Errorf("formatPage() = %q", got)
	}
}

func TestFormatSearchResults(t *testing.T) {
	results := []docs.SearchResult{
		{
			Title:   "Pods",
			URL:     "https://kubernetes.io/docs/concepts/workloads/pods/",
			Excerpt: "Smallest deployable units.",
		},
		{
			Title: "Services",
			URL:   "https://kubernetes.io/docs/concepts/services-networking/service/",
		},
	}

	t.Run("text", func(t *testing.T) {
		got, err := formatSearchResults("pods", results, paramutil.FormatText)
		if err != nil {
			t.Fatalf("formatSearchResults() error = %v", err)
		}

		want := `Found 2 results for "pods":

1. Pods
   https://kubernetes.io/docs/concepts/workloads/pods/
   Smallest deployable units.

2. Services
   https://kubernetes.io/docs/concepts/services-networking/service/
`
		if got != want {
			t.Errorf("formatSearchResults() =\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("no results", func(t *testing.T) {
		got, err := formatSearchResults("obscure topic", nil, paramutil.FormatText)
		if err != nil {
			t.Fatalf("formatSearchResults() error = %v", err)
		}
		if got != `No documentation found for "obscure topic"` {
			t.Errorf("formatSearchResults() = %q", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		got, err := formatSearchResults("pods", results, paramutil.FormatJSON)
		if err != nil {
			t.Fatalf("formatSearchResults() error = %v", err)
		}
		if !strings.Contains(got, `"title": "Pods"`) {
			t.Errorf("formatSearchResults() JSON is missing fields:\n%s", got)
		}
	})
}

func TestFormatRecommendations(t *testing.T) {
	recommendations := []docs.Recommendation{
		{
			Title:    "Pod Lifecycle",
			URL:      "https://kubernetes.io/docs/concepts/workloads/pods/pod-lifecycle/",
			Relation: "similar",
		},
		{
			Title:    "Init Containers",
			URL:      "https://kubernetes.io/docs/concepts/workloads/pods/init-containers/",
			Relation: "journey",
			Context:  "Often read next.",
		},
		{
			Title: "Untagged Page",
			URL:   "https://kubernetes.io/docs/concepts/untagged/",
		},
	}

	t.Run("text", func(t *testing.T) {
		got, err := formatRecommendations(recommendations, paramutil.FormatText)
		if err != nil {
			t.Fatalf("formatRecommendations() error = %v", err)
		}

		want := `Found 3 recommended pages:

1. Pod Lifecycle (similar)
   https://kubernetes.io/docs/concepts/workloads/pods/pod-lifecycle/

2. Init Containers (journey)
   https://kubernetes.io/docs/concepts/workloads/pods/init-containers/
   Often read next.

3. Untagged Page
   https://kubernetes.io/docs/concepts/untagged/
`
		if got != want {
			t.Errorf("formatRecommendations() =\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, err := formatRecommendations(nil, paramutil.FormatText)
		if err != nil {
			t.Fatalf("formatRecommendations() error = %v", err)
		}
		if got != "No recommendations found" {
			t.Errorf("formatRecommendations() = %q", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		got, err := formatRecommendations(recommendations, paramutil.FormatJSON)
		if err != nil {
			t.Fatalf("formatRecommendations() error = %v", err)
		}
		if !strings.Contains(got, `"relation": "similar"`) {
			t.Errorf("formatRecommendations() JSON is missing the relation:\n%s", got)
		}
		// Untagged entries omit the relation key entirely.
		if strings.Contains(got, `"relation": ""`) {
			t.Errorf("formatRecommendations() JSON should omit empty relations:\n%s", got)
		}
	})
}
