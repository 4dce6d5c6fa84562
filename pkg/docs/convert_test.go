package docs

import (
	"errors"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Pods | Kubernetes</title><style>body { color: red; }</style></head>
<body>
<header><a href="/">kubernetes.io</a> Site banner</header>
<nav><a href="/docs/home/">Home</a><a href="/docs/concepts/">Concepts</a></nav>
<div class="td-toolbar js-toolbar-action">Feedback widget</div>
<main>
<h1>Pods</h1>
<p>Pods are the smallest deployable units of computing that you can create and manage in Kubernetes.</p>
<p>See also <a href="/docs/concepts/workloads/controllers/deployment/">Deployments</a>.</p>
</main>
<aside>Was this page helpful?</aside>
<footer>Copyright The Kubernetes Authors</footer>
<script>trackPageView();</script>
</body>
</html>`

func TestConvertToMarkdown(t *testing.T) {
	markdown, err := ConvertToMarkdown(samplePage)
	if err != nil {
		t.Fatalf("ConvertToMarkdown() error = %v", err)
	}

	if !strings.Contains(markdown, "# Pods") {
		t.Errorf("expected heading in markdown, got:\n%s", markdown)
	}
	if !strings.Contains(markdown, "smallest deployable units") {
		t.Errorf("expected body text in markdown, got:\n%s", markdown)
	}
	if !strings.Contains(markdown, "Deployments") {
		t.Errorf("expected link text in markdown, got:\n%s", markdown)
	}

	for _, boilerplate := range []string{"Copyright", "trackPageView", "color: red", "Feedback widget", "Home", "Site banner", "page helpful"} {
		if strings.Contains(markdown, boilerplate) {
			t.Errorf("expected %q to be stripped, got:\n%s", boilerplate, markdown)
		}
	}

	if strings.Contains(markdown, "<h1>") || strings.Contains(markdown, "<p>") {
		t.Errorf("expected no HTML tags in markdown, got:\n%s", markdown)
	}
}

func TestConvertToMarkdownIsIdempotent(t *testing.T) {
	first, err := ConvertToMarkdown(samplePage)
	if err != nil {
		t.Fatalf("first conversion error = %v", err)
	}

	second, err := ConvertToMarkdown(first)
	if err != nil {
		t.Fatalf("second conversion error = %v", err)
	}

	if second != first {
		t.Errorf("conversion is not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestConvertToMarkdownPlainText(t *testing.T) {
	input := "# Already markdown\n\nWith a paragraph and [a link](https://kubernetes.io/docs/)."

	got, err := ConvertToMarkdown(input)
	if err != nil {
		t.Fatalf("ConvertToMarkdown() error = %v", err)
	}
	if got != input {
		t.Errorf("plain markdown should pass through unchanged:\ngot:\n%s\nwant:\n%s", got, input)
	}
}

func TestConvertToMarkdownCollapsesBlankRuns(t *testing.T) {
	input := "First paragraph.\n\n\n\n\nSecond paragraph."

	got, err := ConvertToMarkdown(input)
	if err != nil {
		t.Fatalf("ConvertToMarkdown() error = %v", err)
	}
	if got != "First paragraph.\n\nSecond paragraph." {
		t.Errorf("expected blank runs collapsed, got %q", got)
	}
}

func TestConvertToMarkdownPrefersMainOverBody(t *testing.T) {
	input := `<html><body>
<div>Sidebar junk</div>
<main><p>Actual content</p></main>
</body></html>`

	got, err := ConvertToMarkdown(input)
	if err != nil {
		t.Fatalf("ConvertToMarkdown() error = %v", err)
	}
	if !strings.Contains(got, "Actual content") {
		t.Errorf("expected main content, got %q", got)
	}
	if strings.Contains(got, "Sidebar junk") {
		t.Errorf("expected content outside main to be dropped, got %q", got)
	}
}

func TestConvertToMarkdownFallsBackToArticle(t *testing.T) {
	input := `<html><body>
<div>Chrome</div>
<article><p>Article content</p></article>
</body></html>`

	got, err := ConvertToMarkdown(input)
	if err != nil {
		t.Fatalf("ConvertToMarkdown() error = %v", err)
	}
	if !strings.Contains(got, "Article content") {
		t.Errorf("expected article content, got %q", got)
	}
	if strings.Contains(got, "Chrome") {
		t.Errorf("expected content outside article to be dropped, got %q", got)
	}
}

func TestConvertToMarkdownErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "whitespace input",
			input: "   \n\t  ",
		},
		{
			name:  "only boilerplate",
			input: "<html><body><nav>Menu</nav><footer>Footer</footer></body></html>",
		},
		{
			name:  "only scripts",
			input: "<html><body><script>var x = 1;</script></body></html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertToMarkdown(tt.input)
			if err == nil {
				t.Fatal("ConvertToMarkdown() expected error")
			}
			if !errors.Is(err, ErrConversion) {
				t.Errorf("ConvertToMarkdown() error = %v, want ErrConversion", err)
			}
		})
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "title present",
			input: samplePage,
			want:  "Pods | Kubernetes",
		},
		{
			name:  "title with surrounding whitespace",
			input: "<html><head><title>\n  Services  \n</title></head><body></body></html>",
			want:  "Services",
		},
		{
			name:  "no title",
			input: "<html><body><p>content</p></body></html>",
			want:  "",
		},
		{
			name:  "plain text",
			input: "no markup here",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.input); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
