package docs

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// Boilerplate elements dropped before conversion.
var strippedTags = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
}

// Toolbar widgets injected into kubernetes.io pages.
const strippedClass = "js-toolbar-action"

var multiNewline = regexp.MustCompile(`\n{3,}`)

// ConvertToMarkdown converts documentation HTML to markdown. Script, style,
// nav, header, footer, and aside blocks are dropped, and the main or article
// element is preferred over the whole body. Input that contains no HTML
// elements is returned as-is with blank runs collapsed.
func ConvertToMarkdown(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", fmt.Errorf("%w: document is empty", ErrConversion)
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}

	body := findElement(root, "body")
	if body == nil {
		return "", fmt.Errorf("%w: document has no body", ErrConversion)
	}

	// Already markdown or plain text, nothing to convert.
	if !containsElement(body) {
		return collapseNewlines(rawHTML), nil
	}

	stripBoilerplate(body)

	content := findElement(body, "main")
	if content == nil {
		content = findElement(body, "article")
	}
	if content == nil {
		content = body
	}

	var rendered strings.Builder
	if err := html.Render(&rendered, content); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}

	markdown, err := htmltomarkdown.ConvertString(rendered.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}

	markdown = collapseNewlines(markdown)
	if markdown == "" {
		return "", fmt.Errorf("%w: document produced no markdown content", ErrConversion)
	}

	return markdown, nil
}

// ExtractTitle returns the text of the document's title element, or an
// empty string when there is none.
func ExtractTitle(rawHTML string) string {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	title := findElement(root, "title")
	if title == nil {
		return ""
	}

	var b strings.Builder
	collectText(title, &b)
	return strings.TrimSpace(b.String())
}

func collapseNewlines(s string) string {
	return strings.TrimSpace(multiNewline.ReplaceAllString(s, "\n\n"))
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, name); found != nil {
			return found
		}
	}
	return nil
}

func containsElement(n *html.Node) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return true
		}
		if containsElement(child) {
			return true
		}
	}
	return false
}

func stripBoilerplate(n *html.Node) {
	var next *html.Node
	for child := n.FirstChild; child != nil; child = next {
		next = child.NextSibling
		if child.Type == html.ElementNode && (strippedTags[child.Data] || hasClass(child, strippedClass)) {
			n.RemoveChild(child)
			continue
		}
		stripBoilerplate(child)
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}
