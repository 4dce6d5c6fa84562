package docs

import (
	"fmt"
	"net/url"
	"strings"

	urlutil "github.com/kubedocs/k8s-docs-mcp-server/pkg/util/url"
)

// Validator checks that URLs stay inside the configured documentation site.
type Validator struct {
	base *url.URL
}

// NewValidator returns a Validator anchored at baseURL,
// e.g. "https://kubernetes.io/docs".
func NewValidator(baseURL string) (*Validator, error) {
	base, err := url.Parse(urlutil.NormalizeBaseURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid documentation base URL %s: %v", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("documentation base URL must use http or https, got %s", baseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("documentation base URL has no host: %s", baseURL)
	}
	return &Validator{base: base}, nil
}

// Validate checks rawURL against the documentation site and returns its
// canonical form. Failures wrap ErrInvalidDomain and name the violated
// constraint.
func (v *Validator) Validate(rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", fmt.Errorf("%w: url must not be empty", ErrInvalidDomain)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not a valid URL", ErrInvalidDomain, rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %s does not use http or https", ErrInvalidDomain, rawURL)
	}
	if u.Host != v.base.Host {
		return "", fmt.Errorf("%w: host %s does not match %s", ErrInvalidDomain, u.Host, v.base.Host)
	}
	if u.Path != v.base.Path && !strings.HasPrefix(u.Path, v.base.Path+"/") {
		return "", fmt.Errorf("%w: path %s is outside %s", ErrInvalidDomain, u.Path, v.base.Path)
	}

	// Fragments are client-side anchors and play no part in fetching.
	u.Fragment = ""
	return u.String(), nil
}

// BaseURL returns the normalized base URL the validator is anchored at.
func (v *Validator) BaseURL() string {
	return v.base.String()
}
