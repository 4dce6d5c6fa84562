package docs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
	// DialTimeout is the maximum time to wait for a TCP connection
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the maximum time to wait for TLS handshake
	TLSHandshakeTimeout = 10 * time.Second
	// ResponseHeaderTimeout is the maximum time to wait for response headers
	ResponseHeaderTimeout = 10 * time.Second
	// IdleConnTimeout is the maximum time an idle connection can be reused
	IdleConnTimeout = 90 * time.Second
)

// Fetcher retrieves pages from the documentation site over HTTP.
type Fetcher struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

// NewFetcher creates a Fetcher with the given request timeout. A zero or
// negative timeout falls back to DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Fetcher{
		timeout:   timeout,
		userAgent: version.UserAgent(),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   DialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   TLSHandshakeTimeout,
				ResponseHeaderTimeout: ResponseHeaderTimeout,
				IdleConnTimeout:       IdleConnTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				ForceAttemptHTTP2:     true,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects (>10)")
				}
				return nil
			},
		},
	}
}

// Fetch performs a single GET request against url and returns the response
// body. Non-2xx responses yield a StatusError, transport failures yield
// ErrNetwork, and deadline hits yield ErrTimeout. The request is issued
// exactly once; there are no retries.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.fetch(ctx, url, nil)
}

// FetchJSON is Fetch with an Accept header asking for JSON.
func (f *Fetcher) FetchJSON(ctx context.Context, url string) (string, error) {
	return f.fetch(ctx, url, map[string]string{"Accept": "application/json"})
}

func (f *Fetcher) fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %v", url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Code: resp.StatusCode, URL: url}
	}

	// Read in a goroutine so cancellation is honoured during slow reads.
	limitedReader := io.LimitReader(resp.Body, MaxBodySize+1)

	type readResult struct {
		data []byte
		err  error
	}

	readChan := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(limitedReader)
		readChan <- readResult{data: data, err: err}
	}()

	var body []byte
	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: reading response body from %s", ErrTimeout, url)
		}
		return "", fmt.Errorf("%w: request canceled while reading %s", ErrNetwork, url)
	case result := <-readChan:
		if result.err != nil {
			if isTimeout(result.err) {
				return "", fmt.Errorf("%w: %v", ErrTimeout, result.err)
			}
			return "", fmt.Errorf("%w: failed to read response body: %v", ErrNetwork, result.err)
		}
		body = result.data
	}

	if len(body) > MaxBodySize {
		return "", fmt.Errorf("response body from %s exceeds maximum size of %d bytes", url, MaxBodySize)
	}

	return string(body), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
