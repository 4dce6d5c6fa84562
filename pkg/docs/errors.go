package docs

import (
	"errors"
	"fmt"
)

// Error definitions
var (
	ErrInvalidDomain = errors.New("url is outside the documentation site")
	ErrInvalidRange  = errors.New("start index is beyond the end of the document")
	ErrEmptyQuery    = errors.New("search phrase must not be empty")
	ErrConversion    = errors.New("failed to convert document to markdown")
	ErrNetwork       = errors.New("network error while contacting the documentation site")
	ErrTimeout       = errors.New("timed out while contacting the documentation site")
	ErrUpstream      = errors.New("documentation site returned an error status")
)

// StatusError reports a non-success HTTP status from the documentation site.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("documentation site returned status %d for %s", e.Code, e.URL)
}

// Unwrap makes StatusError match ErrUpstream under errors.Is.
func (e *StatusError) Unwrap() error {
	return ErrUpstream
}
