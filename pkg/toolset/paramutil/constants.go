package paramutil

import "errors"

// Format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Parameter name constants
const (
	ParamURL          = "url"
	ParamMaxLength    = "max_length"
	ParamStartIndex   = "start_index"
	ParamSearchPhrase = "search_phrase"
	ParamLimit        = "limit"
	ParamOutput       = "output"
)

// Default parameter values
const (
	DefaultMaxLength  = 5000
	DefaultStartIndex = 0
	DefaultLimit      = 10
)

// Error definitions
var (
	ErrDocsNotConfigured      = errors.New("documentation client not configured, check the docs_base_url setting")
	ErrSearchNotConfigured    = errors.New("search client not configured, check the search_url setting")
	ErrRecommendNotConfigured = errors.New("recommendation client not configured, check the recommend_url setting")
	ErrInvalidFormat          = errors.New("invalid output format")
	ErrMissingParameter       = errors.New("missing required parameter")
	ErrInvalidParameter       = errors.New("invalid parameter value")
)
