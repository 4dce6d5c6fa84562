package paramutil

import "fmt"

// ResolveMaxLength extracts the max_length parameter. Missing values fall
// back to DefaultMaxLength; zero or negative values are rejected.
func ResolveMaxLength(params map[string]interface{}) (int, error) {
	v := ExtractOptionalInt(params, ParamMaxLength)
	if v == nil {
		return DefaultMaxLength, nil
	}
	if *v <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0, got %d", ErrInvalidParameter, ParamMaxLength, *v)
	}
	return *v, nil
}

// ResolveStartIndex extracts the start_index parameter. Missing values fall
// back to DefaultStartIndex; negative values are rejected.
func ResolveStartIndex(params map[string]interface{}) (int, error) {
	v := ExtractOptionalInt(params, ParamStartIndex)
	if v == nil {
		return DefaultStartIndex, nil
	}
	if *v < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidParameter, ParamStartIndex, *v)
	}
	return *v, nil
}

// ResolveResultLimit extracts the limit parameter. Missing values fall back
// to DefaultLimit; zero or negative values are rejected.
func ResolveResultLimit(params map[string]interface{}) (int, error) {
	v := ExtractOptionalInt(params, ParamLimit)
	if v == nil {
		return DefaultLimit, nil
	}
	if *v <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0, got %d", ErrInvalidParameter, ParamLimit, *v)
	}
	return *v, nil
}
