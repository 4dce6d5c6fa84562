package paramutil

import "fmt"

// ExtractRequiredString extracts a required string parameter from params map.
// Returns ErrMissingParameter if the parameter is missing or empty.
func ExtractRequiredString(params map[string]interface{}, key string) (string, error) {
	if v, ok := params[key].(string); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// ExtractString extracts a string parameter that must be present but may be
// empty. Callers that treat blank values specially validate them downstream.
func ExtractString(params map[string]interface{}, key string) (string, error) {
	if v, ok := params[key].(string); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// ExtractOptionalString extracts an optional string parameter.
// Returns empty string if the parameter is missing or empty.
func ExtractOptionalString(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// ExtractOptionalStringWithDefault extracts an optional string parameter with a default value.
// Returns defaultValue if the parameter is missing or empty.
func ExtractOptionalStringWithDefault(params map[string]interface{}, key, defaultValue string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return defaultValue
}

// ExtractBool extracts a boolean parameter with a default value
func ExtractBool(params map[string]interface{}, key string, defaultValue bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return defaultValue
}

// ExtractFormat extracts the output parameter with "text" as default.
func ExtractFormat(params map[string]interface{}) string {
	return ExtractOptionalStringWithDefault(params, ParamOutput, FormatText)
}

// ValidateFormat validates that the format is one of the supported formats
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s (supported: text, json, yaml)", ErrInvalidFormat, format)
	}
}

// ExtractAndValidateFormat extracts the output parameter and validates it.
// Returns the validated format or an error if the format is invalid.
func ExtractAndValidateFormat(params map[string]interface{}) (string, error) {
	format := ExtractFormat(params)
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// ExtractOptionalInt extracts an optional integer parameter. JSON numbers
// arrive as float64; plain ints show up in tests.
func ExtractOptionalInt(params map[string]interface{}, key string) *int {
	if v, ok := params[key].(float64); ok {
		val := int(v)
		return &val
	}
	if v, ok := params[key].(int64); ok {
		val := int(v)
		return &val
	}
	if v, ok := params[key].(int); ok {
		return &v
	}
	return nil
}

// ExtractInt extracts an integer parameter with a default value
func ExtractInt(params map[string]interface{}, key string, defaultValue int) int {
	if v := ExtractOptionalInt(params, key); v != nil {
		return *v
	}
	return defaultValue
}

// BoolPtr returns a pointer to the given bool value.
func BoolPtr(b bool) *bool {
	return &b
}
