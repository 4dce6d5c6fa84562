package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter provides formatting capabilities for different output formats
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// IsValidFormat checks if the given format is supported
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "yaml", "json":
		return true
	default:
		return false
	}
}

// Format formats data in the specified format (text, yaml, json)
func (f *Formatter) Format(data interface{}, format string) (string, error) {
	switch strings.ToLower(format) {
	case "yaml":
		return f.FormatYAML(data)
	case "json":
		return f.FormatJSON(data)
	case "text":
		return f.FormatText(data)
	default:
		return f.FormatText(data)
	}
}

// FormatYAML formats data as YAML
func (f *Formatter) FormatYAML(data interface{}) (string, error) {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %v", err)
	}
	return string(yamlBytes), nil
}

// FormatJSON formats data as JSON
func (f *Formatter) FormatJSON(data interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %v", err)
	}
	return string(jsonBytes), nil
}

// FormatText formats data as a plain string. Callers with richer text
// renderings apply them before reaching for the formatter.
func (f *Formatter) FormatText(data interface{}) (string, error) {
	if s, ok := data.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%+v", data), nil
}
