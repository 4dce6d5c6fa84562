package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// StaticConfig represents the static configuration for the Kubernetes Documentation MCP Server
type StaticConfig struct {
	// Server configuration
	Port       int    `yaml:"port"`
	SSEBaseURL string `yaml:"sse_base_url"`

	// Logging configuration
	LogLevel int `yaml:"log_level"`

	// Documentation source configuration
	DocsBaseURL  string `yaml:"docs_base_url"`
	SearchURL    string `yaml:"search_url"`
	RecommendURL string `yaml:"recommend_url"`

	// Upstream HTTP client configuration (seconds)
	Timeout int `yaml:"timeout"`

	// Output configuration
	ListOutput string `yaml:"list_output"`

	// Toolset configuration
	Toolsets      []string `yaml:"toolsets"`
	EnabledTools  []string `yaml:"enabled_tools"`
	DisabledTools []string `yaml:"disabled_tools"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *StaticConfig {
	return &StaticConfig{
		Port:         0, // 0 means stdio mode
		LogLevel:     0,
		DocsBaseURL:  "https://kubernetes.io/docs",
		SearchURL:    "https://kubernetes.io/docs/search/",
		RecommendURL: "https://kubernetes.io/docs/suggestions/",
		Timeout:      30,
		ListOutput:   "text",
		Toolsets:     []string{"docs"},
	}
}

// Validate validates the configuration
func (c *StaticConfig) Validate() error {
	// Validate port
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}

	// Validate log level
	if c.LogLevel < 0 || c.LogLevel > 9 {
		return fmt.Errorf("log_level must be between 0 and 9, got %d", c.LogLevel)
	}

	// Validate upstream timeout
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be a positive number of seconds, got %d", c.Timeout)
	}

	// Validate list output
	validOutputs := map[string]bool{
		"text": true,
		"yaml": true,
		"json": true,
	}
	if !validOutputs[strings.ToLower(c.ListOutput)] {
		return fmt.Errorf("list_output must be one of: text, yaml, json, got %s", c.ListOutput)
	}

	// Validate upstream endpoints
	if err := validateEndpoint("docs_base_url", c.DocsBaseURL); err != nil {
		return err
	}
	if err := validateEndpoint("search_url", c.SearchURL); err != nil {
		return err
	}
	if err := validateEndpoint("recommend_url", c.RecommendURL); err != nil {
		return err
	}
	if c.SSEBaseURL != "" {
		if err := validateEndpoint("sse_base_url", c.SSEBaseURL); err != nil {
			return err
		}
	}

	return nil
}

func validateEndpoint(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("%s must start with http:// or https://, got %s", name, value)
	}
	return nil
}

// GetPortString returns the HTTP listen address, or an empty string in stdio mode
func (c *StaticConfig) GetPortString() string {
	if c.Port == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.Port)
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(configPath string) (*StaticConfig, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", configPath, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %v", configPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnvOverrides overlays environment variables onto c. Options pinned
// through some other channel win; skip reports those by option name.
func ApplyEnvOverrides(c *StaticConfig, skip func(name string) bool) {
	if skip == nil {
		skip = func(string) bool { return false }
	}

	v := viper.New()
	_ = v.BindEnv("port", "K8S_DOCS_PORT", "PORT")
	_ = v.BindEnv("log-level", "K8S_DOCS_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("timeout", "K8S_DOCS_TIMEOUT", "TIMEOUT")
	_ = v.BindEnv("docs-base-url", "K8S_DOCS_BASE_URL")
	_ = v.BindEnv("search-url", "K8S_DOCS_SEARCH_URL")
	_ = v.BindEnv("recommend-url", "K8S_DOCS_RECOMMEND_URL")
	_ = v.BindEnv("list-output", "K8S_DOCS_LIST_OUTPUT")
	_ = v.BindEnv("sse-base-url", "K8S_DOCS_SSE_BASE_URL")

	if v.IsSet("port") && !skip("port") {
		c.Port = v.GetInt("port")
	}
	if v.IsSet("log-level") && !skip("log-level") {
		c.LogLevel = v.GetInt("log-level")
	}
	if v.IsSet("timeout") && !skip("timeout") {
		c.Timeout = v.GetInt("timeout")
	}
	if v.IsSet("docs-base-url") && !skip("docs-base-url") {
		c.DocsBaseURL = v.GetString("docs-base-url")
	}
	if v.IsSet("search-url") && !skip("search-url") {
		c.SearchURL = v.GetString("search-url")
	}
	if v.IsSet("recommend-url") && !skip("recommend-url") {
		c.RecommendURL = v.GetString("recommend-url")
	}
	if v.IsSet("list-output") && !skip("list-output") {
		c.ListOutput = v.GetString("list-output")
	}
	if v.IsSet("sse-base-url") && !skip("sse-base-url") {
		c.SSEBaseURL = v.GetString("sse-base-url")
	}
}
