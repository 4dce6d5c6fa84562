package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/config"
	httpserver "github.com/kubedocs/k8s-docs-mcp-server/pkg/http"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/logging"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/mcp"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/version"
)

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewMCPServer creates a new cobra command for the Kubernetes Documentation MCP Server
func NewMCPServer(streams IOStreams) *cobra.Command {
	flagCfg := config.DefaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "k8s-docs-mcp-server",
		Short: "Kubernetes Documentation MCP Server - Model Context Protocol server for kubernetes.io documentation",
		Long: `Kubernetes Documentation MCP Server is a Model Context Protocol (MCP) server
that lets MCP clients read, search, and get recommendations for pages of the
Kubernetes documentation site.

This server can run in stdio mode for integration with MCP clients or in HTTP mode
for network access.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flagCfg, configPath)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg, streams)
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	addFlags(cmd, flagCfg, &configPath)

	// Add version command
	cmd.AddCommand(newVersionCommand(streams))

	return cmd
}

// addFlags registers the server flags. Flag names match the option names
// ApplyEnvOverrides reports, so explicitly set flags suppress their
// environment counterparts.
func addFlags(cmd *cobra.Command, flagCfg *config.StaticConfig, configPath *string) {
	cmd.Flags().StringVar(configPath, "config", "", "Path to a YAML configuration file")
	cmd.Flags().IntVar(&flagCfg.Port, "port", flagCfg.Port, "Port to listen on for HTTP mode (0 for stdio mode)")
	cmd.Flags().StringVar(&flagCfg.SSEBaseURL, "sse-base-url", flagCfg.SSEBaseURL, "Public base URL advertised to SSE clients")
	cmd.Flags().IntVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "Log level (0-9)")
	cmd.Flags().StringVar(&flagCfg.DocsBaseURL, "docs-base-url", flagCfg.DocsBaseURL, "Base URL of the documentation site")
	cmd.Flags().StringVar(&flagCfg.SearchURL, "search-url", flagCfg.SearchURL, "URL of the documentation search endpoint")
	cmd.Flags().StringVar(&flagCfg.RecommendURL, "recommend-url", flagCfg.RecommendURL, "URL of the page recommendation endpoint")
	cmd.Flags().IntVar(&flagCfg.Timeout, "timeout", flagCfg.Timeout, "Upstream request timeout in seconds")
	cmd.Flags().StringVar(&flagCfg.ListOutput, "list-output", flagCfg.ListOutput, "Default output format for list operations (text, yaml, json)")
	cmd.Flags().StringSliceVar(&flagCfg.Toolsets, "toolsets", flagCfg.Toolsets, "Comma-separated list of toolsets to enable")
	cmd.Flags().StringSliceVar(&flagCfg.EnabledTools, "enabled-tools", flagCfg.EnabledTools, "Comma-separated list of tools to enable")
	cmd.Flags().StringSliceVar(&flagCfg.DisabledTools, "disabled-tools", flagCfg.DisabledTools, "Comma-separated list of tools to disable")
}

// resolveConfig layers the configuration sources: defaults, then the config
// file, then environment variables, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, flagCfg *config.StaticConfig, configPath string) (*config.StaticConfig, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	config.ApplyEnvOverrides(cfg, cmd.Flags().Changed)
	overlayChangedFlags(cmd, cfg, flagCfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// overlayChangedFlags copies flag values the user actually set onto cfg.
// Unset flags keep whatever the file and environment resolved to.
func overlayChangedFlags(cmd *cobra.Command, cfg, flagCfg *config.StaticConfig) {
	if cmd.Flags().Changed("port") {
		cfg.Port = flagCfg.Port
	}
	if cmd.Flags().Changed("sse-base-url") {
		cfg.SSEBaseURL = flagCfg.SSEBaseURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagCfg.LogLevel
	}
	if cmd.Flags().Changed("docs-base-url") {
		cfg.DocsBaseURL = flagCfg.DocsBaseURL
	}
	if cmd.Flags().Changed("search-url") {
		cfg.SearchURL = flagCfg.SearchURL
	}
	if cmd.Flags().Changed("recommend-url") {
		cfg.RecommendURL = flagCfg.RecommendURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flagCfg.Timeout
	}
	if cmd.Flags().Changed("list-output") {
		cfg.ListOutput = flagCfg.ListOutput
	}
	if cmd.Flags().Changed("toolsets") {
		cfg.Toolsets = flagCfg.Toolsets
	}
	if cmd.Flags().Changed("enabled-tools") {
		cfg.EnabledTools = flagCfg.EnabledTools
	}
	if cmd.Flags().Changed("disabled-tools") {
		cfg.DisabledTools = flagCfg.DisabledTools
	}
}

// runServer runs the MCP server with the given configuration
func runServer(ctx context.Context, cfg *config.StaticConfig, streams IOStreams) error {
	// Initialize logging first; stdout is reserved for the stdio transport.
	logging.Initialize(cfg.LogLevel)

	// Create MCP server configuration
	mcpConfig := mcp.Configuration{
		StaticConfig: cfg,
	}

	// Create MCP server
	server, err := mcp.NewServer(mcpConfig)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %v", err)
	}
	defer server.Close()

	// Start server based on port configuration
	if cfg.Port == 0 {
		// Stdio mode
		fmt.Fprintf(streams.ErrOut, "Starting Kubernetes Documentation MCP Server in stdio mode\n")
		fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
		return server.ServeStdio()
	}

	// HTTP mode serves the streamable and SSE endpoints
	fmt.Fprintf(streams.ErrOut, "Starting Kubernetes Documentation MCP Server in HTTP mode on port %d\n", cfg.Port)
	fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
	return httpserver.Serve(ctx, server, cfg)
}

// newVersionCommand creates the version command
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
