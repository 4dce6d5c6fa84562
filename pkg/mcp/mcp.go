package mcp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/client/recommend"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/client/search"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/config"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/docs"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/logging"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset"
	documentation "github.com/kubedocs/k8s-docs-mcp-server/pkg/toolset/documentation"
	"github.com/kubedocs/k8s-docs-mcp-server/pkg/version"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const authorizationKey contextKey = "Authorization"

// Configuration wraps the static configuration with additional runtime components
type Configuration struct {
	*config.StaticConfig
}

// Server represents the MCP server
type Server struct {
	configuration *Configuration
	server        *server.MCPServer
	enabledTools  []string
	clients       *toolset.Clients
}

// NewServer creates a new MCP server with the given configuration
func NewServer(configuration Configuration) (*Server, error) {
	// Note: Logging is initialized in root.go before calling NewServer
	// to properly handle stdio vs HTTP/SSE mode

	var serverOptions []server.ServerOption

	// Configure server capabilities
	serverOptions = append(serverOptions,
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	// Initialize the documentation site client
	docsClient, err := docs.NewClient(configuration.StaticConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create documentation client: %w", err)
	}

	// Initialize the recommendation client (shares the docs URL validator)
	recommendClient, err := recommend.NewClient(configuration.StaticConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation client: %w", err)
	}

	s := &Server{
		configuration: &configuration,
		server:        server.NewMCPServer(version.BinaryName, version.Version, serverOptions...),
		clients: &toolset.Clients{
			Docs:      docsClient,
			Search:    search.NewClient(configuration.StaticConfig),
			Recommend: recommendClient,
		},
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		return nil, err
	}

	return s, nil
}

// registerTools registers all available tools based on configuration
func (s *Server) registerTools() error {
	// Initialize toolsets
	availableToolsets := map[string]toolset.Toolset{
		"docs": &documentation.Toolset{},
	}

	// Determine which toolsets to enable
	enabledToolsets := make([]toolset.Toolset, 0)
	if len(s.configuration.Toolsets) > 0 {
		// Use explicitly configured toolsets
		for _, toolsetName := range s.configuration.Toolsets {
			if ts, exists := availableToolsets[toolsetName]; exists {
				enabledToolsets = append(enabledToolsets, ts)
			}
		}
	} else {
		// Use all available toolsets
		for _, ts := range availableToolsets {
			enabledToolsets = append(enabledToolsets, ts)
		}
	}

	// Register tools from each enabled toolset
	for _, ts := range enabledToolsets {
		tools := ts.GetTools(s.clients)
		for _, tool := range tools {
			// Check if tool is enabled/disabled by configuration
			if s.shouldEnableTool(tool.Tool.Name) {
				// Create a configured tool handler that uses server configuration
				configuredTool := s.configureTool(tool)
				if err := s.registerTool(configuredTool); err != nil {
					return fmt.Errorf("failed to register tool %s: %w", tool.Tool.Name, err)
				}
			}
		}
	}

	logging.Info("MCP server initialized with %d tools", len(s.enabledTools))
	return nil
}

// shouldEnableTool determines if a tool should be enabled based on configuration
func (s *Server) shouldEnableTool(toolName string) bool {
	// Check if tool is explicitly disabled
	for _, disabledTool := range s.configuration.DisabledTools {
		if disabledTool == toolName {
			return false
		}
	}

	// Check if tool is explicitly enabled
	if len(s.configuration.EnabledTools) > 0 {
		for _, enabledTool := range s.configuration.EnabledTools {
			if enabledTool == toolName {
				return true
			}
		}
		// If enabled tools are specified and this tool is not in the list, disable it
		return false
	}

	// Default: enable the tool
	return true
}

// configureTool creates a configured tool handler that uses server configuration
func (s *Server) configureTool(tool toolset.ServerTool) toolset.ServerTool {
	return toolset.ServerTool{
		Tool:        tool.Tool,
		Annotations: tool.Annotations,
		Handler: func(client interface{}, params map[string]interface{}) (string, error) {
			// Inject default output format if not specified
			if _, hasOutput := params["output"]; !hasOutput && s.configuration.ListOutput != "" {
				params["output"] = s.configuration.ListOutput
			}

			return tool.Handler(client, params)
		},
	}
}

func contextFunc(ctx context.Context, r *http.Request) context.Context {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return context.WithValue(ctx, authorizationKey, authHeader)
	}
	return ctx
}

// registerTool registers a single tool with the MCP server
func (s *Server) registerTool(tool toolset.ServerTool) error {
	toolHandler := server.ToolHandlerFunc(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logging.Debug("Tool %s called with params: %v", tool.Tool.Name, request.Params.Arguments)

		// Convert arguments to the format expected by our tool handlers
		params := make(map[string]interface{})
		if arguments, ok := request.Params.Arguments.(map[string]interface{}); ok {
			for key, value := range arguments {
				params[key] = value
			}
		}

		result, err := tool.Handler(s.clients, params)
		return NewTextResult(result, err), nil
	})

	// Use the simpler AddTool method
	s.server.AddTool(tool.Tool, toolHandler)
	s.enabledTools = append(s.enabledTools, tool.Tool.Name)

	logging.Info("Registered tool: %s", tool.Tool.Name)
	return nil
}

// ServeStdio starts the MCP server in stdio mode
func (s *Server) ServeStdio() error {
	logging.Info("Starting MCP server in stdio mode")
	return server.ServeStdio(s.server)
}

// ServeSse starts the MCP server in SSE mode
func (s *Server) ServeSse(baseURL string, httpServer *http.Server) *server.SSEServer {
	logging.Info("Starting MCP server in SSE mode")

	options := make([]server.SSEOption, 0)
	options = append(options, server.WithHTTPServer(httpServer), server.WithSSEContextFunc(contextFunc))

	if baseURL != "" {
		options = append(options, server.WithBaseURL(baseURL))
	}

	return server.NewSSEServer(s.server, options...)
}

// ServeHTTP starts the MCP server in HTTP mode
func (s *Server) ServeHTTP(httpServer *http.Server) *server.StreamableHTTPServer {
	logging.Info("Starting MCP server in HTTP mode")

	options := []server.StreamableHTTPOption{
		server.WithHTTPContextFunc(contextFunc),
		server.WithStreamableHTTPServer(httpServer),
		server.WithStateLess(true),
	}

	return server.NewStreamableHTTPServer(s.server, options...)
}

// GetEnabledTools returns the list of enabled tools
func (s *Server) GetEnabledTools() []string {
	return s.enabledTools
}

// IsHealthy returns true if the server and its clients are properly initialized
func (s *Server) IsHealthy() bool {
	return s.clients != nil &&
		s.clients.Docs != nil &&
		s.clients.Search != nil &&
		s.clients.Recommend != nil
}

// Close cleans up the server resources
func (s *Server) Close() {
	logging.Info("Closing MCP server")
	// Nothing to clean up for now
}

// NewTextResult creates a standardized text result for tool responses
func NewTextResult(content string, err error) *mcp.CallToolResult {
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: err.Error(),
				},
			},
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: content,
			},
		},
	}
}
