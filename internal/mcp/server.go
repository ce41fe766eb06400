// Package mcp provides the Model Context Protocol (MCP) server implementation.
//
// This package exposes the official MCP Inspector CLI through MCP tools that
// can be used by AI assistants and other MCP clients:
//
// Discovery (always available):
//   - inspect_mcp_server: Enumerate a target server's tools
//   - read_mcp_resource: Read a resource from a target server
//   - get_mcp_prompt: Fetch a prompt from a target server
//   - list_resource_templates: List a target server's resource templates
//   - comprehensive_server_test: Probe tools, resources and prompts in one call
//   - batch_inspect_servers: Inspect several servers at once
//   - inspect_with_config: Inspect using a saved profile
//   - get_inspector_help: Usage documentation for the wrapped Inspector
//
// Invocation and administration (full mode only):
//   - call_mcp_tool: Invoke one tool on a target server
//   - create_inspector_config: Save an inspection profile
//   - set_logging_level: Adjust this server's log level
//
// The package also serves documentation resources under inspector://docs/*
// and guidance prompts for systematic server testing.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/avandras/inspector-mcp/internal/config"
	"github.com/avandras/inspector-mcp/internal/configstore"
	"github.com/avandras/inspector-mcp/internal/inspector"
	"github.com/avandras/inspector-mcp/internal/logging"
	"github.com/avandras/inspector-mcp/internal/version"
)

// Server wraps the MCP server with Inspector capabilities
type Server struct {
	mcpServer *server.MCPServer
	runner    inspector.Runner
	store     *configstore.Store
	config    *config.Config
	logger    *logging.AppLogger
}

// NewServer creates a new inspector-mcp server
func NewServer(cfg *config.Config, logger *logging.AppLogger) (*Server, error) {
	store, err := configstore.New(cfg.ConfigDir)
	if err != nil {
		return nil, err
	}

	mcpServer := server.NewMCPServer(
		"inspector-mcp",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	s := &Server{
		mcpServer: mcpServer,
		runner:    inspector.NewCLIRunner(cfg, logger),
		store:     store,
		config:    cfg,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// GetConfigStore returns the saved-profile store
func (s *Server) GetConfigStore() *configstore.Store {
	return s.store
}

// GetConfig returns the server configuration
func (s *Server) GetConfig() *config.Config {
	return s.config
}
