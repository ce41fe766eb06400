package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerResources registers the documentation resources and the dynamic
// saved-profile listing.
func (s *Server) registerResources() {
	docs := []struct {
		uri         string
		name        string
		description string
		content     string
	}{
		{
			uri:         "inspector://docs/overview",
			name:        "MCP Inspector Documentation",
			description: "Official MCP Inspector documentation: methods, flags, and common issues",
			content:     docOverview,
		},
		{
			uri:         "inspector://docs/github",
			name:        "MCP Inspector Repository",
			description: "GitHub repository information and installation options",
			content:     docGitHub,
		},
		{
			uri:         "inspector://docs/examples",
			name:        "MCP Inspector Usage Examples",
			description: "Command-line examples for discovery, tool calls, resources, and prompts",
			content:     docExamples,
		},
		{
			uri:         "inspector://docs/config-templates",
			name:        "MCP Inspector Configuration Templates",
			description: "Templates for structured server testing configurations",
			content:     docConfigTemplates,
		},
		{
			uri:         "inspector://docs/best-practices",
			name:        "MCP Inspector Best Practices",
			description: "Development, testing, and maintenance practices for MCP servers",
			content:     docBestPractices,
		},
	}

	for _, doc := range docs {
		resource := mcp.NewResource(doc.uri, doc.name,
			mcp.WithResourceDescription(doc.description),
			mcp.WithMIMEType("text/markdown"),
		)
		s.mcpServer.AddResource(resource, staticMarkdown(doc.uri, doc.content))
	}

	configsResource := mcp.NewResource("inspector://configs", "Saved Inspection Profiles",
		mcp.WithResourceDescription("Profiles saved with create_inspector_config, as a JSON listing"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(configsResource, s.handleConfigsResource)
}

func staticMarkdown(uri, content string) func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     content,
			},
		}, nil
	}
}

func (s *Server) handleConfigsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	configs, err := s.store.List()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(map[string]interface{}{
		"configs": configs,
		"count":   len(configs),
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "inspector://configs",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
