package mcp

import (
	"context"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// helpTopics is the structured documentation served by get_inspector_help.
var helpTopics = map[string]map[string]interface{}{
	"overview": {
		"description": "MCP Inspector is the official tool for testing and debugging MCP servers",
		"basic_usage": "npx @modelcontextprotocol/inspector --cli <server_command> --method <method>",
		"common_methods": []string{
			"tools/list - List all available tools",
			"tools/call - Call a specific tool (--tool-name, --tool-arg key=value)",
			"resources/list - List all available resources",
			"resources/read - Read a specific resource (--resource-uri)",
			"resources/templates/list - List resource templates",
			"prompts/list - List all available prompts",
			"prompts/get - Get a specific prompt (--prompt-name, --prompt-arg key=value)",
			"logging/setLevel - Change the target server's log level (--level)",
		},
	},
	"tools": {
		"description": "Working with a target server's tools",
		"list":        "Use inspect_mcp_server to enumerate tools with their input schemas",
		"call":        "Use call_mcp_tool with tool_name and a JSON object string in tool_args",
		"example": map[string]interface{}{
			"server_command": "node build/index.js",
			"tool_name":      "calculate",
			"tool_args":      `{"expression": "2+2"}`,
		},
	},
	"resources": {
		"description": "Working with a target server's resources",
		"list":        "comprehensive_server_test probes resources/list alongside tools and prompts",
		"read":        "Use read_mcp_resource with the resource_uri reported by the server",
		"templates":   "Use list_resource_templates for parameterized URIs like file://{path}",
	},
	"prompts": {
		"description": "Working with a target server's prompts",
		"get":         "Use get_mcp_prompt with prompt_name and optional prompt_args as a JSON object string",
	},
	"debugging": {
		"description": "Diagnosing problems with a target server",
		"common_issues": []string{
			"Server not starting - Check server command and dependencies",
			"Connection timeout - Increase timeout or check server startup time",
			"Invalid method - Verify method name and server capabilities",
			"Non-JSON output - The server may be writing logs to stdout; MCP stdio servers must keep stdout clean",
		},
	},
	"examples": {
		"description": "Example server commands to inspect",
		"examples": []string{
			"python server.py",
			"node server.js",
			"uv run python server.py",
			"npm start",
		},
	},
}

// helpAliases maps older topic names still in circulation onto the
// current topics.
var helpAliases = map[string]string{
	"mcp_inspector":   "overview",
	"server_commands": "examples",
	"troubleshooting": "debugging",
}

func (s *Server) handleInspectorHelp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := strings.ToLower(request.GetString("topic", ""))
	if topic == "" {
		return jsonResult(map[string]interface{}{
			"success": true,
			"content": helpTopics,
		})
	}

	if canonical, ok := helpAliases[topic]; ok {
		topic = canonical
	}

	content, ok := helpTopics[topic]
	if !ok {
		return jsonResult(map[string]interface{}{
			"success":          false,
			"error":            "Help topic '" + topic + "' not found",
			"available_topics": helpTopicNames(),
		})
	}

	return jsonResult(map[string]interface{}{
		"success": true,
		"topic":   topic,
		"content": content,
	})
}

func helpTopicNames() []string {
	names := make([]string, 0, len(helpTopics))
	for name := range helpTopics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
