package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers all MCP tools with the server.
// Tools that invoke target-server functionality or mutate local state are
// only registered when the capability mode allows them.
func (s *Server) registerTools() {
	// Discovery tools, available in every mode.
	inspectTool := mcp.NewTool("inspect_mcp_server",
		mcp.WithDescription("Inspect an MCP server and list its available tools using the official MCP Inspector CLI"),
		mcp.WithString("server_command",
			mcp.Required(),
			mcp.Description("Command to start the target MCP server (e.g. 'node server.js' or 'python server.py')"),
		),
		mcp.WithString("server_args",
			mcp.Description("Additional arguments for the server command, whitespace separated"),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Timeout in seconds for the inspection (default 30)"),
		),
	)
	s.mcpServer.AddTool(inspectTool, s.handleInspectServer)

	readResourceTool := mcp.NewTool("read_mcp_resource",
		mcp.WithDescription("Read a specific resource from an MCP server"),
		mcp.WithString("server_command",
			mcp.Required(),
			mcp.Description("Command to start the target MCP server"),
		),
		mcp.WithString("server_args",
			mcp.Description("Additional arguments for the server command, whitespace separated"),
		),
		mcp.WithString("resource_uri",
			mcp.Required(),
			mcp.Description("URI of the resource to read"),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Timeout in seconds (default 30)"),
		),
	)
	s.mcpServer.AddTool(readResourceTool, s.handleReadResource)

	getPromptTool := mcp.NewTool("get_mcp_prompt",
		mcp.WithDescription("Get a specific prompt from an MCP server"),
		mcp.WithString("server_command",
			mcp.Required(),
			mcp.Description("Command to start the target MCP server"),
		),
		mcp.WithString("server_args",
			mcp.Description("Additional arguments for the server command, whitespace separated"),
		),
		mcp.WithString("prompt_name",
			mcp.Required(),
			mcp.Description("Name of the prompt to retrieve"),
		),
		mcp.WithString("prompt_args",
			mcp.Description("Arguments for the prompt as a JSON object string"),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Timeout in seconds (default 30)"),
		),
	)
	s.mcpServer.AddTool(getPromptTool, s.handleGetPrompt)

	listTemplatesTool := mcp.NewTool("list_resource_templates",
		mcp.WithDescription("List resource templates exposed by an MCP server"),
		mcp.WithString("server_command",
			mcp.Required(),
			mcp.Description("Command to start the target MCP server"),
		),
		mcp.WithString("server_args",
			mcp.Description("Additional arguments for the server command, whitespace separated"),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Timeout in seconds (default 30)"),
		),
	)
	s.mcpServer.AddTool(listTemplatesTool, s.handleListResourceTemplates)

	comprehensiveTool := mcp.NewTool("comprehensive_server_test",
		mcp.WithDescription("Run a comprehensive test of an MCP server, probing its tools, resources and prompts and summarizing the results"),
		mcp.WithString("server_command",
			mcp.Required(),
			mcp.Description("Command to start the target MCP server"),
		),
		mcp.WithString("server_args",
			mcp.Description("Additional arguments for the server command, whitespace separated"),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Overall timeout in seconds (default 60)"),
		),
	)
	s.mcpServer.AddTool(comprehensiveTool, s.handleComprehensiveTest)

	batchTool := mcp.NewTool("batch_inspect_servers",
		mcp.WithDescription("Inspect multiple MCP servers and collect the results in one report"),
		mcp.WithString("server_configs",
			mcp.Required(),
			mcp.Description(`JSON array of server configurations, e.g. [{"name":"srv","command":"node server.js","args":["--port","3000"]}]`),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Per-server timeout in seconds (default 30)"),
		),
	)
	s.mcpServer.AddTool(batchTool, s.handleBatchInspect)

	inspectWithConfigTool := mcp.NewTool("inspect_with_config",
		mcp.WithDescription("Inspect an MCP server using a previously saved inspection profile"),
		mcp.WithString("config_name",
			mcp.Description("Name of a saved profile (see the inspector://configs resource)"),
		),
		mcp.WithString("config_file",
			mcp.Description("Path to a profile file, as an alternative to config_name"),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Timeout in seconds (default 30)"),
		),
	)
	s.mcpServer.AddTool(inspectWithConfigTool, s.handleInspectWithConfig)

	helpTool := mcp.NewTool("get_inspector_help",
		mcp.WithDescription("Get help and usage information for the MCP Inspector CLI"),
		mcp.WithString("topic",
			mcp.Description("Help topic: overview, tools, resources, prompts, debugging, examples"),
		),
	)
	s.mcpServer.AddTool(helpTool, s.handleInspectorHelp)

	// Tools below invoke target functionality or write local state and are
	// gated on full mode.
	if s.config.CanCallTools() {
		callTool := mcp.NewTool("call_mcp_tool",
			mcp.WithDescription("Call a specific tool on an MCP server with the given arguments"),
			mcp.WithString("server_command",
				mcp.Required(),
				mcp.Description("Command to start the target MCP server"),
			),
			mcp.WithString("server_args",
				mcp.Description("Additional arguments for the server command, whitespace separated"),
			),
			mcp.WithString("tool_name",
				mcp.Required(),
				mcp.Description("Name of the tool to call"),
			),
			mcp.WithString("tool_args",
				mcp.Description("Arguments for the tool as a JSON object string"),
			),
			mcp.WithNumber("timeout",
				mcp.Description("Timeout in seconds (default 30)"),
			),
		)
		s.mcpServer.AddTool(callTool, s.handleCallTool)
	}

	if s.config.CanWriteConfigs() {
		createConfigTool := mcp.NewTool("create_inspector_config",
			mcp.WithDescription("Save a reusable inspection profile for an MCP server"),
			mcp.WithString("config_name",
				mcp.Required(),
				mcp.Description("Name for the profile (letters, digits, dot, dash, underscore)"),
			),
			mcp.WithString("server_command",
				mcp.Required(),
				mcp.Description("Command to start the target MCP server"),
			),
			mcp.WithString("server_args",
				mcp.Description("Additional arguments for the server command, whitespace separated"),
			),
		)
		s.mcpServer.AddTool(createConfigTool, s.handleCreateConfig)
	}

	if s.config.CanSetLogLevel() {
		setLevelTool := mcp.NewTool("set_logging_level",
			mcp.WithDescription("Set the logging level of the inspector-mcp server itself"),
			mcp.WithString("level",
				mcp.Required(),
				mcp.Description("Logging level: DEBUG, INFO, WARNING or ERROR"),
			),
		)
		s.mcpServer.AddTool(setLevelTool, s.handleSetLoggingLevel)
	}
}
