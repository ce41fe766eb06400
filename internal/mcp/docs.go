package mcp

// Documentation served under inspector://docs/*. Code samples use indented
// blocks so the markdown can live in raw string literals.

const docOverview = `# MCP Inspector - Documentation

## Overview
The MCP Inspector is the official testing and debugging tool for Model
Context Protocol (MCP) servers. This server wraps its CLI mode so MCP
clients can inspect, test, and validate other servers.

## Key Features
- **Server Inspection**: Discover tools, resources, and prompts
- **Interactive Testing**: Execute tools and access resources
- **Protocol Validation**: Verify MCP compliance
- **Performance Monitoring**: Measure response times

## Installation

    # Install globally
    npm install -g @modelcontextprotocol/inspector

    # Or use directly
    npx @modelcontextprotocol/inspector

## Command Line Interface

    npx @modelcontextprotocol/inspector --cli [server_command] --method [method]

    # Examples:
    npx @modelcontextprotocol/inspector --cli python server.py --method tools/list
    npx @modelcontextprotocol/inspector --cli node server.js --method resources/list

## Supported Methods
1. **tools/list** - List all available tools
2. **tools/call** - Execute a specific tool
3. **resources/list** - List all available resources
4. **resources/read** - Read specific resource content
5. **resources/templates/list** - List resource templates
6. **prompts/list** - List all available prompts
7. **prompts/get** - Get specific prompt content
8. **logging/setLevel** - Set server logging level

## Method Parameters

tools/call:

    --tool-name [tool_name]
    --tool-arg key=value

resources/read:

    --resource-uri [resource_uri]

prompts/get:

    --prompt-name [prompt_name]
    --prompt-arg key=value

logging/setLevel:

    --level [debug|info|warn|error]

## Common Issues
- **Connection Problems**: Verify the server is running
- **Tool Failures**: Validate parameters and implementation
- **Timeout Issues**: Increase timeout or optimize the server
- **Resource Access**: Check URIs and permissions
`

const docGitHub = `# MCP Inspector - GitHub Repository

## Repository Details
- **URL**: https://github.com/modelcontextprotocol/inspector
- **License**: MIT License
- **Language**: TypeScript/JavaScript
- **Minimum Node.js**: 16.0.0

## Installation Options

    # Global installation
    npm install -g @modelcontextprotocol/inspector

    # Project-specific
    npm install --save-dev @modelcontextprotocol/inspector

    # Direct usage
    npx @modelcontextprotocol/inspector

## CLI Commands

    # Basic inspection
    npx @modelcontextprotocol/inspector --cli [server_command] --method [method]

    # Tool testing
    npx @modelcontextprotocol/inspector --cli [server_command] --method tools/call --tool-name [name]

    # Resource reading
    npx @modelcontextprotocol/inspector --cli [server_command] --method resources/read --resource-uri [uri]

## Support
- GitHub Issues for bug reports
- Discussions for community questions
- Regular releases with semantic versioning

Visit the repository for current information, issues, and contributions.
`

const docExamples = `# MCP Inspector - Usage Examples

## Server Discovery

    # List tools
    npx @modelcontextprotocol/inspector --cli python server.py --method tools/list

    # List resources
    npx @modelcontextprotocol/inspector --cli python server.py --method resources/list

    # List prompts
    npx @modelcontextprotocol/inspector --cli python server.py --method prompts/list

## Tool Testing

    # Simple tool call
    npx @modelcontextprotocol/inspector --cli python server.py --method tools/call --tool-name calculate --tool-arg expression="2+2"

    # Complex parameters
    npx @modelcontextprotocol/inspector --cli python server.py --method tools/call \
      --tool-name search_database \
      --tool-arg query="user data" \
      --tool-arg limit=10

## Resource Access

    # Read resource
    npx @modelcontextprotocol/inspector --cli python server.py --method resources/read \
      --resource-uri "file://config.json"

    # List templates
    npx @modelcontextprotocol/inspector --cli python server.py --method resources/templates/list

## Prompt Testing

    # Get prompt
    npx @modelcontextprotocol/inspector --cli python server.py --method prompts/get \
      --prompt-name code_review \
      --prompt-arg code="def hello(): print('world')"

## CI/CD Integration

    name: MCP Server Testing
    on: [push, pull_request]

    jobs:
      test:
        runs-on: ubuntu-latest
        steps:
          - uses: actions/checkout@v3
          - uses: actions/setup-node@v3
            with:
              node-version: '18'
          - name: Install Inspector
            run: npm install -g @modelcontextprotocol/inspector
          - name: Test Server
            run: |
              python server.py &
              sleep 5
              npx @modelcontextprotocol/inspector --cli python server.py --method tools/list

## Common Issues
- **Connection timeout**: Increase timeout or check server status
- **Invalid parameters**: Verify tool/resource/prompt arguments
- **Permission errors**: Check file access and server permissions
`

const docConfigTemplates = `# MCP Inspector - Configuration Templates

## Basic Server Configuration

    {
      "name": "basic-server",
      "server": {
        "command": "python",
        "args": ["server.py"],
        "env": {"DEBUG": "false"},
        "timeout": 30
      },
      "tests": {
        "basic": ["tools/list", "resources/list", "prompts/list"],
        "comprehensive": ["tools/list", "resources/list", "prompts/list", "resources/templates/list"]
      }
    }

## Multi-Environment Configuration

    {
      "name": "multi-environment",
      "servers": {
        "development": {
          "command": "python",
          "args": ["dev_server.py"],
          "env": {"ENV": "dev", "DEBUG": "true"}
        },
        "production": {
          "command": "python",
          "args": ["prod_server.py"],
          "env": {"ENV": "production", "DEBUG": "false"}
        }
      },
      "test_matrix": {
        "health": ["tools/list", "resources/list"],
        "full": ["tools/list", "resources/list", "prompts/list"]
      }
    }

## Monitoring Configuration

    {
      "name": "monitoring",
      "server": {"command": "python", "args": ["server.py"]},
      "monitoring": {
        "check_interval": 60,
        "health_checks": [
          {"name": "connectivity", "method": "tools/list", "critical": true},
          {"name": "resources", "method": "resources/list", "critical": false}
        ]
      }
    }

These templates provide structured approaches for different testing
scenarios and can be customized as needed. Profiles saved with
create_inspector_config are listed by the inspector://configs resource.
`

const docBestPractices = `# MCP Inspector - Best Practices

## Development Workflow

    # Morning check
    npx @modelcontextprotocol/inspector --cli python server.py --method tools/list

    # After changes
    npx @modelcontextprotocol/inspector --cli python server.py --method tools/list
    npx @modelcontextprotocol/inspector --cli python server.py --method resources/list

    # Pre-commit validation
    npx @modelcontextprotocol/inspector --cli python server.py --method tools/call --tool-name new_tool

## Testing Strategy

### Test Pyramid
- **E2E Tests**: Inspector integration testing
- **Integration Tests**: Tool/resource functionality
- **Unit Tests**: Individual component testing

### Comprehensive Checklist
- Connectivity testing
- Capability discovery
- Functionality validation
- Error handling verification
- Performance benchmarking
- Security validation

## Production Practices
- Probe tools/list on a schedule as a health check
- Track response times and alert on regressions
- Keep the Inspector up to date (npm update -g @modelcontextprotocol/inspector)

## Security Practices
Test tools with hostile inputs (SQL injection strings, script tags, path
traversal) and verify the server rejects or sanitizes them rather than
echoing them back.

## Maintenance
- **Weekly**: Update Inspector, review test trends
- **Monthly**: Performance baseline review, security testing
- **Quarterly**: Test automation improvement, documentation updates
`
