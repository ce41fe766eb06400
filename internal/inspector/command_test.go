package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avandras/inspector-mcp/internal/config"
	"github.com/avandras/inspector-mcp/pkg/types"
)

func TestRequestValidate(t *testing.T) {
	valid := Request{ServerCommand: "python server.py", Method: types.MethodToolsList}
	assert.NoError(t, valid.Validate())

	blank := Request{ServerCommand: "   ", Method: types.MethodToolsList}
	assert.Error(t, blank.Validate())

	unknown := Request{ServerCommand: "python server.py", Method: "tools/destroy"}
	assert.Error(t, unknown.Validate())
}

func TestArgv(t *testing.T) {
	cfg := config.DefaultConfig()

	req := Request{
		ServerCommand: "python server.py",
		ServerArgs:    []string{"--port", "3000"},
		Method:        types.MethodToolsList,
	}
	assert.Equal(t, []string{
		"@modelcontextprotocol/inspector", "--cli",
		"python", "server.py",
		"--port", "3000",
		"--method", "tools/list",
	}, req.Argv(cfg))
}

func TestArgvWithFlags(t *testing.T) {
	cfg := config.DefaultConfig()

	req := Request{
		ServerCommand: "node server.js",
		Method:        types.MethodResourcesRead,
		Flags:         ResourceReadFlags("file://config.json"),
	}
	assert.Equal(t, []string{
		"@modelcontextprotocol/inspector", "--cli",
		"node", "server.js",
		"--method", "resources/read",
		"--resource-uri", "file://config.json",
	}, req.Argv(cfg))
}

func TestToolCallFlags(t *testing.T) {
	flags, err := ToolCallFlags("search", `{"query": "users", "limit": 10}`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--tool-name", "search",
		"--tool-arg", "limit=10",
		"--tool-arg", "query=users",
	}, flags)
}

func TestToolCallFlagsNoArguments(t *testing.T) {
	flags, err := ToolCallFlags("ping", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"--tool-name", "ping"}, flags)
}

func TestToolCallFlagsInvalidJSON(t *testing.T) {
	_, err := ToolCallFlags("search", "{not json")
	assert.Error(t, err)
}

func TestToolCallFlagsNonStringValues(t *testing.T) {
	flags, err := ToolCallFlags("compute", `{"enabled": true, "weights": [1, 2]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--tool-name", "compute",
		"--tool-arg", "enabled=true",
		"--tool-arg", "weights=[1,2]",
	}, flags)
}

func TestPromptGetFlags(t *testing.T) {
	flags, err := PromptGetFlags("code_review", `{"code": "print('hi')"}`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--prompt-name", "code_review",
		"--prompt-arg", "code=print('hi')",
	}, flags)
}
