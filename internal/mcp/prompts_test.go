package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avandras/inspector-mcp/internal/config"
)

func promptRequest(args map[string]string) mcp.GetPromptRequest {
	return mcp.GetPromptRequest{
		Params: mcp.GetPromptParams{Arguments: args},
	}
}

func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, result.Messages, 1)
	content, ok := result.Messages[0].Content.(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return content.Text
}

func TestWorkflowGuidePrompt(t *testing.T) {
	server, _ := newTestServer(t, config.ModeFull)

	result, err := server.handleWorkflowGuide(context.Background(), promptRequest(map[string]string{
		"server_type":      "python",
		"testing_scope":    "comprehensive",
		"experience_level": "expert",
	}))
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "python server.py")
	assert.Contains(t, text, "custom validation scripts")
	assert.Contains(t, text, "virtual environment")
	assert.Contains(t, text, "comprehensive_server_test")
}

func TestWorkflowGuidePromptDefaults(t *testing.T) {
	server, _ := newTestServer(t, config.ModeFull)

	result, err := server.handleWorkflowGuide(context.Background(), promptRequest(nil))
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "identify the server type")
	assert.Contains(t, text, "full capability testing")
}

func TestTestingStrategyPrompt(t *testing.T) {
	server, _ := newTestServer(t, config.ModeFull)

	result, err := server.handleTestingStrategy(context.Background(), promptRequest(map[string]string{
		"server_complexity": "enterprise",
		"time_constraint":   "urgent",
		"focus_area":        "security",
	}))
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "enterprise")
	assert.Contains(t, text, "hostile inputs")
	assert.Contains(t, text, "most critical tools")
}

func TestTroubleshootingGuidePrompt(t *testing.T) {
	server, _ := newTestServer(t, config.ModeFull)

	result, err := server.handleTroubleshootingGuide(context.Background(), promptRequest(map[string]string{
		"error_type":         "timeout",
		"server_environment": "production",
		"urgency_level":      "critical",
	}))
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "timeout")
	assert.Contains(t, text, "roll back immediately")
}

func TestBestPracticesPrompt(t *testing.T) {
	server, _ := newTestServer(t, config.ModeFull)

	result, err := server.handleBestPracticesGuide(context.Background(), promptRequest(map[string]string{
		"use_case":         "ci_cd",
		"automation_level": "high",
	}))
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "Gate merges")
	assert.Contains(t, text, "batch_inspect_servers")
}
