package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avandras/inspector-mcp/internal/config"
)

func TestStaticDocResources(t *testing.T) {
	handler := staticMarkdown("inspector://docs/overview", docOverview)

	contents, err := handler(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "inspector://docs/overview", text.URI)
	assert.Equal(t, "text/markdown", text.MIMEType)
	assert.Contains(t, text.Text, "tools/list")
}

func TestConfigsResource(t *testing.T) {
	server, _ := newTestServer(t, config.ModeFull)

	_, err := server.store.Save("listed", "python server.py", nil)
	require.NoError(t, err)

	contents, err := server.handleConfigsResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text := contents[0].(mcp.TextResourceContents)
	assert.Equal(t, "application/json", text.MIMEType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	assert.Equal(t, float64(1), payload["count"])

	configs := payload["configs"].([]any)
	require.Len(t, configs, 1)
	assert.Equal(t, "listed", configs[0].(map[string]any)["name"])
}
