package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodIsKnown(t *testing.T) {
	assert.True(t, MethodToolsList.IsKnown())
	assert.True(t, MethodLoggingSetLevel.IsKnown())
	assert.False(t, Method("tools/destroy").IsKnown())
	assert.False(t, Method("").IsKnown())
}

func TestPayloadPassesThroughParsedData(t *testing.T) {
	result := &RunResult{
		Success: true,
		Data:    map[string]any{"tools": []any{"a"}},
	}
	assert.Equal(t, result.Data, result.Payload())
}

func TestPayloadWrapsRawOutput(t *testing.T) {
	result := &RunResult{
		Success:   true,
		RawOutput: "plain text",
		Stderr:    "a warning",
	}
	payload := result.Payload()

	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "plain text", payload["raw_output"])
	assert.Equal(t, "a warning", payload["stderr"])
	assert.NotContains(t, payload, "error")
}

func TestPayloadWrapsFailure(t *testing.T) {
	result := &RunResult{
		Success: false,
		Error:   "command failed with exit code 1",
		Stdout:  "partial",
		Stderr:  "boom",
	}
	payload := result.Payload()

	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "command failed with exit code 1", payload["error"])
	assert.Equal(t, "partial", payload["stdout"])
	assert.Equal(t, "boom", payload["stderr"])
	assert.NotContains(t, payload, "data")
}
