package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := &InspectorError{
		Code:    CodeCommandFailed,
		Message: "something broke",
		Hint:    "try again",
	}
	assert.Equal(t, "something broke | Hint: try again", err.Error())

	noHint := &InspectorError{Code: CodeCommandFailed, Message: "something broke"}
	assert.Equal(t, "something broke", noHint.Error())
}

func TestCommandFailed(t *testing.T) {
	err := CommandFailed(2)
	assert.Equal(t, CodeCommandFailed, err.Code)
	assert.Contains(t, err.Message, "command failed with exit code 2")
	assert.Equal(t, 2, err.Details["exitCode"])
}

func TestCommandTimeout(t *testing.T) {
	err := CommandTimeout(30)
	assert.Equal(t, CodeCommandTimeout, err.Code)
	assert.Contains(t, err.Message, "command timed out after 30 seconds")
}

func TestInspectorNotFoundPreservesCause(t *testing.T) {
	cause := fmt.Errorf("exec: not found")
	err := InspectorNotFound("npx", cause)

	assert.Equal(t, CodeInspectorNotFound, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Hint, "npx")
}

func TestPermissionDeniedHints(t *testing.T) {
	callErr := PermissionDenied("call", "readonly")
	assert.Contains(t, callErr.Hint, "readonly mode")

	otherErr := PermissionDenied("something_else", "readonly")
	assert.Contains(t, otherErr.Hint, "readonly")
}

func TestConfigNotFoundListsAvailable(t *testing.T) {
	err := ConfigNotFound("missing", []string{"alpha", "beta"})
	assert.Contains(t, err.Hint, "alpha, beta")

	empty := ConfigNotFound("missing", nil)
	assert.Contains(t, empty.Hint, "create_inspector_config")
}

func TestWithDetails(t *testing.T) {
	err := MissingParameter("server_command", "provide the startup command").
		WithDetails("extra", 42)
	assert.Equal(t, "server_command", err.Details["parameter"])
	assert.Equal(t, 42, err.Details["extra"])
}

func TestFromError(t *testing.T) {
	structured := CommandFailed(1)
	wrapped := fmt.Errorf("context: %w", structured)

	got := FromError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, CodeCommandFailed, got.Code)

	plain := FromError(stderrors.New("boom"))
	assert.Equal(t, ErrorCode("UNKNOWN_ERROR"), plain.Code)
	assert.Equal(t, "boom", plain.Message)
}
