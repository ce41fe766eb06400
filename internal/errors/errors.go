// Package errors provides structured error types for the inspector-mcp server.
// These errors include helpful hints and suggestions that guide the LLM
// to correct course when something goes wrong.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a category of error for programmatic handling
type ErrorCode string

const (
	// Inspector process errors
	CodeInspectorNotFound ErrorCode = "INSPECTOR_NOT_FOUND"
	CodeCommandFailed     ErrorCode = "COMMAND_FAILED"
	CodeCommandTimeout    ErrorCode = "COMMAND_TIMEOUT"

	// Parameter errors
	CodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	CodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
	CodeInvalidJSON      ErrorCode = "INVALID_JSON"

	// Permission errors
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Saved configuration errors
	CodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	CodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Batch errors
	CodeBatchInvalid ErrorCode = "BATCH_INVALID"
)

// InspectorError is a structured error type that includes helpful information
// for the LLM to understand what went wrong and how to fix it.
type InspectorError struct {
	// Code is a machine-readable error category
	Code ErrorCode `json:"code"`

	// Message is a human/LLM-readable description of what went wrong
	Message string `json:"message"`

	// Hint provides actionable guidance on how to fix the error
	Hint string `json:"hint,omitempty"`

	// Details contains additional context (e.g., the invalid value, expected format)
	Details map[string]interface{} `json:"details,omitempty"`

	// Cause is the underlying error, if any
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *InspectorError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Hint != "" {
		sb.WriteString(" | Hint: ")
		sb.WriteString(e.Hint)
	}

	return sb.String()
}

// Unwrap returns the underlying error for error chaining
func (e *InspectorError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *InspectorError) WithDetails(key string, value interface{}) *InspectorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// --- Inspector Process Errors ---

// InspectorNotFound creates an error for when the Inspector CLI cannot be started
func InspectorNotFound(command string, err error) *InspectorError {
	return &InspectorError{
		Code:    CodeInspectorNotFound,
		Message: fmt.Sprintf("failed to start the MCP Inspector via '%s': %v", command, err),
		Hint:    "Ensure Node.js is installed and 'npx' is on PATH. The Inspector is fetched on demand with: npx @modelcontextprotocol/inspector",
		Cause:   err,
		Details: map[string]interface{}{
			"command": command,
		},
	}
}

// CommandFailed creates an error for a non-zero Inspector exit
func CommandFailed(exitCode int) *InspectorError {
	return &InspectorError{
		Code:    CodeCommandFailed,
		Message: fmt.Sprintf("command failed with exit code %d", exitCode),
		Hint:    "The target server may have failed to start, or the method may not be supported. Check the returned stdout/stderr for details.",
		Details: map[string]interface{}{
			"exitCode": exitCode,
		},
	}
}

// CommandTimeout creates an error for an Inspector run that exceeded its deadline
func CommandTimeout(timeoutSeconds int) *InspectorError {
	return &InspectorError{
		Code:    CodeCommandTimeout,
		Message: fmt.Sprintf("command timed out after %d seconds", timeoutSeconds),
		Hint:    "The target server may be slow to start or hung. Retry with a larger timeout parameter, or verify the server command works on its own.",
		Details: map[string]interface{}{
			"timeoutSeconds": timeoutSeconds,
		},
	}
}

// --- Parameter Errors ---

// MissingParameter creates an error for missing required parameters
func MissingParameter(paramName, description string) *InspectorError {
	return &InspectorError{
		Code:    CodeMissingParameter,
		Message: fmt.Sprintf("required parameter '%s' is missing", paramName),
		Hint:    description,
		Details: map[string]interface{}{
			"parameter": paramName,
		},
	}
}

// InvalidParameter creates an error for invalid parameter values
func InvalidParameter(paramName string, value interface{}, expected string) *InspectorError {
	return &InspectorError{
		Code:    CodeInvalidParameter,
		Message: fmt.Sprintf("invalid value for parameter '%s': %v", paramName, value),
		Hint:    fmt.Sprintf("Expected: %s", expected),
		Details: map[string]interface{}{
			"parameter": paramName,
			"value":     value,
			"expected":  expected,
		},
	}
}

// InvalidJSON creates an error for JSON parsing failures
func InvalidJSON(paramName string, err error, example string) *InspectorError {
	return &InspectorError{
		Code:    CodeInvalidJSON,
		Message: fmt.Sprintf("invalid JSON in parameter '%s': %v", paramName, err),
		Hint:    fmt.Sprintf("Provide valid JSON. Example: %s", example),
		Cause:   err,
		Details: map[string]interface{}{
			"parameter": paramName,
			"example":   example,
		},
	}
}

// --- Permission Errors ---

// PermissionDenied creates an error for operations disabled by the server mode
func PermissionDenied(operation, mode string) *InspectorError {
	var hint string
	switch operation {
	case "call":
		hint = "Tool invocation on target servers is disabled in readonly mode. Ask the administrator to run the server with '-mode full'."
	case "config":
		hint = "Writing inspection configs is disabled in readonly mode. Ask the administrator to run the server with '-mode full'."
	case "logging":
		hint = "Changing the logging level is disabled in readonly mode."
	default:
		hint = fmt.Sprintf("This operation is not allowed in '%s' mode.", mode)
	}

	return &InspectorError{
		Code:    CodePermissionDenied,
		Message: fmt.Sprintf("%s is not allowed in current server mode", operation),
		Hint:    hint,
		Details: map[string]interface{}{
			"operation": operation,
			"mode":      mode,
		},
	}
}

// --- Saved Configuration Errors ---

// ConfigNotFound creates an error for a missing saved inspection config
func ConfigNotFound(name string, available []string) *InspectorError {
	var hint string
	if len(available) > 0 {
		hint = fmt.Sprintf("Available configurations: %s", strings.Join(available, ", "))
	} else {
		hint = "No saved configurations exist yet. Create one with create_inspector_config."
	}

	return &InspectorError{
		Code:    CodeConfigNotFound,
		Message: fmt.Sprintf("configuration '%s' not found", name),
		Hint:    hint,
		Details: map[string]interface{}{
			"configName":       name,
			"availableConfigs": available,
		},
	}
}

// ConfigInvalid creates an error for a malformed saved config
func ConfigInvalid(name, reason string) *InspectorError {
	return &InspectorError{
		Code:    CodeConfigInvalid,
		Message: fmt.Sprintf("configuration '%s' is invalid: %s", name, reason),
		Hint:    "Delete the configuration and recreate it with create_inspector_config.",
		Details: map[string]interface{}{
			"configName": name,
			"reason":     reason,
		},
	}
}

// --- Batch Errors ---

// BatchInvalid creates an error for a malformed batch description
func BatchInvalid(reason string) *InspectorError {
	return &InspectorError{
		Code:    CodeBatchInvalid,
		Message: fmt.Sprintf("invalid server batch: %s", reason),
		Hint:    `Provide a JSON array of server configs, e.g. [{"command": "python server.py"}, {"name": "docs", "command": "node", "args": ["docs.js"]}]`,
	}
}

// FromError creates an InspectorError from a generic error, preserving any existing structure
func FromError(err error) *InspectorError {
	var ie *InspectorError
	if stderrors.As(err, &ie) {
		return ie
	}
	return &InspectorError{
		Code:    "UNKNOWN_ERROR",
		Message: err.Error(),
		Hint:    "An unexpected error occurred. Please check the error message for details.",
		Cause:   err,
	}
}
