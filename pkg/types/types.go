// Package types defines shared data types used across the inspector-mcp server.
//
// This package provides type definitions for:
//   - Method: Inspector CLI methods (tools/list, tools/call, resources/read, ...)
//   - Target: an MCP server under inspection (command plus arguments)
//   - RunResult: the outcome of one Inspector CLI invocation
//   - ProbeResult / TestReport: comprehensive test output
//   - BatchResult / BatchSummary: batch inspection output
//
// These types are used throughout the codebase to maintain type safety
// and provide clear contracts between components.
package types

import "time"

// Method is an Inspector CLI method name.
type Method string

const (
	MethodToolsList       Method = "tools/list"
	MethodToolsCall       Method = "tools/call"
	MethodResourcesList   Method = "resources/list"
	MethodResourcesRead   Method = "resources/read"
	MethodTemplatesList   Method = "resources/templates/list"
	MethodPromptsList     Method = "prompts/list"
	MethodPromptsGet      Method = "prompts/get"
	MethodLoggingSetLevel Method = "logging/setLevel"
)

// KnownMethods lists every method the wrapped Inspector CLI accepts.
var KnownMethods = []Method{
	MethodToolsList,
	MethodToolsCall,
	MethodResourcesList,
	MethodResourcesRead,
	MethodTemplatesList,
	MethodPromptsList,
	MethodPromptsGet,
	MethodLoggingSetLevel,
}

// IsKnown reports whether m is a method the Inspector CLI understands.
func (m Method) IsKnown() bool {
	for _, known := range KnownMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Target identifies an MCP server to inspect.
type Target struct {
	Name    string   `json:"name,omitempty"`
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// RunResult is the outcome of a single Inspector CLI invocation.
//
// When the Inspector exits zero and prints JSON, Data holds the parsed
// object and the raw fields stay empty. When it exits zero with non-JSON
// output, RawOutput and Stderr are populated. On failure, Error describes
// what went wrong and Stdout/Stderr carry the captured streams.
type RunResult struct {
	RunID      string         `json:"runId,omitempty"`
	Success    bool           `json:"success"`
	Data       map[string]any `json:"data,omitempty"`
	RawOutput  string         `json:"raw_output,omitempty"`
	Stdout     string         `json:"stdout,omitempty"`
	Stderr     string         `json:"stderr,omitempty"`
	Error      string         `json:"error,omitempty"`
	ExitCode   int            `json:"exitCode,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
}

// Payload returns the JSON-serializable mapping relayed to the MCP client:
// a parsed JSON object passes through untouched, everything else is wrapped
// in a success/error envelope.
func (r *RunResult) Payload() map[string]any {
	if r.Success && r.Data != nil {
		return r.Data
	}
	out := map[string]any{"success": r.Success}
	if r.RawOutput != "" {
		out["raw_output"] = r.RawOutput
	}
	if r.Error != "" {
		out["error"] = r.Error
	}
	if r.Stdout != "" {
		out["stdout"] = r.Stdout
	}
	if r.Stderr != "" {
		out["stderr"] = r.Stderr
	}
	return out
}

// ProbeResult is the outcome of one capability probe inside a
// comprehensive server test.
type ProbeResult struct {
	Method     Method         `json:"method"`
	Result     map[string]any `json:"result"`
	DurationMs int64          `json:"durationMs"`
}

// TestReport aggregates the probes of a comprehensive server test.
type TestReport struct {
	ServerCommand string                 `json:"server_command"`
	TestResults   map[string]ProbeResult `json:"test_results"`
	Summary       TestSummary            `json:"summary"`
}

// TestSummary condenses a TestReport into headline numbers.
type TestSummary struct {
	ToolsAvailable     int    `json:"tools_available"`
	ResourcesAvailable int    `json:"resources_available"`
	PromptsAvailable   int    `json:"prompts_available"`
	OverallStatus      string `json:"overall_status"`
}

// Overall status values for TestSummary.
const (
	StatusHealthy        = "healthy"
	StatusIssuesDetected = "issues_detected"
)

// BatchResult is the outcome of inspecting one server in a batch.
type BatchResult struct {
	Index  int            `json:"index"`
	Target Target         `json:"config"`
	Result map[string]any `json:"result"`
}

// BatchSummary condenses a batch inspection.
type BatchSummary struct {
	TotalServers int `json:"total_servers"`
	Successful   int `json:"successful"`
	Failed       int `json:"failed"`
}

// SavedConfigInfo describes a stored inspection profile.
type SavedConfigInfo struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ServerCommand string    `json:"server_command"`
	ServerArgs    []string  `json:"server_args,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
