// Package inspector runs the official MCP Inspector CLI as a subprocess and
// relays its output.
//
// This package owns the process boundary described by the project: building
// the `npx @modelcontextprotocol/inspector --cli ...` argument vector for a
// given method, executing it under a deadline, killing the whole process
// group on timeout (npx spawns children of its own), and parsing the JSON
// the Inspector prints to stdout. It deliberately implements no MCP client
// logic: the Inspector owns protocol handling and validation.
package inspector

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avandras/inspector-mcp/internal/config"
	"github.com/avandras/inspector-mcp/internal/errors"
	"github.com/avandras/inspector-mcp/pkg/types"
)

// Request describes one Inspector CLI invocation.
type Request struct {
	// ServerCommand is the command that starts the target MCP server,
	// e.g. "python server.py". It is split on whitespace.
	ServerCommand string

	// ServerArgs are additional arguments appended to the server command.
	ServerArgs []string

	// Method is the Inspector method to call.
	Method types.Method

	// Flags are method-specific flags such as --tool-name or --resource-uri.
	Flags []string

	// Timeout bounds the run. Zero means the configured default.
	Timeout time.Duration
}

// Validate checks the request before any subprocess work happens.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.ServerCommand) == "" {
		return errors.MissingParameter("serverCommand",
			"Provide the command that starts the target MCP server, e.g. 'python server.py' or 'node build/index.js'.")
	}
	if !r.Method.IsKnown() {
		return errors.InvalidParameter("method", string(r.Method),
			fmt.Sprintf("one of: %s", joinMethods(types.KnownMethods)))
	}
	return nil
}

// Argv builds the full argument list passed to cfg.InspectorCommand:
//
//	<inspectorArgs...> <server command fields...> <server args...> --method <m> <flags...>
func (r *Request) Argv(cfg *config.Config) []string {
	argv := make([]string, 0, len(cfg.InspectorArgs)+len(r.ServerArgs)+len(r.Flags)+4)
	argv = append(argv, cfg.InspectorArgs...)
	argv = append(argv, strings.Fields(r.ServerCommand)...)
	argv = append(argv, r.ServerArgs...)
	argv = append(argv, "--method", string(r.Method))
	argv = append(argv, r.Flags...)
	return argv
}

// ToolCallFlags builds the flags for a tools/call invocation. Arguments
// arrive as a JSON object string and become repeated --tool-arg key=value
// flags, the form the Inspector CLI accepts.
func ToolCallFlags(toolName, toolArguments string) ([]string, error) {
	flags := []string{"--tool-name", toolName}
	argFlags, err := kvFlags("--tool-arg", toolArguments)
	if err != nil {
		return nil, errors.InvalidJSON("toolArguments", err, `{"expression": "2+2", "limit": 10}`)
	}
	return append(flags, argFlags...), nil
}

// PromptGetFlags builds the flags for a prompts/get invocation.
func PromptGetFlags(promptName, promptArguments string) ([]string, error) {
	flags := []string{"--prompt-name", promptName}
	argFlags, err := kvFlags("--prompt-arg", promptArguments)
	if err != nil {
		return nil, errors.InvalidJSON("promptArguments", err, `{"code": "def hello(): ..."}`)
	}
	return append(flags, argFlags...), nil
}

// ResourceReadFlags builds the flags for a resources/read invocation.
func ResourceReadFlags(resourceURI string) []string {
	return []string{"--resource-uri", resourceURI}
}

// kvFlags converts a JSON object string into repeated "flag key=value"
// pairs, sorted by key so the argv is deterministic. Non-string values are
// re-encoded as JSON.
func kvFlags(flag, rawJSON string) ([]string, error) {
	if strings.TrimSpace(rawJSON) == "" {
		return nil, nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(rawJSON), &args); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flags := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		flags = append(flags, flag, fmt.Sprintf("%s=%s", k, formatArgValue(args[k])))
	}
	return flags, nil
}

func formatArgValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}

func joinMethods(methods []types.Method) string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
