package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/avandras/inspector-mcp/internal/configstore"
	"github.com/avandras/inspector-mcp/internal/errors"
	"github.com/avandras/inspector-mcp/internal/inspector"
	"github.com/avandras/inspector-mcp/pkg/types"
)

// jsonResult marshals v and wraps it in a text tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// timeoutParam reads the optional "timeout" argument, given in seconds.
// Zero means the runner's configured default applies.
func timeoutParam(request mcp.CallToolRequest) time.Duration {
	seconds := request.GetFloat("timeout", 0)
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

// serverArgsParam reads the optional whitespace-separated "server_args"
// argument.
func serverArgsParam(request mcp.CallToolRequest) []string {
	return strings.Fields(request.GetString("server_args", ""))
}

func (s *Server) handleInspectServer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	serverCommand, err := request.RequireString("server_command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.runner.Run(ctx, inspector.Request{
		ServerCommand: serverCommand,
		ServerArgs:    serverArgsParam(request),
		Method:        types.MethodToolsList,
		Timeout:       timeoutParam(request),
	})
	return jsonResult(result.Payload())
}

func (s *Server) handleCallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.config.CanCallTools() {
		return mcp.NewToolResultError(errors.PermissionDenied("call", string(s.config.Mode)).Error()), nil
	}

	serverCommand, err := request.RequireString("server_command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	toolName, err := request.RequireString("tool_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	flags, err := inspector.ToolCallFlags(toolName, request.GetString("tool_args", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.runner.Run(ctx, inspector.Request{
		ServerCommand: serverCommand,
		ServerArgs:    serverArgsParam(request),
		Method:        types.MethodToolsCall,
		Flags:         flags,
		Timeout:       timeoutParam(request),
	})
	return jsonResult(result.Payload())
}

func (s *Server) handleReadResource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	serverCommand, err := request.RequireString("server_command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resourceURI, err := request.RequireString("resource_uri")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.runner.Run(ctx, inspector.Request{
		ServerCommand: serverCommand,
		ServerArgs:    serverArgsParam(request),
		Method:        types.MethodResourcesRead,
		Flags:         inspector.ResourceReadFlags(resourceURI),
		Timeout:       timeoutParam(request),
	})
	return jsonResult(result.Payload())
}

func (s *Server) handleGetPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	serverCommand, err := request.RequireString("server_command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	promptName, err := request.RequireString("prompt_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	flags, err := inspector.PromptGetFlags(promptName, request.GetString("prompt_args", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.runner.Run(ctx, inspector.Request{
		ServerCommand: serverCommand,
		ServerArgs:    serverArgsParam(request),
		Method:        types.MethodPromptsGet,
		Flags:         flags,
		Timeout:       timeoutParam(request),
	})
	return jsonResult(result.Payload())
}

func (s *Server) handleListResourceTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	serverCommand, err := request.RequireString("server_command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.runner.Run(ctx, inspector.Request{
		ServerCommand: serverCommand,
		ServerArgs:    serverArgsParam(request),
		Method:        types.MethodTemplatesList,
		Timeout:       timeoutParam(request),
	})
	return jsonResult(result.Payload())
}

func (s *Server) handleComprehensiveTest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	serverCommand, err := request.RequireString("server_command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer s.logger.LogPerformance("comprehensive_server_test", time.Now())

	serverArgs := serverArgsParam(request)
	timeout := timeoutParam(request)
	if timeout == 0 {
		timeout = s.config.ComprehensiveTimeout.Std()
	}

	probes := []struct {
		key      string
		method   types.Method
		countKey string
	}{
		{"tools_list", types.MethodToolsList, "tools"},
		{"resources_list", types.MethodResourcesList, "resources"},
		{"prompts_list", types.MethodPromptsList, "prompts"},
	}

	report := types.TestReport{
		ServerCommand: serverCommand,
		TestResults:   make(map[string]types.ProbeResult, len(probes)),
	}
	results := make([]*types.RunResult, len(probes))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, probe := range probes {
		g.Go(func() error {
			start := time.Now()
			result := s.runner.Run(gctx, inspector.Request{
				ServerCommand: serverCommand,
				ServerArgs:    serverArgs,
				Method:        probe.method,
				Timeout:       timeout,
			})
			mu.Lock()
			results[i] = result
			report.TestResults[probe.key] = types.ProbeResult{
				Method:     probe.method,
				Result:     result.Payload(),
				DurationMs: time.Since(start).Milliseconds(),
			}
			mu.Unlock()
			return nil
		})
	}
	// Probes never return errors; failures land in their results.
	_ = g.Wait()

	report.Summary = types.TestSummary{
		OverallStatus: types.StatusHealthy,
	}
	for i, probe := range probes {
		count := countItems(results[i], probe.countKey)
		switch probe.countKey {
		case "tools":
			report.Summary.ToolsAvailable = count
		case "resources":
			report.Summary.ResourcesAvailable = count
		case "prompts":
			report.Summary.PromptsAvailable = count
		}
		if !results[i].Success {
			report.Summary.OverallStatus = types.StatusIssuesDetected
		}
	}

	return jsonResult(report)
}

// countItems counts the entries under key in a successful probe's parsed
// output, e.g. the "tools" array of a tools/list response.
func countItems(result *types.RunResult, key string) int {
	if result == nil || !result.Success || result.Data == nil {
		return 0
	}
	items, ok := result.Data[key].([]interface{})
	if !ok {
		return 0
	}
	return len(items)
}

func (s *Server) handleBatchInspect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawConfigs, err := request.RequireString("server_configs")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var targets []types.Target
	if err := json.Unmarshal([]byte(rawConfigs), &targets); err != nil {
		return mcp.NewToolResultError(errors.BatchInvalid(fmt.Sprintf("invalid JSON in server_configs: %v", err)).Error()), nil
	}
	if len(targets) == 0 {
		return mcp.NewToolResultError(errors.BatchInvalid("server_configs must contain at least one server").Error()), nil
	}
	defer s.logger.LogPerformance("batch_inspect_servers", time.Now())

	timeout := timeoutParam(request)
	results := make([]types.BatchResult, len(targets))
	succeeded := make([]bool, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentInspections)
	for i, target := range targets {
		g.Go(func() error {
			if strings.TrimSpace(target.Command) == "" {
				results[i] = types.BatchResult{
					Index:  i,
					Target: target,
					Result: map[string]interface{}{
						"success": false,
						"error":   "missing server command",
					},
				}
				return nil
			}

			result := s.runner.Run(gctx, inspector.Request{
				ServerCommand: target.Command,
				ServerArgs:    target.Args,
				Method:        types.MethodToolsList,
				Timeout:       timeout,
			})
			results[i] = types.BatchResult{Index: i, Target: target, Result: result.Payload()}
			succeeded[i] = result.Success
			return nil
		})
	}
	_ = g.Wait()

	summary := types.BatchSummary{TotalServers: len(targets)}
	for _, ok := range succeeded {
		if ok {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	return jsonResult(map[string]interface{}{
		"batch_results": results,
		"summary":       summary,
	})
}

func (s *Server) handleInspectWithConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configName := request.GetString("config_name", "")
	configFile := request.GetString("config_file", "")

	var (
		saved *types.SavedConfigInfo
		err   error
	)
	switch {
	case configName != "":
		saved, err = s.store.Load(configName)
		if stderrors.Is(err, configstore.ErrNotFound) {
			return mcp.NewToolResultError(errors.ConfigNotFound(configName, s.store.Names()).Error()), nil
		}
		if err != nil {
			return mcp.NewToolResultError(errors.ConfigInvalid(configName, err.Error()).Error()), nil
		}
	case configFile != "":
		saved, err = configstore.LoadPath(configFile)
		if err != nil {
			return mcp.NewToolResultError(errors.FromError(err).Error()), nil
		}
	default:
		return mcp.NewToolResultError(errors.MissingParameter("config_name",
			"Provide config_name for a saved profile, or config_file for a profile on disk.").Error()), nil
	}

	result := s.runner.Run(ctx, inspector.Request{
		ServerCommand: saved.ServerCommand,
		ServerArgs:    saved.ServerArgs,
		Method:        types.MethodToolsList,
		Timeout:       timeoutParam(request),
	})

	payload := result.Payload()
	out := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		out[k] = v
	}
	out["config_used"] = saved
	return jsonResult(out)
}

func (s *Server) handleCreateConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.config.CanWriteConfigs() {
		return mcp.NewToolResultError(errors.PermissionDenied("config", string(s.config.Mode)).Error()), nil
	}

	configName, err := request.RequireString("config_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	serverCommand, err := request.RequireString("server_command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	saved, err := s.store.Save(configName, serverCommand, serverArgsParam(request))
	if err != nil {
		return jsonResult(map[string]interface{}{
			"success": false,
			"error":   fmt.Sprintf("failed to save configuration: %v", err),
		})
	}

	s.logger.Info("saved inspection profile", "name", saved.Name, "command", saved.ServerCommand)
	return jsonResult(map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Configuration %q saved to %s", saved.Name, s.store.Dir()),
		"config":  saved,
	})
}

func (s *Server) handleSetLoggingLevel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.config.CanSetLogLevel() {
		return mcp.NewToolResultError(errors.PermissionDenied("logging", string(s.config.Mode)).Error()), nil
	}

	level, err := request.RequireString("level")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.logger.SetLevel(level); err != nil {
		return jsonResult(map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
	}

	return jsonResult(map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Logging level set to %s", strings.ToUpper(level)),
	})
}
