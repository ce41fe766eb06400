package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerPrompts registers the guidance prompts. Each prompt renders a
// structured testing playbook parameterized by the caller's situation.
func (s *Server) registerPrompts() {
	workflowPrompt := mcp.NewPrompt("inspector_workflow_guide",
		mcp.WithPromptDescription("Structured workflow guidance for inspecting an MCP server"),
		mcp.WithArgument("server_type",
			mcp.ArgumentDescription("Server type: python, nodejs, custom, unknown (default unknown)"),
		),
		mcp.WithArgument("testing_scope",
			mcp.ArgumentDescription("Testing scope: basic, comprehensive (default comprehensive)"),
		),
		mcp.WithArgument("experience_level",
			mcp.ArgumentDescription("User experience level: beginner, intermediate, expert (default intermediate)"),
		),
	)
	s.mcpServer.AddPrompt(workflowPrompt, s.handleWorkflowGuide)

	strategyPrompt := mcp.NewPrompt("server_testing_strategy",
		mcp.WithPromptDescription("Testing strategy tailored to server complexity, time, and focus area"),
		mcp.WithArgument("server_complexity",
			mcp.ArgumentDescription("Server complexity: simple, medium, complex, enterprise (default medium)"),
		),
		mcp.WithArgument("time_constraint",
			mcp.ArgumentDescription("Time constraint: urgent, normal, thorough (default normal)"),
		),
		mcp.WithArgument("focus_area",
			mcp.ArgumentDescription("Focus area: functionality, performance, security, reliability (default functionality)"),
		),
	)
	s.mcpServer.AddPrompt(strategyPrompt, s.handleTestingStrategy)

	troubleshootingPrompt := mcp.NewPrompt("troubleshooting_guide",
		mcp.WithPromptDescription("Troubleshooting guidance for a failing MCP server"),
		mcp.WithArgument("error_type",
			mcp.ArgumentDescription("Error type: connection, timeout, tool_error, resource_error, config_error (default connection)"),
		),
		mcp.WithArgument("server_environment",
			mcp.ArgumentDescription("Environment: development, testing, production (default development)"),
		),
		mcp.WithArgument("urgency_level",
			mcp.ArgumentDescription("Urgency: low, normal, high, critical (default normal)"),
		),
	)
	s.mcpServer.AddPrompt(troubleshootingPrompt, s.handleTroubleshootingGuide)

	bestPracticesPrompt := mcp.NewPrompt("best_practices_guide",
		mcp.WithPromptDescription("Best practices for MCP server testing and operations"),
		mcp.WithArgument("use_case",
			mcp.ArgumentDescription("Use case: general, ci_cd, development, production, research (default general)"),
		),
		mcp.WithArgument("team_size",
			mcp.ArgumentDescription("Team size: individual, small, medium, large (default small)"),
		),
		mcp.WithArgument("automation_level",
			mcp.ArgumentDescription("Automation level: manual, medium, high (default medium)"),
		),
	)
	s.mcpServer.AddPrompt(bestPracticesPrompt, s.handleBestPracticesGuide)
}

func promptArg(request mcp.GetPromptRequest, name, fallback string) string {
	if v, ok := request.Params.Arguments[name]; ok && v != "" {
		return v
	}
	return fallback
}

func guidanceResult(description, text string) (*mcp.GetPromptResult, error) {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	}), nil
}

func (s *Server) handleWorkflowGuide(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	serverType := promptArg(request, "server_type", "unknown")
	scope := promptArg(request, "testing_scope", "comprehensive")
	experience := promptArg(request, "experience_level", "intermediate")

	text := fmt.Sprintf(`You are a senior MCP server testing expert guiding an AI agent through systematic server inspection.

Situation: a %s-level inspection of a %s MCP server, for a %s user.
Startup command: %s
Strategy: %s

Standard process:
1. Connection verification: run inspect_mcp_server and confirm the server responds.
2. Feature discovery: run comprehensive_server_test to enumerate tools, resources, and prompts.
3. Deep testing: exercise each discovered tool with call_mcp_tool, read key resources with read_mcp_resource, and fetch prompts with get_mcp_prompt.
4. Performance evaluation: note the reported durations and flag anything slow.
5. Report generation: summarize capabilities, failures, and response times.

Recommendations:
%s

Test results must be actionable. Report each failure with the exact method, arguments, and output.`,
		scope, serverType, experience,
		serverCommandFor(serverType),
		testingStrategyFor(scope, experience),
		recommendationsFor(serverType, scope),
	)
	return guidanceResult("MCP server inspection workflow", text)
}

func (s *Server) handleTestingStrategy(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	complexity := promptArg(request, "server_complexity", "medium")
	timeConstraint := promptArg(request, "time_constraint", "normal")
	focus := promptArg(request, "focus_area", "functionality")

	text := fmt.Sprintf(`You are a senior MCP testing strategist. Design a test plan for a %s server with a %s time budget, focused on %s.

Coverage plan:
- Core: %s
- Focus: %s
- Time budget: %s

Execution order:
1. inspect_mcp_server for connectivity and tool discovery.
2. comprehensive_server_test for the full capability picture.
3. Targeted call_mcp_tool invocations per the focus area above.
4. batch_inspect_servers when several related servers must be compared.

Define pass criteria up front: which tools must respond, acceptable latency, and which failures block sign-off.`,
		complexity, timeConstraint, focus,
		coreCoverageFor(complexity),
		focusStrategyFor(focus),
		timeBudgetFor(timeConstraint),
	)
	return guidanceResult("MCP server testing strategy", text)
}

func (s *Server) handleTroubleshootingGuide(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	errorType := promptArg(request, "error_type", "connection")
	environment := promptArg(request, "server_environment", "development")
	urgency := promptArg(request, "urgency_level", "normal")

	text := fmt.Sprintf(`You are an experienced MCP server troubleshooting expert. Diagnose a %s issue in a %s environment at %s urgency.

Symptoms: %s
Likely causes: %s
Response posture: %s

Diagnostic steps:
1. Reproduce with inspect_mcp_server and capture the full error output.
2. Check the common causes above, narrowest first.
3. Re-run after each change; one variable at a time.
4. In production, prefer rollback over live debugging when urgency is high.

Always record what you changed and what the output was before and after.`,
		errorType, environment, urgency,
		errorSymptomsFor(errorType),
		possibleCausesFor(errorType),
		responseStrategyFor(urgency),
	)
	return guidanceResult("MCP server troubleshooting guide", text)
}

func (s *Server) handleBestPracticesGuide(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	useCase := promptArg(request, "use_case", "general")
	teamSize := promptArg(request, "team_size", "small")
	automation := promptArg(request, "automation_level", "medium")

	text := fmt.Sprintf(`You are a senior MCP server architect advising a %s team on %s usage with %s automation.

Practices to establish:
- Run inspect_mcp_server after every server change; treat a failing tools/list as a broken build.
- Schedule comprehensive_server_test as a recurring health check and track the summary counts over time.
- Save recurring targets with create_inspector_config and inspect them via inspect_with_config so test commands stay consistent.
- %s
- %s

Success metrics: tool count stability, zero failed probes in scheduled runs, and response times within an agreed baseline.`,
		teamSize, useCase, automation,
		useCasePracticeFor(useCase),
		automationPracticeFor(automation),
	)
	return guidanceResult("MCP server best practices", text)
}

func serverCommandFor(serverType string) string {
	switch serverType {
	case "python":
		return "python server.py"
	case "nodejs":
		return "node server.js"
	case "custom":
		return "refer to the project documentation for the startup command"
	default:
		return "identify the server type and startup method first"
	}
}

func testingStrategyFor(scope, experience string) string {
	strategies := map[string]string{
		"basic/beginner":             "focus on connectivity and basic tool testing",
		"basic/intermediate":         "standard verification with error handling checks",
		"basic/expert":               "quick validation with automated reporting",
		"comprehensive/beginner":     "step-by-step guided testing with detailed explanations",
		"comprehensive/intermediate": "full capability testing with performance monitoring",
		"comprehensive/expert":       "advanced testing with custom validation scripts",
	}
	if s, ok := strategies[scope+"/"+experience]; ok {
		return s
	}
	return "standard comprehensive testing approach"
}

func recommendationsFor(serverType, scope string) string {
	recs := []string{
		"Establish a regular testing schedule",
		"Monitor performance metrics",
		"Implement automated health checks",
	}
	switch serverType {
	case "python":
		recs = append(recs, "Ensure the virtual environment is properly activated")
	case "nodejs":
		recs = append(recs, "Verify Node.js version compatibility")
	}
	if scope == "comprehensive" {
		recs = append(recs,
			"Set up continuous integration testing",
			"Implement load testing for production readiness",
		)
	}
	var b strings.Builder
	for _, rec := range recs {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	return strings.TrimRight(b.String(), "\n")
}

func coreCoverageFor(complexity string) string {
	switch complexity {
	case "simple":
		return "tools/list plus one representative tool call"
	case "complex", "enterprise":
		return "every tool, resource, and prompt, including error paths and bad inputs"
	default:
		return "all tools plus a sample of resources and prompts"
	}
}

func focusStrategyFor(area string) string {
	switch area {
	case "performance":
		return "repeat key calls and compare durations against a baseline"
	case "security":
		return "probe tools with hostile inputs and verify they are rejected"
	case "reliability":
		return "run the same probes repeatedly and watch for intermittent failures"
	default:
		return "verify each capability returns correct, well-formed results"
	}
}

func timeBudgetFor(constraint string) string {
	switch constraint {
	case "urgent":
		return "connectivity check plus the most critical tools only"
	case "thorough":
		return "full matrix with repeated runs and documented results"
	default:
		return "one full pass over all capabilities"
	}
}

func errorSymptomsFor(errorType string) string {
	switch errorType {
	case "timeout":
		return "the Inspector reports a timeout before the server responds"
	case "tool_error":
		return "tools/call returns an error or malformed result for specific tools"
	case "resource_error":
		return "resources/read fails or returns unexpected content"
	case "config_error":
		return "the server starts with wrong settings or refuses to start"
	default:
		return "the Inspector cannot establish a session with the server"
	}
}

func possibleCausesFor(errorType string) string {
	switch errorType {
	case "timeout":
		return "slow server startup, long-running handlers, or an undersized timeout"
	case "tool_error":
		return "invalid parameters, missing dependencies, or bugs in the tool handler"
	case "resource_error":
		return "wrong URI, missing file, or insufficient permissions"
	case "config_error":
		return "missing environment variables, bad paths, or stale configuration files"
	default:
		return "wrong startup command, missing dependencies, or the server writing logs to stdout"
	}
}

func responseStrategyFor(urgency string) string {
	switch urgency {
	case "low":
		return "investigate methodically; document as you go"
	case "high":
		return "stabilize first, root-cause later"
	case "critical":
		return "roll back immediately, then diagnose offline"
	default:
		return "diagnose and fix in one pass, verifying each step"
	}
}

func useCasePracticeFor(useCase string) string {
	switch useCase {
	case "ci_cd":
		return "Gate merges on a passing inspect_mcp_server run in the pipeline"
	case "production":
		return "Alert on failed scheduled probes and keep a rollback path ready"
	case "research":
		return "Record every probe's raw output so experiments are reproducible"
	default:
		return "Keep a written checklist of the probes that define a healthy server"
	}
}

func automationPracticeFor(level string) string {
	switch level {
	case "manual":
		return "Start by scripting the single most-repeated inspection command"
	case "high":
		return "Drive batch_inspect_servers from your scheduler and diff results between runs"
	default:
		return "Automate the scheduled health check first, keep exploratory testing manual"
	}
}
