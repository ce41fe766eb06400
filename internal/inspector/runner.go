package inspector

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avandras/inspector-mcp/internal/config"
	"github.com/avandras/inspector-mcp/internal/errors"
	"github.com/avandras/inspector-mcp/internal/logging"
	"github.com/avandras/inspector-mcp/pkg/types"
)

// Runner executes Inspector CLI requests. The MCP handlers depend on this
// interface so tests can substitute a stub.
type Runner interface {
	Run(ctx context.Context, req Request) *types.RunResult
}

// CLIRunner shells out to the configured Inspector command.
type CLIRunner struct {
	cfg    *config.Config
	logger *logging.AppLogger
}

// NewCLIRunner creates a runner backed by the real Inspector CLI.
func NewCLIRunner(cfg *config.Config, logger *logging.AppLogger) *CLIRunner {
	return &CLIRunner{cfg: cfg, logger: logger}
}

// Run executes one Inspector invocation and returns its result. All failure
// modes are reported in the result rather than as an error: the caller
// relays the mapping to the MCP client either way.
func (r *CLIRunner) Run(ctx context.Context, req Request) *types.RunResult {
	runID := uuid.New().String()

	if err := req.Validate(); err != nil {
		return &types.RunResult{
			RunID:   runID,
			Success: false,
			Error:   err.Error(),
		}
	}

	timeout := r.cfg.ClampTimeout(req.Timeout)
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	//nolint:gosec // G204: running the Inspector against caller-supplied servers is this tool's purpose
	cmd := exec.CommandContext(runCtx, r.cfg.InspectorCommand, req.Argv(r.cfg)...)
	cmd.Env = os.Environ()
	setProcAttr(cmd)

	// npx forks the actual inspector process, so cancellation must take
	// down the whole group, not just the direct child.
	cmd.Cancel = func() error {
		return killProcessGroup(cmd)
	}
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := &types.RunResult{
		RunID:      runID,
		DurationMs: duration.Milliseconds(),
	}

	switch {
	case runCtx.Err() == context.DeadlineExceeded:
		result.Success = false
		result.Error = errors.CommandTimeout(int(timeout.Seconds())).Error()

	case err == nil:
		parseOutput(result, stdout.String(), stderr.String())

	default:
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.Success = false
			result.Error = errors.CommandFailed(exitErr.ExitCode()).Error()
			result.ExitCode = exitErr.ExitCode()
			result.Stdout = stdout.String()
			result.Stderr = stderr.String()
		} else {
			result.Success = false
			result.Error = errors.InspectorNotFound(r.cfg.InspectorCommand, err).Error()
		}
	}

	r.logger.Debug("inspector run finished",
		"runId", runID,
		"method", string(req.Method),
		"success", result.Success,
		"duration", duration,
	)

	return result
}

// parseOutput fills in a successful result. JSON object output passes
// through as the payload; anything else is wrapped with the raw text.
func parseOutput(result *types.RunResult, stdout, stderr string) {
	result.Success = true

	trimmed := strings.TrimSpace(stdout)
	var data map[string]any
	if err := json.Unmarshal([]byte(trimmed), &data); err == nil && data != nil {
		result.Data = data
		return
	}

	result.RawOutput = stdout
	result.Stderr = stderr
}
