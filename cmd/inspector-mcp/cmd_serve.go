package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avandras/inspector-mcp/internal/config"
	"github.com/avandras/inspector-mcp/internal/logging"
	"github.com/avandras/inspector-mcp/internal/mcp"
)

var (
	serveConfigPath string
	serveMode       string
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts the inspector-mcp server on stdin/stdout. MCP clients such as
Claude Desktop or Cursor connect to it via their MCP server configuration.

Logs go to stderr (or a file in debug mode); stdout carries only the MCP
protocol stream.`,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
}

// addServeFlags registers the serve flags on cmd. The root command takes the
// same flags because running the binary bare also serves.
func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&serveConfigPath, "config", "", "path to a JSON or YAML configuration file")
	cmd.Flags().StringVar(&serveMode, "mode", "", "capability mode: 'readonly' or 'full' (overrides the config file)")
	cmd.Flags().BoolVar(&serveDebug, "debug", false, "enable debug logging to a file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := logging.NewAppLogger(serveDebug)

	cfg, err := config.LoadConfig(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	switch serveMode {
	case "readonly":
		cfg.Mode = config.ModeReadOnly
	case "full":
		cfg.Mode = config.ModeFull
	case "":
	default:
		return fmt.Errorf("invalid mode %q: use 'readonly' or 'full'", serveMode)
	}

	server, err := mcp.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		os.Exit(0)
	}()

	logger.Info("inspector-mcp server starting", "mode", string(cfg.Mode))
	if err := server.ServeStdio(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
