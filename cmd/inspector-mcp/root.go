package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avandras/inspector-mcp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "inspector-mcp",
	Short: "MCP server wrapping the official MCP Inspector CLI",
	Long: `inspector-mcp is a Model Context Protocol (MCP) server that exposes the
official MCP Inspector CLI (npx @modelcontextprotocol/inspector --cli) as
MCP tools, so AI agents can inspect, test, and debug other MCP servers.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	// MCP clients launch the binary with no arguments, so running the
	// root command serves stdio directly.
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.Version
	addServeFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
