package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avandras/inspector-mcp/internal/version"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, optionally checking for updates",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Printf("inspector-mcp version %s\n", version.Version)

	if !versionCheck {
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	info := version.Check(ctx)
	switch {
	case info.Error != "":
		fmt.Printf("could not check for updates: %s\n", info.Error)
	case info.UpdateAvailable:
		fmt.Println(info.UpdateMessage())
	default:
		fmt.Println("you are on the latest version")
	}
	return nil
}
