// Package cli implements the virtray CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "virtray",
	Short: "Monitor and control local virtual machines",
	Long: `Virtray monitors local libvirt virtual machines and exposes quick
control actions. The tray daemon (virtrayd) runs in the background; this
CLI offers one-shot status queries, an interactive dashboard, and
configuration.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(autostartCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(screenshotCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
