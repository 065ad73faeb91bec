package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/virtray/virtray/internal/autostart"
)

// AutostartEntry is the XDG autostart entry name shared with the daemon.
const AutostartEntry = "virtrayd"

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage the session autostart entry for the tray daemon",
}

var autostartInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Start the tray daemon with your session",
	RunE: func(cmd *cobra.Command, args []string) error {
		exec, err := daemonPath()
		if err != nil {
			return err
		}
		if err := autostart.Install(AutostartEntry, exec); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Autostart entry installed."))
		return nil
	},
}

var autostartUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the autostart entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := autostart.Uninstall(AutostartEntry); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Autostart entry removed."))
		return nil
	},
}

var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the autostart entry is installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		installed, err := autostart.Installed(AutostartEntry)
		if err != nil {
			return err
		}
		if installed {
			fmt.Println(styleSuccess.Render("Autostart entry is installed."))
		} else {
			fmt.Println(styleHint.Render("Autostart entry is not installed."))
		}
		return nil
	},
}

func init() {
	autostartCmd.AddCommand(autostartInstallCmd)
	autostartCmd.AddCommand(autostartUninstallCmd)
	autostartCmd.AddCommand(autostartStatusCmd)
}

// daemonPath resolves the virtrayd binary, expected next to this
// executable.
func daemonPath() (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(self), "virtrayd"), nil
}
