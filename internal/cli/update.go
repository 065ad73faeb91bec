package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/virtray/virtray/internal/updater"
)

var updateCheckOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update virtray and virtrayd to the latest release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "only check, do not install")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fmt.Println(styleHint.Render("Checking for updates..."))

	result, err := updater.CheckForUpdate()
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if !result.Available {
		fmt.Println(styleSuccess.Render(fmt.Sprintf("virtray %s is up to date.", result.CurrentVersion)))
		return nil
	}

	fmt.Printf("Update available: %s -> %s\n", result.CurrentVersion, styleVersion.Render(result.LatestVersion))
	if updateCheckOnly {
		fmt.Println(styleHint.Render("Release: " + result.ReleaseURL))
		return nil
	}

	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}
	binDir := filepath.Dir(self)

	// The CLI replaces itself last so a failed daemon update leaves a
	// working virtray binary.
	targets := []struct {
		asset string
		path  string
	}{
		{updater.DaemonAssetName(), filepath.Join(binDir, "virtrayd")},
		{updater.CLIAssetName(), self},
	}

	for _, t := range targets {
		asset := updater.FindAsset(result.Release, t.asset)
		if asset == nil {
			fmt.Println(styleError.Render(fmt.Sprintf("No release asset %q, skipping", t.asset)))
			continue
		}

		fmt.Printf("Downloading %s...\n", t.asset)
		tmp, err := updater.DownloadAsset(asset)
		if err != nil {
			return err
		}
		if err := updater.ReplaceBinary(t.path, tmp); err != nil {
			os.Remove(tmp)
			return err
		}
		fmt.Println(styleSuccess.Render("Updated " + t.path))
	}

	fmt.Println(styleHint.Render("Restart virtrayd to pick up the new version."))
	return nil
}
