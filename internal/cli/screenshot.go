package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/virtray/virtray/internal/config"
)

var screenshotOut string

var screenshotCmd = &cobra.Command{
	Use:   "screenshot <vm>",
	Short: "Capture a console image of a VM",
	Args:  cobra.ExactArgs(1),
	RunE:  runScreenshot,
}

func init() {
	screenshotCmd.Flags().StringVarP(&screenshotOut, "out", "o", "", "output directory (default: screenshots/ next to the executable)")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	vm := args[0]

	client, _, _, err := openHost("")
	if err != nil {
		return err
	}
	defer client.Close()

	data, ext, err := client.Screenshot(vm)
	if err != nil {
		return fmt.Errorf("screenshot of '%s' failed (has the VM been started at least once?): %w", vm, err)
	}

	dir := screenshotOut
	if dir == "" {
		dir = config.ScreenshotsDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.%s", vm, time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}

	fmt.Println(styleSuccess.Render("Screenshot saved to " + path))
	return nil
}
