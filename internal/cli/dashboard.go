package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/virtray/virtray/internal/config"
	"github.com/virtray/virtray/internal/tui"
)

var dashboardFilter string

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive VM dashboard",
	RunE:    runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardFilter, "filter", "f", "", "VM name glob (overrides settings)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	client, builder, settings, err := openHost(dashboardFilter)
	if err != nil {
		return err
	}
	defer client.Close()

	poll := time.Duration(settings.PollIntervalSeconds) * time.Second
	return tui.Run(client, builder, config.ScreenshotsDir(), poll)
}
