package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/virtray/virtray/internal/config"
	"github.com/virtray/virtray/internal/snapshot"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"configure"},
	Short:   "Configure virtray settings",
	Long: `Configure virtray settings interactively.

This allows you to modify:
  - Poll interval (seconds)
  - VM name filter (glob)
  - Libvirt socket path

Press Enter to keep the current value for any setting. The tray daemon
picks up changes on its next start.`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	// Poll interval
	fmt.Printf("Poll interval in seconds [%d]: ", settings.PollIntervalSeconds)
	interval, _ := reader.ReadString('\n')
	interval = strings.TrimSpace(interval)
	if interval != "" {
		n, err := strconv.Atoi(interval)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid poll interval: %s (expected a positive number)", interval)
		}
		if n != settings.PollIntervalSeconds {
			settings.PollIntervalSeconds = n
			changed = true
		}
	}

	// VM filter
	fmt.Printf("VM name filter [%s]: ", settings.VMFilter)
	filter, _ := reader.ReadString('\n')
	filter = strings.TrimSpace(filter)
	if filter != "" {
		if _, err := snapshot.NewBuilder(filter); err != nil {
			return err
		}
		if filter != settings.VMFilter {
			settings.VMFilter = filter
			changed = true
		}
	}

	// Libvirt socket
	current := settings.LibvirtSocket
	if current == "" {
		current = "default"
	}
	fmt.Printf("Libvirt socket path [%s]: ", current)
	socket, _ := reader.ReadString('\n')
	socket = strings.TrimSpace(socket)
	if socket != "" && socket != settings.LibvirtSocket {
		if socket == "default" {
			socket = ""
		}
		settings.LibvirtSocket = socket
		changed = true
	}

	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("\nSettings updated.")
	return nil
}
