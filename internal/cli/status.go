package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/virtray/virtray/internal/snapshot"
	"github.com/virtray/virtray/internal/view"
)

var statusFilter string

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the state of all VMs once and exit",
	RunE:    runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusFilter, "filter", "f", "", "VM name glob (overrides settings)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, builder, _, err := openHost(statusFilter)
	if err != nil {
		return err
	}
	defer client.Close()

	raw, fetchErr := client.FetchVMs()
	snap := builder.Build(raw, fetchErr)

	if snap.Failed() {
		fmt.Println(styleError.Render("Error: " + snap.Err))
		return nil
	}

	fmt.Println(styleBrand.Render("virtray") + " " + styleLabel.Render(view.Summary(snap)))
	if len(snap.VMs) == 0 {
		fmt.Println(styleHint.Render(fmt.Sprintf("No VMs found matching '%s'", snap.Filter)))
		return nil
	}

	fmt.Println()
	for _, vm := range snap.VMs {
		fmt.Println("  " + statusLine(vm))
	}
	return nil
}

func statusLine(vm snapshot.VMRecord) string {
	cpu := "N/A"
	if vm.CPUs > 0 {
		cpu = fmt.Sprintf("%d", vm.CPUs)
	}
	ram := "N/A"
	if vm.MemoryMB > 0 {
		ram = fmt.Sprintf("%dMB", vm.MemoryMB)
	}
	ip := "no IP"
	if len(vm.IPs) > 0 {
		ip = strings.Join(vm.IPs, ",")
	}

	return fmt.Sprintf("%-20s %s  CPU:%s RAM:%s  %s",
		vm.Name,
		stateBadge(vm.State).Render(fmt.Sprintf("%-8s", vm.State)),
		cpu, ram,
		styleLabel.Render(ip))
}

func stateBadge(s snapshot.State) lipgloss.Style {
	switch s {
	case snapshot.StateRunning:
		return badgeRunning
	case snapshot.StatePaused:
		return badgePaused
	case snapshot.StateSaved:
		return badgeSaved
	default:
		return badgeOff
	}
}
