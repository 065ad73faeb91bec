// Package view derives the operator-facing text renderings from a snapshot.
package view

import (
	"fmt"
	"strings"

	"github.com/virtray/virtray/internal/snapshot"
)

// Summary returns the one-line state summary: the error message verbatim
// for a failed snapshot, else "<running> running / <other> other".
func Summary(snap *snapshot.Snapshot) string {
	if snap.Failed() {
		return snap.Err
	}
	running := snap.Running()
	return fmt.Sprintf("%d running / %d other", running, len(snap.VMs)-running)
}

// Detail returns the per-VM listing, one line per VM in snapshot order,
// capped at maxLines. When truncated, the final line reports how many
// lines were dropped.
func Detail(snap *snapshot.Snapshot, maxLines int) string {
	if snap.Failed() {
		return snap.Err
	}
	if len(snap.VMs) == 0 {
		return fmt.Sprintf("No VMs found matching '%s'", snap.Filter)
	}

	lines := make([]string, 0, len(snap.VMs))
	for _, vm := range snap.VMs {
		lines = append(lines, vmLine(vm))
	}

	if maxLines > 0 && len(lines) > maxLines {
		dropped := len(lines) - (maxLines - 1)
		lines = append(lines[:maxLines-1], fmt.Sprintf("... and %d more", dropped))
	}

	return strings.Join(lines, "\n")
}

// vmLine renders one VM as "<name>: <state> | CPU:<n> RAM:<n>MB | <ips>".
func vmLine(vm snapshot.VMRecord) string {
	cpu := "N/A"
	if vm.CPUs > 0 {
		cpu = fmt.Sprintf("%d", vm.CPUs)
	}
	mem := "N/A"
	if vm.MemoryMB > 0 {
		mem = fmt.Sprintf("%d", vm.MemoryMB)
	}
	ips := "no IP"
	if len(vm.IPs) > 0 {
		ips = strings.Join(vm.IPs, ",")
	}
	return fmt.Sprintf("%s: %s | CPU:%s RAM:%sMB | %s", vm.Name, vm.State, cpu, mem, ips)
}
