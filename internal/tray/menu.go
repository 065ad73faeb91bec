package tray

import (
	"fmt"

	"github.com/virtray/virtray/internal/dispatch"
	"github.com/virtray/virtray/internal/snapshot"
)

// NumVMActions is the number of per-VM actions; VMActions always has
// exactly this many entries.
const NumVMActions = 8

// VMActions lists the eight per-VM actions in menu order. The separator
// sits before Connect/Screenshot (see SeparatorIndex).
var VMActions = []dispatch.Action{
	dispatch.ActionStart,
	dispatch.ActionStop,
	dispatch.ActionRestart,
	dispatch.ActionSave,
	dispatch.ActionPause,
	dispatch.ActionResume,
	dispatch.ActionConnect,
	dispatch.ActionScreenshot,
}

// SeparatorIndex is the position in VMActions before which the separator
// is rendered.
const SeparatorIndex = 6

// MenuEntry is one top-level entry in the per-VM menu: either a VM submenu
// or a disabled placeholder.
type MenuEntry struct {
	Title    string
	Disabled bool
	VM       string // empty for placeholder entries
}

// MenuTree is the per-VM portion of the tray menu, derived purely from a
// snapshot and replaced wholesale on every refresh.
type MenuTree struct {
	Entries []MenuEntry
}

// BuildMenu derives the menu tree for a snapshot. An error snapshot yields
// a single disabled error entry, an empty one a disabled placeholder, and
// otherwise one submenu entry per VM in snapshot order.
func BuildMenu(snap *snapshot.Snapshot) *MenuTree {
	if snap.Failed() {
		return &MenuTree{Entries: []MenuEntry{
			{Title: "Error: " + snap.Err, Disabled: true},
		}}
	}
	if len(snap.VMs) == 0 {
		return &MenuTree{Entries: []MenuEntry{
			{Title: "No VMs found", Disabled: true},
		}}
	}

	entries := make([]MenuEntry, 0, len(snap.VMs))
	for _, vm := range snap.VMs {
		entries = append(entries, MenuEntry{
			Title: fmt.Sprintf("%s (%s)", vm.Name, vm.State),
			VM:    vm.Name,
		})
	}
	return &MenuTree{Entries: entries}
}

// OverflowLabel returns the "... and N more" title shown when there are
// more entries than menu slots, or "" when everything fits.
func OverflowLabel(total, capacity int) string {
	if total <= capacity {
		return ""
	}
	return fmt.Sprintf("... and %d more", total-capacity)
}
