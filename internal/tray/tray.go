package tray

import (
	"strings"
	"sync"

	"github.com/getlantern/systray"

	"github.com/virtray/virtray/internal/dispatch"
	"github.com/virtray/virtray/internal/snapshot"
	"github.com/virtray/virtray/internal/view"
)

const (
	maxVMSlots     = 16
	maxDetailLines = 15
)

var (
	state   AppState
	onStart func()
	onExit  func()

	summaryItem   *systray.MenuItem
	detailsParent *systray.MenuItem
	detailItems   [maxDetailLines]*systray.MenuItem

	// Pre-allocated per-VM menu slots
	vmSlots         [maxVMSlots]*systray.MenuItem
	vmActionItems   [maxVMSlots][NumVMActions]*systray.MenuItem
	overflowItem    *systray.MenuItem
	placeholderItem *systray.MenuItem

	refreshItem   *systray.MenuItem
	managerItem   *systray.MenuItem
	installItem   *systray.MenuItem
	uninstallItem *systray.MenuItem
	quitItem      *systray.MenuItem

	// Maps slot index → VM name for action clicks
	slotMu  sync.RWMutex
	slotVMs [maxVMSlots]string
)

// Run starts the system tray. This blocks the calling goroutine (must be
// main on macOS). onStartFn is called when the tray is ready (start the
// poll loop there); onExitFn is called when the tray exits.
func Run(s AppState, onStartFn, onExitFn func()) {
	state = s
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTitle("virtray")
	systray.SetTooltip("virtray — polling...")

	// Header
	header := systray.AddMenuItem("Virtual Machines", "")
	header.Disable()

	summaryItem = systray.AddMenuItem("polling...", "")
	summaryItem.Disable()

	detailsParent = systray.AddMenuItem("Details", "")
	for i := 0; i < maxDetailLines; i++ {
		detailItems[i] = detailsParent.AddSubMenuItem("", "")
		detailItems[i].Disable()
		detailItems[i].Hide()
	}

	systray.AddSeparator()

	// Pre-allocate VM slots (hidden by default)
	for i := 0; i < maxVMSlots; i++ {
		vmSlots[i] = systray.AddMenuItem("", "")
		for j, action := range VMActions {
			if j == SeparatorIndex {
				sep := vmSlots[i].AddSubMenuItem("──────────", "")
				sep.Disable()
			}
			vmActionItems[i][j] = vmSlots[i].AddSubMenuItem(action.String(), "")
		}
		vmSlots[i].Hide()
	}

	// Shown when more VMs exist than slots
	overflowItem = systray.AddMenuItem("", "")
	overflowItem.Disable()
	overflowItem.Hide()

	// Error / "No VMs found" placeholder
	placeholderItem = systray.AddMenuItem("No VMs found", "")
	placeholderItem.Disable()

	systray.AddSeparator()

	refreshItem = systray.AddMenuItem("Refresh", "Poll the host now")
	managerItem = systray.AddMenuItem("Open Manager", "Launch virt-manager")
	dashHint := systray.AddMenuItem("Dashboard: run 'virtray dashboard'", "Interactive dashboard lives in the CLI")
	dashHint.Disable()
	installItem = systray.AddMenuItem("Install Autostart", "Start virtray with your session")
	uninstallItem = systray.AddMenuItem("Uninstall Autostart", "Remove the autostart entry")
	quitItem = systray.AddMenuItem("Quit", "Exit virtray")

	if onStart != nil {
		onStart()
	}

	go handleClicks()
	for i := 0; i < maxVMSlots; i++ {
		go handleSlotClicks(i)
	}
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-refreshItem.ClickedCh:
			state.RefreshNow()
		case <-managerItem.ClickedCh:
			_ = state.OpenManager()
		case <-installItem.ClickedCh:
			_ = state.InstallAutostart()
		case <-uninstallItem.ClickedCh:
			_ = state.UninstallAutostart()
		case <-quitItem.ClickedCh:
			state.RequestShutdown()
		}
	}
}

// handleSlotClicks dispatches action clicks for one pre-allocated VM slot.
// The slot index is bound here, at construction time; the VM name is read
// from the slot table on every click.
func handleSlotClicks(slot int) {
	items := vmActionItems[slot]
	for {
		var action dispatch.Action
		select {
		case <-items[0].ClickedCh:
			action = VMActions[0]
		case <-items[1].ClickedCh:
			action = VMActions[1]
		case <-items[2].ClickedCh:
			action = VMActions[2]
		case <-items[3].ClickedCh:
			action = VMActions[3]
		case <-items[4].ClickedCh:
			action = VMActions[4]
		case <-items[5].ClickedCh:
			action = VMActions[5]
		case <-items[6].ClickedCh:
			action = VMActions[6]
		case <-items[7].ClickedCh:
			action = VMActions[7]
		}

		slotMu.RLock()
		vm := slotVMs[slot]
		slotMu.RUnlock()
		if vm == "" {
			continue
		}
		state.RequestAction(vm, action)
	}
}

// Apply refreshes the whole tray from a new snapshot: tooltip, summary,
// detail lines, and the per-VM menu, replaced wholesale.
func Apply(snap *snapshot.Snapshot) {
	summary := view.Summary(snap)
	systray.SetTooltip("virtray — " + summary)
	summaryItem.SetTitle(summary)

	applyDetail(snap)
	applyMenu(BuildMenu(snap))
}

func applyDetail(snap *snapshot.Snapshot) {
	lines := strings.Split(view.Detail(snap, maxDetailLines), "\n")
	for i := 0; i < maxDetailLines; i++ {
		if i < len(lines) {
			detailItems[i].SetTitle(lines[i])
			detailItems[i].Show()
		} else {
			detailItems[i].Hide()
		}
	}
}

func applyMenu(tree *MenuTree) {
	// Update slot → VM mapping first so clicks during the update act on
	// the new snapshot.
	slotMu.Lock()
	for i := 0; i < maxVMSlots; i++ {
		slotVMs[i] = ""
	}
	for i, entry := range tree.Entries {
		if i >= maxVMSlots {
			break
		}
		slotVMs[i] = entry.VM
	}
	slotMu.Unlock()

	for i := 0; i < maxVMSlots; i++ {
		vmSlots[i].Hide()
	}
	overflowItem.Hide()

	// A single disabled entry is the error / empty placeholder.
	if len(tree.Entries) == 1 && tree.Entries[0].Disabled {
		placeholderItem.SetTitle(tree.Entries[0].Title)
		placeholderItem.Show()
		return
	}

	placeholderItem.Hide()
	for i, entry := range tree.Entries {
		if i >= maxVMSlots {
			break
		}
		vmSlots[i].SetTitle(entry.Title)
		vmSlots[i].Show()
	}

	if label := OverflowLabel(len(tree.Entries), maxVMSlots); label != "" {
		overflowItem.SetTitle(label)
		overflowItem.Show()
	}
}
