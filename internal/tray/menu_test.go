package tray

import (
	"testing"

	"github.com/virtray/virtray/internal/dispatch"
	"github.com/virtray/virtray/internal/snapshot"
)

func TestBuildMenu_Error(t *testing.T) {
	snap := &snapshot.Snapshot{Err: "host unreachable"}

	tree := BuildMenu(snap)
	if len(tree.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(tree.Entries))
	}
	entry := tree.Entries[0]
	if entry.Title != "Error: host unreachable" {
		t.Errorf("Title = %q, want error entry", entry.Title)
	}
	if !entry.Disabled {
		t.Error("error entry must be disabled")
	}
	if entry.VM != "" {
		t.Error("error entry carries no VM")
	}
}

func TestBuildMenu_Empty(t *testing.T) {
	snap := &snapshot.Snapshot{}

	tree := BuildMenu(snap)
	if len(tree.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(tree.Entries))
	}
	if tree.Entries[0].Title != "No VMs found" || !tree.Entries[0].Disabled {
		t.Errorf("entry = %+v, want disabled placeholder", tree.Entries[0])
	}
}

func TestBuildMenu_PerVM(t *testing.T) {
	snap := &snapshot.Snapshot{VMs: []snapshot.VMRecord{
		{Name: "web-1", State: snapshot.StateRunning},
		{Name: "db-1", State: snapshot.StateOff},
	}}

	tree := BuildMenu(snap)
	if len(tree.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(tree.Entries))
	}
	if tree.Entries[0].Title != "web-1 (Running)" || tree.Entries[0].VM != "web-1" {
		t.Errorf("entry 0 = %+v", tree.Entries[0])
	}
	if tree.Entries[1].Title != "db-1 (Off)" || tree.Entries[1].VM != "db-1" {
		t.Errorf("entry 1 = %+v", tree.Entries[1])
	}
	for _, e := range tree.Entries {
		if e.Disabled {
			t.Errorf("VM entry %q must be enabled", e.Title)
		}
	}
}

func TestVMActions_CoverAllEight(t *testing.T) {
	if len(VMActions) != NumVMActions {
		t.Fatalf("VMActions has %d actions, want %d", len(VMActions), NumVMActions)
	}

	seen := map[dispatch.Action]bool{}
	for _, a := range VMActions {
		seen[a] = true
	}
	for _, a := range []dispatch.Action{
		dispatch.ActionStart, dispatch.ActionStop, dispatch.ActionRestart,
		dispatch.ActionSave, dispatch.ActionPause, dispatch.ActionResume,
		dispatch.ActionConnect, dispatch.ActionScreenshot,
	} {
		if !seen[a] {
			t.Errorf("action %s missing from menu", a)
		}
	}

	// Separator sits before Connect/Screenshot.
	if VMActions[SeparatorIndex] != dispatch.ActionConnect {
		t.Errorf("separator should precede Connect, got %s", VMActions[SeparatorIndex])
	}
}

func TestOverflowLabel(t *testing.T) {
	tests := []struct {
		total, capacity int
		want            string
	}{
		{total: 3, capacity: 16, want: ""},
		{total: 16, capacity: 16, want: ""},
		{total: 17, capacity: 16, want: "... and 1 more"},
		{total: 40, capacity: 16, want: "... and 24 more"},
	}
	for _, tt := range tests {
		if got := OverflowLabel(tt.total, tt.capacity); got != tt.want {
			t.Errorf("OverflowLabel(%d, %d) = %q, want %q", tt.total, tt.capacity, got, tt.want)
		}
	}
}
