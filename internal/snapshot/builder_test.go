package snapshot

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/virtray/virtray/internal/host"
)

func TestBuild_ErrorSnapshot(t *testing.T) {
	b, err := NewBuilder("*")
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	snap := b.Build(nil, fmt.Errorf("libvirt unreachable"))
	if !snap.Failed() {
		t.Fatal("expected error snapshot")
	}
	if snap.Err != "libvirt unreachable" {
		t.Errorf("Err = %q, want %q", snap.Err, "libvirt unreachable")
	}
	if len(snap.VMs) != 0 {
		t.Errorf("error snapshot must carry no records, got %d", len(snap.VMs))
	}
}

func TestBuild_Filtering(t *testing.T) {
	b, err := NewBuilder("web*")
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	raw := []host.RawVM{
		{Name: "web-1", StateCode: host.StateRunning},
		{Name: "web-2", StateCode: host.StateShutoff},
		{Name: "db-1", StateCode: host.StateRunning},
	}

	snap := b.Build(raw, nil)
	if snap.Failed() {
		t.Fatalf("unexpected error snapshot: %s", snap.Err)
	}

	var names []string
	for _, vm := range snap.VMs {
		names = append(names, vm.Name)
	}
	if !reflect.DeepEqual(names, []string{"web-1", "web-2"}) {
		t.Errorf("names = %v, want [web-1 web-2]", names)
	}
}

func TestBuild_InvalidPattern(t *testing.T) {
	if _, err := NewBuilder("[unterminated"); err == nil {
		t.Fatal("expected error for invalid glob")
	}
}

func TestMapState(t *testing.T) {
	tests := []struct {
		name           string
		code           int32
		hasManagedSave bool
		want           State
	}{
		{"running", host.StateRunning, false, StateRunning},
		{"blocked counts as running", host.StateBlocked, false, StateRunning},
		{"paused", host.StatePaused, false, StatePaused},
		{"shutting down", host.StateShutdown, false, StateStopping},
		{"shutoff", host.StateShutoff, false, StateOff},
		{"shutoff with save image", host.StateShutoff, true, StateSaved},
		{"crashed", host.StateCrashed, false, StateOther},
		{"no state", host.StateNoState, false, StateOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapState(tt.code, tt.hasManagedSave); got != tt.want {
				t.Errorf("mapState(%d, %v) = %v, want %v", tt.code, tt.hasManagedSave, got, tt.want)
			}
		})
	}
}

func TestNormalizeIPs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"dedup and drop unspecified", []string{"0.0.0.0", "10.0.0.5", "10.0.0.5"}, []string{"10.0.0.5"}},
		{"order preserved", []string{"10.0.0.2", "10.0.0.1", "10.0.0.2"}, []string{"10.0.0.2", "10.0.0.1"}},
		{"empty", nil, nil},
		{"only unspecified", []string{"0.0.0.0"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeIPs(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeIPs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSnapshot_RunningCount(t *testing.T) {
	snap := &Snapshot{VMs: []VMRecord{
		{Name: "a", State: StateRunning},
		{Name: "b", State: StateOff},
		{Name: "c", State: StateRunning},
		{Name: "d", State: StatePaused},
	}}

	if got := snap.Running(); got != 2 {
		t.Errorf("Running() = %d, want 2", got)
	}
	// running + other == total
	if snap.Running()+(len(snap.VMs)-snap.Running()) != len(snap.VMs) {
		t.Error("running + other must equal total")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateOff, "Off"},
		{StateRunning, "Running"},
		{StatePaused, "Paused"},
		{StateSaved, "Saved"},
		{StateStarting, "Starting"},
		{StateStopping, "Stopping"},
		{StateOther, "Other"},
		{State(99), "Other"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
