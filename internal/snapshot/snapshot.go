// Package snapshot turns raw host samples into the immutable view the UI
// layers render from.
package snapshot

// State is a VM lifecycle state, normalized from host-reported codes.
type State int

const (
	StateOther State = iota
	StateOff
	StateRunning
	StatePaused
	StateSaved
	StateStarting
	StateStopping
)

// String returns the operator-facing name for the state.
func (s State) String() string {
	switch s {
	case StateOff:
		return "Off"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateSaved:
		return "Saved"
	case StateStarting:
		return "Starting"
	case StateStopping:
		return "Stopping"
	default:
		return "Other"
	}
}

// VMRecord is one VM's state within a snapshot. Records are created fresh
// on every build and never mutated afterwards.
type VMRecord struct {
	Name     string
	State    State
	MemoryMB uint64   // 0 = unknown
	CPUs     uint16   // 0 = unknown
	IPs      []string // deduplicated IPv4 set, excluding 0.0.0.0
}

// Snapshot is the result of one poll cycle: either an error message or an
// ordered collection of VM records. Exactly one snapshot is current at any
// time; consumers always receive it wholesale.
type Snapshot struct {
	Err    string // non-empty means the query failed
	VMs    []VMRecord
	Filter string // the name glob this snapshot was built with
}

// Failed reports whether this is an error snapshot.
func (s *Snapshot) Failed() bool {
	return s.Err != ""
}

// Running returns how many VMs in the snapshot are in the Running state.
func (s *Snapshot) Running() int {
	n := 0
	for _, vm := range s.VMs {
		if vm.State == StateRunning {
			n++
		}
	}
	return n
}
