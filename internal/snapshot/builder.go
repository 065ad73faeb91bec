package snapshot

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/virtray/virtray/internal/host"
)

// Builder constructs snapshots from host samples, filtering by a name glob
// fixed at startup.
type Builder struct {
	pattern string
	matcher glob.Glob
}

// NewBuilder compiles the name glob and returns a builder. Pattern "*"
// matches everything.
func NewBuilder(pattern string) (*Builder, error) {
	if pattern == "" {
		pattern = "*"
	}
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid VM filter %q: %w", pattern, err)
	}
	return &Builder{pattern: pattern, matcher: matcher}, nil
}

// Pattern returns the glob this builder filters by.
func (b *Builder) Pattern() string {
	return b.pattern
}

// Build produces a snapshot from a host sample. A fetch error yields an
// error snapshot; otherwise every matching VM becomes one record, in host
// order. Build never fails: missing per-field data is carried through as
// unknown values.
func (b *Builder) Build(raw []host.RawVM, fetchErr error) *Snapshot {
	if fetchErr != nil {
		return &Snapshot{Err: fetchErr.Error(), Filter: b.pattern}
	}

	records := make([]VMRecord, 0, len(raw))
	for _, vm := range raw {
		if !b.matcher.Match(vm.Name) {
			continue
		}
		records = append(records, VMRecord{
			Name:     vm.Name,
			State:    mapState(vm.StateCode, vm.HasManagedSave),
			MemoryMB: vm.MemoryMB,
			CPUs:     vm.CPUs,
			IPs:      normalizeIPs(vm.IPs),
		})
	}

	return &Snapshot{VMs: records, Filter: b.pattern}
}

// mapState normalizes a libvirt state code. A shutoff domain with a
// managed save image is Saved, not Off.
func mapState(code int32, hasManagedSave bool) State {
	switch code {
	case host.StateRunning, host.StateBlocked:
		return StateRunning
	case host.StatePaused:
		return StatePaused
	case host.StateShutdown:
		return StateStopping
	case host.StateShutoff:
		if hasManagedSave {
			return StateSaved
		}
		return StateOff
	default:
		return StateOther
	}
}

// normalizeIPs deduplicates the adapter-reported addresses and drops the
// unspecified address. Order of first appearance is preserved.
func normalizeIPs(ips []string) []string {
	if len(ips) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ips))
	out := make([]string, 0, len(ips))
	for _, ip := range ips {
		if ip == "" || ip == "0.0.0.0" || seen[ip] {
			continue
		}
		seen[ip] = true
		out = append(out, ip)
	}
	return out
}
