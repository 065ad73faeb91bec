package host

import (
	"fmt"

	"github.com/digitalocean/go-libvirt"

	"github.com/virtray/virtray/internal/logger"
)

// Lifecycle state codes as reported by libvirt (VIR_DOMAIN_* constants).
const (
	StateNoState     = 0
	StateRunning     = 1
	StateBlocked     = 2
	StatePaused      = 3
	StateShutdown    = 4
	StateShutoff     = 5
	StateCrashed     = 6
	StatePMSuspended = 7
)

// RawVM is one VM's state as sampled from the host, before filtering and
// normalization. Per-field lookups that fail leave zero values; only a
// failure of the enumeration itself is an error.
type RawVM struct {
	Name           string
	StateCode      int32
	HasManagedSave bool
	MemoryMB       uint64 // 0 = unknown
	CPUs           uint16 // 0 = unknown
	IPs            []string
}

// FetchVMs samples all domains on the host. Any failure of the listing
// call is returned as an error; per-domain detail failures degrade to
// unknown fields on the affected record.
func (c *Client) FetchVMs() ([]RawVM, error) {
	return fetchWithDeps(c.libvirt)
}

// fetchWithDeps samples VMs with injected dependencies.
// This allows for testing by accepting interfaces instead of concrete types.
func fetchWithDeps(lv queryAPI) ([]RawVM, error) {
	domains, _, err := lv.ConnectListAllDomains(1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	vms := make([]RawVM, 0, len(domains))
	for _, domain := range domains {
		vms = append(vms, sampleDomain(lv, domain))
	}

	return vms, nil
}

// sampleDomain collects state, memory, vCPU, and address details for a
// single domain. It never fails; unavailable details are left unknown.
func sampleDomain(lv queryAPI, domain libvirt.Domain) RawVM {
	vm := RawVM{Name: domain.Name, StateCode: StateNoState}

	state, _, err := lv.DomainGetState(domain, 0)
	if err != nil {
		logger.WithError(err).Warnf("failed to get state for domain %s", domain.Name)
	} else {
		vm.StateCode = state
	}

	_, maxMem, memory, nrVirtCPU, _, err := lv.DomainGetInfo(domain)
	if err != nil {
		logger.WithError(err).Warnf("failed to get info for domain %s", domain.Name)
	} else {
		// Prefer the runtime-assigned value, fall back to the configured one.
		memKiB := memory
		if memKiB == 0 {
			memKiB = maxMem
		}
		vm.MemoryMB = memKiB / 1024
		vm.CPUs = nrVirtCPU
	}

	if vm.StateCode == StateShutoff {
		if has, err := lv.DomainHasManagedSaveImage(domain, 0); err == nil && has != 0 {
			vm.HasManagedSave = true
		}
	}

	// Addresses are only reported for active domains.
	if vm.StateCode == StateRunning || vm.StateCode == StateBlocked {
		vm.IPs = sampleAddresses(lv, domain)
	}

	return vm
}

func sampleAddresses(lv queryAPI, domain libvirt.Domain) []string {
	// Source 0 = DHCP leases; works without a guest agent.
	ifaces, err := lv.DomainInterfaceAddresses(domain, 0, 0)
	if err != nil {
		logger.WithError(err).Debugf("failed to get addresses for domain %s", domain.Name)
		return nil
	}

	var addrs []string
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			addrs = append(addrs, addr.Addr)
		}
	}
	return addrs
}
