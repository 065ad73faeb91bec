package host

import (
	"io"

	"github.com/digitalocean/go-libvirt"
)

// queryAPI defines the libvirt operations needed to take a state sample.
//
// In production, this is satisfied by *libvirt.Libvirt directly.
// In tests, this is satisfied by mock implementations.
type queryAPI interface {
	// ConnectListAllDomains lists domains, active and inactive
	ConnectListAllDomains(needResults int32, flags libvirt.ConnectListAllDomainsFlags) ([]libvirt.Domain, uint32, error)

	// DomainGetState gets the lifecycle state of a domain
	DomainGetState(dom libvirt.Domain, flags uint32) (state int32, reason int32, err error)

	// DomainGetInfo gets memory and vCPU details for a domain
	DomainGetInfo(dom libvirt.Domain) (state uint8, maxMem uint64, memory uint64, nrVirtCPU uint16, cpuTime uint64, err error)

	// DomainHasManagedSaveImage reports whether a managed save image exists
	DomainHasManagedSaveImage(dom libvirt.Domain, flags uint32) (int32, error)

	// DomainInterfaceAddresses lists per-adapter addresses for a domain
	DomainInterfaceAddresses(dom libvirt.Domain, source uint32, flags uint32) ([]libvirt.DomainInterface, error)
}

// actionAPI defines the libvirt operations needed for control actions.
type actionAPI interface {
	// DomainLookupByName looks up a domain by name
	DomainLookupByName(name string) (libvirt.Domain, error)

	// DomainCreate starts a domain
	DomainCreate(dom libvirt.Domain) error

	// DomainShutdown requests a graceful guest shutdown
	DomainShutdown(dom libvirt.Domain) error

	// DomainDestroy force-stops a domain
	DomainDestroy(dom libvirt.Domain) error

	// DomainReset forcibly resets a domain
	DomainReset(dom libvirt.Domain, flags uint32) error

	// DomainManagedSave saves domain state to disk and stops it
	DomainManagedSave(dom libvirt.Domain, flags uint32) error

	// DomainSuspend pauses a domain
	DomainSuspend(dom libvirt.Domain) error

	// DomainResume resumes a paused domain
	DomainResume(dom libvirt.Domain) error
}

// screenshotAPI defines the libvirt operations needed for console images.
type screenshotAPI interface {
	// DomainLookupByName looks up a domain by name
	DomainLookupByName(name string) (libvirt.Domain, error)

	// DomainScreenshot streams a console image and returns its MIME type
	DomainScreenshot(dom libvirt.Domain, outStream io.Writer, screen uint32, flags uint32) (libvirt.OptString, error)
}
