package host

import (
	"fmt"
	"io"

	"github.com/digitalocean/go-libvirt"
)

// mockHost is a mock implementation of the query, action, and screenshot
// interfaces for testing.
type mockHost struct {
	// Configurable behavior
	listAllDomainsFunc     func() ([]libvirt.Domain, error)
	getStateFunc           func(dom libvirt.Domain) (int32, int32, error)
	getInfoFunc            func(dom libvirt.Domain) (uint8, uint64, uint64, uint16, uint64, error)
	hasManagedSaveFunc     func(dom libvirt.Domain) (int32, error)
	interfaceAddressesFunc func(dom libvirt.Domain) ([]libvirt.DomainInterface, error)
	lookupByNameFunc       func(name string) (libvirt.Domain, error)
	createFunc             func(dom libvirt.Domain) error
	shutdownFunc           func(dom libvirt.Domain) error
	destroyFunc            func(dom libvirt.Domain) error
	resetFunc              func(dom libvirt.Domain) error
	managedSaveFunc        func(dom libvirt.Domain) error
	suspendFunc            func(dom libvirt.Domain) error
	resumeFunc             func(dom libvirt.Domain) error
	screenshotFunc         func(w io.Writer, dom libvirt.Domain) (libvirt.OptString, error)

	// Call tracking
	createCalls   []string
	shutdownCalls []string
	destroyCalls  []string
	resetCalls    []string
	saveCalls     []string
	suspendCalls  []string
	resumeCalls   []string
}

func newMockHost() *mockHost {
	m := &mockHost{}
	m.listAllDomainsFunc = func() ([]libvirt.Domain, error) { return nil, nil }
	m.getStateFunc = func(libvirt.Domain) (int32, int32, error) { return StateRunning, 0, nil }
	m.getInfoFunc = func(libvirt.Domain) (uint8, uint64, uint64, uint16, uint64, error) {
		return StateRunning, 4194304, 2097152, 2, 0, nil
	}
	m.hasManagedSaveFunc = func(libvirt.Domain) (int32, error) { return 0, nil }
	m.interfaceAddressesFunc = func(libvirt.Domain) ([]libvirt.DomainInterface, error) { return nil, nil }
	m.lookupByNameFunc = func(name string) (libvirt.Domain, error) {
		return libvirt.Domain{Name: name}, nil
	}
	m.createFunc = func(libvirt.Domain) error { return nil }
	m.shutdownFunc = func(libvirt.Domain) error { return nil }
	m.destroyFunc = func(libvirt.Domain) error { return nil }
	m.resetFunc = func(libvirt.Domain) error { return nil }
	m.managedSaveFunc = func(libvirt.Domain) error { return nil }
	m.suspendFunc = func(libvirt.Domain) error { return nil }
	m.resumeFunc = func(libvirt.Domain) error { return nil }
	m.screenshotFunc = func(w io.Writer, dom libvirt.Domain) (libvirt.OptString, error) {
		_, _ = w.Write([]byte("not-really-a-ppm"))
		return libvirt.OptString{"image/x-portable-pixmap"}, nil
	}
	return m
}

func (m *mockHost) ConnectListAllDomains(needResults int32, flags libvirt.ConnectListAllDomainsFlags) ([]libvirt.Domain, uint32, error) {
	domains, err := m.listAllDomainsFunc()
	return domains, uint32(len(domains)), err
}

func (m *mockHost) DomainGetState(dom libvirt.Domain, flags uint32) (int32, int32, error) {
	return m.getStateFunc(dom)
}

func (m *mockHost) DomainGetInfo(dom libvirt.Domain) (uint8, uint64, uint64, uint16, uint64, error) {
	return m.getInfoFunc(dom)
}

func (m *mockHost) DomainHasManagedSaveImage(dom libvirt.Domain, flags uint32) (int32, error) {
	return m.hasManagedSaveFunc(dom)
}

func (m *mockHost) DomainInterfaceAddresses(dom libvirt.Domain, source uint32, flags uint32) ([]libvirt.DomainInterface, error) {
	return m.interfaceAddressesFunc(dom)
}

func (m *mockHost) DomainLookupByName(name string) (libvirt.Domain, error) {
	return m.lookupByNameFunc(name)
}

func (m *mockHost) DomainCreate(dom libvirt.Domain) error {
	m.createCalls = append(m.createCalls, dom.Name)
	return m.createFunc(dom)
}

func (m *mockHost) DomainShutdown(dom libvirt.Domain) error {
	m.shutdownCalls = append(m.shutdownCalls, dom.Name)
	return m.shutdownFunc(dom)
}

func (m *mockHost) DomainDestroy(dom libvirt.Domain) error {
	m.destroyCalls = append(m.destroyCalls, dom.Name)
	return m.destroyFunc(dom)
}

func (m *mockHost) DomainReset(dom libvirt.Domain, flags uint32) error {
	m.resetCalls = append(m.resetCalls, dom.Name)
	return m.resetFunc(dom)
}

func (m *mockHost) DomainManagedSave(dom libvirt.Domain, flags uint32) error {
	m.saveCalls = append(m.saveCalls, dom.Name)
	return m.managedSaveFunc(dom)
}

func (m *mockHost) DomainSuspend(dom libvirt.Domain) error {
	m.suspendCalls = append(m.suspendCalls, dom.Name)
	return m.suspendFunc(dom)
}

func (m *mockHost) DomainResume(dom libvirt.Domain) error {
	m.resumeCalls = append(m.resumeCalls, dom.Name)
	return m.resumeFunc(dom)
}

func (m *mockHost) DomainScreenshot(dom libvirt.Domain, outStream io.Writer, screen uint32, flags uint32) (libvirt.OptString, error) {
	return m.screenshotFunc(outStream, dom)
}

// The production client must satisfy the narrow interfaces with the real
// go-libvirt method set.
var (
	_ queryAPI      = (*libvirt.Libvirt)(nil)
	_ actionAPI     = (*libvirt.Libvirt)(nil)
	_ screenshotAPI = (*libvirt.Libvirt)(nil)
)

// errNotFound is a reusable lookup failure.
var errNotFound = fmt.Errorf("domain not found")
