package host

import (
	"os"

	"golang.org/x/sys/unix"
)

// Elevated reports whether this process can issue control calls against
// the hypervisor: either running as root or holding write access to the
// libvirt socket (libvirt group membership).
func Elevated(socketPath string) bool {
	if os.Geteuid() == 0 {
		return true
	}
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	return unix.Access(socketPath, unix.W_OK) == nil
}
