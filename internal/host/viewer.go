package host

import (
	"fmt"
	"os/exec"
)

const localURI = "qemu:///system"

// LaunchViewer spawns a detached virt-viewer console window for the named
// VM on the local host. The viewer's own lifetime is not tracked.
func LaunchViewer(name string) error {
	cmd := exec.Command("virt-viewer", "--connect", localURI, name)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch console viewer for '%s': %w", name, err)
	}
	// Detach; reap the child in the background so it never zombies.
	go func() { _ = cmd.Wait() }()
	return nil
}

// LaunchManager spawns the host's VM management GUI.
func LaunchManager() error {
	cmd := exec.Command("virt-manager", "--connect", localURI)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch virt-manager: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
