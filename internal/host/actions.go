package host

import (
	"fmt"
)

// Start starts a stopped (or saved) VM.
func (c *Client) Start(name string) error {
	return startWithDeps(c.libvirt, name)
}

// Shutdown requests a graceful guest shutdown.
func (c *Client) Shutdown(name string) error {
	return shutdownWithDeps(c.libvirt, name)
}

// PowerOff forcibly stops a VM, like pulling the power cord.
func (c *Client) PowerOff(name string) error {
	return powerOffWithDeps(c.libvirt, name)
}

// Restart forcibly resets a running VM.
func (c *Client) Restart(name string) error {
	return restartWithDeps(c.libvirt, name)
}

// Save stores the VM state to disk and stops it.
func (c *Client) Save(name string) error {
	return saveWithDeps(c.libvirt, name)
}

// Pause suspends a running VM in memory.
func (c *Client) Pause(name string) error {
	return pauseWithDeps(c.libvirt, name)
}

// Resume resumes a paused VM.
func (c *Client) Resume(name string) error {
	return resumeWithDeps(c.libvirt, name)
}

func startWithDeps(lv actionAPI, name string) error {
	domain, err := lv.DomainLookupByName(name)
	if err != nil {
		return fmt.Errorf("VM '%s' not found: %w", name, err)
	}
	if err := lv.DomainCreate(domain); err != nil {
		return fmt.Errorf("failed to start VM '%s': %w", name, err)
	}
	return nil
}

func shutdownWithDeps(lv actionAPI, name string) error {
	domain, err := lv.DomainLookupByName(name)
	if err != nil {
		return fmt.Errorf("VM '%s' not found: %w", name, err)
	}
	if err := lv.DomainShutdown(domain); err != nil {
		return fmt.Errorf("failed to shut down VM '%s': %w", name, err)
	}
	return nil
}

func powerOffWithDeps(lv actionAPI, name string) error {
	domain, err := lv.DomainLookupByName(name)
	if err != nil {
		return fmt.Errorf("VM '%s' not found: %w", name, err)
	}
	if err := lv.DomainDestroy(domain); err != nil {
		return fmt.Errorf("failed to power off VM '%s': %w", name, err)
	}
	return nil
}

func restartWithDeps(lv actionAPI, name string) error {
	domain, err := lv.DomainLookupByName(name)
	if err != nil {
		return fmt.Errorf("VM '%s' not found: %w", name, err)
	}
	if err := lv.DomainReset(domain, 0); err != nil {
		return fmt.Errorf("failed to restart VM '%s': %w", name, err)
	}
	return nil
}

func saveWithDeps(lv actionAPI, name string) error {
	domain, err := lv.DomainLookupByName(name)
	if err != nil {
		return fmt.Errorf("VM '%s' not found: %w", name, err)
	}
	if err := lv.DomainManagedSave(domain, 0); err != nil {
		return fmt.Errorf("failed to save VM '%s': %w", name, err)
	}
	return nil
}

func pauseWithDeps(lv actionAPI, name string) error {
	domain, err := lv.DomainLookupByName(name)
	if err != nil {
		return fmt.Errorf("VM '%s' not found: %w", name, err)
	}
	if err := lv.DomainSuspend(domain); err != nil {
		return fmt.Errorf("failed to pause VM '%s': %w", name, err)
	}
	return nil
}

func resumeWithDeps(lv actionAPI, name string) error {
	domain, err := lv.DomainLookupByName(name)
	if err != nil {
		return fmt.Errorf("VM '%s' not found: %w", name, err)
	}
	if err := lv.DomainResume(domain); err != nil {
		return fmt.Errorf("failed to resume VM '%s': %w", name, err)
	}
	return nil
}
