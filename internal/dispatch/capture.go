package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout gives second resolution in screenshot filenames.
const timestampLayout = "20060102_150405"

// capture retrieves a console image for the VM and writes it to the
// screenshot directory as <vm>_<timestamp>.<ext>. The image arrives at
// the native console resolution; no geometry is requested. Returns a
// message carrying the resulting path.
func (d *Dispatcher) capture(vm string) (string, error) {
	data, ext, err := d.host.Screenshot(vm)
	if err != nil {
		return "", fmt.Errorf("screenshot of '%s' failed (has the VM been started at least once?): %w", vm, err)
	}

	if err := os.MkdirAll(d.shotDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.%s", vm, time.Now().Format(timestampLayout), ext)
	path := filepath.Join(d.shotDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}

	return fmt.Sprintf("Screenshot saved to %s", path), nil
}
