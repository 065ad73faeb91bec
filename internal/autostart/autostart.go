// Package autostart registers the application to launch automatically for
// the current user, via an XDG autostart desktop entry.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// entryPath returns ~/.config/autostart/<entry>.desktop.
func entryPath(entry string) (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "autostart", entry+".desktop"), nil
}

// Install writes the autostart pointer for the given entry name. Installing
// an already-installed entry rewrites it; there is never more than one
// entry per name.
func Install(entry, commandLine string) error {
	path, err := entryPath(entry)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}

	content := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
Comment=VM monitoring tray
`, entry, commandLine)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	return nil
}

// Uninstall removes the autostart pointer. A missing entry is not an error.
func Uninstall(entry string) error {
	path, err := entryPath(entry)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove autostart entry: %w", err)
	}
	return nil
}

// Installed reports whether the entry currently exists.
func Installed(entry string) (bool, error) {
	path, err := entryPath(entry)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
