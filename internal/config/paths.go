// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global virtray directory.
	GlobalDirName = ".virtray"

	// ScreenshotsDirName is the directory screenshots are written to,
	// relative to the running executable.
	ScreenshotsDirName = "screenshots"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	DaemonFileName   = "daemon.yaml"
)

// GlobalDir returns the path to the global virtray directory (~/.virtray/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// ScreenshotsDir returns the screenshot output directory, a fixed
// subdirectory next to the running executable. Falls back to the working
// directory when the executable path cannot be resolved.
func ScreenshotsDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return ScreenshotsDirName
	}
	return filepath.Join(filepath.Dir(execPath), ScreenshotsDirName)
}

// EnsureGlobalDir creates the global virtray directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
