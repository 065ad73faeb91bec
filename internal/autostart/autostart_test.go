package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := userConfigDir
	userConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDir = orig })
	return dir
}

func TestInstall_Idempotent(t *testing.T) {
	dir := withTempConfigDir(t)

	if err := Install("virtray", "/usr/local/bin/virtrayd"); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if err := Install("virtray", "/usr/local/bin/virtrayd -interval 60"); err != nil {
		t.Fatalf("second Install: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "autostart"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, "autostart", "virtray.desktop"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// Second install wins.
	if !strings.Contains(string(data), "Exec=/usr/local/bin/virtrayd -interval 60") {
		t.Errorf("entry content = %q, want updated command line", data)
	}
}

func TestUninstall(t *testing.T) {
	withTempConfigDir(t)

	if err := Install("virtray", "/usr/local/bin/virtrayd"); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if err := Uninstall("virtray"); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}

	installed, err := Installed("virtray")
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if installed {
		t.Error("entry should be gone after uninstall")
	}
}

func TestUninstall_AbsentIsNotAnError(t *testing.T) {
	withTempConfigDir(t)

	if err := Uninstall("virtray"); err != nil {
		t.Fatalf("Uninstall of absent entry: %v", err)
	}
}

func TestInstalled(t *testing.T) {
	withTempConfigDir(t)

	installed, err := Installed("virtray")
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if installed {
		t.Error("entry should not exist initially")
	}

	if err := Install("virtray", "/usr/local/bin/virtrayd"); err != nil {
		t.Fatalf("Install: %v", err)
	}

	installed, err = Installed("virtray")
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if !installed {
		t.Error("entry should exist after install")
	}
}
