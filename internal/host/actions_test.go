package host

import (
	"io"
	"testing"

	"github.com/digitalocean/go-libvirt"
)

func TestActions_IssueOneHostCall(t *testing.T) {
	tests := []struct {
		name   string
		run    func(lv actionAPI) error
		called func(m *mockHost) []string
	}{
		{
			name:   "start",
			run:    func(lv actionAPI) error { return startWithDeps(lv, "vm1") },
			called: func(m *mockHost) []string { return m.createCalls },
		},
		{
			name:   "shutdown",
			run:    func(lv actionAPI) error { return shutdownWithDeps(lv, "vm1") },
			called: func(m *mockHost) []string { return m.shutdownCalls },
		},
		{
			name:   "power off",
			run:    func(lv actionAPI) error { return powerOffWithDeps(lv, "vm1") },
			called: func(m *mockHost) []string { return m.destroyCalls },
		},
		{
			name:   "restart",
			run:    func(lv actionAPI) error { return restartWithDeps(lv, "vm1") },
			called: func(m *mockHost) []string { return m.resetCalls },
		},
		{
			name:   "save",
			run:    func(lv actionAPI) error { return saveWithDeps(lv, "vm1") },
			called: func(m *mockHost) []string { return m.saveCalls },
		},
		{
			name:   "pause",
			run:    func(lv actionAPI) error { return pauseWithDeps(lv, "vm1") },
			called: func(m *mockHost) []string { return m.suspendCalls },
		},
		{
			name:   "resume",
			run:    func(lv actionAPI) error { return resumeWithDeps(lv, "vm1") },
			called: func(m *mockHost) []string { return m.resumeCalls },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockHost()
			if err := tt.run(m); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			calls := tt.called(m)
			if len(calls) != 1 || calls[0] != "vm1" {
				t.Errorf("expected exactly one call for vm1, got %v", calls)
			}
		})
	}
}

func TestActions_LookupFailure(t *testing.T) {
	m := newMockHost()
	m.lookupByNameFunc = func(name string) (libvirt.Domain, error) {
		return libvirt.Domain{}, errNotFound
	}

	if err := startWithDeps(m, "ghost"); err == nil {
		t.Fatal("expected error for unknown VM")
	}
	if len(m.createCalls) != 0 {
		t.Errorf("no host call should be made after a failed lookup, got %v", m.createCalls)
	}
}

func TestScreenshot(t *testing.T) {
	m := newMockHost()

	data, ext, err := screenshotWithDeps(m, "vm1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected image data")
	}
	if ext != "ppm" {
		t.Errorf("ext = %q, want %q", ext, "ppm")
	}
}

func TestScreenshot_MissingMime(t *testing.T) {
	m := newMockHost()
	m.screenshotFunc = func(w io.Writer, dom libvirt.Domain) (libvirt.OptString, error) {
		_, _ = w.Write([]byte("raw"))
		return nil, nil // MIME type absent on the wire
	}

	data, ext, err := screenshotWithDeps(m, "vm1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "raw" {
		t.Errorf("data = %q, want raw bytes", data)
	}
	if ext != "img" {
		t.Errorf("ext = %q, want fallback %q", ext, "img")
	}
}

func TestScreenshot_NoData(t *testing.T) {
	m := newMockHost()
	m.screenshotFunc = func(w io.Writer, dom libvirt.Domain) (libvirt.OptString, error) {
		return libvirt.OptString{"image/png"}, nil // nothing written
	}

	if _, _, err := screenshotWithDeps(m, "vm1"); err == nil {
		t.Fatal("expected error when no image data is returned")
	}
}

func TestExtForMime(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/png", "png"},
		{"image/jpeg", "jpg"},
		{"image/x-portable-pixmap", "ppm"},
		{"application/octet-stream", "img"},
		{"", "img"},
	}
	for _, tt := range tests {
		if got := extForMime(tt.mime); got != tt.want {
			t.Errorf("extForMime(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}
