package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/virtray/virtray/internal/snapshot"
)

// snapshotMsg carries a freshly built snapshot.
type snapshotMsg struct {
	Snap *snapshot.Snapshot
}

// actionDoneMsg reports the outcome of a control action.
type actionDoneMsg struct {
	Message string
	Err     error
}

type pollTickMsg struct{}

type clearStatusMsg struct{}

func pollCmd(h Host, builder *snapshot.Builder) tea.Cmd {
	return func() tea.Msg {
		raw, err := h.FetchVMs()
		return snapshotMsg{Snap: builder.Build(raw, err)}
	}
}

// actionCmd runs one control call and reports the outcome.
func actionCmd(vm, verb string, fn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(vm); err != nil {
			return actionDoneMsg{Err: fmt.Errorf("%s of '%s' failed: %w", verb, vm, err)}
		}
		return actionDoneMsg{Message: fmt.Sprintf("%s: %s requested", vm, verb)}
	}
}

func screenshotCmd(h Host, vm, dir string) tea.Cmd {
	return func() tea.Msg {
		data, ext, err := h.Screenshot(vm)
		if err != nil {
			return actionDoneMsg{Err: fmt.Errorf("screenshot of '%s' failed (has the VM been started at least once?): %w", vm, err)}
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return actionDoneMsg{Err: fmt.Errorf("failed to create screenshot directory: %w", err)}
		}
		name := fmt.Sprintf("%s_%s.%s", vm, time.Now().Format("20060102_150405"), ext)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return actionDoneMsg{Err: fmt.Errorf("failed to write screenshot: %w", err)}
		}
		return actionDoneMsg{Message: "Screenshot saved to " + path}
	}
}

func pollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
