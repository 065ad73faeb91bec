package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/virtray/virtray/internal/host"
	"github.com/virtray/virtray/internal/snapshot"
)

// Host is what the dashboard needs from the hypervisor connection.
// *host.Client satisfies it.
type Host interface {
	FetchVMs() ([]host.RawVM, error)
	Start(name string) error
	Shutdown(name string) error
	PowerOff(name string) error
	Restart(name string) error
	Save(name string) error
	Pause(name string) error
	Resume(name string) error
	Screenshot(name string) ([]byte, string, error)
}

// Model is the root Bubbletea model for the dashboard.
type Model struct {
	host    Host
	builder *snapshot.Builder
	shotDir string
	poll    time.Duration

	snap   *snapshot.Snapshot
	cursor int
	width  int
	height int

	// Inline confirmation: set when a destructive action awaits y/n.
	confirmPrompt string
	confirmCmd    tea.Cmd

	status    string
	statusErr bool

	launchViewer func(name string) error
}

// NewModel creates the initial dashboard model.
func NewModel(h Host, builder *snapshot.Builder, shotDir string, poll time.Duration) Model {
	return Model{
		host:         h,
		builder:      builder,
		shotDir:      shotDir,
		poll:         poll,
		launchViewer: host.LaunchViewer,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		pollCmd(m.host, m.builder),
		pollTick(m.poll),
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case snapshotMsg:
		m.snap = msg.Snap
		if n := len(m.snap.VMs); n == 0 {
			m.cursor = 0
		} else if m.cursor >= n {
			m.cursor = n - 1
		}
		return m, nil

	case pollTickMsg:
		return m, tea.Batch(
			pollCmd(m.host, m.builder),
			pollTick(m.poll),
		)

	case actionDoneMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.statusErr = true
		} else {
			m.status = msg.Message
			m.statusErr = false
		}
		return m, tea.Batch(
			pollCmd(m.host, m.builder),
			clearStatusAfter(5*time.Second),
		)

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirmation prompt swallows all keys.
	if m.confirmPrompt != "" {
		switch {
		case key.Matches(msg, confirmKeys.Yes):
			cmd := m.confirmCmd
			m.confirmPrompt = ""
			m.confirmCmd = nil
			return m, cmd
		case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
			m.confirmPrompt = ""
			m.confirmCmd = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, dashboardKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, dashboardKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, dashboardKeys.Down):
		if m.snap != nil && m.cursor < len(m.snap.VMs)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, dashboardKeys.Refresh):
		return m, pollCmd(m.host, m.builder)
	}

	vm, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, dashboardKeys.Start):
		return m, actionCmd(vm, "start", m.host.Start)

	case key.Matches(msg, dashboardKeys.Shutdown):
		return m.confirm(
			fmt.Sprintf("Shut down '%s'? (y/n)", vm),
			actionCmd(vm, "shutdown", m.host.Shutdown),
		)

	case key.Matches(msg, dashboardKeys.PowerOff):
		return m.confirm(
			fmt.Sprintf("Power off '%s' without guest shutdown? (y/n)", vm),
			actionCmd(vm, "power-off", m.host.PowerOff),
		)

	case key.Matches(msg, dashboardKeys.Restart):
		return m.confirm(
			fmt.Sprintf("Restart '%s'? (y/n)", vm),
			actionCmd(vm, "restart", m.host.Restart),
		)

	case key.Matches(msg, dashboardKeys.Save):
		return m.confirm(
			fmt.Sprintf("Save '%s' and stop it? (y/n)", vm),
			actionCmd(vm, "save", m.host.Save),
		)

	case key.Matches(msg, dashboardKeys.Pause):
		return m, actionCmd(vm, "pause", m.host.Pause)

	case key.Matches(msg, dashboardKeys.Resume):
		return m, actionCmd(vm, "resume", m.host.Resume)

	case key.Matches(msg, dashboardKeys.Connect):
		return m, actionCmd(vm, "connect", m.launchViewer)

	case key.Matches(msg, dashboardKeys.Screenshot):
		return m, screenshotCmd(m.host, vm, m.shotDir)
	}

	return m, nil
}

func (m Model) confirm(prompt string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.confirmPrompt = prompt
	m.confirmCmd = cmd
	return m, nil
}

func (m Model) selected() (string, bool) {
	if m.snap == nil || m.cursor >= len(m.snap.VMs) {
		return "", false
	}
	return m.snap.VMs[m.cursor].Name, true
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("virtray dashboard"))
	b.WriteString("\n\n")

	switch {
	case m.snap == nil:
		b.WriteString(dimStyle.Render("polling..."))
		b.WriteString("\n")
	case m.snap.Failed():
		b.WriteString(errorStyle.Render("Error: " + m.snap.Err))
		b.WriteString("\n")
	case len(m.snap.VMs) == 0:
		b.WriteString(dimStyle.Render(fmt.Sprintf("No VMs found matching '%s'", m.snap.Filter)))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	if m.confirmPrompt != "" {
		b.WriteString(confirmStyle.Render(m.confirmPrompt))
	} else if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
	} else {
		b.WriteString(m.renderHints())
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTable() string {
	var b strings.Builder

	header := fmt.Sprintf("  %-20s %-10s %5s %9s  %s", "NAME", "STATE", "CPU", "RAM", "IP")
	b.WriteString(dimStyle.Render(header))
	b.WriteString("\n")

	for i, vm := range m.snap.VMs {
		b.WriteString(renderRow(vm, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(vm snapshot.VMRecord, selected bool) string {
	cpu := "N/A"
	if vm.CPUs > 0 {
		cpu = fmt.Sprintf("%d", vm.CPUs)
	}
	ram := "N/A"
	if vm.MemoryMB > 0 {
		ram = fmt.Sprintf("%dMB", vm.MemoryMB)
	}
	ip := "no IP"
	if len(vm.IPs) > 0 {
		ip = strings.Join(vm.IPs, ",")
	}

	cursor := "  "
	if selected {
		cursor = "> "
	}

	row := fmt.Sprintf("%s%-20s %s %5s %9s  %s",
		cursor, vm.Name,
		stateStyle(vm.State).Render(fmt.Sprintf("%-10s", vm.State)),
		cpu, ram, ip)
	if selected {
		return selectedRowStyle.Render(row)
	}
	return row
}

func stateStyle(s snapshot.State) lipgloss.Style {
	switch s {
	case snapshot.StateRunning:
		return stateRunningStyle
	case snapshot.StatePaused:
		return statePausedStyle
	case snapshot.StateSaved:
		return stateSavedStyle
	case snapshot.StateOff:
		return stateOffStyle
	default:
		return stateOtherStyle
	}
}

func (m Model) renderHints() string {
	hints := []struct{ k, h string }{
		{"j/k", "navigate"},
		{"s", "start"},
		{"d", "shut down"},
		{"K", "power off"},
		{"r", "restart"},
		{"v", "save"},
		{"p", "pause"},
		{"u", "resume"},
		{"c", "connect"},
		{"S", "screenshot"},
		{"R", "refresh"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.k)+hintStyle.Render(" "+h.h))
	}
	return statusBarStyle.Render(" " + strings.Join(parts, "  ") + " ")
}
