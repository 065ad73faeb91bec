package tui

import "github.com/charmbracelet/bubbles/key"

// DashboardKeys are active while the VM table is focused.
type DashboardKeys struct {
	Up         key.Binding
	Down       key.Binding
	Start      key.Binding
	Shutdown   key.Binding
	PowerOff   key.Binding
	Restart    key.Binding
	Save       key.Binding
	Pause      key.Binding
	Resume     key.Binding
	Connect    key.Binding
	Screenshot key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

var dashboardKeys = DashboardKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Shutdown: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "shut down"),
	),
	PowerOff: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "power off"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Save: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "save"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	Resume: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "resume"),
	),
	Connect: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "connect"),
	),
	Screenshot: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "screenshot"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ConfirmKeys for inline confirmation prompts.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}
