package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)

// VM state styles.
var (
	stateRunningStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	statePausedStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	stateSavedStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	stateOffStyle     = lipgloss.NewStyle().Foreground(colorDim)
	stateOtherStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// Row styles.
var (
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Confirm prompt style.
var confirmStyle = lipgloss.NewStyle().
	Background(colorYellow).
	Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
	Bold(true).
	Padding(0, 1)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
