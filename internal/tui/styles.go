package tui

import "github.com/charmbracelet/lipgloss"

// Colors used across dashboard views.
const (
	ColorHeader   = lipgloss.Color("39")  // blue
	ColorLabel    = lipgloss.Color("245") // grey
	ColorValue    = lipgloss.Color("255") // white
	ColorBorder   = lipgloss.Color("240")
	ColorOK       = lipgloss.Color("42")  // green
	ColorWarning  = lipgloss.Color("214") // amber
	ColorCritical = lipgloss.Color("196") // red
	ColorSubtle   = lipgloss.Color("241")
)

// Status icons.
const (
	IconDone    = "✓"
	IconPending = "○"
	IconWarning = "⚠"
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

	OKStyle = lipgloss.NewStyle().Foreground(ColorOK)

	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)

	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	// BadgeStyle marks the high-risk threshold next to the claim amount.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(ColorCritical).
			Padding(0, 1)

	// ToggleStyle renders the view-toggle control in the header.
	ToggleStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorHeader).
			Padding(0, 1)
)

// borderPadding is the horizontal space taken by a box border.
const borderPadding = 2
