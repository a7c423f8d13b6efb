package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"pathsnap/internal/path"
)

var (
	// Colors
	Cyan    = lipgloss.Color("86")
	Green   = lipgloss.Color("82")
	Yellow  = lipgloss.Color("226")
	Red     = lipgloss.Color("196")
	Gray    = lipgloss.Color("245")
	DimGray = lipgloss.Color("239")
	White   = lipgloss.Color("255")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan)

	NormalStyle = lipgloss.NewStyle().
			Foreground(White)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Gray).
			MarginTop(1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(0, 1)
)

// RenderKey renders a keyboard shortcut
func RenderKey(key, desc string) string {
	return KeyStyle.Render("["+key+"]") + " " + NormalStyle.Render(desc)
}

// StatusStyle picks the style used for a row status
func StatusStyle(s path.Status) lipgloss.Style {
	switch s {
	case path.StatusAdded:
		return SuccessStyle
	case path.StatusRemoved:
		return ErrorStyle
	case path.StatusDuplicate:
		return WarningStyle
	default:
		return NormalStyle
	}
}

// tableStyles is the grid look: cyan header rule, highlighted cursor row
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Gray).
		BorderBottom(true).
		Bold(true).
		Foreground(Cyan)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(Cyan).
		Bold(false)
	return s
}
