package ui

import (
	"github.com/charmbracelet/lipgloss"

	"gridui/internal/drawable"
)

// Styles contains the shared style definitions of the host.
var Styles = struct {
	Title  lipgloss.Style // Bold accent color - header line
	Board  lipgloss.Style // Rounded border around the grid
	Cell   lipgloss.Style // Unselected cell
	Cursor lipgloss.Style // Cell under the keyboard cursor
	Empty  lipgloss.Style // Placeholder for points with no element
	Status lipgloss.Style // Last click outcome
	Error  lipgloss.Style // Failed click or render
	Hint   lipgloss.Style // Help line
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(drawable.ColorAccent)),
	Board: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(drawable.ColorHighlight)).
		Padding(0, 1),
	Cell: lipgloss.NewStyle(),
	Cursor: lipgloss.NewStyle().
		Reverse(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(drawable.ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(drawable.ColorAccent)),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(drawable.ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(drawable.ColorMuted)),
}

// EmptyGlyph is drawn at points the pane leaves empty.
const EmptyGlyph = "·"
