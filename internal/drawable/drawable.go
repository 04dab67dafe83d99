// Package drawable provides lipgloss-styled cell content for grid
// interfaces shown in a terminal.
package drawable

import (
	"github.com/charmbracelet/lipgloss"

	"gridui/internal/view"
)

// Palette colors (ANSI 256).
const (
	ColorAccent    = "86"  // Cyan/green - buttons, highlights
	ColorHighlight = "205" // Magenta - selected cells
	ColorDanger    = "196" // Red - destructive actions
	ColorMuted     = "241" // Gray - placeholders
	ColorText      = "252" // Light gray - normal content
	ColorWarning   = "208" // Orange - counters, badges
)

// Item is a short glyph drawn with a lipgloss style.
type Item struct {
	Glyph string
	Style lipgloss.Style
}

// Ensure Item implements view.Drawable.
var _ view.Drawable = Item{}

// Render implements view.Drawable.
func (i Item) Render() string {
	return i.Style.Render(i.Glyph)
}

// Text draws g in the normal text color.
func Text(g string) Item {
	return Colored(g, ColorText)
}

// Colored draws g in the given color.
func Colored(g, color string) Item {
	return Item{Glyph: g, Style: lipgloss.NewStyle().Foreground(lipgloss.Color(color))}
}

// Button draws g bold in the accent color.
func Button(g string) Item {
	return Item{Glyph: g, Style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent))}
}

// Danger draws g bold in the danger color.
func Danger(g string) Item {
	return Item{Glyph: g, Style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorDanger))}
}

// Muted draws g dimmed.
func Muted(g string) Item {
	return Colored(g, ColorMuted)
}
