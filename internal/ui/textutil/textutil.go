// Package textutil fits styled text into fixed-width terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies. ANSI escape
// sequences take no room.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts plain text to at most maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Fit returns s padded or cut to exactly width columns. Styling in s is
// preserved; a cut string gets no ellipsis since cells are narrow.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := VisualWidth(s)
	switch {
	case w > width:
		s = ansi.Truncate(s, width, "")
		w = VisualWidth(s)
	case w == width:
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
