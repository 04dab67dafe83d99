package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gridui/internal/view"
)

// KeyMap holds the host's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Press      key.Binding
	Alt        key.Binding
	ShiftPress key.Binding
	ShiftAlt   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: arrows or hjkl move the
// cursor, enter clicks, r right-clicks.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Press:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "click")),
		Alt:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "right click")),
		ShiftPress: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "shift click")),
		ShiftAlt:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "shift right click")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Alt, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Alt, k.ShiftPress, k.ShiftAlt},
		{k.Help, k.Quit},
	}
}

// clickKind maps a key press to the click it stands for, if any.
func (k KeyMap) clickKind(msg tea.KeyMsg) (view.ClickKind, bool) {
	switch {
	case key.Matches(msg, k.Press):
		return view.ClickLeft, true
	case key.Matches(msg, k.Alt):
		return view.ClickRight, true
	case key.Matches(msg, k.ShiftPress):
		return view.ClickShiftLeft, true
	case key.Matches(msg, k.ShiftAlt):
		return view.ClickShiftRight, true
	}
	return view.ClickUnknown, false
}
