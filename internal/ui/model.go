package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridui/internal/grid"
	"gridui/internal/ui/textutil"
	"gridui/internal/view"
)

// DefaultCellWidth is the number of terminal columns per grid cell.
const DefaultCellWidth = 3

// clickDoneMsg reports the outcome of a click delivered by a tea.Cmd.
type clickDoneMsg struct {
	kind view.ClickKind
	pt   grid.Point
	err  error
}

// renderDoneMsg reports the outcome of a render requested by the Model.
type renderDoneMsg struct {
	err error
}

// closedMsg is sent once the View has been closed on quit.
type closedMsg struct {
	err error
}

// Model is the tea.Model showing one user's View.
type Model struct {
	ctx       context.Context
	view      *view.View
	title     string
	keys      KeyMap
	help      help.Model
	pane      *view.Pane
	cursor    grid.Point
	cellWidth int
	width     int
	status    string
	failed    bool
	showHelp  bool
	// quitting is set once the quit key was pressed so further input is ignored.
	quitting bool
}

// Ensure Model implements tea.Model.
var _ tea.Model = Model{}

// NewModel creates a Model displaying v.
func NewModel(ctx context.Context, v *view.View, title string) Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	return Model{
		ctx:       ctx,
		view:      v,
		title:     title,
		keys:      DefaultKeyMap(),
		help:      h,
		pane:      view.NewPane(v.Bounds()),
		cellWidth: DefaultCellWidth,
	}
}

// WithKeyMap replaces the key bindings.
func (m Model) WithKeyMap(k KeyMap) Model {
	m.keys = k
	return m
}

// WithCellWidth sets the number of columns per cell.
func (m Model) WithCellWidth(w int) Model {
	if w > 0 {
		m.cellWidth = w
	}
	return m
}

// Cursor returns the keyboard cursor position.
func (m Model) Cursor() grid.Point { return m.cursor }

// Pane returns the last pane received from the View.
func (m Model) Pane() *view.Pane { return m.pane }

// Init implements tea.Model. It asks the View for its first render.
func (m Model) Init() tea.Cmd {
	return m.renderCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PaneMsg:
		if msg.User.ID == m.view.User().ID && msg.Pane != nil {
			m.pane = msg.Pane
		}
		return m, nil
	case clickDoneMsg:
		if msg.err != nil {
			m.status, m.failed = msg.err.Error(), true
		} else {
			m.status, m.failed = fmt.Sprintf("%s click at %s", msg.kind, msg.pt), false
		}
		return m, nil
	case renderDoneMsg:
		if msg.err != nil {
			m.status, m.failed = msg.err.Error(), true
		}
		return m, nil
	case closedMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		if m.quitting {
			return m, nil
		}
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.view.Bounds()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, m.closeCmd(view.ReasonUser)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, b.Rows-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, b.Cols-1)
	default:
		if kind, ok := m.keys.clickKind(msg); ok {
			return m, m.clickCmd(m.cursor, kind)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	kind := mouseKind(msg)
	if kind == view.ClickUnknown {
		return m, nil
	}
	pt, ok := pointAt(msg.X, msg.Y, m.cellWidth, m.view.Bounds())
	if !ok {
		return m, nil
	}
	m.cursor = pt
	return m, m.clickCmd(pt, kind)
}

// mouseKind maps a mouse press to a click kind.
func mouseKind(msg tea.MouseMsg) view.ClickKind {
	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.Shift {
			return view.ClickShiftLeft
		}
		return view.ClickLeft
	case tea.MouseButtonRight:
		if msg.Shift {
			return view.ClickShiftRight
		}
		return view.ClickRight
	case tea.MouseButtonMiddle:
		return view.ClickMiddle
	}
	return view.ClickUnknown
}

func (m Model) clickCmd(pt grid.Point, kind view.ClickKind) tea.Cmd {
	ctx, v := m.ctx, m.view
	return func() tea.Msg {
		err := v.Click(ctx, v.User(), pt, kind)
		if err == nil {
			err = v.Render(ctx)
		}
		return clickDoneMsg{kind: kind, pt: pt, err: err}
	}
}

func (m Model) renderCmd() tea.Cmd {
	ctx, v := m.ctx, m.view
	return func() tea.Msg {
		return renderDoneMsg{err: v.Render(ctx)}
	}
}

func (m Model) closeCmd(reason view.CloseReason) tea.Cmd {
	ctx, v := m.ctx, m.view
	return func() tea.Msg {
		return closedMsg{err: v.Close(ctx, reason)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	cursor := m.cursor
	if m.quitting {
		cursor = grid.At(-1, -1)
	}
	board := Styles.Board.Render(RenderPane(m.pane, cursor, m.cellWidth))
	out := Styles.Title.Render(m.title) + "\n" + board

	status := m.status
	if m.width > 0 {
		status = textutil.Truncate(status, m.width)
	}
	if status != "" {
		if m.failed {
			out += "\n" + Styles.Error.Render(status)
		} else {
			out += "\n" + Styles.Status.Render(status)
		}
	}
	return out + "\n" + m.help.View(m.keys)
}
