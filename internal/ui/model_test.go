package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridui/internal/grid"
	"gridui/internal/property"
	"gridui/internal/view"
)

type glyph string

func (g glyph) Render() string { return string(g) }

// sink is a Sender that records messages.
type sink struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (s *sink) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *sink) last() (PaneMsg, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.msgs) - 1; i >= 0; i-- {
		if pm, ok := s.msgs[i].(PaneMsg); ok {
			return pm, true
		}
	}
	return PaneMsg{}, false
}

type clickRecord struct {
	mu    sync.Mutex
	kinds []view.ClickKind
	pts   []grid.Point
}

func (c *clickRecord) react(_ context.Context, cl view.Click) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kinds = append(c.kinds, cl.Kind)
	c.pts = append(c.pts, cl.Point)
	return nil
}

// counterView opens a 2x3 View whose cell (0,0) shows a counter that left
// clicks increment.
func counterView(t *testing.T, f view.Flusher, rec *clickRecord) (*view.View, *property.Property[int]) {
	t.Helper()
	count := property.New(0)
	iface := view.NewBuilder(grid.Bounds{Rows: 2, Cols: 3}).
		Flusher(f).
		Transform(func() view.Transform {
			return view.Bind(count, func(_ context.Context, p *view.Pane, _ *view.View) {
				p.Set(grid.At(0, 0), view.StaticElement(glyph(strings.Repeat("#", count.Get()+1)), func(ctx context.Context, c view.Click) error {
					if rec != nil {
						rec.react(ctx, c)
					}
					if c.Kind.IsLeft() {
						count.Update(func(n int) int { return n + 1 })
					}
					return nil
				}))
			})
		}).
		Build()
	v := iface.Open(view.User{ID: "alice"})
	t.Cleanup(func() { v.Close(context.Background(), view.ReasonShutdown) })
	return v, count
}

func TestFlusherWithoutProgram(t *testing.T) {
	f := NewFlusher(nil)
	err := f.Flush(context.Background(), view.NewPane(grid.Bounds{Rows: 1, Cols: 1}), view.User{ID: "a"})
	assert.ErrorIs(t, err, ErrNoProgram)
}

func TestFlusherRetriesAfterAttach(t *testing.T) {
	ctx := context.Background()
	f := NewFlusher(nil)
	v, _ := counterView(t, f, nil)

	require.ErrorIs(t, v.Render(ctx), ErrNoProgram)

	s := &sink{}
	f.Attach(s)
	require.NoError(t, v.Render(ctx))
	pm, ok := s.last()
	require.True(t, ok)
	assert.Equal(t, "alice", pm.User.ID)
	el, ok := pm.Pane.Get(grid.At(0, 0))
	require.True(t, ok)
	assert.Equal(t, "#", el.Drawable.Render())
}

func TestFlusherCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &sink{}
	err := NewFlusher(s).Flush(ctx, view.NewPane(grid.Bounds{Rows: 1, Cols: 1}), view.User{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.msgs)
}

func TestModelAppliesPaneForItsUser(t *testing.T) {
	v, _ := counterView(t, nil, nil)
	m := NewModel(context.Background(), v, "demo")

	p := view.NewPane(v.Bounds())
	p.Set(grid.At(1, 2), view.StaticElement(glyph("x"), nil))

	other, _ := m.Update(PaneMsg{User: view.User{ID: "bob"}, Pane: p})
	assert.Equal(t, 0, other.(Model).Pane().Len())

	next, _ := m.Update(PaneMsg{User: view.User{ID: "alice"}, Pane: p})
	assert.Equal(t, 1, next.(Model).Pane().Len())
	assert.Contains(t, next.View(), "x")
}

func TestModelCursorClamps(t *testing.T) {
	v, _ := counterView(t, nil, nil)
	var m tea.Model = NewModel(context.Background(), v, "demo")

	press := func(k tea.KeyType) {
		m, _ = m.Update(tea.KeyMsg{Type: k})
	}
	press(tea.KeyUp)
	press(tea.KeyLeft)
	assert.Equal(t, grid.At(0, 0), m.(Model).Cursor())

	for i := 0; i < 5; i++ {
		press(tea.KeyDown)
		press(tea.KeyRight)
	}
	assert.Equal(t, grid.At(1, 2), m.(Model).Cursor())
}

func TestModelEnterClicksUnderCursor(t *testing.T) {
	ctx := context.Background()
	rec := &clickRecord{}
	s := &sink{}
	v, count := counterView(t, NewFlusher(s), rec)
	m := NewModel(ctx, v, "demo")
	require.NoError(t, v.Render(ctx))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd().(clickDoneMsg)
	require.NoError(t, msg.err)
	assert.Equal(t, view.ClickLeft, msg.kind)
	assert.Equal(t, 1, count.Get())

	// The click's follow-up render flushed the new counter.
	pm, ok := s.last()
	require.True(t, ok)
	el, _ := pm.Pane.Get(grid.At(0, 0))
	assert.Equal(t, "##", el.Drawable.Render())
}

func TestModelRightClickKey(t *testing.T) {
	ctx := context.Background()
	rec := &clickRecord{}
	v, count := counterView(t, nil, rec)
	require.NoError(t, v.Render(ctx))
	m := NewModel(ctx, v, "demo")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []view.ClickKind{view.ClickRight}, rec.kinds)
	assert.Equal(t, 0, count.Get())
}

func TestModelMouseClick(t *testing.T) {
	ctx := context.Background()
	rec := &clickRecord{}
	v, _ := counterView(t, nil, rec)
	require.NoError(t, v.Render(ctx))
	m := NewModel(ctx, v, "demo")

	// Column 2 of the terminal is the first column of cell (0,0).
	next, cmd := m.Update(tea.MouseMsg{X: boardLeft, Y: boardTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: true})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []view.ClickKind{view.ClickShiftLeft}, rec.kinds)
	assert.Equal(t, grid.At(0, 0), next.(Model).Cursor())

	// Releases and presses outside the board are ignored.
	_, cmd = m.Update(tea.MouseMsg{X: boardLeft, Y: boardTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	_, cmd = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
}

func TestModelEmptyCellClickIsNoop(t *testing.T) {
	ctx := context.Background()
	v, count := counterView(t, nil, nil)
	require.NoError(t, v.Render(ctx))
	m := NewModel(ctx, v, "demo")

	_, cmd := m.Update(tea.MouseMsg{X: boardLeft + DefaultCellWidth*2, Y: boardTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	msg := cmd().(clickDoneMsg)
	assert.NoError(t, msg.err)
	assert.Equal(t, grid.At(1, 2), msg.pt)
	assert.Equal(t, 0, count.Get())
}

func TestModelShowsClickError(t *testing.T) {
	v, _ := counterView(t, nil, nil)
	m := NewModel(context.Background(), v, "demo")
	next, _ := m.Update(clickDoneMsg{kind: view.ClickLeft, err: errors.New("out of stock")})
	assert.Contains(t, next.View(), "out of stock")
}

func TestModelQuitClosesView(t *testing.T) {
	v, _ := counterView(t, nil, nil)
	m := NewModel(context.Background(), v, "demo")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	msg := cmd().(closedMsg)
	assert.NoError(t, msg.err)
	assert.Equal(t, view.Closed, v.State())

	// Input after quitting is ignored.
	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestPointAt(t *testing.T) {
	b := grid.Bounds{Rows: 2, Cols: 3}
	tests := []struct {
		x, y int
		want grid.Point
		ok   bool
	}{
		{boardLeft, boardTop, grid.At(0, 0), true},
		{boardLeft + 2, boardTop, grid.At(0, 0), true},
		{boardLeft + 3, boardTop + 1, grid.At(1, 1), true},
		{boardLeft + 9, boardTop, grid.Point{}, false},
		{boardLeft - 1, boardTop, grid.Point{}, false},
		{boardLeft, boardTop + 2, grid.Point{}, false},
	}
	for _, tt := range tests {
		got, ok := pointAt(tt.x, tt.y, 3, b)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		if tt.ok {
			assert.Equal(t, tt.want, got, "(%d,%d)", tt.x, tt.y)
		}
	}
}

func TestRenderPaneDrawsEveryCell(t *testing.T) {
	p := view.NewPane(grid.Bounds{Rows: 2, Cols: 2})
	p.Set(grid.At(0, 1), view.StaticElement(glyph("ab"), nil))
	out := RenderPane(p, grid.At(-1, -1), 3)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Equal(t, 2, strings.Count(lines[1], EmptyGlyph))
	for _, l := range lines {
		assert.Equal(t, 6, lipgloss.Width(l))
	}
}
