package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/cli/demo"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
)

func newTestPlayground(t *testing.T, cfg PlaygroundConfig) *PlaygroundModel {
	t.Helper()
	m, err := NewPlaygroundModel(context.Background(), styles.NewTheme(), cfg)
	require.NoError(t, err)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *PlaygroundModel, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// split presses a split hotkey and waits for the asynchronous duplicate.
func split(t *testing.T, m *PlaygroundModel, hotkey string) {
	t.Helper()
	before := m.coord.Workspace().PaneCount()
	send(m, runes(hotkey))
	require.Eventually(t, func() bool { return m.loop.Len() > 0 }, 2*time.Second, time.Millisecond)
	send(m, loopReadyMsg{})
	require.Equal(t, before+1, m.coord.Workspace().PaneCount())
}

func TestPlayground_SplitAndRender(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})
	send(m, tea.WindowSizeMsg{Width: 60, Height: 13})

	split(t, m, "v")

	leaves := m.coord.Workspace().Tree.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, leaves[1], m.coord.Focused())
	assert.Equal(t, "opened pane 2", m.status)

	canvas := m.renderCanvas(true)
	assert.Contains(t, canvas, "pane 1")
	assert.Contains(t, canvas, "pane 2")
	assert.Contains(t, m.View(), "2 panes")

	r := m.coord.LastLayout().Rects[leaves[0]]
	assert.InDelta(t, 30, r.W, 1e-9)
	assert.InDelta(t, 12, r.H, 1e-9)
}

func TestPlayground_MouseDragResizes(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})
	send(m, tea.WindowSizeMsg{Width: 100, Height: 21})
	split(t, m, "v")
	root := m.coord.Workspace().Tree.Root

	send(m, tea.MouseMsg{X: 50, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, m.drag)

	send(m, tea.MouseMsg{X: 70, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, "ratios 0.70 0.30", m.status)
	assert.InDelta(t, 0.5, root.Ratios[0], 1e-9, "ratios untouched until release")

	send(m, tea.MouseMsg{X: 70, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, m.drag)
	assert.InDelta(t, 0.7, root.Ratios[0], 1e-9)
	assert.InDelta(t, 0.3, root.Ratios[1], 1e-9)
	assert.InDelta(t, 70, m.coord.LastLayout().Rects[root.Children[0].PaneID].W, 1e-9)

	// A press away from borders focuses the pane under the pointer.
	send(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, m.drag)
	assert.Equal(t, root.Children[0].PaneID, m.coord.Focused())

	// Dragging far past the minimum share is clamped.
	send(m, tea.MouseMsg{X: 70, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	send(m, tea.MouseMsg{X: 99, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.InDelta(t, 0.9, root.Ratios[0], 1e-9)
}

func TestPlayground_CloseDuringDragCancelsResize(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})
	send(m, tea.WindowSizeMsg{Width: 100, Height: 21})
	split(t, m, "v")
	split(t, m, "v")
	require.Equal(t, 3, m.coord.Workspace().PaneCount())

	send(m, tea.MouseMsg{X: 33, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, m.drag)
	send(m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	send(m, runes("x"))
	require.Equal(t, 2, m.coord.Workspace().PaneCount())

	send(m, tea.MouseMsg{X: 45, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Nil(t, m.drag)
	assert.Equal(t, "resize cancelled, layout changed", m.status)
	send(m, tea.MouseMsg{X: 45, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	tree := m.coord.Workspace().Tree
	require.NoError(t, tree.Validate())
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, tree.Root.Ratios, 1e-9)
}

func TestPlayground_TitleDragMovesPane(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})
	send(m, tea.WindowSizeMsg{Width: 100, Height: 21})
	split(t, m, "v")
	leaves := m.coord.Workspace().Tree.Leaves()
	require.Len(t, leaves, 2)
	first, second := leaves[0], leaves[1]

	// A press inside the pane body only focuses.
	send(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Empty(t, m.moving)
	send(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	send(m, tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, first, m.moving)
	assert.Nil(t, m.drag)
	assert.Equal(t, "moving pane 1", m.status)

	send(m, tea.MouseMsg{X: 75, Y: 18, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.NotNil(t, m.dropZone)
	assert.Equal(t, "drop pane 1 bottom of pane 2", m.status)
	assert.Contains(t, m.renderCanvas(true), "░")

	send(m, tea.MouseMsg{X: 75, Y: 18, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Empty(t, m.moving)
	assert.Nil(t, m.dropZone)
	assert.Equal(t, "moved pane 1", m.status)

	tree := m.coord.Workspace().Tree
	require.NoError(t, tree.Validate())
	assert.Equal(t, []entity.PaneID{second, first}, tree.Leaves())
	assert.Equal(t, entity.Vertical, tree.Root.Orientation)
	assert.Equal(t, first, m.coord.Focused())
	assert.NotContains(t, m.renderCanvas(true), "░")

	// The title sits on the border row, yet grabs the pane rather than the
	// border. Released over the pane itself: nothing moves.
	send(m, tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, first, m.moving)
	send(m, tea.MouseMsg{X: 50, Y: 15, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Empty(t, m.status)
	assert.Equal(t, []entity.PaneID{second, first}, tree.Leaves())
}

func TestPlayground_ResetBorder(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})
	send(m, tea.WindowSizeMsg{Width: 100, Height: 21})
	split(t, m, "v")
	root := m.coord.Workspace().Tree.Root

	send(m, runes("L"))
	require.InDelta(t, 0.6, root.Ratios[0], 1e-9)

	send(m, runes("="))
	assert.InDelta(t, 0.5, root.Ratios[0], 1e-9)
	assert.InDelta(t, 0.5, root.Ratios[1], 1e-9)

	send(m, runes("h"))
	send(m, runes("="))
	assert.Equal(t, "no border to reset", m.status)
}

func TestPlayground_QuitVetoedByBusyPane(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})
	pane, ok := m.focusedDemoPane()
	require.True(t, ok)

	send(m, runes("b"))
	require.True(t, pane.Busy())
	assert.Contains(t, m.renderCanvas(true), "busy")

	cmd := send(m, runes("q"))
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.status, "busy")
	assert.False(t, pane.Destroyed())

	cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.True(t, pane.Destroyed())
	assert.Empty(t, m.View())
}

func TestPlayground_ClosingLastPaneQuits(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})
	pane, _ := m.focusedDemoPane()

	cmd := send(m, runes("x"))
	assert.True(t, isQuit(cmd))
	assert.True(t, m.coord.IsClosed())
	assert.True(t, pane.Destroyed())
}

func TestPlayground_Save(t *testing.T) {
	var saved []int
	save := func(_ context.Context, ws *entity.Workspace, panes map[entity.PaneID]port.Pane) error {
		require.Len(t, panes, ws.PaneCount())
		saved = append(saved, ws.PaneCount())
		return nil
	}
	m := newTestPlayground(t, PlaygroundConfig{Save: save, SaveOnExit: true})

	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, "layout saved", m.status)

	split(t, m, "s")
	cmd := send(m, runes("q"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, []int{1, 2}, saved)
}

func TestPlayground_SaveErrors(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, "saving is disabled", m.status)

	m = newTestPlayground(t, PlaygroundConfig{
		Save: func(context.Context, *entity.Workspace, map[entity.PaneID]port.Pane) error {
			return errors.New("disk full")
		},
	})
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, "save failed: disk full", m.status)
}

func TestPlayground_ConfigReload(t *testing.T) {
	m := newTestPlayground(t, PlaygroundConfig{})

	cfg := config.DefaultConfig()
	cfg.Keybindings = map[string][]string{"split-bottom": {"n"}}
	cfg.Layout.DimmedOpacity = 0.5
	send(m, ConfigChangedMsg{Config: cfg})
	assert.Equal(t, "config reloaded", m.status)

	_, ok := m.shortcuts.Lookup("s")
	assert.False(t, ok)
	require.Len(t, m.keys.Layout, 1)
	assert.Equal(t, "split-bottom", m.keys.Layout[0].Help().Desc)

	split(t, m, "n")
	assert.Equal(t, entity.Vertical, m.coord.Workspace().Tree.Root.Orientation)
	for id, r := range m.coord.LastLayout().Rects {
		if id != m.coord.Focused() {
			assert.InDelta(t, 0.5, r.Opacity, 1e-9)
		}
	}
}

func TestPlayground_Restored(t *testing.T) {
	f := demo.NewFactory(nil)
	a, b := f.New(), f.New()
	tree := &entity.SplitTree{Root: entity.NewContainer(entity.Vertical,
		entity.NewLeaf(a.ID()), entity.NewLeaf(b.ID()))}
	tree.Normalize()

	m := newTestPlayground(t, PlaygroundConfig{
		Factory: f,
		Restored: &usecase.RestoreLayoutOutput{
			Workspace: &entity.Workspace{Tree: tree, FocusedPaneID: b.ID()},
			Panes:     map[entity.PaneID]port.Pane{a.ID(): a, b.ID(): b},
		},
	})

	assert.Equal(t, b.ID(), m.coord.Focused())
	assert.True(t, b.IsFocused())
	assert.Contains(t, m.renderCanvas(true), "pane 2")
}
