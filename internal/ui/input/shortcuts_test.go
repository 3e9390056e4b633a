package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
)

func TestParseAction(t *testing.T) {
	a, err := ParseAction("  Split-Right ")
	require.NoError(t, err)
	assert.Equal(t, ActionSplitRight, a)

	_, err = ParseAction("split-diagonal")
	assert.ErrorIs(t, err, ErrUnknownHotkey)

	for _, a := range Actions() {
		got, err := ParseAction(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}

func TestActionDirections(t *testing.T) {
	tests := []struct {
		action Action
		split  entity.Direction
		nav    entity.Direction
		resize entity.Direction
	}{
		{action: ActionSplitRight, split: entity.DirRight},
		{action: ActionSplitTop, split: entity.DirTop},
		{action: ActionSplitNavUp, nav: entity.DirTop},
		{action: ActionPaneNavUp, nav: entity.DirTop},
		{action: ActionPaneNavDown, nav: entity.DirBottom},
		{action: ActionResizeLeft, resize: entity.DirLeft},
		{action: ActionResizeDown, resize: entity.DirBottom},
		{action: ActionPaneMaximize},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			split, ok := tt.action.SplitDirection()
			assert.Equal(t, tt.split != "", ok)
			assert.Equal(t, tt.split, split)

			nav, ok := tt.action.NavDirection()
			assert.Equal(t, tt.nav != "", ok)
			assert.Equal(t, tt.nav, nav)

			resize, ok := tt.action.ResizeDirection()
			assert.Equal(t, tt.resize != "", ok)
			assert.Equal(t, tt.resize, resize)
		})
	}
}

func TestNewShortcutSet_Defaults(t *testing.T) {
	s := NewShortcutSet(context.Background(), nil)

	a, ok := s.Lookup("v")
	require.True(t, ok)
	assert.Equal(t, ActionSplitRight, a)

	a, ok = s.Lookup("V")
	require.True(t, ok)
	assert.Equal(t, ActionSplitLeft, a)

	a, ok = s.Lookup("Shift+Tab")
	require.True(t, ok)
	assert.Equal(t, ActionPaneNavPrevious, a)

	_, ok = s.Lookup("ctrl+alt+delete")
	assert.False(t, ok)
}

func TestNewShortcutSet_Configured(t *testing.T) {
	cfg := &config.Config{
		Keybindings: map[string][]string{
			"close-pane":    {"q", "Ctrl+W"},
			"pane-maximize": {"q", "f"},
			"teleport":      {"t"},
		},
	}
	s := NewShortcutSet(context.Background(), cfg)

	a, ok := s.Lookup("q")
	require.True(t, ok)
	assert.Equal(t, ActionClosePane, a, "close-pane sorts first and keeps the key")

	a, ok = s.Lookup("ctrl+W")
	require.True(t, ok)
	assert.Equal(t, ActionClosePane, a)

	assert.Equal(t, []string{"f"}, s.Keys(ActionPaneMaximize))

	_, ok = s.Lookup("t")
	assert.False(t, ok)
	_, ok = s.Lookup("v")
	assert.False(t, ok, "configured bindings replace the defaults")
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "shift+H", normalizeKey(" Shift+H "))
	assert.Equal(t, "h", normalizeKey("h"))
	assert.Equal(t, "+", normalizeKey("+"))
	assert.Equal(t, "ctrl+alt+x", normalizeKey("CTRL+Alt+x"))
}
