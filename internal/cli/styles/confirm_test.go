package styles

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(m ConfirmModel, msg tea.KeyMsg) ConfirmModel {
	m, _ = m.Update(msg)
	return m
}

func TestConfirmModel(t *testing.T) {
	theme := NewTheme()
	yes := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	right := tea.KeyMsg{Type: tea.KeyRight}

	m := NewConfirm(theme, "Delete layout main?")
	assert.False(t, m.Done())
	assert.Contains(t, m.View(), "Delete layout main?")
	assert.Contains(t, m.View(), "toggle")

	m = press(m, enter)
	assert.True(t, m.Done())
	assert.False(t, m.Result(), "defaults to no")

	m = press(NewConfirm(theme, "?"), yes)
	assert.True(t, m.Result())

	m = press(press(NewConfirm(theme, "?"), right), enter)
	assert.True(t, m.Result())

	m = press(press(NewConfirm(theme, "?"), right), esc)
	assert.True(t, m.Done())
	assert.False(t, m.Result())
}
