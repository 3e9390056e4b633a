package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PlaygroundKeyMap defines the fixed keybindings of the layout playground.
// Layout holds the configurable pane hotkeys.
type PlaygroundKeyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	ResetBorder key.Binding
	ToggleBusy  key.Binding
	Save        key.Binding

	Layout []key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PlaygroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help. Layout hotkeys are split
// into columns of six.
func (k PlaygroundKeyMap) FullHelp() [][]key.Binding {
	const perColumn = 6

	cols := [][]key.Binding{
		{k.ResetBorder, k.ToggleBusy, k.Save, k.Help, k.Quit, k.ForceQuit},
	}
	for start := 0; start < len(k.Layout); start += perColumn {
		end := min(start+perColumn, len(k.Layout))
		cols = append(cols, k.Layout[start:end])
	}
	return cols
}

// DefaultPlaygroundKeyMap returns the fixed playground keybindings.
func DefaultPlaygroundKeyMap() PlaygroundKeyMap {
	return PlaygroundKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ResetBorder: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "even out border"),
		),
		ToggleBusy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle busy"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save layout"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
