// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbterm/internal/cli/demo"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/domain/repository"
	"github.com/bnema/dumbterm/internal/logging"
)

const (
	previewWidth  = 48
	previewHeight = 12
)

// SessionsModel is the Bubble Tea model for the interactive saved layout
// browser. Choosing a layout quits the browser; the caller reads Selected.
type SessionsModel struct {
	// UI components
	help    help.Model
	keys    sessionsKeyMap
	confirm *styles.ConfirmModel

	// State
	layouts       []entity.LayoutSnapshotInfo
	snapshots     map[entity.TabID]*entity.LayoutSnapshot
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	width         int
	height        int
	err           error
	statusMessage string
	selected      entity.TabID

	// Dependencies
	ctx   context.Context
	repo  repository.LayoutSnapshotRepository
	theme *styles.Theme
}

// sessionsKeyMap defines keybindings for the layout browser.
type sessionsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Restore key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k sessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Restore, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k sessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Restore, k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultSessionsKeyMap() sessionsKeyMap {
	return sessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "preview"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewSessionsModel creates a new layout browser model.
func NewSessionsModel(ctx context.Context, theme *styles.Theme, repo repository.LayoutSnapshotRepository) SessionsModel {
	return SessionsModel{
		help:        styles.NewStyledHelp(theme),
		keys:        defaultSessionsKeyMap(),
		snapshots:   make(map[entity.TabID]*entity.LayoutSnapshot),
		expandedIdx: -1,
		width:       defaultWidth,
		height:      defaultHeight,
		ctx:         ctx,
		repo:        repo,
		theme:       theme,
	}
}

// Selected returns the layout chosen for opening, if any.
func (m SessionsModel) Selected() entity.TabID {
	return m.selected
}

// Init implements tea.Model.
func (m SessionsModel) Init() tea.Cmd {
	return m.loadLayouts
}

// layoutsLoadedMsg is sent when the listing is loaded.
type layoutsLoadedMsg struct {
	layouts []entity.LayoutSnapshotInfo
	err     error
}

// layoutLoadedMsg carries one full snapshot for the preview.
type layoutLoadedMsg struct {
	tabID    entity.TabID
	snapshot *entity.LayoutSnapshot
	err      error
}

// layoutDeletedMsg is sent when a layout is deleted.
type layoutDeletedMsg struct {
	tabID entity.TabID
	err   error
}

func (m SessionsModel) loadLayouts() tea.Msg {
	log := logging.FromContext(m.ctx)
	log.Debug().Msg("loading layouts")

	if m.repo == nil {
		return layoutsLoadedMsg{err: fmt.Errorf("layout storage not available")}
	}

	layouts, err := m.repo.List(m.ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load layouts")
		return layoutsLoadedMsg{err: err}
	}

	log.Debug().Int("count", len(layouts)).Msg("loaded layouts")
	return layoutsLoadedMsg{layouts: layouts}
}

func (m SessionsModel) loadLayout(tabID entity.TabID) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.repo.Get(m.ctx, tabID)
		return layoutLoadedMsg{tabID: tabID, snapshot: snap, err: err}
	}
}

// Update implements tea.Model.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case layoutsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.layouts = msg.layouts
		m.err = nil
		if m.selectedIdx >= len(m.layouts) {
			m.selectedIdx = max(len(m.layouts)-1, 0)
		}
		if m.expandedIdx >= len(m.layouts) {
			m.expandedIdx = -1
		}
		return m, nil

	case layoutLoadedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		if msg.snapshot == nil {
			m.statusMessage = fmt.Sprintf("Layout %s no longer exists", msg.tabID)
			m.expandedIdx = -1
			return m, nil
		}
		m.snapshots[msg.tabID] = msg.snapshot
		return m, nil

	case layoutDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMessage = fmt.Sprintf("Layout %s deleted", msg.tabID)
			delete(m.snapshots, msg.tabID)
			m.expandedIdx = -1
		}
		return m, m.loadLayouts
	}

	return m, nil
}

func (m SessionsModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() {
		if info, ok := m.current(); ok {
			cmd = m.deleteLayout(info.TabID)
		}
	}
	m.confirm = nil
	return m, cmd
}

func (m SessionsModel) current() (entity.LayoutSnapshotInfo, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.layouts) {
		return entity.LayoutSnapshotInfo{}, false
	}
	return m.layouts[m.selectedIdx], true
}

func (m SessionsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.layouts)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		info, ok := m.current()
		if !ok {
			return m, nil
		}
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
			return m, nil
		}
		m.expandedIdx = m.selectedIdx
		if _, cached := m.snapshots[info.TabID]; cached {
			return m, nil
		}
		return m, m.loadLayout(info.TabID)

	case key.Matches(msg, m.keys.Restore):
		if info, ok := m.current(); ok {
			m.selected = info.TabID
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if info, ok := m.current(); ok {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete layout %s?", info.TabID))
			m.confirm = &confirm
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadLayouts

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m SessionsModel) deleteLayout(tabID entity.TabID) tea.Cmd {
	return func() tea.Msg {
		log := logging.FromContext(m.ctx)
		log.Info().Str("tab_id", string(tabID)).Msg("deleting layout")

		err := m.repo.Delete(m.ctx, tabID)
		return layoutDeletedMsg{tabID: tabID, err: err}
	}
}

// View implements tea.Model.
func (m SessionsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}

	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.layouts) == 0 {
		b.WriteString(t.Subtle.Render("  No saved layouts found."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderLayoutsList())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m SessionsModel) renderHeader() string {
	t := m.theme

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	titleStyle := t.Title.MarginLeft(1)

	panes := 0
	for _, l := range m.layouts {
		panes += l.PaneCount
	}

	stats := t.Subtle.Render(fmt.Sprintf("  %d layouts  %d panes", len(m.layouts), panes))
	return iconStyle.Render(styles.IconSessionStack) + titleStyle.Render("Saved layouts") + stats
}

func (m SessionsModel) renderLayoutsList() string {
	var b strings.Builder

	for i, info := range m.layouts {
		isSelected := i == m.selectedIdx
		isExpanded := i == m.expandedIdx

		b.WriteString(m.renderLayoutRow(info, isSelected))
		b.WriteString("\n")

		if isExpanded {
			b.WriteString(m.renderPreview(info.TabID))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m SessionsModel) renderLayoutRow(info entity.LayoutSnapshotInfo, isSelected bool) string {
	t := m.theme

	cursor := "  "
	idStyle := t.Normal
	if isSelected {
		cursor = t.Highlight.Render("> ")
		idStyle = t.Highlight
	}

	return fmt.Sprintf("%s%s  %s  %s",
		cursor,
		idStyle.Render(string(info.TabID)),
		t.BadgeMuted.Render(fmt.Sprintf("%d panes", info.PaneCount)),
		t.Subtle.Render(info.SavedAt.Local().Format(time.DateTime)),
	)
}

// renderPreview draws the stored tree as pane frames.
func (m SessionsModel) renderPreview(tabID entity.TabID) string {
	snap, ok := m.snapshots[tabID]
	if !ok {
		return m.theme.Subtle.Render("    loading...")
	}

	tree := snap.Tree()
	result := entity.Layout(tree, snap.FocusedPaneID, entity.LayoutOptions{
		Bounds: entity.Rect{W: previewWidth, H: previewHeight},
	})

	labels := make(map[entity.PaneID]PaneLabel)
	collectLabels(snap.Root, labels)

	c := NewCanvas(previewWidth, previewHeight)
	DrawLayout(c, m.theme, result, labels, nil)
	return lipgloss.NewStyle().MarginLeft(4).Render(c.String())
}

func collectLabels(n *entity.NodeSnapshot, labels map[entity.PaneID]PaneLabel) {
	if n == nil {
		return
	}
	if n.Type == entity.SnapshotPane {
		title := demo.TitleFromToken(n.Token)
		if title == "" {
			title = shortID(n.PaneID)
		}
		labels[n.PaneID] = PaneLabel{Title: title}
		return
	}
	for _, child := range n.Children {
		collectLabels(child, labels)
	}
}

func shortID(id entity.PaneID) string {
	const n = 8
	if len(id) <= n {
		return string(id)
	}
	return string(id[:n])
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*SessionsModel)(nil)
