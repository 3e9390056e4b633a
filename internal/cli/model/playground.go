package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/cli/demo"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
	"github.com/bnema/dumbterm/internal/logging"
	"github.com/bnema/dumbterm/internal/ui/coordinator"
	"github.com/bnema/dumbterm/internal/ui/dispatcher"
	"github.com/bnema/dumbterm/internal/ui/input"
	"github.com/bnema/dumbterm/internal/ui/mainloop"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// dragTolerance is how far from a boundary, in cells, a press grabs it.
	dragTolerance = 1.0
)

// SaveFunc persists the current layout of a workspace.
type SaveFunc func(ctx context.Context, ws *entity.Workspace, panes map[entity.PaneID]port.Pane) error

// PlaygroundConfig holds configuration for the playground model.
type PlaygroundConfig struct {
	TabID    entity.TabID
	Config   *config.Config
	Factory  *demo.Factory
	Restored *usecase.RestoreLayoutOutput
	// Save is bound to ctrl+s. With SaveOnExit it also runs on a clean quit.
	Save       SaveFunc
	SaveOnExit bool
}

// ConfigChangedMsg carries a reloaded configuration into the program.
type ConfigChangedMsg struct {
	Config *config.Config
}

// loopReadyMsg is sent when work was posted to the owner loop from another
// goroutine.
type loopReadyMsg struct{}

// PlaygroundModel is the Bubble Tea model of the interactive layout
// playground. Bubble Tea's update goroutine is the owner loop of the
// workspace coordinator.
type PlaygroundModel struct {
	ctx   context.Context
	theme *styles.Theme

	loop       *mainloop.Loop
	coord      *coordinator.WorkspaceCoordinator
	dispatcher *dispatcher.KeyboardDispatcher
	shortcuts  *input.ShortcutSet
	factory    *demo.Factory

	keys     styles.PlaygroundKeyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	drag         *usecase.Drag
	dragBoundary entity.Boundary

	// moving is the pane whose title was grabbed; dropZone is the target
	// under the pointer, if any.
	moving   entity.PaneID
	dropZone *entity.DropZone

	save       SaveFunc
	saveOnExit bool

	status   string
	quitting bool
}

// NewPlaygroundModel builds a workspace holding either a fresh demo pane or
// a restored layout.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, cfg PlaygroundConfig) (*PlaygroundModel, error) {
	if cfg.Config == nil {
		cfg.Config = config.DefaultConfig()
	}
	if cfg.Factory == nil {
		cfg.Factory = demo.NewFactory(paneColors(theme))
	}
	if cfg.TabID == "" {
		cfg.TabID = "default"
	}

	m := &PlaygroundModel{
		ctx:        ctx,
		theme:      theme,
		loop:       mainloop.NewLoop(),
		factory:    cfg.Factory,
		keys:       styles.DefaultPlaygroundKeyMap(),
		help:       styles.NewStyledHelp(theme),
		width:      defaultWidth,
		height:     defaultHeight,
		save:       cfg.Save,
		saveOnExit: cfg.SaveOnExit,
	}

	wsCfg := coordinator.WorkspaceCoordinatorConfig{
		TabID:    cfg.TabID,
		Restored: cfg.Restored,
		PanesUC: usecase.NewManagePanesUseCase(usecase.ManagePanesOptions{
			EqualizeOnInsert: cfg.Config.Layout.EqualizeOnInsert,
		}),
		ResizeUC:      usecase.NewResizeBoundaryUseCase(cfg.Config.Layout.MinRatio, cfg.Config.Layout.ResizeStep),
		Duplicator:    cfg.Factory,
		Post:          m.loop.Post,
		Bounds:        m.canvasBounds(),
		DimmedOpacity: cfg.Config.Layout.DimmedOpacity,
	}
	if cfg.Restored == nil {
		wsCfg.First = cfg.Factory.New()
	}

	coord, err := coordinator.NewWorkspaceCoordinator(ctx, wsCfg)
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	coord.SetOnCloseLastPane(func(context.Context) {
		m.quitting = true
	})
	m.coord = coord

	m.dispatcher = dispatcher.NewKeyboardDispatcher(ctx, coord)
	m.dispatcher.SetOnSplitDone(func(res coordinator.SplitResult) {
		if res.Err != nil {
			m.status = fmt.Sprintf("split failed: %v", res.Err)
			return
		}
		m.status = "opened " + res.Pane.Title()
	})
	m.applyConfig(cfg.Config)

	m.loop.RunPending()
	return m, nil
}

func paneColors(theme *styles.Theme) []string {
	colors := make([]string, len(theme.PaneColors))
	for i, c := range theme.PaneColors {
		colors[i] = string(c)
	}
	return colors
}

// Coordinator exposes the workspace for callers driving the model directly.
func (m *PlaygroundModel) Coordinator() *coordinator.WorkspaceCoordinator {
	return m.coord
}

func (m *PlaygroundModel) applyConfig(cfg *config.Config) {
	m.shortcuts = input.NewShortcutSet(m.ctx, cfg)
	m.keys.Layout = layoutBindings(m.shortcuts)
	m.coord.SetDimmedOpacity(m.ctx, cfg.Layout.DimmedOpacity)
}

// layoutBindings describes the configured pane hotkeys for the help view.
func layoutBindings(s *input.ShortcutSet) []key.Binding {
	var bindings []key.Binding
	for _, a := range input.Actions() {
		keys := s.Keys(a)
		if len(keys) == 0 {
			continue
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), string(a)),
		))
	}
	return bindings
}

func (m *PlaygroundModel) canvasBounds() entity.Rect {
	return entity.Rect{W: float64(m.width), H: float64(max(m.height-1, 1))}
}

// Init implements tea.Model.
func (m *PlaygroundModel) Init() tea.Cmd {
	return m.waitForLoop
}

// waitForLoop blocks until another goroutine posts to the loop.
func (m *PlaygroundModel) waitForLoop() tea.Msg {
	select {
	case <-m.loop.Ready():
		return loopReadyMsg{}
	case <-m.ctx.Done():
		return nil
	}
}

// Update implements tea.Model.
func (m *PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.loop.RunPending()

	if m.quitting && cmd == nil {
		m.coord.Destroy(m.ctx)
		return m, tea.Quit
	}
	return m, cmd
}

func (m *PlaygroundModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loopReadyMsg:
		return m.waitForLoop

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.coord.SetBounds(m.ctx, m.canvasBounds())

	case tea.FocusMsg:
		m.coord.TabFocused()

	case tea.BlurMsg:
		m.coord.TabBlurred()

	case ConfigChangedMsg:
		if msg.Config != nil {
			m.applyConfig(msg.Config)
			m.status = "config reloaded"
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return nil
}

func (m *PlaygroundModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	log := logging.FromContext(m.ctx)

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		m.coord.Destroy(m.ctx)
		return tea.Quit

	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil

	case key.Matches(msg, m.keys.ResetBorder):
		m.resetFocusedBoundary()
		return nil

	case key.Matches(msg, m.keys.ToggleBusy):
		if p, ok := m.focusedDemoPane(); ok {
			p.SetBusy(!p.Busy())
		}
		return nil

	case key.Matches(msg, m.keys.Save):
		m.saveLayout()
		return nil
	}

	action, ok := m.shortcuts.Lookup(msg.String())
	if !ok {
		return nil
	}
	if err := m.dispatcher.Dispatch(m.ctx, action); err != nil {
		log.Debug().Err(err).Str("action", string(action)).Msg("action failed")
		m.status = err.Error()
		return nil
	}
	m.status = ""
	return nil
}

func (m *PlaygroundModel) quit() tea.Cmd {
	ok, err := m.coord.CanClose(m.ctx)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	if !ok {
		m.status = "a pane is busy, press ctrl+c to force quit"
		return nil
	}
	if m.saveOnExit {
		m.saveLayout()
	}
	m.quitting = true
	m.coord.Destroy(m.ctx)
	return tea.Quit
}

func (m *PlaygroundModel) saveLayout() {
	if m.save == nil {
		m.status = "saving is disabled"
		return
	}
	if err := m.save(m.ctx, m.coord.Workspace(), m.coord.PaneMap()); err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to save layout")
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "layout saved"
}

func (m *PlaygroundModel) focusedDemoPane() (*demo.Pane, bool) {
	pane, ok := m.coord.Pane(m.coord.Focused())
	if !ok {
		return nil, false
	}
	p, ok := pane.(*demo.Pane)
	return p, ok
}

// resetFocusedBoundary evens out the boundary left of the focused pane, or
// above it when there is none.
func (m *PlaygroundModel) resetFocusedBoundary() {
	r, ok := m.coord.LastLayout().Rects[m.coord.Focused()]
	if !ok || r.IsEmpty() {
		return
	}
	b, found := m.coord.BoundaryAt(r.X, r.Y+r.H/2, 0.5)
	if !found {
		b, found = m.coord.BoundaryAt(r.X+r.W/2, r.Y, 0.5)
	}
	if !found {
		m.status = "no border to reset"
		return
	}
	if err := m.coord.ResetBoundary(m.ctx, b); err != nil {
		m.status = err.Error()
	}
}

func (m *PlaygroundModel) handleMouse(msg tea.MouseMsg) {
	// Cell centers.
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if id, ok := m.titleAt(msg.X, msg.Y); ok {
			if err := m.coord.Focus(m.ctx, id); err != nil {
				m.status = err.Error()
				return
			}
			m.moving, m.dropZone = id, nil
			m.status = "moving " + m.paneTitle(id)
			return
		}
		if b, ok := m.coord.BoundaryAt(x, y, dragTolerance); ok {
			drag, err := m.coord.BeginDrag(m.ctx, b, axisCoord(b, x, y))
			if err != nil {
				m.status = err.Error()
				return
			}
			m.drag, m.dragBoundary = drag, b
			return
		}
		if id, ok := m.coord.PaneAt(x, y); ok {
			if err := m.coord.Focus(m.ctx, id); err != nil {
				m.status = err.Error()
			}
		}

	case tea.MouseActionMotion:
		if m.moving != "" {
			m.trackDrop(x, y)
			return
		}
		if m.drag == nil {
			return
		}
		if m.drag.Done() {
			m.drag = nil
			m.status = "resize cancelled, layout changed"
			return
		}
		m.drag.Update(axisCoord(m.dragBoundary, x, y))
		m.status = formatRatios(m.drag.Preview())

	case tea.MouseActionRelease:
		if m.moving != "" {
			m.trackDrop(x, y)
			m.finishMove()
			return
		}
		if m.drag == nil {
			return
		}
		m.drag.Update(axisCoord(m.dragBoundary, x, y))
		if m.coord.CommitDrag(m.ctx, m.drag) {
			m.status = formatRatios(m.dragBoundary.Container.Ratios)
		} else if m.drag.Stale() {
			m.status = "resize cancelled, layout changed"
		}
		m.drag = nil
	}
}

// titleAt returns the pane whose title, as drawn by DrawLayout, covers the cell.
func (m *PlaygroundModel) titleAt(x, y int) (entity.PaneID, bool) {
	for id, r := range m.coord.LastLayout().Rects {
		if r.IsEmpty() {
			continue
		}
		x0, x1 := cellSpan(r.X, r.W)
		y0, _ := cellSpan(r.Y, r.H)
		width := min(len([]rune(" "+m.paneTitle(id)+" ")), x1-x0-3)
		if y == y0 && x >= x0+2 && x < x0+2+width {
			return id, true
		}
	}
	return "", false
}

func (m *PlaygroundModel) trackDrop(x, y float64) {
	zone, ok := m.coord.DropZoneAt(x, y, m.moving)
	if !ok {
		m.dropZone = nil
		m.status = "moving " + m.paneTitle(m.moving)
		return
	}
	m.dropZone = &zone
	m.status = "drop " + m.paneTitle(m.moving) + " " + m.describeZone(zone)
}

func (m *PlaygroundModel) finishMove() {
	id, zone := m.moving, m.dropZone
	m.moving, m.dropZone = "", nil
	if zone == nil {
		m.status = ""
		return
	}
	moved, err := m.coord.MovePane(m.ctx, id, *zone)
	switch {
	case err != nil:
		logging.FromContext(m.ctx).Debug().Err(err).Str("pane_id", string(id)).Msg("move failed")
		m.status = err.Error()
	case moved:
		m.status = "moved " + m.paneTitle(id)
	default:
		m.status = ""
	}
}

func (m *PlaygroundModel) describeZone(z entity.DropZone) string {
	if z.IsAbsolute() {
		return fmt.Sprintf("into %s slot %d", z.Container.Orientation, z.Position+1)
	}
	return fmt.Sprintf("%s of %s", z.Side, m.paneTitle(z.Relative))
}

func (m *PlaygroundModel) paneTitle(id entity.PaneID) string {
	if p, ok := m.coord.Pane(id); ok && p.Title() != "" {
		return p.Title()
	}
	return string(id)
}

func axisCoord(b entity.Boundary, x, y float64) float64 {
	if b.Orientation() == entity.Vertical {
		return y
	}
	return x
}

func formatRatios(ratios []float64) string {
	parts := make([]string, len(ratios))
	for i, r := range ratios {
		parts[i] = fmt.Sprintf("%.2f", r)
	}
	return "ratios " + strings.Join(parts, " ")
}

// View implements tea.Model.
func (m *PlaygroundModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Title.Render("Layout playground"),
			"",
			m.help.FullHelpView(m.keys.FullHelp()),
			"",
			m.statusLine(),
		)
	}
	return m.renderCanvas(false) + "\n" + m.statusLine()
}

func (m *PlaygroundModel) renderCanvas(plain bool) string {
	bounds := m.canvasBounds()
	c := NewCanvas(int(bounds.W), int(bounds.H))

	var active *entity.Boundary
	if m.drag != nil {
		b := m.dragBoundary
		active = &b
	}
	DrawLayout(c, m.theme, m.coord.LastLayout(), m.labels(), active)
	if m.dropZone != nil {
		DrawDropZone(c, m.theme, *m.dropZone)
	}
	if plain {
		return c.Plain()
	}
	return c.String()
}

func (m *PlaygroundModel) labels() map[entity.PaneID]PaneLabel {
	panes := m.coord.PaneMap()
	labels := make(map[entity.PaneID]PaneLabel, len(panes))
	for id, p := range panes {
		label := PaneLabel{Title: p.Title()}
		if dp, ok := p.(*demo.Pane); ok {
			label.Color = lipgloss.Color(dp.Color())
			label.Busy = dp.Busy()
		}
		labels[id] = label
	}
	return labels
}

func (m *PlaygroundModel) statusLine() string {
	parts := []string{
		m.theme.Badge.Render(m.coord.Title()),
		m.theme.BadgeMuted.Render(fmt.Sprintf("%d panes", m.coord.Workspace().PaneCount())),
	}
	if m.coord.Workspace().IsMaximized() {
		parts = append(parts, m.theme.WarningStyle.Render("maximized"))
	}
	if m.status != "" {
		parts = append(parts, m.theme.Subtle.Render(m.status))
	}
	parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))
	return m.theme.StatusBar.Render(strings.Join(parts, " "))
}
