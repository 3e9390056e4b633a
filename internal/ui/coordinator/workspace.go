package coordinator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
	"github.com/bnema/dumbterm/internal/ui/focus"
	"github.com/bnema/dumbterm/internal/ui/mainloop"
)

const (
	layoutKey      = "layout"
	titleSeparator = " | "
)

var (
	ErrCoordinatorClosed = errors.New("workspace coordinator closed")
	ErrDuplicateFailed   = errors.New("pane duplication failed")
	errCloseVetoed       = errors.New("close vetoed")
)

// WorkspaceCoordinator is the single owner of a tab's split tree. It keeps
// the pane registry in sync with the tree, drives focus notifications, and
// schedules layout passes.
//
// All methods must be called from the owner loop. Only pane duplication and
// close checks run elsewhere, and their results are posted back.
type WorkspaceCoordinator struct {
	panesUC    *usecase.ManagePanesUseCase
	resizeUC   *usecase.ResizeBoundaryUseCase
	duplicator port.PaneDuplicator
	renderer   port.LayoutRenderer
	post       func(func())

	ws            *entity.Workspace
	panes         map[entity.PaneID]port.Pane
	focus         *focus.Tracker
	layout        *mainloop.Coalescer
	bounds        entity.Rect
	dimmedOpacity float64
	lastLayout    entity.LayoutResult
	drag          *usecase.Drag
	closed        bool

	// Callbacks to avoid circular dependencies
	onCloseLastPane func(ctx context.Context)
	onStateChanged  func(ctx context.Context) // For layout snapshots
	onPaneClosed    func(paneID entity.PaneID)
}

// WorkspaceCoordinatorConfig holds configuration for WorkspaceCoordinator.
type WorkspaceCoordinatorConfig struct {
	TabID entity.TabID
	// First is the initial pane. Ignored when Restored is set.
	First    port.Pane
	Restored *usecase.RestoreLayoutOutput

	PanesUC    *usecase.ManagePanesUseCase
	ResizeUC   *usecase.ResizeBoundaryUseCase
	Duplicator port.PaneDuplicator
	Renderer   port.LayoutRenderer
	// Post runs a function on the owner loop.
	Post func(func())

	Bounds        entity.Rect
	DimmedOpacity float64
}

// NewWorkspaceCoordinator creates a coordinator holding either a single pane
// or a restored layout, and schedules the first layout pass.
func NewWorkspaceCoordinator(ctx context.Context, cfg WorkspaceCoordinatorConfig) (*WorkspaceCoordinator, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "coordinator"))

	if cfg.Post == nil {
		return nil, fmt.Errorf("post function is required")
	}
	if cfg.PanesUC == nil {
		cfg.PanesUC = usecase.NewManagePanesUseCase(usecase.ManagePanesOptions{})
	}
	if cfg.ResizeUC == nil {
		cfg.ResizeUC = usecase.NewResizeBoundaryUseCase(usecase.DefaultMinRatio, usecase.DefaultResizeStep)
	}

	c := &WorkspaceCoordinator{
		panesUC:       cfg.PanesUC,
		resizeUC:      cfg.ResizeUC,
		duplicator:    cfg.Duplicator,
		renderer:      cfg.Renderer,
		post:          cfg.Post,
		panes:         make(map[entity.PaneID]port.Pane),
		layout:        mainloop.NewCoalescer(cfg.Post),
		bounds:        cfg.Bounds,
		dimmedOpacity: cfg.DimmedOpacity,
	}
	c.focus = focus.NewTracker(c.Panes)

	switch {
	case cfg.Restored != nil && cfg.Restored.Workspace != nil:
		c.ws = cfg.Restored.Workspace
		if cfg.TabID != "" {
			c.ws.TabID = cfg.TabID
		}
		for id := range c.ws.Tree.AllLeaves() {
			pane, ok := cfg.Restored.Panes[id]
			if !ok {
				return nil, fmt.Errorf("restored pane %s: %w", id, usecase.ErrPaneNotFound)
			}
			c.panes[id] = pane
		}
	case cfg.First != nil:
		c.ws = entity.NewWorkspace(cfg.TabID, cfg.First.ID())
		c.panes[cfg.First.ID()] = cfg.First
	default:
		return nil, fmt.Errorf("first pane is required")
	}

	if focused, ok := c.panes[c.ws.FocusedPaneID]; ok {
		c.focus.Set(focused)
	}

	log.Debug().
		Str("tab_id", string(c.ws.TabID)).
		Int("pane_count", len(c.panes)).
		Msg("creating workspace coordinator")

	c.scheduleLayout(ctx)
	return c, nil
}

// SetOnCloseLastPane sets the callback for when the last pane leaves the tree.
// The owning tab is expected to close.
func (c *WorkspaceCoordinator) SetOnCloseLastPane(fn func(ctx context.Context)) {
	c.onCloseLastPane = fn
}

// SetOnStateChanged sets the callback for structural changes (for layout snapshots).
func (c *WorkspaceCoordinator) SetOnStateChanged(fn func(ctx context.Context)) {
	c.onStateChanged = fn
}

// SetOnPaneClosed sets a callback invoked after a pane is removed.
func (c *WorkspaceCoordinator) SetOnPaneClosed(fn func(paneID entity.PaneID)) {
	c.onPaneClosed = fn
}

func (c *WorkspaceCoordinator) notifyStateChanged(ctx context.Context) {
	if c.onStateChanged != nil {
		c.onStateChanged(ctx)
	}
}

// Workspace returns the live workspace. Callers must not mutate it.
func (c *WorkspaceCoordinator) Workspace() *entity.Workspace {
	return c.ws
}

// Pane returns the pane registered under id.
func (c *WorkspaceCoordinator) Pane(id entity.PaneID) (port.Pane, bool) {
	p, ok := c.panes[id]
	return p, ok
}

// Panes returns the panes in leaf order.
func (c *WorkspaceCoordinator) Panes() []port.Pane {
	if c.ws == nil {
		return nil
	}
	panes := make([]port.Pane, 0, len(c.panes))
	for id := range c.ws.Tree.AllLeaves() {
		if p, ok := c.panes[id]; ok {
			panes = append(panes, p)
		}
	}
	return panes
}

// PaneMap returns a copy of the pane registry.
func (c *WorkspaceCoordinator) PaneMap() map[entity.PaneID]port.Pane {
	m := make(map[entity.PaneID]port.Pane, len(c.panes))
	for id, p := range c.panes {
		m[id] = p
	}
	return m
}

// Focused returns the focused pane ID.
func (c *WorkspaceCoordinator) Focused() entity.PaneID {
	return c.ws.FocusedPaneID
}

// IsClosed reports whether the coordinator was torn down.
func (c *WorkspaceCoordinator) IsClosed() bool {
	return c.closed
}

// Title joins the distinct pane titles in leaf order.
func (c *WorkspaceCoordinator) Title() string {
	seen := make(map[string]bool)
	var titles []string
	for _, p := range c.Panes() {
		title := strings.TrimSpace(p.Title())
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		titles = append(titles, title)
	}
	return strings.Join(titles, titleSeparator)
}

// Insert places pane next to relative and focuses it.
func (c *WorkspaceCoordinator) Insert(ctx context.Context, pane port.Pane, relative entity.PaneID, dir entity.Direction) error {
	if c.closed {
		return ErrCoordinatorClosed
	}
	if pane == nil {
		return fmt.Errorf("pane is required")
	}

	_, err := c.panesUC.Insert(ctx, usecase.InsertInput{
		Workspace: c.ws,
		PaneID:    pane.ID(),
		Relative:  relative,
		Direction: dir,
	})
	if err != nil {
		return err
	}

	c.cancelDrag(ctx)
	c.panes[pane.ID()] = pane
	c.focus.Set(pane)
	c.scheduleLayout(ctx)
	c.notifyStateChanged(ctx)
	return nil
}

// SplitResult reports the outcome of an asynchronous split.
type SplitResult struct {
	Pane port.Pane
	Err  error
}

// SplitPane duplicates relative in the background and inserts the copy on
// the dir side once it is ready. done, if set, receives the outcome on the
// owner loop. If the coordinator closes first, the duplicate is destroyed.
func (c *WorkspaceCoordinator) SplitPane(ctx context.Context, relative entity.PaneID, dir entity.Direction, done func(SplitResult)) {
	log := logging.FromContext(ctx)

	deliver := func(res SplitResult) {
		if done != nil {
			done(res)
		}
	}
	if c.closed {
		deliver(SplitResult{Err: ErrCoordinatorClosed})
		return
	}
	source, ok := c.panes[relative]
	if !ok {
		deliver(SplitResult{Err: fmt.Errorf("split %s: %w", relative, usecase.ErrPaneNotFound)})
		return
	}
	if c.duplicator == nil {
		deliver(SplitResult{Err: fmt.Errorf("%w: no duplicator", ErrDuplicateFailed)})
		return
	}

	log.Debug().
		Str("relative", string(relative)).
		Str("direction", string(dir)).
		Msg("duplicating pane for split")

	go func() {
		dup, err := c.duplicator.Duplicate(ctx, source)
		c.post(func() {
			deliver(c.finishSplit(ctx, dup, err, relative, dir))
		})
	}()
}

func (c *WorkspaceCoordinator) finishSplit(ctx context.Context, dup port.Pane, err error, relative entity.PaneID, dir entity.Direction) SplitResult {
	log := logging.FromContext(ctx)

	if err != nil {
		log.Error().Err(err).Str("relative", string(relative)).Msg("pane duplication failed")
		if dup != nil {
			dup.Destroy()
		}
		return SplitResult{Err: fmt.Errorf("%w: %w", ErrDuplicateFailed, err)}
	}
	if dup == nil {
		log.Debug().Str("relative", string(relative)).Msg("pane duplication declined")
		return SplitResult{Err: fmt.Errorf("%w: declined", ErrDuplicateFailed)}
	}
	if c.closed {
		log.Debug().Str("pane_id", string(dup.ID())).Msg("coordinator closed during duplication, discarding pane")
		dup.Destroy()
		return SplitResult{Err: ErrCoordinatorClosed}
	}

	if err := c.Insert(ctx, dup, relative, dir); err != nil {
		dup.Destroy()
		return SplitResult{Err: err}
	}
	return SplitResult{Pane: dup}
}

// Remove takes a pane out of the tree without destroying it. When the tree
// empties, the close-last-pane callback fires.
func (c *WorkspaceCoordinator) Remove(ctx context.Context, id entity.PaneID) error {
	log := logging.FromContext(ctx)

	if c.closed {
		return ErrCoordinatorClosed
	}

	out, err := c.panesUC.Remove(ctx, c.ws, id)
	if err != nil {
		return err
	}
	c.cancelDrag(ctx)

	delete(c.panes, id)
	c.focus.Forget(id)
	if out.NewFocus != "" {
		if p, ok := c.panes[out.NewFocus]; ok {
			c.focus.Set(p)
		}
	}

	if c.onPaneClosed != nil {
		c.onPaneClosed(id)
	}

	if out.Empty {
		log.Debug().Str("tab_id", string(c.ws.TabID)).Msg("last pane removed, closing tab")
		c.closed = true
		c.layout.Destroy()
		if c.onCloseLastPane != nil {
			c.onCloseLastPane(ctx)
		}
		return nil
	}

	c.scheduleLayout(ctx)
	c.notifyStateChanged(ctx)
	return nil
}

// MovePane re-inserts a pane at a drop zone of the last layout pass and
// keeps it focused. Returns false when the zone leaves the pane in place.
func (c *WorkspaceCoordinator) MovePane(ctx context.Context, id entity.PaneID, zone entity.DropZone) (bool, error) {
	if c.closed {
		return false, ErrCoordinatorClosed
	}
	moved, err := c.panesUC.Move(ctx, c.ws, id, zone)
	if err != nil || !moved {
		return false, err
	}
	c.cancelDrag(ctx)
	c.applyFocus(ctx, id)
	c.notifyStateChanged(ctx)
	return true, nil
}

// DropZoneAt returns the drop zone of the last layout pass under the point
// that would move dragged.
func (c *WorkspaceCoordinator) DropZoneAt(x, y float64, dragged entity.PaneID) (entity.DropZone, bool) {
	z, ok := c.lastLayout.DropZoneAt(x, y, dragged)
	if !ok || (z.IsAbsolute() && !c.ws.Tree.Attached(z.Container)) {
		return entity.DropZone{}, false
	}
	return z, true
}

// ClosePane asks a pane whether it may close, then removes and destroys it.
// Returns false when the pane vetoed.
func (c *WorkspaceCoordinator) ClosePane(ctx context.Context, id entity.PaneID) (bool, error) {
	log := logging.FromContext(ctx)

	if c.closed {
		return false, ErrCoordinatorClosed
	}
	pane, ok := c.panes[id]
	if !ok {
		return false, fmt.Errorf("close %s: %w", id, usecase.ErrPaneNotFound)
	}

	ok, err := pane.CanClose(ctx)
	if err != nil {
		return false, fmt.Errorf("close %s: %w", id, err)
	}
	if !ok {
		log.Debug().Str("pane_id", string(id)).Msg("pane refused to close")
		return false, nil
	}

	if err := c.Remove(ctx, id); err != nil {
		return false, err
	}
	pane.Destroy()
	return true, nil
}

// Navigate moves focus to the neighbour in dir. Returns whether focus moved.
func (c *WorkspaceCoordinator) Navigate(ctx context.Context, dir entity.Direction) (bool, error) {
	if c.closed {
		return false, ErrCoordinatorClosed
	}
	id, moved, err := c.panesUC.Navigate(ctx, c.ws, dir)
	if err != nil || !moved {
		return false, err
	}
	c.applyFocus(ctx, id)
	return true, nil
}

// NavigateCycle moves focus to the next or previous pane in leaf order.
func (c *WorkspaceCoordinator) NavigateCycle(ctx context.Context, forward bool) (bool, error) {
	if c.closed {
		return false, ErrCoordinatorClosed
	}
	id, moved, err := c.panesUC.NavigateCycle(ctx, c.ws, forward)
	if err != nil || !moved {
		return false, err
	}
	c.applyFocus(ctx, id)
	return true, nil
}

// Focus focuses a pane, e.g. after a click.
func (c *WorkspaceCoordinator) Focus(ctx context.Context, id entity.PaneID) error {
	if c.closed {
		return ErrCoordinatorClosed
	}
	if err := c.panesUC.Focus(ctx, c.ws, id); err != nil {
		return err
	}
	c.applyFocus(ctx, id)
	return nil
}

func (c *WorkspaceCoordinator) applyFocus(ctx context.Context, id entity.PaneID) {
	if p, ok := c.panes[id]; ok {
		c.focus.Set(p)
	}
	c.scheduleLayout(ctx)
}

// TabFocused re-applies focus to the focused pane when the tab gains focus.
func (c *WorkspaceCoordinator) TabFocused() {
	c.focus.TabFocused()
}

// TabBlurred blurs every pane when the tab loses focus.
func (c *WorkspaceCoordinator) TabBlurred() {
	c.focus.TabBlurred()
}

// ToggleMaximize shows the focused pane alone, or restores the layout.
func (c *WorkspaceCoordinator) ToggleMaximize(ctx context.Context) (bool, error) {
	if c.closed {
		return false, ErrCoordinatorClosed
	}
	maximized, err := c.panesUC.ToggleMaximize(ctx, c.ws)
	if err != nil {
		return false, err
	}
	c.scheduleLayout(ctx)
	return maximized, nil
}

// Equalize evens out every container.
func (c *WorkspaceCoordinator) Equalize(ctx context.Context) error {
	if c.closed {
		return ErrCoordinatorClosed
	}
	if err := c.panesUC.Equalize(ctx, c.ws); err != nil {
		return err
	}
	c.scheduleLayout(ctx)
	c.notifyStateChanged(ctx)
	return nil
}

// ResizeFocused moves the focused pane's nearest boundary one step in dir.
func (c *WorkspaceCoordinator) ResizeFocused(ctx context.Context, dir entity.Direction) error {
	if c.closed {
		return ErrCoordinatorClosed
	}
	if err := c.resizeUC.ResizeFocused(ctx, c.ws, dir); err != nil {
		return err
	}
	c.scheduleLayout(ctx)
	c.notifyStateChanged(ctx)
	return nil
}

// BeginDrag starts dragging a boundary from the last layout pass.
// startCoord is in the same unit as the layout bounds. Only one drag is
// active at a time; structural changes cancel it.
func (c *WorkspaceCoordinator) BeginDrag(ctx context.Context, b entity.Boundary, startCoord float64) (*usecase.Drag, error) {
	if c.closed {
		return nil, ErrCoordinatorClosed
	}
	if !c.ws.Tree.Attached(b.Container) {
		return nil, fmt.Errorf("%w: container left the tree", usecase.ErrInvalidBoundary)
	}
	d, err := c.resizeUC.BeginDrag(ctx, b.Container, b.Index, startCoord, b.AxisLength())
	if err != nil {
		return nil, err
	}
	c.cancelDrag(ctx)
	c.drag = d
	return d, nil
}

func (c *WorkspaceCoordinator) cancelDrag(ctx context.Context) {
	if c.drag == nil {
		return
	}
	if !c.drag.Done() {
		logging.FromContext(ctx).Debug().Msg("boundary drag cancelled by tree change")
		c.drag.Cancel()
	}
	c.drag = nil
}

// BoundaryAt returns the boundary of the last layout pass within tolerance
// of the point, preferring the closest one.
func (c *WorkspaceCoordinator) BoundaryAt(x, y, tolerance float64) (entity.Boundary, bool) {
	var (
		best  entity.Boundary
		found bool
		dist  = tolerance
	)
	for _, b := range c.lastLayout.Boundaries {
		if b.Index >= len(b.Container.Children) || !c.ws.Tree.Attached(b.Container) {
			continue
		}
		var d float64
		if b.Container.Orientation == entity.Horizontal {
			if y < b.Rect.Y || y > b.Rect.Y+b.Rect.H {
				continue
			}
			d = math.Abs(x - b.Rect.X)
		} else {
			if x < b.Rect.X || x > b.Rect.X+b.Rect.W {
				continue
			}
			d = math.Abs(y - b.Rect.Y)
		}
		if d <= dist {
			best, found, dist = b, true, d
		}
	}
	return best, found
}

// PaneAt returns the visible pane under the point.
func (c *WorkspaceCoordinator) PaneAt(x, y float64) (entity.PaneID, bool) {
	for id, r := range c.lastLayout.Rects {
		if !r.IsEmpty() && r.Contains(x, y) {
			return id, true
		}
	}
	return "", false
}

// CommitDrag applies a finished drag and relayouts. A drag whose container
// left the tree or changed shape is dropped.
func (c *WorkspaceCoordinator) CommitDrag(ctx context.Context, d *usecase.Drag) bool {
	if d == nil {
		return false
	}
	if c.drag == d {
		c.drag = nil
	}
	if c.closed || !c.ws.Tree.Attached(d.Container()) {
		d.Cancel()
		return false
	}
	if !d.Commit(ctx) {
		return false
	}
	c.scheduleLayout(ctx)
	c.notifyStateChanged(ctx)
	return true
}

// ResetBoundary evens out the two panes around a boundary.
func (c *WorkspaceCoordinator) ResetBoundary(ctx context.Context, b entity.Boundary) error {
	if c.closed {
		return ErrCoordinatorClosed
	}
	if !c.ws.Tree.Attached(b.Container) {
		return fmt.Errorf("%w: container left the tree", usecase.ErrInvalidBoundary)
	}
	if err := c.resizeUC.Reset(ctx, b.Container, b.Index); err != nil {
		return err
	}
	c.scheduleLayout(ctx)
	c.notifyStateChanged(ctx)
	return nil
}

// SetBounds changes the area the tab occupies and relayouts.
func (c *WorkspaceCoordinator) SetBounds(ctx context.Context, bounds entity.Rect) {
	c.bounds = bounds
	c.scheduleLayout(ctx)
}

// SetDimmedOpacity changes the opacity of unfocused panes and relayouts.
func (c *WorkspaceCoordinator) SetDimmedOpacity(ctx context.Context, opacity float64) {
	if c.dimmedOpacity == opacity {
		return
	}
	c.dimmedOpacity = opacity
	c.scheduleLayout(ctx)
}

// LastLayout returns the result of the most recent layout pass.
func (c *WorkspaceCoordinator) LastLayout() entity.LayoutResult {
	return c.lastLayout
}

// scheduleLayout defers a layout pass to the next loop turn. Several
// mutations in one turn produce a single pass.
func (c *WorkspaceCoordinator) scheduleLayout(ctx context.Context) {
	c.layout.Post(layoutKey, func() { c.LayoutNow(ctx) })
}

// LayoutNow computes rectangles immediately and hands them to the renderer.
func (c *WorkspaceCoordinator) LayoutNow(ctx context.Context) entity.LayoutResult {
	if c.closed {
		return c.lastLayout
	}
	c.lastLayout = entity.Layout(c.ws.Tree, c.ws.FocusedPaneID, entity.LayoutOptions{
		Bounds:        c.bounds,
		DimmedOpacity: c.dimmedOpacity,
		Maximized:     c.ws.MaximizedPaneID,
	})

	logging.FromContext(ctx).Trace().
		Int("rects", len(c.lastLayout.Rects)).
		Int("boundaries", len(c.lastLayout.Boundaries)).
		Msg("layout pass")

	if c.renderer != nil {
		c.renderer.ApplyLayout(ctx, c.lastLayout)
	}
	return c.lastLayout
}

// CanClose asks every pane concurrently. Any refusal or error vetoes.
func (c *WorkspaceCoordinator) CanClose(ctx context.Context) (bool, error) {
	panes := c.Panes()

	g, gctx := errgroup.WithContext(ctx)
	var vetoes atomic.Int32
	for _, p := range panes {
		g.Go(func() error {
			ok, err := p.CanClose(gctx)
			if err != nil {
				return fmt.Errorf("pane %s: %w", p.ID(), err)
			}
			if !ok {
				vetoes.Add(1)
				return errCloseVetoed
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, errCloseVetoed) {
			logging.FromContext(ctx).Debug().Int32("vetoes", vetoes.Load()).Msg("tab close vetoed")
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Close tears the tab down when every pane agrees. Returns false on veto.
func (c *WorkspaceCoordinator) Close(ctx context.Context) (bool, error) {
	if c.closed {
		return true, nil
	}
	ok, err := c.CanClose(ctx)
	if err != nil || !ok {
		return false, err
	}
	c.Destroy(ctx)
	return true, nil
}

// Destroy tears down every pane unconditionally.
func (c *WorkspaceCoordinator) Destroy(ctx context.Context) {
	if c.closed && len(c.panes) == 0 {
		return
	}
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(c.ws.TabID)).
		Int("pane_count", len(c.panes)).
		Msg("destroying workspace")

	c.closed = true
	c.layout.Destroy()
	for _, p := range c.Panes() {
		p.Destroy()
	}
	c.panes = make(map[entity.PaneID]port.Pane)
}
