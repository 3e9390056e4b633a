package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/port/mocks"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/ui/mainloop"
)

type testPane struct {
	id       entity.PaneID
	title    string
	canClose bool
	closeErr error
	focused  int
	blurred  int
	destroys int
}

func newTestPane(id string) *testPane {
	return &testPane{id: entity.PaneID(id), title: id, canClose: true}
}

func (p *testPane) ID() entity.PaneID { return p.id }
func (p *testPane) Title() string     { return p.title }
func (p *testPane) Focus()            { p.focused++ }
func (p *testPane) Blur()             { p.blurred++ }
func (p *testPane) Destroy()          { p.destroys++ }

func (p *testPane) CanClose(context.Context) (bool, error) {
	return p.canClose, p.closeErr
}

type recordingRenderer struct {
	results []entity.LayoutResult
}

func (r *recordingRenderer) ApplyLayout(_ context.Context, result entity.LayoutResult) {
	r.results = append(r.results, result)
}

type fixture struct {
	coord    *WorkspaceCoordinator
	loop     *mainloop.Loop
	renderer *recordingRenderer
	dup      *mocks.MockPaneDuplicator
}

func newFixture(t *testing.T, first port.Pane) *fixture {
	t.Helper()
	f := &fixture{
		loop:     mainloop.NewLoop(),
		renderer: &recordingRenderer{},
		dup:      mocks.NewMockPaneDuplicator(t),
	}
	coord, err := NewWorkspaceCoordinator(context.Background(), WorkspaceCoordinatorConfig{
		TabID:      "tab",
		First:      first,
		Duplicator: f.dup,
		Renderer:   f.renderer,
		Post:       f.loop.Post,
	})
	require.NoError(t, err)
	f.coord = coord
	f.loop.RunPending()
	return f
}

func (f *fixture) waitForPost(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool { return f.loop.Len() > 0 }, 2*time.Second, time.Millisecond)
	f.loop.RunPending()
}

func TestNewWorkspaceCoordinator(t *testing.T) {
	a := newTestPane("a")
	f := newFixture(t, a)

	require.Len(t, f.renderer.results, 1)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 100, H: 100, Opacity: 1}, f.renderer.results[0].Rects["a"])
	assert.Equal(t, 1, a.focused)
	assert.Equal(t, entity.PaneID("a"), f.coord.Focused())
	assert.Equal(t, "a", f.coord.Title())

	_, err := NewWorkspaceCoordinator(context.Background(), WorkspaceCoordinatorConfig{First: a})
	assert.Error(t, err, "post is required")

	_, err = NewWorkspaceCoordinator(context.Background(), WorkspaceCoordinatorConfig{Post: f.loop.Post})
	assert.Error(t, err, "a first pane is required")
}

func TestWorkspaceCoordinator_InsertCoalescesLayout(t *testing.T) {
	ctx := context.Background()
	a, b, c := newTestPane("a"), newTestPane("b"), newTestPane("c")
	f := newFixture(t, a)

	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	require.NoError(t, f.coord.Insert(ctx, c, "b", entity.DirBottom))
	f.loop.RunPending()

	require.Len(t, f.renderer.results, 2, "two mutations in one turn produce one layout pass")
	rects := f.renderer.results[1].Rects
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 50, H: 100, Opacity: 0.75}, rects["a"])
	assert.Equal(t, entity.Rect{X: 50, Y: 0, W: 50, H: 50, Opacity: 0.75}, rects["b"])
	assert.Equal(t, entity.Rect{X: 50, Y: 50, W: 50, H: 50, Opacity: 1}, rects["c"])

	assert.Equal(t, entity.PaneID("c"), f.coord.Focused())
	assert.Equal(t, 1, a.blurred)
	assert.Equal(t, 1, b.focused)
	assert.Equal(t, 1, b.blurred)
	assert.Equal(t, 1, c.focused)
	assert.Equal(t, "a | b | c", f.coord.Title())
}

func TestWorkspaceCoordinator_InsertDuplicateID(t *testing.T) {
	f := newFixture(t, newTestPane("a"))
	err := f.coord.Insert(context.Background(), newTestPane("a"), "a", entity.DirRight)
	assert.ErrorIs(t, err, usecase.ErrPaneExists)
}

func TestWorkspaceCoordinator_RemoveHandsFocusBack(t *testing.T) {
	ctx := context.Background()
	a, b := newTestPane("a"), newTestPane("b")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))

	var closed []entity.PaneID
	f.coord.SetOnPaneClosed(func(id entity.PaneID) { closed = append(closed, id) })

	require.NoError(t, f.coord.Remove(ctx, "b"))

	assert.Equal(t, entity.PaneID("a"), f.coord.Focused())
	assert.Equal(t, 2, a.focused)
	assert.Zero(t, b.destroys, "remove does not destroy")
	assert.Equal(t, []entity.PaneID{"b"}, closed)
	_, ok := f.coord.Pane("b")
	assert.False(t, ok)
}

func TestWorkspaceCoordinator_RemoveLastPaneClosesTab(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, newTestPane("a"))

	tabClosed := false
	f.coord.SetOnCloseLastPane(func(context.Context) { tabClosed = true })

	require.NoError(t, f.coord.Remove(ctx, "a"))
	assert.True(t, tabClosed)
	assert.True(t, f.coord.IsClosed())
	assert.ErrorIs(t, f.coord.Insert(ctx, newTestPane("b"), "a", entity.DirRight), ErrCoordinatorClosed)
}

func TestWorkspaceCoordinator_ClosePane(t *testing.T) {
	ctx := context.Background()
	a, b := newTestPane("a"), newTestPane("b")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))

	b.canClose = false
	ok, err := f.coord.ClosePane(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, f.coord.Panes(), 2)

	b.canClose = true
	ok, err = f.coord.ClosePane(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, b.destroys)
	assert.Len(t, f.coord.Panes(), 1)

	_, err = f.coord.ClosePane(ctx, "ghost")
	assert.ErrorIs(t, err, usecase.ErrPaneNotFound)
}

func TestWorkspaceCoordinator_CanClose(t *testing.T) {
	ctx := context.Background()
	a, b, c := newTestPane("a"), newTestPane("b"), newTestPane("c")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	require.NoError(t, f.coord.Insert(ctx, c, "b", entity.DirRight))

	ok, err := f.coord.CanClose(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	b.canClose = false
	ok, err = f.coord.CanClose(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	b.canClose = true
	c.closeErr = errors.New("busy")
	ok, err = f.coord.CanClose(ctx)
	assert.ErrorContains(t, err, "busy")
	assert.False(t, ok)

	for _, p := range []*testPane{a, b, c} {
		assert.Zero(t, p.destroys, "checking never tears panes down")
	}
}

func TestWorkspaceCoordinator_CloseAndDestroy(t *testing.T) {
	ctx := context.Background()
	a, b := newTestPane("a"), newTestPane("b")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))

	a.canClose = false
	ok, err := f.coord.Close(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, f.coord.IsClosed())

	a.canClose = true
	ok, err = f.coord.Close(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, f.coord.IsClosed())
	assert.Equal(t, 1, a.destroys)
	assert.Equal(t, 1, b.destroys)

	// A second teardown is a no-op.
	f.coord.Destroy(ctx)
	assert.Equal(t, 1, a.destroys)
}

func TestWorkspaceCoordinator_SplitPane(t *testing.T) {
	ctx := context.Background()
	a, dup := newTestPane("a"), newTestPane("a-copy")
	f := newFixture(t, a)

	f.dup.EXPECT().Duplicate(mock.Anything, port.Pane(a)).Return(dup, nil).Once()

	var got *SplitResult
	f.coord.SplitPane(ctx, "a", entity.DirBottom, func(res SplitResult) { got = &res })
	assert.Nil(t, got, "split completes asynchronously")

	f.waitForPost(t)

	require.NotNil(t, got)
	require.NoError(t, got.Err)
	assert.Same(t, dup, got.Pane)
	assert.Equal(t, []entity.PaneID{"a", "a-copy"}, f.coord.Workspace().Tree.Leaves())
	assert.Equal(t, entity.Vertical, f.coord.Workspace().Tree.Root.Orientation)
	assert.Equal(t, entity.PaneID("a-copy"), f.coord.Focused())
}

func TestWorkspaceCoordinator_SplitPaneDiscardedAfterClose(t *testing.T) {
	ctx := context.Background()
	a, dup := newTestPane("a"), newTestPane("a-copy")
	f := newFixture(t, a)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.dup.EXPECT().Duplicate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.Pane) (port.Pane, error) {
			close(entered)
			<-release
			return dup, nil
		}).Once()

	var got *SplitResult
	f.coord.SplitPane(ctx, "a", entity.DirRight, func(res SplitResult) { got = &res })
	<-entered
	f.coord.Destroy(ctx)
	close(release)

	f.waitForPost(t)

	require.NotNil(t, got)
	assert.ErrorIs(t, got.Err, ErrCoordinatorClosed)
	assert.Equal(t, 1, dup.destroys)
	assert.Equal(t, 1, a.destroys)
}

func TestWorkspaceCoordinator_SplitPaneFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate error", func(t *testing.T) {
		f := newFixture(t, newTestPane("a"))
		f.dup.EXPECT().Duplicate(mock.Anything, mock.Anything).Return(nil, errors.New("no shell")).Once()

		var got SplitResult
		f.coord.SplitPane(ctx, "a", entity.DirRight, func(res SplitResult) { got = res })
		f.waitForPost(t)

		assert.ErrorIs(t, got.Err, ErrDuplicateFailed)
		assert.ErrorContains(t, got.Err, "no shell")
		assert.Equal(t, 1, f.coord.Workspace().PaneCount())
	})

	t.Run("declined", func(t *testing.T) {
		f := newFixture(t, newTestPane("a"))
		f.dup.EXPECT().Duplicate(mock.Anything, mock.Anything).Return(nil, nil).Once()

		var got SplitResult
		f.coord.SplitPane(ctx, "a", entity.DirRight, func(res SplitResult) { got = res })
		f.waitForPost(t)

		assert.ErrorIs(t, got.Err, ErrDuplicateFailed)
		assert.Equal(t, 1, f.coord.Workspace().PaneCount())
	})

	t.Run("unknown relative", func(t *testing.T) {
		f := newFixture(t, newTestPane("a"))

		var got SplitResult
		f.coord.SplitPane(ctx, "ghost", entity.DirRight, func(res SplitResult) { got = res })
		assert.ErrorIs(t, got.Err, usecase.ErrPaneNotFound)
	})
}

func TestWorkspaceCoordinator_NavigateAndFocus(t *testing.T) {
	ctx := context.Background()
	a, b := newTestPane("a"), newTestPane("b")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))

	moved, err := f.coord.Navigate(ctx, entity.DirLeft)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, entity.PaneID("a"), f.coord.Focused())
	assert.Equal(t, 2, a.focused)

	moved, err = f.coord.Navigate(ctx, entity.DirTop)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, 2, a.focused, "no notification without a move")

	moved, err = f.coord.NavigateCycle(ctx, true)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, entity.PaneID("b"), f.coord.Focused())

	require.NoError(t, f.coord.Focus(ctx, "a"))
	assert.ErrorIs(t, f.coord.Focus(ctx, "ghost"), usecase.ErrPaneNotFound)
}

func TestWorkspaceCoordinator_TabFocus(t *testing.T) {
	ctx := context.Background()
	a, b := newTestPane("a"), newTestPane("b")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))

	f.coord.TabBlurred()
	assert.Equal(t, 2, a.blurred)
	assert.Equal(t, 1, b.blurred)

	f.coord.TabFocused()
	assert.Equal(t, 2, b.focused)
	assert.Equal(t, 1, a.focused)
}

func TestWorkspaceCoordinator_DragBoundary(t *testing.T) {
	ctx := context.Background()
	a, b := newTestPane("a"), newTestPane("b")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	f.loop.RunPending()

	boundary, ok := f.coord.BoundaryAt(50.5, 30, 1)
	require.True(t, ok)
	_, ok = f.coord.BoundaryAt(20, 30, 1)
	assert.False(t, ok)

	drag, err := f.coord.BeginDrag(ctx, boundary, 50)
	require.NoError(t, err)
	drag.Update(40)
	assert.True(t, f.coord.CommitDrag(ctx, drag))
	f.loop.RunPending()

	last := f.coord.LastLayout()
	assert.InDelta(t, 40, last.Rects["a"].W, 1e-9)
	assert.InDelta(t, 60, last.Rects["b"].W, 1e-9)

	require.NoError(t, f.coord.ResetBoundary(ctx, f.coord.LastLayout().Boundaries[0]))
	f.loop.RunPending()
	assert.InDelta(t, 50, f.coord.LastLayout().Rects["a"].W, 1e-9)

	id, ok := f.coord.PaneAt(75, 10)
	require.True(t, ok)
	assert.Equal(t, entity.PaneID("b"), id)
}

func ratioSum(n *entity.Node) float64 {
	sum := 0.0
	for _, r := range n.Ratios {
		sum += r
	}
	return sum
}

func TestWorkspaceCoordinator_DragCancelledByClose(t *testing.T) {
	ctx := context.Background()
	a, b, c := newTestPane("a"), newTestPane("b"), newTestPane("c")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	require.NoError(t, f.coord.Insert(ctx, c, "b", entity.DirRight))
	f.loop.RunPending()

	boundary, ok := f.coord.BoundaryAt(100.0/3, 50, 1)
	require.True(t, ok)
	require.Equal(t, 1, boundary.Index)

	drag, err := f.coord.BeginDrag(ctx, boundary, 100.0/3)
	require.NoError(t, err)
	drag.Update(100.0/3 + 5)

	closed, err := f.coord.ClosePane(ctx, "c")
	require.NoError(t, err)
	require.True(t, closed)
	assert.True(t, drag.Done(), "removing a pane cancels the active drag")

	assert.False(t, f.coord.CommitDrag(ctx, drag))
	tree := f.coord.Workspace().Tree
	require.NoError(t, tree.Validate())
	assert.InDelta(t, 1, ratioSum(tree.Root), 1e-9)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, tree.Root.Ratios, 1e-9)
}

func TestWorkspaceCoordinator_DragCancelledByInsert(t *testing.T) {
	ctx := context.Background()
	a, b, x := newTestPane("a"), newTestPane("b"), newTestPane("x")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	f.loop.RunPending()

	boundary, ok := f.coord.BoundaryAt(50, 50, 1)
	require.True(t, ok)
	drag, err := f.coord.BeginDrag(ctx, boundary, 50)
	require.NoError(t, err)
	drag.Update(60)

	require.NoError(t, f.coord.Insert(ctx, x, "a", entity.DirRight))
	assert.True(t, drag.Done())
	assert.True(t, drag.Stale())
	assert.Zero(t, drag.Delta())

	assert.False(t, f.coord.CommitDrag(ctx, drag))
	tree := f.coord.Workspace().Tree
	require.NoError(t, tree.Validate())
	assert.Equal(t, []entity.PaneID{"a", "x", "b"}, tree.Leaves())
	assert.InDelta(t, 1, ratioSum(tree.Root), 1e-9)
}

func TestWorkspaceCoordinator_DragAfterAsyncSplit(t *testing.T) {
	ctx := context.Background()
	a, b, dup := newTestPane("a"), newTestPane("b"), newTestPane("dup")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	f.loop.RunPending()

	f.dup.EXPECT().Duplicate(mock.Anything, mock.Anything).Return(dup, nil)

	boundary, ok := f.coord.BoundaryAt(50, 50, 1)
	require.True(t, ok)
	drag, err := f.coord.BeginDrag(ctx, boundary, 50)
	require.NoError(t, err)

	f.coord.SplitPane(ctx, "b", entity.DirRight, nil)
	drag.Update(70)
	f.waitForPost(t)

	assert.False(t, f.coord.CommitDrag(ctx, drag), "a split landing mid-drag cancels it")
	require.NoError(t, f.coord.Workspace().Tree.Validate())
}

func TestWorkspaceCoordinator_StaleBoundaryIgnored(t *testing.T) {
	ctx := context.Background()
	a, b, c := newTestPane("a"), newTestPane("b"), newTestPane("c")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	require.NoError(t, f.coord.Insert(ctx, c, "b", entity.DirBottom))
	f.loop.RunPending()

	var nested entity.Boundary
	for _, bd := range f.coord.LastLayout().Boundaries {
		if bd.Orientation() == entity.Vertical {
			nested = bd
		}
	}
	require.NotNil(t, nested.Container)

	// The nested split collapses before the next layout pass runs.
	require.NoError(t, f.coord.Remove(ctx, "c"))

	_, ok := f.coord.BoundaryAt(75, 50, 1)
	assert.False(t, ok)
	_, err := f.coord.BeginDrag(ctx, nested, 50)
	assert.ErrorIs(t, err, usecase.ErrInvalidBoundary)
	assert.ErrorIs(t, f.coord.ResetBoundary(ctx, nested), usecase.ErrInvalidBoundary)
}

func TestWorkspaceCoordinator_MovePane(t *testing.T) {
	ctx := context.Background()
	a, b, c := newTestPane("a"), newTestPane("b"), newTestPane("c")
	f := newFixture(t, a)
	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	require.NoError(t, f.coord.Insert(ctx, c, "b", entity.DirBottom))
	f.loop.RunPending()
	before := f.coord.LastLayout()

	changes := 0
	f.coord.SetOnStateChanged(func(context.Context) { changes++ })

	boundary, ok := f.coord.BoundaryAt(50, 20, 1)
	require.True(t, ok)
	drag, err := f.coord.BeginDrag(ctx, boundary, 50)
	require.NoError(t, err)

	zone, ok := f.coord.DropZoneAt(25, 95, "c")
	require.True(t, ok)
	assert.Equal(t, entity.PaneID("a"), zone.Relative)
	assert.Equal(t, entity.DirBottom, zone.Side)

	moved, err := f.coord.MovePane(ctx, "c", zone)
	require.NoError(t, err)
	require.True(t, moved)
	assert.True(t, drag.Done(), "a move cancels the active drag")
	assert.Equal(t, 1, changes)
	f.loop.RunPending()

	tree := f.coord.Workspace().Tree
	require.NoError(t, tree.Validate())
	assert.Equal(t, []entity.PaneID{"a", "c", "b"}, tree.Leaves())
	assert.Equal(t, entity.PaneID("c"), f.coord.Focused())
	assert.Equal(t, entity.Rect{X: 0, Y: 50, W: 50, H: 50, Opacity: 1}, f.coord.LastLayout().Rects["c"])
	assert.Equal(t, entity.Rect{X: 50, Y: 0, W: 50, H: 100, Opacity: 0.75}, f.coord.LastLayout().Rects["b"])

	// c is under the pointer now.
	_, ok = f.coord.DropZoneAt(25, 95, "c")
	assert.False(t, ok)
	moved, err = f.coord.MovePane(ctx, "c", entity.DropZone{Relative: "c", Side: entity.DirLeft})
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, 1, changes)

	// The split between b and c collapsed with the move.
	stale, ok := before.DropZoneAt(75, 50, "a")
	require.True(t, ok)
	require.True(t, stale.IsAbsolute())
	_, err = f.coord.MovePane(ctx, "a", stale)
	assert.ErrorIs(t, err, usecase.ErrInvalidDropZone)
	assert.Equal(t, []entity.PaneID{"a", "c", "b"}, tree.Leaves())
}

func TestWorkspaceCoordinator_MaximizeAndStateChanges(t *testing.T) {
	ctx := context.Background()
	a, b := newTestPane("a"), newTestPane("b")
	f := newFixture(t, a)

	changes := 0
	f.coord.SetOnStateChanged(func(context.Context) { changes++ })

	require.NoError(t, f.coord.Insert(ctx, b, "a", entity.DirRight))
	maximized, err := f.coord.ToggleMaximize(ctx)
	require.NoError(t, err)
	assert.True(t, maximized)
	f.loop.RunPending()

	rects := f.coord.LastLayout().Rects
	assert.Equal(t, 100.0, rects["b"].W)
	assert.True(t, rects["a"].IsEmpty())

	require.NoError(t, f.coord.Equalize(ctx))
	assert.Equal(t, 2, changes, "insert and equalize change the tree, maximize does not")
}

func TestWorkspaceCoordinator_Restored(t *testing.T) {
	loop := mainloop.NewLoop()
	a, b := newTestPane("a"), newTestPane("b")
	ws := &entity.Workspace{
		TabID:         "old",
		FocusedPaneID: "b",
		Tree: &entity.SplitTree{Root: &entity.Node{
			Kind:        entity.NodeContainer,
			Orientation: entity.Horizontal,
			Children:    []*entity.Node{entity.NewLeaf("a"), entity.NewLeaf("b")},
			Ratios:      []float64{0.3, 0.7},
		}},
	}

	coord, err := NewWorkspaceCoordinator(context.Background(), WorkspaceCoordinatorConfig{
		TabID: "tab",
		Restored: &usecase.RestoreLayoutOutput{
			Workspace: ws,
			Panes:     map[entity.PaneID]port.Pane{"a": a, "b": b},
		},
		Post: loop.Post,
	})
	require.NoError(t, err)
	loop.RunPending()

	assert.Equal(t, entity.TabID("tab"), coord.Workspace().TabID)
	assert.Equal(t, 1, b.focused)
	assert.InDelta(t, 30, coord.LastLayout().Rects["a"].W, 1e-9)

	_, err = NewWorkspaceCoordinator(context.Background(), WorkspaceCoordinatorConfig{
		Restored: &usecase.RestoreLayoutOutput{Workspace: ws, Panes: map[entity.PaneID]port.Pane{"a": a}},
		Post:     loop.Post,
	})
	assert.ErrorIs(t, err, usecase.ErrPaneNotFound)
}
