package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/cli/demo"
	"github.com/bnema/dumbterm/internal/cli/model"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
	"github.com/bnema/dumbterm/internal/ui/coordinator"
	"github.com/bnema/dumbterm/internal/ui/dispatcher"
	"github.com/bnema/dumbterm/internal/ui/input"
	"github.com/bnema/dumbterm/internal/ui/mainloop"
)

// PreviewOptions describes a scripted layout run.
type PreviewOptions struct {
	// Steps are hotkey names such as split-right or resize-pane-left.
	Steps  []string
	Width  int
	Height int
	// Canvas also draws the final layout as pane frames.
	Canvas bool
}

// PreviewResult is the state after the last step.
type PreviewResult struct {
	Layout       entity.LayoutResult
	Labels       map[entity.PaneID]model.PaneLabel
	Title        string
	LayoutPasses int
}

// layoutRecorder counts the layout passes the coordinator applied.
type layoutRecorder struct {
	passes int
}

func (r *layoutRecorder) ApplyLayout(context.Context, entity.LayoutResult) {
	r.passes++
}

// RunPreview replays steps against a fresh workspace of demo panes, without
// a terminal UI. The calling goroutine is the owner loop.
func RunPreview(ctx context.Context, cfg *PreviewConfig, opts PreviewOptions) (*PreviewResult, error) {
	ctx = logging.WithTab(logging.WithComponent(ctx, "preview"), "preview")
	log := logging.FromContext(ctx)

	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", opts.Width, opts.Height)
	}

	loop := mainloop.NewLoop()
	rec := &layoutRecorder{}
	coord, err := coordinator.NewWorkspaceCoordinator(ctx, coordinator.WorkspaceCoordinatorConfig{
		TabID: "preview",
		First: cfg.Factory.New(),
		PanesUC: usecase.NewManagePanesUseCase(usecase.ManagePanesOptions{
			EqualizeOnInsert: cfg.EqualizeOnInsert,
		}),
		ResizeUC:      usecase.NewResizeBoundaryUseCase(cfg.MinRatio, cfg.ResizeStep),
		Duplicator:    cfg.Factory,
		Renderer:      rec,
		Post:          loop.Post,
		Bounds:        entity.Rect{W: float64(opts.Width), H: float64(opts.Height), Opacity: 1},
		DimmedOpacity: cfg.DimmedOpacity,
	})
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	defer coord.Destroy(ctx)

	var (
		pending  int
		splitErr error
	)
	disp := dispatcher.NewKeyboardDispatcher(ctx, coord)
	disp.SetOnSplitDone(func(res coordinator.SplitResult) {
		pending--
		if res.Err != nil && splitErr == nil {
			splitErr = res.Err
		}
	})

	loop.RunPending()
	for i, step := range opts.Steps {
		action, err := input.ParseAction(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if _, ok := action.SplitDirection(); ok {
			pending++
		}
		if err := disp.Dispatch(ctx, action); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		if err := drain(ctx, loop, &pending); err != nil {
			return nil, err
		}
		if splitErr != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step, splitErr)
		}
		if coord.IsClosed() {
			log.Debug().Int("step", i+1).Msg("last pane closed, stopping preview")
			break
		}
	}

	res := &PreviewResult{
		Layout:       coord.LayoutNow(ctx),
		Labels:       make(map[entity.PaneID]model.PaneLabel),
		Title:        coord.Title(),
		LayoutPasses: rec.passes,
	}
	for id, p := range coord.PaneMap() {
		if dp, ok := p.(*demo.Pane); ok {
			res.Labels[id] = model.PaneLabel{Title: dp.Title(), Color: lipgloss.Color(dp.Color()), Busy: dp.Busy()}
		}
	}
	return res, nil
}

// drain runs the loop until no split is in flight.
func drain(ctx context.Context, loop *mainloop.Loop, pending *int) error {
	loop.RunPending()
	for *pending > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-loop.Ready():
			loop.RunPending()
		}
	}
	return nil
}

// PreviewConfig carries the layout settings and pane source of a preview.
type PreviewConfig struct {
	Factory          *demo.Factory
	MinRatio         float64
	ResizeStep       float64
	DimmedOpacity    float64
	EqualizeOnInsert bool
}

// NewPreviewConfig returns the preview settings of the loaded configuration.
func (a *App) NewPreviewConfig() *PreviewConfig {
	l := a.Config.Layout
	return &PreviewConfig{
		Factory:          a.NewFactory(),
		MinRatio:         l.MinRatio,
		ResizeStep:       l.ResizeStep,
		DimmedOpacity:    l.DimmedOpacity,
		EqualizeOnInsert: l.EqualizeOnInsert,
	}
}

// RenderPreview writes the rectangle table and, if asked, the canvas.
func RenderPreview(w io.Writer, theme *styles.Theme, res *PreviewResult, opts PreviewOptions) {
	ids := make([]entity.PaneID, 0, len(res.Layout.Rects))
	for id := range res.Layout.Rects {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b entity.PaneID) int {
		return compareRects(res.Layout.Rects[a], res.Layout.Rects[b])
	})

	t := styles.NewTableWriter(w, 3, 4, 5, 6, 7)
	t.AppendHeader(table.Row{"Pane", "Title", "X", "Y", "W", "H", "Opacity", "Focus"})
	for _, id := range ids {
		r := res.Layout.Rects[id]
		focus := ""
		if id == res.Layout.Focused {
			focus = "*"
		}
		t.AppendRow(table.Row{
			shortPaneID(id),
			res.Labels[id].Title,
			fmt.Sprintf("%.1f", r.X),
			fmt.Sprintf("%.1f", r.Y),
			fmt.Sprintf("%.1f", r.W),
			fmt.Sprintf("%.1f", r.H),
			fmt.Sprintf("%.2f", r.Opacity),
			focus,
		})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d panes", len(ids)), "", "", "", "", "", fmt.Sprintf("%d passes", res.LayoutPasses), ""})
	t.Render()

	if !opts.Canvas {
		return
	}
	c := model.NewCanvas(opts.Width, opts.Height)
	model.DrawLayout(c, theme, res.Layout, res.Labels, nil)
	fmt.Fprintln(w, c.Plain())
}

// compareRects orders rectangles top to bottom, then left to right.
func compareRects(a, b entity.Rect) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

func shortPaneID(id entity.PaneID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}
