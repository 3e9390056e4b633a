package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

const (
	// DefaultMinRatio is the smallest share a boundary drag may leave a pane.
	DefaultMinRatio = 0.1
	// DefaultResizeStep is the ratio moved by one keyboard resize.
	DefaultResizeStep = 0.1
)

var (
	ErrNothingToResize = errors.New("nothing to resize")
	ErrInvalidBoundary = errors.New("invalid boundary")
)

// ResizeBoundaryUseCase moves the boundary between two adjacent children of
// a container. Only the two neighbours change, so the container's ratio sum
// is preserved.
type ResizeBoundaryUseCase struct {
	minRatio float64
	step     float64
}

// NewResizeBoundaryUseCase creates a resize use case. Non-positive values fall
// back to the defaults.
func NewResizeBoundaryUseCase(minRatio, step float64) *ResizeBoundaryUseCase {
	if minRatio <= 0 || minRatio >= 0.5 {
		minRatio = DefaultMinRatio
	}
	if step <= 0 || step >= 1 {
		step = DefaultResizeStep
	}
	return &ResizeBoundaryUseCase{minRatio: minRatio, step: step}
}

// MinRatio returns the configured minimum share.
func (uc *ResizeBoundaryUseCase) MinRatio() float64 {
	return uc.minRatio
}

// Drag is an in-flight boundary drag. Ratios stay untouched until Commit.
// The drag is bound to the two children around the boundary: once the
// container gains, loses or reorders children it can no longer commit.
type Drag struct {
	uc         *ResizeBoundaryUseCase
	container  *entity.Node
	index      int
	children   int
	left       *entity.Node
	right      *entity.Node
	start      float64
	axisLength float64
	offset     float64
	done       bool
}

func checkBoundary(container *entity.Node, index int) error {
	if container == nil || !container.IsContainer() {
		return fmt.Errorf("%w: not a container", ErrInvalidBoundary)
	}
	if index < 1 || index >= len(container.Children) || len(container.Ratios) != len(container.Children) {
		return fmt.Errorf("%w: index %d of %d children", ErrInvalidBoundary, index, len(container.Children))
	}
	return nil
}

// BeginDrag starts dragging the boundary between children index-1 and index.
// startCoord is the pointer position along the container's axis and
// axisLength the container's extent along it, both in the same unit.
func (uc *ResizeBoundaryUseCase) BeginDrag(ctx context.Context, container *entity.Node, index int, startCoord, axisLength float64) (*Drag, error) {
	if err := checkBoundary(container, index); err != nil {
		return nil, err
	}
	if axisLength <= 0 {
		return nil, fmt.Errorf("%w: axis length %v", ErrInvalidBoundary, axisLength)
	}

	logging.FromContext(ctx).Debug().
		Str("orientation", container.Orientation.String()).
		Int("index", index).
		Msg("boundary drag started")

	return &Drag{
		uc:         uc,
		container:  container,
		index:      index,
		children:   len(container.Children),
		left:       container.Children[index-1],
		right:      container.Children[index],
		start:      startCoord,
		axisLength: axisLength,
	}, nil
}

// Container returns the container whose boundary is dragged.
func (d *Drag) Container() *entity.Node {
	return d.container
}

// Done reports whether the drag was committed or cancelled.
func (d *Drag) Done() bool {
	return d.done
}

// Stale reports whether the container changed shape since the drag began.
func (d *Drag) Stale() bool {
	if checkBoundary(d.container, d.index) != nil || len(d.container.Children) != d.children {
		return true
	}
	return d.container.Children[d.index-1] != d.left || d.container.Children[d.index] != d.right
}

// Update records the pointer position and returns the clamped ratio delta.
// A positive delta grows the child before the boundary.
func (d *Drag) Update(coord float64) float64 {
	if !d.done {
		d.offset = (coord - d.start) / d.axisLength
	}
	return d.Delta()
}

// Delta returns the pointer offset clamped against the current ratios of
// the two neighbours. A stale or finished drag has no delta.
func (d *Drag) Delta() float64 {
	if d.done || d.Stale() {
		return 0
	}
	return d.uc.clamp(d.offset, d.container.Ratios[d.index-1], d.container.Ratios[d.index])
}

// Preview returns the container ratios as they would be after Commit.
func (d *Drag) Preview() []float64 {
	ratios := append([]float64(nil), d.container.Ratios...)
	if delta := d.Delta(); delta != 0 {
		ratios[d.index-1] += delta
		ratios[d.index] -= delta
	}
	return ratios
}

// Commit applies the delta to the two neighbours and reports whether
// anything changed. A drag commits at most once, and never after its
// container changed shape.
func (d *Drag) Commit(ctx context.Context) bool {
	delta := d.Delta()
	if d.done {
		return false
	}
	d.done = true
	if delta == 0 {
		if d.Stale() {
			logging.FromContext(ctx).Debug().Int("index", d.index).Msg("boundary drag dropped, container changed")
		}
		return false
	}

	d.container.Ratios[d.index-1] += delta
	d.container.Ratios[d.index] -= delta

	logging.FromContext(ctx).Debug().
		Int("index", d.index).
		Float64("delta", delta).
		Floats64("ratios", d.container.Ratios).
		Msg("boundary drag committed")
	return true
}

// Cancel ends the drag without changing the tree.
func (d *Drag) Cancel() {
	d.done = true
	d.offset = 0
}

// clamp keeps both neighbours at or above the minimum share.
// Neighbours already under the minimum can only grow.
func (uc *ResizeBoundaryUseCase) clamp(delta, before, after float64) float64 {
	lo := -before + uc.minRatio
	hi := after - uc.minRatio
	if lo > 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	return clampFloat64(delta, lo, hi)
}

func clampFloat64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Reset splits the combined share of the two neighbours evenly between them.
func (uc *ResizeBoundaryUseCase) Reset(ctx context.Context, container *entity.Node, index int) error {
	if err := checkBoundary(container, index); err != nil {
		return err
	}
	mean := (container.Ratios[index-1] + container.Ratios[index]) / 2
	container.Ratios[index-1] = mean
	container.Ratios[index] = mean

	logging.FromContext(ctx).Debug().
		Int("index", index).
		Float64("ratio", mean).
		Msg("boundary reset")
	return nil
}

// ResizeFocused moves the nearest boundary of the focused pane one step in
// dir. Right and bottom move the boundary forward, left and top backward.
func (uc *ResizeBoundaryUseCase) ResizeFocused(ctx context.Context, ws *entity.Workspace, dir entity.Direction) error {
	log := logging.FromContext(ctx)

	if ws == nil || ws.Tree == nil {
		return ErrWorkspaceNeeded
	}
	leaf := ws.FocusedLeaf()
	if leaf == nil {
		return ErrNoFocusedPane
	}

	axis := dir.Orientation()
	rel := leaf
	parent := ws.Tree.GetParent(rel)
	for parent != nil && parent.Orientation != axis {
		rel = parent
		parent = ws.Tree.GetParent(rel)
	}
	if parent == nil || len(parent.Children) < 2 {
		return ErrNothingToResize
	}

	i := parent.IndexOf(rel)
	var boundary int
	if dir.IsBackward() {
		boundary = max(i, 1)
	} else {
		boundary = min(i+1, len(parent.Children)-1)
	}

	delta := uc.step
	if dir.IsBackward() {
		delta = -delta
	}
	delta = uc.clamp(delta, parent.Ratios[boundary-1], parent.Ratios[boundary])
	if delta == 0 {
		return ErrNothingToResize
	}

	parent.Ratios[boundary-1] += delta
	parent.Ratios[boundary] -= delta

	log.Debug().
		Str("direction", string(dir)).
		Int("boundary", boundary).
		Float64("delta", delta).
		Msg("pane resized")
	return nil
}
