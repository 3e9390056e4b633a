package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

var (
	ErrPaneNotFound    = errors.New("pane not found")
	ErrPaneExists      = errors.New("pane already in tree")
	ErrNoFocusedPane   = errors.New("no focused pane")
	ErrWorkspaceNeeded = errors.New("workspace is required")
)

// ManagePanesOptions tunes structural pane operations.
type ManagePanesOptions struct {
	// EqualizeOnInsert gives every sibling of an inserted pane an equal
	// share instead of scaling the existing ratios down.
	EqualizeOnInsert bool
}

// ManagePanesUseCase handles split tree mutations and focus movement.
// It never touches pane objects; callers react to the returned IDs.
type ManagePanesUseCase struct {
	opts ManagePanesOptions
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(opts ManagePanesOptions) *ManagePanesUseCase {
	return &ManagePanesUseCase{opts: opts}
}

// InsertInput contains parameters for inserting a pane next to another.
type InsertInput struct {
	Workspace *entity.Workspace
	PaneID    entity.PaneID
	// Relative is the leaf to split against. RelativeNode, when set, takes
	// precedence and may be any subtree, including the root.
	Relative     entity.PaneID
	RelativeNode *entity.Node
	Direction    entity.Direction
}

// InsertOutput describes where the pane landed.
type InsertOutput struct {
	Leaf *entity.Node
	// Fallback is true when the relative node could not be resolved and the
	// pane was inserted at the front of the root instead.
	Fallback bool
}

// Insert splits the relative node and places a new leaf on the requested side.
func (uc *ManagePanesUseCase) Insert(ctx context.Context, input InsertInput) (*InsertOutput, error) {
	log := logging.FromContext(ctx)

	ws := input.Workspace
	if ws == nil || ws.Tree == nil || ws.Tree.Root == nil {
		return nil, ErrWorkspaceNeeded
	}
	if input.PaneID == "" {
		return nil, fmt.Errorf("pane id is required")
	}
	if ws.Tree.Contains(input.PaneID) {
		return nil, fmt.Errorf("insert %s: %w", input.PaneID, ErrPaneExists)
	}
	switch input.Direction {
	case entity.DirLeft, entity.DirRight, entity.DirTop, entity.DirBottom:
	default:
		return nil, fmt.Errorf("invalid split direction %q", input.Direction)
	}

	tree := ws.Tree
	required := input.Direction.Orientation()

	rel := input.RelativeNode
	if rel == nil && input.Relative != "" {
		rel = tree.FindLeaf(input.Relative)
	}

	fallback := false
	target := tree.GetParent(rel)
	if target == nil && rel != tree.Root {
		log.Warn().
			Str("pane_id", string(input.PaneID)).
			Str("relative", string(input.Relative)).
			Msg("relative not found, inserting at root")
		fallback = true
		rel = nil
		target = tree.Root
	}

	var insertIndex int
	switch {
	case fallback:
		insertIndex = 0
	case rel == tree.Root:
		// Splitting the whole tab: the root itself is the relative subtree.
		target = tree.Root
		if target.Orientation != required {
			target = wrap(nil, tree.Root, required)
			tree.Root = target
			insertIndex = 0
			if !input.Direction.IsBackward() {
				insertIndex = 1
			}
		} else if input.Direction.IsBackward() {
			insertIndex = 0
		} else {
			insertIndex = len(target.Children)
		}
	default:
		if target.Orientation != required {
			target = wrap(target, rel, required)
		}
		insertIndex = target.IndexOf(rel)
		if !input.Direction.IsBackward() {
			insertIndex++
		}
	}

	leaf := entity.NewLeaf(input.PaneID)
	uc.insertAt(target, leaf, insertIndex)

	tree.Normalize()
	ws.FocusedPaneID = input.PaneID
	ws.MaximizedPaneID = ""

	if err := tree.Validate(); err != nil {
		log.Error().Err(err).Str("tree", tree.String()).Msg("tree invalid after insert")
	}

	log.Debug().
		Str("pane_id", string(input.PaneID)).
		Str("direction", string(input.Direction)).
		Int("index", insertIndex).
		Str("tree", tree.String()).
		Msg("pane inserted")

	return &InsertOutput{Leaf: leaf, Fallback: fallback}, nil
}

// wrap replaces node's slot in parent with a new single-child container of
// the given orientation and returns that container. A nil parent means node
// is the root and the caller installs the wrapper.
func wrap(parent *entity.Node, node *entity.Node, orientation entity.Orientation) *entity.Node {
	wrapper := &entity.Node{
		Kind:        entity.NodeContainer,
		Orientation: orientation,
		Children:    []*entity.Node{node},
		Ratios:      []float64{1},
	}
	if parent != nil {
		if i := parent.IndexOf(node); i >= 0 {
			parent.Children[i] = wrapper
		}
	}
	return wrapper
}

// insertAt scales existing ratios by n/(n+1) and gives the new child 1/(n+1).
func (uc *ManagePanesUseCase) insertAt(target *entity.Node, child *entity.Node, index int) {
	n := float64(len(target.Children))
	index = max(0, min(index, len(target.Children)))

	for i := range target.Ratios {
		target.Ratios[i] *= n / (n + 1)
	}
	target.Ratios = slices.Insert(target.Ratios, index, 1/(n+1))
	target.Children = slices.Insert(target.Children, index, child)

	if uc.opts.EqualizeOnInsert {
		for i := range target.Ratios {
			target.Ratios[i] = 1 / (n + 1)
		}
	}
}

// RemoveOutput describes the tree after a pane left it.
type RemoveOutput struct {
	// NewFocus is the pane that received focus, empty when focus did not
	// move or no pane remains.
	NewFocus entity.PaneID
	// Empty means the last pane is gone and the owning tab must close.
	Empty bool
}

// Remove takes a pane's leaf out of the tree and hands focus to the pane
// preceding it in leaf order when the removed pane was focused.
func (uc *ManagePanesUseCase) Remove(ctx context.Context, ws *entity.Workspace, id entity.PaneID) (*RemoveOutput, error) {
	log := logging.FromContext(ctx)

	if ws == nil || ws.Tree == nil {
		return nil, ErrWorkspaceNeeded
	}
	tree := ws.Tree

	leaf := tree.FindLeaf(id)
	if leaf == nil {
		return nil, fmt.Errorf("remove %s: %w", id, ErrPaneNotFound)
	}

	order := tree.Leaves()
	removedIndex := slices.Index(order, id)

	parent := tree.GetParent(leaf)
	if parent == nil {
		return nil, fmt.Errorf("remove %s: %w", id, entity.ErrInvariantViolation)
	}
	if i := parent.IndexOf(leaf); i >= 0 {
		parent.Children = slices.Delete(parent.Children, i, i+1)
		parent.Ratios = slices.Delete(parent.Ratios, i, i+1)
	}
	tree.Normalize()

	if ws.MaximizedPaneID == id {
		ws.MaximizedPaneID = ""
	}

	out := &RemoveOutput{}
	if tree.IsEmpty() {
		ws.FocusedPaneID = ""
		out.Empty = true
		log.Info().Str("pane_id", string(id)).Msg("last pane removed")
		return out, nil
	}

	if ws.FocusedPaneID == id || !tree.Contains(ws.FocusedPaneID) {
		remaining := slices.Delete(slices.Clone(order), removedIndex, removedIndex+1)
		next := remaining[max(0, removedIndex-1)]
		ws.FocusedPaneID = next
		out.NewFocus = next
	}

	log.Debug().
		Str("pane_id", string(id)).
		Str("new_focus", string(out.NewFocus)).
		Str("tree", tree.String()).
		Msg("pane removed")

	return out, nil
}

// Navigate moves focus to the nearest pane in dir by walking up to the first
// ancestor laid out along the same axis. It never changes the tree.
// Returns the focused pane and whether focus moved.
func (uc *ManagePanesUseCase) Navigate(ctx context.Context, ws *entity.Workspace, dir entity.Direction) (entity.PaneID, bool, error) {
	log := logging.FromContext(ctx)

	if ws == nil || ws.Tree == nil {
		return "", false, ErrWorkspaceNeeded
	}
	tree := ws.Tree

	start := ws.FocusedLeaf()
	if start == nil {
		return "", false, ErrNoFocusedPane
	}

	axis := dir.Orientation()
	rel := start
	parent := tree.GetParent(rel)
	for parent != nil && parent.Orientation != axis && parent != tree.Root {
		rel = parent
		parent = tree.GetParent(rel)
	}
	if parent == nil || parent.Orientation != axis {
		log.Debug().Str("direction", string(dir)).Msg("no ancestor along axis")
		return ws.FocusedPaneID, false, nil
	}

	index := parent.IndexOf(rel)
	var sibling *entity.Node
	if dir.IsBackward() {
		if index > 0 {
			sibling = parent.Children[index-1]
		}
	} else if index < len(parent.Children)-1 {
		sibling = parent.Children[index+1]
	}
	if sibling == nil {
		return ws.FocusedPaneID, false, nil
	}

	target := sibling.FirstLeaf()
	if target == nil {
		return ws.FocusedPaneID, false, nil
	}

	from := ws.FocusedPaneID
	ws.FocusedPaneID = target.PaneID
	ws.MaximizedPaneID = ""

	log.Debug().
		Str("from", string(from)).
		Str("to", string(target.PaneID)).
		Str("direction", string(dir)).
		Msg("focus navigated")

	return target.PaneID, true, nil
}

// NavigateCycle moves focus to the next or previous pane in leaf order,
// wrapping around at either end.
func (uc *ManagePanesUseCase) NavigateCycle(ctx context.Context, ws *entity.Workspace, forward bool) (entity.PaneID, bool, error) {
	if ws == nil || ws.Tree == nil {
		return "", false, ErrWorkspaceNeeded
	}

	order := ws.Tree.Leaves()
	index := slices.Index(order, ws.FocusedPaneID)
	if index < 0 {
		return "", false, ErrNoFocusedPane
	}
	if len(order) < 2 {
		return ws.FocusedPaneID, false, nil
	}

	step := -1
	if forward {
		step = 1
	}
	next := order[(index+step+len(order))%len(order)]
	ws.FocusedPaneID = next
	ws.MaximizedPaneID = ""

	logging.FromContext(ctx).Debug().
		Str("to", string(next)).
		Bool("forward", forward).
		Msg("focus cycled")

	return next, true, nil
}

// Focus sets the focused pane.
func (uc *ManagePanesUseCase) Focus(ctx context.Context, ws *entity.Workspace, id entity.PaneID) error {
	if ws == nil || ws.Tree == nil {
		return ErrWorkspaceNeeded
	}
	if !ws.Tree.Contains(id) {
		return fmt.Errorf("focus %s: %w", id, ErrPaneNotFound)
	}
	if ws.MaximizedPaneID != "" && ws.MaximizedPaneID != id {
		ws.MaximizedPaneID = ""
	}
	ws.FocusedPaneID = id
	logging.FromContext(ctx).Debug().Str("pane_id", string(id)).Msg("pane focused")
	return nil
}

// ToggleMaximize maximizes the focused pane, or restores the layout when a
// pane is already maximized. Returns the new maximized state.
func (uc *ManagePanesUseCase) ToggleMaximize(ctx context.Context, ws *entity.Workspace) (bool, error) {
	if ws == nil || ws.Tree == nil {
		return false, ErrWorkspaceNeeded
	}
	if ws.IsMaximized() {
		ws.MaximizedPaneID = ""
		return false, nil
	}
	if ws.FocusedLeaf() == nil {
		return false, ErrNoFocusedPane
	}
	ws.MaximizedPaneID = ws.FocusedPaneID
	logging.FromContext(ctx).Debug().Str("pane_id", string(ws.FocusedPaneID)).Msg("pane maximized")
	return true, nil
}

// Equalize gives every pane of every container an equal share.
func (uc *ManagePanesUseCase) Equalize(ctx context.Context, ws *entity.Workspace) error {
	if ws == nil || ws.Tree == nil {
		return ErrWorkspaceNeeded
	}
	ws.Tree.Equalize()
	logging.FromContext(ctx).Debug().Str("tree", ws.Tree.String()).Msg("panes equalized")
	return nil
}
