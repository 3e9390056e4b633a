package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

// ErrInvalidDropZone is returned when a drop zone no longer matches the tree.
var ErrInvalidDropZone = errors.New("invalid drop zone")

// Move takes a pane out of its slot and re-inserts it at the drop zone,
// then normalizes the tree. The moved pane keeps focus. Returns false when
// the zone would leave the pane where it is.
func (uc *ManagePanesUseCase) Move(ctx context.Context, ws *entity.Workspace, id entity.PaneID, zone entity.DropZone) (bool, error) {
	log := logging.FromContext(ctx)

	if ws == nil || ws.Tree == nil || ws.Tree.Root == nil {
		return false, ErrWorkspaceNeeded
	}
	tree := ws.Tree

	leaf := tree.FindLeaf(id)
	if leaf == nil {
		return false, fmt.Errorf("move %s: %w", id, ErrPaneNotFound)
	}
	if zone.Targets(id) {
		return false, nil
	}

	position := zone.Position
	if zone.IsAbsolute() {
		if !zone.Container.IsContainer() || !tree.Attached(zone.Container) {
			return false, fmt.Errorf("move %s: %w: container left the tree", id, ErrInvalidDropZone)
		}
		if position < 0 || position > len(zone.Container.Children) {
			return false, fmt.Errorf("move %s: %w: position %d of %d", id, ErrInvalidDropZone, position, len(zone.Container.Children))
		}
	} else {
		switch zone.Side {
		case entity.DirLeft, entity.DirRight, entity.DirTop, entity.DirBottom:
		default:
			return false, fmt.Errorf("move %s: %w: side %q", id, ErrInvalidDropZone, zone.Side)
		}
		if !tree.Contains(zone.Relative) {
			return false, fmt.Errorf("move %s next to %s: %w", id, zone.Relative, ErrPaneNotFound)
		}
	}

	// Detach without normalizing so the zone's container and indices stay valid.
	parent := tree.GetParent(leaf)
	if parent == nil {
		return false, fmt.Errorf("move %s: %w", id, entity.ErrInvariantViolation)
	}
	from := parent.IndexOf(leaf)
	parent.Children = slices.Delete(parent.Children, from, from+1)
	parent.Ratios = slices.Delete(parent.Ratios, from, from+1)
	rescale(parent.Ratios)

	if zone.IsAbsolute() {
		if parent == zone.Container && from < position {
			position--
		}
		uc.insertAt(zone.Container, leaf, position)
		tree.Normalize()
		ws.FocusedPaneID = id
		ws.MaximizedPaneID = ""
	} else if _, err := uc.Insert(ctx, InsertInput{
		Workspace: ws,
		PaneID:    id,
		Relative:  zone.Relative,
		Direction: zone.Side,
	}); err != nil {
		return false, fmt.Errorf("move %s: %w", id, err)
	}

	if err := tree.Validate(); err != nil {
		log.Error().Err(err).Str("tree", tree.String()).Msg("tree invalid after move")
	}

	log.Debug().
		Str("pane_id", string(id)).
		Str("relative", string(zone.Relative)).
		Str("side", string(zone.Side)).
		Int("position", position).
		Str("tree", tree.String()).
		Msg("pane moved")

	return true, nil
}

// rescale makes ratios sum to one again.
func rescale(ratios []float64) {
	total := 0.0
	for _, r := range ratios {
		total += r
	}
	if total <= 0 {
		return
	}
	for i := range ratios {
		ratios[i] /= total
	}
}
