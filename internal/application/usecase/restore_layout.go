package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/domain/repository"
	"github.com/bnema/dumbterm/internal/logging"
)

var (
	// ErrLayoutNotFound is returned when no snapshot is stored for a tab.
	ErrLayoutNotFound = errors.New("layout snapshot not found")
	// ErrVersionMismatch is returned when the snapshot version is newer than supported.
	ErrVersionMismatch = errors.New("layout snapshot version mismatch")
	// ErrNothingRestored is returned when no pane of the snapshot could be recovered.
	ErrNothingRestored = errors.New("no pane could be recovered")
)

// maxConcurrentRecoveries bounds the panes recovered in parallel.
const maxConcurrentRecoveries = 8

// RestoreLayoutUseCase rebuilds a split tree from a stored snapshot.
type RestoreLayoutUseCase struct {
	repo      repository.LayoutSnapshotRepository
	recoverer port.PaneRecoverer
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(repo repository.LayoutSnapshotRepository, recoverer port.PaneRecoverer) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{repo: repo, recoverer: recoverer}
}

// RestoreLayoutInput contains the parameters for restoring a layout.
type RestoreLayoutInput struct {
	TabID entity.TabID
}

// RestoreLayoutOutput holds the rebuilt workspace and its recovered panes.
type RestoreLayoutOutput struct {
	Workspace *entity.Workspace
	Panes     map[entity.PaneID]port.Pane
	// Dropped counts snapshot panes that could not be recovered.
	Dropped int
}

// Execute loads the snapshot for a tab and recovers every pane concurrently.
// Unrecoverable panes are dropped and the surviving tree is normalized.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, input RestoreLayoutInput) (*RestoreLayoutOutput, error) {
	log := logging.FromContext(ctx)

	if input.TabID == "" {
		return nil, fmt.Errorf("tab id required")
	}
	if uc.recoverer == nil {
		return nil, fmt.Errorf("pane recoverer required")
	}

	snap, err := uc.repo.Get(ctx, input.TabID)
	if err != nil {
		return nil, fmt.Errorf("get layout snapshot: %w", err)
	}
	if snap == nil || snap.Root == nil {
		return nil, ErrLayoutNotFound
	}
	if snap.Version > entity.LayoutSnapshotVersion {
		log.Warn().
			Int("snapshot_version", snap.Version).
			Int("current_version", entity.LayoutSnapshotVersion).
			Msg("layout snapshot version is newer than current version")
		return nil, ErrVersionMismatch
	}

	var leaves []*entity.NodeSnapshot
	collectPaneSnapshots(snap.Root, &leaves)

	recovered := make([]port.Pane, len(leaves))
	failures := make([]error, len(leaves))
	var g errgroup.Group
	g.SetLimit(maxConcurrentRecoveries)
	for i, leaf := range leaves {
		if len(leaf.Token) == 0 {
			continue
		}
		g.Go(func() error {
			pane, err := uc.recoverer.Recover(ctx, leaf.Token)
			if err != nil {
				failures[i] = fmt.Errorf("pane %s: %w", leaf.PaneID, err)
				return failures[i]
			}
			recovered[i] = pane
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn().Err(errors.Join(failures...)).Msg("some panes could not be recovered")
	}
	if err := ctx.Err(); err != nil {
		destroyAll(recovered)
		return nil, err
	}

	out := &RestoreLayoutOutput{Panes: make(map[entity.PaneID]port.Pane)}
	byLeaf := make(map[*entity.NodeSnapshot]port.Pane, len(leaves))
	oldToNew := make(map[entity.PaneID]entity.PaneID)
	for i, leaf := range leaves {
		pane := recovered[i]
		if pane == nil {
			out.Dropped++
			continue
		}
		if _, dup := out.Panes[pane.ID()]; dup {
			log.Warn().Str("pane_id", string(pane.ID())).Msg("recovered pane id already used, dropping")
			pane.Destroy()
			out.Dropped++
			continue
		}
		byLeaf[leaf] = pane
		out.Panes[pane.ID()] = pane
		oldToNew[leaf.PaneID] = pane.ID()
	}

	root := buildNode(snap.Root, byLeaf)
	if root == nil {
		return nil, ErrNothingRestored
	}
	if root.IsLeaf() {
		root = entity.NewContainer(entity.Horizontal, root)
	}
	tree := &entity.SplitTree{Root: root}
	tree.Normalize()
	if tree.IsEmpty() {
		return nil, ErrNothingRestored
	}

	ws := &entity.Workspace{TabID: snap.TabID, Tree: tree, CreatedAt: snap.SavedAt}
	if focused, ok := oldToNew[snap.FocusedPaneID]; ok {
		ws.FocusedPaneID = focused
	} else if first := tree.Root.FirstLeaf(); first != nil {
		ws.FocusedPaneID = first.PaneID
	}
	out.Workspace = ws

	log.Info().
		Str("tab_id", string(snap.TabID)).
		Int("pane_count", tree.LeafCount()).
		Int("dropped", out.Dropped).
		Msg("layout restored")

	return out, nil
}

// Delete removes a tab's snapshot.
func (uc *RestoreLayoutUseCase) Delete(ctx context.Context, tabID entity.TabID) error {
	return uc.repo.Delete(ctx, tabID)
}

func collectPaneSnapshots(n *entity.NodeSnapshot, out *[]*entity.NodeSnapshot) {
	if n == nil {
		return
	}
	if n.Type == entity.SnapshotPane {
		*out = append(*out, n)
		return
	}
	for _, child := range n.Children {
		collectPaneSnapshots(child, out)
	}
}

// buildNode rebuilds a subtree keeping only recovered panes. Ratios of
// dropped children are discarded; missing ratios are padded with an even
// share before normalization rescales them.
func buildNode(n *entity.NodeSnapshot, panes map[*entity.NodeSnapshot]port.Pane) *entity.Node {
	if n == nil {
		return nil
	}
	if n.Type == entity.SnapshotPane {
		pane, ok := panes[n]
		if !ok {
			return nil
		}
		return entity.NewLeaf(pane.ID())
	}

	container := &entity.Node{
		Kind:        entity.NodeContainer,
		Orientation: entity.OrientationFromCode(n.Orientation),
	}
	for i, child := range n.Children {
		node := buildNode(child, panes)
		if node == nil {
			continue
		}
		ratio := 1 / float64(len(n.Children))
		if i < len(n.Ratios) && n.Ratios[i] > 0 {
			ratio = n.Ratios[i]
		}
		container.Children = append(container.Children, node)
		container.Ratios = append(container.Ratios, ratio)
	}
	if len(container.Children) == 0 {
		return nil
	}
	return container
}

func destroyAll(panes []port.Pane) {
	for _, p := range panes {
		if p != nil {
			p.Destroy()
		}
	}
}
