package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/domain/repository"
	"github.com/bnema/dumbterm/internal/logging"
)

// SnapshotLayoutUseCase handles saving layout snapshots.
type SnapshotLayoutUseCase struct {
	repo repository.LayoutSnapshotRepository
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
func NewSnapshotLayoutUseCase(repo repository.LayoutSnapshotRepository) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{repo: repo}
}

// SnapshotLayoutInput contains the parameters for creating a layout snapshot.
type SnapshotLayoutInput struct {
	Workspace *entity.Workspace
	Panes     map[entity.PaneID]port.Pane
}

// Execute collects recovery tokens from the panes and saves the tree.
// Panes that cannot produce a token are recorded without one.
func (uc *SnapshotLayoutUseCase) Execute(ctx context.Context, input SnapshotLayoutInput) (*entity.LayoutSnapshot, error) {
	log := logging.FromContext(ctx)

	if input.Workspace == nil || input.Workspace.TabID == "" {
		return nil, fmt.Errorf("tab id required")
	}

	tokens := collectTokens(ctx, input.Workspace, input.Panes)
	snap := entity.SnapshotFromWorkspace(input.Workspace, tokens)

	log.Debug().
		Str("tab_id", string(snap.TabID)).
		Int("pane_count", snap.CountPanes()).
		Int("token_count", len(tokens)).
		Msg("creating layout snapshot")

	if err := uc.repo.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("save layout snapshot: %w", err)
	}
	return snap, nil
}

func collectTokens(ctx context.Context, ws *entity.Workspace, panes map[entity.PaneID]port.Pane) map[entity.PaneID]entity.RecoveryToken {
	log := logging.FromContext(ctx)

	var (
		mu     sync.Mutex
		tokens   = make(map[entity.PaneID]entity.RecoveryToken)
		failures []error
	)
	var g errgroup.Group
	g.SetLimit(maxConcurrentRecoveries)
	for id := range ws.Tree.AllLeaves() {
		provider, ok := panes[id].(port.RecoveryTokenProvider)
		if !ok {
			continue
		}
		g.Go(func() error {
			token, err := provider.RecoveryToken(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, fmt.Errorf("pane %s: %w", id, err))
				return err
			}
			if len(token) > 0 {
				tokens[id] = token
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn().Err(errors.Join(failures...)).Msg("recovery tokens unavailable")
	}
	return tokens
}
