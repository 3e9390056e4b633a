package repository

import (
	"context"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

// LayoutSnapshotRepository persists split tree snapshots, one per tab.
type LayoutSnapshotRepository interface {
	// Save inserts or replaces the snapshot for snapshot.TabID.
	Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error

	// Get returns the snapshot for a tab, or nil when none is stored.
	Get(ctx context.Context, tabID entity.TabID) (*entity.LayoutSnapshot, error)

	// List returns summaries of every stored snapshot, newest first.
	List(ctx context.Context) ([]entity.LayoutSnapshotInfo, error)

	// Delete removes a tab's snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, tabID entity.TabID) error
}
