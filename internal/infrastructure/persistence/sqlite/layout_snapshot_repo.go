package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/domain/repository"
	"github.com/bnema/dumbterm/internal/logging"
)

// savedAtLayout is fixed-width UTC so saved_at sorts as text.
const savedAtLayout = "2006-01-02T15:04:05.000000000Z"

const (
	upsertLayoutSnapshot = `
INSERT INTO layout_snapshots (tab_id, snapshot_json, version, pane_count, saved_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(tab_id) DO UPDATE SET
    snapshot_json = excluded.snapshot_json,
    version       = excluded.version,
    pane_count    = excluded.pane_count,
    saved_at      = excluded.saved_at`

	getLayoutSnapshot = `SELECT snapshot_json FROM layout_snapshots WHERE tab_id = ?`

	listLayoutSnapshots = `
SELECT tab_id, pane_count, version, saved_at, length(snapshot_json)
FROM layout_snapshots
ORDER BY saved_at DESC, tab_id`

	deleteLayoutSnapshot = `DELETE FROM layout_snapshots WHERE tab_id = ?`

	countLayoutSnapshots = `SELECT count(*) FROM layout_snapshots`
)

type layoutSnapshotRepo struct {
	db *sql.DB
}

// NewLayoutSnapshotRepository creates a layout snapshot repository.
func NewLayoutSnapshotRepository(db *sql.DB) repository.LayoutSnapshotRepository {
	return &layoutSnapshotRepo{db: db}
}

// Save inserts or replaces the snapshot of snapshot.TabID.
func (r *layoutSnapshotRepo) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snapshot == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if snapshot.TabID == "" {
		return errors.New("layout snapshot has no tab id")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout snapshot")
		return err
	}

	savedAt := snapshot.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	log.Debug().
		Str("tab_id", string(snapshot.TabID)).
		Int("pane_count", snapshot.CountPanes()).
		Msg("saving layout snapshot")

	if _, err := r.db.ExecContext(ctx, upsertLayoutSnapshot,
		string(snapshot.TabID),
		string(data),
		snapshot.Version,
		snapshot.CountPanes(),
		savedAt.UTC().Format(savedAtLayout),
	); err != nil {
		return fmt.Errorf("save layout snapshot: %w", err)
	}
	return nil
}

// Get returns the snapshot of a tab, or nil when none is stored.
func (r *layoutSnapshotRepo) Get(ctx context.Context, tabID entity.TabID) (*entity.LayoutSnapshot, error) {
	var data string
	err := r.db.QueryRowContext(ctx, getLayoutSnapshot, string(tabID)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get layout snapshot: %w", err)
	}

	var snapshot entity.LayoutSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("tab_id", string(tabID)).
			Msg("failed to unmarshal layout snapshot")
		return nil, err
	}
	return &snapshot, nil
}

// List returns summaries of every stored snapshot, newest first.
func (r *layoutSnapshotRepo) List(ctx context.Context) ([]entity.LayoutSnapshotInfo, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutSnapshots)
	if err != nil {
		return nil, fmt.Errorf("list layout snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []entity.LayoutSnapshotInfo
	for rows.Next() {
		var (
			info    entity.LayoutSnapshotInfo
			tabID   string
			savedAt string
		)
		if err := rows.Scan(&tabID, &info.PaneCount, &info.Version, &savedAt, &info.SizeBytes); err != nil {
			return nil, fmt.Errorf("scan layout snapshot: %w", err)
		}
		info.TabID = entity.TabID(tabID)
		info.SavedAt, err = time.Parse(savedAtLayout, savedAt)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).
				Str("tab_id", tabID).
				Msg("unparsable snapshot timestamp")
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes a tab's snapshot.
func (r *layoutSnapshotRepo) Delete(ctx context.Context, tabID entity.TabID) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("tab_id", string(tabID)).Msg("deleting layout snapshot")

	if _, err := r.db.ExecContext(ctx, deleteLayoutSnapshot, string(tabID)); err != nil {
		return fmt.Errorf("delete layout snapshot: %w", err)
	}
	return nil
}
