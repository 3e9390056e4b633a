package sqlite

import (
	"context"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/domain/repository"
)

// lazyLayoutSnapshotRepo opens the database on the first call that needs it.
type lazyLayoutSnapshotRepo struct {
	db port.LayoutDatabase
}

// NewLazyLayoutSnapshotRepository returns a repository that defers opening
// db until a layout is read or written.
func NewLazyLayoutSnapshotRepository(db port.LayoutDatabase) repository.LayoutSnapshotRepository {
	return &lazyLayoutSnapshotRepo{db: db}
}

func (r *lazyLayoutSnapshotRepo) repo(ctx context.Context) (repository.LayoutSnapshotRepository, error) {
	db, err := r.db.Open(ctx)
	if err != nil {
		return nil, err
	}
	return NewLayoutSnapshotRepository(db), nil
}

func (r *lazyLayoutSnapshotRepo) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, snapshot)
}

func (r *lazyLayoutSnapshotRepo) Get(ctx context.Context, tabID entity.TabID) (*entity.LayoutSnapshot, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, tabID)
}

func (r *lazyLayoutSnapshotRepo) List(ctx context.Context) ([]entity.LayoutSnapshotInfo, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func (r *lazyLayoutSnapshotRepo) Delete(ctx context.Context, tabID entity.TabID) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, tabID)
}
