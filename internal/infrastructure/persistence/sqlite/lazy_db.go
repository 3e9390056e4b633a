package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/logging"
)

// LazyDB opens the layout database on first use. Commands such as preview
// never touch it and so never pay for the WASM compile or migrations.
type LazyDB struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

var _ port.LayoutDatabase = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// Open returns the shared connection.
func (l *LazyDB) Open(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("path", l.path).Msg("opening layout database")

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("layout database unavailable")
		return nil, fmt.Errorf("open layout database: %w", err)
	}
	l.db = db
	return db, nil
}

// Opened reports whether a connection is held.
func (l *LazyDB) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Close closes the connection if one is held.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// Path returns the database file.
func (l *LazyDB) Path() string {
	return l.path
}

// Status describes the layout database file.
type Status struct {
	Path          string
	Exists        bool
	SizeBytes     int64
	SchemaVersion int64
	Layouts       int
}

// Status reports on the database without creating it. The connection is
// opened only when the file already exists.
func (l *LazyDB) Status(ctx context.Context) (Status, error) {
	st := Status{Path: l.path}

	info, err := os.Stat(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("stat layout database: %w", err)
	}
	st.Exists = true
	st.SizeBytes = info.Size()

	db, err := l.Open(ctx)
	if err != nil {
		return st, err
	}
	if st.SchemaVersion, err = SchemaVersion(ctx, db); err != nil {
		return st, err
	}
	if err := db.QueryRowContext(ctx, countLayoutSnapshots).Scan(&st.Layouts); err != nil {
		return st, fmt.Errorf("count layouts: %w", err)
	}
	return st, nil
}
