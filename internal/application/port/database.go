package port

import (
	"context"
	"database/sql"
)

// LayoutDatabase hands out the connection backing saved layouts. Opening
// may be deferred until a command first reads or writes a layout.
type LayoutDatabase interface {
	// Open returns the connection, opening and migrating it on first use.
	// A failed open is retried on the next call.
	Open(ctx context.Context) (*sql.DB, error)

	// Opened reports whether a connection is currently held.
	Opened() bool

	// Close releases the connection. A later Open reopens it.
	Close() error
}
