package port

import (
	"context"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

// Pane is an externally owned content unit placed in a split tree leaf.
// The layout engine only positions it; it never inspects its contents.
type Pane interface {
	// ID returns the stable identifier used by the split tree.
	ID() entity.PaneID
	// Title returns the current title used for tab title aggregation.
	Title() string
	// Focus and Blur notify the pane of focus changes.
	Focus()
	Blur()
	// CanClose asks the pane whether it may be closed (e.g. no running job).
	CanClose(ctx context.Context) (bool, error)
	// Destroy tears the pane down. Called once, when the tree lets go of it.
	Destroy()
}

// RecoveryTokenProvider is implemented by panes that can be recreated later.
type RecoveryTokenProvider interface {
	RecoveryToken(ctx context.Context) (entity.RecoveryToken, error)
}

// PaneDuplicator creates a copy of a pane, e.g. a new shell in the same cwd.
// A nil pane with a nil error means the duplicate was declined.
type PaneDuplicator interface {
	Duplicate(ctx context.Context, pane Pane) (Pane, error)
}

// PaneRecoverer recreates a pane from its recovery token.
// A nil pane with a nil error means the token is no longer recoverable.
type PaneRecoverer interface {
	Recover(ctx context.Context, token entity.RecoveryToken) (Pane, error)
}
