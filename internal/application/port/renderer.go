package port

import (
	"context"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

// LayoutRenderer turns computed percentage rectangles into on-screen geometry.
type LayoutRenderer interface {
	ApplyLayout(ctx context.Context, result entity.LayoutResult)
}
