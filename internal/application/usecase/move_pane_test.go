package usecase

import (
	"context"
	"testing"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func move(t *testing.T, uc *ManagePanesUseCase, ws *entity.Workspace, id string, zone entity.DropZone) bool {
	t.Helper()
	before := ws.Tree.LeafCount()
	moved, err := uc.Move(context.Background(), ws, entity.PaneID(id), zone)
	require.NoError(t, err)
	require.NoError(t, ws.Tree.Validate())
	assert.Equal(t, before, ws.Tree.LeafCount())
	return moved
}

func TestManagePanesUseCase_Move_NextToPane(t *testing.T) {
	tests := []struct {
		name string
		root func() *entity.Node
		id   string
		zone entity.DropZone
		want *entity.Node
	}{
		{
			name: "across the root",
			root: func() *entity.Node {
				return container(entity.Horizontal, []float64{0.5, 0.5}, leaf("A"), leaf("B"))
			},
			id:   "A",
			zone: entity.DropZone{Relative: "B", Side: entity.DirRight},
			want: container(entity.Horizontal, []float64{0.5, 0.5}, leaf("B"), leaf("A")),
		},
		{
			name: "below its sibling",
			root: func() *entity.Node {
				return container(entity.Horizontal, []float64{0.5, 0.5}, leaf("A"), leaf("B"))
			},
			id:   "A",
			zone: entity.DropZone{Relative: "B", Side: entity.DirBottom},
			want: container(entity.Vertical, []float64{0.5, 0.5}, leaf("B"), leaf("A")),
		},
		{
			name: "out of a nested split",
			root: func() *entity.Node {
				return container(entity.Horizontal, []float64{0.5, 0.5},
					leaf("A"),
					container(entity.Vertical, []float64{0.5, 0.5}, leaf("B"), leaf("C")))
			},
			id:   "C",
			zone: entity.DropZone{Relative: "A", Side: entity.DirLeft},
			want: container(entity.Horizontal, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, leaf("C"), leaf("A"), leaf("B")),
		},
		{
			name: "into a nested split",
			root: func() *entity.Node {
				return container(entity.Horizontal, []float64{0.5, 0.25, 0.25}, leaf("A"), leaf("B"), leaf("C"))
			},
			id:   "C",
			zone: entity.DropZone{Relative: "A", Side: entity.DirTop},
			want: container(entity.Horizontal, []float64{2.0 / 3, 1.0 / 3},
				container(entity.Vertical, []float64{0.5, 0.5}, leaf("C"), leaf("A")),
				leaf("B")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewManagePanesUseCase(ManagePanesOptions{})
			ws := workspaceWith(tt.root(), "A")
			ws.MaximizedPaneID = "A"

			assert.True(t, move(t, uc, ws, tt.id, tt.zone))
			assertSameTree(t, tt.want, ws.Tree.Root)
			assert.Equal(t, entity.PaneID(tt.id), ws.FocusedPaneID)
			assert.Empty(t, ws.MaximizedPaneID)
		})
	}
}

func TestManagePanesUseCase_Move_IntoSlot(t *testing.T) {
	t.Run("later in the same container", func(t *testing.T) {
		uc := NewManagePanesUseCase(ManagePanesOptions{})
		root := container(entity.Horizontal, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, leaf("A"), leaf("B"), leaf("C"))
		ws := workspaceWith(root, "B")

		assert.True(t, move(t, uc, ws, "A", entity.DropZone{Container: root, Position: 2}))
		assert.Equal(t, []entity.PaneID{"B", "A", "C"}, ws.Tree.Leaves())
		assert.Equal(t, entity.PaneID("A"), ws.FocusedPaneID)
	})

	t.Run("earlier in the same container", func(t *testing.T) {
		uc := NewManagePanesUseCase(ManagePanesOptions{})
		root := container(entity.Horizontal, []float64{0.25, 0.25, 0.25, 0.25}, leaf("A"), leaf("B"), leaf("C"), leaf("D"))
		ws := workspaceWith(root, "A")

		assert.True(t, move(t, uc, ws, "D", entity.DropZone{Container: root, Position: 1}))
		assert.Equal(t, []entity.PaneID{"A", "D", "B", "C"}, ws.Tree.Leaves())
	})

	t.Run("out of a nested split", func(t *testing.T) {
		uc := NewManagePanesUseCase(ManagePanesOptions{})
		root := container(entity.Horizontal, []float64{0.5, 0.5},
			leaf("A"),
			container(entity.Vertical, []float64{0.5, 0.5}, leaf("B"), leaf("C")))
		ws := workspaceWith(root, "A")

		assert.True(t, move(t, uc, ws, "B", entity.DropZone{Container: root, Position: 1}))
		assertSameTree(t, container(entity.Horizontal, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
			leaf("A"), leaf("B"), leaf("C")), ws.Tree.Root)
		assert.Equal(t, entity.PaneID("B"), ws.FocusedPaneID)
	})
}

func TestManagePanesUseCase_Move_NoOp(t *testing.T) {
	uc := NewManagePanesUseCase(ManagePanesOptions{})
	root := container(entity.Horizontal, []float64{0.6, 0.4}, leaf("A"), leaf("B"))
	ws := workspaceWith(root, "B")

	zones := []entity.DropZone{
		{Relative: "A", Side: entity.DirLeft},
		{Container: root, Position: 0},
		{Container: root, Position: 1},
	}
	for _, zone := range zones {
		assert.False(t, move(t, uc, ws, "A", zone))
	}
	assertSameTree(t, container(entity.Horizontal, []float64{0.6, 0.4}, leaf("A"), leaf("B")), ws.Tree.Root)
	assert.Equal(t, entity.PaneID("B"), ws.FocusedPaneID)
}

func TestManagePanesUseCase_Move_Errors(t *testing.T) {
	ctx := context.Background()
	uc := NewManagePanesUseCase(ManagePanesOptions{})
	detached := container(entity.Vertical, []float64{0.5, 0.5}, leaf("X"), leaf("Y"))

	tests := []struct {
		name    string
		id      entity.PaneID
		zone    entity.DropZone
		wantErr error
	}{
		{"unknown pane", "Z", entity.DropZone{Relative: "A", Side: entity.DirLeft}, ErrPaneNotFound},
		{"unknown relative", "A", entity.DropZone{Relative: "Z", Side: entity.DirLeft}, ErrPaneNotFound},
		{"bad side", "A", entity.DropZone{Relative: "B", Side: "middle"}, ErrInvalidDropZone},
		{"detached container", "A", entity.DropZone{Container: detached, Position: 1}, ErrInvalidDropZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := workspaceWith(container(entity.Horizontal, []float64{0.5, 0.5}, leaf("A"), leaf("B")), "A")

			moved, err := uc.Move(ctx, ws, tt.id, tt.zone)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, moved)
			assert.Equal(t, []entity.PaneID{"A", "B"}, ws.Tree.Leaves())
		})
	}

	t.Run("position out of range", func(t *testing.T) {
		root := container(entity.Horizontal, []float64{0.5, 0.5}, leaf("A"), leaf("B"))
		ws := workspaceWith(root, "A")

		_, err := uc.Move(ctx, ws, "B", entity.DropZone{Container: root, Position: 5})
		require.ErrorIs(t, err, ErrInvalidDropZone)
		assert.Equal(t, []entity.PaneID{"A", "B"}, ws.Tree.Leaves())
	})

	t.Run("no workspace", func(t *testing.T) {
		_, err := uc.Move(ctx, nil, "A", entity.DropZone{})
		require.ErrorIs(t, err, ErrWorkspaceNeeded)
	})
}

func TestManagePanesUseCase_Move_FromLayoutZones(t *testing.T) {
	uc := NewManagePanesUseCase(ManagePanesOptions{})
	ws := scenarioA(t, uc)
	result := entity.Layout(ws.Tree, ws.FocusedPaneID, entity.LayoutOptions{})

	// Bottom band of A.
	zone, ok := result.DropZoneAt(25, 95, "C")
	require.True(t, ok)
	assert.Equal(t, entity.PaneID("A"), zone.Relative)
	assert.Equal(t, entity.DirBottom, zone.Side)

	assert.True(t, move(t, uc, ws, "C", zone))
	assertSameTree(t, container(entity.Horizontal, []float64{0.5, 0.5},
		container(entity.Vertical, []float64{0.5, 0.5}, leaf("A"), leaf("C")),
		leaf("B"),
	), ws.Tree.Root)
	assert.Equal(t, entity.PaneID("C"), ws.FocusedPaneID)
}
