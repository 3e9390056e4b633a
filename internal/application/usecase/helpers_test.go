package usecase

import (
	"context"
	"testing"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(id string) *entity.Node {
	return entity.NewLeaf(entity.PaneID(id))
}

func container(o entity.Orientation, ratios []float64, children ...*entity.Node) *entity.Node {
	return &entity.Node{
		Kind:        entity.NodeContainer,
		Orientation: o,
		Children:    children,
		Ratios:      ratios,
	}
}

func workspaceWith(root *entity.Node, focused string) *entity.Workspace {
	return &entity.Workspace{
		TabID:         "tab",
		Tree:          &entity.SplitTree{Root: root},
		FocusedPaneID: entity.PaneID(focused),
	}
}

func assertSameTree(t *testing.T, want, got *entity.Node) {
	t.Helper()
	require.Equal(t, want.Kind, got.Kind)
	if want.Kind == entity.NodeLeaf {
		assert.Equal(t, want.PaneID, got.PaneID)
		return
	}
	require.Equal(t, want.Orientation, got.Orientation, "orientation of %s", got)
	require.Len(t, got.Children, len(want.Children), "children of %s", got)
	for i := range want.Ratios {
		assert.InDelta(t, want.Ratios[i], got.Ratios[i], 1e-9, "ratio %d of %s", i, got)
	}
	for i := range want.Children {
		assertSameTree(t, want.Children[i], got.Children[i])
	}
}

type fakePane struct {
	id       entity.PaneID
	token    entity.RecoveryToken
	tokenErr error
	focused  int
	blurred  int
	destroys int
}

func (p *fakePane) ID() entity.PaneID                      { return p.id }
func (p *fakePane) Title() string                          { return string(p.id) }
func (p *fakePane) Focus()                                 { p.focused++ }
func (p *fakePane) Blur()                                  { p.blurred++ }
func (p *fakePane) CanClose(context.Context) (bool, error) { return true, nil }
func (p *fakePane) Destroy()                               { p.destroys++ }

func (p *fakePane) RecoveryToken(context.Context) (entity.RecoveryToken, error) {
	return p.token, p.tokenErr
}
