package entity_test

import (
	"testing"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRect(t *testing.T, want, got entity.Rect) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
	assert.InDelta(t, want.W, got.W, 1e-9, "w")
	assert.InDelta(t, want.H, got.H, 1e-9, "h")
	assert.InDelta(t, want.Opacity, got.Opacity, 1e-9, "opacity")
}

func TestLayout_NestedContainers(t *testing.T) {
	// H[a:0.5 V[b:0.25 c:0.75]:0.5]
	tree := &entity.SplitTree{Root: container(entity.Horizontal, []float64{0.5, 0.5},
		leaf("a"),
		container(entity.Vertical, []float64{0.25, 0.75}, leaf("b"), leaf("c")),
	)}

	result := entity.Layout(tree, "c", entity.LayoutOptions{})

	require.Len(t, result.Rects, 3)
	assertRect(t, entity.Rect{X: 0, Y: 0, W: 50, H: 100, Opacity: 0.75}, result.Rects["a"])
	assertRect(t, entity.Rect{X: 50, Y: 0, W: 50, H: 25, Opacity: 0.75}, result.Rects["b"])
	assertRect(t, entity.Rect{X: 50, Y: 25, W: 50, H: 75, Opacity: 1}, result.Rects["c"])
	assert.Equal(t, entity.PaneID("c"), result.Focused)
}

func TestLayout_Boundaries(t *testing.T) {
	inner := container(entity.Vertical, []float64{0.25, 0.75}, leaf("b"), leaf("c"))
	tree := &entity.SplitTree{Root: container(entity.Horizontal, []float64{0.5, 0.5}, leaf("a"), inner)}

	result := entity.Layout(tree, "a", entity.LayoutOptions{})

	require.Len(t, result.Boundaries, 2)

	root := result.Boundaries[0]
	assert.Same(t, tree.Root, root.Container)
	assert.Equal(t, 1, root.Index)
	assert.Equal(t, entity.Horizontal, root.Orientation())
	assertRect(t, entity.Rect{X: 50, Y: 0, W: 0, H: 100}, root.Rect)
	assert.InDelta(t, 100.0, root.AxisLength(), 1e-9)

	nested := result.Boundaries[1]
	assert.Same(t, inner, nested.Container)
	assert.Equal(t, entity.Vertical, nested.Orientation())
	assertRect(t, entity.Rect{X: 50, Y: 25, W: 50, H: 0}, nested.Rect)
	assertRect(t, entity.Rect{X: 50, Y: 0, W: 50, H: 100}, nested.Area)
	assert.InDelta(t, 100.0, nested.AxisLength(), 1e-9)
}

func TestLayout_CustomBoundsAndOpacity(t *testing.T) {
	tree := &entity.SplitTree{Root: container(entity.Vertical, []float64{0.5, 0.5}, leaf("a"), leaf("b"))}

	result := entity.Layout(tree, "a", entity.LayoutOptions{
		Bounds:        entity.Rect{X: 10, Y: 10, W: 80, H: 40},
		DimmedOpacity: 0.5,
	})

	assertRect(t, entity.Rect{X: 10, Y: 10, W: 80, H: 20, Opacity: 1}, result.Rects["a"])
	assertRect(t, entity.Rect{X: 10, Y: 30, W: 80, H: 20, Opacity: 0.5}, result.Rects["b"])
}

func TestLayout_Maximized(t *testing.T) {
	tree := &entity.SplitTree{Root: container(entity.Horizontal, []float64{0.5, 0.5}, leaf("a"), leaf("b"))}

	result := entity.Layout(tree, "a", entity.LayoutOptions{Maximized: "b"})

	assertRect(t, entity.Rect{X: 0, Y: 0, W: 100, H: 100, Opacity: 1}, result.Rects["b"])
	assert.True(t, result.Rects["a"].IsEmpty())
	assert.Zero(t, result.Rects["a"].Opacity)
	assert.Empty(t, result.Boundaries)

	// Unknown maximized pane falls back to the regular layout.
	result = entity.Layout(tree, "a", entity.LayoutOptions{Maximized: "ghost"})
	assertRect(t, entity.Rect{X: 50, Y: 0, W: 50, H: 100, Opacity: 0.75}, result.Rects["b"])
}

func TestLayout_CoversWholeArea(t *testing.T) {
	tree := &entity.SplitTree{Root: container(entity.Horizontal, []float64{0.2, 0.3, 0.5},
		leaf("a"),
		container(entity.Vertical, []float64{0.1, 0.9}, leaf("b"), leaf("c")),
		leaf("d"),
	)}

	result := entity.Layout(tree, "", entity.LayoutOptions{})

	area := 0.0
	for _, r := range result.Rects {
		area += r.W * r.H
	}
	assert.InDelta(t, 100.0*100.0, area, 1e-6)
}

func TestRect_Helpers(t *testing.T) {
	r := entity.Rect{X: 10, Y: 20, W: 30, H: 40}
	cx, cy := r.Center()
	assert.Equal(t, 25.0, cx)
	assert.Equal(t, 40.0, cy)
	assert.True(t, r.Contains(10, 20))
	assert.False(t, r.Contains(40, 20))
	assert.False(t, r.IsEmpty())
	assert.True(t, entity.Rect{W: 0, H: 10}.IsEmpty())
}

func TestLayout_DropZones(t *testing.T) {
	inner := container(entity.Vertical, []float64{0.25, 0.75}, leaf("b"), leaf("c"))
	tree := &entity.SplitTree{Root: container(entity.Horizontal, []float64{0.5, 0.5}, leaf("a"), inner)}

	result := entity.Layout(tree, "a", entity.LayoutOptions{})

	// Two slots, then four sides per pane.
	require.Len(t, result.DropZones, 2+3*4)

	root := result.DropZones[0]
	assert.True(t, root.IsAbsolute())
	assert.Same(t, tree.Root, root.Container)
	assert.Equal(t, 1, root.Position)
	assertRect(t, entity.Rect{X: 43.75, Y: 0, W: 12.5, H: 100}, root.Rect)

	nested := result.DropZones[1]
	assert.Same(t, inner, nested.Container)
	assert.Equal(t, 1, nested.Position)
	assertRect(t, entity.Rect{X: 50, Y: 21.875, W: 50, H: 6.25}, nested.Rect)

	sides := map[entity.Direction]entity.Rect{}
	for _, z := range result.DropZones[2:] {
		if z.Relative == "a" {
			sides[z.Side] = z.Rect
		}
	}
	require.Len(t, sides, 4)
	assertRect(t, entity.Rect{X: 0, Y: 0, W: 50, H: 25}, sides[entity.DirTop])
	assertRect(t, entity.Rect{X: 0, Y: 75, W: 50, H: 25}, sides[entity.DirBottom])
	assertRect(t, entity.Rect{X: 0, Y: 25, W: 12.5, H: 50}, sides[entity.DirLeft])
	assertRect(t, entity.Rect{X: 37.5, Y: 25, W: 12.5, H: 50}, sides[entity.DirRight])
}

func TestLayoutResult_DropZoneAt(t *testing.T) {
	inner := container(entity.Vertical, []float64{0.25, 0.75}, leaf("b"), leaf("c"))
	tree := &entity.SplitTree{Root: container(entity.Horizontal, []float64{0.5, 0.5}, leaf("a"), inner)}
	result := entity.Layout(tree, "a", entity.LayoutOptions{})

	t.Run("slot wins over sides", func(t *testing.T) {
		zone, ok := result.DropZoneAt(45, 50, "b")
		require.True(t, ok)
		assert.Same(t, tree.Root, zone.Container)
		assert.Equal(t, 1, zone.Position)
	})

	t.Run("zones around the dragged pane are skipped", func(t *testing.T) {
		_, ok := result.DropZoneAt(45, 50, "a")
		assert.False(t, ok)
	})

	t.Run("side of another pane", func(t *testing.T) {
		zone, ok := result.DropZoneAt(75, 90, "b")
		require.True(t, ok)
		assert.False(t, zone.IsAbsolute())
		assert.Equal(t, entity.PaneID("c"), zone.Relative)
		assert.Equal(t, entity.DirBottom, zone.Side)
	})

	t.Run("pane center", func(t *testing.T) {
		_, ok := result.DropZoneAt(75, 60, "b")
		assert.False(t, ok)
	})

	t.Run("maximized layout has no zones", func(t *testing.T) {
		maxed := entity.Layout(tree, "a", entity.LayoutOptions{Maximized: "a"})
		assert.Empty(t, maxed.DropZones)
	})
}

func TestDropZone_Targets(t *testing.T) {
	root := container(entity.Horizontal, []float64{0.5, 0.5}, leaf("a"),
		container(entity.Vertical, []float64{0.5, 0.5}, leaf("b"), leaf("c")))

	assert.True(t, entity.DropZone{Relative: "a", Side: entity.DirLeft}.Targets("a"))
	assert.False(t, entity.DropZone{Relative: "a", Side: entity.DirLeft}.Targets("b"))
	assert.True(t, entity.DropZone{Container: root, Position: 0}.Targets("a"))
	assert.True(t, entity.DropZone{Container: root, Position: 1}.Targets("a"))
	assert.False(t, entity.DropZone{Container: root, Position: 2}.Targets("a"))
	assert.False(t, entity.DropZone{Container: root, Position: 2}.Targets("b"))
}
