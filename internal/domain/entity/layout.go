package entity

// DefaultDimmedOpacity is applied to every pane except the focused one.
const DefaultDimmedOpacity = 0.75

// Rect is a pane's placement in percent of the tab's bounding box,
// plus the opacity hint consumed by renderers.
type Rect struct {
	X, Y    float64
	W, H    float64
	Opacity float64
}

// FullBounds is the whole tab area.
func FullBounds() Rect {
	return Rect{X: 0, Y: 0, W: 100, H: 100, Opacity: 1}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Boundary is the draggable edge between Container.Children[Index-1] and
// Container.Children[Index]. Its rectangle has zero thickness along the
// container's axis.
type Boundary struct {
	Container *Node
	Index     int
	Rect      Rect
	// Area is the rectangle of the whole container.
	Area Rect
}

// Orientation returns the axis the boundary moves along.
func (b Boundary) Orientation() Orientation {
	return b.Container.Orientation
}

// AxisLength returns the container's extent along the boundary's axis.
func (b Boundary) AxisLength() float64 {
	if b.Container.Orientation == Vertical {
		return b.Area.H
	}
	return b.Area.W
}

// DropZoneFraction is the share of a pane's width or height covered by each
// of its side drop zones.
const DropZoneFraction = 0.25

// DropZone is an area a dragged pane can be released on. A relative zone
// places the pane on Side of Relative. An absolute zone, with Container set,
// places it at Position among the container's children.
type DropZone struct {
	Rect      Rect
	Relative  PaneID
	Side      Direction
	Container *Node
	Position  int
}

// IsAbsolute reports whether the zone targets a container slot.
func (z DropZone) IsAbsolute() bool {
	return z.Container != nil
}

// Targets reports whether dropping id on the zone would leave the tree
// unchanged: the pane itself or the slots on either side of it.
func (z DropZone) Targets(id PaneID) bool {
	if !z.IsAbsolute() {
		return z.Relative == id
	}
	for _, i := range []int{z.Position - 1, z.Position} {
		if i >= 0 && i < len(z.Container.Children) {
			if c := z.Container.Children[i]; c.IsLeaf() && c.PaneID == id {
				return true
			}
		}
	}
	return false
}

// LayoutOptions tunes a layout pass.
type LayoutOptions struct {
	// Bounds defaults to FullBounds when zero.
	Bounds Rect
	// DimmedOpacity defaults to DefaultDimmedOpacity when zero.
	DimmedOpacity float64
	// Maximized, when set to a pane in the tree, gives that pane the whole
	// bounds and hides every other pane.
	Maximized PaneID
}

// LayoutResult is the flat output of a layout pass.
type LayoutResult struct {
	Rects      map[PaneID]Rect
	Boundaries []Boundary
	// DropZones lists container slots first, then the four sides of every
	// visible pane. Slot zones straddle boundaries and win over side zones.
	DropZones []DropZone
	Focused   PaneID
}

// DropZoneAt returns the zone under the point where dragging could release
// pane dragged. Zones that would not move it are skipped.
func (r LayoutResult) DropZoneAt(x, y float64, dragged PaneID) (DropZone, bool) {
	for _, z := range r.DropZones {
		if z.Rect.Contains(x, y) && !z.Targets(dragged) {
			return z, true
		}
	}
	return DropZone{}, false
}

// Layout maps every leaf of tree to its rectangle. It is pure: the tree is
// only read. Callers normalize the tree before laying it out.
func Layout(tree *SplitTree, focused PaneID, opts LayoutOptions) LayoutResult {
	bounds := opts.Bounds
	if bounds.IsEmpty() {
		bounds = FullBounds()
	}
	dimmed := opts.DimmedOpacity
	if dimmed <= 0 {
		dimmed = DefaultDimmedOpacity
	}

	result := LayoutResult{
		Rects:   make(map[PaneID]Rect),
		Focused: focused,
	}
	if tree == nil || tree.Root == nil {
		return result
	}

	if opts.Maximized != "" && tree.Contains(opts.Maximized) {
		for id := range tree.AllLeaves() {
			result.Rects[id] = Rect{X: bounds.X, Y: bounds.Y}
		}
		full := bounds
		full.Opacity = 1
		result.Rects[opts.Maximized] = full
		return result
	}

	l := layouter{focused: focused, dimmed: dimmed, result: &result}
	l.node(tree.Root, bounds.X, bounds.Y, bounds.W, bounds.H)
	result.DropZones = append(l.slots, l.sides...)
	return result
}

type layouter struct {
	focused PaneID
	dimmed  float64
	result  *LayoutResult
	slots   []DropZone
	sides   []DropZone
}

func (l *layouter) node(n *Node, x, y, w, h float64) {
	if n.Kind == NodeLeaf {
		opacity := l.dimmed
		if n.PaneID == l.focused {
			opacity = 1
		}
		l.result.Rects[n.PaneID] = Rect{X: x, Y: y, W: w, H: h, Opacity: opacity}
		l.sideZones(n.PaneID, x, y, w, h)
		return
	}

	size := w
	if n.Orientation == Vertical {
		size = h
	}

	offset, prevSize := 0.0, 0.0
	for i, child := range n.Children {
		ratio := 0.0
		if i < len(n.Ratios) {
			ratio = n.Ratios[i]
		}
		childSize := ratio * size

		if i > 0 {
			l.boundary(n, i, x, y, w, h, offset)
			l.slotZone(n, i, x, y, w, h, offset, min(prevSize, childSize))
		}
		prevSize = childSize

		if n.Orientation == Vertical {
			l.node(child, x, y+offset, w, childSize)
		} else {
			l.node(child, x+offset, y, childSize, h)
		}
		offset += childSize
	}
}

func (l *layouter) boundary(n *Node, index int, x, y, w, h, offset float64) {
	rect := Rect{X: x + offset, Y: y, W: 0, H: h}
	if n.Orientation == Vertical {
		rect = Rect{X: x, Y: y + offset, W: w, H: 0}
	}
	l.result.Boundaries = append(l.result.Boundaries, Boundary{
		Container: n,
		Index:     index,
		Rect:      rect,
		Area:      Rect{X: x, Y: y, W: w, H: h},
	})
}

// sideZones splits a pane into four edge bands. Top and bottom span the
// full width; left and right fill the height between them.
func (l *layouter) sideZones(id PaneID, x, y, w, h float64) {
	fw, fh := w*DropZoneFraction, h*DropZoneFraction
	l.sides = append(l.sides,
		DropZone{Rect: Rect{X: x, Y: y, W: w, H: fh}, Relative: id, Side: DirTop},
		DropZone{Rect: Rect{X: x, Y: y + h - fh, W: w, H: fh}, Relative: id, Side: DirBottom},
		DropZone{Rect: Rect{X: x, Y: y + fh, W: fw, H: h - 2*fh}, Relative: id, Side: DirLeft},
		DropZone{Rect: Rect{X: x + w - fw, Y: y + fh, W: fw, H: h - 2*fh}, Relative: id, Side: DirRight},
	)
}

// slotZone covers the boundary before child index with a band as thick as
// half a side zone of the smaller neighbour.
func (l *layouter) slotZone(n *Node, index int, x, y, w, h, offset, neighbour float64) {
	half := neighbour * DropZoneFraction / 2
	rect := Rect{X: x + offset - half, Y: y, W: 2 * half, H: h}
	if n.Orientation == Vertical {
		rect = Rect{X: x, Y: y + offset - half, W: w, H: 2 * half}
	}
	l.slots = append(l.slots, DropZone{Rect: rect, Container: n, Position: index})
}
