// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"strings"
)

// PaneID uniquely identifies a pane within a tab.
type PaneID string

// Orientation is the axis along which a container lays out its children.
type Orientation int

const (
	Horizontal Orientation = iota // Children arranged left to right
	Vertical                      // Children arranged top to bottom
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// Direction is a screen direction used for splitting and navigation.
type Direction string

const (
	DirLeft   Direction = "left"
	DirRight  Direction = "right"
	DirTop    Direction = "top"
	DirBottom Direction = "bottom"
)

// ParseDirection accepts the canonical names plus the up/down aliases used by
// navigation hotkeys.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	case "top", "up", "t":
		return DirTop, nil
	case "bottom", "down", "b":
		return DirBottom, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// Orientation returns the container orientation matching this direction.
func (d Direction) Orientation() Orientation {
	if d == DirTop || d == DirBottom {
		return Vertical
	}
	return Horizontal
}

// IsBackward is true for directions that point towards lower child indices.
func (d Direction) IsBackward() bool {
	return d == DirLeft || d == DirTop
}

// NodeKind tags the variant held by a Node.
type NodeKind int

const (
	NodeLeaf NodeKind = iota
	NodeContainer
)

// Node is a node of the split tree. It is either:
//   - Leaf: references a pane by ID; the tree never owns the pane itself
//   - Container: ordered children with parallel ratios along Orientation
type Node struct {
	Kind NodeKind

	// Leaf
	PaneID PaneID

	// Container
	Orientation Orientation
	Children    []*Node
	Ratios      []float64
}

// NewLeaf creates a leaf node for a pane.
func NewLeaf(id PaneID) *Node {
	return &Node{Kind: NodeLeaf, PaneID: id}
}

// NewContainer creates a container with evenly distributed ratios.
func NewContainer(orientation Orientation, children ...*Node) *Node {
	ratios := make([]float64, len(children))
	for i := range ratios {
		ratios[i] = 1 / float64(len(children))
	}
	return &Node{
		Kind:        NodeContainer,
		Orientation: orientation,
		Children:    children,
		Ratios:      ratios,
	}
}

// IsLeaf returns true if this node references a pane.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Kind == NodeLeaf
}

// IsContainer returns true if this node holds children.
func (n *Node) IsContainer() bool {
	return n != nil && n.Kind == NodeContainer
}

// IndexOf returns the position of child in n.Children, or -1.
func (n *Node) IndexOf(child *Node) int {
	if !n.IsContainer() {
		return -1
	}
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Walk traverses the subtree in pre-order calling fn for each node.
// Returns false if fn stopped the walk early.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FirstLeaf descends through first children until a leaf is reached.
func (n *Node) FirstLeaf() *Node {
	current := n
	for current.IsContainer() {
		if len(current.Children) == 0 {
			return nil
		}
		current = current.Children[0]
	}
	return current
}

// Clone returns a deep copy of the subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		Kind:        n.Kind,
		PaneID:      n.PaneID,
		Orientation: n.Orientation,
	}
	if n.Kind == NodeContainer {
		clone.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
		clone.Ratios = append([]float64(nil), n.Ratios...)
	}
	return clone
}

// String renders the subtree compactly, e.g. "H[a:0.50 V[b:0.50 c:0.50]:0.50]".
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.Kind == NodeLeaf {
		b.WriteString(string(n.PaneID))
		return
	}
	if n.Orientation == Vertical {
		b.WriteString("V[")
	} else {
		b.WriteString("H[")
	}
	for i, child := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		child.format(b)
		if i < len(n.Ratios) {
			fmt.Fprintf(b, ":%.2f", n.Ratios[i])
		}
	}
	b.WriteByte(']')
}
