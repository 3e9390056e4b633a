package entity

import (
	"encoding/json"
	"slices"
	"time"
)

// LayoutSnapshotVersion is the current schema version for layout snapshots.
// Increment when making breaking changes to the serialization format.
const LayoutSnapshotVersion = 1

// NodeSnapshotType distinguishes serialized containers from panes.
type NodeSnapshotType string

const (
	SnapshotSplit NodeSnapshotType = "split"
	SnapshotPane  NodeSnapshotType = "pane"
)

// RecoveryToken is the opaque state a pane hands out so it can be recreated.
// The tree never inspects it.
type RecoveryToken = json.RawMessage

// LayoutSnapshot captures a tab's split tree. It is serialized to JSON and
// stored in the database.
type LayoutSnapshot struct {
	Version       int           `json:"version"`
	TabID         TabID         `json:"tab_id"`
	Root          *NodeSnapshot `json:"root"`
	FocusedPaneID PaneID        `json:"focused_pane_id,omitempty"`
	SavedAt       time.Time     `json:"saved_at"`
}

// NodeSnapshot captures a node in the split tree.
type NodeSnapshot struct {
	Type        NodeSnapshotType `json:"type"`
	Orientation string           `json:"orientation,omitempty"` // "h" or "v"
	Ratios      []float64        `json:"ratios,omitempty"`
	Children    []*NodeSnapshot  `json:"children,omitempty"`
	PaneID      PaneID           `json:"pane_id,omitempty"`
	Token       RecoveryToken    `json:"token,omitempty"`
}

// LayoutSnapshotInfo summarizes a stored snapshot for listings.
type LayoutSnapshotInfo struct {
	TabID     TabID
	PaneCount int
	Version   int
	SavedAt   time.Time
	SizeBytes int64
}

// SnapshotFromWorkspace builds a snapshot of ws. tokens supplies each pane's
// recovery token; panes without one are still recorded by ID.
func SnapshotFromWorkspace(ws *Workspace, tokens map[PaneID]RecoveryToken) *LayoutSnapshot {
	snap := &LayoutSnapshot{
		Version: LayoutSnapshotVersion,
		SavedAt: time.Now(),
	}
	if ws == nil || ws.Tree == nil {
		return snap
	}
	snap.TabID = ws.TabID
	snap.FocusedPaneID = ws.FocusedPaneID
	snap.Root = snapshotNode(ws.Tree.Root, tokens)
	return snap
}

func snapshotNode(n *Node, tokens map[PaneID]RecoveryToken) *NodeSnapshot {
	if n == nil {
		return nil
	}
	if n.Kind == NodeLeaf {
		return &NodeSnapshot{
			Type:   SnapshotPane,
			PaneID: n.PaneID,
			Token:  tokens[n.PaneID],
		}
	}

	snap := &NodeSnapshot{
		Type:        SnapshotSplit,
		Orientation: orientationCode(n.Orientation),
		Ratios:      append([]float64(nil), n.Ratios...),
		Children:    make([]*NodeSnapshot, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		snap.Children = append(snap.Children, snapshotNode(child, tokens))
	}
	return snap
}

// CountPanes returns the number of pane entries in the snapshot.
func (s *LayoutSnapshot) CountPanes() int {
	if s == nil {
		return 0
	}
	return s.Root.countPanes()
}

func (n *NodeSnapshot) countPanes() int {
	if n == nil {
		return 0
	}
	if n.Type == SnapshotPane {
		return 1
	}
	count := 0
	for _, child := range n.Children {
		count += child.countPanes()
	}
	return count
}

// Tree rebuilds the shape of the snapshot with the recorded pane IDs. The
// result is normalized; an empty snapshot yields an empty tree.
func (s *LayoutSnapshot) Tree() *SplitTree {
	if s == nil || s.Root == nil {
		return &SplitTree{}
	}
	root := s.Root.node()
	if root.IsLeaf() {
		root = NewContainer(Horizontal, root)
	}
	t := &SplitTree{Root: root}
	t.Normalize()
	return t
}

func (n *NodeSnapshot) node() *Node {
	if n.Type == SnapshotPane {
		return NewLeaf(n.PaneID)
	}
	children := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		if child != nil {
			children = append(children, child.node())
		}
	}
	c := NewContainer(OrientationFromCode(n.Orientation), children...)
	if len(n.Ratios) == len(children) {
		c.Ratios = slices.Clone(n.Ratios)
	}
	return c
}

// OrientationFromCode parses the compact "h"/"v" orientation code.
func OrientationFromCode(code string) Orientation {
	if code == "v" {
		return Vertical
	}
	return Horizontal
}

func orientationCode(o Orientation) string {
	if o == Vertical {
		return "v"
	}
	return "h"
}
