package entity

import "time"

// TabID uniquely identifies the tab owning a workspace.
type TabID string

// Workspace is the pane layout of a single tab: the split tree plus the
// focus and maximize state that travel with it.
type Workspace struct {
	TabID           TabID
	Tree            *SplitTree
	FocusedPaneID   PaneID // Currently focused pane
	MaximizedPaneID PaneID // Pane shown alone, empty when none
	CreatedAt       time.Time
}

// NewWorkspace creates a workspace holding a single focused pane.
func NewWorkspace(tabID TabID, first PaneID) *Workspace {
	return &Workspace{
		TabID:         tabID,
		Tree:          NewSplitTree(first),
		FocusedPaneID: first,
		CreatedAt:     time.Now(),
	}
}

// PaneCount returns the number of panes in the workspace.
func (w *Workspace) PaneCount() int {
	if w == nil || w.Tree == nil {
		return 0
	}
	return w.Tree.LeafCount()
}

// FocusedLeaf returns the leaf node of the focused pane.
func (w *Workspace) FocusedLeaf() *Node {
	if w == nil || w.FocusedPaneID == "" {
		return nil
	}
	return w.Tree.FindLeaf(w.FocusedPaneID)
}

// IsMaximized reports whether a pane currently fills the whole tab.
func (w *Workspace) IsMaximized() bool {
	return w.MaximizedPaneID != "" && w.Tree.Contains(w.MaximizedPaneID)
}
