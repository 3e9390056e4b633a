package entity

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// RatioEpsilon is the tolerance used when checking that ratios sum to one.
const RatioEpsilon = 1e-9

// ErrInvariantViolation is wrapped by every error returned from Validate.
var ErrInvariantViolation = errors.New("split tree invariant violated")

// SplitTree is the recursive layout of a tab's panes.
// Root is always a container; it only collapses when the owning tab closes.
type SplitTree struct {
	Root *Node
}

// NewSplitTree creates a tree holding a single pane.
func NewSplitTree(first PaneID) *SplitTree {
	return &SplitTree{Root: NewContainer(Horizontal, NewLeaf(first))}
}

// AllLeaves yields pane IDs in left-to-right pre-order.
// The sequence is lazy and can be ranged over any number of times.
func (t *SplitTree) AllLeaves() iter.Seq[PaneID] {
	return func(yield func(PaneID) bool) {
		if t == nil {
			return
		}
		t.Root.Walk(func(n *Node) bool {
			if n.Kind == NodeLeaf {
				return yield(n.PaneID)
			}
			return true
		})
	}
}

// Leaves materializes AllLeaves.
func (t *SplitTree) Leaves() []PaneID {
	var ids []PaneID
	for id := range t.AllLeaves() {
		ids = append(ids, id)
	}
	return ids
}

// LeafCount returns the number of panes in the tree.
func (t *SplitTree) LeafCount() int {
	count := 0
	for range t.AllLeaves() {
		count++
	}
	return count
}

// IsEmpty reports whether no pane remains.
func (t *SplitTree) IsEmpty() bool {
	return t == nil || t.Root == nil || len(t.Root.Children) == 0
}

// FindLeaf returns the leaf node for a pane, or nil.
func (t *SplitTree) FindLeaf(id PaneID) *Node {
	if t == nil {
		return nil
	}
	var found *Node
	t.Root.Walk(func(n *Node) bool {
		if n.Kind == NodeLeaf && n.PaneID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Contains reports whether the pane is part of the tree.
func (t *SplitTree) Contains(id PaneID) bool {
	return t.FindLeaf(id) != nil
}

// GetParent returns the container directly holding target, or nil when
// target is the root or not part of the tree.
func (t *SplitTree) GetParent(target *Node) *Node {
	if t == nil || target == nil || target == t.Root {
		return nil
	}
	var parent *Node
	t.Root.Walk(func(n *Node) bool {
		if n.IndexOf(target) >= 0 {
			parent = n
			return false
		}
		return true
	})
	return parent
}

// Attached reports whether n is the root or reachable from it.
func (t *SplitTree) Attached(n *Node) bool {
	if t == nil || t.Root == nil || n == nil {
		return false
	}
	return n == t.Root || t.GetParent(n) != nil
}

// Normalize restores the structural invariants: empty containers are pruned,
// single-child containers are replaced by their child, and containers sharing
// their parent's orientation are spliced into the parent. Ratios of every
// container are rescaled to sum to one. Normalize is idempotent.
func (t *SplitTree) Normalize() {
	if t == nil || t.Root == nil {
		return
	}
	normalizeNode(t.Root)

	// Hoist a lone container child so the root never wraps a single container.
	for len(t.Root.Children) == 1 && t.Root.Children[0].IsContainer() {
		t.Root = t.Root.Children[0]
	}
}

func normalizeNode(n *Node) {
	repairRatios(n)

	for i := 0; i < len(n.Children); i++ {
		child := n.Children[i]
		if !child.IsContainer() {
			continue
		}
		normalizeNode(child)

		switch {
		case len(child.Children) == 0:
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			n.Ratios = append(n.Ratios[:i], n.Ratios[i+1:]...)
			i--
		case len(child.Children) == 1:
			// Keep the slot's ratio and revisit it: the promoted child may
			// itself share this node's orientation.
			n.Children[i] = child.Children[0]
			i--
		case child.Orientation == n.Orientation:
			ratio := n.Ratios[i]
			children := make([]*Node, 0, len(n.Children)+len(child.Children)-1)
			children = append(children, n.Children[:i]...)
			children = append(children, child.Children...)
			children = append(children, n.Children[i+1:]...)

			ratios := make([]float64, 0, len(children))
			ratios = append(ratios, n.Ratios[:i]...)
			for _, r := range child.Ratios {
				ratios = append(ratios, r*ratio)
			}
			ratios = append(ratios, n.Ratios[i+1:]...)

			n.Children = children
			n.Ratios = ratios
			i += len(child.Children) - 1
		}
	}

	total := 0.0
	for _, r := range n.Ratios {
		total += r
	}
	if total == 0 {
		total = 1
	}
	for i := range n.Ratios {
		n.Ratios[i] /= total
	}
}

// repairRatios resets a container's ratios to an even split when they no
// longer line up with its children or hold unusable values.
func repairRatios(n *Node) {
	valid := len(n.Ratios) == len(n.Children)
	if valid {
		sum := 0.0
		for _, r := range n.Ratios {
			if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
				valid = false
				break
			}
			sum += r
		}
		if len(n.Ratios) > 0 && sum == 0 {
			valid = false
		}
	}
	if valid {
		return
	}
	n.Ratios = make([]float64, len(n.Children))
	for i := range n.Ratios {
		n.Ratios[i] = 1 / float64(len(n.Children))
	}
}

// Equalize gives every child of every container an equal share.
func (t *SplitTree) Equalize() {
	if t == nil {
		return
	}
	t.Root.Walk(func(n *Node) bool {
		if n.Kind == NodeContainer && len(n.Children) > 0 {
			n.Ratios = make([]float64, len(n.Children))
			for i := range n.Ratios {
				n.Ratios[i] = 1 / float64(len(n.Children))
			}
		}
		return true
	})
}

// OffsetRatio returns the left/top offset of child index within container,
// as a fraction of the container's extent.
func OffsetRatio(container *Node, index int) float64 {
	offset := 0.0
	for i := 0; i < index && i < len(container.Ratios); i++ {
		offset += container.Ratios[i]
	}
	return offset
}

// Clone returns a deep copy of the tree.
func (t *SplitTree) Clone() *SplitTree {
	if t == nil {
		return nil
	}
	return &SplitTree{Root: t.Root.Clone()}
}

// String renders the tree compactly for logs and test failures.
func (t *SplitTree) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Root.String()
}

// Validate checks every structural invariant and returns the first violation.
// The root may hold a single leaf; an empty root is accepted during teardown.
func (t *SplitTree) Validate() error {
	if t == nil || t.Root == nil {
		return nil
	}
	if !t.Root.IsContainer() {
		return fmt.Errorf("%w: root is not a container", ErrInvariantViolation)
	}
	if len(t.Root.Children) == 1 && t.Root.Children[0].IsContainer() {
		return fmt.Errorf("%w: root wraps a single container", ErrInvariantViolation)
	}
	return validateNode(t.Root, nil)
}

func validateNode(n *Node, parent *Node) error {
	if n.Kind != NodeContainer {
		return nil
	}
	if len(n.Ratios) != len(n.Children) {
		return fmt.Errorf("%w: %d ratios for %d children", ErrInvariantViolation, len(n.Ratios), len(n.Children))
	}
	if parent != nil {
		switch {
		case len(n.Children) == 0:
			return fmt.Errorf("%w: empty container", ErrInvariantViolation)
		case len(n.Children) == 1:
			return fmt.Errorf("%w: single-child container", ErrInvariantViolation)
		case n.Orientation == parent.Orientation:
			return fmt.Errorf("%w: nested %s container", ErrInvariantViolation, n.Orientation)
		}
	}
	if len(n.Children) > 0 {
		sum := 0.0
		for _, r := range n.Ratios {
			sum += r
		}
		if math.Abs(sum-1) >= RatioEpsilon {
			return fmt.Errorf("%w: ratios sum to %v", ErrInvariantViolation, sum)
		}
	}
	for _, child := range n.Children {
		if err := validateNode(child, n); err != nil {
			return err
		}
	}
	return nil
}
