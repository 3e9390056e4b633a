// Package focus tracks which pane of a tab holds keyboard focus.
package focus

import (
	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
)

// Tracker remembers the focused pane and delivers focus/blur notifications.
// Only the panes involved in a change are notified.
type Tracker struct {
	current port.Pane
	panes   func() []port.Pane
}

// NewTracker creates a tracker. panes lists every pane of the tab and is
// used when the whole tab loses focus.
func NewTracker(panes func() []port.Pane) *Tracker {
	return &Tracker{panes: panes}
}

// Current returns the focused pane, or nil.
func (t *Tracker) Current() port.Pane {
	return t.current
}

// CurrentID returns the focused pane's ID, or "".
func (t *Tracker) CurrentID() entity.PaneID {
	if t.current == nil {
		return ""
	}
	return t.current.ID()
}

// Set moves focus to p, blurring the previous pane. Setting the already
// focused pane focuses it again without a blur.
func (t *Tracker) Set(p port.Pane) {
	if p == nil {
		return
	}
	if t.current != nil && t.current != p {
		t.current.Blur()
	}
	t.current = p
	p.Focus()
}

// Forget drops the tracked pane if it is id, without notifying it.
// Used when a pane leaves the tab.
func (t *Tracker) Forget(id entity.PaneID) {
	if t.current != nil && t.current.ID() == id {
		t.current = nil
	}
}

// TabFocused re-applies focus to the tracked pane.
func (t *Tracker) TabFocused() {
	if t.current != nil {
		t.current.Focus()
	}
}

// TabBlurred blurs every pane of the tab.
func (t *Tracker) TabBlurred() {
	if t.panes == nil {
		return
	}
	for _, p := range t.panes() {
		p.Blur()
	}
}
