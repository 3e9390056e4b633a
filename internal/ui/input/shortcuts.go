// Package input maps hotkey names and key strings to pane actions.
package input

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
	"github.com/bnema/dumbterm/internal/logging"
)

// ErrUnknownHotkey is returned for hotkey names no action answers to.
var ErrUnknownHotkey = errors.New("unknown hotkey")

// Action is a hotkey name as delivered by the hotkey detector.
type Action string

const (
	// Split actions duplicate the focused pane.
	ActionSplitRight  Action = "split-right"
	ActionSplitBottom Action = "split-bottom"
	ActionSplitLeft   Action = "split-left"
	ActionSplitTop    Action = "split-top"

	// Directional focus; both families behave the same.
	ActionSplitNavLeft  Action = "split-nav-left"
	ActionSplitNavRight Action = "split-nav-right"
	ActionSplitNavUp    Action = "split-nav-up"
	ActionSplitNavDown  Action = "split-nav-down"
	ActionPaneNavLeft   Action = "pane-nav-left"
	ActionPaneNavRight  Action = "pane-nav-right"
	ActionPaneNavUp     Action = "pane-nav-up"
	ActionPaneNavDown   Action = "pane-nav-down"

	// Leaf-order focus cycling.
	ActionPaneNavPrevious Action = "pane-nav-previous"
	ActionPaneNavNext     Action = "pane-nav-next"

	ActionPaneMaximize Action = "pane-maximize"
	ActionClosePane    Action = "close-pane"
	ActionPaneEqualize Action = "pane-equalize"

	// Keyboard resize moves the focused pane's nearest boundary.
	ActionResizeLeft  Action = "resize-pane-left"
	ActionResizeRight Action = "resize-pane-right"
	ActionResizeUp    Action = "resize-pane-up"
	ActionResizeDown  Action = "resize-pane-down"
)

var allActions = []Action{
	ActionSplitRight, ActionSplitBottom, ActionSplitLeft, ActionSplitTop,
	ActionSplitNavLeft, ActionSplitNavRight, ActionSplitNavUp, ActionSplitNavDown,
	ActionPaneNavLeft, ActionPaneNavRight, ActionPaneNavUp, ActionPaneNavDown,
	ActionPaneNavPrevious, ActionPaneNavNext,
	ActionPaneMaximize, ActionClosePane, ActionPaneEqualize,
	ActionResizeLeft, ActionResizeRight, ActionResizeUp, ActionResizeDown,
}

// Actions lists every known action.
func Actions() []Action {
	return slices.Clone(allActions)
}

// ParseAction validates a hotkey name.
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(allActions, a) {
		return "", fmt.Errorf("%w: %q", ErrUnknownHotkey, name)
	}
	return a, nil
}

// SplitDirection returns the side a split action places the new pane on.
func (a Action) SplitDirection() (entity.Direction, bool) {
	switch a {
	case ActionSplitRight:
		return entity.DirRight, true
	case ActionSplitBottom:
		return entity.DirBottom, true
	case ActionSplitLeft:
		return entity.DirLeft, true
	case ActionSplitTop:
		return entity.DirTop, true
	}
	return "", false
}

// NavDirection returns the direction of a directional focus action.
func (a Action) NavDirection() (entity.Direction, bool) {
	switch a {
	case ActionSplitNavLeft, ActionPaneNavLeft:
		return entity.DirLeft, true
	case ActionSplitNavRight, ActionPaneNavRight:
		return entity.DirRight, true
	case ActionSplitNavUp, ActionPaneNavUp:
		return entity.DirTop, true
	case ActionSplitNavDown, ActionPaneNavDown:
		return entity.DirBottom, true
	}
	return "", false
}

// ResizeDirection returns the direction a resize action moves the boundary.
func (a Action) ResizeDirection() (entity.Direction, bool) {
	switch a {
	case ActionResizeLeft:
		return entity.DirLeft, true
	case ActionResizeRight:
		return entity.DirRight, true
	case ActionResizeUp:
		return entity.DirTop, true
	case ActionResizeDown:
		return entity.DirBottom, true
	}
	return "", false
}

// ShortcutSet maps key strings ("ctrl+left", "v") to actions.
type ShortcutSet struct {
	byKey map[string]Action
	keys  map[Action][]string
}

// NewShortcutSet builds the lookup table from configured keybindings.
// Unknown action names are skipped; a key bound twice keeps the first action
// in the sorted order of action names.
func NewShortcutSet(ctx context.Context, cfg *config.Config) *ShortcutSet {
	log := logging.FromContext(ctx)

	s := &ShortcutSet{
		byKey: make(map[string]Action),
		keys:  make(map[Action][]string),
	}

	bindings := config.DefaultKeybindings()
	if cfg != nil && len(cfg.Keybindings) > 0 {
		bindings = cfg.Keybindings
	}

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			log.Warn().Str("action", name).Msg("ignoring keybinding for unknown action")
			continue
		}
		for _, key := range bindings[name] {
			key = normalizeKey(key)
			if key == "" {
				continue
			}
			if prev, taken := s.byKey[key]; taken {
				log.Warn().
					Str("key", key).
					Str("action", string(action)).
					Str("bound_to", string(prev)).
					Msg("key already bound")
				continue
			}
			s.byKey[key] = action
			s.keys[action] = append(s.keys[action], key)
		}
	}
	return s
}

// normalizeKey lowercases modifier names but keeps the key's case, so
// "Shift+H" and "shift+H" match while "h" and "H" stay distinct.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	parts := strings.Split(key, "+")
	if len(parts) == 1 || key == "+" {
		return key
	}
	for i := 0; i < len(parts)-1; i++ {
		parts[i] = strings.ToLower(parts[i])
	}
	return strings.Join(parts, "+")
}

// Lookup returns the action bound to key.
func (s *ShortcutSet) Lookup(key string) (Action, bool) {
	a, ok := s.byKey[normalizeKey(key)]
	return a, ok
}

// Keys returns the keys bound to an action.
func (s *ShortcutSet) Keys(a Action) []string {
	return slices.Clone(s.keys[a])
}
