package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/logging"
	"github.com/bnema/dumbterm/internal/ui/coordinator"
	"github.com/bnema/dumbterm/internal/ui/input"
)

// KeyboardDispatcher routes hotkey actions to the workspace coordinator.
type KeyboardDispatcher struct {
	wsCoord     *coordinator.WorkspaceCoordinator
	onSplitDone func(res coordinator.SplitResult)
}

// NewKeyboardDispatcher creates a new KeyboardDispatcher.
func NewKeyboardDispatcher(ctx context.Context, wsCoord *coordinator.WorkspaceCoordinator) *KeyboardDispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating keyboard dispatcher")

	return &KeyboardDispatcher{wsCoord: wsCoord}
}

// SetOnSplitDone sets the callback receiving asynchronous split results.
// It runs on the owner loop.
func (d *KeyboardDispatcher) SetOnSplitDone(fn func(res coordinator.SplitResult)) {
	d.onSplitDone = fn
}

// DispatchName parses a hotkey name and dispatches it.
func (d *KeyboardDispatcher) DispatchName(ctx context.Context, name string) error {
	action, err := input.ParseAction(name)
	if err != nil {
		return err
	}
	return d.Dispatch(ctx, action)
}

// Dispatch routes a hotkey action. Splits complete asynchronously; every
// other action has taken effect when Dispatch returns.
func (d *KeyboardDispatcher) Dispatch(ctx context.Context, action input.Action) error {
	ctx = logging.WithPane(logging.WithComponent(ctx, "dispatcher"), string(d.wsCoord.Focused()))
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Msg("dispatching keyboard action")

	if dir, ok := action.SplitDirection(); ok {
		d.wsCoord.SplitPane(ctx, d.wsCoord.Focused(), dir, d.onSplitDone)
		return nil
	}
	if dir, ok := action.NavDirection(); ok {
		_, err := d.wsCoord.Navigate(ctx, dir)
		return err
	}
	if dir, ok := action.ResizeDirection(); ok {
		err := d.wsCoord.ResizeFocused(ctx, dir)
		if errors.Is(err, usecase.ErrNothingToResize) {
			log.Debug().Str("action", string(action)).Msg("nothing to resize")
			return nil
		}
		return err
	}

	switch action {
	case input.ActionPaneNavNext:
		_, err := d.wsCoord.NavigateCycle(ctx, true)
		return err
	case input.ActionPaneNavPrevious:
		_, err := d.wsCoord.NavigateCycle(ctx, false)
		return err
	case input.ActionPaneMaximize:
		_, err := d.wsCoord.ToggleMaximize(ctx)
		return err
	case input.ActionPaneEqualize:
		return d.wsCoord.Equalize(ctx)
	case input.ActionClosePane:
		_, err := d.wsCoord.ClosePane(ctx, d.wsCoord.Focused())
		return err
	}

	return fmt.Errorf("%w: %q", input.ErrUnknownHotkey, action)
}
