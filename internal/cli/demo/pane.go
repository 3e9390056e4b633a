// Package demo provides in-memory panes for the layout playground and
// preview commands.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

// Pane is a colored placeholder. A busy pane refuses to close.
type Pane struct {
	id entity.PaneID

	mu        sync.Mutex
	title     string
	color     string
	busy      bool
	focused   bool
	destroyed bool
}

var (
	_ port.Pane                  = (*Pane)(nil)
	_ port.RecoveryTokenProvider = (*Pane)(nil)
)

// NewPane creates a pane with a fresh ID.
func NewPane(title, color string) *Pane {
	return &Pane{
		id:    entity.PaneID(uuid.NewString()),
		title: title,
		color: color,
	}
}

func (p *Pane) ID() entity.PaneID { return p.id }

func (p *Pane) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

func (p *Pane) Color() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.color
}

func (p *Pane) Focus() {
	p.mu.Lock()
	p.focused = true
	p.mu.Unlock()
}

func (p *Pane) Blur() {
	p.mu.Lock()
	p.focused = false
	p.mu.Unlock()
}

func (p *Pane) IsFocused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.focused
}

// SetBusy marks the pane as running something that must not be killed.
func (p *Pane) SetBusy(busy bool) {
	p.mu.Lock()
	p.busy = busy
	p.mu.Unlock()
}

func (p *Pane) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

func (p *Pane) CanClose(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return !p.Busy(), nil
}

func (p *Pane) Destroy() {
	p.mu.Lock()
	p.destroyed = true
	p.focused = false
	p.mu.Unlock()
}

func (p *Pane) Destroyed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.destroyed
}

// token is the JSON recovery state of a pane.
type token struct {
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
	Busy  bool   `json:"busy,omitempty"`
}

func (p *Pane) RecoveryToken(_ context.Context) (entity.RecoveryToken, error) {
	p.mu.Lock()
	t := token{Title: p.title, Color: p.color, Busy: p.busy}
	p.mu.Unlock()

	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal pane token: %w", err)
	}
	return data, nil
}

// Factory creates demo panes. It duplicates panes for splits and recovers
// them from snapshot tokens.
type Factory struct {
	colors []string
	next   atomic.Int64
	// Delay simulates slow duplication, e.g. spawning a shell.
	Delay time.Duration
}

var (
	_ port.PaneDuplicator = (*Factory)(nil)
	_ port.PaneRecoverer  = (*Factory)(nil)
)

// NewFactory creates a factory cycling through colors.
func NewFactory(colors []string) *Factory {
	return &Factory{colors: colors}
}

// New creates the next numbered pane.
func (f *Factory) New() *Pane {
	n := f.next.Add(1)
	color := ""
	if len(f.colors) > 0 {
		color = f.colors[int(n-1)%len(f.colors)]
	}
	return NewPane(fmt.Sprintf("pane %d", n), color)
}

func (f *Factory) Duplicate(ctx context.Context, source port.Pane) (port.Pane, error) {
	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	pane := f.New()
	logging.FromContext(ctx).Debug().
		Str("source", string(source.ID())).
		Str("pane_id", string(pane.ID())).
		Msg("duplicated demo pane")
	return pane, nil
}

// Recover rebuilds a pane under a fresh ID. Tokens without a title are
// treated as unrecoverable.
func (f *Factory) Recover(_ context.Context, raw entity.RecoveryToken) (port.Pane, error) {
	var t token
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("unmarshal pane token: %w", err)
	}
	if t.Title == "" {
		return nil, nil
	}
	f.next.Add(1)
	pane := NewPane(t.Title, t.Color)
	pane.busy = t.Busy
	return pane, nil
}

// TitleFromToken returns the title recorded in a pane token, or "" when the
// token is not a demo pane token.
func TitleFromToken(raw entity.RecoveryToken) string {
	var t token
	if len(raw) == 0 || json.Unmarshal(raw, &t) != nil {
		return ""
	}
	return t.Title
}
