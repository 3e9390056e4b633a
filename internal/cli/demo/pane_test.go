package demo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

func TestPane_CanCloseFollowsBusy(t *testing.T) {
	p := NewPane("shell", "#fff")
	ctx := context.Background()

	ok, err := p.CanClose(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	p.SetBusy(true)
	ok, err = p.CanClose(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.CanClose(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPane_FocusAndDestroy(t *testing.T) {
	p := NewPane("shell", "")
	p.Focus()
	assert.True(t, p.IsFocused())
	p.Blur()
	assert.False(t, p.IsFocused())

	p.Focus()
	p.Destroy()
	assert.True(t, p.Destroyed())
	assert.False(t, p.IsFocused())
}

func TestFactory_NumbersAndColors(t *testing.T) {
	f := NewFactory([]string{"red", "blue"})

	a, b, c := f.New(), f.New(), f.New()
	assert.Equal(t, "pane 1", a.Title())
	assert.Equal(t, "pane 3", c.Title())
	assert.Equal(t, "red", a.Color())
	assert.Equal(t, "blue", b.Color())
	assert.Equal(t, "red", c.Color())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestFactory_DuplicateHonorsContext(t *testing.T) {
	f := NewFactory(nil)
	f.Delay = time.Hour
	source := f.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dup, err := f.Duplicate(ctx, source)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, dup)

	f.Delay = 0
	dup, err = f.Duplicate(context.Background(), source)
	require.NoError(t, err)
	assert.Equal(t, "pane 2", dup.Title())
}

func TestFactory_RecoverRoundTrip(t *testing.T) {
	f := NewFactory(nil)
	ctx := context.Background()

	orig := NewPane("editor", "#abc")
	orig.SetBusy(true)
	tok, err := orig.RecoveryToken(ctx)
	require.NoError(t, err)

	got, err := f.Recover(ctx, tok)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEqual(t, orig.ID(), got.ID())
	assert.Equal(t, "editor", got.Title())
	recovered := got.(*Pane)
	assert.True(t, recovered.Busy())
	assert.Equal(t, "#abc", recovered.Color())

	none, err := f.Recover(ctx, entity.RecoveryToken(`{"title":""}`))
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = f.Recover(ctx, entity.RecoveryToken(`not json`))
	assert.Error(t, err)
}

func TestTitleFromToken(t *testing.T) {
	assert.Equal(t, "editor", TitleFromToken(entity.RecoveryToken(`{"title":"editor"}`)))
	assert.Empty(t, TitleFromToken(nil))
	assert.Empty(t, TitleFromToken(entity.RecoveryToken(`[1,2]`)))
}
