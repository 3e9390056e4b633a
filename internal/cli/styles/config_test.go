package styles_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbterm/internal/cli/styles"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/dumbterm/config.toml", styles.StorageInfo{Path: "/tmp/dumbterm/dumbterm.db"})
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "dumbterm.db")
	require.Contains(t, out, "not created yet")

	out = r.RenderConfigInfo("/tmp/dumbterm/config.toml", styles.StorageInfo{
		Path: "/tmp/dumbterm/dumbterm.db", Exists: true, SizeBytes: 4096, SchemaVersion: 1, Layouts: 3,
	})
	require.Contains(t, out, "3 layouts, schema v1, 4.0 KiB")
	require.Contains(t, r.RenderError(errors.New("bad toml")), "bad toml")
	require.Contains(t, r.RenderNoConfigFile("/tmp/x.toml"), "created on first run")
}

func TestConfigRenderer_RenderKeybindings(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	var buf bytes.Buffer
	r.RenderKeybindings(&buf, map[string][]string{
		"close-pane": {"x", "ctrl+w"},
		"teleport":   {"t"},
		"split-left": {},
	}, []string{"close-pane", "split-left"})

	out := buf.String()
	require.Contains(t, out, "x, ctrl+w")
	require.Contains(t, out, "ignored (unknown hotkey)")
	require.Contains(t, out, "unbound")
	require.Less(t, bytes.Index(buf.Bytes(), []byte("close-pane")), bytes.Index(buf.Bytes(), []byte("teleport")))
}

func TestTheme_PaneColorWraps(t *testing.T) {
	theme := styles.NewTheme()
	n := len(theme.PaneColors)
	require.Equal(t, theme.PaneColors[0], theme.PaneColor(n))
	require.Equal(t, theme.PaneColors[1], theme.PaneColor(-1))
}
