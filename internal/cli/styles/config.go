package styles

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// StorageInfo describes the layout database for the status view.
type StorageInfo struct {
	Path          string
	Exists        bool
	SizeBytes     int64
	SchemaVersion int64
	Layouts       int
}

// RenderConfigInfo renders the config file path and the layout storage state.
func (r *ConfigRenderer) RenderConfigInfo(configPath string, db StorageInfo) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	detail := "not created yet"
	if db.Exists {
		detail = fmt.Sprintf("%d layouts, schema v%d, %s", db.Layouts, db.SchemaVersion, formatBytes(db.SizeBytes))
	}

	return fmt.Sprintf(
		"\n  %s Config   %s\n  %s Database %s\n           %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(configPath),
		iconStyle.Render(IconDatabase),
		pathStyle.Render(db.Path),
		r.theme.HelpDesc.Render(detail),
	)
}

// RenderKeybindings writes one row per hotkey, sorted by name. Names not in
// known are flagged as ignored.
func (r *ConfigRenderer) RenderKeybindings(w io.Writer, bindings map[string][]string, known []string) {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	slices.Sort(names)

	t := NewTableWriter(w)
	t.AppendHeader(table.Row{"Hotkey", "Keys", "Status"})
	for _, name := range names {
		status := "ok"
		if !slices.Contains(known, name) {
			status = "ignored (unknown hotkey)"
		} else if len(bindings[name]) == 0 {
			status = "unbound"
		}
		t.AppendRow(table.Row{name, strings.Join(bindings[name], ", "), status})
	}
	t.Render()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		hintStyle.Render("Config file will be created on first run with all defaults."),
	)
}
