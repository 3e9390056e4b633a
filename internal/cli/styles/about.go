package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbterm/internal/domain/build"
)

// aboutLogo is a three-pane split: one vertical boundary, one horizontal.
const aboutLogo = `┌───┬───┐
│   │   │
│   ├───┤
│   │   │
└───┴───┘`

// AboutRenderer renders build info next to a small split-pane logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates an about renderer.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render lays the logo and the build fields side by side.
func (r *AboutRenderer) Render(info build.Info) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(aboutLogo)

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.fields(info))
}

func (r *AboutRenderer) fields(info build.Info) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	label := r.theme.Subtle.Width(8)

	version := r.theme.Highlight.Render(info.Version)
	if info.IsDev() {
		version += " " + r.theme.BadgeMuted.Render("dev build")
	}

	rows := []struct{ icon, key, val string }{
		{IconVersion, "Version", version},
		{IconGitBranch, "Commit", r.theme.Highlight.Render(info.ShortCommit())},
		{IconCalendar, "Built", r.theme.Highlight.Render(info.BuildDate)},
		{IconGo, "Go", r.theme.Highlight.Render(info.GoVersion)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(icon.Render(row.icon) + " " + label.Render(row.key) + row.val + "\n")
	}
	b.WriteString("\n" + r.theme.Subtle.Render(build.RepoURL()))
	return b.String()
}
