package styles

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// SessionsCLIRenderer renders non-interactive CLI output for the sessions
// subcommands (`dumbterm sessions list`, `show`, `delete`).
type SessionsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewSessionsCLIRenderer(theme *Theme) *SessionsCLIRenderer {
	return &SessionsCLIRenderer{theme: theme, now: time.Now}
}

func (r *SessionsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

// RenderList writes one table row per stored layout.
func (r *SessionsCLIRenderer) RenderList(w io.Writer, items []entity.LayoutSnapshotInfo, limit int) {
	if len(items) == 0 {
		fmt.Fprintln(w, r.RenderEmptyList())
		return
	}

	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconSessionStack), r.theme.Title.Render("Saved layouts"))
	if limit > 0 && len(items) >= limit {
		title += r.theme.Subtle.Render(fmt.Sprintf(" (showing up to %d)", limit))
	}
	fmt.Fprintln(w, title)

	t := NewTableWriter(w, 2, 3, 5)
	t.AppendHeader(table.Row{"Tab", "Panes", "Version", "Saved", "Size"})
	for _, info := range items {
		t.AppendRow(table.Row{
			string(info.TabID),
			info.PaneCount,
			info.Version,
			r.relativeTime(info.SavedAt),
			formatBytes(info.SizeBytes),
		})
	}
	t.Render()
}

// RenderTree draws the split tree of a snapshot as an indented list.
func (r *SessionsCLIRenderer) RenderTree(snap *entity.LayoutSnapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		r.theme.Highlight.Render(IconLayout),
		r.theme.Title.Render(string(snap.TabID)),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d panes", snap.CountPanes())),
	))
	if snap.Root == nil {
		b.WriteString(r.theme.Subtle.Render("(empty)"))
		return b.String()
	}

	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)
	r.appendNode(l, snap.Root, snap.FocusedPaneID)
	b.WriteString(l.Render())
	return b.String()
}

func (r *SessionsCLIRenderer) appendNode(l list.Writer, n *entity.NodeSnapshot, focused entity.PaneID) {
	if n.Type == entity.SnapshotPane {
		item := string(n.PaneID)
		if n.PaneID == focused {
			item += " *"
		}
		if len(n.Token) == 0 {
			item += " (no token)"
		}
		l.AppendItem(item)
		return
	}

	ratios := make([]string, len(n.Ratios))
	for i, ratio := range n.Ratios {
		ratios[i] = fmt.Sprintf("%.2f", ratio)
	}
	l.AppendItem(fmt.Sprintf("%s [%s]", entity.OrientationFromCode(n.Orientation), strings.Join(ratios, " ")))
	l.Indent()
	for _, child := range n.Children {
		r.appendNode(l, child, focused)
	}
	l.UnIndent()
}

func (r *SessionsCLIRenderer) RenderRestoreStarted(tabID entity.TabID) string {
	return fmt.Sprintf("%s Restoring layout %s...",
		r.theme.SuccessStyle.Render(IconRestore),
		r.theme.Highlight.Render(string(tabID)),
	)
}

func (r *SessionsCLIRenderer) RenderDeleted(tabID entity.TabID) string {
	return fmt.Sprintf("%s Layout %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(tabID)),
	)
}

func (r *SessionsCLIRenderer) RenderNotFound(tabID entity.TabID) string {
	return fmt.Sprintf("%s No saved layout for %s.",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Highlight.Render(string(tabID)),
	)
}

func (r *SessionsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func (r *SessionsCLIRenderer) relativeTime(t time.Time) string {
	diff := r.now().Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < hoursPerDay*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < daysPerWeek*hoursPerDay*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/hoursPerDay))
	default:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/hoursPerDay/daysPerWeek))
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
