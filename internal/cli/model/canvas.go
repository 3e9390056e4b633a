package model

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/entity"
)

// PaneLabel is what the canvas draws inside a pane frame.
type PaneLabel struct {
	Title string
	Color lipgloss.Color
	Busy  bool
}

// Canvas is a fixed grid of cells, each holding a rune and a style index.
type Canvas struct {
	width, height int
	runes         []rune
	styleIdx      []int
	styles        []lipgloss.Style
}

// NewCanvas creates a blank canvas. Style 0 is unstyled.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:    width,
		height:   height,
		runes:    make([]rune, width*height),
		styleIdx: make([]int, width*height),
		styles:   []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

// AddStyle registers a style and returns its index.
func (c *Canvas) AddStyle(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

// Set writes one cell. Out of range cells are ignored.
func (c *Canvas) Set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.runes[y*c.width+x] = r
	c.styleIdx[y*c.width+x] = style
}

// Text writes s from (x, y), cut at maxWidth cells.
func (c *Canvas) Text(x, y int, s string, maxWidth, style int) {
	i := 0
	for _, r := range s {
		if i >= maxWidth {
			return
		}
		c.Set(x+i, y, r, style)
		i++
	}
}

// Box draws a frame covering the inclusive cell range. Boxes thinner than
// two cells are filled instead.
func (c *Canvas) Box(x0, y0, x1, y1, style int) {
	if x1 < x0 || y1 < y0 {
		return
	}
	if x1 == x0 || y1 == y0 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.Set(x, y, '▒', style)
			}
		}
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.Set(x, y0, '─', style)
		c.Set(x, y1, '─', style)
	}
	for y := y0 + 1; y < y1; y++ {
		c.Set(x0, y, '│', style)
		c.Set(x1, y, '│', style)
	}
	c.Set(x0, y0, '┌', style)
	c.Set(x1, y0, '┐', style)
	c.Set(x0, y1, '└', style)
	c.Set(x1, y1, '┘', style)
}

// String renders the canvas row by row, styling runs of equal style.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := y * c.width
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.styleIdx[row+x] == c.styleIdx[row+start] {
				continue
			}
			run := string(c.runes[row+start : row+x])
			if idx := c.styleIdx[row+start]; idx == 0 {
				b.WriteString(run)
			} else {
				b.WriteString(c.styles[idx].Render(run))
			}
			start = x
		}
	}
	return b.String()
}

// Plain renders the canvas without styles.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(c.runes[y*c.width : (y+1)*c.width]))
	}
	return b.String()
}

// cellSpan maps a [pos, pos+size) range in layout units to inclusive cells.
func cellSpan(pos, size float64) (int, int) {
	return int(math.Round(pos)), int(math.Round(pos+size)) - 1
}

// DrawLayout draws one frame per visible pane of result. Rects must be in
// cell units, i.e. laid out with bounds matching the canvas size. active,
// when set, is drawn over the frames.
func DrawLayout(c *Canvas, theme *styles.Theme, result entity.LayoutResult, labels map[entity.PaneID]PaneLabel, active *entity.Boundary) {
	border := c.AddStyle(theme.PaneBorder)
	focused := c.AddStyle(theme.PaneBorderFocused)
	dimmed := c.AddStyle(theme.PaneBorderDimmed)
	title := c.AddStyle(theme.PaneTitle)
	titleDimmed := c.AddStyle(theme.PaneTitleDimmed)
	busy := c.AddStyle(theme.WarningStyle)

	// Stable draw order keeps overlapping edges deterministic.
	ids := make([]entity.PaneID, 0, len(result.Rects))
	for id := range result.Rects {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		r := result.Rects[id]
		if r.IsEmpty() {
			continue
		}
		x0, x1 := cellSpan(r.X, r.W)
		y0, y1 := cellSpan(r.Y, r.H)

		frame, text := border, title
		switch {
		case id == result.Focused:
			frame = focused
		case r.Opacity < 1:
			frame, text = dimmed, titleDimmed
		}
		c.Box(x0, y0, x1, y1, frame)

		label, ok := labels[id]
		if !ok {
			label = PaneLabel{Title: string(id)}
		}
		inner := x1 - x0 - 3
		if inner <= 0 {
			continue
		}
		c.Text(x0+2, y0, " "+label.Title+" ", inner, text)
		if y1-y0 < 2 {
			continue
		}
		if label.Color != "" {
			c.Set(x0+2, y0+1, '■', c.AddStyle(lipgloss.NewStyle().Foreground(label.Color)))
		}
		if label.Busy {
			c.Text(x0+4, y0+1, "busy", inner-2, busy)
		}
	}

	if active != nil {
		drawBoundary(c, theme, *active)
	}
}

func drawBoundary(c *Canvas, theme *styles.Theme, b entity.Boundary) {
	style := c.AddStyle(theme.BoundaryActive)
	if b.Orientation() == entity.Horizontal {
		x := int(math.Round(b.Rect.X))
		y0, y1 := cellSpan(b.Rect.Y, b.Rect.H)
		for y := y0; y <= y1; y++ {
			c.Set(x, y, '┃', style)
		}
		return
	}
	y := int(math.Round(b.Rect.Y))
	x0, x1 := cellSpan(b.Rect.X, b.Rect.W)
	for x := x0; x <= x1; x++ {
		c.Set(x, y, '━', style)
	}
}

// DrawDropZone shades the cells a pane would be dropped into.
func DrawDropZone(c *Canvas, theme *styles.Theme, zone entity.DropZone) {
	if zone.Rect.IsEmpty() {
		return
	}
	style := c.AddStyle(theme.BoundaryActive)
	x0, x1 := cellSpan(zone.Rect.X, zone.Rect.W)
	y0, y1 := cellSpan(zone.Rect.Y, zone.Rect.H)
	x1, y1 = max(x1, x0), max(y1, y0)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y, '░', style)
		}
	}
}
