package styles

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewTableWriter creates a light-bordered table that renders to w.
// rightAligned lists 1-based column numbers holding numbers.
func NewTableWriter(w io.Writer, rightAligned ...int) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, n := range rightAligned {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	if len(configs) > 0 {
		t.SetColumnConfigs(configs)
	}
	return t
}
