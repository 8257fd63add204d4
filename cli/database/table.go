package database

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintTable writes supported databases as a table.
func PrintTable(w io.Writer, pretty bool) {
	ts := table.NewWriter()
	ts.SetOutputMirror(w)
	ts.AppendHeader(table.Row{"ID", "NAME", "DESCRIPTION"})
	for _, db := range supported {
		ts.AppendRow(table.Row{db.ID, db.Label, db.Description})
	}

	if pretty {
		ts.SetStyle(table.StyleRounded)
	} else {
		ts.Style().Options.DrawBorder = false
		ts.Style().Options.SeparateColumns = false
		ts.Style().Options.SeparateHeader = false
	}
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	ts.Render()
}
