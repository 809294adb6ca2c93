// Package output provides terminal output utilities.
package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders catalogue listings as bordered terminal tables. Count
// columns can be right-aligned, and an optional caption below the border
// carries the summary line.
type Table struct {
	headers []string
	rows    [][]string
	right   map[int]bool
	caption string
}

// NewTable creates a table with the given header cells.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		right:   make(map[int]bool),
	}
}

// Row appends one row. Cells are positional and must match the headers.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// AlignRight right-aligns the given zero-based columns.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// Caption sets a dim summary line rendered below the table.
func (t *Table) Caption(s string) *Table {
	t.caption = s
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				style = headerStyle.Padding(0, 1)
			}
			if t.right[col] {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	rendered := tbl.String()
	if t.caption != "" {
		rendered += "\n" + StyleDim.Render(t.caption)
	}
	return rendered
}
