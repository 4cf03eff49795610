package table

import (
	"github.com/oakwood-commons/tabula/internal/textwidth"
)

// scanContent walks every cell (header included) and returns, per column,
// the maximum content width in display columns, padding included. A column
// with no cells scans to its padding width alone.
//
// The scan runs fresh on every render. Content is mutable between renders,
// so nothing here is cached; a stale measurement would silently corrupt the
// layout.
func (t *Table) scanContent() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = col.paddingWidth()
	}

	scanRow := func(row *Row) {
		for i, cell := range row.cells {
			if i >= len(t.columns) {
				break
			}
			col := t.columns[i]
			for _, line := range cell.lines {
				if w := textwidth.Width(line) + col.paddingWidth(); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	if t.header != nil {
		scanRow(t.header)
	}
	for _, row := range t.rows {
		scanRow(row)
	}
	return widths
}
