package table

// Row is an ordered sequence of cells, owned by its table. Rows shorter than
// the table's column count are padded with empty cells at render time.
type Row struct {
	cells     []*Cell
	maxHeight int
}

// NewRow creates a row from displayable values. Each value becomes one cell;
// *Cell values are used as-is.
func NewRow(values ...any) *Row {
	cells := make([]*Cell, 0, len(values))
	for _, v := range values {
		cells = append(cells, NewCell(v))
	}
	return &Row{cells: cells}
}

// SetMaxHeight limits the number of rendered lines for every cell in this
// row. Cells that wrap to more lines are truncated and the last kept line
// gets the table's truncation marker appended. Zero means unlimited.
func (r *Row) SetMaxHeight(lines int) *Row {
	if lines < 0 {
		lines = 0
	}
	r.maxHeight = lines
	return r
}

// MaxHeight returns the row's line limit, 0 when unlimited.
func (r *Row) MaxHeight() int {
	return r.maxHeight
}

// CellCount returns the number of cells in this row.
func (r *Row) CellCount() int {
	return len(r.cells)
}

// Cell returns the cell at the given index, or nil when out of range.
func (r *Row) Cell(index int) *Cell {
	if index < 0 || index >= len(r.cells) {
		return nil
	}
	return r.cells[index]
}
