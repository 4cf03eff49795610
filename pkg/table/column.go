package table

// Column holds per-column layout configuration: padding, an optional width
// constraint and a default cell alignment. Columns are created by the table
// itself as headers and rows are added; callers obtain them via
// Table.Column or Table.ColumnByIndex and never construct them directly.
//
// Column knows nothing about the cells it displays. Cells are reached only
// through their rows, and the engine correlates the two by index.
type Column struct {
	index        int
	paddingLeft  int
	paddingRight int
	constraint   *Constraint
	alignment    *Alignment
}

func newColumn(index int) *Column {
	return &Column{index: index, paddingLeft: 1, paddingRight: 1}
}

// Index returns the column's position in the table.
func (c *Column) Index() int {
	return c.index
}

// SetPadding sets the number of padding spaces on each side of the content.
// The default is one space left and one right.
func (c *Column) SetPadding(left, right int) *Column {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	c.paddingLeft = left
	c.paddingRight = right
	return c
}

// Padding returns the left and right padding in spaces.
func (c *Column) Padding() (left, right int) {
	return c.paddingLeft, c.paddingRight
}

func (c *Column) paddingWidth() int {
	return c.paddingLeft + c.paddingRight
}

// SetConstraint attaches a width constraint to the column, replacing any
// previous one.
func (c *Column) SetConstraint(constraint Constraint) *Column {
	c.constraint = &constraint
	return c
}

// ClearConstraint removes the column's constraint.
func (c *Column) ClearConstraint() *Column {
	c.constraint = nil
	return c
}

// Constraint returns the column's constraint, or nil when none is set.
func (c *Column) Constraint() *Constraint {
	return c.constraint
}

// SetAlignment sets the default alignment for cells in this column.
// Individual cells may still override it.
func (c *Column) SetAlignment(a Alignment) *Column {
	c.alignment = &a
	return c
}

// Hidden reports whether the column is excluded from rendering.
func (c *Column) Hidden() bool {
	return c.constraint != nil && c.constraint.IsHidden()
}
