package table

// WidthValue is a width specification used inside constraints: either a fixed
// number of display columns or a percentage of the table's target width.
type WidthValue struct {
	kind    widthKind
	chars   int
	percent int
}

type widthKind int

const (
	widthFixed widthKind = iota
	widthPercent
)

// Fixed specifies an absolute number of display columns.
func Fixed(chars int) WidthValue {
	if chars < 0 {
		chars = 0
	}
	return WidthValue{kind: widthFixed, chars: chars}
}

// Percent specifies a share of the table's target width. Values outside
// [0, 100] are clamped before use.
func Percent(p int) WidthValue {
	return WidthValue{kind: widthPercent, percent: clampPercent(p)}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// resolve translates the width value into display columns. Percentages need
// the table's target width; ok is false when the value is a percentage and
// the target width is unknown.
func (w WidthValue) resolve(tableWidth int, widthKnown bool) (int, bool) {
	switch w.kind {
	case widthPercent:
		if !widthKnown {
			return 0, false
		}
		// Round half up, matching the documented percentage policy.
		return (tableWidth*w.percent + 50) / 100, true
	default:
		return w.chars, true
	}
}

// constraintKind enumerates the closed set of column constraint variants.
// The resolver and allocator switch exhaustively over this set.
type constraintKind int

const (
	constraintAbsolute constraintKind = iota
	constraintContentWidth
	constraintLowerBoundary
	constraintUpperBoundary
	constraintBoundaries
	constraintHidden
)

// Constraint is a declarative per-column width bound. Construct one with
// NewAbsolute, NewContentWidth, NewLowerBoundary, NewUpperBoundary,
// NewBoundaries, NewPercentage or NewHidden and attach it to a column via
// Column.SetConstraint.
type Constraint struct {
	kind  constraintKind
	value WidthValue
	lower WidthValue
	upper WidthValue
}

// NewAbsolute pins the column to exactly the given width (content plus
// padding).
func NewAbsolute(w WidthValue) Constraint {
	return Constraint{kind: constraintAbsolute, value: w}
}

// NewPercentage pins the column to a percentage of the table's target width.
// It is shorthand for NewAbsolute(Percent(p)).
func NewPercentage(p int) Constraint {
	return NewAbsolute(Percent(p))
}

// NewContentWidth forces the column to the width of its widest content line.
// Use with care: long content will push the table past the target width.
func NewContentWidth() Constraint {
	return Constraint{kind: constraintContentWidth}
}

// NewLowerBoundary guarantees the column at least the given width.
func NewLowerBoundary(w WidthValue) Constraint {
	return Constraint{kind: constraintLowerBoundary, lower: w}
}

// NewUpperBoundary caps the column at the given width.
func NewUpperBoundary(w WidthValue) Constraint {
	return Constraint{kind: constraintUpperBoundary, upper: w}
}

// NewBoundaries combines a lower and an upper boundary. An upper boundary
// that resolves below the lower is clamped up to it.
func NewBoundaries(lower, upper WidthValue) Constraint {
	return Constraint{kind: constraintBoundaries, lower: lower, upper: upper}
}

// NewHidden removes the column from the rendered output entirely. Its cells
// remain part of their rows, they are just never emitted.
func NewHidden() Constraint {
	return Constraint{kind: constraintHidden}
}

// IsHidden reports whether the constraint hides its column.
func (c Constraint) IsHidden() bool {
	return c.kind == constraintHidden
}
