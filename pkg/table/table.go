// Package table renders tabular data to fixed-width terminal text.
//
// Given cells of arbitrary, possibly multi-line, possibly Unicode-wide
// content, per-column width constraints and an overall target width, the
// engine decides how many display columns each column occupies, wraps cell
// text to fit, and composes the final bordered grid.
//
//	t := table.New()
//	t.SetHeader("Name", "Notes")
//	t.AddRow("wrap", "long content is wrapped to the allocated width")
//	t.SetArrangement(table.ArrangementDynamic)
//	t.SetWidth(40)
//	fmt.Println(t.Render())
//
// A render call is a pure function of the current table state: content is
// re-scanned and widths re-resolved every time, and no layout state
// survives between calls. A table is not safe for concurrent mutation
// while rendering; callers share tables across goroutines at their own
// coordination.
package table

import (
	"errors"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/term"
)

// ErrColumnNotFound is returned when a column index is out of range.
var ErrColumnNotFound = errors.New("table: column not found")

// Arrangement selects how columns react to the table's target width.
type Arrangement int

const (
	// ArrangementDisabled renders every column at its full content width,
	// ignoring the target width entirely. The table may exceed the
	// terminal width.
	ArrangementDisabled Arrangement = iota
	// ArrangementDynamic shrinks and wraps columns to fit the target
	// width. Space is reclaimed only when content is wider than the
	// target; a narrow table renders narrower than the target.
	ArrangementDynamic
	// ArrangementDynamicFullWidth is like ArrangementDynamic but always
	// consumes the entire target width, growing columns past their content
	// when necessary.
	ArrangementDynamicFullWidth
)

// SizeFunc is the terminal collaborator contract: a one-shot, fallible
// lookup of the terminal dimensions. It is consulted at most once per
// render and never retried.
type SizeFunc func() (columns, rows int, ok bool)

// DefaultTruncationMarker is appended to the last kept line of a cell cut
// by a row's max height.
const DefaultTruncationMarker = "..."

// Table is an ordered set of columns and rows plus the layout and framing
// configuration needed to render them. The zero value is not usable;
// construct tables with New.
type Table struct {
	columns []*Column
	header  *Row
	rows    []*Row

	arrangement      Arrangement
	width            int
	style            map[Component]rune
	truncationMarker string
	stylingDisabled  bool
	tty              *bool

	sizeFn SizeFunc
	log    logr.Logger
}

// New creates an empty table with the ASCIIFull preset, dynamic arrangement
// disabled and no target width.
func New() *Table {
	return &Table{
		style:            newStyleMap(ASCIIFull),
		truncationMarker: DefaultTruncationMarker,
		sizeFn:           stdoutSize,
		log:              logr.Discard(),
	}
}

func stdoutSize() (int, int, bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	return w, h, err == nil && w > 0
}

// SetHeader sets the header row from displayable values, growing the column
// set if the header is wider than any row seen so far.
func (t *Table) SetHeader(values ...any) *Table {
	row := NewRow(values...)
	t.growColumns(row.CellCount())
	t.header = row
	return t
}

// Header returns the header row, or nil when none is set.
func (t *Table) Header() *Row {
	return t.header
}

// AddRow appends a row built from displayable values. Values may be plain
// strings, *Cell for styled content, or anything printable. New columns are
// created automatically when the row is wider than the current column set.
func (t *Table) AddRow(values ...any) *Row {
	row := NewRow(values...)
	t.AppendRow(row)
	return row
}

// AppendRow appends an already constructed row.
func (t *Table) AppendRow(row *Row) *Table {
	t.growColumns(row.CellCount())
	t.rows = append(t.rows, row)
	return t
}

// AddRows appends one row per value slice.
func (t *Table) AddRows(rows ...[]any) *Table {
	for _, values := range rows {
		t.AddRow(values...)
	}
	return t
}

// RowCount returns the number of body rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Row returns the body row at the given index, or nil when out of range.
func (t *Table) Row(index int) *Row {
	if index < 0 || index >= len(t.rows) {
		return nil
	}
	return t.rows[index]
}

// ColumnCount returns the number of columns discovered so far.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// Column returns the column at the given index, or nil when out of range.
func (t *Table) Column(index int) *Column {
	if index < 0 || index >= len(t.columns) {
		return nil
	}
	return t.columns[index]
}

// ColumnByIndex is the checked variant of Column: out-of-range indexes
// report ErrColumnNotFound so callers can recover.
func (t *Table) ColumnByIndex(index int) (*Column, error) {
	if col := t.Column(index); col != nil {
		return col, nil
	}
	return nil, ErrColumnNotFound
}

// Columns returns the table's columns in order.
func (t *Table) Columns() []*Column {
	return t.columns
}

func (t *Table) growColumns(count int) {
	for len(t.columns) < count {
		t.columns = append(t.columns, newColumn(len(t.columns)))
	}
}

// SetArrangement selects the content arrangement mode.
func (t *Table) SetArrangement(a Arrangement) *Table {
	t.arrangement = a
	return t
}

// SetWidth sets an explicit target width in display columns. Zero clears it
// again, falling back to the terminal width when output is a terminal.
func (t *Table) SetWidth(width int) *Table {
	if width < 0 {
		width = 0
	}
	t.width = width
	return t
}

// SetTruncationMarker replaces the marker appended to lines cut by a row's
// max height.
func (t *Table) SetTruncationMarker(marker string) *Table {
	t.truncationMarker = marker
	return t
}

// LoadPreset replaces the frame glyph table with the given preset string.
func (t *Table) LoadPreset(preset string) *Table {
	loadPresetInto(t.style, preset)
	return t
}

// ApplyModifier overlays glyphs from a modifier string onto the current
// frame, e.g. UTF8RoundCorners on top of UTF8Full.
func (t *Table) ApplyModifier(modifier string) *Table {
	applyModifierTo(t.style, modifier)
	return t
}

// SetStyle assigns the glyph for a single frame component. A space removes
// the component.
func (t *Table) SetStyle(component Component, glyph rune) *Table {
	if component < 0 || component >= componentCount {
		return t
	}
	if glyph == ' ' {
		delete(t.style, component)
	} else {
		t.style[component] = glyph
	}
	return t
}

// Style returns the glyph for a frame component and whether it is drawn.
func (t *Table) Style(component Component) (rune, bool) {
	r, ok := t.style[component]
	return r, ok
}

// DisableStyling suppresses all color and attribute output regardless of
// terminal detection. Layout is unaffected; styling never contributes to
// measured width in the first place.
func (t *Table) DisableStyling() *Table {
	t.stylingDisabled = true
	return t
}

// ForceTTY makes the table behave as if output went to a terminal: styling
// is emitted and the terminal size lookup is consulted for the target
// width. Useful when generating styled output into a pipe.
func (t *Table) ForceTTY() *Table {
	v := true
	t.tty = &v
	return t
}

// ForceNoTTY makes the table behave as if output did not go to a terminal:
// no styling, no terminal width lookup. Dynamic arrangement then needs an
// explicit width via SetWidth.
func (t *Table) ForceNoTTY() *Table {
	v := false
	t.tty = &v
	return t
}

// SetSizeFunc replaces the terminal size lookup, mainly for tests.
func (t *Table) SetSizeFunc(fn SizeFunc) *Table {
	if fn != nil {
		t.sizeFn = fn
	}
	return t
}

// SetLogger attaches a logger for layout diagnostics such as the
// under-budget shrink compromise. The default discards everything.
func (t *Table) SetLogger(log logr.Logger) *Table {
	t.log = log
	return t
}

// ColumnMaxContentWidths returns each column's widest content line in
// display columns, padding excluded. Mostly useful for testing and
// inspection.
func (t *Table) ColumnMaxContentWidths() []int {
	scanned := t.scanContent()
	widths := make([]int, len(scanned))
	for i, w := range scanned {
		widths[i] = w - t.columns[i].paddingWidth()
	}
	return widths
}

// isTTY resolves the tty signal, honoring ForceTTY/ForceNoTTY overrides.
func (t *Table) isTTY() bool {
	if t.tty != nil {
		return *t.tty
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// targetWidth resolves the width budget for this render: an explicit width
// wins; otherwise the terminal is measured once when output is a tty. When
// neither yields a width, the table degrades to content-width layout and
// percentage constraints are ignored.
func (t *Table) targetWidth() (width int, known bool, tty bool) {
	tty = t.isTTY()
	if t.width > 0 {
		return t.width, true, tty
	}
	if tty {
		if w, _, ok := t.sizeFn(); ok {
			return w, true, tty
		}
		// Size lookup failed: treat the output as a non-terminal.
		tty = false
	}
	return 0, false, tty
}

// Render returns the table as a single string of newline-joined display
// lines.
func (t *Table) Render() string {
	return strings.Join(t.renderLines(), "\n")
}

// RenderLines returns the table as a fresh slice of display lines, suitable
// for line-by-line output. Every call recomputes the layout from current
// state.
func (t *Table) RenderLines() []string {
	return t.renderLines()
}
