package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsGrowWithContent(t *testing.T) {
	tbl := noTerminal()
	assert.Equal(t, 0, tbl.ColumnCount())

	tbl.SetHeader("h1", "h2")
	assert.Equal(t, 2, tbl.ColumnCount())

	tbl.AddRow("a", "b", "c", "d")
	assert.Equal(t, 4, tbl.ColumnCount())

	// Shorter rows never shrink the column set.
	tbl.AddRow("x")
	assert.Equal(t, 4, tbl.ColumnCount())
}

func TestColumnMaxContentWidths(t *testing.T) {
	tbl := noTerminal()
	tbl.SetHeader("header", "looooong header")
	tbl.AddRow("short", "x")
	tbl.AddRow("even longer cell", "y")

	assert.Equal(t, []int{16, 15}, tbl.ColumnMaxContentWidths())
}

func TestColumnLookup(t *testing.T) {
	tbl := noTerminal()
	tbl.AddRow("a", "b")

	col, err := tbl.ColumnByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 1, col.Index())

	_, err = tbl.ColumnByIndex(2)
	assert.ErrorIs(t, err, ErrColumnNotFound)
	_, err = tbl.ColumnByIndex(-1)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	assert.Nil(t, tbl.Column(7), "out of range access is nil, not a panic")
}

func TestRenderMatchesRenderLines(t *testing.T) {
	tbl := noTerminal()
	tbl.SetHeader("a", "b")
	tbl.AddRow("1", "2")

	assert.Equal(t, strings.Join(tbl.RenderLines(), "\n"), tbl.Render())
}

func TestColumnPaddingShapesOutput(t *testing.T) {
	tbl := noTerminal()
	tbl.AddRow("a", "b")
	tbl.Column(0).SetPadding(0, 0)
	tbl.Column(1).SetPadding(2, 3)

	want := strings.Join([]string{
		"+-+------+",
		"|a|  b   |",
		"+-+------+",
	}, "\n")
	assert.Equal(t, want, tbl.Render())
}

func TestConstraintSetAndClear(t *testing.T) {
	tbl := noTerminal()
	tbl.AddRow("some content")

	col := tbl.Column(0)
	col.SetConstraint(NewAbsolute(Fixed(8)))
	require.NotNil(t, col.Constraint())
	assert.Equal(t, []int{8}, visibleWidths(tbl.arrange(0, false)))

	col.ClearConstraint()
	assert.Nil(t, col.Constraint())
	assert.Equal(t, []int{14}, visibleWidths(tbl.arrange(0, false)))
}

func TestSetStyleOverridesPreset(t *testing.T) {
	tbl := noTerminal()
	tbl.AddRow("a")
	tbl.SetStyle(ComponentLeftBorder, '#')

	r, ok := tbl.Style(ComponentLeftBorder)
	require.True(t, ok)
	assert.Equal(t, '#', r)
	assert.Equal(t, "# a |", tbl.RenderLines()[1])

	// Space removes the component entirely.
	tbl.SetStyle(ComponentLeftBorder, ' ')
	_, ok = tbl.Style(ComponentLeftBorder)
	assert.False(t, ok)
}

func TestTruncationMarkerConfigurable(t *testing.T) {
	tbl := noTerminal()
	tbl.SetTruncationMarker("~")
	tbl.AddRow("alpha\nbeta\ngamma").SetMaxHeight(1)

	assert.Contains(t, tbl.Render(), "| alph~ |")
}

func TestAddRowsBulk(t *testing.T) {
	tbl := noTerminal()
	tbl.AddRows([]any{"a", "b"}, []any{"c", "d"})

	assert.Equal(t, 2, tbl.RowCount())
	require.NotNil(t, tbl.Row(1))
	assert.Equal(t, 2, tbl.Row(1).CellCount())
	assert.Nil(t, tbl.Row(5))
}

func TestHeaderAccess(t *testing.T) {
	tbl := noTerminal()
	assert.Nil(t, tbl.Header())

	tbl.SetHeader("only")
	require.NotNil(t, tbl.Header())
	assert.Equal(t, 1, tbl.Header().CellCount())
}

func TestExplicitWidthBeatsTerminal(t *testing.T) {
	tbl := New().ForceTTY().DisableStyling()
	tbl.SetSizeFunc(func() (int, int, bool) { return 120, 40, true })
	tbl.SetArrangement(ArrangementDynamicFullWidth)
	tbl.SetWidth(24)
	tbl.AddRow("alpha", "beta")

	lines := tbl.RenderLines()
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Len(t, line, 24)
	}
}

func TestCellValueConversion(t *testing.T) {
	tbl := noTerminal()
	tbl.AddRow(42, 3.5, true, "str")

	want := "| 42 | 3.5 | true | str |"
	assert.Equal(t, want, tbl.RenderLines()[1])
}

func TestMultilineInputSplitsCell(t *testing.T) {
	cell := NewCell("first\r\nsecond\nthird")
	assert.Equal(t, []string{"first", "second", "third"}, cell.lines)
	assert.Equal(t, "first\nsecond\nthird", cell.Content())
}
