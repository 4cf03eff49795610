package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tabula/pkg/table"
)

func TestLevelFromName(t *testing.T) {
	assert.Equal(t, int8(-1), levelFromName("debug"))
	assert.Equal(t, int8(0), levelFromName("info"))
	assert.Equal(t, int8(1), levelFromName("warn"))
	assert.Equal(t, int8(2), levelFromName("error"))
	assert.Equal(t, int8(0), levelFromName("bogus"), "unknown names fall back to info")
	assert.Equal(t, int8(-1), levelFromName(" DEBUG "))
}

func TestPresetByName(t *testing.T) {
	preset, err := presetByName("utf8")
	require.NoError(t, err)
	assert.Equal(t, table.UTF8Full, preset)

	preset, err = presetByName("")
	require.NoError(t, err)
	assert.Equal(t, table.ASCIIFull, preset)

	preset, err = presetByName("nothing")
	require.NoError(t, err)
	assert.Equal(t, table.Nothing, preset)

	_, err = presetByName("fancy")
	assert.ErrorContains(t, err, "unknown preset")
}

func TestArrangementByName(t *testing.T) {
	mode, err := arrangementByName("disabled")
	require.NoError(t, err)
	assert.Equal(t, table.ArrangementDisabled, mode)

	mode, err = arrangementByName("full-width")
	require.NoError(t, err)
	assert.Equal(t, table.ArrangementDynamicFullWidth, mode)

	_, err = arrangementByName("stretchy")
	assert.Error(t, err)
}

func TestParsePadding(t *testing.T) {
	left, right, err := parsePadding("2,3")
	require.NoError(t, err)
	assert.Equal(t, 2, left)
	assert.Equal(t, 3, right)

	left, right, err = parsePadding("1")
	require.NoError(t, err)
	assert.Equal(t, 1, left)
	assert.Equal(t, 1, right)

	_, _, err = parsePadding("-1,2")
	assert.Error(t, err)
	_, _, err = parsePadding("a,b")
	assert.Error(t, err)
}

func TestParseAlignSpec(t *testing.T) {
	index, align, err := parseAlignSpec("2:right")
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, table.AlignRight, align)

	_, _, err = parseAlignSpec("2-right")
	assert.ErrorContains(t, err, "invalid align spec")
	_, _, err = parseAlignSpec("2:diagonal")
	assert.ErrorContains(t, err, "invalid alignment")
	_, _, err = parseAlignSpec("-1:left")
	assert.Error(t, err)
}

func TestParseConstraintSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want table.Constraint
	}{
		{"fixed", "0:20", table.NewAbsolute(table.Fixed(20))},
		{"percent", "1:30%", table.NewAbsolute(table.Percent(30))},
		{"content", "2:content", table.NewContentWidth()},
		{"lower", "0:>=10", table.NewLowerBoundary(table.Fixed(10))},
		{"upper", "0:<=40", table.NewUpperBoundary(table.Fixed(40))},
		{"both", "0:>=10<=40", table.NewBoundaries(table.Fixed(10), table.Fixed(40))},
		{"percent bound", "0:>=25%", table.NewLowerBoundary(table.Percent(25))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := parseConstraintSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConstraintSpecIndex(t *testing.T) {
	index, _, err := parseConstraintSpec("3:content")
	require.NoError(t, err)
	assert.Equal(t, 3, index)
}

func TestParseConstraintSpecErrors(t *testing.T) {
	_, _, err := parseConstraintSpec("nocolon")
	assert.ErrorContains(t, err, "invalid constraint spec")
	_, _, err = parseConstraintSpec("0:>=x")
	assert.Error(t, err)
	_, _, err = parseConstraintSpec("0:-5")
	assert.Error(t, err)
}
