package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tabula/internal/textwidth"
)

func TestWrapLinesGreedyPacking(t *testing.T) {
	lines := wrapLines([]string{"This is another text"}, 11, ' ')
	assert.Equal(t, []string{"This is", "another", "text"}, lines)

	lines = wrapLines([]string{"This is the third text"}, 11, ' ')
	assert.Equal(t, []string{"This is the", "third text"}, lines)
}

func TestWrapLinesShortLineKeptWhole(t *testing.T) {
	lines := wrapLines([]string{"short"}, 20, ' ')
	assert.Equal(t, []string{"short"}, lines)
}

func TestWrapLinesBlankLinePreserved(t *testing.T) {
	lines := wrapLines([]string{"first", "", "second"}, 10, ' ')
	assert.Equal(t, []string{"first", "", "second"}, lines)
}

func TestWrapLinesHardSplitLongWord(t *testing.T) {
	lines := wrapLines([]string{"abcdefghij"}, 4, ' ')
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, lines)
}

func TestWrapLinesHardSplitKeepsWideGlyphsWhole(t *testing.T) {
	// Each CJK glyph is two columns wide. At width 3 only one glyph fits
	// per line; a glyph must never be cut in half.
	lines := wrapLines([]string{"日本語"}, 3, ' ')
	require.Equal(t, []string{"日", "本", "語"}, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, textwidth.Width(line), 3)
	}

	lines = wrapLines([]string{"ab日本"}, 3, ' ')
	assert.Equal(t, []string{"ab", "日", "本"}, lines)
}

func TestWrapLinesNoOverflow(t *testing.T) {
	inputs := []string{
		"This is a text with several words to pack",
		"supercalifragilisticexpialidocious",
		"mixed 日本語 and ascii words",
		"a b c d e f g h i j k l m n o p",
	}
	for _, input := range inputs {
		for width := 2; width <= 20; width++ {
			for _, line := range wrapLines([]string{input}, width, ' ') {
				assert.LessOrEqualf(t, textwidth.Width(line), width,
					"input %q at width %d produced %q", input, width, line)
			}
		}
	}
}

func TestWrapLinesIdempotent(t *testing.T) {
	input := []string{"This is a text that wraps into several lines at this width"}
	for width := 4; width <= 24; width++ {
		once := wrapLines(input, width, ' ')
		twice := wrapLines(once, width, ' ')
		assert.Equalf(t, once, twice, "re-wrapping at width %d changed the output", width)
	}
}

func TestWrapLinesCustomDelimiter(t *testing.T) {
	lines := wrapLines([]string{"one-two-three"}, 7, '-')
	assert.Equal(t, []string{"one-two", "three"}, lines)
}

func TestTruncateWithMarker(t *testing.T) {
	assert.Equal(t, "be...", truncateWithMarker("beta", 5, "..."))
	assert.Equal(t, "ab...", truncateWithMarker("abcdefgh", 5, "..."))
	// A line that fits alongside the marker is kept whole.
	assert.Equal(t, "ab...", truncateWithMarker("ab", 5, "..."))
	// No room for content at all: the marker itself is truncated.
	assert.Equal(t, "..", truncateWithMarker("abcdef", 2, "..."))
	// Wide glyphs are dropped whole when making room for the marker.
	assert.Equal(t, "日...", truncateWithMarker("日本語", 6, "..."))
}
