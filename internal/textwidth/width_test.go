package textwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "cjk wide", input: "日本語", want: 6},
		{name: "mixed", input: "ab日c", want: 5},
		{name: "combining mark", input: "é", want: 1},
		{name: "ansi stripped", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "ansi only", input: "\x1b[1m\x1b[0m", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Width(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "", Truncate("hello", 0))

	// A wide rune that would straddle the limit is dropped entirely.
	assert.Equal(t, "a", Truncate("a日b", 2))
	assert.Equal(t, "a日", Truncate("a日b", 3))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	// Wide runes count double, so only two spaces are added.
	assert.Equal(t, "日本  ", PadRight("日本", 6))
}

func TestRepeatToWidth(t *testing.T) {
	assert.Equal(t, "-----", RepeatToWidth("-", 5))
	assert.Equal(t, "", RepeatToWidth("-", 0))
	assert.Equal(t, "     ", RepeatToWidth("", 5))
	assert.Equal(t, "─────", RepeatToWidth("─", 5))
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "plain", StripANSI("plain"))
	assert.Equal(t, "styled", StripANSI("\x1b[1;32mstyled\x1b[0m"))
}
