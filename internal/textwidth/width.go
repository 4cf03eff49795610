// Package textwidth measures the terminal display width of strings.
//
// Display width is the number of terminal columns a string occupies, which
// differs from both byte length and rune count: East-Asian wide characters
// and most emoji take two columns, combining marks take zero, and ANSI
// escape sequences take none at all. Every width comparison in the layout
// engine goes through this package.
package textwidth

import (
	"regexp"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Width returns the display width of s. Embedded ANSI escape sequences are
// stripped before measuring so styling never contributes to width.
func Width(s string) int {
	if strings.ContainsRune(s, 0x1b) {
		s = ansiRegexp.ReplaceAllString(s, "")
	}
	return runewidth.StringWidth(s)
}

// RuneWidth returns the display width of a single rune (0, 1 or 2).
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

// Truncate cuts s down to at most maxWidth display columns, never splitting
// a wide rune: if the next rune would cross the limit, it is dropped along
// with everything after it.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxWidth {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}

// PadRight pads s with spaces to the target display width. Strings already
// at or beyond the target are returned unchanged.
func PadRight(s string, targetWidth int) string {
	w := Width(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// RepeatToWidth repeats fill until the result covers exactly the requested
// display width, truncating a trailing wide glyph if it would overshoot.
func RepeatToWidth(fill string, width int) string {
	if width <= 0 {
		return ""
	}
	if strings.TrimSpace(fill) == "" {
		fill = " "
	}
	var b strings.Builder
	for Width(b.String()) < width {
		b.WriteString(fill)
	}
	result := b.String()
	if Width(result) > width {
		result = Truncate(result, width)
	}
	return result
}
