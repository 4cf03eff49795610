package table

import (
	"strings"

	"github.com/oakwood-commons/tabula/internal/textwidth"
)

// wrapLines reflows a cell's explicit lines to fit contentWidth display
// columns. Each explicit line is wrapped independently; blank lines survive
// as exactly one blank output line so intentional vertical spacing is kept.
func wrapLines(lines []string, contentWidth int, delimiter rune) []string {
	if contentWidth < 1 {
		contentWidth = 1
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}
		if textwidth.Width(line) <= contentWidth {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, contentWidth, delimiter)...)
	}
	return out
}

// wrapLine greedily packs delimiter-separated words into lines of at most
// contentWidth display columns, breaking at the last delimiter that fits.
// Words wider than a whole line are hard-split on character boundaries.
func wrapLine(line string, contentWidth int, delimiter rune) []string {
	words := strings.Split(line, string(delimiter))
	delimWidth := textwidth.RuneWidth(delimiter)

	var out []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		out = append(out, current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, word := range words {
		wordWidth := textwidth.Width(word)

		needed := wordWidth
		if current.Len() > 0 {
			needed += delimWidth
		}
		if currentWidth+needed <= contentWidth {
			if current.Len() > 0 {
				current.WriteRune(delimiter)
				currentWidth += delimWidth
			}
			current.WriteString(word)
			currentWidth += wordWidth
			continue
		}

		if current.Len() > 0 {
			flush()
		}
		if wordWidth <= contentWidth {
			current.WriteString(word)
			currentWidth = wordWidth
			continue
		}

		chunks := hardSplit(word, contentWidth)
		for _, chunk := range chunks[:len(chunks)-1] {
			out = append(out, chunk)
		}
		last := chunks[len(chunks)-1]
		current.WriteString(last)
		currentWidth = textwidth.Width(last)
	}
	if current.Len() > 0 {
		flush()
	}
	if len(out) == 0 {
		out = append(out, textwidth.Truncate(line, contentWidth))
	}
	return out
}

// hardSplit cuts a word into chunks of at most maxWidth display columns.
// The cut always falls on a rune boundary and never divides a wide glyph:
// a two-column glyph that does not fit the remainder of a chunk starts the
// next one. A glyph wider than maxWidth itself occupies a chunk of its own,
// overflowing by one column; there is no legitimate way to split it.
func hardSplit(word string, maxWidth int) []string {
	var chunks []string
	var current strings.Builder
	width := 0
	for _, r := range word {
		rw := textwidth.RuneWidth(r)
		if width+rw > maxWidth && current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			width = 0
		}
		current.WriteRune(r)
		width += rw
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	if len(chunks) == 0 {
		chunks = append(chunks, "")
	}
	return chunks
}

// truncateWithMarker cuts line to contentWidth with the truncation marker
// appended. The marker counts toward the line's width, so the result always
// fits the column.
func truncateWithMarker(line string, contentWidth int, marker string) string {
	markerWidth := textwidth.Width(marker)
	if markerWidth >= contentWidth {
		return textwidth.Truncate(marker, contentWidth)
	}
	if textwidth.Width(line)+markerWidth <= contentWidth {
		return line + marker
	}
	return textwidth.Truncate(line, contentWidth-markerWidth) + marker
}
