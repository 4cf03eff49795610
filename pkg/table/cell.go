package table

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Alignment controls horizontal placement of cell content inside its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Cell is a single table cell. Content is stored as the list of explicit
// lines (the constructor splits on newline), which makes multi-line handling
// uniform throughout the engine. Styling never affects a cell's measured
// width; colors and attributes are applied only after layout is complete.
type Cell struct {
	lines     []string
	delimiter rune
	alignment *Alignment
	fg        color.Color
	bg        color.Color
	bold      bool
	italic    bool
	underline bool
}

// NewCell creates a cell from any displayable value. Strings keep their
// explicit line breaks; other values go through fmt.Sprint.
func NewCell(value any) *Cell {
	var content string
	switch v := value.(type) {
	case string:
		content = v
	case *Cell:
		return v
	default:
		content = fmt.Sprint(v)
	}
	return &Cell{
		lines: strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n"),
	}
}

// Content returns the cell's content with explicit line breaks restored.
func (c *Cell) Content() string {
	return strings.Join(c.lines, "\n")
}

// WithDelimiter sets the rune the wrapper uses to split this cell's content
// into words. The default is a space.
func (c *Cell) WithDelimiter(d rune) *Cell {
	c.delimiter = d
	return c
}

// WithAlignment overrides the column alignment for this cell only.
func (c *Cell) WithAlignment(a Alignment) *Cell {
	c.alignment = &a
	return c
}

// WithForeground sets the foreground color, e.g. lipgloss.Color("81").
func (c *Cell) WithForeground(fg color.Color) *Cell {
	c.fg = fg
	return c
}

// WithBackground sets the background color.
func (c *Cell) WithBackground(bg color.Color) *Cell {
	c.bg = bg
	return c
}

// WithBold renders the cell bold.
func (c *Cell) WithBold() *Cell {
	c.bold = true
	return c
}

// WithItalic renders the cell italic.
func (c *Cell) WithItalic() *Cell {
	c.italic = true
	return c
}

// WithUnderline renders the cell underlined.
func (c *Cell) WithUnderline() *Cell {
	c.underline = true
	return c
}

func (c *Cell) wordDelimiter() rune {
	if c.delimiter != 0 {
		return c.delimiter
	}
	return ' '
}

// styled reports whether any styling is configured for this cell.
func (c *Cell) styled() bool {
	return c.fg != nil || c.bg != nil || c.bold || c.italic || c.underline
}

// style builds the lipgloss style for this cell's configured attributes.
func (c *Cell) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.fg != nil {
		s = s.Foreground(c.fg)
	}
	if c.bg != nil {
		s = s.Background(c.bg)
	}
	if c.bold {
		s = s.Bold(true)
	}
	if c.italic {
		s = s.Italic(true)
	}
	if c.underline {
		s = s.Underline(true)
	}
	return s
}
