package table

import (
	"strings"

	"github.com/oakwood-commons/tabula/internal/textwidth"
)

// renderLines produces the complete output grid, one display line per entry.
func (t *Table) renderLines() []string {
	width, widthKnown, tty := t.targetWidth()
	resolved := t.arrange(width, widthKnown)

	visible := make([]resolvedColumn, 0, len(resolved))
	for _, rc := range resolved {
		if !rc.hidden {
			visible = append(visible, rc)
		}
	}
	if len(visible) == 0 {
		return nil
	}

	styling := tty && !t.stylingDisabled

	var lines []string
	if rule, ok := t.horizontalRule(visible,
		ComponentTopLeftCorner, ComponentTopBorder,
		ComponentTopBorderIntersections, ComponentTopRightCorner); ok {
		lines = append(lines, rule)
	}
	if t.header != nil {
		lines = append(lines, t.formatRow(t.header, resolved, visible, styling)...)
		if rule, ok := t.horizontalRule(visible,
			ComponentHeaderLeftIntersection, ComponentHeaderBorder,
			ComponentHeaderMiddleIntersection, ComponentHeaderRightIntersection); ok {
			lines = append(lines, rule)
		}
	}
	for i, row := range t.rows {
		if i > 0 {
			if rule, ok := t.horizontalRule(visible,
				ComponentLeftBorderIntersections, ComponentHorizontalLines,
				ComponentMiddleIntersections, ComponentRightBorderIntersections); ok {
				lines = append(lines, rule)
			}
		}
		lines = append(lines, t.formatRow(row, resolved, visible, styling)...)
	}
	if rule, ok := t.horizontalRule(visible,
		ComponentBottomLeftCorner, ComponentBottomBorder,
		ComponentBottomBorderIntersections, ComponentBottomRightCorner); ok {
		lines = append(lines, rule)
	}
	return lines
}

// formatRow wraps, truncates, aligns, pads and styles one row's cells and
// joins them into display lines.
func (t *Table) formatRow(row *Row, resolved, visible []resolvedColumn, styling bool) []string {
	type wrappedCell struct {
		lines []string
		cell  *Cell
		rc    resolvedColumn
	}

	cells := make([]wrappedCell, 0, len(visible))
	rowHeight := 1
	for _, rc := range resolved {
		if rc.hidden {
			continue
		}
		cell := row.Cell(rc.column.index)
		wc := wrappedCell{cell: cell, rc: rc}
		if cell != nil {
			wc.lines = wrapLines(cell.lines, rc.contentWidth(), cell.wordDelimiter())
		} else {
			wc.lines = []string{""}
		}
		if len(wc.lines) > rowHeight {
			rowHeight = len(wc.lines)
		}
		cells = append(cells, wc)
	}

	// Row max-height: when any cell wraps past the limit, every cell in the
	// row is cut to the limit and each cut cell gets the truncation marker
	// appended to its last kept line, recomputed to still fit the column.
	if max := row.maxHeight; max > 0 && rowHeight > max {
		rowHeight = max
		for i := range cells {
			if len(cells[i].lines) <= max {
				continue
			}
			kept := cells[i].lines[:max]
			kept[max-1] = truncateWithMarker(kept[max-1], cells[i].rc.contentWidth(), t.truncationMarker)
			cells[i].lines = kept
		}
	}

	out := make([]string, 0, rowHeight)
	for li := 0; li < rowHeight; li++ {
		parts := make([]string, len(cells))
		for ci, wc := range cells {
			var line string
			if li < len(wc.lines) {
				line = wc.lines[li]
			}
			parts[ci] = t.formatCellLine(line, wc.cell, wc.rc, styling)
		}
		out = append(out, t.joinRowLine(parts))
	}
	return out
}

// formatCellLine aligns one wrapped line inside its column's content area,
// adds the column padding, and applies cell styling last so attribute codes
// never perturb the width-based alignment.
func (t *Table) formatCellLine(line string, cell *Cell, rc resolvedColumn, styling bool) string {
	contentWidth := rc.contentWidth()
	lineWidth := textwidth.Width(line)
	if lineWidth > contentWidth {
		line = textwidth.Truncate(line, contentWidth)
		lineWidth = textwidth.Width(line)
	}

	align := AlignLeft
	if rc.column.alignment != nil {
		align = *rc.column.alignment
	}
	if cell != nil && cell.alignment != nil {
		align = *cell.alignment
	}

	gap := contentWidth - lineWidth
	switch align {
	case AlignRight:
		line = strings.Repeat(" ", gap) + line
	case AlignCenter:
		// The rounding remainder goes to the right side.
		left := gap / 2
		line = strings.Repeat(" ", left) + line + strings.Repeat(" ", gap-left)
	default:
		line += strings.Repeat(" ", gap)
	}

	padded := strings.Repeat(" ", rc.column.paddingLeft) + line + strings.Repeat(" ", rc.column.paddingRight)
	if styling && cell != nil && cell.styled() {
		return cell.style().Render(padded)
	}
	return padded
}

// joinRowLine joins formatted column cells with the frame's vertical glyphs.
// A column gap always occupies one character; when the preset leaves the
// vertical line undrawn, a space keeps the columns apart.
func (t *Table) joinRowLine(parts []string) string {
	var b strings.Builder
	if r, ok := t.style[ComponentLeftBorder]; ok {
		b.WriteRune(r)
	}
	for i, part := range parts {
		if i > 0 {
			if r, ok := t.style[ComponentVerticalLines]; ok {
				b.WriteRune(r)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(part)
	}
	if r, ok := t.style[ComponentRightBorder]; ok {
		b.WriteRune(r)
	}
	return b.String()
}

// horizontalRule draws one horizontal frame line (top border, header
// separator, row separator or bottom border). The rule is only drawn when
// its line component exists in the active preset. Missing corner or
// intersection glyphs inside an existing slot render as spaces.
func (t *Table) horizontalRule(visible []resolvedColumn, left, line, middle, right Component) (string, bool) {
	lineRune, ok := t.style[line]
	if !ok {
		return "", false
	}

	var b strings.Builder
	if _, edge := t.style[ComponentLeftBorder]; edge {
		b.WriteRune(styleOrSpace(t.style, left))
	}
	for i, rc := range visible {
		if i > 0 {
			b.WriteRune(styleOrSpace(t.style, middle))
		}
		b.WriteString(strings.Repeat(string(lineRune), rc.width))
	}
	if _, edge := t.style[ComponentRightBorder]; edge {
		b.WriteRune(styleOrSpace(t.style, right))
	}
	return b.String(), true
}

func styleOrSpace(style map[Component]rune, c Component) rune {
	if r, ok := style[c]; ok {
		return r
	}
	return ' '
}
