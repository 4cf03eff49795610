package table

// resolvedColumn is the per-render outcome of arrangement for one column.
// Width includes padding. Resolved widths are never persisted between
// renders; arrangement is a pure function of the current table state.
type resolvedColumn struct {
	column *Column
	width  int
	hidden bool
}

func (rc resolvedColumn) contentWidth() int {
	w := rc.width - rc.column.paddingWidth()
	if w < 0 {
		return 0
	}
	return w
}

// arrange computes the final width of every column for the given target
// width. In Disabled mode, or when the target width is unknown, every
// column renders at its content width (subject to its constraint). In
// Dynamic and DynamicFullWidth modes the available budget is allocated
// across visible columns between their resolved bounds.
func (t *Table) arrange(tableWidth int, widthKnown bool) []resolvedColumn {
	contentWidths := t.scanContent()

	resolved := make([]resolvedColumn, len(t.columns))
	allBounds := make([]bounds, len(t.columns))
	visible := 0
	for i, col := range t.columns {
		b := resolveBounds(col, contentWidths[i], tableWidth, widthKnown)
		allBounds[i] = b
		resolved[i] = resolvedColumn{column: col, hidden: b.hidden}
		if !b.hidden {
			visible++
		}
	}
	if visible == 0 {
		return resolved
	}

	if t.arrangement == ArrangementDisabled || !widthKnown {
		// Full content width, clamped into the constraint bounds. The
		// rendered table may exceed the terminal width.
		for i := range resolved {
			if resolved[i].hidden {
				continue
			}
			w := contentWidths[i]
			if w > allBounds[i].max {
				w = allBounds[i].max
			}
			if w < allBounds[i].min {
				w = allBounds[i].min
			}
			resolved[i].width = w
		}
		return resolved
	}

	available := tableWidth - t.borderOverhead(visible)
	if available < 0 {
		available = 0
	}

	minSum := 0
	for i := range allBounds {
		if !allBounds[i].hidden {
			minSum += allBounds[i].min
		}
	}

	if minSum > available {
		t.shrinkBelowMinimums(resolved, allBounds, available, minSum)
		return resolved
	}

	// Normal case: start at the minimum and grow toward the maximum,
	// proportionally to each column's headroom.
	for i := range resolved {
		if !resolved[i].hidden {
			resolved[i].width = allBounds[i].min
		}
	}
	slack := available - minSum

	headroom := make([]int, len(resolved))
	totalHeadroom := 0
	for i := range resolved {
		if resolved[i].hidden {
			continue
		}
		maxW := allBounds[i].max
		if maxW > available {
			maxW = available
		}
		if h := maxW - allBounds[i].min; h > 0 {
			headroom[i] = h
			totalHeadroom += h
		}
	}

	if slack > 0 && totalHeadroom > 0 {
		if slack >= totalHeadroom {
			for i := range resolved {
				resolved[i].width += headroom[i]
			}
			slack -= totalHeadroom
		} else {
			distributeProportionally(resolved, headroom, totalHeadroom, slack)
			slack = 0
		}
	}

	// Leftover budget after every column reached its maximum. Dynamic mode
	// drops it and renders narrower than the target; DynamicFullWidth grows
	// all visible columns past their nominal maximum to consume it.
	if slack > 0 && t.arrangement == ArrangementDynamicFullWidth {
		each := slack / visible
		excess := slack % visible
		for i := range resolved {
			if resolved[i].hidden {
				continue
			}
			resolved[i].width += each
			if excess > 0 {
				resolved[i].width++
				excess--
			}
		}
	}

	return resolved
}

// distributeProportionally grows columns from their minimum in proportion to
// their headroom. Integer rounding leaves a remainder, which goes to the
// earliest columns still below their maximum; ascending column index is the
// fixed tie-break so layouts are deterministic.
func distributeProportionally(resolved []resolvedColumn, headroom []int, totalHeadroom, slack int) {
	grants := make([]int, len(resolved))
	granted := 0
	for i := range resolved {
		if headroom[i] == 0 {
			continue
		}
		grants[i] = slack * headroom[i] / totalHeadroom
		granted += grants[i]
	}
	for i := 0; granted < slack && i < len(resolved); i++ {
		if grants[i] < headroom[i] {
			grants[i]++
			granted++
		}
	}
	// Rounding can leave more remainder than one unit per column; pour the
	// rest into the earliest columns with headroom to spare.
	for i := 0; granted < slack && i < len(resolved); i++ {
		if room := headroom[i] - grants[i]; room > 0 {
			take := room
			if take > slack-granted {
				take = slack - granted
			}
			grants[i] += take
			granted += take
		}
	}
	for i := range resolved {
		resolved[i].width += grants[i]
	}
}

// shrinkBelowMinimums handles the under-budget case: the sum of minimum
// widths exceeds the available space. Columns shrink proportionally to
// their share of the minimum sum but never below one content character
// plus padding. This is the sole admitted violation of the minimum bound
// and is reported as a layout compromise, not an error.
func (t *Table) shrinkBelowMinimums(resolved []resolvedColumn, allBounds []bounds, available, minSum int) {
	assigned := 0
	for i := range resolved {
		if resolved[i].hidden {
			continue
		}
		resolved[i].width = available * allBounds[i].min / minSum
		assigned += resolved[i].width
	}
	for i := 0; assigned < available && i < len(resolved); i++ {
		if resolved[i].hidden {
			continue
		}
		if resolved[i].width < allBounds[i].min {
			resolved[i].width++
			assigned++
		}
	}
	for i := range resolved {
		if resolved[i].hidden {
			continue
		}
		if floor := resolved[i].column.paddingWidth() + 1; resolved[i].width < floor {
			resolved[i].width = floor
		}
	}
	t.log.Info("layout compromise: shrinking columns below their minimum widths",
		"available", available, "requiredMinimum", minSum)
}

// borderOverhead counts the characters spent on the frame: one for the left
// border if the preset draws it, one for the right, and one separator
// between each adjacent pair of visible columns. Separator slots exist even
// when the preset leaves the vertical line undrawn, so columns stay apart.
func (t *Table) borderOverhead(visibleColumns int) int {
	overhead := 0
	if _, ok := t.style[ComponentLeftBorder]; ok {
		overhead++
	}
	if _, ok := t.style[ComponentRightBorder]; ok {
		overhead++
	}
	if visibleColumns > 1 {
		overhead += visibleColumns - 1
	}
	return overhead
}
