package table

// unboundedWidth stands in for "no upper bound". The allocator caps every
// column at the available budget, so the sentinel never leaks into output.
const unboundedWidth = 1 << 30

// bounds is the resolved lower/upper width pair for one column, padding
// included. Hidden columns resolve to (0, 0) and are excluded from all
// downstream arithmetic.
type bounds struct {
	min    int
	max    int
	hidden bool
}

// resolveBounds translates a column's declared constraint plus its scanned
// content width into concrete bounds.
//
// Percentage values resolve against the table's target width. When that
// width is unknown, percentage constraints are ignored rather than failing:
// the column falls back to its unconstrained behavior. Configuration
// inconsistencies (upper below lower, out-of-range percentages) are
// normalized by clamping, never surfaced as errors.
func resolveBounds(col *Column, maxContent, tableWidth int, widthKnown bool) bounds {
	// Every visible column keeps room for at least one content character.
	floor := col.paddingWidth() + 1
	if maxContent < floor {
		maxContent = floor
	}

	unconstrained := func() bounds {
		return bounds{min: floor, max: maxContent}
	}

	c := col.constraint
	if c == nil {
		return unconstrained()
	}

	switch c.kind {
	case constraintHidden:
		return bounds{hidden: true}

	case constraintAbsolute:
		v, ok := c.value.resolve(tableWidth, widthKnown)
		if !ok {
			return unconstrained()
		}
		if v < floor {
			v = floor
		}
		return bounds{min: v, max: v}

	case constraintContentWidth:
		return bounds{min: maxContent, max: maxContent}

	case constraintLowerBoundary:
		v, ok := c.lower.resolve(tableWidth, widthKnown)
		if !ok {
			return unconstrained()
		}
		if v < floor {
			v = floor
		}
		if v > maxContent {
			// The guaranteed minimum already exceeds the content; the
			// column may still grow if the allocator has slack to place.
			return bounds{min: v, max: unboundedWidth}
		}
		return bounds{min: v, max: maxContent}

	case constraintUpperBoundary:
		v, ok := c.upper.resolve(tableWidth, widthKnown)
		if !ok {
			return unconstrained()
		}
		if v < floor {
			v = floor
		}
		return bounds{min: floor, max: v}

	case constraintBoundaries:
		lo, okLo := c.lower.resolve(tableWidth, widthKnown)
		hi, okHi := c.upper.resolve(tableWidth, widthKnown)
		switch {
		case !okLo && !okHi:
			return unconstrained()
		case !okLo:
			return resolveBounds(colWithConstraint(col, NewUpperBoundary(c.upper)), maxContent, tableWidth, widthKnown)
		case !okHi:
			return resolveBounds(colWithConstraint(col, NewLowerBoundary(c.lower)), maxContent, tableWidth, widthKnown)
		}
		if lo < floor {
			lo = floor
		}
		if hi < lo {
			hi = lo
		}
		return bounds{min: lo, max: hi}
	}

	return unconstrained()
}

// colWithConstraint returns a shallow copy of col carrying a different
// constraint, used when one side of a Boundaries pair degrades away.
func colWithConstraint(col *Column, c Constraint) *Column {
	clone := *col
	clone.constraint = &c
	return &clone
}
