package table

// Component identifies one drawable piece of the table frame. A preset
// string assigns one rune per component, in the order the constants are
// declared below. A space means "this component is not drawn".
type Component int

const (
	ComponentLeftBorder Component = iota
	ComponentRightBorder
	ComponentTopBorder
	ComponentBottomBorder
	ComponentHeaderLeftIntersection
	ComponentHeaderBorder
	ComponentHeaderMiddleIntersection
	ComponentHeaderRightIntersection
	ComponentVerticalLines
	ComponentHorizontalLines
	ComponentMiddleIntersections
	ComponentLeftBorderIntersections
	ComponentRightBorderIntersections
	ComponentTopBorderIntersections
	ComponentBottomBorderIntersections
	ComponentTopLeftCorner
	ComponentTopRightCorner
	ComponentBottomLeftCorner
	ComponentBottomRightCorner

	componentCount
)

// Border presets. Each string assigns runes to components in declaration
// order; spaces leave the component undrawn.
const (
	// ASCIIFull is the default preset.
	//
	//  +-------+-------+
	//  | Hello | there |
	//  +===============+
	//  | a     | b     |
	//  |-------+-------|
	//  | c     | d     |
	//  +-------+-------+
	ASCIIFull = "||--+==+|-+||++++++"

	// ASCIINoBorders keeps only the inner lines.
	//
	//   Hello | there
	//  ===============
	//   a     | b
	//  -------+-------
	//   c     | d
	ASCIINoBorders = "     == |-+        "

	// ASCIIBordersOnly drops the inner vertical and horizontal lines.
	//
	//  +---------------+
	//  | Hello   there |
	//  +===============+
	//  | a       b     |
	//  | c       d     |
	//  +---------------+
	ASCIIBordersOnly = "||--+==+   ||--++++"

	// ASCIIHorizontalOnly keeps only horizontal rules.
	//
	//  ---------------
	//   Hello   there
	//  ===============
	//   a       b
	//  ---------------
	ASCIIHorizontalOnly = "  -- ==  --  --    "

	// UTF8Full is the box-drawing equivalent of ASCIIFull.
	//
	//  ┌───────┬───────┐
	//  │ Hello │ there │
	//  ╞═══════╪═══════╡
	//  │ a     ┆ b     │
	//  ├╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┤
	//  │ c     ┆ d     │
	//  └───────┴───────┘
	UTF8Full = "││──╞═╪╡┆╌┼├┤┬┴┌┐└┘"

	// UTF8BordersOnly is UTF8Full without inner lines.
	//
	//  ┌───────────────┐
	//  │ Hello   there │
	//  ╞═══════════════╡
	//  │ a       b     │
	//  └───────────────┘
	UTF8BordersOnly = "││──╞══╡     ──┌┐└┘"

	// Nothing draws no frame at all, only padded content.
	Nothing = ""
)

// Modifiers overlay runes onto an already loaded preset. Spaces skip the
// component, keeping whatever the preset assigned.
const (
	// UTF8RoundCorners swaps the four corners of a UTF8 preset for their
	// rounded variants.
	UTF8RoundCorners = "               ╭╮╰╯"
)

// newStyleMap builds the component table for a preset string.
func newStyleMap(preset string) map[Component]rune {
	style := make(map[Component]rune, componentCount)
	loadPresetInto(style, preset)
	return style
}

func loadPresetInto(style map[Component]rune, preset string) {
	component := Component(0)
	for _, r := range preset {
		if component >= componentCount {
			break
		}
		if r == ' ' {
			delete(style, component)
		} else {
			style[component] = r
		}
		component++
	}
	// A short preset leaves the remaining components undrawn.
	for ; component < componentCount; component++ {
		delete(style, component)
	}
}

func applyModifierTo(style map[Component]rune, modifier string) {
	component := Component(0)
	for _, r := range modifier {
		if component >= componentCount {
			break
		}
		if r != ' ' {
			style[component] = r
		}
		component++
	}
}
