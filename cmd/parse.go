package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oakwood-commons/tabula/pkg/table"
)

// levelFromName maps a log level name to its zapcore numeric value.
// Unknown names fall back to info rather than failing the run.
func levelFromName(name string) int8 {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return -1
	case "warn", "warning":
		return 1
	case "error":
		return 2
	default:
		return 0
	}
}

func presetByName(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii", "":
		return table.ASCIIFull, nil
	case "ascii-no-borders":
		return table.ASCIINoBorders, nil
	case "ascii-borders-only":
		return table.ASCIIBordersOnly, nil
	case "ascii-horizontal":
		return table.ASCIIHorizontalOnly, nil
	case "utf8":
		return table.UTF8Full, nil
	case "utf8-borders-only":
		return table.UTF8BordersOnly, nil
	case "nothing", "none":
		return table.Nothing, nil
	default:
		return "", fmt.Errorf("unknown preset %q", name)
	}
}

func arrangementByName(name string) (table.Arrangement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "disabled":
		return table.ArrangementDisabled, nil
	case "dynamic", "":
		return table.ArrangementDynamic, nil
	case "full-width", "fullwidth":
		return table.ArrangementDynamicFullWidth, nil
	default:
		return 0, fmt.Errorf("unknown arrangement %q (expected disabled, dynamic or full-width)", name)
	}
}

// parsePadding parses "L,R" or a single number used for both sides.
func parsePadding(spec string) (left, right int, err error) {
	parts := strings.SplitN(spec, ",", 2)
	left, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || left < 0 {
		return 0, 0, fmt.Errorf("invalid padding %q", spec)
	}
	if len(parts) == 1 {
		return left, left, nil
	}
	right, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || right < 0 {
		return 0, 0, fmt.Errorf("invalid padding %q", spec)
	}
	return left, right, nil
}

// parseAlignSpec parses "INDEX:left|center|right".
func parseAlignSpec(spec string) (int, table.Alignment, error) {
	index, value, err := splitIndexSpec(spec)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid align spec %q (expected INDEX:left|center|right)", spec)
	}
	switch strings.ToLower(value) {
	case "left":
		return index, table.AlignLeft, nil
	case "center", "centre":
		return index, table.AlignCenter, nil
	case "right":
		return index, table.AlignRight, nil
	default:
		return 0, 0, fmt.Errorf("invalid alignment %q (expected left, center or right)", value)
	}
}

// parseConstraintSpec parses "INDEX:SPEC". SPEC is one of:
//
//	20        fixed width of 20 columns
//	30%       30 percent of the table width
//	content   exactly the widest content
//	>=10      at least 10 columns
//	<=40      at most 40 columns
//	>=10<=40  both bounds
//
// Bound values may also be percentages, e.g. ">=25%".
func parseConstraintSpec(spec string) (int, table.Constraint, error) {
	index, value, err := splitIndexSpec(spec)
	if err != nil {
		return 0, table.Constraint{}, fmt.Errorf("invalid constraint spec %q (expected INDEX:SPEC)", spec)
	}

	switch {
	case value == "content":
		return index, table.NewContentWidth(), nil

	case strings.HasPrefix(value, ">="):
		rest := value[2:]
		if i := strings.Index(rest, "<="); i >= 0 {
			lower, err := parseWidthValue(rest[:i])
			if err != nil {
				return 0, table.Constraint{}, err
			}
			upper, err := parseWidthValue(rest[i+2:])
			if err != nil {
				return 0, table.Constraint{}, err
			}
			return index, table.NewBoundaries(lower, upper), nil
		}
		lower, err := parseWidthValue(rest)
		if err != nil {
			return 0, table.Constraint{}, err
		}
		return index, table.NewLowerBoundary(lower), nil

	case strings.HasPrefix(value, "<="):
		upper, err := parseWidthValue(value[2:])
		if err != nil {
			return 0, table.Constraint{}, err
		}
		return index, table.NewUpperBoundary(upper), nil

	default:
		v, err := parseWidthValue(value)
		if err != nil {
			return 0, table.Constraint{}, err
		}
		return index, table.NewAbsolute(v), nil
	}
}

// parseWidthValue parses "20" as a fixed width and "30%" as a percentage.
func parseWidthValue(s string) (table.WidthValue, error) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(p)
		if err != nil {
			return table.WidthValue{}, fmt.Errorf("invalid percentage %q", s)
		}
		return table.Percent(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return table.WidthValue{}, fmt.Errorf("invalid width %q", s)
	}
	return table.Fixed(n), nil
}

func splitIndexSpec(spec string) (int, string, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("missing colon")
	}
	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || index < 0 {
		return 0, "", fmt.Errorf("invalid index")
	}
	return index, strings.TrimSpace(parts[1]), nil
}
