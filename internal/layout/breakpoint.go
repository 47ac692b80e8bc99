package layout

import "fmt"

// Width thresholds, inclusive on the lower bound of the wider category.
const (
	MediumMinWidth = 375.0
	TabletMinWidth = 768.0
)

// Breakpoint is a named viewport-width category.
type Breakpoint int

const (
	BreakpointSmall Breakpoint = iota
	BreakpointMedium
	BreakpointTablet
)

const breakpointCount = int(BreakpointTablet) + 1

// Classify maps a viewport width to exactly one breakpoint.
func Classify(width float64) Breakpoint {
	switch {
	case width >= TabletMinWidth:
		return BreakpointTablet
	case width >= MediumMinWidth:
		return BreakpointMedium
	default:
		return BreakpointSmall
	}
}

func (b Breakpoint) String() string {
	switch b {
	case BreakpointSmall:
		return "small"
	case BreakpointMedium:
		return "medium"
	case BreakpointTablet:
		return "tablet"
	default:
		return fmt.Sprintf("breakpoint(%d)", int(b))
	}
}

// MarshalText renders the breakpoint by name in JSON and YAML output.
func (b Breakpoint) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (b *Breakpoint) UnmarshalText(text []byte) error {
	switch string(text) {
	case "small":
		*b = BreakpointSmall
	case "medium":
		*b = BreakpointMedium
	case "tablet":
		*b = BreakpointTablet
	default:
		return fmt.Errorf("unknown breakpoint %q", string(text))
	}
	return nil
}

func (b Breakpoint) index() int {
	if b < 0 || int(b) >= breakpointCount {
		return int(BreakpointMedium)
	}
	return int(b)
}
