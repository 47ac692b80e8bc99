package layout

import (
	"fmt"
	"strings"
)

// SpaceSize enumerates spacing tokens.
type SpaceSize int

const (
	SpaceXS SpaceSize = iota
	SpaceSM
	SpaceMD
	SpaceLG
	SpaceXL
	Space2XL
	Space3XL
)

const spaceSizeCount = int(Space3XL) + 1

var spaceSizeNames = [spaceSizeCount]string{"xs", "sm", "md", "lg", "xl", "2xl", "3xl"}

// spacingTable is indexed by breakpoint, then by SpaceSize.
var spacingTable = [breakpointCount][spaceSizeCount]float64{
	BreakpointSmall:  {3, 6, 12, 18, 24, 36, 48},
	BreakpointMedium: {4, 8, 16, 24, 32, 48, 64},
	BreakpointTablet: {6, 12, 24, 32, 48, 64, 96},
}

func (s SpaceSize) String() string {
	if s < 0 || int(s) >= spaceSizeCount {
		return fmt.Sprintf("space(%d)", int(s))
	}
	return spaceSizeNames[s]
}

// SpaceSizes lists every spacing token in ascending order.
func SpaceSizes() []SpaceSize {
	sizes := make([]SpaceSize, spaceSizeCount)
	for i := range sizes {
		sizes[i] = SpaceSize(i)
	}
	return sizes
}

// FontSize enumerates typography tokens.
type FontSize int

const (
	FontXS FontSize = iota
	FontSM
	FontBase
	FontLG
	FontXL
	Font2XL
	Font3XL
	Font4XL
)

const fontSizeCount = int(Font4XL) + 1

var fontSizeNames = [fontSizeCount]string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}

// fontNominal holds the unscaled size of each token at the reference width.
var fontNominal = [fontSizeCount]float64{12, 14, 16, 18, 20, 24, 30, 36}

func (f FontSize) String() string {
	if f < 0 || int(f) >= fontSizeCount {
		return fmt.Sprintf("font(%d)", int(f))
	}
	return fontSizeNames[f]
}

// Nominal returns the unscaled point size of the token.
func (f FontSize) Nominal() float64 {
	if f < 0 || int(f) >= fontSizeCount {
		return fontNominal[FontBase]
	}
	return fontNominal[f]
}

// FontSizes lists every typography token in ascending order.
func FontSizes() []FontSize {
	sizes := make([]FontSize, fontSizeCount)
	for i := range sizes {
		sizes[i] = FontSize(i)
	}
	return sizes
}

// ButtonSize enumerates button size classes.
type ButtonSize int

const (
	ButtonSM ButtonSize = iota
	ButtonMD
	ButtonLG
)

const buttonSizeCount = int(ButtonLG) + 1

var buttonSizeNames = [buttonSizeCount]string{"sm", "md", "lg"}

// ParseButtonSize converts sm, md or lg into a ButtonSize.
func ParseButtonSize(value string) (ButtonSize, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for i, name := range buttonSizeNames {
		if name == value {
			return ButtonSize(i), nil
		}
	}
	return ButtonMD, fmt.Errorf("unknown button size %q", value)
}

func (s ButtonSize) String() string {
	if s < 0 || int(s) >= buttonSizeCount {
		return fmt.Sprintf("button(%d)", int(s))
	}
	return buttonSizeNames[s]
}

// ButtonSizes lists every button size class in ascending order.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{ButtonSM, ButtonMD, ButtonLG}
}

var (
	inputHeightTable  = [breakpointCount]float64{BreakpointSmall: 40, BreakpointMedium: 44, BreakpointTablet: 52}
	headerHeightTable = [breakpointCount]float64{BreakpointSmall: 56, BreakpointMedium: 56, BreakpointTablet: 64}

	// buttonHeightTable is indexed by breakpoint, then by ButtonSize.
	buttonHeightTable = [breakpointCount][buttonSizeCount]float64{
		BreakpointSmall:  {32, 40, 48},
		BreakpointMedium: {36, 44, 52},
		BreakpointTablet: {40, 48, 56},
	}
)
