package layout

// SpacingScale is the resolved spacing for one breakpoint.
type SpacingScale struct {
	XS   float64 `json:"xs" yaml:"xs"`
	SM   float64 `json:"sm" yaml:"sm"`
	MD   float64 `json:"md" yaml:"md"`
	LG   float64 `json:"lg" yaml:"lg"`
	XL   float64 `json:"xl" yaml:"xl"`
	XXL  float64 `json:"2xl" yaml:"2xl"`
	XXXL float64 `json:"3xl" yaml:"3xl"`
}

func newSpacingScale(values [spaceSizeCount]float64) SpacingScale {
	return SpacingScale{
		XS:   values[SpaceXS],
		SM:   values[SpaceSM],
		MD:   values[SpaceMD],
		LG:   values[SpaceLG],
		XL:   values[SpaceXL],
		XXL:  values[Space2XL],
		XXXL: values[Space3XL],
	}
}

// Get returns the value for a token. Unknown tokens resolve to MD.
func (s SpacingScale) Get(size SpaceSize) float64 {
	switch size {
	case SpaceXS:
		return s.XS
	case SpaceSM:
		return s.SM
	case SpaceLG:
		return s.LG
	case SpaceXL:
		return s.XL
	case Space2XL:
		return s.XXL
	case Space3XL:
		return s.XXXL
	default:
		return s.MD
	}
}

// FontScale is the resolved typography for one viewport width.
type FontScale struct {
	XS   float64 `json:"xs" yaml:"xs"`
	SM   float64 `json:"sm" yaml:"sm"`
	Base float64 `json:"base" yaml:"base"`
	LG   float64 `json:"lg" yaml:"lg"`
	XL   float64 `json:"xl" yaml:"xl"`
	XXL  float64 `json:"2xl" yaml:"2xl"`
	XXXL float64 `json:"3xl" yaml:"3xl"`
	X4L  float64 `json:"4xl" yaml:"4xl"`
}

func newFontScale(values [fontSizeCount]float64) FontScale {
	return FontScale{
		XS:   values[FontXS],
		SM:   values[FontSM],
		Base: values[FontBase],
		LG:   values[FontLG],
		XL:   values[FontXL],
		XXL:  values[Font2XL],
		XXXL: values[Font3XL],
		X4L:  values[Font4XL],
	}
}

// Get returns the value for a token. Unknown tokens resolve to Base.
func (f FontScale) Get(size FontSize) float64 {
	switch size {
	case FontXS:
		return f.XS
	case FontSM:
		return f.SM
	case FontLG:
		return f.LG
	case FontXL:
		return f.XL
	case Font2XL:
		return f.XXL
	case Font3XL:
		return f.XXXL
	case Font4XL:
		return f.X4L
	default:
		return f.Base
	}
}

// ButtonHeights holds one height per button size class.
type ButtonHeights struct {
	SM float64 `json:"sm" yaml:"sm"`
	MD float64 `json:"md" yaml:"md"`
	LG float64 `json:"lg" yaml:"lg"`
}

// ComponentDimensions are the heights of interactive elements.
type ComponentDimensions struct {
	InputHeight  float64       `json:"input_height" yaml:"input_height"`
	HeaderHeight float64       `json:"header_height" yaml:"header_height"`
	Buttons      ButtonHeights `json:"button_heights" yaml:"button_heights"`
}

// LayoutProfile is everything presentation code needs for one render.
type LayoutProfile struct {
	Context     DeviceContext       `json:"context" yaml:"context"`
	Breakpoint  Breakpoint          `json:"breakpoint" yaml:"breakpoint"`
	IsSmall     bool                `json:"is_small" yaml:"is_small"`
	IsMedium    bool                `json:"is_medium" yaml:"is_medium"`
	IsTablet    bool                `json:"is_tablet" yaml:"is_tablet"`
	IsLandscape bool                `json:"is_landscape" yaml:"is_landscape"`
	Spacing     SpacingScale        `json:"spacing" yaml:"spacing"`
	Fonts       FontScale           `json:"fonts" yaml:"fonts"`
	Dimensions  ComponentDimensions `json:"dimensions" yaml:"dimensions"`
}

// ButtonHeight returns the height for a button size class. Unknown sizes resolve to md.
func (p LayoutProfile) ButtonHeight(size ButtonSize) float64 {
	switch size {
	case ButtonSM:
		return p.Dimensions.Buttons.SM
	case ButtonLG:
		return p.Dimensions.Buttons.LG
	default:
		return p.Dimensions.Buttons.MD
	}
}

// Space is shorthand for p.Spacing.Get(size).
func (p LayoutProfile) Space(size SpaceSize) float64 {
	return p.Spacing.Get(size)
}

// Font is shorthand for p.Fonts.Get(size).
func (p LayoutProfile) Font(size FontSize) float64 {
	return p.Fonts.Get(size)
}

// ContentWidth is the width left for content after safe-area insets and the
// standard horizontal container padding on both sides.
func (p LayoutProfile) ContentWidth() float64 {
	width := p.Context.ViewportWidth - p.Context.SafeArea.Horizontal() - 2*p.Spacing.MD
	if width < 0 {
		return 0
	}
	return width
}

// GridColumns is the number of card columns a list screen should use.
func (p LayoutProfile) GridColumns() int {
	switch {
	case p.IsTablet && p.IsLandscape:
		return 3
	case p.IsTablet:
		return 2
	default:
		return 1
	}
}

// Select picks the value matching the profile's breakpoint.
func Select[T any](p LayoutProfile, small, medium, tablet T) T {
	switch p.Breakpoint {
	case BreakpointSmall:
		return small
	case BreakpointTablet:
		return tablet
	default:
		return medium
	}
}
