package layout

import "math"

// Resolver turns device samples into layout profiles.
// It holds only immutable tuning and is safe for concurrent use.
type Resolver struct {
	tuning Tuning
}

var defaultResolver = &Resolver{tuning: DefaultTuning()}

// NewResolver validates the tuning and returns a Resolver using it.
func NewResolver(tuning Tuning) (*Resolver, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{tuning: tuning}, nil
}

// DefaultResolver returns the shared resolver configured with DefaultTuning.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// Tuning returns the constants the resolver was built with.
func (r *Resolver) Tuning() Tuning {
	return r.tuning
}

// Resolve computes the layout profile for ctx with the default tuning.
func Resolve(ctx DeviceContext) (LayoutProfile, error) {
	return defaultResolver.Resolve(ctx)
}

// Resolve computes the layout profile for ctx. Invalid samples return an
// InvalidDeviceContextError and a zero profile.
func (r *Resolver) Resolve(ctx DeviceContext) (LayoutProfile, error) {
	if err := ctx.Validate(); err != nil {
		return LayoutProfile{}, err
	}
	return r.resolve(ctx), nil
}

func (r *Resolver) resolve(ctx DeviceContext) LayoutProfile {
	bp := Classify(ctx.ViewportWidth)
	row := bp.index()

	var fonts [fontSizeCount]float64
	for i, nominal := range fontNominal {
		fonts[i] = r.scaleFont(nominal, ctx.ViewportWidth, bp)
	}

	buttons := buttonHeightTable[row]

	return LayoutProfile{
		Context:     ctx,
		Breakpoint:  bp,
		IsSmall:     bp == BreakpointSmall,
		IsMedium:    bp == BreakpointMedium,
		IsTablet:    bp == BreakpointTablet,
		IsLandscape: ctx.ViewportWidth > ctx.ViewportHeight,
		Spacing:     newSpacingScale(spacingTable[row]),
		Fonts:       newFontScale(fonts),
		Dimensions: ComponentDimensions{
			InputHeight:  inputHeightTable[row],
			HeaderHeight: headerHeightTable[row],
			Buttons: ButtonHeights{
				SM: buttons[ButtonSM],
				MD: buttons[ButtonMD],
				LG: buttons[ButtonLG],
			},
		},
	}
}

// scaleFont scales linearly with width against the reference, never dropping
// below the phone floor and always boosting tablets to at least nominal size.
func (r *Resolver) scaleFont(size, width float64, bp Breakpoint) float64 {
	normalized := size * (width / r.tuning.ReferenceWidth)
	if bp == BreakpointTablet {
		return math.Max(normalized*r.tuning.TabletFontBoost, size)
	}
	return math.Max(normalized, size*r.tuning.PhoneFontFloor)
}

// DefaultDeviceContext is the sample used before the host reports real metrics.
func DefaultDeviceContext() DeviceContext {
	return DeviceContext{
		ViewportWidth:  375,
		ViewportHeight: 812,
		Platform:       PlatformIOS,
	}
}

// DefaultProfile is the hard-coded fallback used when no valid sample has been seen.
func DefaultProfile() LayoutProfile {
	return defaultResolver.resolve(DefaultDeviceContext())
}
