package layout

import "strings"

// ElevationLevel is a named shadow-intensity tier.
type ElevationLevel string

const (
	ElevationNone ElevationLevel = "none"
	ElevationSM   ElevationLevel = "sm"
	ElevationBase ElevationLevel = "base"
	ElevationMD   ElevationLevel = "md"
	ElevationLG   ElevationLevel = "lg"
	ElevationXL   ElevationLevel = "xl"
)

var elevationLevels = []ElevationLevel{ElevationNone, ElevationSM, ElevationBase, ElevationMD, ElevationLG, ElevationXL}

// ElevationLevels lists every known level from flattest to highest.
func ElevationLevels() []ElevationLevel {
	levels := make([]ElevationLevel, len(elevationLevels))
	copy(levels, elevationLevels)
	return levels
}

// Known reports whether the level has its own table entry.
func (l ElevationLevel) Known() bool {
	_, ok := elevationIndex(l)
	return ok
}

func elevationIndex(level ElevationLevel) (int, bool) {
	normalized := ElevationLevel(strings.ToLower(strings.TrimSpace(string(level))))
	for i, known := range elevationLevels {
		if known == normalized {
			return i, true
		}
	}
	return 0, false
}

// ShadowOffset is the iOS shadow displacement.
type ShadowOffset struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// IOSShadow carries the four shadow properties iOS renders.
type IOSShadow struct {
	Color   string       `json:"shadow_color" yaml:"shadow_color"`
	Offset  ShadowOffset `json:"shadow_offset" yaml:"shadow_offset"`
	Opacity float64      `json:"shadow_opacity" yaml:"shadow_opacity"`
	Radius  float64      `json:"shadow_radius" yaml:"shadow_radius"`
}

// AndroidShadow carries the elevation Android renders, with an optional tint.
type AndroidShadow struct {
	Elevation int    `json:"elevation" yaml:"elevation"`
	Tint      string `json:"shadow_color,omitempty" yaml:"shadow_color,omitempty"`
}

// ShadowToken is a platform-appropriate shadow style. Exactly one of IOS and
// Android is set.
type ShadowToken struct {
	Level    ElevationLevel `json:"level" yaml:"level"`
	Platform Platform       `json:"platform" yaml:"platform"`
	IOS      *IOSShadow     `json:"ios,omitempty" yaml:"ios,omitempty"`
	Android  *AndroidShadow `json:"android,omitempty" yaml:"android,omitempty"`
}

const shadowColor = "#000000"

var iosShadowTable = [...]IOSShadow{
	{Color: shadowColor, Offset: ShadowOffset{0, 0}, Opacity: 0, Radius: 0},
	{Color: shadowColor, Offset: ShadowOffset{0, 1}, Opacity: 0.05, Radius: 2},
	{Color: shadowColor, Offset: ShadowOffset{0, 1}, Opacity: 0.1, Radius: 3},
	{Color: shadowColor, Offset: ShadowOffset{0, 4}, Opacity: 0.1, Radius: 6},
	{Color: shadowColor, Offset: ShadowOffset{0, 10}, Opacity: 0.15, Radius: 15},
	{Color: shadowColor, Offset: ShadowOffset{0, 20}, Opacity: 0.25, Radius: 25},
}

var androidShadowTable = [...]AndroidShadow{
	{Elevation: 0},
	{Elevation: 1, Tint: shadowColor},
	{Elevation: 2, Tint: shadowColor},
	{Elevation: 3, Tint: shadowColor},
	{Elevation: 4, Tint: shadowColor},
	{Elevation: 5, Tint: shadowColor},
}

// ResolveShadow never fails. Unknown levels use the base entry and any
// platform other than Android gets the iOS shadow properties.
func ResolveShadow(level ElevationLevel, platform Platform) ShadowToken {
	idx, ok := elevationIndex(level)
	if !ok {
		idx, _ = elevationIndex(ElevationBase)
	}
	resolved := elevationLevels[idx]

	if platform == PlatformAndroid {
		android := androidShadowTable[idx]
		return ShadowToken{Level: resolved, Platform: PlatformAndroid, Android: &android}
	}

	ios := iosShadowTable[idx]
	return ShadowToken{Level: resolved, Platform: PlatformIOS, IOS: &ios}
}
