package layout

import (
	"fmt"
	"strings"
)

// Platform identifies the host operating system reporting the viewport.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// ParsePlatform accepts the canonical names plus the common spellings used on the command line.
func ParsePlatform(value string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ios", "iphone", "ipad":
		return PlatformIOS, nil
	case "android":
		return PlatformAndroid, nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected ios or android)", value)
	}
}

func (p Platform) String() string {
	return string(p)
}

// Insets is the padding a platform reserves for notches, status bars and home indicators.
type Insets struct {
	Top    float64 `json:"top" yaml:"top" validate:"gte=0"`
	Bottom float64 `json:"bottom" yaml:"bottom" validate:"gte=0"`
	Left   float64 `json:"left" yaml:"left" validate:"gte=0"`
	Right  float64 `json:"right" yaml:"right" validate:"gte=0"`
}

// Horizontal returns left + right.
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns top + bottom.
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// DeviceContext is one sample of the host viewport. Values are logical pixels.
type DeviceContext struct {
	ViewportWidth  float64  `json:"viewport_width" yaml:"viewport_width" validate:"gt=0"`
	ViewportHeight float64  `json:"viewport_height" yaml:"viewport_height" validate:"gt=0"`
	Platform       Platform `json:"platform" yaml:"platform" validate:"oneof=ios android"`
	SafeArea       Insets   `json:"safe_area" yaml:"safe_area"`
}

// Rotated returns the context with width and height swapped. Insets rotate clockwise.
func (c DeviceContext) Rotated() DeviceContext {
	rotated := c
	rotated.ViewportWidth, rotated.ViewportHeight = c.ViewportHeight, c.ViewportWidth
	rotated.SafeArea = Insets{
		Top:    c.SafeArea.Left,
		Right:  c.SafeArea.Top,
		Bottom: c.SafeArea.Right,
		Left:   c.SafeArea.Bottom,
	}
	return rotated
}

// Validate reports the first problem with the sample as an InvalidDeviceContextError.
func (c DeviceContext) Validate() error {
	return validateDeviceContext(c)
}
