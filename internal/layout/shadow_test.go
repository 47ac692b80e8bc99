package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveShadowIOSTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level   ElevationLevel
		offsetY float64
		opacity float64
		radius  float64
	}{
		{level: ElevationNone, offsetY: 0, opacity: 0, radius: 0},
		{level: ElevationSM, offsetY: 1, opacity: 0.05, radius: 2},
		{level: ElevationBase, offsetY: 1, opacity: 0.1, radius: 3},
		{level: ElevationMD, offsetY: 4, opacity: 0.1, radius: 6},
		{level: ElevationLG, offsetY: 10, opacity: 0.15, radius: 15},
		{level: ElevationXL, offsetY: 20, opacity: 0.25, radius: 25},
	}

	for _, tc := range cases {
		token := ResolveShadow(tc.level, PlatformIOS)
		require.NotNil(t, token.IOS, "level %s", tc.level)
		assert.Nil(t, token.Android)
		assert.Equal(t, tc.level, token.Level)
		assert.Equal(t, PlatformIOS, token.Platform)
		assert.Equal(t, "#000000", token.IOS.Color)
		assert.Equal(t, ShadowOffset{Width: 0, Height: tc.offsetY}, token.IOS.Offset)
		assert.Equal(t, tc.opacity, token.IOS.Opacity)
		assert.Equal(t, tc.radius, token.IOS.Radius)
	}
}

func TestResolveShadowAndroidElevation(t *testing.T) {
	t.Parallel()

	for want, level := range ElevationLevels() {
		token := ResolveShadow(level, PlatformAndroid)
		require.NotNil(t, token.Android, "level %s", level)
		assert.Nil(t, token.IOS)
		assert.Equal(t, want, token.Android.Elevation)
		if level == ElevationNone {
			assert.Empty(t, token.Android.Tint)
		} else {
			assert.Equal(t, "#000000", token.Android.Tint)
		}
	}
}

func TestResolveShadowUnknownLevelFallsBackToBase(t *testing.T) {
	t.Parallel()

	for _, platform := range []Platform{PlatformIOS, PlatformAndroid} {
		assert.Equal(t, ResolveShadow(ElevationBase, platform), ResolveShadow("unknown-level", platform))
		assert.Equal(t, ResolveShadow(ElevationBase, platform), ResolveShadow("", platform))
	}
	assert.False(t, ElevationLevel("unknown-level").Known())
	assert.True(t, ElevationLevel(" LG ").Known())
	assert.Equal(t, ElevationLG, ResolveShadow(" LG ", PlatformIOS).Level)
}

func TestResolveShadowUnknownPlatformUsesIOSProperties(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ResolveShadow(ElevationMD, PlatformIOS), ResolveShadow(ElevationMD, "web"))
}

func TestResolveShadowReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	first := ResolveShadow(ElevationXL, PlatformIOS)
	first.IOS.Radius = 999

	second := ResolveShadow(ElevationXL, PlatformIOS)
	assert.Equal(t, 25.0, second.IOS.Radius)
}
