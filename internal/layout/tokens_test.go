package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Platform{"ios": PlatformIOS, " iPhone ": PlatformIOS, "ANDROID": PlatformAndroid} {
		got, err := ParsePlatform(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParsePlatform("web")
	require.Error(t, err)
}

func TestParseButtonSize(t *testing.T) {
	t.Parallel()

	size, err := ParseButtonSize("LG")
	require.NoError(t, err)
	assert.Equal(t, ButtonLG, size)

	_, err = ParseButtonSize("huge")
	require.Error(t, err)
}

func TestTokenNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2xl", Space2XL.String())
	assert.Equal(t, "4xl", Font4XL.String())
	assert.Equal(t, "tablet", BreakpointTablet.String())
	assert.Equal(t, "space(12)", SpaceSize(12).String())
	assert.Equal(t, 16.0, FontSize(99).Nominal())
	assert.Len(t, SpaceSizes(), 7)
	assert.Len(t, FontSizes(), 8)
	assert.Len(t, ElevationLevels(), 6)
}

func TestProfileSerializesBreakpointByName(t *testing.T) {
	t.Parallel()

	profile := DefaultProfile()

	data, err := json.Marshal(profile)
	require.NoError(t, err)
	require.Contains(t, string(data), `"breakpoint":"medium"`)
	require.Contains(t, string(data), `"2xl":48`)

	var decoded LayoutProfile
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, profile, decoded)

	out, err := yaml.Marshal(profile)
	require.NoError(t, err)
	require.Contains(t, string(out), "breakpoint: medium")

	var bp Breakpoint
	require.Error(t, bp.UnmarshalText([]byte("phablet")))
}
