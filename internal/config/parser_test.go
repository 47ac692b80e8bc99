package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/podium/internal/layout"
	podiumerrors "github.com/alexisbeaulieu97/podium/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
tuning:
  phone_font_floor: 0.9
devices:
  - id: test_phone
    name: "Test Phone"
    platform: android
    width: 360
    height: 740
    safe_area: {top: 24}
`

	invalidYAML := `version: [1, 0]
devices:
  - id: broken
`

	missingDevices := `version: "1.0"
`

	badVersion := `version: "beta"
devices:
  - id: phone
    platform: ios
    width: 390
    height: 844
`

	badPlatform := `version: "1.0"
devices:
  - id: phone
    platform: web
    width: 390
    height: 844
`

	duplicateIDs := `version: "1.0"
devices:
  - id: phone
    platform: ios
    width: 390
    height: 844
  - id: phone
    platform: android
    width: 412
    height: 915
`

	negativeInset := `version: "1.0"
devices:
  - id: phone
    platform: ios
    width: 390
    height: 844
    safe_area: {bottom: -2}
`

	badTuning := `version: "1.0"
tuning:
  tablet_font_boost: 0.5
devices:
  - id: phone
    platform: ios
    width: 390
    height: 844
`

	infiniteBoost := `version: "1.0"
tuning:
  tablet_font_boost: .inf
devices:
  - id: tablet
    platform: ios
    width: 820
    height: 1180
`

	subPixelReference := `version: "1.0"
tuning:
  reference_width: 1e-320
devices:
  - id: tablet
    platform: ios
    width: 820
    height: 1180
`

	infiniteWidth := `version: "1.0"
devices:
  - id: phone
    platform: ios
    width: .inf
    height: 844
`

	mistypedPreset := `version: "1.0"
devices:
  - id: phone
    platform: ios
    width: 390
    height: 844
  - id: pixel_8
    platform: android
    width: wide
    height: 915
tuning:
  phone_font_floor: 0.9
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid catalogue is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Len(t, cfg.Devices, 1)

				device, err := cfg.Device("test_phone")
				require.NoError(t, err)
				require.Equal(t, "Test Phone", device.DisplayName())
				require.Equal(t, layout.DeviceContext{
					ViewportWidth:  360,
					ViewportHeight: 740,
					Platform:       layout.PlatformAndroid,
					SafeArea:       layout.Insets{Top: 24},
				}, device.Context())

				tuning := cfg.Tuning.Tuning()
				require.Equal(t, 0.9, tuning.PhoneFontFloor)
				require.Equal(t, layout.DefaultReferenceWidth, tuning.ReferenceWidth)
				require.Equal(t, layout.DefaultTabletFontBoost, tuning.TabletFontBoost)
			},
		},
		{
			name:     "invalid yaml reports parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *podiumerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "missing devices fails validation",
			contents: missingDevices,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "devices", validationErr.Field)
			},
		},
		{
			name:     "bad version fails semver",
			contents: badVersion,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "semver")
			},
		},
		{
			name:     "unknown platform rejected",
			contents: badPlatform,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "devices[0].platform", validationErr.Field)
			},
		},
		{
			name:     "duplicate ids rejected",
			contents: duplicateIDs,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "devices[1].id", validationErr.Field)
			},
		},
		{
			name:     "negative inset rejected",
			contents: negativeInset,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "devices[0].safe_area.bottom", validationErr.Field)
			},
		},
		{
			name:     "tuning bounds enforced",
			contents: badTuning,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "tuning.tablet_font_boost", validationErr.Field)
			},
		},
		{
			name:     "infinite tuning rejected",
			contents: infiniteBoost,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "tuning.tablet_font_boost", validationErr.Field)
				require.Contains(t, validationErr.Message, "finite")
			},
		},
		{
			name:     "sub-pixel reference width rejected",
			contents: subPixelReference,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "tuning.reference_width", validationErr.Field)
			},
		},
		{
			name:     "infinite device width rejected",
			contents: infiniteWidth,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *podiumerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "devices[0].width", validationErr.Field)
				require.ErrorIs(t, err, podiumerrors.ErrInvalidDeviceContext)
			},
		},
		{
			name:     "decode failure names the preset",
			contents: mistypedPreset,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *podiumerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 10, parseErr.Line)
				require.Contains(t, parseErr.Message, "devices[1] (pixel_8)")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "podium.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *podiumerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *podiumerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDefaultConfigCatalogue(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NotEmpty(t, cfg.Devices)

	resolver, err := cfg.Resolver()
	require.NoError(t, err)
	require.Equal(t, layout.DefaultTuning(), resolver.Tuning())

	breakpoints := map[layout.Breakpoint]bool{}
	for _, device := range cfg.Devices {
		profile, err := resolver.Resolve(device.Context())
		require.NoError(t, err, device.ID)
		breakpoints[profile.Breakpoint] = true
	}
	require.Len(t, breakpoints, 3, "builtin catalogue should cover every breakpoint")

	ids := cfg.DeviceIDs()
	require.IsIncreasing(t, ids)

	_, err = cfg.Device("nokia_3310")
	require.Error(t, err)
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().DeviceIDs(), cfg.DeviceIDs())
}
