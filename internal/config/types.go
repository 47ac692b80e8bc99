package config

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/podium/internal/layout"
)

// Config is the device catalogue document.
type Config struct {
	Version string         `yaml:"version" validate:"required,semver"`
	Tuning  TuningConfig   `yaml:"tuning,omitempty"`
	Devices []DeviceConfig `yaml:"devices" validate:"required,min=1,dive"`
}

// TuningConfig overrides the font normalization constants. Zero fields keep the defaults.
type TuningConfig struct {
	ReferenceWidth  float64 `yaml:"reference_width,omitempty" validate:"omitempty,gte=1"`
	PhoneFontFloor  float64 `yaml:"phone_font_floor,omitempty" validate:"omitempty,gt=0,lte=1"`
	TabletFontBoost float64 `yaml:"tablet_font_boost,omitempty" validate:"omitempty,gte=1"`
}

// DeviceConfig describes one named device preset.
type DeviceConfig struct {
	ID       string        `yaml:"id" validate:"required,device_id"`
	Name     string        `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Platform string        `yaml:"platform" validate:"required,platform"`
	Width    float64       `yaml:"width" validate:"required,gt=0"`
	Height   float64       `yaml:"height" validate:"required,gt=0"`
	SafeArea SafeAreaInset `yaml:"safe_area,omitempty"`
}

// SafeAreaInset mirrors layout.Insets with YAML validation rules.
type SafeAreaInset struct {
	Top    float64 `yaml:"top,omitempty" validate:"gte=0"`
	Bottom float64 `yaml:"bottom,omitempty" validate:"gte=0"`
	Left   float64 `yaml:"left,omitempty" validate:"gte=0"`
	Right  float64 `yaml:"right,omitempty" validate:"gte=0"`
}

// Tuning merges the overrides onto layout.DefaultTuning.
func (t TuningConfig) Tuning() layout.Tuning {
	tuning := layout.DefaultTuning()
	if t.ReferenceWidth > 0 {
		tuning.ReferenceWidth = t.ReferenceWidth
	}
	if t.PhoneFontFloor > 0 {
		tuning.PhoneFontFloor = t.PhoneFontFloor
	}
	if t.TabletFontBoost > 0 {
		tuning.TabletFontBoost = t.TabletFontBoost
	}
	return tuning
}

// Context converts the preset into a resolver input.
func (d DeviceConfig) Context() layout.DeviceContext {
	platform, err := layout.ParsePlatform(d.Platform)
	if err != nil {
		platform = layout.Platform(d.Platform)
	}
	return layout.DeviceContext{
		ViewportWidth:  d.Width,
		ViewportHeight: d.Height,
		Platform:       platform,
		SafeArea: layout.Insets{
			Top:    d.SafeArea.Top,
			Bottom: d.SafeArea.Bottom,
			Left:   d.SafeArea.Left,
			Right:  d.SafeArea.Right,
		},
	}
}

// DisplayName falls back to the id when no name is set.
func (d DeviceConfig) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// Device looks up a preset by id.
func (c *Config) Device(id string) (DeviceConfig, error) {
	if c != nil {
		for _, device := range c.Devices {
			if device.ID == id {
				return device, nil
			}
		}
	}
	return DeviceConfig{}, fmt.Errorf("unknown device %q", id)
}

// DeviceIDs returns every preset id in sorted order.
func (c *Config) DeviceIDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Devices))
	for _, device := range c.Devices {
		ids = append(ids, device.ID)
	}
	sort.Strings(ids)
	return ids
}

// Resolver builds a layout resolver from the catalogue tuning.
func (c *Config) Resolver() (*layout.Resolver, error) {
	if c == nil {
		return layout.DefaultResolver(), nil
	}
	return layout.NewResolver(c.Tuning.Tuning())
}
