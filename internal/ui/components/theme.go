package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/podium/internal/layout"
)

// ColourSet groups the colours for one semantic slot.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Accent  ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Neutral ColourSet
	Gold    ColourSet
	Silver  ColourSet
	Bronze  ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// CellMetrics is how many logical pixels one terminal cell stands for.
type CellMetrics struct {
	ColumnWidth float64
	RowHeight   float64
}

// DefaultCellMetrics approximates a monospace cell at 2:1 aspect ratio.
func DefaultCellMetrics() CellMetrics {
	return CellMetrics{ColumnWidth: 8, RowHeight: 16}
}

// Theme is an immutable set of terminal styles derived from one layout profile.
// Build a new Theme whenever the profile changes.
type Theme struct {
	Profile layout.LayoutProfile
	Palette Palette
	Metrics CellMetrics
}

// NewTheme derives a theme from profile with the default palette and cell metrics.
func NewTheme(profile layout.LayoutProfile) Theme {
	return Theme{
		Profile: profile,
		Palette: DefaultPalette(),
		Metrics: DefaultCellMetrics(),
	}
}

// DefaultTheme is the theme for layout.DefaultProfile.
func DefaultTheme() Theme {
	return NewTheme(layout.DefaultProfile())
}

// WithMetrics returns a copy of the theme using different cell metrics.
func (t Theme) WithMetrics(metrics CellMetrics) Theme {
	if metrics.ColumnWidth > 0 && metrics.RowHeight > 0 {
		t.Metrics = metrics
	}
	return t
}

// Cols converts a horizontal pixel magnitude into whole terminal columns.
func (t Theme) Cols(px float64) int {
	return toCells(px, t.Metrics.ColumnWidth)
}

// Rows converts a vertical pixel magnitude into whole terminal rows.
func (t Theme) Rows(px float64) int {
	return toCells(px, t.Metrics.RowHeight)
}

func toCells(px, cell float64) int {
	if px <= 0 || cell <= 0 {
		return 0
	}
	return int(math.Round(px / cell))
}

// SpaceCols is a spacing token in columns.
func (t Theme) SpaceCols(size layout.SpaceSize) int {
	return t.Cols(t.Profile.Space(size))
}

// SpaceRows is a spacing token in rows.
func (t Theme) SpaceRows(size layout.SpaceSize) int {
	return t.Rows(t.Profile.Space(size))
}

// ContentCols is the profile content width in columns.
func (t Theme) ContentCols() int {
	return t.Cols(t.Profile.ContentWidth())
}

// Shadow resolves the shadow token for the theme's platform.
func (t Theme) Shadow(level layout.ElevationLevel) layout.ShadowToken {
	return layout.ResolveShadow(level, t.Profile.Context.Platform)
}

// DefaultPalette returns the results-app brand colours.
func DefaultPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Palette{
		Primary: ColourSet{
			Base:     ac("#1d4ed8", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1e40af"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Accent: ColourSet{
			Base:     ac("#db2777", "#f472b6"),
			OnBase:   ac("#fdf2f8", "#1f0a13"),
			Muted:    ac("#be185d", "#9d174d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#1d4ed8", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Gold: ColourSet{
			Base:   ac("#b45309", "#fbbf24"),
			OnBase: ac("#fffbeb", "#1c1003"),
		},
		Silver: ColourSet{
			Base:   ac("#64748b", "#cbd5e1"),
			OnBase: ac("#f8fafc", "#0f172a"),
		},
		Bronze: ColourSet{
			Base:   ac("#9a3412", "#fb923c"),
			OnBase: ac("#fff7ed", "#1c0a03"),
		},
	}
}
