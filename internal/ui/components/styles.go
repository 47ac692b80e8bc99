package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/podium/internal/layout"
)

// StyleFunc applies theme data to a lipgloss style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Apply runs fns over base in order.
func Apply(theme Theme, base lipgloss.Style, fns ...StyleFunc) lipgloss.Style {
	for _, fn := range fns {
		base = fn(base, theme)
	}
	return base
}

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// PaddingX pads left and right with a spacing token.
func PaddingX(size layout.SpaceSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cols := theme.SpaceCols(size)
		return base.PaddingLeft(cols).PaddingRight(cols)
	}
}

// PaddingY pads top and bottom with a spacing token.
func PaddingY(size layout.SpaceSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		rows := theme.SpaceRows(size)
		return base.PaddingTop(rows).PaddingBottom(rows)
	}
}

// MarginBottom adds vertical space after the element.
func MarginBottom(size layout.SpaceSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.MarginBottom(theme.SpaceRows(size))
	}
}

// Typography maps a font token onto terminal emphasis. Terminals have one
// glyph size, so larger tokens become heavier instead of bigger.
func Typography(size layout.FontSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		switch {
		case size >= layout.Font3XL:
			return base.Bold(true).Underline(true)
		case size >= layout.FontXL:
			return base.Bold(true)
		case size <= layout.FontXS:
			return base.Faint(true)
		default:
			return base
		}
	}
}

// Elevation draws a border whose weight follows the platform shadow token.
// Android elevation and iOS shadow radius both grow with the level.
func Elevation(level layout.ElevationLevel) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		token := theme.Shadow(level)
		border, visible := borderForShadow(token)
		if !visible {
			return base.Border(lipgloss.HiddenBorder())
		}
		return base.Border(border).BorderForeground(theme.Palette.Neutral.Base)
	}
}

// shadowStep collapses either platform branch onto the 0..5 elevation scale.
func shadowStep(token layout.ShadowToken) int {
	if token.Android != nil {
		return token.Android.Elevation
	}
	if token.IOS == nil {
		return 0
	}
	switch r := token.IOS.Radius; {
	case r <= 0:
		return 0
	case r <= 2:
		return 1
	case r <= 3:
		return 2
	case r <= 6:
		return 3
	case r <= 15:
		return 4
	default:
		return 5
	}
}

func borderForShadow(token layout.ShadowToken) (lipgloss.Border, bool) {
	switch step := shadowStep(token); {
	case step <= 0:
		return lipgloss.Border{}, false
	case step <= 2:
		return lipgloss.NormalBorder(), true
	case step <= 3:
		return lipgloss.RoundedBorder(), true
	case step <= 4:
		return lipgloss.ThickBorder(), true
	default:
		return lipgloss.DoubleBorder(), true
	}
}

// ButtonStyle builds a button whose height follows the profile for size.
func ButtonStyle(theme Theme, size layout.ButtonSize, slot PaletteSlot) lipgloss.Style {
	rows := theme.Rows(theme.Profile.ButtonHeight(size))
	base := lipgloss.NewStyle().
		Height(rows).
		AlignVertical(lipgloss.Center).
		Align(lipgloss.Center)

	font := layout.FontBase
	switch size {
	case layout.ButtonSM:
		font = layout.FontSM
	case layout.ButtonLG:
		font = layout.FontLG
	}

	return Apply(theme, base, Background(slot), PaddingX(layout.SpaceMD), Typography(font), func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	})
}

// CardStyle builds a bordered card raised to level.
func CardStyle(theme Theme, level layout.ElevationLevel) lipgloss.Style {
	return Apply(theme, lipgloss.NewStyle(),
		Elevation(level),
		PaddingX(layout.SpaceSM),
		MarginBottom(layout.SpaceSM),
	)
}

// HeaderStyle builds the top app bar.
func HeaderStyle(theme Theme) lipgloss.Style {
	base := lipgloss.NewStyle().
		Height(theme.Rows(theme.Profile.Dimensions.HeaderHeight)).
		AlignVertical(lipgloss.Center)
	return Apply(theme, base, Background(PalettePrimary), PaddingX(layout.SpaceMD), Typography(layout.FontXL))
}

// InputStyle builds a text field, highlighted when focused.
func InputStyle(theme Theme, focused bool) lipgloss.Style {
	border := theme.Palette.Neutral.Muted
	if focused {
		border = theme.Palette.Primary.Base
	}
	// Borders take two rows from the field height.
	rows := theme.Rows(theme.Profile.Dimensions.InputHeight) - 2
	if rows < 1 {
		rows = 1
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Height(rows).
		PaddingLeft(theme.SpaceCols(layout.SpaceSM))
}

// TextStyle is body text at a font token.
func TextStyle(theme Theme, size layout.FontSize) lipgloss.Style {
	return Apply(theme, lipgloss.NewStyle(), Typography(size))
}
