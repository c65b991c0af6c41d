package ui

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/widget/material"

	"github.com/tsukinoko-kun/listkit/internal/listitem"
	"github.com/tsukinoko-kun/listkit/internal/ui/widgets"
)

// Colors defines the color palette for the application.
type Colors struct {
	Background    color.NRGBA
	Surface       color.NRGBA
	SidebarBg     color.NRGBA
	Hover         color.NRGBA
	Pressed       color.NRGBA
	Text          color.NRGBA
	TextSecondary color.NRGBA
	TextMuted     color.NRGBA
	Border        color.NRGBA
	Accent        color.NRGBA
	ErrorBg       color.NRGBA
	ErrorText     color.NRGBA
	Status        widgets.StatusColors
}

// DefaultColors returns the default dark color palette.
func DefaultColors() Colors {
	return Colors{
		Background:    rgb(0x1a1a1a),
		Surface:       rgb(0x242424),
		SidebarBg:     rgb(0x1e1e1e),
		Hover:         rgb(0x333333),
		Pressed:       rgba(0xffffff, 0x1f),
		Text:          rgb(0xffffff),
		TextSecondary: rgb(0xb0b0b0),
		TextMuted:     rgb(0x707070),
		Border:        rgb(0x3d3d3d),
		Accent:        rgb(0x60a5fa), // Blue
		ErrorBg:       rgb(0x3b1d1d),
		ErrorText:     rgb(0xfca5a5),
		Status:        widgets.DefaultStatusColors(),
	}
}

// Theme holds the application theme including colors and material theme.
type Theme struct {
	Material *material.Theme
	Colors   Colors
}

// NewTheme creates a new application theme.
func NewTheme() *Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(defaultFonts()))

	colors := DefaultColors()

	// Configure material theme colors
	th.Bg = colors.Background
	th.Fg = colors.Text
	th.ContrastBg = colors.Accent
	th.ContrastFg = colors.Text

	return &Theme{
		Material: th,
		Colors:   colors,
	}
}

// ListPalette resolves the list item palette for a surface.
func (t *Theme) ListPalette(background color.NRGBA) listitem.Palette {
	return listitem.Palette{
		Background:    background,
		Hovered:       t.Colors.Hover,
		Pressed:       t.Colors.Pressed,
		Text:          t.Colors.Text,
		TextSecondary: t.Colors.TextSecondary,
		Icon:          t.Colors.TextSecondary,
		Active:        t.Colors.Accent,
	}
}

// rgb creates an NRGBA color from a hex value.
func rgb(hex uint32) color.NRGBA {
	return rgba(hex, 0xff)
}

// rgba creates an NRGBA color from a hex value with alpha.
func rgba(hex uint32, alpha uint8) color.NRGBA {
	return color.NRGBA{
		R: uint8((hex >> 16) & 0xff),
		G: uint8((hex >> 8) & 0xff),
		B: uint8(hex & 0xff),
		A: alpha,
	}
}

// defaultFonts returns the bundled Go fonts.
func defaultFonts() []font.FontFace {
	return gofont.Collection()
}
