package listitem

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/tsukinoko-kun/listkit/internal/icons"
)

// gridUnit is the design system spacing unit.
const gridUnit = unit.Dp(4)

const (
	// DefaultNestingDepth is the indent added per nesting level.
	DefaultNestingDepth = 18 * gridUnit
	// RightTextWidth is the horizontal space reserved for right-side content.
	RightTextWidth = 14 * gridUnit
	// NestedRowHeight and NestedHeaderAllowance estimate the height of the
	// nested list while it animates.
	NestedRowHeight       = unit.Dp(72)
	NestedHeaderAllowance = unit.Dp(40)
	// MediumLargeWidth is the width from which the denser layout applies.
	MediumLargeWidth = unit.Dp(960)
)

// Metrics are the resolved spacings of a list item for a breakpoint.
type Metrics struct {
	PaddingVertical   unit.Dp
	PaddingHorizontal unit.Dp
	LeftIconGap       unit.Dp
	IconSize          unit.Dp
	RightWidth        unit.Dp
	// RightTop is the top offset of the right caption and right icon.
	RightTop unit.Dp
	// RightIconTopGivenText is the right icon offset below a right caption.
	RightIconTopGivenText unit.Dp
}

// ResolveMetrics returns the metrics for an item of the given width.
func ResolveMetrics(width unit.Dp) Metrics {
	m := Metrics{
		PaddingVertical:       3 * gridUnit,
		PaddingHorizontal:     4 * gridUnit,
		LeftIconGap:           8 * gridUnit,
		IconSize:              6 * gridUnit,
		RightWidth:            RightTextWidth,
		RightTop:              3 * gridUnit,
		RightIconTopGivenText: 9 * gridUnit,
	}
	if width >= MediumLargeWidth {
		m.PaddingVertical = 2 * gridUnit
		m.RightTop = 2 * gridUnit
		m.RightIconTopGivenText = 8 * gridUnit
	}
	return m
}

// Palette holds the colors used by a list item.
type Palette struct {
	Background    color.NRGBA
	Hovered       color.NRGBA
	Pressed       color.NRGBA
	Text          color.NRGBA
	TextSecondary color.NRGBA
	Icon          color.NRGBA
	Active        color.NRGBA
}

// DefaultPalette derives a light palette from a material theme.
func DefaultPalette(th *material.Theme) Palette {
	return Palette{
		Background:    th.Bg,
		Hovered:       color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		Pressed:       color.NRGBA{A: 0x1f},
		Text:          th.Fg,
		TextSecondary: color.NRGBA{A: 0x8a},
		Icon:          color.NRGBA{A: 0x8a},
		Active:        th.ContrastBg,
	}
}

// plan is the render policy of one item. It depends on configuration only.
type plan struct {
	leftIcon bool
	// secondaryLines is 0 when there is no secondary text.
	secondaryLines int
	rightText      bool
	rightIcon      bool
	chevron        bool
	rightIconTop   unit.Dp
	// primaryReserve and secondaryReserve keep text clear of right-side content.
	primaryReserve   unit.Dp
	secondaryReserve unit.Dp
	paddingLeft      unit.Dp
	nested           bool
	nestedEstimate   unit.Dp
}

func (s Style) plan(m Metrics) plan {
	p := plan{
		leftIcon:    s.LeftIcon != "" && icons.Has(s.LeftIcon),
		rightText:   s.RightText != "",
		rightIcon:   s.RightIcon != "" || s.RightElement != nil,
		nested:      len(s.Children) > 0,
		paddingLeft: m.PaddingHorizontal,
	}
	if s.SecondaryText != "" {
		p.secondaryLines = clampLines(s.SecondaryTextLines)
	}
	p.chevron = p.nested && !p.rightIcon

	if p.rightText || p.rightIcon || p.nested {
		p.primaryReserve = m.RightWidth
	}
	if p.rightIcon || p.chevron {
		p.secondaryReserve = m.RightWidth
	}

	p.rightIconTop = m.RightTop
	if p.rightText {
		p.rightIconTop = m.RightIconTopGivenText
	}

	if s.PaddingLeft > 0 {
		p.paddingLeft = s.PaddingLeft
	}
	if p.nested {
		p.nestedEstimate = NestedRowHeight*unit.Dp(len(s.Children)) + NestedHeaderAllowance
	}
	return p
}

// child returns the configuration of the i-th nested item, indented one level
// further than s.
func (s Style) child(i int) Style {
	c := s.Children[i]
	if c.Theme == nil {
		c.Theme = s.Theme
		c.Palette = s.Palette
	}
	depth := s.NestingDepth
	if depth == 0 {
		depth = DefaultNestingDepth
	}
	c.PaddingLeft = s.PaddingLeft + depth
	return c
}

func clampLines(n int) int {
	if n >= 2 {
		return 2
	}
	return 1
}

// widthDp converts the maximum width of gtx to Dp.
func widthDp(gtx layout.Context) unit.Dp {
	scale := gtx.Metric.PxPerDp
	if scale == 0 {
		scale = 1
	}
	return unit.Dp(float32(gtx.Constraints.Max.X) / scale)
}

// mix interpolates linearly between a and b.
func mix(a, b color.NRGBA, t float32) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
