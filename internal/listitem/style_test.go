package listitem

import (
	"image/color"
	"testing"

	"gioui.org/layout"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"
)

func TestResolveMetricsBreakpoint(t *testing.T) {
	compact := ResolveMetrics(360)
	assert.Equal(t, unit.Dp(12), compact.PaddingVertical)
	assert.Equal(t, unit.Dp(16), compact.PaddingHorizontal)
	assert.Equal(t, unit.Dp(12), compact.RightTop)
	assert.Equal(t, unit.Dp(36), compact.RightIconTopGivenText)

	wide := ResolveMetrics(MediumLargeWidth)
	assert.Equal(t, unit.Dp(8), wide.PaddingVertical)
	assert.Equal(t, unit.Dp(8), wide.RightTop)
	assert.Equal(t, unit.Dp(32), wide.RightIconTopGivenText)
}

func TestPlanMinimal(t *testing.T) {
	p := Style{PrimaryText: "Inbox"}.plan(ResolveMetrics(360))

	assert.False(t, p.leftIcon)
	assert.Zero(t, p.secondaryLines)
	assert.False(t, p.rightText)
	assert.False(t, p.rightIcon)
	assert.False(t, p.chevron)
	assert.False(t, p.nested)
	assert.Zero(t, p.primaryReserve)
	assert.Equal(t, unit.Dp(16), p.paddingLeft)
}

func TestPlanSecondaryLines(t *testing.T) {
	m := ResolveMetrics(360)
	tests := []struct {
		name  string
		style Style
		want  int
	}{
		{name: "omitted", style: Style{SecondaryTextLines: 2}, want: 0},
		{name: "default", style: Style{SecondaryText: "x"}, want: 1},
		{name: "one", style: Style{SecondaryText: "x", SecondaryTextLines: 1}, want: 1},
		{name: "two", style: Style{SecondaryText: "x", SecondaryTextLines: 2}, want: 2},
		{name: "clamped", style: Style{SecondaryText: "x", SecondaryTextLines: 5}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.plan(m).secondaryLines)
		})
	}
}

func TestPlanChevron(t *testing.T) {
	m := ResolveMetrics(360)
	children := []Style{{PrimaryText: "a"}}

	p := Style{Children: children}.plan(m)
	assert.True(t, p.chevron)
	assert.True(t, p.nested)
	assert.Equal(t, RightTextWidth, p.primaryReserve)
	assert.Equal(t, RightTextWidth, p.secondaryReserve)

	p = Style{Children: children, RightIcon: "star"}.plan(m)
	assert.False(t, p.chevron)
	assert.True(t, p.rightIcon)

	p = Style{Children: children, RightElement: func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{}
	}}.plan(m)
	assert.False(t, p.chevron)
}

func TestPlanRightTextOffsetsIcon(t *testing.T) {
	m := ResolveMetrics(360)

	p := Style{RightIcon: "star"}.plan(m)
	assert.Equal(t, m.RightTop, p.rightIconTop)

	p = Style{RightIcon: "star", RightText: "12m"}.plan(m)
	assert.Equal(t, m.RightIconTopGivenText, p.rightIconTop)

	p = Style{RightText: "12m"}.plan(m)
	assert.Equal(t, RightTextWidth, p.primaryReserve)
	assert.Zero(t, p.secondaryReserve)
}

func TestPlanUnknownLeftIconOmitted(t *testing.T) {
	m := ResolveMetrics(360)
	assert.True(t, Style{LeftIcon: "inbox"}.plan(m).leftIcon)
	assert.False(t, Style{LeftIcon: "not_an_icon"}.plan(m).leftIcon)
}

func TestPlanNestedEstimate(t *testing.T) {
	p := Style{Children: make([]Style, 3)}.plan(ResolveMetrics(360))
	assert.Equal(t, unit.Dp(3*72+40), p.nestedEstimate)
}

func TestChildPaddingIsAdditive(t *testing.T) {
	grandchild := Style{PrimaryText: "grandchild"}
	child := Style{PrimaryText: "child", NestingDepth: 72, Children: []Style{grandchild}}
	root := Style{PrimaryText: "root", NestingDepth: 72, Children: []Style{child}}

	c := root.child(0)
	assert.Equal(t, unit.Dp(72), c.PaddingLeft)
	assert.Equal(t, unit.Dp(144), c.child(0).PaddingLeft)

	root.PaddingLeft = 10
	assert.Equal(t, unit.Dp(82), root.child(0).PaddingLeft)
	assert.Equal(t, unit.Dp(82), root.child(0).plan(ResolveMetrics(360)).paddingLeft)
}

func TestChildPaddingDefaultsNestingDepth(t *testing.T) {
	leaf := Style{PrimaryText: "leaf"}
	mid := Style{PrimaryText: "mid", Children: []Style{leaf}}
	root := Style{PrimaryText: "root", Children: []Style{mid}}

	c := root.child(0)
	assert.Equal(t, DefaultNestingDepth, c.PaddingLeft)
	assert.Equal(t, 2*DefaultNestingDepth, c.child(0).PaddingLeft)
}

func TestMix(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 200, G: 100, B: 0, A: 255}

	assert.Equal(t, a, mix(a, b, 0))
	assert.Equal(t, b, mix(a, b, 1))
	assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 255}, mix(a, b, 0.5))
}
