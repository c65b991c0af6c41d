// Package listitem implements a Material list item for Gio.
//
// A list item shows a primary text with optional secondary text, icons and a
// caption. Items with nested children expand and collapse with animated
// height, opacity and chevron rotation. The expanded state is owned by the
// caller, who flips Style.Expanded, typically from OnPress.
package listitem

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/tsukinoko-kun/listkit/internal/icons"
)

// Item is the retained state of a list item across frames.
type Item struct {
	click    widget.Clickable
	machine  *Machine
	children map[string]*Item
}

// Machine returns the state machine of the item, or nil before the first layout.
func (it *Item) Machine() *Machine {
	return it.machine
}

// Hovered reports whether the pointer is over the item.
func (it *Item) Hovered() bool {
	return it.click.Hovered()
}

// Child returns the retained state of the nested item with the given key.
func (it *Item) Child(key string) *Item {
	if it.children == nil {
		it.children = make(map[string]*Item)
	}
	c, ok := it.children[key]
	if !ok {
		c = new(Item)
		it.children[key] = c
	}
	return c
}

// prune drops the state of nested items that are no longer configured.
func (it *Item) prune(keep map[string]struct{}) {
	for key := range it.children {
		if _, ok := keep[key]; !ok {
			delete(it.children, key)
		}
	}
}

// Style is the configuration of a list item.
type Style struct {
	Theme   *material.Theme
	Palette Palette

	// Key identifies the retained state of a nested item. Defaults to its index.
	Key string

	PrimaryText   string
	SecondaryText string
	// SecondaryTextLines is the number of lines before truncation, 1 or 2.
	SecondaryTextLines int
	LeftIcon           string
	// RightIcon names an icon; RightElement renders custom content instead.
	RightIcon    string
	RightElement layout.Widget
	RightText    string
	Active       bool

	// NestingDepth is the extra left padding of nested items. Zero means
	// DefaultNestingDepth.
	NestingDepth unit.Dp
	Expanded     bool
	Children     []Style

	// PaddingLeft overrides the default left padding when non-zero.
	PaddingLeft unit.Dp
	// Background overrides the palette background when non-transparent.
	Background color.NRGBA

	OnPress func()
}

// New returns a list item style with default settings.
func New(th *material.Theme, primaryText string) Style {
	return Style{
		Theme:              th,
		Palette:            DefaultPalette(th),
		PrimaryText:        primaryText,
		SecondaryTextLines: 1,
		NestingDepth:       DefaultNestingDepth,
	}
}

// Layout renders the item and its nested items.
func (s Style) Layout(gtx layout.Context, it *Item) layout.Dimensions {
	if it.machine == nil {
		it.machine = NewMachine(s.Expanded)
	}
	if it.click.Clicked(gtx) && s.OnPress != nil {
		s.OnPress()
		// The caller usually changes the style in OnPress; draw it.
		gtx.Execute(op.InvalidateCmd{})
	}
	it.machine.Transition(gtx.Now, Input{Hovered: it.click.Hovered(), Expanded: s.Expanded})
	if it.machine.Advance(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}

	m := ResolveMetrics(widthDp(gtx))
	p := s.plan(m)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.layoutRow(gtx, it, m, p)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.layoutNested(gtx, it, p)
		}),
	)
}

func (s Style) layoutRow(gtx layout.Context, it *Item, m Metrics, p plan) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return it.click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				return s.layoutBackground(gtx, it)
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return s.layoutContent(gtx, m, p)
			}),
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				return s.layoutRight(gtx, it, m, p)
			}),
		)
	})
}

func (s Style) layoutBackground(gtx layout.Context, it *Item) layout.Dimensions {
	bg := s.Palette.Background
	if s.Background.A != 0 {
		bg = s.Background
	}
	rect := clip.Rect{Max: gtx.Constraints.Min}
	paint.FillShape(gtx.Ops, mix(bg, s.Palette.Hovered, it.machine.Channels.Hover.Value()), rect.Op())
	if it.click.Pressed() {
		paint.FillShape(gtx.Ops, s.Palette.Pressed, rect.Op())
	}
	return layout.Dimensions{Size: gtx.Constraints.Min}
}

func (s Style) layoutContent(gtx layout.Context, m Metrics, p plan) layout.Dimensions {
	return layout.Inset{
		Top:    m.PaddingVertical,
		Bottom: m.PaddingVertical,
		Left:   p.paddingLeft,
		Right:  m.PaddingHorizontal,
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !p.leftIcon {
					return layout.Dimensions{}
				}
				return layout.Inset{Right: m.LeftIconGap}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layoutIcon(gtx, s.LeftIcon, s.iconColor(), m.IconSize)
				})
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return s.layoutText(gtx, p)
			}),
		)
	})
}

func (s Style) layoutText(gtx layout.Context, p plan) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Right: p.primaryReserve}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Subtitle1(s.Theme, s.PrimaryText)
				label.MaxLines = 1
				label.Color = s.Palette.Text
				if s.Active {
					label.Color = s.Palette.Active
				}
				return label.Layout(gtx)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if p.secondaryLines == 0 {
				return layout.Dimensions{}
			}
			return layout.Inset{Right: p.secondaryReserve}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Body1(s.Theme, s.SecondaryText)
				label.MaxLines = p.secondaryLines
				label.Color = s.Palette.TextSecondary
				return label.Layout(gtx)
			})
		}),
	)
}

// layoutRight places the caption and right icon against the top right corner.
func (s Style) layoutRight(gtx layout.Context, it *Item, m Metrics, p plan) layout.Dimensions {
	return layout.Stack{Alignment: layout.NE}.Layout(gtx,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			if !p.rightText {
				return layout.Dimensions{}
			}
			return layout.Inset{Top: m.RightTop, Right: m.PaddingHorizontal}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				w := gtx.Dp(m.RightWidth)
				gtx.Constraints.Min.X, gtx.Constraints.Max.X = w, w
				label := material.Caption(s.Theme, s.RightText)
				label.MaxLines = 1
				label.Alignment = text.End
				label.Color = s.Palette.TextSecondary
				return label.Layout(gtx)
			})
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			if !p.rightIcon && !p.chevron {
				return layout.Dimensions{}
			}
			return layout.Inset{Top: p.rightIconTop, Right: m.PaddingHorizontal}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				switch {
				case p.chevron:
					return s.layoutChevron(gtx, it, m)
				case s.RightElement != nil:
					return s.RightElement(gtx)
				default:
					return layoutIcon(gtx, s.RightIcon, s.Palette.Icon, m.IconSize)
				}
			})
		}),
	)
}

func (s Style) layoutChevron(gtx layout.Context, it *Item, m Metrics) layout.Dimensions {
	sz := float32(gtx.Dp(m.IconSize))
	angle := -math.Pi * it.machine.Channels.Icon.Value()
	rot := f32.Affine2D{}.Rotate(f32.Pt(sz/2, sz/2), angle)
	defer op.Affine(rot).Push(gtx.Ops).Pop()
	return layoutIcon(gtx, icons.ExpandMore, s.Palette.Icon, m.IconSize)
}

func (s Style) layoutNested(gtx layout.Context, it *Item, p plan) layout.Dimensions {
	if !p.nested {
		it.prune(nil)
		return layout.Dimensions{}
	}
	ch := it.machine.Channels
	expanded := it.machine.Expanded()
	if !expanded && ch.Height.Value() <= 0 {
		return layout.Dimensions{}
	}

	keep := make(map[string]struct{}, len(s.Children))
	children := make([]layout.FlexChild, len(s.Children))
	for i := range s.Children {
		c := s.child(i)
		key := c.Key
		if key == "" {
			key = strconv.Itoa(i)
		}
		keep[key] = struct{}{}
		state := it.Child(key)
		children[i] = layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return c.Layout(gtx, state)
		})
	}
	it.prune(keep)

	macro := op.Record(gtx.Ops)
	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	call := macro.Stop()

	if !expanded {
		limit := int(ch.Height.Value() * float32(gtx.Dp(p.nestedEstimate)))
		if dims.Size.Y > limit {
			dims.Size.Y = limit
		}
	}

	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	defer paint.PushOpacity(gtx.Ops, ch.Opacity.Value()).Pop()
	call.Add(gtx.Ops)
	return dims
}

func (s Style) iconColor() color.NRGBA {
	if s.Active {
		return s.Palette.Active
	}
	return s.Palette.Icon
}

// layoutIcon draws the named icon in a size×size square. Unknown names draw nothing.
func layoutIcon(gtx layout.Context, name string, c color.NRGBA, size unit.Dp) layout.Dimensions {
	ic, err := icons.Lookup(name)
	if err != nil {
		return layout.Dimensions{}
	}
	sz := gtx.Dp(size)
	gtx.Constraints = layout.Exact(image.Pt(sz, sz))
	return ic.Layout(gtx, c)
}
