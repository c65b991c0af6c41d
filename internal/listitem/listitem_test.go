package listitem

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	return th
}

func newContext(now time.Time) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Now:         now,
		Constraints: layout.Constraints{Max: image.Pt(400, 4000)},
	}
}

func nestedStyle(th *material.Theme, expanded bool) Style {
	s := New(th, "Inbox")
	s.LeftIcon = "inbox"
	s.Expanded = expanded
	s.Children = []Style{
		New(th, "Starred"),
		New(th, "Sent mail"),
	}
	return s
}

func TestLayoutRowOnly(t *testing.T) {
	th := newTheme()
	var it Item

	dims := New(th, "Inbox").Layout(newContext(t0), &it)
	assert.Equal(t, 400, dims.Size.X)
	assert.Greater(t, dims.Size.Y, 0)
	require.NotNil(t, it.Machine())
}

func TestLayoutSecondaryTextAddsHeight(t *testing.T) {
	th := newTheme()

	var single, double Item
	plain := New(th, "Inbox").Layout(newContext(t0), &single)

	s := New(th, "Inbox")
	s.SecondaryText = "Brunch this weekend?"
	withSecondary := s.Layout(newContext(t0), &double)

	assert.Greater(t, withSecondary.Size.Y, plain.Size.Y)
}

// rowStyle is nestedStyle without children.
func rowStyle(th *material.Theme) Style {
	s := nestedStyle(th, false)
	s.Children = nil
	return s
}

func TestLayoutCollapsedHidesChildren(t *testing.T) {
	th := newTheme()

	var row Item
	rowOnly := rowStyle(th).Layout(newContext(t0), &row)

	var it Item
	collapsed := nestedStyle(th, false).Layout(newContext(t0), &it)
	assert.Equal(t, rowOnly.Size.Y, collapsed.Size.Y)
}

func TestLayoutMountedExpandedShowsChildren(t *testing.T) {
	th := newTheme()

	var row Item
	rowOnly := rowStyle(th).Layout(newContext(t0), &row)

	var it Item
	expanded := nestedStyle(th, true).Layout(newContext(t0), &it)
	assert.True(t, it.Machine().Expanded())
	assert.Greater(t, expanded.Size.Y, 2*rowOnly.Size.Y)
}

func TestLayoutExpandAnimation(t *testing.T) {
	th := newTheme()
	var it Item

	full := nestedStyle(th, true).Layout(newContext(t0), new(Item)).Size.Y
	rowOnly := nestedStyle(th, false).Layout(newContext(t0), &it).Size.Y

	// Chevron rotation follows the expanded prop.
	assert.Equal(t, float32(0), it.Machine().Channels.Icon.Target())

	start := t0.Add(time.Second)
	nestedStyle(th, true).Layout(newContext(start), &it)
	assert.Equal(t, float32(1), it.Machine().Channels.Icon.Target())
	assert.False(t, it.Machine().Expanded())

	partial := nestedStyle(th, true).Layout(newContext(start.Add(20*time.Millisecond)), &it).Size.Y
	assert.Greater(t, partial, rowOnly)
	assert.Less(t, partial, full)
	assert.False(t, it.Machine().Expanded())

	done := nestedStyle(th, true).Layout(newContext(start.Add(ExpandStagger+ExpandDuration)), &it).Size.Y
	assert.True(t, it.Machine().Expanded())
	assert.Equal(t, full, done)

	collapse := start.Add(2 * time.Second)
	nestedStyle(th, false).Layout(newContext(collapse), &it)
	assert.False(t, it.Machine().Expanded())
	assert.Equal(t, float32(0), it.Machine().Channels.Icon.Target())

	collapsed := nestedStyle(th, false).Layout(newContext(collapse.Add(time.Second)), &it).Size.Y
	assert.Equal(t, rowOnly, collapsed)
}

func TestLayoutRetainsChildStateByKey(t *testing.T) {
	th := newTheme()
	var it Item

	s := nestedStyle(th, true)
	s.Children[0].Key = "starred"
	s.Children[1].Key = "sent"
	s.Layout(newContext(t0), &it)

	starred := it.Child("starred")
	require.NotNil(t, starred.Machine())

	s.Children = s.Children[:1]
	s.Layout(newContext(t0.Add(time.Millisecond)), &it)
	assert.Same(t, starred, it.Child("starred"))
	assert.Len(t, it.children, 1)
}

func TestLayoutRightElement(t *testing.T) {
	th := newTheme()
	var it Item

	called := false
	s := New(th, "Inbox")
	s.RightText = "12m"
	s.RightElement = func(gtx layout.Context) layout.Dimensions {
		called = true
		return layout.Dimensions{Size: image.Pt(8, 8)}
	}
	s.Layout(newContext(t0), &it)
	assert.True(t, called)
}

// routedFrame lays out s with input from r and hands the frame to r.
func routedFrame(r *input.Router, s Style, it *Item, now time.Time) {
	gtx := newContext(now)
	gtx.Source = r.Source()
	s.Layout(gtx, it)
	r.Frame(gtx.Ops)
}

func TestLayoutPointerHover(t *testing.T) {
	th := newTheme()
	s := New(th, "Inbox")
	var (
		r  input.Router
		it Item
	)

	routedFrame(&r, s, &it, t0)
	assert.False(t, it.Machine().Hovered())

	r.Queue(pointer.Event{Kind: pointer.Move, Source: pointer.Mouse, Position: f32.Pt(10, 10)})
	routedFrame(&r, s, &it, t0.Add(16*time.Millisecond))
	assert.True(t, it.Hovered())
	assert.True(t, it.Machine().Hovered())
	assert.Equal(t, float32(1), it.Machine().Channels.Hover.Target())

	r.Queue(pointer.Event{Kind: pointer.Move, Source: pointer.Mouse, Position: f32.Pt(10, 3000)})
	routedFrame(&r, s, &it, t0.Add(32*time.Millisecond))
	assert.False(t, it.Machine().Hovered())
	assert.Equal(t, float32(0), it.Machine().Channels.Hover.Target())
}
