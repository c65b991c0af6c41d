package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// ScrollableList is a vertical list with a scrollbar.
type ScrollableList struct {
	List widget.List
}

// NewScrollableList creates a new scrollable list.
func NewScrollableList() *ScrollableList {
	return &ScrollableList{
		List: widget.List{
			List: layout.List{
				Axis: layout.Vertical,
			},
		},
	}
}

// Layout renders count elements with the scrollbar styled by th.
func (sl *ScrollableList) Layout(gtx layout.Context, th *material.Theme, count int, element layout.ListElement) layout.Dimensions {
	return material.List(th, &sl.List).Layout(gtx, count, element)
}

// Divider renders a horizontal divider line.
func Divider(gtx layout.Context, c color.NRGBA, thickness unit.Dp) layout.Dimensions {
	size := image.Point{X: gtx.Constraints.Max.X, Y: gtx.Dp(thickness)}
	paint.FillShape(gtx.Ops, c, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}
