package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/tsukinoko-kun/listkit/internal/models"
)

// StatusColors maps container states to dot colors. Missing states use Unknown.
type StatusColors struct {
	States  map[models.ContainerState]color.NRGBA
	Unknown color.NRGBA
}

// DefaultStatusColors returns the default status indicator colors.
func DefaultStatusColors() StatusColors {
	green := color.NRGBA{R: 74, G: 222, B: 128, A: 255}
	red := color.NRGBA{R: 248, G: 113, B: 113, A: 255}
	yellow := color.NRGBA{R: 251, G: 191, B: 36, A: 255}
	gray := color.NRGBA{R: 156, G: 163, B: 175, A: 255}

	return StatusColors{
		States: map[models.ContainerState]color.NRGBA{
			models.StateRunning:    green,
			models.StateStopped:    red,
			models.StatePaused:     yellow,
			models.StateRestarting: yellow,
		},
		Unknown: gray,
	}
}

// Color returns the color for state.
func (c StatusColors) Color(state models.ContainerState) color.NRGBA {
	if col, ok := c.States[state]; ok {
		return col
	}
	return c.Unknown
}

// StatusIndicator is a colored dot for a container state. It is centred in a
// Box-sized square so it lines up with icons.
type StatusIndicator struct {
	State  models.ContainerState
	Size   unit.Dp
	Box    unit.Dp
	Colors StatusColors
}

// NewStatusIndicator creates a status indicator sized to sit in place of a list icon.
func NewStatusIndicator(state models.ContainerState, colors StatusColors) StatusIndicator {
	return StatusIndicator{
		State:  state,
		Size:   unit.Dp(8),
		Box:    unit.Dp(24),
		Colors: colors,
	}
}

// Layout renders the status indicator.
func (s StatusIndicator) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Dp(s.Size)
	box := gtx.Dp(s.Box)
	if box < size {
		box = size
	}
	off := (box - size) / 2

	circle := clip.Ellipse{
		Min: image.Pt(off, off),
		Max: image.Pt(off+size, off+size),
	}
	paint.FillShape(gtx.Ops, s.Colors.Color(s.State), circle.Op(gtx.Ops))

	return layout.Dimensions{Size: image.Pt(box, box)}
}
