package ui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/tsukinoko-kun/listkit/internal/listitem"
	"github.com/tsukinoko-kun/listkit/internal/models"
)

// Sidebar lists the available tree sources.
type Sidebar struct {
	theme    *Theme
	onSelect func(models.Source)
	items    []sidebarItem
}

type sidebarItem struct {
	source models.Source
	icon   string
	state  listitem.Item
}

var sourceIcons = map[models.Source]string{
	models.SourceDemo:   "email",
	models.SourceFile:   "folder_open",
	models.SourceDocker: "sync",
}

// NewSidebar creates a sidebar for the given sources.
func NewSidebar(theme *Theme, sources []models.Source, onSelect func(models.Source)) *Sidebar {
	s := &Sidebar{
		theme:    theme,
		onSelect: onSelect,
		items:    make([]sidebarItem, len(sources)),
	}
	for i, src := range sources {
		s.items[i] = sidebarItem{source: src, icon: sourceIcons[src]}
	}
	return s
}

// Layout renders the sidebar.
func (s *Sidebar) Layout(gtx layout.Context, current models.Source) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(s.items)+1)
	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top:    unit.Dp(20),
			Bottom: unit.Dp(12),
			Left:   unit.Dp(16),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			label := material.Overline(s.theme.Material, "Sources")
			label.Color = s.theme.Colors.TextMuted
			return label.Layout(gtx)
		})
	}))

	for i := range s.items {
		item := &s.items[i]
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.itemStyle(item, current).Layout(gtx, &item.state)
		}))
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (s *Sidebar) itemStyle(item *sidebarItem, current models.Source) listitem.Style {
	style := listitem.New(s.theme.Material, item.source.String())
	style.Palette = s.theme.ListPalette(s.theme.Colors.SidebarBg)
	style.LeftIcon = item.icon
	style.Active = item.source == current
	source := item.source
	style.OnPress = func() {
		s.onSelect(source)
	}
	return style
}
