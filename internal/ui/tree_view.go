package ui

import (
	"strconv"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/tsukinoko-kun/listkit/internal/listitem"
	"github.com/tsukinoko-kun/listkit/internal/tree"
	"github.com/tsukinoko-kun/listkit/internal/ui/widgets"
)

// TreeView renders a forest of nodes as list items. Expanded flags are kept
// by node ID so they survive a refresh of the nodes.
type TreeView struct {
	theme        *Theme
	list         *widgets.ScrollableList
	nestingDepth unit.Dp
	items        map[string]*listitem.Item
	expanded     map[string]bool
}

// NewTreeView creates a tree view. A zero nestingDepth keeps the default indent.
func NewTreeView(theme *Theme, nestingDepth unit.Dp) *TreeView {
	return &TreeView{
		theme:        theme,
		list:         widgets.NewScrollableList(),
		nestingDepth: nestingDepth,
		items:        make(map[string]*listitem.Item),
		expanded:     make(map[string]bool),
	}
}

// Layout renders the view.
func (v *TreeView) Layout(gtx layout.Context, title string, nodes []*tree.Node) layout.Dimensions {
	v.prune(nodes)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return v.layoutHeader(gtx, title, tree.Count(nodes))
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if len(nodes) == 0 {
				return v.layoutEmpty(gtx)
			}
			return v.list.Layout(gtx, v.theme.Material, len(nodes), func(gtx layout.Context, index int) layout.Dimensions {
				node := nodes[index]
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return v.style(node).Layout(gtx, v.item(node.ID))
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return widgets.Divider(gtx, v.theme.Colors.Border, unit.Dp(1))
					}),
				)
			})
		}),
	)
}

// Expanded reports whether the node with id is shown expanded.
func (v *TreeView) Expanded(node *tree.Node) bool {
	if e, ok := v.expanded[node.ID]; ok {
		return e
	}
	return node.Expanded
}

func (v *TreeView) item(id string) *listitem.Item {
	it, ok := v.items[id]
	if !ok {
		it = new(listitem.Item)
		v.items[id] = it
	}
	return it
}

// prune forgets the item state of roots that disappeared.
func (v *TreeView) prune(nodes []*tree.Node) {
	if len(v.items) <= len(nodes) {
		return
	}
	keep := make(map[string]struct{}, len(nodes))
	for _, node := range nodes {
		keep[node.ID] = struct{}{}
	}
	for id := range v.items {
		if _, ok := keep[id]; !ok {
			delete(v.items, id)
		}
	}
}

// style converts a node and its children to list item styles.
func (v *TreeView) style(node *tree.Node) listitem.Style {
	s := listitem.New(v.theme.Material, node.PrimaryText)
	s.Palette = v.theme.ListPalette(v.theme.Colors.Background)
	s.Key = node.ID
	s.SecondaryText = node.SecondaryText
	s.SecondaryTextLines = node.SecondaryTextLines
	s.LeftIcon = node.LeftIcon
	s.RightIcon = node.RightIcon
	s.RightText = node.RightText
	s.Active = node.Active
	if v.nestingDepth > 0 {
		s.NestingDepth = v.nestingDepth
	}
	if node.NestingDepth != nil {
		s.NestingDepth = unit.Dp(*node.NestingDepth)
	}
	if node.HasStatus {
		s.RightElement = widgets.NewStatusIndicator(node.Status, v.theme.Colors.Status).Layout
	}

	if len(node.Children) > 0 {
		expanded := v.Expanded(node)
		id := node.ID
		s.Expanded = expanded
		s.OnPress = func() {
			v.expanded[id] = !expanded
		}
		s.Children = make([]listitem.Style, len(node.Children))
		for i, child := range node.Children {
			s.Children[i] = v.style(child)
			if s.Children[i].Key == "" {
				s.Children[i].Key = strconv.Itoa(i)
			}
		}
	}
	return s
}

func (v *TreeView) layoutHeader(gtx layout.Context, title string, count int) layout.Dimensions {
	return layout.Inset{
		Top:    unit.Dp(20),
		Bottom: unit.Dp(16),
		Left:   unit.Dp(16),
		Right:  unit.Dp(16),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Baseline}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.H5(v.theme.Material, title)
				label.Color = v.theme.Colors.Text
				return label.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Body2(v.theme.Material, strconv.Itoa(count))
				label.Color = v.theme.Colors.TextMuted
				return label.Layout(gtx)
			}),
		)
	})
}

func (v *TreeView) layoutEmpty(gtx layout.Context) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Body1(v.theme.Material, "Nothing to show")
		label.Color = v.theme.Colors.TextMuted
		return label.Layout(gtx)
	})
}
