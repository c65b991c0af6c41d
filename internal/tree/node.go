// Package tree holds the list trees rendered by the showcase application.
package tree

import (
	"strconv"

	"github.com/tsukinoko-kun/listkit/internal/icons"
	"github.com/tsukinoko-kun/listkit/internal/models"
)

// Document is a YAML list tree file.
type Document struct {
	Title string  `yaml:"title,omitempty"`
	Items []*Node `yaml:"items" validate:"dive"`
}

// Node is the data of one list item and its nested items.
type Node struct {
	ID                 string   `yaml:"id,omitempty"`
	PrimaryText        string   `yaml:"primary" validate:"required"`
	SecondaryText      string   `yaml:"secondary,omitempty"`
	SecondaryTextLines int      `yaml:"secondary_lines,omitempty" validate:"omitempty,oneof=1 2"`
	LeftIcon           string   `yaml:"left_icon,omitempty" validate:"omitempty,icon"`
	RightIcon          string   `yaml:"right_icon,omitempty" validate:"omitempty,icon"`
	RightText          string   `yaml:"right_text,omitempty"`
	Active             bool     `yaml:"active,omitempty"`
	Expanded           bool     `yaml:"expanded,omitempty"`
	NestingDepth       *float32 `yaml:"nesting_depth,omitempty" validate:"omitempty,gte=0"`
	Children           []*Node  `yaml:"children,omitempty" validate:"dive"`

	// Status is shown as a status dot when HasStatus is set.
	Status    models.ContainerState `yaml:"-"`
	HasStatus bool                  `yaml:"-"`
}

// Count returns the number of nodes in the forest, nested ones included.
func Count(nodes []*Node) int {
	n := 0
	for _, node := range nodes {
		n += 1 + Count(node.Children)
	}
	return n
}

// Walk calls fn for every node in depth-first order.
func Walk(nodes []*Node, fn func(*Node)) {
	for _, node := range nodes {
		fn(node)
		Walk(node.Children, fn)
	}
}

// Normalize degrades invalid values so every node can be rendered: nil nodes
// are dropped, unknown icons removed, line counts clamped, negative depths
// reset, and missing IDs derived from the tree path. Duplicate IDs get a suffix.
func Normalize(nodes []*Node) []*Node {
	seen := make(map[string]int)
	return normalize(nodes, "", seen)
}

func normalize(nodes []*Node, prefix string, seen map[string]int) []*Node {
	out := nodes[:0]
	for _, node := range nodes {
		if node == nil {
			continue
		}
		out = append(out, node)
	}

	for i, node := range out {
		if node.ID == "" {
			node.ID = prefix + strconv.Itoa(i)
		}
		if n := seen[node.ID]; n > 0 {
			seen[node.ID] = n + 1
			node.ID += "#" + strconv.Itoa(n)
		} else {
			seen[node.ID] = 1
		}

		switch {
		case node.SecondaryTextLines < 1:
			node.SecondaryTextLines = 1
		case node.SecondaryTextLines > 2:
			node.SecondaryTextLines = 2
		}
		if node.LeftIcon != "" && !icons.Has(node.LeftIcon) {
			node.LeftIcon = ""
		}
		if node.RightIcon != "" && !icons.Has(node.RightIcon) {
			node.RightIcon = ""
		}
		if node.NestingDepth != nil && *node.NestingDepth < 0 {
			node.NestingDepth = nil
		}
		node.Children = normalize(node.Children, node.ID+"/", seen)
	}
	return out
}
