package tree

import (
	"fmt"
	"strconv"

	"github.com/tsukinoko-kun/listkit/internal/docker"
	"github.com/tsukinoko-kun/listkit/internal/models"
)

// FromContainerGroups builds a forest with one expandable node per compose
// project. Standalone containers become top-level nodes.
func FromContainerGroups(groups []docker.ContainerGroup) []*Node {
	var roots []*Node
	for _, g := range groups {
		if g.Name == "" {
			for _, c := range g.Containers {
				roots = append(roots, containerNode(c))
			}
			continue
		}

		project := &Node{
			ID:            "project/" + g.Name,
			PrimaryText:   g.Name,
			SecondaryText: fmt.Sprintf("%d of %d running", g.Running(), len(g.Containers)),
			LeftIcon:      "folder",
			RightText:     strconv.Itoa(len(g.Containers)),
		}
		for _, c := range g.Containers {
			project.Children = append(project.Children, containerNode(c))
		}
		roots = append(roots, project)
	}
	return Normalize(roots)
}

func containerNode(c docker.Container) *Node {
	state := models.ParseContainerState(c.State)
	return &Node{
		ID:                 "container/" + c.ID,
		PrimaryText:        c.Name,
		SecondaryText:      c.Image + " • " + c.Status,
		SecondaryTextLines: 2,
		RightText:          state.String(),
		Status:             state,
		HasStatus:          true,
	}
}
