package docker

import (
	"context"
	"sort"
	"strings"

	"github.com/docker/docker/api/types/container"
)

const composeProjectLabel = "com.docker.compose.project"

// Container represents a Docker container with relevant information.
type Container struct {
	ID      string
	Name    string
	Image   string
	Status  string
	State   string
	Project string // Compose project name, empty if standalone
}

// ContainerGroup is a compose project, or the standalone containers when Name is empty.
type ContainerGroup struct {
	Name       string
	Containers []Container
}

// Running returns the number of running containers in the group.
func (g ContainerGroup) Running() int {
	n := 0
	for _, c := range g.Containers {
		if c.State == "running" {
			n++
		}
	}
	return n
}

// ListContainers returns all containers, including stopped ones.
func (c *Client) ListContainers(ctx context.Context) ([]Container, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	containers, err := c.cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, err
	}

	result := make([]Container, 0, len(containers))
	for _, ctr := range containers {
		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}
		result = append(result, Container{
			ID:      shortID(ctr.ID),
			Name:    name,
			Image:   ctr.Image,
			Status:  ctr.Status,
			State:   ctr.State,
			Project: ctr.Labels[composeProjectLabel],
		})
	}

	return result, nil
}

// ListContainersGrouped returns containers grouped by compose project.
func (c *Client) ListContainersGrouped(ctx context.Context) ([]ContainerGroup, error) {
	containers, err := c.ListContainers(ctx)
	if err != nil {
		return nil, err
	}
	return GroupContainers(containers), nil
}

// GroupContainers groups containers by project. Projects are sorted by name
// and the standalone group comes last; containers are sorted by name.
func GroupContainers(containers []Container) []ContainerGroup {
	groups := make(map[string][]Container)
	for _, ctr := range containers {
		groups[ctr.Project] = append(groups[ctr.Project], ctr)
	}

	result := make([]ContainerGroup, 0, len(groups))
	for name, ctrs := range groups {
		sort.Slice(ctrs, func(i, j int) bool {
			return ctrs[i].Name < ctrs[j].Name
		})
		result = append(result, ContainerGroup{Name: name, Containers: ctrs})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == "" {
			return false
		}
		if result[j].Name == "" {
			return true
		}
		return result[i].Name < result[j].Name
	})

	return result
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
