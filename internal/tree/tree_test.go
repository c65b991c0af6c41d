package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukinoko-kun/listkit/internal/docker"
	"github.com/tsukinoko-kun/listkit/internal/models"
)

func TestDemoIsValid(t *testing.T) {
	doc, warnings, err := Demo()
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Mail", doc.Title)
	require.NotEmpty(t, doc.Items)

	inbox := doc.Items[0]
	assert.Equal(t, "inbox", inbox.ID)
	assert.True(t, inbox.Expanded)
	assert.Len(t, inbox.Children, 3)
	assert.Len(t, inbox.Children[2].Children, 2)
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	_, err := Parse([]byte("items: [unterminated"))
	assert.Error(t, err)
}

func TestValidateReportsWarnings(t *testing.T) {
	doc, err := Parse([]byte(`
items:
  - primary: Inbox
    secondary: hello
    secondary_lines: 3
    left_icon: nope
    children:
      - secondary: orphan
      - primary: Deep
        nesting_depth: -4
`))
	require.NoError(t, err)

	warnings := Validate(doc)
	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	assert.ElementsMatch(t, []string{
		"Items[0].SecondaryTextLines",
		"Items[0].LeftIcon",
		"Items[0].Children[0].PrimaryText",
		"Items[0].Children[1].NestingDepth",
	}, fields)
}

func TestNormalizeDegradesValues(t *testing.T) {
	depth := float32(-1)
	nodes := Normalize([]*Node{
		{PrimaryText: "a", SecondaryTextLines: 7, LeftIcon: "nope", RightIcon: "star", NestingDepth: &depth, Children: []*Node{
			{PrimaryText: "b", SecondaryTextLines: 9},
			nil,
			{PrimaryText: "c", SecondaryTextLines: -2},
		}},
		{ID: "dup", PrimaryText: "d"},
		{ID: "dup", PrimaryText: "e"},
	})

	require.Len(t, nodes, 3)
	a := nodes[0]
	assert.Equal(t, "0", a.ID)
	assert.Equal(t, 2, a.SecondaryTextLines)
	assert.Empty(t, a.LeftIcon)
	assert.Equal(t, "star", a.RightIcon)
	assert.Nil(t, a.NestingDepth)

	require.Len(t, a.Children, 2)
	assert.Equal(t, "0/0", a.Children[0].ID)
	assert.Equal(t, "0/1", a.Children[1].ID)
	assert.Equal(t, 2, a.Children[0].SecondaryTextLines)
	assert.Equal(t, 1, a.Children[1].SecondaryTextLines)

	assert.Equal(t, "dup", nodes[1].ID)
	assert.Equal(t, "dup#1", nodes[2].ID)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Files
items:
  - primary: Documents
    left_icon: folder
    children:
      - primary: report.pdf
  -
  - primary: Music
    secondary_lines: 9
`), 0o644))

	doc, warnings, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Files", doc.Title)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "0/0", doc.Items[0].Children[0].ID)
	assert.Equal(t, 2, doc.Items[1].SecondaryTextLines)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Items[1].SecondaryTextLines", warnings[0].Field)
	assert.Contains(t, warnings[0].String(), "must be one of 1 2")
}

func TestLoadFileMissing(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCountAndWalk(t *testing.T) {
	doc, _, err := Demo()
	require.NoError(t, err)

	visited := 0
	Walk(doc.Items, func(*Node) { visited++ })
	assert.Equal(t, Count(doc.Items), visited)
}

func TestFromContainerGroups(t *testing.T) {
	groups := docker.GroupContainers([]docker.Container{
		{ID: "a1", Name: "web", Image: "nginx", Status: "Up 2 hours", State: "running", Project: "shop"},
		{ID: "a2", Name: "db", Image: "postgres", Status: "Exited (0)", State: "exited", Project: "shop"},
		{ID: "b1", Name: "solo", Image: "redis", State: "paused"},
	})

	nodes := FromContainerGroups(groups)
	require.Len(t, nodes, 2)

	shop := nodes[0]
	assert.Equal(t, "project/shop", shop.ID)
	assert.Equal(t, "1 of 2 running", shop.SecondaryText)
	assert.Equal(t, "2", shop.RightText)
	require.Len(t, shop.Children, 2)
	assert.Equal(t, "container/a2", shop.Children[0].ID)
	assert.True(t, shop.Children[0].HasStatus)
	assert.Equal(t, models.StateStopped, shop.Children[0].Status)

	solo := nodes[1]
	assert.Equal(t, "container/b1", solo.ID)
	assert.Equal(t, "paused", solo.RightText)
	assert.Equal(t, 2, solo.SecondaryTextLines)
}
