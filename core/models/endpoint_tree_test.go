package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSegment(t *testing.T) {
	t.Run("literal segment", func(t *testing.T) {
		seg := ParseSegment("users")
		assert.False(t, seg.IsParam)
		assert.Equal(t, "users", seg.Name)
	})

	t.Run("parameter segment", func(t *testing.T) {
		seg := ParseSegment("{id}")
		assert.True(t, seg.IsParam)
		assert.Equal(t, "id", seg.ParamName)
	})

	t.Run("empty braces are not a parameter", func(t *testing.T) {
		seg := ParseSegment("{}")
		assert.False(t, seg.IsParam)
	})
}

func TestEndpointTreeGroupsSharedPrefixes(t *testing.T) {
	tree := NewEndpointTree()
	tree.Add(EndpointMatch{Verb: Get, Path: "/users"})
	tree.Add(EndpointMatch{Verb: Post, Path: "/users"})
	tree.Add(EndpointMatch{Verb: Get, Path: "/users/{id}"})
	tree.Add(EndpointMatch{Verb: Get, Path: "/users/{id}/orders"})

	require.Len(t, tree.Root.Children, 1)

	users := tree.Root.Children["users"]
	require.NotNil(t, users)
	assert.Equal(t, []string{"GET", "POST"}, users.Verbs)
	assert.Equal(t, "/users", users.FullPath)

	id := users.Children["{id}"]
	require.NotNil(t, id)
	assert.True(t, id.Segment.IsParam)
	assert.Equal(t, "/users/{id}", id.FullPath)

	orders := id.Children["orders"]
	require.NotNil(t, orders)
	assert.Equal(t, []string{"GET"}, orders.Verbs)
	assert.Equal(t, 3, orders.Depth)
}

func TestEndpointTreeEmptyPathLandsOnRoot(t *testing.T) {
	tree := NewEndpointTree()
	tree.Add(EndpointMatch{Verb: Delete, Path: ""})

	assert.Equal(t, []string{"DELETE"}, tree.Root.Verbs)
	assert.Empty(t, tree.Root.Children)
}

func TestEndpointTreeDuplicateVerbsCollapse(t *testing.T) {
	tree := NewEndpointTree()
	tree.Add(EndpointMatch{Verb: Get, Path: "/a"})
	tree.Add(EndpointMatch{Verb: Get, Path: "/a"})

	assert.Equal(t, []string{"GET"}, tree.Root.Children["a"].Verbs)
}

func TestSortedChildren(t *testing.T) {
	tree := NewEndpointTree()
	tree.Add(EndpointMatch{Verb: Get, Path: "/zebra"})
	tree.Add(EndpointMatch{Verb: Get, Path: "/apple"})
	tree.Add(EndpointMatch{Verb: Get, Path: "/mango"})

	children := tree.Root.SortedChildren()
	require.Len(t, children, 3)
	assert.Equal(t, "apple", children[0].Segment.Name)
	assert.Equal(t, "mango", children[1].Segment.Name)
	assert.Equal(t, "zebra", children[2].Segment.Name)
}

func TestFromReport(t *testing.T) {
	report := &ScanReport{
		Files: []FileReport{
			{Name: "AController.java", Matches: []EndpointMatch{{Verb: Get, Path: "/a"}}},
			{Name: "BController.java", Matches: []EndpointMatch{{Verb: Post, Path: "/b"}}},
		},
	}

	tree := FromReport(report)
	assert.Len(t, tree.Root.Children, 2)
}
