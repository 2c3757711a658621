package models

import (
	"sort"
	"strings"
)

// PathSegment is one element of an endpoint path. Segments wrapped in braces
// ({id}) are path parameters.
type PathSegment struct {
	Name      string
	IsParam   bool
	ParamName string
}

type EndpointNode struct {
	Segment  PathSegment
	Children map[string]*EndpointNode
	Parent   *EndpointNode
	FullPath string
	Depth    int
	Verbs    []string
}

// EndpointTree groups the matches of a scan by shared path prefix, so an
// inventory of /users, /users/{id} and /users/{id}/orders renders as one
// branch instead of three flat lines.
type EndpointTree struct {
	Root *EndpointNode
}

func NewEndpointTree() *EndpointTree {
	return &EndpointTree{
		Root: &EndpointNode{
			Segment:  PathSegment{Name: ""},
			Children: make(map[string]*EndpointNode),
			FullPath: "",
			Depth:    0,
			Verbs:    []string{},
		},
	}
}

func ParseSegment(name string) PathSegment {
	segment := PathSegment{Name: name}
	if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") && len(name) > 2 {
		segment.IsParam = true
		segment.ParamName = strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
	}
	return segment
}

// Add inserts one endpoint match into the tree, creating intermediate nodes
// as needed. A match with an empty path records its verb on the root.
func (et *EndpointTree) Add(match EndpointMatch) {
	parts := strings.Split(match.Path, "/")

	var validParts []string
	for _, part := range parts {
		if part != "" {
			validParts = append(validParts, part)
		}
	}

	current := et.Root
	for i, part := range validParts {
		segment := ParseSegment(part)

		if child, exists := current.Children[part]; exists {
			current = child
		} else {
			newNode := &EndpointNode{
				Segment:  segment,
				Children: make(map[string]*EndpointNode),
				Parent:   current,
				FullPath: "/" + strings.Join(validParts[:i+1], "/"),
				Depth:    i + 1,
				Verbs:    []string{},
			}
			current.Children[part] = newNode
			current = newNode
		}
	}

	current.Verbs = appendVerb(current.Verbs, match.Verb.String())
}

func appendVerb(verbs []string, verb string) []string {
	for _, v := range verbs {
		if v == verb {
			return verbs
		}
	}
	verbs = append(verbs, verb)
	sort.Strings(verbs)
	return verbs
}

// SortedChildren returns a node's children in lexicographic segment order,
// keeping tree output deterministic.
func (n *EndpointNode) SortedChildren() []*EndpointNode {
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	children := make([]*EndpointNode, 0, len(keys))
	for _, k := range keys {
		children = append(children, n.Children[k])
	}
	return children
}

// FromReport builds the endpoint tree for every match in the report.
func FromReport(report *ScanReport) *EndpointTree {
	tree := NewEndpointTree()
	for _, file := range report.Files {
		for _, match := range file.Matches {
			tree.Add(match)
		}
	}
	return tree
}
