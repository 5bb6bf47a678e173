package tree

import (
	"fmt"
)

/*
ToMapping takes a node and returns the nested mapping representation of
the tree rooted at it: a Leaf becomes its label string, an Internal node
becomes a map with a single entry from the feature name to a map from
each value to the mapping of its subtree.
*/
func ToMapping(n Node) interface{} {
	switch n := n.(type) {
	case Leaf:
		return n.Label
	case *Internal:
		children := make(map[string]interface{}, len(n.Children))
		for v, c := range n.Children {
			children[v] = ToMapping(c)
		}
		return map[string]interface{}{n.Feature: children}
	}
	return nil
}

/*
FromMapping takes a nested mapping as produced by ToMapping (or decoded
by encoding/json or gopkg.in/yaml.v2 from its serialization) and returns
the tree it represents or an error if it is not a valid tree mapping.
Scalar values other than strings are converted to their default format
representation.
*/
func FromMapping(m interface{}) (Node, error) {
	switch m := m.(type) {
	case nil:
		return nil, fmt.Errorf("decoding tree: null node")
	case map[string]interface{}:
		return internalFromEntries(m)
	case map[interface{}]interface{}:
		entries := make(map[string]interface{}, len(m))
		for k, v := range m {
			entries[fmt.Sprintf("%v", k)] = v
		}
		return internalFromEntries(entries)
	case []interface{}:
		return nil, fmt.Errorf("decoding tree: unexpected list %v", m)
	case string:
		return Leaf{Label: m}, nil
	default:
		return Leaf{Label: fmt.Sprintf("%v", m)}, nil
	}
}

func internalFromEntries(entries map[string]interface{}) (Node, error) {
	if len(entries) != 1 {
		return nil, fmt.Errorf("decoding tree: internal node must have exactly one feature, got %d", len(entries))
	}
	var feature string
	var rawChildren interface{}
	for k, v := range entries {
		feature, rawChildren = k, v
	}
	var children map[string]interface{}
	switch rc := rawChildren.(type) {
	case map[string]interface{}:
		children = rc
	case map[interface{}]interface{}:
		children = make(map[string]interface{}, len(rc))
		for k, v := range rc {
			children[fmt.Sprintf("%v", k)] = v
		}
	default:
		return nil, fmt.Errorf("decoding tree: feature %s must map values to subtrees, got %T", feature, rawChildren)
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("decoding tree: feature %s has no subtrees", feature)
	}
	in := NewInternal(feature)
	for v, c := range children {
		child, err := FromMapping(c)
		if err != nil {
			return nil, fmt.Errorf("decoding subtree %s=%s: %w", feature, v, err)
		}
		in.Children[v] = child
	}
	return in, nil
}
