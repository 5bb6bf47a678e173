/*
Package tree defines the decision trees grown by sapling: their nodes,
how to walk them, how to convert them to and from nested mappings and
how to use them to classify samples.
*/
package tree

import (
	"sort"
)

/*
Node is a node of a decision tree. It is either a Leaf or an
*Internal node; use a type switch to tell them apart.
*/
type Node interface {
	isNode()
}

// Leaf is a terminal node holding the decided label
type Leaf struct {
	Label string
}

/*
Internal is a node that splits samples on a feature. It has a subtree
for every value of the feature observed while growing it.
*/
type Internal struct {
	// The name of the feature this node asks about
	Feature string
	// The subtree for each observed value of the feature
	Children map[string]Node
}

func (Leaf) isNode()      {}
func (*Internal) isNode() {}

// NewInternal returns an internal node for the given feature without children
func NewInternal(feature string) *Internal {
	return &Internal{Feature: feature, Children: make(map[string]Node)}
}

// Values returns the values of the node's feature with a subtree, sorted
func (in *Internal) Values() []string {
	values := make([]string, 0, len(in.Children))
	for v := range in.Children {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

/*
Walk takes a node and a function and calls the function with every node
of the tree rooted at the given one along with its depth, parents before
their children and siblings in value order. If the function returns an
error the walk is aborted and the error returned.
*/
func Walk(n Node, f func(n Node, depth int) error) error {
	return walk(n, 0, f)
}

func walk(n Node, depth int, f func(Node, int) error) error {
	err := f(n, depth)
	if err != nil {
		return err
	}
	in, ok := n.(*Internal)
	if !ok {
		return nil
	}
	for _, v := range in.Values() {
		err = walk(in.Children[v], depth+1, f)
		if err != nil {
			return err
		}
	}
	return nil
}

// Depth returns the number of internal nodes on the longest path from n to a leaf
func Depth(n Node) int {
	var result int
	Walk(n, func(n Node, depth int) error {
		if _, ok := n.(Leaf); ok && depth > result {
			result = depth
		}
		return nil
	})
	return result
}

// LeafCount returns the number of leaves in the tree rooted at n
func LeafCount(n Node) int {
	var result int
	Walk(n, func(n Node, _ int) error {
		if _, ok := n.(Leaf); ok {
			result++
		}
		return nil
	})
	return result
}
