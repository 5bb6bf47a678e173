/*
Package sapling grows classification decision trees from tables of
categorical samples, choosing at every node the feature whose split
yields the greatest Gini information gain.
*/
package sapling

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
)

/*
Grower grows decision trees. Its zero value is ready to use and
reports nothing; set Tracer to follow the growth of trees.
*/
type Grower struct {
	// Tracer, if not nil, receives an Event for every step
	// taken while growing a tree.
	Tracer Tracer
}

/*
Grow takes a table and the names of its feature columns and returns the
root of the decision tree grown from it with a zero Grower.
*/
func Grow(t *dataset.Table, featureNames []string) (tree.Node, error) {
	return (&Grower{}).Grow(t, featureNames)
}

/*
Grow takes a table and the names of its feature columns and returns the
root of the decision tree grown from it.

At every node, if StopCriteria decides the node's table must become a
leaf, the node is a tree.Leaf with the decided label. Otherwise the
node is a *tree.Internal on the feature chosen by ChooseBestFeature
with a subtree grown, without that feature, from the rows of each of its
values.

An error is returned if the table has no rows or if the number of names
does not match the table's feature columns.
*/
func (g *Grower) Grow(t *dataset.Table, featureNames []string) (tree.Node, error) {
	return g.grow(t, featureNames, nil)
}

func (g *Grower) grow(t *dataset.Table, featureNames []string, path []string) (tree.Node, error) {
	if t.Count() == 0 {
		return nil, fmt.Errorf("growing tree at %v: %w", path, ErrEmptySplit)
	}
	if len(featureNames) != t.FeatureCount() {
		return nil, fmt.Errorf("growing tree at %v: %d names for %d features: %w", path, len(featureNames), t.FeatureCount(), ErrFeatureCountMismatch)
	}
	if label, ok := StopCriteria(t); ok {
		g.trace(Event{Kind: LeafEvent, Depth: len(path), Rows: t.Count(), Path: path, Label: label})
		return tree.Leaf{Label: label}, nil
	}
	partitions, err := Partitions(t)
	if err != nil {
		return nil, fmt.Errorf("growing tree at %v: %w", path, err)
	}
	gains := make([]float64, 0, len(partitions))
	for _, p := range partitions {
		gains = append(gains, p.informationGain)
	}
	g.trace(Event{Kind: GainsEvent, Depth: len(path), Rows: t.Count(), Path: path, Features: featureNames, Gains: gains})
	best := partitions[bestIndex(gains)]
	bestName := featureNames[best.FeatureIndex]
	g.trace(Event{Kind: SplitEvent, Depth: len(path), Rows: t.Count(), Path: path, Features: featureNames, Feature: bestName, FeatureIndex: best.FeatureIndex})

	subFeatureNames := make([]string, 0, len(featureNames)-1)
	subFeatureNames = append(subFeatureNames, featureNames[:best.FeatureIndex]...)
	subFeatureNames = append(subFeatureNames, featureNames[best.FeatureIndex+1:]...)

	node := tree.NewInternal(bestName)
	for i, value := range best.Values {
		subpath := make([]string, len(path), len(path)+1)
		copy(subpath, path)
		subpath = append(subpath, fmt.Sprintf("%s=%s", bestName, value))
		// each subtree gets its own copy of the names
		names := append([]string(nil), subFeatureNames...)
		child, err := g.grow(best.Subsets[i], names, subpath)
		if err != nil {
			return nil, err
		}
		node.Children[value] = child
	}
	return node, nil
}

func (g *Grower) trace(e Event) {
	if g.Tracer != nil {
		g.Tracer.Trace(e)
	}
}
