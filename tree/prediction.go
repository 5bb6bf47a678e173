package tree

import (
	"errors"
	"fmt"

	"github.com/pbanos/sapling/dataset"
)

// PredictionError represents an error related with predictions
type PredictionError string

const (
	/*
		ErrCannotPredictFromSample is the error returned by Predict when
		the sample takes a value for a feature that the tree never saw
		while growing, so it has no subtree for it.
	*/
	ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")
	/*
		ErrMissingFeature is the error returned by Predict when the sample
		does not define a value for a feature the tree asks about.
	*/
	ErrMissingFeature = PredictionError("sample does not define a value for the feature")
)

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Predict takes the root of a tree and a sample given as a map of feature
names to values and returns the label the tree assigns to the sample or
an error if the tree cannot classify it.
*/
func Predict(n Node, sample map[string]string) (string, error) {
	for {
		switch node := n.(type) {
		case Leaf:
			return node.Label, nil
		case *Internal:
			v, ok := sample[node.Feature]
			if !ok {
				return "", fmt.Errorf("predicting sample on feature %s: %w", node.Feature, ErrMissingFeature)
			}
			child, ok := node.Children[v]
			if !ok {
				return "", fmt.Errorf("predicting sample with %s=%s: %w", node.Feature, v, ErrCannotPredictFromSample)
			}
			n = child
		default:
			return "", fmt.Errorf("predicting sample: unknown node type %T", n)
		}
	}
}

/*
Test takes the root of a tree, a table and the names of its feature
columns and returns three values:
 * the rate of rows of the table whose label the tree predicts correctly
 * the number of rows for which the tree could not make a prediction
   because of ErrCannotPredictFromSample errors
 * an error if a prediction failed for other reasons or the names do
   not match the table's feature columns. If this is not nil, the other
   values will be 0.0 and 0 respectively
*/
func Test(n Node, t *dataset.Table, featureNames []string) (float64, int, error) {
	if len(featureNames) != t.FeatureCount() {
		return 0.0, 0, fmt.Errorf("testing tree: %d feature names for a table with %d features", len(featureNames), t.FeatureCount())
	}
	if t.Count() == 0 {
		return 0.0, 0, nil
	}
	var result float64
	var errCount int
	sample := make(map[string]string, len(featureNames))
	for i := 0; i < t.Count(); i++ {
		for j, name := range featureNames {
			sample[name] = t.Value(i, j)
		}
		label, err := Predict(n, sample)
		if err != nil {
			if !errors.Is(err, ErrCannotPredictFromSample) {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		if label == t.Label(i) {
			result += 1.0
		}
	}
	return result / float64(t.Count()), errCount, nil
}
