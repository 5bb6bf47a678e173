package sapling

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
)

/*
Partition represents the partition of a table according to one of
its feature columns: a subtable for every distinct value of the
column, and the information gain the partition provides to predict
the label.
*/
type Partition struct {
	// The index of the feature column the table is partitioned on
	FeatureIndex int
	// The distinct values of the column, in order of first occurrence
	Values []string
	// The subtable for each value, as returned by Split
	Subsets         []*dataset.Table
	informationGain float64
}

// InformationGain returns the Gini gain of the partition
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

/*
NewPartition takes a table and the index of one of its feature columns
and returns the partition of the table on that column, or an error if
the table is empty or the index is not a feature column.
*/
func NewPartition(t *dataset.Table, featureIndex int) (*Partition, error) {
	parentImpurity, err := Gini(t.Count(), t.LabelCounts())
	if err != nil {
		return nil, fmt.Errorf("partitioning on feature %d: %w", featureIndex, err)
	}
	return newPartition(t, featureIndex, parentImpurity)
}

func newPartition(t *dataset.Table, featureIndex int, parentImpurity float64) (*Partition, error) {
	values, subsets, err := t.Partition(featureIndex)
	if err != nil {
		return nil, err
	}
	totalCount := float64(t.Count())
	fractions := make([]float64, 0, len(subsets))
	impurities := make([]float64, 0, len(subsets))
	for i, s := range subsets {
		impurity, err := Gini(s.Count(), s.LabelCounts())
		if err != nil {
			return nil, fmt.Errorf("partitioning on feature %d with value %s: %w", featureIndex, values[i], err)
		}
		impurities = append(impurities, impurity)
		fractions = append(fractions, float64(s.Count())/totalCount)
	}
	informationGain, err := Gain(parentImpurity, fractions, impurities)
	if err != nil {
		return nil, err
	}
	return &Partition{featureIndex, values, subsets, informationGain}, nil
}

/*
Partitions takes a table and returns its partition on every feature
column, in column order, or an error if the table has no rows.
*/
func Partitions(t *dataset.Table) ([]*Partition, error) {
	parentImpurity, err := Gini(t.Count(), t.LabelCounts())
	if err != nil {
		return nil, err
	}
	result := make([]*Partition, 0, t.FeatureCount())
	for i := 0; i < t.FeatureCount(); i++ {
		p, err := newPartition(t, i, parentImpurity)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

/*
FeatureGains takes a table and returns the information gain of
partitioning it on each of its feature columns, in column order.
*/
func FeatureGains(t *dataset.Table) ([]float64, error) {
	partitions, err := Partitions(t)
	if err != nil {
		return nil, err
	}
	gains := make([]float64, 0, len(partitions))
	for _, p := range partitions {
		gains = append(gains, p.informationGain)
	}
	return gains, nil
}

/*
ChooseBestFeature takes a table and returns the index of the feature
column whose partition has the greatest information gain. Ties go to the
first column. A table without feature columns yields 0. An error is
returned if the table has no rows.
*/
func ChooseBestFeature(t *dataset.Table) (int, error) {
	gains, err := FeatureGains(t)
	if err != nil {
		return 0, err
	}
	return bestIndex(gains), nil
}

func bestIndex(gains []float64) int {
	var result int
	for i, g := range gains {
		if g > gains[result] {
			result = i
		}
	}
	return result
}
